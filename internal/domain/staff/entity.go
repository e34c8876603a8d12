package staff

type Staff struct {
	ID         string
	FullName   string
	Email      string
	Gender     string
	ContactNo  string
	Address    string
	Position   string
	JoinedDate string
}

type Position struct {
	ID   string
	Name string
}
