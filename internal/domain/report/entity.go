package report

import "time"

type Kind string

const (
	KindAttendance Kind = "attendance"
	KindInventory  Kind = "inventory"
	KindSales      Kind = "sales"
	KindPayslip    Kind = "payslip"
)

// Document is a rendered export ready to be streamed to the browser.
type Document struct {
	Kind        Kind
	Filename    string
	ContentType string
	Data        []byte
	// URL is where the stored copy can be downloaded again.
	URL         string
	GeneratedAt time.Time
}
