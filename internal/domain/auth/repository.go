package auth

import "context"

// Gateway authenticates against the gym API.
type Gateway interface {
	Login(ctx context.Context, req LoginRequest) (Credentials, error)
}
