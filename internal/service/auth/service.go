package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/pkg/jwt"
)

// SessionForgetter drops per-session state kept by other services on logout.
type SessionForgetter interface {
	Forget(sess auth.Session)
}

type AuthServiceImpl struct {
	gateway    auth.Gateway
	jwtService jwt.Service
	forgetters []SessionForgetter
	now        func() time.Time
}

func NewAuthService(gateway auth.Gateway, jwtService jwt.Service, forgetters ...SessionForgetter) auth.AuthService {
	return &AuthServiceImpl{
		gateway:    gateway,
		jwtService: jwtService,
		forgetters: forgetters,
		now:        time.Now,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	creds, err := a.gateway.Login(ctx, req)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	sess := auth.Session{
		UserID:            creds.User.ID,
		Name:              creds.User.Name,
		Email:             creds.User.Email,
		APIToken:          creds.APIToken,
		APITokenExpiresAt: creds.APITokenExpiresAt,
		TokenID:           uuid.NewString(),
	}
	if sess.Expired(a.now()) {
		return auth.TokenResponse{}, auth.ErrSessionExpired
	}

	token, expiresAt, err := a.jwtService.GenerateAccessToken(sess)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	slog.Info("console user signed in", "user_id", sess.UserID)

	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt - a.now().Unix(),
		User:                 creds.User,
	}, nil
}

// Logout implements auth.AuthService. The gym API token is left to expire on
// its own since the API has no logout endpoint.
func (a *AuthServiceImpl) Logout(ctx context.Context, sess auth.Session) error {
	if sess.TokenID == "" {
		return auth.ErrInvalidToken
	}

	expiresAt := sess.ExpiresAt.Unix()
	if sess.ExpiresAt.IsZero() {
		expiresAt = a.now().Add(24 * time.Hour).Unix()
	}
	a.jwtService.RevokeToken(sess.TokenID, expiresAt)

	for _, f := range a.forgetters {
		f.Forget(sess)
	}
	return nil
}
