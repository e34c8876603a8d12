package gymapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/domain/upstream"
)

type AuthGateway struct {
	client *Client
}

func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

type loginUser struct {
	ID    flexID `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type loginMeta struct {
	AccessToken string `json:"access_token"`
}

// Login implements auth.Gateway.
func (g *AuthGateway) Login(ctx context.Context, req auth.LoginRequest) (auth.Credentials, error) {
	rememberMe := 0
	if req.RememberMe {
		rememberMe = 1
	}
	body := map[string]interface{}{
		"email":       req.Email,
		"password":    req.Password,
		"remember_me": rememberMe,
	}

	var user loginUser
	env, err := g.client.do(ctx, nil, "auth.login", http.MethodPost, "/api/login", nil, body, &user)
	if err != nil {
		var rejected *upstream.RejectedError
		if errors.As(err, &rejected) && rejected.StatusCode < 500 {
			return auth.Credentials{}, auth.ErrInvalidCredentials
		}
		return auth.Credentials{}, err
	}

	var meta loginMeta
	if len(env.Meta) > 0 {
		if err := json.Unmarshal(env.Meta, &meta); err != nil {
			return auth.Credentials{}, fmt.Errorf("%w: decode login meta: %v", upstream.ErrUnavailable, err)
		}
	}
	if meta.AccessToken == "" || user.ID == "" {
		return auth.Credentials{}, auth.ErrInvalidCredentials
	}

	creds := auth.Credentials{
		User: auth.User{
			ID:    string(user.ID),
			Name:  user.Name,
			Email: user.Email,
		},
		APIToken: meta.AccessToken,
	}
	if exp, ok := TokenExpiry(meta.AccessToken); ok {
		creds.APITokenExpiresAt = exp
	}
	return creds, nil
}
