package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/handler/http/response"
	"github.com/gymrepublic/gym-console/internal/pkg/jwt"
)

type sessionKey struct{}

// AuthRequired accepts verified, unrevoked access tokens and puts the session
// they carry in the request context. It must run after jwtauth.Verifier.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			sess, err := jwt.SessionFromClaims(claims)
			if err != nil {
				response.HandleError(w, err)
				return
			}
			if jwtService.IsTokenRevoked(sess.TokenID) {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		}
		return http.HandlerFunc(hfn)
	}
}

func WithSession(ctx context.Context, sess auth.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

func SessionFromContext(ctx context.Context) (auth.Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(auth.Session)
	return sess, ok
}
