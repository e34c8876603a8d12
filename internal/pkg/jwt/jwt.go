package jwt

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	TokenTypeAccess = "access"
	TokenTypeSSE    = "sse"

	sseTokenLifetime = 5 * time.Minute
)

type Service interface {
	GenerateAccessToken(sess auth.Session) (token string, expiresAt int64, err error)
	GenerateSSEToken(userID string) (token string, expiresIn int, err error)
	ValidateSSEToken(tokenString string) (userID string, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(tokenID string, expiresAt int64)
	IsTokenRevoked(tokenID string) bool
	PurgeRevoked(now time.Time) int
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	revokedTokens             map[string]int64
	mu                        sync.RWMutex
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:             make(map[string]int64),
	}
}

// GenerateAccessToken signs a console token for sess. The token never outlives
// the gym API bearer token it carries.
func (j *JWTService) GenerateAccessToken(sess auth.Session) (token string, expiresAt int64, err error) {
	if sess.TokenID == "" {
		return "", 0, errors.New("session token id is required")
	}
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	exp := time.Now().Add(expDuration)
	if !sess.APITokenExpiresAt.IsZero() && sess.APITokenExpiresAt.Before(exp) {
		exp = sess.APITokenExpiresAt
	}
	expiresAt = exp.Unix()

	claims := map[string]interface{}{
		"jti":       sess.TokenID,
		"user_id":   sess.UserID,
		"name":      sess.Name,
		"email":     sess.Email,
		"api_token": sess.APIToken,
		"type":      TokenTypeAccess,
		"exp":       expiresAt,
	}
	if !sess.APITokenExpiresAt.IsZero() {
		claims["api_token_expires_at"] = sess.APITokenExpiresAt.Unix()
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) RevokeToken(tokenID string, expiresAt int64) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[tokenID] = expiresAt
}

func (j *JWTService) IsTokenRevoked(tokenID string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[tokenID]
	return revoked
}

// PurgeRevoked forgets revocations of tokens that have expired anyway.
func (j *JWTService) PurgeRevoked(now time.Time) int {
	j.mu.Lock()
	defer j.mu.Unlock()
	purged := 0
	for id, exp := range j.revokedTokens {
		if exp <= now.Unix() {
			delete(j.revokedTokens, id)
			purged++
		}
	}
	return purged
}

// GenerateSSEToken generates a short-lived token for SSE connections
func (j *JWTService) GenerateSSEToken(userID string) (token string, expiresIn int, err error) {
	expiresIn = int(sseTokenLifetime.Seconds())
	expiresAt := time.Now().Add(sseTokenLifetime).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"type":    TokenTypeSSE,
		"exp":     expiresAt,
	})
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresIn, nil
}

// ValidateSSEToken validates an SSE token and returns the user ID
func (j *JWTService) ValidateSSEToken(tokenString string) (userID string, err error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != TokenTypeSSE {
		return "", jwt.ErrInvalidJWT()
	}

	userIDVal, ok := token.Get("user_id")
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	userID, ok = userIDVal.(string)
	if !ok || userID == "" {
		return "", jwt.ErrInvalidJWT()
	}

	return userID, nil
}

// SessionFromClaims rebuilds a session from decoded access token claims.
func SessionFromClaims(claims map[string]interface{}) (auth.Session, error) {
	if t, _ := claims["type"].(string); t != TokenTypeAccess {
		return auth.Session{}, fmt.Errorf("%w: unexpected token type", auth.ErrInvalidToken)
	}

	var sess auth.Session
	sess.UserID, _ = claims["user_id"].(string)
	sess.Name, _ = claims["name"].(string)
	sess.Email, _ = claims["email"].(string)
	sess.APIToken, _ = claims["api_token"].(string)
	sess.TokenID, _ = claims["jti"].(string)
	if sess.UserID == "" || sess.APIToken == "" || sess.TokenID == "" {
		return auth.Session{}, fmt.Errorf("%w: incomplete claims", auth.ErrInvalidToken)
	}

	if exp, ok := claims["exp"].(time.Time); ok {
		sess.ExpiresAt = exp
	} else if exp, ok := unixClaim(claims["exp"]); ok {
		sess.ExpiresAt = exp
	}
	if exp, ok := unixClaim(claims["api_token_expires_at"]); ok {
		sess.APITokenExpiresAt = exp
	}
	return sess, nil
}

func unixClaim(v interface{}) (time.Time, bool) {
	switch n := v.(type) {
	case float64:
		return time.Unix(int64(n), 0), true
	case int64:
		return time.Unix(n, 0), true
	case int:
		return time.Unix(int64(n), 0), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return time.Time{}, false
		}
		return time.Unix(i, 0), true
	}
	return time.Time{}, false
}
