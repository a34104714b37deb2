// Package auth resolves the current owner identity from a bearer JWT.
// The token itself is issued by the hosted identity provider; this
// service only verifies the HMAC signature and reads the subject.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ownerKey is the gin context key the middleware stores the owner under.
const ownerKey = "owner_id"

var ErrNoSession = errors.New("no session")

// SessionProvider validates tokens against a shared secret.
type SessionProvider struct {
	secret []byte
}

// NewSessionProvider reads JWT_SECRET from the environment.
func NewSessionProvider() *SessionProvider {
	return &SessionProvider{secret: []byte(os.Getenv("JWT_SECRET"))}
}

// Owner parses and validates a bearer token and returns the owner uuid
// from its subject claim.
func (p *SessionProvider) Owner(tokenStr string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	sub, err := token.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid subject claim: %w", err)
	}
	return id, nil
}

// IssueToken signs a 24h token for the given owner. Used by tests and
// local tooling; production tokens come from the identity provider.
func (p *SessionProvider) IssueToken(owner uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"sub": owner.String(),
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

// Middleware rejects requests without a valid session and stores the
// resolved owner on the context. Handlers behind it never run with an
// unresolved identity.
func (p *SessionProvider) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		owner, err := p.Owner(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session: " + err.Error()})
			return
		}
		c.Set(ownerKey, owner)
		c.Next()
	}
}

// OwnerFrom returns the owner the middleware resolved for this request.
func OwnerFrom(c *gin.Context) (uuid.UUID, error) {
	v, ok := c.Get(ownerKey)
	if !ok {
		return uuid.Nil, ErrNoSession
	}
	owner, ok := v.(uuid.UUID)
	if !ok || owner == uuid.Nil {
		return uuid.Nil, ErrNoSession
	}
	return owner, nil
}
