package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	p := NewSessionProvider()

	owner := uuid.New()
	token, err := p.IssueToken(owner)
	require.NoError(t, err)

	got, err := p.Owner(token)
	require.NoError(t, err)
	assert.Equal(t, owner, got)
}

func TestOwnerRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	p := NewSessionProvider()

	_, err := p.Owner("not-a-token")
	assert.Error(t, err)
}

func TestOwnerRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	issuer := NewSessionProvider()
	token, err := issuer.IssueToken(uuid.New())
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-b")
	verifier := NewSessionProvider()
	_, err = verifier.Owner(token)
	assert.Error(t, err)
}
