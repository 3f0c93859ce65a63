package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret")
	identity := Identity{ID: "b7a3a1a0-0000-4000-8000-000000000001", Name: "Test User"}

	token, err := svc.Issue(identity, time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := svc.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, identity, *got)
}

func TestJWTService_Expired(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.Issue(Identity{ID: "1", Name: "A"}, -time.Minute)
	assert.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-one")
	verifier := NewJWTService("secret-two")

	token, err := issuer.Issue(Identity{ID: "1", Name: "A"}, time.Hour)
	assert.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrTokenBadSignature)
}

func TestJWTService_TamperedSignature(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.Issue(Identity{ID: "1", Name: "A"}, time.Hour)
	assert.NoError(t, err)

	// Flip the last signature character to another base64url character.
	tampered := token[:len(token)-1] + "A"
	if strings.HasSuffix(token, "A") {
		tampered = token[:len(token)-1] + "B"
	}

	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, ErrTokenBadSignature)
}

func TestJWTService_Malformed(t *testing.T) {
	svc := NewJWTService("test-secret")

	for _, token := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, ErrTokenMalformed, "token %q", token)
	}
}
