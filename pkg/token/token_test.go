package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("super-secret")

	tok, err := issuer.Issue("user-123")
	require.NoError(t, err)

	userID, err := issuer.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "user-123", userID)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	issued := time.Now().Add(-TokenTTL - time.Minute)
	past := NewIssuerWithClock("secret", func() time.Time { return issued })

	tok, err := past.Issue("u1")
	require.NoError(t, err)

	_, err = NewIssuer("secret").Verify(tok)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_ValidUntilExpiry(t *testing.T) {
	t.Parallel()

	issued := time.Now()
	issuer := NewIssuerWithClock("secret", func() time.Time { return issued })

	tok, err := issuer.Issue("u1")
	require.NoError(t, err)

	// Just inside the window.
	late := NewIssuerWithClock("secret", func() time.Time { return issued.Add(TokenTTL - time.Minute) })
	userID, err := late.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "u1", userID)

	// Just outside.
	after := NewIssuerWithClock("secret", func() time.Time { return issued.Add(TokenTTL + time.Minute) })
	_, err = after.Verify(tok)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewIssuer("right-secret").Issue("u2")
	require.NoError(t, err)

	_, err = NewIssuer("wrong-secret").Verify(tok)
	require.ErrorIs(t, err, ErrTokenMalformed)
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := NewIssuer("k").Verify("not.a.jwt")
	require.ErrorIs(t, err, ErrTokenMalformed)
}
