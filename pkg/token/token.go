// Package token issues and verifies the signed session tokens used by the
// auth service. Tokens are stateless: there is no revocation list, expiry is
// the only termination mechanism.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed validity window of every issued token.
const TokenTTL = 24 * time.Hour

var (
	// ErrTokenMalformed means the token could not be parsed or its
	// signature did not verify.
	ErrTokenMalformed = errors.New("malformed token")
	// ErrTokenExpired means the signature verified but the expiry passed.
	ErrTokenExpired = errors.New("token expired")
)

// Claims embeds the registered claims plus the authenticated user identifier.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// Issuer mints and verifies HS256 tokens with a shared secret. The clock is
// injectable so expiry behavior can be tested deterministically.
type Issuer struct {
	secret []byte
	now    func() time.Time
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret), now: time.Now}
}

// NewIssuerWithClock is used by tests to issue tokens at an arbitrary time.
func NewIssuerWithClock(secret string, now func() time.Time) *Issuer {
	return &Issuer{secret: []byte(secret), now: now}
}

// Issue signs a token embedding userID, valid for TokenTTL from now.
func (i *Issuer) Issue(userID string) (string, error) {
	issuedAt := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(TokenTTL)),
		},
		UserID: userID,
	})
	return token.SignedString(i.secret)
}

// Verify checks signature and expiry and returns the embedded user identifier.
// Expired tokens yield ErrTokenExpired; everything else that fails yields
// ErrTokenMalformed.
func (i *Issuer) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenMalformed
	}
	if !parsed.Valid || claims.UserID == "" {
		return "", ErrTokenMalformed
	}
	return claims.UserID, nil
}
