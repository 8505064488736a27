// Package auth implements the credential primitives of the server: the JWT
// token codec, the bcrypt password hasher, and the in-process revocation
// list. The codec is stateless on purpose; revocation is layered on top by
// the service as a separate check.
package auth

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenKind distinguishes short-lived access tokens from long-lived refresh
// tokens. A token of one kind is never accepted where the other is expected.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// Claims is the JWT claim set carried by every issued token. The subject is
// the user ID.
type Claims struct {
	jwt.RegisteredClaims
	Email string    `json:"email"`
	Kind  TokenKind `json:"kind"`
}

// UserID returns the subject identity encoded in the claims.
func (c *Claims) UserID() string {
	return c.Subject
}

// GenerateToken mints a signed HS256 token of the given kind for the user,
// valid from now until now+validity.
func GenerateToken(userID, email string, kind TokenKind, secretKey []byte, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		Email: email,
		Kind:  kind,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken validates the signature, expiry and kind of tokenString and
// returns its claims. It fails closed: any malformed, tampered, expired or
// wrong-kind token yields common.ErrorInvalidToken. Revocation is not
// checked here; that is the caller's separate concern.
func ParseToken(tokenString string, kind TokenKind, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInvalidToken, err)
	}

	if !token.Valid || claims.Kind != kind || claims.Subject == "" {
		return nil, common.ErrorInvalidToken
	}

	return claims, nil
}
