package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	// TokenIssuer identifies the issuer of the token.
	TokenIssuer = "Kith-Server"
)

// GenerateToken creates and signs a new JWT token string based on the provided Payload struct.
// The token carries no expiration claim; validity is governed by the session manager.
func GenerateToken(payload *Payload, secretKey string) (string, error) {
	now := time.Now()

	payload.StandardClaims = jwt.StandardClaims{
		IssuedAt: now.Unix(),
		Issuer:   TokenIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)

	return token.SignedString([]byte(secretKey))
}

// ParseToken parses and validates the JWT token string using the provided secretKey.
func ParseToken(tokenString string, secretKey string) (*Payload, error) {
	claims := &Payload{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
