package jwt

import "github.com/golang-jwt/jwt"

// Payload defines the structure of the JSON Web Token (JWT) claims for a Kith session.
// The signed token is the opaque session identifier handed to clients; the session
// manager's live-token map remains the authority on whether a token is still valid.
type Payload struct {
	// StandardClaims embeds the JWT standard fields such as Iat (Issued At) and
	// Iss (Issuer). No expiration is set: sessions stay valid until a full reset.
	jwt.StandardClaims `json:"standard_claims"`

	// AccountID is the stable internal handle of the authenticated account.
	AccountID string `json:"account_id"`

	// Login is the account login at the moment the session was opened. It is
	// informational only; the account may be renamed while the session lives.
	Login string `json:"login"`

	// Nonce is a random Base62 string making every issued token unique, which
	// allows multiple concurrent sessions for the same account.
	Nonce string `json:"nonce"`
}
