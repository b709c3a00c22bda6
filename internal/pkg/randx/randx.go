/*
Package randx provides functions for generating cryptographically secure random identifiers.

It is primarily used to generate stable UUID account handles and Base62 encoded
session token nonces.
*/
package randx

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

const (
	// Base62Chars defines the character set used for Base62 encoding (0-9, A-Z, a-z).
	Base62Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// Base62Len is the total number of characters in the Base62 character set (62).
	Base62Len = int64(len(Base62Chars))

	// TokenNonceLength is the fixed length of a session token nonce.
	TokenNonceLength = 16
)

// AccountHandle generates a standard UUID v4 string to serve as the stable
// internal identifier of an account. The handle never changes, even when the
// account's login is renamed.
func AccountHandle() string {
	return uuid.New().String()
}

// TokenNonce generates a Base62 encoded nonce using a cryptographically secure
// random number generator (crypto/rand). The nonce makes every issued session
// token unique among live sessions, including multiple sessions of one account.
func TokenNonce() (string, error) {
	result := make([]byte, TokenNonceLength)

	for i := 0; i < TokenNonceLength; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(Base62Len))
		if err != nil {
			return "", fmt.Errorf("failed to generate random number for token nonce: %v", err)
		}

		result[i] = Base62Chars[num.Int64()]
	}

	return string(result), nil
}

// IsValidTokenNonce checks if the given string is a well-formed token nonce:
// length equals TokenNonceLength and all characters belong to the Base62 set.
func IsValidTokenNonce(nonce string) bool {
	if len(nonce) != TokenNonceLength {
		return false
	}

	for _, char := range nonce {
		if !strings.ContainsRune(Base62Chars, char) {
			return false
		}
	}

	return true
}
