package common

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// StateSigner issues and validates the OAuth state parameter as a short-lived
// HMAC-signed JWT carrying the ID token nonce.
type StateSigner struct {
	secretKey []byte
	ttl       time.Duration
}

func NewStateSigner(secretKey []byte, ttl time.Duration) *StateSigner {
	return &StateSigner{secretKey: secretKey, ttl: ttl}
}

type stateClaims struct {
	Nonce string `json:"nonce"`
	jwt.RegisteredClaims
}

// Issue returns a signed state and the nonce embedded in it.
func (s *StateSigner) Issue() (state string, nonce string, err error) {
	nonce, err = randomHex(16)
	if err != nil {
		return "", "", err
	}

	now := time.Now()
	claims := stateClaims{
		Nonce: nonce,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	state, err = token.SignedString(s.secretKey)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign state: %w", err)
	}
	return state, nonce, nil
}

// Validate checks the signature and expiry of state and returns its nonce.
func (s *StateSigner) Validate(state string) (string, error) {
	var claims stateClaims
	token, err := jwt.ParseWithClaims(state, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse state: %w", err)
	}
	if !token.Valid || claims.Nonce == "" {
		return "", errors.New("invalid state")
	}
	return claims.Nonce, nil
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
