package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"skycast/config"
	"skycast/internal/domain/service"
	"skycast/internal/errors"
)

// tokenTTL is the fixed validity window of a session token. There is no
// refresh or revocation; a token simply outlives its usefulness.
const tokenTTL = 24 * time.Hour

// Claims defines the claim section of the session token.
type Claims struct {
	UserID uint64 `json:"user_id"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface
// using HMAC-signed JWTs. The signing secret is injected exactly once at
// construction; there is no lazy global key state.
type jwtService struct {
	secret []byte
}

// NewJWTService is the constructor for jwtService. An empty secret is a
// configuration error and must abort startup, never surface per-request.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("token signing secret must be provided, set SECRETKEY_TOKEN")
	}

	return &jwtService{secret: []byte(cfg.SecretKey.Token)}, nil
}

// Issue creates a signed token for the account, expiring after tokenTTL.
// The encoding is a standard JWT so any verifier holding the secret can
// validate it independently.
func (s *jwtService) Issue(accountID uint64) (string, error) {
	return s.issueWithTTL(accountID, tokenTTL)
}

func (s *jwtService) issueWithTTL(accountID uint64, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks the signature and expiration against the process secret.
// Malformed input, a foreign signature, and an expired token all report
// false; authorization is by possession only and callers never learn why
// a token was rejected.
func (s *jwtService) Verify(tokenString string) bool {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})

	return err == nil && token.Valid
}
