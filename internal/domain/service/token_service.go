package service

// TokenService defines the interface for issuing and verifying session tokens.
// Tokens are stateless bearer credentials: possession of a token that
// verifies is the whole authorization, there is no server-side session record.
type TokenService interface {
	// Issue creates a signed token carrying the account ID as subject,
	// valid for a fixed window from now.
	Issue(accountID uint64) (string, error)

	// Verify reports whether the token was signed with this process's secret
	// and has not expired. It returns false on malformed input, a bad
	// signature, or expiry; callers treat false as "reject", without
	// distinguishing why.
	Verify(token string) bool
}
