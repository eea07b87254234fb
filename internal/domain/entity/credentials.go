package entity

import (
	"errors"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	usernameMinLen = 6
	usernameMaxLen = 24
	passwordMinLen = 8
	passwordMaxLen = 32

	// passwordSymbols is the fixed set of symbols allowed in passwords,
	// in addition to letters and digits.
	passwordSymbols = "~!@$%^&*()_-+={[}]|:',.?/"
)

// Validation errors returned by Credentials.Validate. Each names the first
// constraint the input violated.
var (
	ErrUsernameLength  = errors.New("username must be between 6 and 24 characters")
	ErrUsernameCharset = errors.New("username can only contain letters, numbers, dots and underscores")
	ErrEmailInvalid    = errors.New("email address is not valid")
	ErrPasswordLength  = errors.New("password must be between 8 and 32 characters")
	ErrPasswordCharset = errors.New("password can only contain letters, numbers and symbols " + passwordSymbols)
)

var emailValidator = validator.New()

// Credentials is the raw registration input. It is validated as a whole
// before any hashing or storage happens; a failed Validate means the
// registration flow stops with no side effects.
type Credentials struct {
	Username string
	Email    string
	Password string
}

// Validate checks all three fields against the registration constraints and
// returns the first violation found, or nil if the credentials are well formed.
func (c Credentials) Validate() error {
	if len(c.Username) < usernameMinLen || len(c.Username) > usernameMaxLen {
		return ErrUsernameLength
	}

	for _, r := range c.Username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.' && r != '_' {
			return ErrUsernameCharset
		}
	}

	if err := emailValidator.Var(c.Email, "required,email"); err != nil {
		return ErrEmailInvalid
	}

	if len(c.Password) < passwordMinLen || len(c.Password) > passwordMaxLen {
		return ErrPasswordLength
	}

	for _, r := range c.Password {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		if !containsRune(passwordSymbols, r) {
			return ErrPasswordCharset
		}
	}

	return nil
}

func containsRune(set string, r rune) bool {
	for _, s := range set {
		if s == r {
			return true
		}
	}

	return false
}
