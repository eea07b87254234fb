package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentials_Validate_Valid(t *testing.T) {
	tests := []struct {
		name        string
		credentials Credentials
	}{
		{
			name:        "plain alphanumeric",
			credentials: Credentials{Username: "user01", Email: "user@example.com", Password: "Password123"},
		},
		{
			name:        "dots and underscores in username",
			credentials: Credentials{Username: "first.last_99", Email: "first.last@sub.example.co", Password: "Password123"},
		},
		{
			name:        "password with allowed symbols",
			credentials: Credentials{Username: "snow.fan", Email: "snow@example.com", Password: "p@ssw0rd!{}[]"},
		},
		{
			name:        "boundary lengths",
			credentials: Credentials{Username: strings.Repeat("a", 24), Email: "a@b.co", Password: strings.Repeat("p", 32)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, tt.credentials.Validate())
		})
	}
}

func TestCredentials_Validate_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		credentials Credentials
		wantErr     error
	}{
		{
			name:        "username too short",
			credentials: Credentials{Username: "abcde", Email: "a@b.co", Password: "Password123"},
			wantErr:     ErrUsernameLength,
		},
		{
			name:        "username too long",
			credentials: Credentials{Username: strings.Repeat("a", 25), Email: "a@b.co", Password: "Password123"},
			wantErr:     ErrUsernameLength,
		},
		{
			name:        "username with space",
			credentials: Credentials{Username: "user name", Email: "a@b.co", Password: "Password123"},
			wantErr:     ErrUsernameCharset,
		},
		{
			name:        "username with dash",
			credentials: Credentials{Username: "user-name", Email: "a@b.co", Password: "Password123"},
			wantErr:     ErrUsernameCharset,
		},
		{
			name:        "email without at sign",
			credentials: Credentials{Username: "user01", Email: "not-an-email", Password: "Password123"},
			wantErr:     ErrEmailInvalid,
		},
		{
			name:        "empty email",
			credentials: Credentials{Username: "user01", Email: "", Password: "Password123"},
			wantErr:     ErrEmailInvalid,
		},
		{
			name:        "password too short",
			credentials: Credentials{Username: "user01", Email: "a@b.co", Password: "short"},
			wantErr:     ErrPasswordLength,
		},
		{
			name:        "password too long",
			credentials: Credentials{Username: "user01", Email: "a@b.co", Password: strings.Repeat("p", 33)},
			wantErr:     ErrPasswordLength,
		},
		{
			name:        "password with disallowed symbol",
			credentials: Credentials{Username: "user01", Email: "a@b.co", Password: `Password"123`},
			wantErr:     ErrPasswordCharset,
		},
		{
			name:        "password with space",
			credentials: Credentials{Username: "user01", Email: "a@b.co", Password: "Pass word123"},
			wantErr:     ErrPasswordCharset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.credentials.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCredentials_Validate_StopsAtFirstViolation(t *testing.T) {
	// Every field is bad; the username check runs first.
	credentials := Credentials{Username: "x", Email: "bad", Password: "y"}

	assert.ErrorIs(t, credentials.Validate(), ErrUsernameLength)
}
