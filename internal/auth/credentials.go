package auth

import (
	"crypto/subtle"
	"errors"
)

// ErrMissingCredentials means ADMIN_USERNAME or ADMIN_PASSWORD is unset. Like
// the signing secret, this is a deployment precondition surfaced on first use.
var ErrMissingCredentials = errors.New("ADMIN_USERNAME or ADMIN_PASSWORD is not configured")

// ValidateCredentials compares a login attempt against the configured admin
// pair. Comparison is constant-time and case-sensitive on both fields.
func ValidateCredentials(expectedUser, expectedPass, username, password string) (bool, error) {
	if expectedUser == "" || expectedPass == "" {
		return false, ErrMissingCredentials
	}

	userOK := subtle.ConstantTimeCompare([]byte(expectedUser), []byte(username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(expectedPass), []byte(password)) == 1
	return userOK && passOK, nil
}
