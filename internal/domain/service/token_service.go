package service

import "time"

// TokenService issues and checks signed bearer tokens whose subject is the
// user's email.
type TokenService interface {
	// Issue signs a token for subject. Extra claims cannot override sub, iat or exp.
	Issue(subject string, extraClaims map[string]any) (token string, expiresAt time.Time, err error)

	// Validate reports whether the token parses, is correctly signed and has not
	// expired. It never returns an error.
	Validate(token string) bool

	// ExtractSubject returns the sub claim of a token that passed Validate.
	ExtractSubject(token string) (string, error)
}
