package domain

import "errors"

var ErrTokenMalformed = errors.New("token malformed")
var ErrTokenSignatureInvalid = errors.New("token signature invalid")
var ErrTokenExpired = errors.New("token expired")

// Identity is the set of verified claims attached to a request after the
// bearer token has been validated. It is the only caller information the
// service layer trusts.
type Identity struct {
	ID    string
	Role  string
	Email string
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
