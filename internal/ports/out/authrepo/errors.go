package authrepo

import "errors"

// ErrNotFound indicates no credential record exists for the given email.
var ErrNotFound = errors.New("credential not found")
