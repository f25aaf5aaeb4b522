package password

import "golang.org/x/crypto/bcrypt"

// Verify reports whether plain matches the stored bcrypt hash.
// A malformed hash compares as false rather than erroring: login fails
// closed, it never leaks why.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// Hash derives a bcrypt hash at the default cost. Used by provisioning
// tooling and tests; the API itself never stores passwords.
func Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
