package helpers

import "golang.org/x/crypto/bcrypt"

// HashPassword produces the bcrypt hash stored on a user row. Plaintext
// passwords never reach persistence; entity.NewUser and SetPassword call
// this before any write.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword reports whether plain matches the stored hash.
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
