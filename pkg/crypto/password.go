package crypto

import "golang.org/x/crypto/bcrypt"

// hashCost is the bcrypt cost factor all stored password hashes were written
// with. New hashes must stay comparable across deployments.
const hashCost = 12

// HashPassword hashes plaintext concatenated with the server-side pepper.
func HashPassword(plain, pepper string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plain+pepper), hashCost)
}

// ComparePassword compares peppered plaintext against a stored hash.
func ComparePassword(hash []byte, plain, pepper string) error {
	return bcrypt.CompareHashAndPassword(hash, []byte(plain+pepper))
}
