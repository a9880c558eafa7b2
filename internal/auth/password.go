package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword genera un hash salado e irreversible de la contraseña.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword verifica la contraseña contra un hash guardado.
// La comparación interna de bcrypt es resistente a ataques de tiempo.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
