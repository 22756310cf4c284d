package hashing

import (
	"golang.org/x/crypto/bcrypt"

	"pets-users-service/internal/ports/password"
)

// Bcrypt implementa password.Hasher con bcrypt salado.
// En producción este es el único hasher válido: nunca comparación plaintext.
type Bcrypt struct {
	cost int
}

var _ password.Hasher = (*Bcrypt)(nil)

func NewBcrypt() *Bcrypt {
	return &Bcrypt{cost: bcrypt.DefaultCost}
}

func (b *Bcrypt) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), b.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (b *Bcrypt) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
