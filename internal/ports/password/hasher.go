package password

// Hasher es la capacidad de hashear y verificar contraseñas.
// La sal vive dentro del digest; el dominio no la maneja por separado.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}
