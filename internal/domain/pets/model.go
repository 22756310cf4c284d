package pets

// Type define los tipos de mascota soportados.
// @Enum dog, cat, bird, other
type Type string

const (
	TypeDog   Type = "dog"
	TypeCat   Type = "cat"
	TypeBird  Type = "bird"
	TypeOther Type = "other"
)

// ValidType reporta si t es uno de los tipos soportados.
func ValidType(t Type) bool {
	switch t {
	case TypeDog, TypeCat, TypeBird, TypeOther:
		return true
	}
	return false
}

// Pet representa el perfil de una mascota registrada en el sistema.
// ID lo asigna el repositorio al crear; el caller nunca lo fija.
type Pet struct {
	ID        int64
	Name      string
	Type      Type
	Age       int
	OwnerName string
}
