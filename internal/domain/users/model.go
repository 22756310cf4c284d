package users

import (
	"net/mail"
	"strings"
)

// StatusPorVerificar es el estado inicial de todo usuario recién creado.
// El status es texto libre; solo se muta vía update/patch explícito.
const StatusPorVerificar = "POR_VERIFICAR"

// User representa un usuario del sistema.
// Password guarda el digest (nunca el plaintext) una vez que pasa por el Service.
// ID lo asigna el repositorio al crear; el caller nunca lo fija.
type User struct {
	ID          int64
	Username    string
	Password    string
	Email       string
	DNI         string
	FullName    string
	PhoneNumber string
	Status      string
}

// Patch describe una actualización parcial. nil = no tocar ese campo.
// Solo estos cuatro campos opcionales son parcheables.
type Patch struct {
	FullName    *string
	PhoneNumber *string
	DNI         *string
	Status      *string
}

// Empty reporta si el patch no trae ningún campo.
func (p Patch) Empty() bool {
	return p.FullName == nil && p.PhoneNumber == nil && p.DNI == nil && p.Status == nil
}

func (p Patch) apply(u User) User {
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.PhoneNumber != nil {
		u.PhoneNumber = *p.PhoneNumber
	}
	if p.DNI != nil {
		u.DNI = *p.DNI
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
	return u
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(strings.TrimSpace(s))
	// mail.ParseAddress acepta "Nombre <a@x.com>"; exigimos la dirección pelada.
	return err == nil && addr.Address == strings.TrimSpace(s)
}
