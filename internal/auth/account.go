// Package auth implementa el registro, inicio y cierre de sesión de las
// cuentas de empresa, y el middleware que protege las páginas privadas.
package auth

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ErrNotFound indica que no existe una cuenta con ese correo.
var ErrNotFound = errors.New("cuenta no encontrada")

// Account es una cuenta de empresa. No confundir con el recurso
// "usuarios" de la API, que es una entidad independiente.
type Account struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Company      string        `bson:"company"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"password_hash"`
}

// Repository define el acceso a las cuentas de empresa.
type Repository interface {
	// FindByEmail busca una cuenta por correo normalizado.
	// Devuelve ErrNotFound si no existe.
	FindByEmail(ctx context.Context, email string) (*Account, error)
	// Insert guarda una cuenta nueva y asigna su identificador.
	Insert(ctx context.Context, account *Account) error
}
