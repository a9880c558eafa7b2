// Package usuarios implementa la API JSON de CRUD sobre la colección
// "usuarios". Es un recurso independiente de las cuentas de empresa.
package usuarios

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ErrNotFound indica que no existe un registro con ese identificador.
var ErrNotFound = errors.New("usuario no encontrado")

// RolDefault se asigna cuando la petición no indica rol.
const RolDefault = "usuario"

// UserRecord es un registro del recurso "usuarios". El identificador se
// serializa como cadena hexadecimal en las respuestas JSON.
type UserRecord struct {
	ID       bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Nombre   string        `bson:"nombre" json:"nombre"`
	Email    string        `bson:"email" json:"email"`
	Password string        `bson:"password" json:"password"`
	Rol      string        `bson:"rol" json:"rol"`
}

// Repository define el acceso a los registros del recurso.
type Repository interface {
	// Insert guarda un registro nuevo y asigna su identificador.
	Insert(ctx context.Context, record *UserRecord) error
	// All devuelve todos los registros.
	All(ctx context.Context) ([]UserRecord, error)
	// FindByID busca un registro. Devuelve ErrNotFound si no existe.
	FindByID(ctx context.Context, id bson.ObjectID) (*UserRecord, error)
	// UpdateByID aplica una actualización parcial y devuelve el registro
	// actualizado. Devuelve ErrNotFound si no existe.
	UpdateByID(ctx context.Context, id bson.ObjectID, patch map[string]any) (*UserRecord, error)
	// DeleteByID elimina un registro. Devuelve ErrNotFound si no existe.
	DeleteByID(ctx context.Context, id bson.ObjectID) error
}
