// Package store maneja la conexión a MongoDB y expone las colecciones
// que usa la aplicación.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// ErrStoreUnavailable indica que no se pudo conectar o verificar MongoDB.
var ErrStoreUnavailable = errors.New("almacén de documentos no disponible")

// Tiempo máximo de selección de servidor al abrir la conexión.
const serverSelectionTimeout = 3 * time.Second

// Nombres de colecciones. Las cuentas de empresa y el recurso "usuarios"
// de la API son entidades independientes y viven en colecciones separadas.
const (
	usersCollection    = "users"
	usuariosCollection = "usuarios"
)

// Store envuelve el cliente de MongoDB con un ciclo de vida explícito:
// se abre al arrancar y se cierra al apagar el servidor.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open abre la conexión y verifica la conectividad con un ping.
// Devuelve ErrStoreUnavailable si la verificación falla.
func Open(ctx context.Context, uri, dbName string) (*Store, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(serverSelectionTimeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, serverSelectionTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &Store{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Ping verifica la conectividad. Lo usa el endpoint /health.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Close cierra la conexión con MongoDB.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Collection devuelve un handle a la colección indicada.
func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// Users devuelve la colección de cuentas de empresa.
func (s *Store) Users() *mongo.Collection {
	return s.Collection(usersCollection)
}

// Usuarios devuelve la colección del recurso "usuarios" de la API.
func (s *Store) Usuarios() *mongo.Collection {
	return s.Collection(usuariosCollection)
}
