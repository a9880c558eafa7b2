package auth

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryRepository guarda las cuentas en memoria. Se usa en las pruebas
// y cuando el modo diseño simula el almacén.
type MemoryRepository struct {
	mu       sync.RWMutex
	accounts map[string]Account // indexadas por correo
}

// NewMemoryRepository crea un repositorio en memoria vacío.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{accounts: make(map[string]Account)}
}

func (r *MemoryRepository) FindByEmail(_ context.Context, email string) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &account, nil
}

func (r *MemoryRepository) Insert(_ context.Context, account *Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if account.ID.IsZero() {
		account.ID = bson.NewObjectID()
	}
	r.accounts[account.Email] = *account
	return nil
}

// Len devuelve la cantidad de cuentas guardadas.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}
