package usuarios

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryRepository guarda los registros en memoria, en orden de
// inserción. Se usa en las pruebas y en el modo diseño.
type MemoryRepository struct {
	mu      sync.RWMutex
	order   []bson.ObjectID
	records map[bson.ObjectID]UserRecord
}

// NewMemoryRepository crea un repositorio en memoria vacío.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[bson.ObjectID]UserRecord)}
}

func (r *MemoryRepository) Insert(_ context.Context, record *UserRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID.IsZero() {
		record.ID = bson.NewObjectID()
	}
	r.records[record.ID] = *record
	r.order = append(r.order, record.ID)
	return nil
}

func (r *MemoryRepository) All(_ context.Context) ([]UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]UserRecord, 0, len(r.order))
	for _, id := range r.order {
		records = append(records, r.records[id])
	}
	return records, nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id bson.ObjectID) (*UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &record, nil
}

func (r *MemoryRepository) UpdateByID(_ context.Context, id bson.ObjectID, patch map[string]any) (*UserRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}

	// Solo los campos del modelo son observables por la API; las claves
	// ajenas se ignoran, igual que al decodificar desde MongoDB. Un valor
	// que no es cadena en un campo del modelo falla como fallaría la
	// decodificación al releer el documento.
	for key, value := range patch {
		switch key {
		case "nombre", "email", "password", "rol":
		default:
			continue
		}
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("actualizando usuario: tipo inválido para %q", key)
		}
		switch key {
		case "nombre":
			record.Nombre = s
		case "email":
			record.Email = s
		case "password":
			record.Password = s
		case "rol":
			record.Rol = s
		}
	}

	r.records[id] = record
	return &record, nil
}

func (r *MemoryRepository) DeleteByID(_ context.Context, id bson.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return ErrNotFound
	}
	delete(r.records, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len devuelve la cantidad de registros guardados.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
