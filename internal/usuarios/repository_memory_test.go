package usuarios

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestMemoryRepositoryInsertAssignsID(t *testing.T) {
	repo := NewMemoryRepository()
	record := &UserRecord{Nombre: "Ana", Email: "a@x.com", Password: "p", Rol: RolDefault}

	if err := repo.Insert(context.Background(), record); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if record.ID.IsZero() {
		t.Fatal("Insert should assign an id")
	}
}

func TestMemoryRepositoryUpdateMergesFields(t *testing.T) {
	repo := NewMemoryRepository()
	record := &UserRecord{Nombre: "Ana", Email: "a@x.com", Password: "p", Rol: RolDefault}
	if err := repo.Insert(context.Background(), record); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	updated, err := repo.UpdateByID(context.Background(), record.ID, map[string]any{
		"rol":   "admin",
		"extra": "ignorado",
	})
	if err != nil {
		t.Fatalf("UpdateByID returned error: %v", err)
	}
	if updated.Rol != "admin" {
		t.Errorf("unexpected rol: %s", updated.Rol)
	}
	if updated.Nombre != "Ana" || updated.Email != "a@x.com" {
		t.Errorf("untouched fields changed: %#v", updated)
	}
}

func TestMemoryRepositoryUpdateRejectsNonStringValue(t *testing.T) {
	repo := NewMemoryRepository()
	record := &UserRecord{Nombre: "Ana", Email: "a@x.com", Password: "p", Rol: RolDefault}
	if err := repo.Insert(context.Background(), record); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	// En MongoDB un $set con un tipo ajeno al modelo hace fallar la
	// relectura del documento; el repositorio en memoria falla igual.
	if _, err := repo.UpdateByID(context.Background(), record.ID, map[string]any{
		"nombre": 5,
	}); err == nil {
		t.Fatal("expected error for a non-string model field")
	}

	kept, err := repo.FindByID(context.Background(), record.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if kept.Nombre != "Ana" {
		t.Errorf("record changed by a rejected patch: %#v", kept)
	}
}

func TestMemoryRepositoryNotFound(t *testing.T) {
	repo := NewMemoryRepository()
	id := bson.NewObjectID()

	if _, err := repo.FindByID(context.Background(), id); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID: expected ErrNotFound, got %v", err)
	}
	if _, err := repo.UpdateByID(context.Background(), id, map[string]any{"rol": "x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateByID: expected ErrNotFound, got %v", err)
	}
	if err := repo.DeleteByID(context.Background(), id); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteByID: expected ErrNotFound, got %v", err)
	}
}
