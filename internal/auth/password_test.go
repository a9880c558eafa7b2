package auth

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secreto123")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "secreto123" {
		t.Fatal("hash must not equal the plaintext password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("unexpected hash format: %s", hash)
	}

	if !CheckPassword("secreto123", hash) {
		t.Error("CheckPassword rejected the correct password")
	}
	if CheckPassword("otra", hash) {
		t.Error("CheckPassword accepted a wrong password")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("secreto123")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	second, err := HashPassword("secreto123")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password should differ")
	}
}
