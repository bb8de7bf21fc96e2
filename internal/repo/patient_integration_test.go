package repo

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/termosaude/backend/internal/crypto"
	"github.com/termosaude/backend/internal/testutil"
)

// O índice único parcial em cpf_hash barra dois pacientes ativos com o mesmo
// CPF; após soft delete o CPF pode ser recadastrado. Roda apenas com DATABASE_URL.
func TestPatientCPFHashUniqueness(t *testing.T) {
	ctx := context.Background()
	db, url := testutil.OpenDB(ctx)
	if db == nil {
		if url == "" {
			t.Skip("DATABASE_URL not set")
		}
		t.Fatalf("could not connect to %s", url)
	}
	if err := testutil.MustMigrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	// hash único por execução, para o teste não colidir com rodadas anteriores
	hash := crypto.CPFHash(uuid.New().String())
	keyVer := "v1"
	id1, err := CreatePatient(ctx, db, "Maria Oliveira", nil, nil, []byte("c"), []byte("n"), &keyVer, &hash)
	if err != nil {
		t.Fatalf("create first patient: %v", err)
	}

	found, err := PatientByCPFHash(ctx, db, hash)
	if err != nil {
		t.Fatalf("by cpf hash: %v", err)
	}
	if found.ID != id1 {
		t.Fatal("lookup by cpf hash must return the created patient")
	}

	if _, err := CreatePatient(ctx, db, "Maria Duplicada", nil, nil, []byte("c"), []byte("n"), &keyVer, &hash); err == nil {
		t.Fatal("second active patient with the same cpf hash must be rejected")
	}

	if err := SoftDeletePatient(ctx, db, id1); err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if _, err := CreatePatient(ctx, db, "Maria Recadastrada", nil, nil, []byte("c"), []byte("n"), &keyVer, &hash); err != nil {
		t.Fatalf("re-register after soft delete must be allowed: %v", err)
	}
}
