package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Senha123!")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "Senha123!" {
		t.Fatal("hash must not equal plain password")
	}
	if !CheckPassword(hash, "Senha123!") {
		t.Fatal("expected password to match")
	}
	if CheckPassword(hash, "errada") {
		t.Fatal("expected wrong password to fail")
	}
}
