package helpers

import "testing"

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword(hash, "secret123") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "secret124") {
		t.Error("wrong password accepted")
	}
}

func TestPasswordHashIsSalted(t *testing.T) {
	h1, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical; salt missing")
	}
}
