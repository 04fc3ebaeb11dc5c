package auth

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	t.Parallel()

	hashed, err := HashPassword("secret1", 4)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hashed == "secret1" {
		t.Fatalf("hash must not equal plaintext")
	}

	if err := ComparePassword(hashed, "secret1"); err != nil {
		t.Fatalf("ComparePassword with correct password: %v", err)
	}
	if err := ComparePassword(hashed, "wrong-password"); err == nil {
		t.Fatalf("expected error for wrong password, got nil")
	}
}
