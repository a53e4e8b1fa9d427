package cryptox

import "testing"

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw1", DefaultCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "pw1" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPassword("pw1", hash) {
		t.Fatal("expected matching password to verify")
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw1", DefaultCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if CheckPassword("pw2", hash) {
		t.Fatal("expected mismatching password to fail")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same", DefaultCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("same", DefaultCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatal("expected distinct hashes for identical passwords")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	if CheckPassword("pw", "not-a-bcrypt-hash") {
		t.Fatal("expected malformed hash to fail verification")
	}
}

func TestHashPassword_ZeroCostFallsBackToDefault(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw", 0)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !CheckPassword("pw", hash) {
		t.Fatal("expected hash produced with default cost to verify")
	}
}
