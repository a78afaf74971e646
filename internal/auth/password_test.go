package auth

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := ComparePassword(hash, "s3cret"); err != nil {
		t.Fatalf("matching password rejected: %v", err)
	}
	if err := ComparePassword(hash, "wrong"); err == nil {
		t.Fatal("wrong password accepted")
	}
}

func TestPasswordEmptyInputs(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Fatal("empty password should not hash")
	}
	if err := ComparePassword("", "s3cret"); err == nil {
		t.Fatal("empty hash should never match")
	}
	if err := ComparePassword("some-hash", ""); err == nil {
		t.Fatal("empty password should never match")
	}
}
