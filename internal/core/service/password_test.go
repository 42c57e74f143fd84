package service

import (
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher(12, zerolog.Nop())

	hash, err := h.Hash("s3cretPass!")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "s3cretPass!" {
		t.Fatalf("hash equals plaintext")
	}
	if !h.Verify("s3cretPass!", hash) {
		t.Fatalf("Verify rejected the original password")
	}
	if h.Verify("wrongPass", hash) {
		t.Fatalf("Verify accepted a wrong password")
	}
}

func TestPasswordHasher_FreshSaltPerCall(t *testing.T) {
	h := NewPasswordHasher(12, zerolog.Nop())

	first, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("first Hash: %v", err)
	}
	second, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("second Hash: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same input are identical, salt is not fresh")
	}
}

func TestPasswordHasher_MalformedHashIsFalse(t *testing.T) {
	h := NewPasswordHasher(12, zerolog.Nop())

	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$xx$garbage"} {
		if h.Verify("anything", hash) {
			t.Fatalf("Verify accepted malformed hash %q", hash)
		}
	}
}

func TestPasswordHasher_CostFloor(t *testing.T) {
	h := NewPasswordHasher(4, zerolog.Nop())

	hash, err := h.Hash("abc")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("Cost: %v", err)
	}
	if cost < 12 {
		t.Fatalf("work factor %d below the floor", cost)
	}
}

func TestPasswordHasher_DummyHashNeverMatches(t *testing.T) {
	h := NewPasswordHasher(12, zerolog.Nop())

	if h.Verify("anything", h.DummyHash()) {
		t.Fatalf("dummy hash verified a password")
	}
}
