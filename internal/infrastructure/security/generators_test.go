package security

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestComparePasswordPlain(t *testing.T) {
	t.Parallel()

	if !ComparePassword("open-sesame", "open-sesame") {
		t.Fatal("plain password did not match")
	}
	if ComparePassword("open-sesame", "open") {
		t.Fatal("wrong password matched")
	}
	if ComparePassword("", "") {
		t.Fatal("empty stored password matched")
	}
}

func TestComparePasswordBcrypt(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !ComparePassword(string(hash), "s3cret") {
		t.Fatal("bcrypt password did not match")
	}
	if ComparePassword(string(hash), string(hash)) {
		t.Fatal("hash matched itself as plain text")
	}
}

func TestNewSessionIDUnique(t *testing.T) {
	t.Parallel()

	a, err := NewSessionID()
	if err != nil {
		t.Fatalf("NewSessionID: %v", err)
	}
	b, _ := NewSessionID()
	if a == b {
		t.Fatal("session ids collided")
	}
	if len(strings.SplitN(a, ".", 2)[0]) != 26 {
		t.Fatalf("session id %q lacks a ULID prefix", a)
	}
}
