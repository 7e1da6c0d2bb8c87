package main

import "testing"

func TestAuthRegisterLogin(t *testing.T) {
	db := openTestDB(t)
	auth := NewAuth(db)

	id, token, err := auth.Register("alice", "secret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token == "" {
		t.Fatal("register should issue a token")
	}

	gotID, name, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if gotID != id || name != "alice" {
		t.Errorf("token claims mismatch: %d %q", gotID, name)
	}

	loginID, _, err := auth.Login("alice", "secret", "1.2.3.4")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loginID != id {
		t.Error("login should return the same account id")
	}

	if _, _, err := auth.Login("alice", "wrong", "1.2.3.4"); err == nil {
		t.Error("wrong password must fail")
	}
	if _, _, err := auth.Login("nobody", "secret", "1.2.3.4"); err == nil {
		t.Error("unknown user must fail")
	}
}

func TestAuthRegisterValidation(t *testing.T) {
	db := openTestDB(t)
	auth := NewAuth(db)

	if _, _, err := auth.Register("a", "secret"); err == nil {
		t.Error("too-short username must fail")
	}
	if _, _, err := auth.Register("alice", "x"); err == nil {
		t.Error("too-short password must fail")
	}
	if _, _, err := auth.Register("alice", "secret"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := auth.Register("alice", "secret"); err == nil {
		t.Error("taken username must fail")
	}
}

func TestAuthLoginRateLimit(t *testing.T) {
	db := openTestDB(t)
	auth := NewAuth(db)
	auth.Register("alice", "secret")

	for i := 0; i < maxLoginAttempts; i++ {
		auth.Login("alice", "wrong", "9.9.9.9")
	}
	if _, _, err := auth.Login("alice", "secret", "9.9.9.9"); err == nil {
		t.Error("attempts past the window limit must be rejected")
	}
	// A different IP is unaffected
	if _, _, err := auth.Login("alice", "secret", "8.8.8.8"); err != nil {
		t.Errorf("other IPs should still log in: %v", err)
	}
}

func TestAuthInvalidToken(t *testing.T) {
	db := openTestDB(t)
	auth := NewAuth(db)
	if _, _, err := auth.ValidateToken("not-a-token"); err == nil {
		t.Error("garbage token must fail")
	}
}

func TestAuthSecretPersists(t *testing.T) {
	db := openTestDB(t)
	a1 := NewAuth(db)
	_, token, err := a1.Register("alice", "secret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// A new Auth over the same database loads the same secret
	a2 := NewAuth(db)
	if _, _, err := a2.ValidateToken(token); err != nil {
		t.Errorf("token should survive an auth restart: %v", err)
	}
}
