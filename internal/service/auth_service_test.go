package service

import (
	"strings"
	"testing"

	"github.com/Bloody-Jeff/uzum-market-clone/internal/repository"
)

func setupAuth(t *testing.T) (*AuthService, repository.Store) {
	t.Helper()
	store := repository.NewMemoryStore()
	return NewAuthService(store, testLogger()), store
}

func registerData() RegisterData {
	return RegisterData{
		FirstName: "Алишер",
		LastName:  "Усманов",
		Email:     "alisher@example.com",
		Phone:     "901234567",
		Password:  "secret123",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	auth, _ := setupAuth(t)
	u, err := auth.Register(registerData())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.ID == "" {
		t.Fatalf("empty user id")
	}
	if u.Phone != "+998901234567" {
		t.Fatalf("phone not normalized: %q", u.Phone)
	}
	// регистрация сразу авторизует
	if cur := auth.CurrentUser(); cur == nil || cur.ID != u.ID {
		t.Fatalf("expected current user after registration")
	}

	auth.Logout()
	if auth.CurrentUser() != nil {
		t.Fatalf("expected no current user after logout")
	}

	got, err := auth.Login("alisher@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("wrong user: %s", got.ID)
	}
}

func TestLoginByPhone(t *testing.T) {
	auth, _ := setupAuth(t)
	if _, err := auth.Register(registerData()); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := auth.Login("901234567", "secret123"); err != nil {
		t.Fatalf("login by phone: %v", err)
	}
}

func TestRegisterDuplicateConflict(t *testing.T) {
	auth, _ := setupAuth(t)
	if _, err := auth.Register(registerData()); err != nil {
		t.Fatalf("register: %v", err)
	}

	// тот же email
	dup := registerData()
	dup.Phone = "909999999"
	if _, err := auth.Register(dup); err != ErrUserExists {
		t.Fatalf("expected ErrUserExists for email, got %v", err)
	}

	// тот же телефон
	dup = registerData()
	dup.Email = "other@example.com"
	if _, err := auth.Register(dup); err != ErrUserExists {
		t.Fatalf("expected ErrUserExists for phone, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	auth, _ := setupAuth(t)
	if _, err := auth.Register(registerData()); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := auth.Login("alisher@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := auth.Login("nobody@example.com", "secret123"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestStoredAccountHasNoPlaintextPassword(t *testing.T) {
	auth, store := setupAuth(t)
	if _, err := auth.Register(registerData()); err != nil {
		t.Fatalf("register: %v", err)
	}
	raw, ok := store.Get(repository.KeyUsers)
	if !ok {
		t.Fatalf("accounts not persisted")
	}
	if strings.Contains(raw, "secret123") {
		t.Fatalf("plaintext password persisted")
	}
}

func TestCurrentUserRestoredFromStore(t *testing.T) {
	auth, store := setupAuth(t)
	u, err := auth.Register(registerData())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	auth2 := NewAuthService(store, testLogger())
	cur := auth2.CurrentUser()
	if cur == nil || cur.ID != u.ID {
		t.Fatalf("current user not restored")
	}
}
