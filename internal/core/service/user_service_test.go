package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/identityworks/user-api/internal/core/domain"
)

func TestUserService_GetAllRedactsHashes(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(t, "alice", "alice@example.com", "pass12345", domain.RoleUser, true)
	repo.seed(t, "root", "root@example.com", "pass12345", domain.RoleAdmin, true)
	svc := NewUserService(repo, zerolog.Nop())

	accounts, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	for _, a := range accounts {
		if a.PasswordHash != "" {
			t.Fatalf("account %s leaked its hash", a.Username)
		}
	}
}

func TestUserService_GetByID(t *testing.T) {
	repo := newStubUserRepo()
	seeded := repo.seed(t, "alice", "alice@example.com", "pass12345", domain.RoleUser, true)
	svc := NewUserService(repo, zerolog.Nop())

	account, err := svc.GetByID(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if account.Username != "alice" || account.PasswordHash != "" {
		t.Fatalf("unexpected account: %+v", account)
	}

	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestUserService_StoreFailure(t *testing.T) {
	repo := newStubUserRepo()
	repo.failWith = errors.New("connection reset")
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.GetAll(context.Background()); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
	if _, err := svc.GetByID(context.Background(), "id_1"); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
