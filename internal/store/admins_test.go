package store

import (
	"context"
	"errors"
	"testing"

	"github.com/arpmotors/siteadmin/internal/model"
)

func TestCreateAdminAndGet(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	admin := &model.Admin{
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: "$2a$10$fakehashfortests",
	}
	if err := st.CreateAdmin(ctx, admin); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	if admin.ID == 0 {
		t.Error("expected ID to be populated after insert")
	}
	if admin.CreatedAt.IsZero() || admin.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be populated after insert")
	}

	got, err := st.GetAdminByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("GetAdminByUsername: %v", err)
	}
	if got.ID != admin.ID {
		t.Errorf("id: got %d, want %d", got.ID, admin.ID)
	}
	if got.PasswordHash != admin.PasswordHash {
		t.Errorf("password hash: got %q, want %q", got.PasswordHash, admin.PasswordHash)
	}
}

func TestCreateAdminDuplicateUsername(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	first := &model.Admin{Username: "admin", PasswordHash: "h1"}
	if err := st.CreateAdmin(ctx, first); err != nil {
		t.Fatalf("first CreateAdmin: %v", err)
	}

	dup := &model.Admin{Username: "admin", PasswordHash: "h2"}
	if err := st.CreateAdmin(ctx, dup); !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestGetAdminByUsernameNotFound(t *testing.T) {
	st := newTestStore(t)
	if _, err := st.GetAdminByUsername(context.Background(), "nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestHasAnyAdmin(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	has, err := st.HasAnyAdmin(ctx)
	if err != nil {
		t.Fatalf("HasAnyAdmin: %v", err)
	}
	if has {
		t.Error("expected no admins in fresh store")
	}

	if err := st.CreateAdmin(ctx, &model.Admin{Username: "admin", PasswordHash: "h"}); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}

	has, err = st.HasAnyAdmin(ctx)
	if err != nil {
		t.Fatalf("HasAnyAdmin: %v", err)
	}
	if !has {
		t.Error("expected HasAnyAdmin to report true after create")
	}
}

func TestUpdateAdminPassword(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	admin := &model.Admin{Username: "admin", PasswordHash: "old-hash"}
	if err := st.CreateAdmin(ctx, admin); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}

	if err := st.UpdateAdminPassword(ctx, admin.ID, "new-hash"); err != nil {
		t.Fatalf("UpdateAdminPassword: %v", err)
	}

	got, err := st.GetAdminByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("GetAdminByUsername: %v", err)
	}
	if got.PasswordHash != "new-hash" {
		t.Errorf("password hash: got %q, want %q", got.PasswordHash, "new-hash")
	}

	if err := st.UpdateAdminPassword(ctx, 9999, "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestListAdminsOrdered(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"zoe", "alice", "mike"} {
		if err := st.CreateAdmin(ctx, &model.Admin{Username: name, PasswordHash: "h"}); err != nil {
			t.Fatalf("CreateAdmin(%s): %v", name, err)
		}
	}

	admins, err := st.ListAdmins(ctx)
	if err != nil {
		t.Fatalf("ListAdmins: %v", err)
	}
	if len(admins) != 3 {
		t.Fatalf("count: got %d, want 3", len(admins))
	}
	want := []string{"alice", "mike", "zoe"}
	for i, w := range want {
		if admins[i].Username != w {
			t.Errorf("admins[%d]: got %q, want %q", i, admins[i].Username, w)
		}
	}
}
