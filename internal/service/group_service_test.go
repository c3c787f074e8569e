package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mmynk/groupbudget/internal/storage"
)

func TestCreateGroup(t *testing.T) {
	store, jwtManager, logger := newTestDeps(t)
	authSvc := NewAuthService(store, jwtManager, logger)
	svc := NewGroupService(store, logger)
	ctx := context.Background()

	if err := authSvc.Register(ctx, "owner1", "owner@example.com", "password1"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	owner, err := store.GetUserByUsername(ctx, "owner1")
	if err != nil {
		t.Fatalf("GetUserByUsername failed: %v", err)
	}

	t.Run("create succeeds and enrolls owner", func(t *testing.T) {
		group, err := svc.Create(ctx, owner.ID, "Trip", 100)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if group.ID == "" {
			t.Error("expected non-empty group ID")
		}
		if group.OwnerID != owner.ID {
			t.Errorf("owner: expected %s, got %s", owner.ID, group.OwnerID)
		}

		members, err := svc.ListMembers(ctx, group.ID)
		if err != nil {
			t.Fatalf("ListMembers failed: %v", err)
		}
		if len(members) != 1 || members[0] != "owner1" {
			t.Errorf("expected [owner1], got %v", members)
		}
	})

	t.Run("unknown identity", func(t *testing.T) {
		if _, err := svc.Create(ctx, "no-such-user", "Picnic", 0); !errors.Is(err, ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("short name", func(t *testing.T) {
		if _, err := svc.Create(ctx, owner.ID, "X", 0); !errors.Is(err, ErrInvalidName) {
			t.Errorf("expected ErrInvalidName, got %v", err)
		}
	})

	t.Run("negative budget", func(t *testing.T) {
		if _, err := svc.Create(ctx, owner.ID, "Picnic", -1); !errors.Is(err, ErrInvalidBudget) {
			t.Errorf("expected ErrInvalidBudget, got %v", err)
		}
	})

	t.Run("zero budget is allowed", func(t *testing.T) {
		if _, err := svc.Create(ctx, owner.ID, "Zero Budget", 0); err != nil {
			t.Errorf("Create with zero budget failed: %v", err)
		}
	})

	t.Run("duplicate name", func(t *testing.T) {
		if _, err := svc.Create(ctx, owner.ID, "Trip", 0); !errors.Is(err, ErrGroupExists) {
			t.Errorf("expected ErrGroupExists, got %v", err)
		}
	})

	t.Run("owner limit", func(t *testing.T) {
		// Two groups exist already; fill up to the cap.
		for i := 2; i < storage.MaxOwnedGroups; i++ {
			if _, err := svc.Create(ctx, owner.ID, fmt.Sprintf("Group %d", i), 0); err != nil {
				t.Fatalf("Create %d failed: %v", i, err)
			}
		}
		if _, err := svc.Create(ctx, owner.ID, "One Too Many", 0); !errors.Is(err, ErrGroupLimit) {
			t.Errorf("expected ErrGroupLimit, got %v", err)
		}
	})
}

func TestGroupQueries(t *testing.T) {
	store, jwtManager, logger := newTestDeps(t)
	authSvc := NewAuthService(store, jwtManager, logger)
	svc := NewGroupService(store, logger)
	ctx := context.Background()

	for _, u := range []struct{ username, email string }{
		{"owner1", "owner@example.com"},
		{"joiner1", "joiner@example.com"},
	} {
		if err := authSvc.Register(ctx, u.username, u.email, "password1"); err != nil {
			t.Fatalf("Register %s failed: %v", u.username, err)
		}
	}
	owner, _ := store.GetUserByUsername(ctx, "owner1")
	joiner, _ := store.GetUserByUsername(ctx, "joiner1")

	trip, err := svc.Create(ctx, owner.ID, "Trip", 100)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Create(ctx, owner.ID, "Dinner", 50); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.AddMember(ctx, trip.ID, joiner.ID); err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}

	t.Run("ListNames exposes names only", func(t *testing.T) {
		names, err := svc.ListNames(ctx)
		if err != nil {
			t.Fatalf("ListNames failed: %v", err)
		}
		if len(names) != 2 {
			t.Fatalf("expected 2 names, got %v", names)
		}
		want := map[string]bool{"Trip": true, "Dinner": true}
		for _, name := range names {
			if !want[name] {
				t.Errorf("unexpected name %q", name)
			}
		}
	})

	t.Run("ListMembers includes owner and joiner", func(t *testing.T) {
		members, err := svc.ListMembers(ctx, trip.ID)
		if err != nil {
			t.Fatalf("ListMembers failed: %v", err)
		}
		if len(members) != 2 {
			t.Errorf("expected 2 members, got %v", members)
		}
	})

	t.Run("ListMembers unknown group", func(t *testing.T) {
		if _, err := svc.ListMembers(ctx, "no-such-group"); !errors.Is(err, ErrGroupNotFound) {
			t.Errorf("expected ErrGroupNotFound, got %v", err)
		}
	})

	t.Run("ListMine spans owned and joined", func(t *testing.T) {
		mine, err := svc.ListMine(ctx, joiner.ID)
		if err != nil {
			t.Fatalf("ListMine failed: %v", err)
		}
		if len(mine) != 1 || mine[0].Name != "Trip" {
			t.Errorf("expected joiner to see only Trip, got %v", mine)
		}

		owned, err := svc.ListMine(ctx, owner.ID)
		if err != nil {
			t.Fatalf("ListMine failed: %v", err)
		}
		if len(owned) != 2 {
			t.Errorf("expected owner to see 2 groups, got %d", len(owned))
		}
	})
}
