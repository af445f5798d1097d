package repo

import (
	"context"
	"errors"
	"testing"

	"Vesselcalc/internal/calc/vessel"
)

func TestMemoryUsers(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	id, err := m.CreateUser(ctx, "alice", "a@example.com", "hash")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.CreateUser(ctx, "alice", "b@example.com", "x"); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate CreateUser error = %v, want ErrConflict", err)
	}

	got, hash, err := m.GetByLogin(ctx, "alice")
	if err != nil || got != id || hash != "hash" {
		t.Errorf("GetByLogin = %d, %q, %v", got, hash, err)
	}
	if _, _, err := m.GetByLogin(ctx, "bob"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByLogin(bob) error = %v, want ErrNotFound", err)
	}
}

func TestMemoryVessels(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	in := vessel.Input{Kind: vessel.SphericalTank, Dimensions: vessel.Dimensions{Diameter: 3}}

	a, err := m.SaveVessel(ctx, 1, "sphere", in)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := m.SaveVessel(ctx, 1, "second", in)
	other, _ := m.SaveVessel(ctx, 2, "theirs", in)

	list, err := m.ListVessels(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].ID != a.ID || list[1].ID != b.ID {
		t.Errorf("ListVessels(1) = %+v", list)
	}

	got, err := m.GetVessel(ctx, 1, a.ID)
	if err != nil || got.Name != "sphere" || got.Input != in {
		t.Errorf("GetVessel = %+v, %v", got, err)
	}
	if _, err := m.GetVessel(ctx, 1, other.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetVessel(other user) error = %v, want ErrNotFound", err)
	}

	if err := m.DeleteVessel(ctx, 1, other.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteVessel(other user) error = %v, want ErrNotFound", err)
	}
	if err := m.DeleteVessel(ctx, 1, a.ID); err != nil {
		t.Fatal(err)
	}
	if err := m.DeleteVessel(ctx, 1, a.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteVessel error = %v, want ErrNotFound", err)
	}
	if list, _ := m.ListVessels(ctx, 1); len(list) != 1 {
		t.Errorf("after delete len = %d, want 1", len(list))
	}
}
