// Package repo stores users and their saved vessel definitions.
package repo

import (
	"context"
	"errors"
	"time"

	"Vesselcalc/internal/calc/vessel"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

type SavedVessel struct {
	ID        int          `json:"id"`
	UserID    int          `json:"-"`
	Name      string       `json:"name"`
	Input     vessel.Input `json:"input"`
	CreatedAt time.Time    `json:"created_at"`
}

type UserRepository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	// GetByLogin returns the user id and password hash.
	GetByLogin(ctx context.Context, login string) (int, string, error)
}

// VesselRepository scopes every saved vessel to its owner; another user's
// vessel is reported as ErrNotFound.
type VesselRepository interface {
	SaveVessel(ctx context.Context, userID int, name string, in vessel.Input) (SavedVessel, error)
	ListVessels(ctx context.Context, userID int) ([]SavedVessel, error)
	GetVessel(ctx context.Context, userID, id int) (SavedVessel, error)
	DeleteVessel(ctx context.Context, userID, id int) error
}

type Repository interface {
	UserRepository
	VesselRepository
}
