package models

import (
	"time"

	"github.com/google/uuid"
)

// Group represents a named budget pool owned by one user.
//
// The owner is fixed at creation and is always a member. Other users join
// through the membership relation; a user may own at most five groups but
// may join any number as a non-owner.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the unique display name (4-32 chars).
	Name string

	// Budget is the group's budget. Non-negative, defaults to 0.
	Budget float64

	// OwnerID references the User who created the group.
	OwnerID string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// NewGroup creates a Group with a fresh UUID and timestamp.
func NewGroup(name string, budget float64, ownerID string) *Group {
	return &Group{
		ID:        uuid.New().String(),
		Name:      name,
		Budget:    budget,
		OwnerID:   ownerID,
		CreatedAt: time.Now().Unix(),
	}
}

// Membership links a User to a Group. The (UserID, GroupID) pair is unique;
// the store inserts one for the owner as part of group creation.
type Membership struct {
	UserID  string
	GroupID string

	// CreatedAt is the Unix timestamp when the user joined.
	CreatedAt int64
}
