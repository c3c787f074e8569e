// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/groupbudget/internal/models"
)

var (
	// ErrNotFound is returned when a user or group does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when an insert violates a uniqueness
	// constraint (username, email, or group name already taken).
	ErrConflict = errors.New("record already exists")

	// ErrOwnerLimit is returned when creating a group would push its
	// owner past the five-owned-groups limit.
	ErrOwnerLimit = errors.New("owner group limit reached")
)

// MaxOwnedGroups is the maximum number of groups a single user may own.
// Membership in groups owned by others is unbounded.
const MaxOwnedGroups = 5

// Store defines the interface for user and group storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
type Store interface {
	// CreateUser persists a new user. Returns ErrConflict if the
	// username or email is already taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves a user by username.
	// Returns ErrNotFound if no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	// Returns ErrNotFound if no such user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// CreateGroup persists a new group and adds the owner as its first
	// member, atomically. Returns ErrOwnerLimit if the owner already owns
	// MaxOwnedGroups groups, and ErrConflict if the name is taken.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group by ID.
	// Returns ErrNotFound if no such group exists.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroups retrieves all groups.
	ListGroups(ctx context.Context) ([]*models.Group, error)

	// ListGroupMembers returns the usernames of a group's members,
	// owner included. Returns ErrNotFound if the group does not exist.
	ListGroupMembers(ctx context.Context, groupID string) ([]string, error)

	// ListGroupsByUser returns every group the user is a member of,
	// whether as owner or as a joined member.
	ListGroupsByUser(ctx context.Context, userID string) ([]*models.Group, error)

	// AddMember adds a user to a group. Adding an existing member is a
	// no-op. Returns ErrNotFound if the group or user does not exist.
	AddMember(ctx context.Context, groupID, userID string) error

	// Close releases any resources held by the store.
	Close() error
}
