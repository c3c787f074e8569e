package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mmynk/groupbudget/internal/models"
	"github.com/mmynk/groupbudget/internal/storage"
)

var (
	ErrInvalidName   = errors.New("Name must be between 4 and 32 characters long")
	ErrInvalidBudget = errors.New("Budget must be a positive number")
	ErrGroupLimit    = errors.New("You have reached the limit of groups")
	ErrGroupExists   = errors.New("Group already exists")
	ErrGroupNotFound = errors.New("Group not found")
)

// GroupService implements the group lifecycle and membership queries.
type GroupService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store, logger *slog.Logger) *GroupService {
	return &GroupService{store: store, logger: logger}
}

// Create makes a new group owned by ownerID and enrolls the owner as its
// first member. A missing budget defaults to 0; negative budgets are
// rejected. The five-owned-groups limit and the name uniqueness constraint
// are both enforced by the store inside one transaction.
func (s *GroupService) Create(ctx context.Context, ownerID, name string, budget float64) (*models.Group, error) {
	s.logger.Info("CreateGroup request", "name", name, "owner_id", ownerID)

	// The token's identity must still resolve to a stored user; a stale
	// token for a wiped database must not create orphan groups.
	owner, err := s.store.GetUserByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("CreateGroup owner lookup failed", "owner_id", ownerID, "error", err)
		return nil, err
	}

	if len(name) < 4 || len(name) > 32 {
		return nil, ErrInvalidName
	}
	if budget < 0 {
		return nil, ErrInvalidBudget
	}

	group := models.NewGroup(name, budget, owner.ID)
	if err := s.store.CreateGroup(ctx, group); err != nil {
		switch {
		case errors.Is(err, storage.ErrOwnerLimit):
			s.logger.Warn("CreateGroup limit reached", "owner_id", ownerID)
			return nil, ErrGroupLimit
		case errors.Is(err, storage.ErrConflict):
			s.logger.Warn("CreateGroup name conflict", "name", name)
			return nil, ErrGroupExists
		default:
			s.logger.Error("CreateGroup failed", "name", name, "error", err)
			return nil, err
		}
	}

	s.logger.Info("Group created", "group_id", group.ID, "name", name)
	return group, nil
}

// ListNames returns the names of all groups. Budgets, owners, and
// membership are not exposed on the public listing.
func (s *GroupService) ListNames(ctx context.Context) ([]string, error) {
	groups, err := s.store.ListGroups(ctx)
	if err != nil {
		s.logger.Error("ListGroups failed", "error", err)
		return nil, err
	}

	names := make([]string, len(groups))
	for i, group := range groups {
		names[i] = group.Name
	}
	return names, nil
}

// ListMembers returns the usernames of a group's members, owner included.
func (s *GroupService) ListMembers(ctx context.Context, groupID string) ([]string, error) {
	members, err := s.store.ListGroupMembers(ctx, groupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrGroupNotFound
		}
		s.logger.Error("ListMembers failed", "group_id", groupID, "error", err)
		return nil, err
	}
	return members, nil
}

// ListMine returns every group the user is a member of, whether as owner
// or as a joined member.
func (s *GroupService) ListMine(ctx context.Context, userID string) ([]*models.Group, error) {
	groups, err := s.store.ListGroupsByUser(ctx, userID)
	if err != nil {
		s.logger.Error("ListMine failed", "user_id", userID, "error", err)
		return nil, err
	}
	return groups, nil
}
