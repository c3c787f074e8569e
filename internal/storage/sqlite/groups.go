package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/groupbudget/internal/models"
	"github.com/mmynk/groupbudget/internal/storage"
)

// CreateGroup persists a new group and its owner membership in a single
// transaction. The owned-group count check happens inside the same
// transaction, and the store serializes write transactions on one
// connection, so two concurrent creates cannot both pass the check at four
// owned groups.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	// Generate IDs if not set
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var owned int
	err = tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM groups WHERE owner_id = ?",
		group.OwnerID,
	).Scan(&owned)
	if err != nil {
		return fmt.Errorf("failed to count owned groups: %w", err)
	}
	if owned >= storage.MaxOwnedGroups {
		return storage.ErrOwnerLimit
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO groups (id, name, budget, owner_id, created_at) VALUES (?, ?, ?, ?, ?)",
		group.ID, group.Name, group.Budget, group.OwnerID, group.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group: %w", translateErr(err))
	}

	// Owner is always a member.
	_, err = tx.ExecContext(ctx,
		"INSERT INTO group_members (group_id, user_id, created_at) VALUES (?, ?, ?)",
		group.ID, group.OwnerID, group.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert owner membership: %w", translateErr(err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetGroup retrieves a group by ID.
func (s *SQLiteStore) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	group := &models.Group{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, budget, owner_id, created_at FROM groups WHERE id = ?",
		groupID,
	).Scan(&group.ID, &group.Name, &group.Budget, &group.OwnerID, &group.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return group, nil
}

// ListGroups retrieves all groups.
func (s *SQLiteStore) ListGroups(ctx context.Context) ([]*models.Group, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, budget, owner_id, created_at FROM groups ORDER BY created_at",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	return scanGroups(rows)
}

// ListGroupMembers returns the usernames of a group's members.
func (s *SQLiteStore) ListGroupMembers(ctx context.Context, groupID string) ([]string, error) {
	// Existence check first so an unknown group is a not-found error,
	// not an empty list.
	if _, err := s.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT u.username
		 FROM group_members m
		 JOIN users u ON u.id = m.user_id
		 WHERE m.group_id = ?
		 ORDER BY u.username`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list group members: %w", err)
	}
	defer rows.Close()

	var members []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, username)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}

// ListGroupsByUser returns every group the user belongs to.
func (s *SQLiteStore) ListGroupsByUser(ctx context.Context, userID string) ([]*models.Group, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT g.id, g.name, g.budget, g.owner_id, g.created_at
		 FROM groups g
		 JOIN group_members m ON m.group_id = g.id
		 WHERE m.user_id = ?
		 ORDER BY g.created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups by user: %w", err)
	}
	defer rows.Close()

	return scanGroups(rows)
}

// AddMember adds a user to a group. Re-adding an existing member is a no-op.
func (s *SQLiteStore) AddMember(ctx context.Context, groupID, userID string) error {
	if _, err := s.GetGroup(ctx, groupID); err != nil {
		return err
	}
	if _, err := s.GetUserByID(ctx, userID); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO group_members (group_id, user_id, created_at) VALUES (?, ?, ?)",
		groupID, userID, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to add member: %w", translateErr(err))
	}

	return nil
}

func scanGroups(rows *sql.Rows) ([]*models.Group, error) {
	var groups []*models.Group
	for rows.Next() {
		group := &models.Group{}
		if err := rows.Scan(&group.ID, &group.Name, &group.Budget, &group.OwnerID, &group.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}
	return groups, nil
}
