package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"bld/internal/models"
)

const deadlineColumns = `id, title, description, deadline, project, user_id, created_at, updated_at`

// ListDeadlines returns the owner's deadlines for a project ordered by ascending date.
func (s *Store) ListDeadlines(ctx context.Context, userID, project string) ([]models.Deadline, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+deadlineColumns+` FROM deadlines
        WHERE user_id = ? AND project = ? ORDER BY deadline ASC, created_at ASC`, userID, models.ProjectOrDefault(project))
	if err != nil {
		return nil, fmt.Errorf("list deadlines: %w", err)
	}
	defer rows.Close()

	deadlines := []models.Deadline{}
	for rows.Next() {
		d, err := scanDeadline(rows)
		if err != nil {
			return nil, err
		}
		deadlines = append(deadlines, d)
	}
	return deadlines, rows.Err()
}

// CreateDeadline inserts a deadline owned by d.UserID.
func (s *Store) CreateDeadline(ctx context.Context, d models.Deadline) (models.Deadline, error) {
	if strings.TrimSpace(d.Title) == "" {
		return models.Deadline{}, fmt.Errorf("deadline title must not be empty")
	}
	if d.Deadline.IsZero() {
		return models.Deadline{}, fmt.Errorf("deadline date must be set")
	}
	d.Project = models.ProjectOrDefault(d.Project)
	if !models.IsValidProject(d.Project) {
		return models.Deadline{}, fmt.Errorf("unknown project %q", d.Project)
	}

	d.ID = s.newID()
	d.CreatedAt = s.now()
	d.UpdatedAt = d.CreatedAt

	_, err := s.db.ExecContext(ctx, `INSERT INTO deadlines(`+deadlineColumns+`) VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, strings.TrimSpace(d.Title), strings.TrimSpace(d.Description), d.Deadline.UTC(), d.Project, d.UserID, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return models.Deadline{}, fmt.Errorf("insert deadline: %w", err)
	}
	return s.GetDeadline(ctx, d.UserID, d.ID)
}

// GetDeadline retrieves a deadline by id, visible only to its owner.
func (s *Store) GetDeadline(ctx context.Context, userID, id string) (models.Deadline, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+deadlineColumns+` FROM deadlines WHERE id = ? AND user_id = ?`, id, userID)
	d, err := scanDeadline(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Deadline{}, ErrNotFound
	}
	return d, err
}

// DeleteDeadline removes a deadline matching both id and owner.
func (s *Store) DeleteDeadline(ctx context.Context, userID, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM deadlines WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete deadline: %w", err)
	}
	if err := checkAffected(res); err != nil {
		return fmt.Errorf("delete deadline %s: %w", id, err)
	}
	return nil
}

func scanDeadline(row scanner) (models.Deadline, error) {
	var d models.Deadline
	err := row.Scan(&d.ID, &d.Title, &d.Description, &d.Deadline, &d.Project, &d.UserID, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Deadline{}, err
	}
	if err != nil {
		return models.Deadline{}, fmt.Errorf("scan deadline: %w", err)
	}
	return d, nil
}
