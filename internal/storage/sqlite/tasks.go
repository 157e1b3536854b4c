package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"bld/internal/models"
)

const taskColumns = `id, title, description, deadline, project, completed, user_id, created_at, updated_at`

// ListTasks returns the owner's tasks for a project ordered by ascending deadline.
func (s *Store) ListTasks(ctx context.Context, userID, project string) ([]models.Task, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks
        WHERE user_id = ? AND project = ? ORDER BY deadline ASC, created_at ASC`, userID, models.ProjectOrDefault(project))
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// CreateTask inserts a new, not yet completed task owned by t.UserID.
func (s *Store) CreateTask(ctx context.Context, t models.Task) (models.Task, error) {
	if strings.TrimSpace(t.Title) == "" {
		return models.Task{}, fmt.Errorf("task title must not be empty")
	}
	if t.Deadline.IsZero() {
		return models.Task{}, fmt.Errorf("task deadline must be set")
	}
	t.Project = models.ProjectOrDefault(t.Project)
	if !models.IsValidProject(t.Project) {
		return models.Task{}, fmt.Errorf("unknown project %q", t.Project)
	}

	t.ID = s.newID()
	t.Completed = false
	t.CreatedAt = s.now()
	t.UpdatedAt = t.CreatedAt

	_, err := s.db.ExecContext(ctx, `INSERT INTO tasks(`+taskColumns+`) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, strings.TrimSpace(t.Title), strings.TrimSpace(t.Description), t.Deadline.UTC(), t.Project, t.Completed, t.UserID, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return models.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return s.GetTask(ctx, t.UserID, t.ID)
}

// GetTask retrieves a task by id, visible only to its owner.
func (s *Store) GetTask(ctx context.Context, userID, id string) (models.Task, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ? AND user_id = ?`, id, userID)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrNotFound
	}
	return t, err
}

// SetTaskCompleted flips the completion flag in one statement filtered by id and owner.
func (s *Store) SetTaskCompleted(ctx context.Context, userID, id string, completed bool) (models.Task, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE tasks SET completed = ?, updated_at = ? WHERE id = ? AND user_id = ?`,
		completed, s.now(), id, userID)
	if err != nil {
		return models.Task{}, fmt.Errorf("update task: %w", err)
	}
	if err := checkAffected(res); err != nil {
		return models.Task{}, fmt.Errorf("update task %s: %w", id, err)
	}
	return s.GetTask(ctx, userID, id)
}

// DeleteTask removes a task matching both id and owner.
func (s *Store) DeleteTask(ctx context.Context, userID, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if err := checkAffected(res); err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (models.Task, error) {
	var t models.Task
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Deadline, &t.Project, &t.Completed, &t.UserID, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, err
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("scan task: %w", err)
	}
	return t, nil
}
