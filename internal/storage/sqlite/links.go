package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"bld/internal/models"
)

const linkColumns = `id, title, description, url, type, project, user_id, created_at, updated_at`

// ListLinks returns the owner's links for a project, newest first.
// An empty linkType matches every type.
func (s *Store) ListLinks(ctx context.Context, userID, project, linkType string) ([]models.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE user_id = ? AND project = ?`
	args := []any{userID, models.ProjectOrDefault(project)}
	if linkType != "" {
		query += ` AND type = ?`
		args = append(args, linkType)
	}
	query += ` ORDER BY created_at DESC, rowid DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	defer rows.Close()

	links := []models.Link{}
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

// CreateLink inserts a bookmark owned by l.UserID.
func (s *Store) CreateLink(ctx context.Context, l models.Link) (models.Link, error) {
	if strings.TrimSpace(l.Title) == "" {
		return models.Link{}, fmt.Errorf("link title must not be empty")
	}
	if strings.TrimSpace(l.URL) == "" {
		return models.Link{}, fmt.Errorf("link url must not be empty")
	}
	if strings.TrimSpace(l.Type) == "" {
		return models.Link{}, fmt.Errorf("link type must not be empty")
	}
	l.Project = models.ProjectOrDefault(l.Project)
	if !models.IsValidProject(l.Project) {
		return models.Link{}, fmt.Errorf("unknown project %q", l.Project)
	}

	l.ID = s.newID()
	l.CreatedAt = s.now()
	l.UpdatedAt = l.CreatedAt

	_, err := s.db.ExecContext(ctx, `INSERT INTO links(`+linkColumns+`) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, strings.TrimSpace(l.Title), strings.TrimSpace(l.Description), strings.TrimSpace(l.URL), strings.TrimSpace(l.Type), l.Project, l.UserID, l.CreatedAt, l.UpdatedAt)
	if err != nil {
		return models.Link{}, fmt.Errorf("insert link: %w", err)
	}
	return s.GetLink(ctx, l.UserID, l.ID)
}

// GetLink retrieves a link by id, visible only to its owner.
func (s *Store) GetLink(ctx context.Context, userID, id string) (models.Link, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+linkColumns+` FROM links WHERE id = ? AND user_id = ?`, id, userID)
	l, err := scanLink(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Link{}, ErrNotFound
	}
	return l, err
}

// DeleteLink removes a link matching both id and owner.
func (s *Store) DeleteLink(ctx context.Context, userID, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM links WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete link: %w", err)
	}
	if err := checkAffected(res); err != nil {
		return fmt.Errorf("delete link %s: %w", id, err)
	}
	return nil
}

func scanLink(row scanner) (models.Link, error) {
	var l models.Link
	err := row.Scan(&l.ID, &l.Title, &l.Description, &l.URL, &l.Type, &l.Project, &l.UserID, &l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Link{}, err
	}
	if err != nil {
		return models.Link{}, fmt.Errorf("scan link: %w", err)
	}
	return l, nil
}
