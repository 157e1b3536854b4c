package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"bld/internal/models"
)

const userColumns = `id, username, email, password, name, role, created_at`

// CreateUser persists a new account. The password must already be hashed.
func (s *Store) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Username == "" || u.Email == "" {
		return models.User{}, fmt.Errorf("username and email must not be empty")
	}
	if u.PasswordHash == "" {
		return models.User{}, fmt.Errorf("password hash must not be empty")
	}

	u.ID = s.newID()
	u.CreatedAt = s.now()

	_, err := s.db.ExecContext(ctx, `INSERT INTO users(`+userColumns+`) VALUES(?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Email, u.PasswordHash, strings.TrimSpace(u.Name), strings.TrimSpace(u.Role), u.CreatedAt)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return models.User{}, ErrUserExists
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return s.GetUser(ctx, u.ID)
}

// GetUser fetches a single account by id.
func (s *Store) GetUser(ctx context.Context, id string) (models.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// FindUserByLogin looks an account up by username or email.
func (s *Store) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	login = strings.TrimSpace(login)
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = ? OR email = ? LIMIT 1`,
		login, strings.ToLower(login))
	return scanUser(row)
}

// ListMembers returns the public roster of every user ordered by creation date.
func (s *Store) ListMembers(ctx context.Context) ([]models.Member, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, username, email, name, role, created_at FROM users ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	members := []models.Member{}
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.ID, &m.Username, &m.Email, &m.Name, &m.Role, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
