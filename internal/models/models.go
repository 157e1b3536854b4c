package models

import "time"

// Project tags partition every resource into one of the two workspaces.
const (
	ProjectSIA    = "sia"
	ProjectTechno = "techno"

	DefaultProject = ProjectSIA
)

// ValidProjects enumerates the supported project tags.
var ValidProjects = map[string]struct{}{
	ProjectSIA:    {},
	ProjectTechno: {},
}

// IsValidProject reports whether tag is one of the known projects.
func IsValidProject(tag string) bool {
	_, ok := ValidProjects[tag]
	return ok
}

// ProjectOrDefault falls back to DefaultProject when tag is empty.
func ProjectOrDefault(tag string) string {
	if tag == "" {
		return DefaultProject
	}
	return tag
}

// User is an account that owns tasks, deadlines and links.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Member is the public roster view of a user.
type Member struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Member strips private fields from the user.
func (u User) Member() Member {
	return Member{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// DisplayName prefers the full name and falls back to the username.
func (m Member) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	return m.Username
}

// Task is a unit of work with a due date.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"`
	Project     string    `json:"project"`
	Completed   bool      `json:"completed"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Deadline is a dated milestone shown on the calendar.
type Deadline struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"`
	Project     string    `json:"project"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Link types rendered as separate groups on the files page.
const (
	LinkTypeCanva  = "canva"
	LinkTypeGitHub = "github"
)

// Link is a bookmarked external resource.
type Link struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Type        string    `json:"type"`
	Project     string    `json:"project"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
