// Package dashboard builds the view models rendered by the dashboard pages:
// the layout shell selection, task partitions, link groups and the calendar month.
package dashboard

import (
	"net/url"

	"bld/internal/models"
)

// Pages of the dashboard, in navigation order.
const (
	PageHome     = "home"
	PageTasks    = "tasks"
	PageFiles    = "files"
	PageCalendar = "calendar"
)

// NavItem is one entry of the page navigation.
type NavItem struct {
	Page   string
	Label  string
	URL    string
	Active bool
}

// ProjectOption is one entry of the project switcher.
type ProjectOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

var pageLabels = []struct{ page, label string }{
	{PageHome, "Home"},
	{PageTasks, "Tasks"},
	{PageFiles, "Files"},
	{PageCalendar, "Calendar"},
}

var projectThemes = map[string]struct{ label, color string }{
	models.ProjectSIA:    {"SIA", "#10b981"},
	models.ProjectTechno: {"Technopreneurship", "#3b82f6"},
}

// Shell is the layout selection: which project and which page are shown.
// Views receive it by value and derive change targets from it.
type Shell struct {
	Project string
	Page    string
}

// ParseShell normalizes raw query values, falling back to the sia project and the home page.
func ParseShell(project, page string) Shell {
	if !models.IsValidProject(project) {
		project = models.DefaultProject
	}
	switch page {
	case PageHome, PageTasks, PageFiles, PageCalendar:
	default:
		page = PageHome
	}
	return Shell{Project: project, Page: page}
}

// WithProject returns the selection after switching project.
func (s Shell) WithProject(project string) Shell {
	return ParseShell(project, s.Page)
}

// WithPage returns the selection after switching page.
func (s Shell) WithPage(page string) Shell {
	return ParseShell(s.Project, page)
}

// URL renders the selection as a dashboard location.
func (s Shell) URL() string {
	q := url.Values{}
	q.Set("project", s.Project)
	q.Set("page", s.Page)
	return "/dashboard?" + q.Encode()
}

// ThemeColor is the accent color of the selected project.
func (s Shell) ThemeColor() string {
	return projectThemes[s.Project].color
}

// ProjectLabel is the human readable name of the selected project.
func (s Shell) ProjectLabel() string {
	return projectThemes[s.Project].label
}

// Nav lists the pages with the current one marked active.
func (s Shell) Nav() []NavItem {
	items := make([]NavItem, 0, len(pageLabels))
	for _, p := range pageLabels {
		items = append(items, NavItem{
			Page:   p.page,
			Label:  p.label,
			URL:    s.WithPage(p.page).URL(),
			Active: p.page == s.Page,
		})
	}
	return items
}

// Projects lists the project switcher entries.
func (s Shell) Projects() []ProjectOption {
	tags := []string{models.ProjectSIA, models.ProjectTechno}
	options := make([]ProjectOption, 0, len(tags))
	for _, tag := range tags {
		options = append(options, ProjectOption{
			Tag:    tag,
			Label:  projectThemes[tag].label,
			URL:    s.WithProject(tag).URL(),
			Active: tag == s.Project,
		})
	}
	return options
}
