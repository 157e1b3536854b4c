package server

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"bld/internal/dashboard"
	"bld/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"date":     func(t time.Time) string { return t.UTC().Format("1/2/2006") },
	"weekdays": func() []string { return dashboard.Weekdays },
}

type dashboardPage struct {
	Shell    dashboard.Shell
	Username string
	Error    string

	Members  []models.Member
	Tasks    dashboard.TasksView
	Files    dashboard.FilesView
	Calendar dashboard.CalendarView
	PrevURL  string
	NextURL  string
}

// handleLoginPage renders the sign-in form, or skips it when a session exists.
func (s *Server) handleLoginPage(c *gin.Context) {
	if _, err := s.resolveSession(c.Request); err == nil {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.html", nil)
}

// handleDashboard renders the layout shell and the selected page for the caller.
func (s *Server) handleDashboard(c *gin.Context) {
	shell := dashboard.ParseShell(c.Query("project"), c.Query("page"))
	ctx := c.Request.Context()
	userID := currentUserID(c)
	now := s.now().UTC()

	page := dashboardPage{Shell: shell}
	if claims, ok := sessionFrom(c); ok {
		page.Username = claims.Username
	}

	var err error
	switch shell.Page {
	case dashboard.PageHome:
		page.Members, err = s.store.ListMembers(ctx)
	case dashboard.PageTasks:
		var tasks []models.Task
		if tasks, err = s.store.ListTasks(ctx, userID, shell.Project); err == nil {
			page.Tasks = dashboard.NewTasksView(tasks, now)
		}
	case dashboard.PageFiles:
		var canva, github []models.Link
		if canva, err = s.store.ListLinks(ctx, userID, shell.Project, models.LinkTypeCanva); err == nil {
			if github, err = s.store.ListLinks(ctx, userID, shell.Project, models.LinkTypeGitHub); err == nil {
				page.Files = dashboard.NewFilesView(canva, github)
			}
		}
	case dashboard.PageCalendar:
		year, month := calendarMonth(c, now)
		var deadlines []models.Deadline
		if deadlines, err = s.store.ListDeadlines(ctx, userID, shell.Project); err == nil {
			page.Calendar = dashboard.NewCalendarView(year, month, deadlines, now)
			prevYear, prevMonth := page.Calendar.Month.Prev()
			nextYear, nextMonth := page.Calendar.Month.Next()
			page.PrevURL = monthURL(shell, prevYear, prevMonth)
			page.NextURL = monthURL(shell, nextYear, nextMonth)
		}
	}

	status := http.StatusOK
	if err != nil {
		s.logger.Error("dashboard load failed", slog.String("page", shell.Page), slog.String("error", err.Error()))
		page.Error = "Failed to load " + shell.Page + ". Please try again."
		status = http.StatusInternalServerError
	}
	c.HTML(status, "dashboard.html", page)
}

// calendarMonth reads year and month (1-12) from the query, defaulting to the current month.
func calendarMonth(c *gin.Context, now time.Time) (int, time.Month) {
	year, month := now.Year(), now.Month()
	if y, err := strconv.Atoi(c.Query("year")); err == nil && y > 0 && y < 10000 {
		year = y
	}
	if m, err := strconv.Atoi(c.Query("month")); err == nil && m >= 1 && m <= 12 {
		month = time.Month(m)
	}
	return year, month
}

func monthURL(shell dashboard.Shell, year int, month time.Month) string {
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))
	q.Set("month", strconv.Itoa(int(month)))
	return shell.URL() + "&" + q.Encode()
}
