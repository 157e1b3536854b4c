package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bld/internal/models"
	"bld/internal/server"
)

func (e *testEnv) page(t *testing.T, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "bld_session", Value: token})
	}
	rec := httptest.NewRecorder()
	e.srv.Engine().ServeHTTP(rec, req)
	return rec
}

func TestDashboardRequiresSession(t *testing.T) {
	env := newTestEnv(t, server.Options{})

	rec := env.page(t, "/dashboard?page=tasks", "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	rec = env.page(t, "/login", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/auth/login")
}

func TestLoginPageRedirectsActiveSession(t *testing.T) {
	env := newTestEnv(t, server.Options{})
	_, token := env.user(t, "owner")

	rec := env.page(t, "/login", token)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestDashboardHomeListsMembers(t *testing.T) {
	env := newTestEnv(t, server.Options{})
	_, token := env.user(t, "admin")
	env.user(t, "developer")

	rec := env.page(t, "/dashboard", token)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Members")
	assert.Contains(t, body, "developer@bld.com")
	assert.Contains(t, body, "--theme-color: #10b981")
}

func TestDashboardTasksPage(t *testing.T) {
	env := newTestEnv(t, server.Options{})
	owner, token := env.user(t, "owner")
	ctx := context.Background()

	_, err := env.store.CreateTask(ctx, models.Task{Title: "Proposal", Deadline: fixedNow.Add(72 * time.Hour), UserID: owner.ID})
	require.NoError(t, err)
	done, err := env.store.CreateTask(ctx, models.Task{Title: "Kickoff", Deadline: fixedNow.Add(-48 * time.Hour), UserID: owner.ID})
	require.NoError(t, err)
	_, err = env.store.SetTaskCompleted(ctx, owner.ID, done.ID, true)
	require.NoError(t, err)
	_, err = env.store.CreateTask(ctx, models.Task{Title: "Pitch", Deadline: fixedNow, Project: models.ProjectTechno, UserID: owner.ID})
	require.NoError(t, err)

	rec := env.page(t, "/dashboard?page=tasks", token)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Proposal")
	assert.Contains(t, body, "3 days remaining")
	assert.Contains(t, body, "Completed Tasks")
	assert.Contains(t, body, "Kickoff")
	assert.NotContains(t, body, "Pitch")

	rec = env.page(t, "/dashboard?page=tasks&project=techno", token)
	require.Equal(t, http.StatusOK, rec.Code)
	body = rec.Body.String()
	assert.Contains(t, body, "Pitch")
	assert.Contains(t, body, "Due today")
	assert.Contains(t, body, "--theme-color: #3b82f6")
}

func TestDashboardCalendarPage(t *testing.T) {
	env := newTestEnv(t, server.Options{})
	owner, token := env.user(t, "owner")

	_, err := env.store.CreateDeadline(context.Background(), models.Deadline{
		Title:    "Project Proposal Submission",
		Deadline: time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC),
		UserID:   owner.ID,
	})
	require.NoError(t, err)

	rec := env.page(t, "/dashboard?page=calendar", token)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "September 2025")
	assert.Contains(t, body, `class="deadline" data-day="2025-09-15"`)
	assert.Contains(t, body, `class="today" data-day="2025-09-10"`)
	assert.Contains(t, body, `class="" data-day="2025-09-05"`)
	assert.Contains(t, body, "Project Proposal Submission")
	assert.Contains(t, body, "9/15/2025 (5 days remaining)")
	assert.Contains(t, body, "month=10")

	rec = env.page(t, "/dashboard?page=calendar&year=2025&month=12", token)
	require.Equal(t, http.StatusOK, rec.Code)
	body = rec.Body.String()
	assert.Contains(t, body, "December 2025")
	assert.Contains(t, body, "year=2026")
	assert.NotContains(t, body, `class="deadline"`)
}

func TestDashboardFilesPage(t *testing.T) {
	env := newTestEnv(t, server.Options{})
	owner, token := env.user(t, "owner")
	ctx := context.Background()

	_, err := env.store.CreateLink(ctx, models.Link{Title: "Presentation Template", URL: "https://canva.com/design/example1", Type: models.LinkTypeCanva, UserID: owner.ID})
	require.NoError(t, err)
	_, err = env.store.CreateLink(ctx, models.Link{Title: "BLD Systems Repository", URL: "https://github.com/example/bld-systems", Type: models.LinkTypeGitHub, UserID: owner.ID})
	require.NoError(t, err)

	rec := env.page(t, "/dashboard?page=files", token)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Canva Links")
	assert.Contains(t, body, "Presentation Template")
	assert.Contains(t, body, "GitHub Repositories")
	assert.Contains(t, body, "BLD Systems Repository")
	assert.Contains(t, body, "Failed to add link. Please try again.")
}

func TestDashboardCalendarUsesUTCDay(t *testing.T) {
	// 23:30 on the 10th in UTC-5 is already the 11th in UTC.
	lateEvening := time.Date(2025, time.September, 10, 23, 30, 0, 0, time.FixedZone("EST", -5*60*60))
	env := newTestEnv(t, server.Options{Now: func() time.Time { return lateEvening }})
	owner, token := env.user(t, "owner")

	_, err := env.store.CreateDeadline(context.Background(), models.Deadline{
		Title:    "Prototype Demo",
		Deadline: time.Date(2025, time.September, 11, 0, 0, 0, 0, time.UTC),
		UserID:   owner.ID,
	})
	require.NoError(t, err)

	rec := env.page(t, "/dashboard?page=calendar", token)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `class="today" data-day="2025-09-11"`)
	assert.Contains(t, body, `class="" data-day="2025-09-10"`)
	assert.Contains(t, body, "Due today")
}

func TestDashboardStaticContent(t *testing.T) {
	env := newTestEnv(t, server.Options{})
	_, token := env.user(t, "owner")

	body := env.page(t, "/dashboard", token).Body.String()
	for _, heading := range []string{"What is BLD Systems?", "Our Mission", "Key Features", "Why Choose BLD Systems?"} {
		assert.Contains(t, body, heading)
	}

	body = env.page(t, "/dashboard?page=files", token).Body.String()
	assert.Contains(t, body, "File Storage")
	assert.Contains(t, body, "Google Drive")
	assert.Contains(t, body, "https://drive.google.com")
}
