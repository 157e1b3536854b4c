package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bld/internal/models"
	"bld/internal/storage/sqlite"
)

var day = time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC)

func openStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "nested", "bld.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// tickingClock advances one second on every call so creation order is observable.
func tickingClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func createUser(t *testing.T, store *sqlite.Store, username string) models.User {
	t.Helper()
	u, err := store.CreateUser(context.Background(), models.User{
		Username:     username,
		Email:        username + "@bld.com",
		PasswordHash: "hash",
		Name:         username,
		Role:         "Developer",
	})
	require.NoError(t, err)
	return u
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := sqlite.Open("", nil)
	assert.Error(t, err)
}

func TestCreateUserUniqueness(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	createUser(t, store, "admin")

	_, err := store.CreateUser(ctx, models.User{Username: "admin", Email: "other@bld.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, sqlite.ErrUserExists)

	_, err = store.CreateUser(ctx, models.User{Username: "other", Email: "ADMIN@bld.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, sqlite.ErrUserExists)
}

func TestFindUserByLogin(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	admin := createUser(t, store, "admin")

	byName, err := store.FindUserByLogin(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, byName.ID)
	assert.Equal(t, "hash", byName.PasswordHash)

	byEmail, err := store.FindUserByLogin(ctx, " Admin@BLD.com ")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, byEmail.ID)

	_, err = store.FindUserByLogin(ctx, "nobody")
	assert.ErrorIs(t, err, sqlite.ErrNotFound)
}

func TestListMembersOrderedByCreation(t *testing.T) {
	store := openStore(t)
	store.SetClock(tickingClock(day))
	createUser(t, store, "zed")
	createUser(t, store, "amy")

	members, err := store.ListMembers(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "zed", members[0].Username)
	assert.Equal(t, "amy", members[1].Username)
}

func TestTaskLifecycle(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	owner := createUser(t, store, "owner")

	later, err := store.CreateTask(ctx, models.Task{Title: "Architecture", Deadline: day.AddDate(0, 0, 15), UserID: owner.ID})
	require.NoError(t, err)
	sooner, err := store.CreateTask(ctx, models.Task{Title: "Proposal", Deadline: day, UserID: owner.ID, Completed: true})
	require.NoError(t, err)
	_, err = store.CreateTask(ctx, models.Task{Title: "Pitch", Deadline: day, Project: models.ProjectTechno, UserID: owner.ID})
	require.NoError(t, err)

	assert.Equal(t, models.ProjectSIA, later.Project)
	assert.False(t, sooner.Completed)
	assert.True(t, sooner.Deadline.Equal(day))

	tasks, err := store.ListTasks(ctx, owner.ID, "")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, sooner.ID, tasks[0].ID)
	assert.Equal(t, later.ID, tasks[1].ID)

	updated, err := store.SetTaskCompleted(ctx, owner.ID, sooner.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	require.NoError(t, store.DeleteTask(ctx, owner.ID, later.ID))
	tasks, err = store.ListTasks(ctx, owner.ID, models.ProjectSIA)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].Completed)
}

func TestTaskRejectsUnknownProject(t *testing.T) {
	store := openStore(t)
	owner := createUser(t, store, "owner")

	_, err := store.CreateTask(context.Background(), models.Task{Title: "x", Deadline: day, Project: "marketing", UserID: owner.ID})
	assert.Error(t, err)
}

func TestMutationsFilterByOwner(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	owner := createUser(t, store, "owner")
	intruder := createUser(t, store, "intruder")

	task, err := store.CreateTask(ctx, models.Task{Title: "Mine", Deadline: day, UserID: owner.ID})
	require.NoError(t, err)
	link, err := store.CreateLink(ctx, models.Link{Title: "Repo", URL: "https://github.com/x", Type: models.LinkTypeGitHub, UserID: owner.ID})
	require.NoError(t, err)
	deadline, err := store.CreateDeadline(ctx, models.Deadline{Title: "Submit", Deadline: day, UserID: owner.ID})
	require.NoError(t, err)

	_, err = store.SetTaskCompleted(ctx, intruder.ID, task.ID, true)
	assert.ErrorIs(t, err, sqlite.ErrNotFound)
	assert.ErrorIs(t, store.DeleteTask(ctx, intruder.ID, task.ID), sqlite.ErrNotFound)
	assert.ErrorIs(t, store.DeleteLink(ctx, intruder.ID, link.ID), sqlite.ErrNotFound)
	assert.ErrorIs(t, store.DeleteDeadline(ctx, intruder.ID, deadline.ID), sqlite.ErrNotFound)

	kept, err := store.GetTask(ctx, owner.ID, task.ID)
	require.NoError(t, err)
	assert.False(t, kept.Completed)
	_, err = store.GetLink(ctx, owner.ID, link.ID)
	assert.NoError(t, err)
	_, err = store.GetDeadline(ctx, owner.ID, deadline.ID)
	assert.NoError(t, err)

	intruderTasks, err := store.ListTasks(ctx, intruder.ID, models.ProjectSIA)
	require.NoError(t, err)
	assert.Empty(t, intruderTasks)
}

func TestDeadlinesOrderedAscending(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	owner := createUser(t, store, "owner")

	_, err := store.CreateDeadline(ctx, models.Deadline{Title: "Final", Deadline: day.AddDate(0, 1, 0), UserID: owner.ID})
	require.NoError(t, err)
	_, err = store.CreateDeadline(ctx, models.Deadline{Title: "Proposal", Deadline: day, UserID: owner.ID})
	require.NoError(t, err)

	deadlines, err := store.ListDeadlines(ctx, owner.ID, models.ProjectSIA)
	require.NoError(t, err)
	require.Len(t, deadlines, 2)
	assert.Equal(t, "Proposal", deadlines[0].Title)
	assert.Equal(t, "Final", deadlines[1].Title)
	assert.Equal(t, models.ProjectSIA, deadlines[0].Project)
}

func TestListLinksFiltersTypeNewestFirst(t *testing.T) {
	store := openStore(t)
	store.SetClock(tickingClock(day))
	ctx := context.Background()
	owner := createUser(t, store, "owner")

	for _, l := range []models.Link{
		{Title: "Slides", URL: "https://canva.com/1", Type: models.LinkTypeCanva},
		{Title: "Repo", URL: "https://github.com/1", Type: models.LinkTypeGitHub},
		{Title: "Poster", URL: "https://canva.com/2", Type: models.LinkTypeCanva},
		{Title: "Pitch deck", URL: "https://canva.com/3", Type: models.LinkTypeCanva, Project: models.ProjectTechno},
	} {
		l.UserID = owner.ID
		_, err := store.CreateLink(ctx, l)
		require.NoError(t, err)
	}

	canva, err := store.ListLinks(ctx, owner.ID, models.ProjectSIA, models.LinkTypeCanva)
	require.NoError(t, err)
	require.Len(t, canva, 2)
	assert.Equal(t, "Poster", canva[0].Title)
	assert.Equal(t, "Slides", canva[1].Title)

	all, err := store.ListLinks(ctx, owner.ID, models.ProjectSIA, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
	for _, l := range all {
		assert.Equal(t, models.ProjectSIA, l.Project)
	}
}

func TestStoreErrorsAreWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := sqlite.New(db, nil)
	dbErr := errors.New("disk I/O error")

	mock.ExpectQuery(`SELECT (.+) FROM tasks`).WillReturnError(dbErr)
	_, err = store.ListTasks(context.Background(), "u1", "")
	assert.ErrorIs(t, err, dbErr)

	mock.ExpectExec(`DELETE FROM links`).WithArgs("l1", "u1").WillReturnResult(sqlmock.NewResult(0, 0))
	err = store.DeleteLink(context.Background(), "u1", "l1")
	assert.ErrorIs(t, err, sqlite.ErrNotFound)

	mock.ExpectExec(`UPDATE tasks SET completed`).WillReturnError(dbErr)
	_, err = store.SetTaskCompleted(context.Background(), "u1", "t1", true)
	assert.ErrorIs(t, err, dbErr)

	assert.NoError(t, mock.ExpectationsWereMet())
}
