package dashboard

import (
	"sort"
	"time"

	"bld/internal/models"
)

// TaskItem is a task with its countdown label.
type TaskItem struct {
	models.Task
	Countdown string
}

// TasksView splits a task list into the active and completed sections.
type TasksView struct {
	Active    []TaskItem
	Completed []TaskItem
}

// NewTasksView partitions tasks by completion, keeping their order.
func NewTasksView(tasks []models.Task, now time.Time) TasksView {
	var v TasksView
	for _, t := range tasks {
		item := TaskItem{Task: t, Countdown: Countdown(DaysRemaining(t.Deadline, now))}
		if t.Completed {
			v.Completed = append(v.Completed, item)
		} else {
			v.Active = append(v.Active, item)
		}
	}
	return v
}

// DeadlineItem is a deadline with its countdown label.
type DeadlineItem struct {
	models.Deadline
	Countdown string
}

// CalendarView is the month grid plus the deadline list below it.
type CalendarView struct {
	Month     Month
	Deadlines []DeadlineItem
}

// NewCalendarView builds the calendar page for year/month. Deadlines are listed soonest first.
func NewCalendarView(year int, month time.Month, deadlines []models.Deadline, now time.Time) CalendarView {
	sorted := make([]models.Deadline, len(deadlines))
	copy(sorted, deadlines)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Deadline.Before(sorted[j].Deadline)
	})

	keys := make([]string, 0, len(sorted))
	items := make([]DeadlineItem, 0, len(sorted))
	for _, d := range sorted {
		keys = append(keys, DeadlineKey(d.Deadline))
		items = append(items, DeadlineItem{Deadline: d, Countdown: Countdown(DaysRemaining(d.Deadline, now))})
	}

	return CalendarView{
		Month:     NewMonth(year, month, keys, now),
		Deadlines: items,
	}
}

// LinkGroup is one section of the files page.
type LinkGroup struct {
	Type  string
	Title string
	Links []models.Link
}

// FilesView holds the Canva and GitHub link sections.
type FilesView struct {
	Groups []LinkGroup
}

// NewFilesView wraps the per-type link lists fetched for the files page.
func NewFilesView(canva, github []models.Link) FilesView {
	return FilesView{Groups: []LinkGroup{
		{Type: models.LinkTypeCanva, Title: "Canva Links", Links: canva},
		{Type: models.LinkTypeGitHub, Title: "GitHub Repositories", Links: github},
	}}
}
