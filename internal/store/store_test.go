package store

import (
	"testing"

	"taskboard/internal/models"
	"taskboard/internal/testutil"

	"github.com/stretchr/testify/require"
)

// newTestStore opens an in-memory database seeded with Alice (id 1) and
// Bob (id 2).
func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	s := New(db)
	s.SeedUsers("Alice", "Bob")
	return s
}

func TestCreateTask_AppearsInListing(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.CreateTask("Fix bug", 1, models.PriorityHigh))

	rows, err := s.ListTasks(TaskFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Fix bug", rows[0].Title)
	require.Equal(t, "Alice", rows[0].Username)
	require.Equal(t, models.PriorityHigh, rows[0].Priority)
	require.Equal(t, models.StatusOpen, rows[0].Status)
	require.False(t, rows[0].CreatedAt.IsZero())
}

func TestCreateTask_Validation(t *testing.T) {
	s := newTestStore(t)

	require.ErrorIs(t, s.CreateTask("", 1, models.PriorityHigh), ErrValidation)
	require.ErrorIs(t, s.CreateTask("   ", 1, models.PriorityHigh), ErrValidation)
	require.ErrorIs(t, s.CreateTask("ok", 0, models.PriorityHigh), ErrValidation)
	require.ErrorIs(t, s.CreateTask("ok", 1, "Urgent"), ErrValidation)

	rows, err := s.ListTasks(TaskFilter{})
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestCreateTask_UnknownAssigneeRejected(t *testing.T) {
	s := newTestStore(t)

	require.ErrorIs(t, s.CreateTask("ghost", 999, models.PriorityHigh), ErrValidation)

	// nothing may persist, not even a row the JOIN listing would hide
	var count int64
	require.NoError(t, s.db.Model(&models.Task{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestUpdateTask_UnknownAssigneeRejected(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateTask("Fix bug", 1, models.PriorityHigh))

	require.ErrorIs(t, s.UpdateTask(1, "Fix bug", 999, models.PriorityLow), ErrValidation)

	row, err := s.GetTask(1)
	require.NoError(t, err)
	require.Equal(t, "Alice", row.Username)
	require.Equal(t, models.PriorityHigh, row.Priority)
}

func TestCompleteTask_Idempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateTask("Fix bug", 1, models.PriorityHigh))

	require.NoError(t, s.CompleteTask(1))
	row, err := s.GetTask(1)
	require.NoError(t, err)
	require.Equal(t, models.StatusComplete, row.Status)

	// second call is a no-op, not an error
	require.NoError(t, s.CompleteTask(1))
	row, err = s.GetTask(1)
	require.NoError(t, err)
	require.Equal(t, models.StatusComplete, row.Status)

	// completing a missing id is also fine
	require.NoError(t, s.CompleteTask(999))
}

func TestListTasks_SortOrder(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateTask("low", 1, models.PriorityLow))
	require.NoError(t, s.CreateTask("med one", 1, models.PriorityMedium))
	require.NoError(t, s.CreateTask("high", 2, models.PriorityHigh))
	require.NoError(t, s.CreateTask("med two", 2, models.PriorityMedium))

	rows, err := s.ListTasks(TaskFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 4)

	// High first, then Medium (newest first), then Low
	require.Equal(t, "high", rows[0].Title)
	require.Equal(t, "med two", rows[1].Title)
	require.Equal(t, "med one", rows[2].Title)
	require.Equal(t, "low", rows[3].Title)
}

func TestListTasks_Filters(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateTask("alice high", 1, models.PriorityHigh))
	require.NoError(t, s.CreateTask("bob high", 2, models.PriorityHigh))
	require.NoError(t, s.CreateTask("bob low", 2, models.PriorityLow))
	require.NoError(t, s.CompleteTask(3))

	rows, err := s.ListTasks(TaskFilter{Priority: "High"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		require.Equal(t, models.PriorityHigh, r.Priority)
	}

	// filters conjoin
	rows, err = s.ListTasks(TaskFilter{UserID: "2", Status: "Open"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "bob high", rows[0].Title)

	// "all" is a wildcard, same as absent
	rows, err = s.ListTasks(TaskFilter{UserID: "all", Status: "all", Priority: "all"})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// no matches is an empty result, not an error
	rows, err = s.ListTasks(TaskFilter{UserID: "1", Status: "Complete"})
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestGetTask_NotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetTask(42)
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestUpdateTask_PreservesStatusAndCreatedAt(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateTask("Fix bug", 1, models.PriorityHigh))
	require.NoError(t, s.CompleteTask(1))

	before, err := s.GetTask(1)
	require.NoError(t, err)

	require.NoError(t, s.UpdateTask(1, "Fix bug v2", 2, models.PriorityLow))

	after, err := s.GetTask(1)
	require.NoError(t, err)
	require.Equal(t, "Fix bug v2", after.Title)
	require.Equal(t, "Bob", after.Username)
	require.Equal(t, models.PriorityLow, after.Priority)
	require.Equal(t, models.StatusComplete, after.Status)
	require.Equal(t, before.CreatedAt, after.CreatedAt)
}

func TestUpdateTask_Validation(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateTask("Fix bug", 1, models.PriorityHigh))

	require.ErrorIs(t, s.UpdateTask(1, "", 1, models.PriorityHigh), ErrValidation)
	require.ErrorIs(t, s.UpdateTask(1, "ok", 1, "nope"), ErrValidation)

	row, err := s.GetTask(1)
	require.NoError(t, err)
	require.Equal(t, "Fix bug", row.Title)
}

func TestDeleteTask_NoOpOnMissing(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateTask("keep", 1, models.PriorityMedium))

	require.NoError(t, s.DeleteTask(999))

	rows, err := s.ListTasks(TaskFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestCreateUser_Idempotent(t *testing.T) {
	s := newTestStore(t)

	before, err := s.ListUsersByID()
	require.NoError(t, err)

	require.NoError(t, s.CreateUser("Alice"))

	after, err := s.ListUsersByID()
	require.NoError(t, err)
	require.Len(t, after, len(before))
}

func TestCreateUser_Validation(t *testing.T) {
	s := newTestStore(t)
	require.ErrorIs(t, s.CreateUser(""), ErrValidation)
	require.ErrorIs(t, s.CreateUser("  "), ErrValidation)
}

func TestSeedUsers_Idempotent(t *testing.T) {
	s := newTestStore(t)

	// seeding again must not duplicate
	s.SeedUsers("Alice", "Bob")

	users, err := s.ListUsersByID()
	require.NoError(t, err)
	require.Len(t, users, 2)
}

func TestListUsers_Orderings(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateUser("Zed"))
	require.NoError(t, s.CreateUser("Ann"))

	byName, err := s.ListUsersByName()
	require.NoError(t, err)
	require.Equal(t, []string{"Alice", "Ann", "Bob", "Zed"},
		[]string{byName[0].Username, byName[1].Username, byName[2].Username, byName[3].Username})

	byID, err := s.ListUsersByID()
	require.NoError(t, err)
	require.Equal(t, uint(1), byID[0].ID)
	require.Equal(t, uint(4), byID[3].ID)
}

func TestDeleteUser_RejectedWhileInUse(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateTask("Fix bug", 1, models.PriorityHigh))

	require.ErrorIs(t, s.DeleteUser(1), ErrUserHasTasks)

	// once the task is gone, the delete goes through
	require.NoError(t, s.DeleteTask(1))
	require.NoError(t, s.DeleteUser(1))

	users, err := s.ListUsersByID()
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "Bob", users[0].Username)

	// deleting a missing id is a no-op
	require.NoError(t, s.DeleteUser(999))
}

// Full walkthrough: create, complete, reassign, delete.
func TestTaskLifecycle(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.CreateTask("Fix bug", 1, models.PriorityHigh))

	rows, err := s.ListTasks(TaskFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Fix bug", rows[0].Title)
	require.Equal(t, "Alice", rows[0].Username)
	require.Equal(t, models.PriorityHigh, rows[0].Priority)
	require.Equal(t, models.StatusOpen, rows[0].Status)

	require.NoError(t, s.CompleteTask(rows[0].ID))
	row, err := s.GetTask(rows[0].ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusComplete, row.Status)

	require.NoError(t, s.UpdateTask(row.ID, "Fix bug v2", 2, models.PriorityLow))
	row, err = s.GetTask(row.ID)
	require.NoError(t, err)
	require.Equal(t, "Fix bug v2", row.Title)
	require.Equal(t, "Bob", row.Username)
	require.Equal(t, models.PriorityLow, row.Priority)
	require.Equal(t, models.StatusComplete, row.Status)

	require.NoError(t, s.DeleteTask(row.ID))
	rows, err = s.ListTasks(TaskFilter{})
	require.NoError(t, err)
	require.Empty(t, rows)
}
