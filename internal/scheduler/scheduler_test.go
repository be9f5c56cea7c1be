package scheduler

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/limudbot/internal/database"
	"github.com/example/limudbot/pkg/models"
)

type recordingNotifier struct {
	calls map[int64][]string
}

func (r *recordingNotifier) SendDailyReminder(userID int64, planIDs []string) error {
	if r.calls == nil {
		r.calls = make(map[int64][]string)
	}
	r.calls[userID] = planIDs
	return nil
}

func setupTestDB(t *testing.T) {
	t.Helper()
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DATABASE_PATH", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, database.Connect())
	t.Cleanup(func() {
		require.NoError(t, database.Close())
		database.DB = nil
	})
}

func seedPlan(t *testing.T, id string, userID int64, completed bool) {
	t.Helper()
	plan := &models.LearningPlan{
		ID:          id,
		UserID:      userID,
		CreatedAt:   time.Now().UTC(),
		MasechetIDs: []string{"berakhot"},
		PlanName:    "מסכת ברכות",
		Mode:        models.ModeByPace,
		Unit:        models.UnitMishnah,
		Frequency: models.ScheduleFrequency{
			Type:  models.FreqDaysPerWeek,
			Value: 7,
		},
		AmountPerDay:           3,
		CalculatedAmountPerDay: 3,
		TotalUnits:             57,
		IsCompleted:            completed,
		CompletedDates:         []string{},
		SkippedChapters:        []models.ChapterRef{},
		PreLearnedChapters:     []models.ChapterRef{},
	}
	require.NoError(t, database.NewPlanRepository().Create(plan))
}

func TestRunManualCheckSendsActivePlans(t *testing.T) {
	setupTestDB(t)
	seedPlan(t, "plan-a", 100, false)
	seedPlan(t, "plan-b", 100, true)

	notifier := &recordingNotifier{}
	s := New(notifier)

	require.NoError(t, s.RunManualCheck(100))
	assert.Equal(t, []string{"plan-a"}, notifier.calls[100])
}

func TestRunManualCheckNoPlans(t *testing.T) {
	setupTestDB(t)

	notifier := &recordingNotifier{}
	s := New(notifier)

	require.NoError(t, s.RunManualCheck(200))
	assert.Empty(t, notifier.calls)
}

func TestNotificationWindowDefaults(t *testing.T) {
	t.Setenv("NOTIFICATION_START_HOUR", "")
	t.Setenv("NOTIFICATION_END_HOUR", "")
	start, end := notificationWindow()
	assert.Equal(t, DefaultNotificationStartHour, start)
	assert.Equal(t, DefaultNotificationEndHour, end)
}

func TestNotificationWindowOverrides(t *testing.T) {
	t.Setenv("NOTIFICATION_START_HOUR", "8")
	t.Setenv("NOTIFICATION_END_HOUR", "20")
	start, end := notificationWindow()
	assert.Equal(t, 8, start)
	assert.Equal(t, 20, end)

	// out-of-range values fall back to the defaults
	t.Setenv("NOTIFICATION_START_HOUR", "25")
	t.Setenv("NOTIFICATION_END_HOUR", "-1")
	start, end = notificationWindow()
	assert.Equal(t, DefaultNotificationStartHour, start)
	assert.Equal(t, DefaultNotificationEndHour, end)
}
