package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/example/limudbot/internal/database"
	"github.com/go-co-op/gocron"
)

// Default reminder window; reminders outside it are suppressed
const (
	DefaultNotificationStartHour = 6
	DefaultNotificationEndHour   = 22
)

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	notifier  Notifier
}

// Notifier interface for sending daily learning reminders
type Notifier interface {
	SendDailyReminder(userID int64, planIDs []string) error
}

// New creates a new scheduler instance
func New(notifier Notifier) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		notifier:  notifier,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	// Hourly check for users whose notification hour has arrived
	s.scheduler.Every(1).Hour().Do(s.checkAndSendReminders)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func notificationWindow() (int, int) {
	start := DefaultNotificationStartHour
	end := DefaultNotificationEndHour
	if v := os.Getenv("NOTIFICATION_START_HOUR"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 23 {
			start = h
		}
	}
	if v := os.Getenv("NOTIFICATION_END_HOUR"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 23 {
			end = h
		}
	}
	return start, end
}

// checkAndSendReminders finds users due a reminder this hour and sends each
// their active plans' portions
func (s *Scheduler) checkAndSendReminders() {
	currentHour := time.Now().Hour()
	startHour, endHour := notificationWindow()

	if currentHour < startHour || currentHour > endHour {
		log.Printf("Current hour %d is outside notification hours (%d-%d), skipping reminders",
			currentHour, startHour, endHour)
		return
	}

	userRepo := database.NewUserRepository()
	planRepo := database.NewPlanRepository()

	users, err := userRepo.GetUsersForNotification(currentHour)
	if err != nil {
		log.Printf("Error getting users for notification: %v", err)
		return
	}

	for _, user := range users {
		plans, err := planRepo.GetActiveByUser(user.ID)
		if err != nil {
			log.Printf("Error getting plans for user %d: %v", user.ID, err)
			continue
		}
		if len(plans) == 0 {
			continue
		}

		planIDs := make([]string, len(plans))
		for i, p := range plans {
			planIDs[i] = p.ID
		}
		if err := s.notifier.SendDailyReminder(user.ID, planIDs); err != nil {
			log.Printf("Error sending reminder to user %d: %v", user.ID, err)
		}
	}
}

// RunManualCheck forces a reminder for a specific user
func (s *Scheduler) RunManualCheck(userID int64) error {
	planRepo := database.NewPlanRepository()
	plans, err := planRepo.GetActiveByUser(userID)
	if err != nil {
		return err
	}
	if len(plans) == 0 {
		return nil
	}
	planIDs := make([]string, len(plans))
	for i, p := range plans {
		planIDs[i] = p.ID
	}
	return s.notifier.SendDailyReminder(userID, planIDs)
}
