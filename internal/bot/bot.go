package bot

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/example/limudbot/internal/database"
	"github.com/example/limudbot/internal/schedule"
	"github.com/example/limudbot/internal/scheduler"
	"github.com/example/limudbot/internal/sefaria"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MenuButton represents a button in the menu
type MenuButton struct {
	Text         string
	CallbackData string
}

// createKeyboard creates a keyboard from menu buttons
func createKeyboard(buttons [][]MenuButton) tgbotapi.InlineKeyboardMarkup {
	var keyboard [][]tgbotapi.InlineKeyboardButton
	for _, row := range buttons {
		var keyboardRow []tgbotapi.InlineKeyboardButton
		for _, button := range row {
			keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonData(button.Text, button.CallbackData))
		}
		keyboard = append(keyboard, keyboardRow)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}

// Bot represents the Telegram bot application
type Bot struct {
	api              *tgbotapi.BotAPI
	token            string
	userRepo         *database.UserRepository
	planRepo         *database.PlanRepository
	texts            *sefaria.Client
	schedulerEnabled bool
	scheduler        *scheduler.Scheduler
	drafts           map[int64]*planDraft
	adminUserIDs     map[int64]bool
	config           *BotConfig
}

// New creates a new bot instance
func New() (*Bot, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is not set")
	}

	if database.DB == nil {
		return nil, fmt.Errorf("database connection is not established")
	}

	schedulerEnabled := os.Getenv("ENABLE_SCHEDULER") != "false"

	bot := &Bot{
		token:            token,
		userRepo:         database.NewUserRepository(),
		planRepo:         database.NewPlanRepository(),
		texts:            sefaria.New(),
		schedulerEnabled: schedulerEnabled,
		drafts:           make(map[int64]*planDraft),
		adminUserIDs:     make(map[int64]bool),
		config:           DefaultConfig(),
	}

	adminIDs := os.Getenv("ADMIN_USER_IDS")
	if adminIDs != "" {
		for _, idStr := range strings.Split(adminIDs, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64)
			if err != nil {
				log.Printf("Warning: Invalid admin user ID: %s", idStr)
				continue
			}
			bot.adminUserIDs[id] = true
		}
	}

	return bot, nil
}

// Start connects to Telegram and processes updates until the context is
// cancelled
func (b *Bot) Start(ctx context.Context) error {
	botAPI, err := tgbotapi.NewBotAPI(b.token)
	if err != nil {
		return fmt.Errorf("unable to create bot: %v", err)
	}

	b.api = botAPI
	log.Printf("Authorized on account %s", botAPI.Self.UserName)

	if b.schedulerEnabled {
		b.scheduler = scheduler.New(b)
		b.scheduler.Start()
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(update)
		}
	}
}

// Stop shuts the bot down
func (b *Bot) Stop(ctx context.Context) error {
	if b.scheduler != nil {
		b.scheduler.Stop()
	}
	if b.api != nil {
		b.api.StopReceivingUpdates()
	}
	return nil
}

func (b *Bot) isAdmin(userID int64) bool {
	return b.adminUserIDs[userID]
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic in update handler: %v", r)
		}
	}()

	switch {
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(update.Message)
	case update.Message != nil:
		b.handleText(update.Message)
	case update.CallbackQuery != nil:
		b.handleCallbackQuery(update.CallbackQuery)
	}
}

func (b *Bot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message to %d: %v", chatID, err)
	}
}

func (b *Bot) sendWithKeyboard(chatID int64, text string, buttons [][]MenuButton) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = createKeyboard(buttons)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message to %d: %v", chatID, err)
	}
}

// SendDailyReminder implements scheduler.Notifier: it sends the user each
// active plan's portion for today
func (b *Bot) SendDailyReminder(userID int64, planIDs []string) error {
	if b.api == nil {
		return fmt.Errorf("bot is not started")
	}

	today := time.Now()
	for _, planID := range planIDs {
		plan, err := b.planRepo.GetByID(planID)
		if err != nil || plan == nil || plan.IsCompleted {
			continue
		}
		if !schedule.IsLearningDay(today, plan.Frequency) {
			continue
		}
		items := b.todayItems(plan)
		if len(items) == 0 {
			continue
		}
		b.send(userID, "🔔 "+plan.PlanName+"\n"+formatItems(items, plan.Unit)+"\n\nסיימת? שלח /done")
	}
	return nil
}
