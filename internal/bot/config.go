package bot

// BotConfig represents the configuration for the bot
type BotConfig struct {
	// When a masechet inside a multi-book plan finishes and more than this
	// many books remain unstarted, the user is prompted to pick what to
	// learn next instead of silently continuing in order
	NextBookPromptThreshold int
	// Runs of at least this many consecutive not-yet-started books are
	// collapsed into one summary row in progress output
	CollapseRunThreshold int
	// How many upcoming learning days to prefetch text for
	PrefetchDays int
	// Default reminder hour for new users (0-23)
	DefaultNotificationHour int
}

// DefaultConfig returns the default bot configuration
func DefaultConfig() *BotConfig {
	return &BotConfig{
		NextBookPromptThreshold: 2,
		CollapseRunThreshold:    3,
		PrefetchDays:            3,
		DefaultNotificationHour: 9,
	}
}
