package models

import "time"

// LearningUnit is the position granularity of a plan: individual mishnah
// (or amud/halacha) versus whole chapter (perek/daf).
type LearningUnit string

const (
	UnitMishnah LearningUnit = "mishnah"
	UnitPerek   LearningUnit = "perek"
)

// PlanMode determines how the daily amount is derived
type PlanMode string

const (
	// ModeByBook spreads the content so it finishes by a target date
	ModeByBook PlanMode = "by_book"
	// ModeByPace uses a fixed user-chosen daily amount
	ModeByPace PlanMode = "by_pace"
)

// FrequencyType selects how learning days are picked from the calendar
type FrequencyType string

const (
	FreqDaysPerWeek  FrequencyType = "days_per_week"
	FreqDaysPerMonth FrequencyType = "days_per_month"
	FreqSpecificDays FrequencyType = "specific_days"
)

// ScheduleFrequency describes which calendar dates count as learning days.
// Value is used for days_per_week/days_per_month, Days for specific_days
// (weekday numbers, 0=Sunday). ReviewEvery > 0 turns every (ReviewEvery+1)-th
// learning day into a review day that consumes no new content.
type ScheduleFrequency struct {
	Type        FrequencyType `json:"type"`
	Value       int           `json:"value,omitempty"`
	Days        []int         `json:"days,omitempty"`
	ReviewEvery int           `json:"review_every,omitempty"`
}

// DistributionStrategy picks how an inexact division is spread over days
type DistributionStrategy string

const (
	// StrategyEven uses the higher amount every day and finishes early
	StrategyEven DistributionStrategy = "even"
	// StrategyTapered front-loads the higher amount so the target date is hit exactly
	StrategyTapered DistributionStrategy = "tapered"
)

// Distribution describes how totalUnits splits across learning days when
// the division is not exact
type Distribution struct {
	IsExact         bool                 `json:"is_exact"`
	HighAmount      int                  `json:"high_amount"`
	LowAmount       int                  `json:"low_amount"`
	HighDays        int                  `json:"high_days"`
	LowDays         int                  `json:"low_days"`
	CutoffPosition  int                  `json:"cutoff_position"`
	EarlyFinishDays int                  `json:"early_finish_days"`
	Strategy        DistributionStrategy `json:"strategy"`
}

// ChapterRef identifies a single chapter of a masechet (chapter is 1-based)
type ChapterRef struct {
	MasechetID string `json:"masechet_id"`
	Chapter    int    `json:"chapter"`
}

// LearningPlan is a user's plan over an ordered sequence of masechtot.
// CurrentPosition is a 0-based flat offset into the concatenation of all
// masechtot at the plan's granularity. SkippedChapters are holes behind the
// position; PreLearnedChapters are chapters ahead of it that were already
// learned and are auto-consumed when the position reaches them.
type LearningPlan struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	MasechetIDs []string          `json:"masechet_ids"`
	PlanName    string            `json:"plan_name"`
	Mode        PlanMode          `json:"mode"`
	Unit        LearningUnit      `json:"unit"`
	Frequency   ScheduleFrequency `json:"frequency"`

	// by_book only, "2006-01-02"
	TargetDate string `json:"target_date,omitempty"`
	// by_pace only
	AmountPerDay int `json:"amount_per_day,omitempty"`

	CalculatedAmountPerDay int           `json:"calculated_amount_per_day"`
	TotalUnits             int           `json:"total_units"`
	EstimatedEndDate       string        `json:"estimated_end_date,omitempty"`
	Distribution           *Distribution `json:"distribution,omitempty"`

	CurrentPosition  int      `json:"current_position"`
	CompletedDates   []string `json:"completed_dates"`
	LastLearningDate string   `json:"last_learning_date,omitempty"`
	IsCompleted      bool     `json:"is_completed"`

	SkippedChapters    []ChapterRef `json:"skipped_chapters"`
	PreLearnedChapters []ChapterRef `json:"pre_learned_chapters"`
}
