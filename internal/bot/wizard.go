package bot

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/example/limudbot/internal/schedule"
	"github.com/example/limudbot/internal/structure"
	"github.com/example/limudbot/pkg/models"
	"github.com/google/uuid"
)

// planDraft holds the state of an in-progress /new conversation
type planDraft struct {
	Step        string
	Corpus      structure.ContentType
	Unit        models.LearningUnit
	SederID     string
	MasechetIDs []string
	Frequency   models.ScheduleFrequency
	TargetDate  string
	Book        schedule.BookSchedule
}

const (
	stepCorpus       = "corpus"
	stepUnit         = "unit"
	stepScope        = "scope"
	stepBooks        = "books"
	stepCadence      = "cadence"
	stepDaysPerWeek  = "days_per_week"
	stepDaysPerMonth = "days_per_month"
	stepWeekdays     = "weekdays"
	stepReview       = "review"
	stepMode         = "mode"
	stepTargetDate   = "target_date"
	stepAmount       = "amount"
	stepStrategy     = "strategy"
)

var weekdayNames = []string{"ראשון", "שני", "שלישי", "רביעי", "חמישי", "שישי", "שבת"}

func (b *Bot) startNewPlan(chatID int64) {
	b.drafts[chatID] = &planDraft{Step: stepCorpus}
	b.sendWithKeyboard(chatID, "מה נלמד?", [][]MenuButton{
		{{Text: "משנה", CallbackData: "n|c|m"}},
		{{Text: "גמרא", CallbackData: "n|c|g"}},
		{{Text: "רמב\"ם", CallbackData: "n|c|r"}},
	})
}

// handleWizardCallback processes "n|..." callback data for the /new flow
func (b *Bot) handleWizardCallback(chatID int64, parts []string) {
	draft := b.drafts[chatID]
	if draft == nil || len(parts) < 3 {
		b.send(chatID, "אין תוכנית בהקמה. שלח /new כדי להתחיל.")
		return
	}

	switch parts[1] {
	case "c":
		b.wizardCorpus(chatID, draft, parts[2])
	case "u":
		b.wizardUnit(chatID, draft, parts[2])
	case "s":
		b.wizardScope(chatID, draft, parts[2])
	case "b":
		b.wizardBooks(chatID, draft, parts[2])
	case "f":
		b.wizardCadence(chatID, draft, parts[2])
	case "d":
		b.wizardWeekday(chatID, draft, parts[2])
	case "r":
		b.wizardReview(chatID, draft, parts[2])
	case "m":
		b.wizardMode(chatID, draft, parts[2])
	case "g":
		b.wizardStrategy(chatID, draft, parts[2])
	}
}

func (b *Bot) wizardCorpus(chatID int64, draft *planDraft, choice string) {
	switch choice {
	case "m":
		draft.Corpus = structure.ContentMishnah
	case "g":
		draft.Corpus = structure.ContentGemara
	case "r":
		draft.Corpus = structure.ContentRambam
	default:
		return
	}

	if draft.Corpus == structure.ContentRambam {
		draft.Unit = models.UnitPerek
		b.askScope(chatID, draft)
		return
	}

	draft.Step = stepUnit
	small := structure.UnitLabel(draft.Corpus, models.UnitMishnah, false)
	big := structure.UnitLabel(draft.Corpus, models.UnitPerek, false)
	b.sendWithKeyboard(chatID, "באיזו יחידת לימוד?", [][]MenuButton{
		{{Text: small, CallbackData: "n|u|m"}, {Text: big, CallbackData: "n|u|p"}},
	})
}

func (b *Bot) wizardUnit(chatID int64, draft *planDraft, choice string) {
	if choice == "p" {
		draft.Unit = models.UnitPerek
	} else {
		draft.Unit = models.UnitMishnah
	}
	b.askScope(chatID, draft)
}

func (b *Bot) askScope(chatID int64, draft *planDraft) {
	draft.Step = stepScope
	labels := structure.LabelsFor(draft.Corpus)
	buttons := [][]MenuButton{
		{{Text: labels.AllName, CallbackData: "n|s|all"}},
	}
	for _, seder := range structure.StructureFor(draft.Corpus) {
		buttons = append(buttons, []MenuButton{{Text: seder.Name, CallbackData: "n|s|" + seder.ID}})
	}
	b.sendWithKeyboard(chatID, "מה היקף הלימוד?", buttons)
}

func (b *Bot) wizardScope(chatID int64, draft *planDraft, choice string) {
	if choice == "all" {
		draft.MasechetIDs = structure.AllMasechetIDs(draft.Corpus)
		b.askCadence(chatID, draft)
		return
	}
	draft.SederID = choice
	draft.Step = stepBooks
	b.sendBookKeyboard(chatID, draft)
}

func (b *Bot) sendBookKeyboard(chatID int64, draft *planDraft) {
	var seder *structure.Seder
	for _, s := range structure.StructureFor(draft.Corpus) {
		if s.ID == draft.SederID {
			seder = &s
			break
		}
	}
	if seder == nil {
		return
	}

	labels := structure.LabelsFor(draft.Corpus)
	buttons := [][]MenuButton{
		{{Text: "כל " + seder.Name, CallbackData: "n|b|*"}},
	}
	for _, m := range seder.Masechtot {
		text := m.Name
		if containsString(draft.MasechetIDs, m.ID) {
			text = "✅ " + text
		}
		buttons = append(buttons, []MenuButton{{Text: text, CallbackData: "n|b|" + m.ID}})
	}
	buttons = append(buttons, []MenuButton{{Text: "המשך ➡️", CallbackData: "n|b|."}})
	b.sendWithKeyboard(chatID, fmt.Sprintf("בחר %s (אפשר כמה):", labels.BookPlural), buttons)
}

func (b *Bot) wizardBooks(chatID int64, draft *planDraft, choice string) {
	switch choice {
	case "*":
		draft.MasechetIDs = structure.SederMasechetIDs(draft.SederID)
		b.askCadence(chatID, draft)
	case ".":
		if len(draft.MasechetIDs) == 0 {
			b.send(chatID, "לא נבחר כלום עדיין.")
			b.sendBookKeyboard(chatID, draft)
			return
		}
		b.askCadence(chatID, draft)
	default:
		if containsString(draft.MasechetIDs, choice) {
			draft.MasechetIDs = removeString(draft.MasechetIDs, choice)
		} else if structure.GetMasechet(choice) != nil {
			draft.MasechetIDs = append(draft.MasechetIDs, choice)
		}
		b.sendBookKeyboard(chatID, draft)
	}
}

func (b *Bot) askCadence(chatID int64, draft *planDraft) {
	draft.Step = stepCadence
	b.sendWithKeyboard(chatID, "באיזו תדירות?", [][]MenuButton{
		{{Text: "כל יום", CallbackData: "n|f|daily"}},
		{{Text: "מספר ימים בשבוע", CallbackData: "n|f|dpw"}},
		{{Text: "מספר ימים בחודש", CallbackData: "n|f|dpm"}},
		{{Text: "ימים קבועים בשבוע", CallbackData: "n|f|days"}},
	})
}

func (b *Bot) wizardCadence(chatID int64, draft *planDraft, choice string) {
	switch choice {
	case "daily":
		draft.Frequency = models.ScheduleFrequency{Type: models.FreqDaysPerWeek, Value: 7}
		b.askReview(chatID, draft)
	case "dpw":
		draft.Step = stepDaysPerWeek
		b.send(chatID, "כמה ימים בשבוע? (1-7)")
	case "dpm":
		draft.Step = stepDaysPerMonth
		b.send(chatID, "כמה ימים בחודש? (1-30)")
	case "days":
		draft.Frequency = models.ScheduleFrequency{Type: models.FreqSpecificDays}
		draft.Step = stepWeekdays
		b.sendWeekdayKeyboard(chatID, draft)
	}
}

func (b *Bot) sendWeekdayKeyboard(chatID int64, draft *planDraft) {
	var buttons [][]MenuButton
	for i, name := range weekdayNames {
		text := name
		if containsInt(draft.Frequency.Days, i) {
			text = "✅ " + text
		}
		buttons = append(buttons, []MenuButton{{Text: text, CallbackData: "n|d|" + strconv.Itoa(i)}})
	}
	buttons = append(buttons, []MenuButton{{Text: "המשך ➡️", CallbackData: "n|d|."}})
	b.sendWithKeyboard(chatID, "באילו ימים?", buttons)
}

func (b *Bot) wizardWeekday(chatID int64, draft *planDraft, choice string) {
	if choice == "." {
		if len(draft.Frequency.Days) == 0 {
			b.send(chatID, "יש לבחור לפחות יום אחד.")
			b.sendWeekdayKeyboard(chatID, draft)
			return
		}
		b.askReview(chatID, draft)
		return
	}
	day, err := strconv.Atoi(choice)
	if err != nil || day < 0 || day > 6 {
		return
	}
	if containsInt(draft.Frequency.Days, day) {
		draft.Frequency.Days = removeInt(draft.Frequency.Days, day)
	} else {
		draft.Frequency.Days = append(draft.Frequency.Days, day)
	}
	b.sendWeekdayKeyboard(chatID, draft)
}

func (b *Bot) askReview(chatID int64, draft *planDraft) {
	draft.Step = stepReview
	b.sendWithKeyboard(chatID, "לשלב ימי חזרה?", [][]MenuButton{
		{{Text: "בלי חזרות", CallbackData: "n|r|0"}},
		{{Text: "יום חזרה אחרי כל 6 ימי לימוד", CallbackData: "n|r|6"}},
	})
}

func (b *Bot) wizardReview(chatID int64, draft *planDraft, choice string) {
	every, err := strconv.Atoi(choice)
	if err != nil || every < 0 {
		return
	}
	draft.Frequency.ReviewEvery = every
	draft.Step = stepMode
	b.sendWithKeyboard(chatID, "איך לקצוב את הלימוד?", [][]MenuButton{
		{{Text: "לסיים עד תאריך יעד", CallbackData: "n|m|book"}},
		{{Text: "קצב יומי קבוע", CallbackData: "n|m|pace"}},
	})
}

func (b *Bot) wizardMode(chatID int64, draft *planDraft, choice string) {
	ct := draft.Corpus
	unitName := structure.UnitLabel(ct, draft.Unit, true)
	switch choice {
	case "book":
		draft.Step = stepTargetDate
		b.send(chatID, "עד איזה תאריך? (YYYY-MM-DD)")
	case "pace":
		draft.Step = stepAmount
		b.send(chatID, fmt.Sprintf("כמה %s ביום?", unitName))
	}
}

// handleWizardText processes free-text answers for steps that expect typed
// input
func (b *Bot) handleWizardText(chatID int64, draft *planDraft, text string) {
	text = strings.TrimSpace(text)
	switch draft.Step {
	case stepDaysPerWeek:
		n, err := strconv.Atoi(text)
		if err != nil || n < 1 || n > 7 {
			b.send(chatID, "נא להזין מספר בין 1 ל-7.")
			return
		}
		draft.Frequency = models.ScheduleFrequency{Type: models.FreqDaysPerWeek, Value: n}
		b.askReview(chatID, draft)
	case stepDaysPerMonth:
		n, err := strconv.Atoi(text)
		if err != nil || n < 1 || n > 30 {
			b.send(chatID, "נא להזין מספר בין 1 ל-30.")
			return
		}
		draft.Frequency = models.ScheduleFrequency{Type: models.FreqDaysPerMonth, Value: n}
		b.askReview(chatID, draft)
	case stepTargetDate:
		b.wizardTargetDate(chatID, draft, text)
	case stepAmount:
		n, err := strconv.Atoi(text)
		if err != nil || n < 1 {
			b.send(chatID, "נא להזין מספר חיובי.")
			return
		}
		b.createPacePlan(chatID, draft, n)
	default:
		b.send(chatID, "לא הבנתי. שלח /help לרשימת הפקודות.")
	}
}

func (b *Bot) wizardTargetDate(chatID int64, draft *planDraft, text string) {
	target, err := time.Parse("2006-01-02", text)
	if err != nil {
		b.send(chatID, "תאריך לא תקין. נא להזין בתבנית YYYY-MM-DD.")
		return
	}
	today := time.Now().Truncate(24 * time.Hour)
	if !target.After(today) {
		b.send(chatID, "תאריך היעד חייב להיות בעתיד.")
		return
	}

	draft.TargetDate = text
	draft.Book = schedule.CalculateByBook(draft.MasechetIDs, draft.Unit, target, draft.Frequency, time.Now())

	if draft.Book.Distribution.IsExact {
		b.createBookPlan(chatID, draft, models.StrategyEven)
		return
	}

	draft.Step = stepStrategy
	dist := draft.Book.Distribution
	unitName := structure.UnitLabel(draft.Corpus, draft.Unit, true)
	msg := fmt.Sprintf("החלוקה אינה מדויקת: %d ימים של %d %s ו-%d ימים של %d.\nאיך לפזר?",
		dist.HighDays, dist.HighAmount, unitName, dist.LowDays, dist.LowAmount)
	b.sendWithKeyboard(chatID, msg, [][]MenuButton{
		{{Text: fmt.Sprintf("חזק בהתחלה (%d ואז %d)", dist.HighAmount, dist.LowAmount), CallbackData: "n|g|t"}},
		{{Text: fmt.Sprintf("אחיד (%d כל יום, סיום מוקדם)", dist.HighAmount), CallbackData: "n|g|e"}},
	})
}

func (b *Bot) wizardStrategy(chatID int64, draft *planDraft, choice string) {
	strategy := models.StrategyTapered
	if choice == "e" {
		strategy = models.StrategyEven
	}
	b.createBookPlan(chatID, draft, strategy)
}

func (b *Bot) createBookPlan(chatID int64, draft *planDraft, strategy models.DistributionStrategy) {
	dist := draft.Book.Distribution
	dist.Strategy = strategy
	plan := b.newPlanFromDraft(chatID, draft)
	plan.Mode = models.ModeByBook
	plan.TargetDate = draft.TargetDate
	plan.CalculatedAmountPerDay = draft.Book.AmountPerDay
	plan.TotalUnits = draft.Book.TotalUnits
	plan.Distribution = &dist
	b.finishPlan(chatID, plan)
}

func (b *Bot) createPacePlan(chatID int64, draft *planDraft, amountPerDay int) {
	pace := schedule.CalculateByPace(draft.MasechetIDs, draft.Unit, amountPerDay, draft.Frequency, time.Now())
	plan := b.newPlanFromDraft(chatID, draft)
	plan.Mode = models.ModeByPace
	plan.AmountPerDay = amountPerDay
	plan.CalculatedAmountPerDay = amountPerDay
	plan.TotalUnits = pace.TotalUnits
	plan.EstimatedEndDate = pace.EstimatedEndDate.Format("2006-01-02")
	b.finishPlan(chatID, plan)
}

func (b *Bot) newPlanFromDraft(chatID int64, draft *planDraft) *models.LearningPlan {
	return &models.LearningPlan{
		ID:                 uuid.NewString(),
		UserID:             chatID,
		CreatedAt:          time.Now(),
		MasechetIDs:        draft.MasechetIDs,
		PlanName:           structure.PlanDisplayName(draft.MasechetIDs),
		Unit:               draft.Unit,
		Frequency:          draft.Frequency,
		CompletedDates:     []string{},
		SkippedChapters:    []models.ChapterRef{},
		PreLearnedChapters: []models.ChapterRef{},
	}
}

func (b *Bot) finishPlan(chatID int64, plan *models.LearningPlan) {
	delete(b.drafts, chatID)

	if err := b.planRepo.Create(plan); err != nil {
		log.Printf("Error creating plan for %d: %v", chatID, err)
		b.send(chatID, "אירעה שגיאה בשמירת התוכנית. נסה שוב.")
		return
	}

	ct := structure.ContentTypeOf(firstID(plan.MasechetIDs))
	unitName := structure.UnitLabel(ct, plan.Unit, true)
	var msg strings.Builder
	fmt.Fprintf(&msg, "✨ התוכנית \"%s\" נוצרה!\n", plan.PlanName)
	fmt.Fprintf(&msg, "סה\"כ %d %s.\n", plan.TotalUnits, unitName)
	if plan.Mode == models.ModeByBook {
		fmt.Fprintf(&msg, "קצב: עד %d %s ביום כדי לסיים עד %s.\n", plan.CalculatedAmountPerDay, unitName, plan.TargetDate)
	} else {
		fmt.Fprintf(&msg, "קצב: %d %s ביום, סיום משוער %s.\n", plan.AmountPerDay, unitName, plan.EstimatedEndDate)
	}
	msg.WriteString("שלח /today כדי לראות את הלימוד של היום.")
	b.send(chatID, msg.String())
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func removeString(list []string, s string) []string {
	out := list[:0:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}

func containsInt(list []int, n int) bool {
	for _, v := range list {
		if v == n {
			return true
		}
	}
	return false
}

func removeInt(list []int, n int) []int {
	out := list[:0:0]
	for _, v := range list {
		if v != n {
			out = append(out, v)
		}
	}
	return out
}
