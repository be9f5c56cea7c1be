package bot

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/example/limudbot/internal/excel"
	"github.com/example/limudbot/internal/schedule"
	"github.com/example/limudbot/internal/structure"
	"github.com/example/limudbot/pkg/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const helpText = `הפקודות שלי:
/new - יצירת תוכנית לימוד חדשה
/plans - כל התוכניות שלך
/today - הלימוד של היום
/text - טקסט המקור של הלימוד הנוכחי
/done - סימון הלימוד של היום כהושלם
/skip - סימון פרקים לדילוג
/prelearned - סימון פרקים שכבר נלמדו
/pace - שינוי או כיול מחדש של הקצב היומי
/export - ייצוא לוח הלימוד לאקסל
/reset - איפוס ההתקדמות בתוכנית
/delete - מחיקת תוכנית
/notify - הגדרת תזכורת יומית
/cancel - ביטול פעולה באמצע`

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	args := strings.Fields(message.CommandArguments())

	switch message.Command() {
	case "start":
		b.handleStart(message)
	case "help":
		b.send(chatID, helpText)
	case "new":
		b.startNewPlan(chatID)
	case "cancel":
		delete(b.drafts, chatID)
		b.send(chatID, "בוטל.")
	case "plans":
		b.handlePlans(chatID)
	case "today":
		b.handleToday(chatID, args)
	case "text":
		b.handleTodayText(chatID, args)
	case "done":
		b.handleDone(chatID, args)
	case "skip":
		b.handleSkip(chatID, args)
	case "prelearned":
		b.handlePreLearned(chatID, args)
	case "pace":
		b.handlePace(chatID, args)
	case "export":
		b.handleExport(chatID, args)
	case "reset":
		b.handleReset(chatID, args)
	case "delete":
		b.handleDelete(chatID, args)
	case "notify":
		b.handleNotify(chatID, args)
	case "users":
		b.handleUsers(message)
	default:
		b.send(chatID, "פקודה לא מוכרת. שלח /help לרשימת הפקודות.")
	}
}

func (b *Bot) handleText(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if draft := b.drafts[chatID]; draft != nil {
		b.handleWizardText(chatID, draft, message.Text)
		return
	}
	b.send(chatID, "שלח /help לרשימת הפקודות.")
}

func (b *Bot) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		log.Printf("Error answering callback query: %v", err)
	}

	chatID := query.Message.Chat.ID
	parts := strings.Split(query.Data, "|")
	if len(parts) == 0 {
		return
	}

	switch parts[0] {
	case "n":
		b.handleWizardCallback(chatID, parts)
	case "sk":
		b.handleSkipToggle(chatID, parts)
	case "pl":
		b.handlePreLearnedToggle(chatID, parts)
	case "nx":
		b.handleNextBookChoice(chatID, parts)
	case "del":
		b.handleDeleteConfirm(chatID, parts)
	}
}

func (b *Bot) handleStart(message *tgbotapi.Message) {
	user := &models.User{
		ID:                  message.From.ID,
		Username:            message.From.UserName,
		FirstName:           message.From.FirstName,
		LastName:            message.From.LastName,
		IsAdmin:             b.isAdmin(message.From.ID),
		NotificationEnabled: true,
		NotificationHour:    b.config.DefaultNotificationHour,
	}
	if err := b.userRepo.Upsert(user); err != nil {
		log.Printf("Error upserting user %d: %v", user.ID, err)
	}

	b.send(message.Chat.ID, "ברוך הבא! אני עוזר לקבוע וללוות לימוד יומי של משנה, גמרא ורמב\"ם.\n"+
		"שלח /new כדי ליצור תוכנית לימוד.\n"+helpText)
}

// activePlan resolves which plan a command refers to. With no argument the
// first active plan is used; "/today 2" picks the second one.
func (b *Bot) activePlan(chatID int64, args []string) *models.LearningPlan {
	plans, err := b.planRepo.GetActiveByUser(chatID)
	if err != nil {
		log.Printf("Error loading plans for %d: %v", chatID, err)
		b.send(chatID, "אירעה שגיאה בטעינת התוכניות.")
		return nil
	}
	if len(plans) == 0 {
		b.send(chatID, "אין לך תוכנית פעילה. שלח /new כדי ליצור אחת.")
		return nil
	}

	idx := 0
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n >= 1 && n <= len(plans) {
			idx = n - 1
		}
	}
	return &plans[idx]
}

func (b *Bot) handlePlans(chatID int64) {
	plans, err := b.planRepo.GetByUser(chatID)
	if err != nil {
		log.Printf("Error loading plans for %d: %v", chatID, err)
		b.send(chatID, "אירעה שגיאה בטעינת התוכניות.")
		return
	}
	if len(plans) == 0 {
		b.send(chatID, "אין לך תוכניות עדיין. שלח /new כדי ליצור אחת.")
		return
	}

	var msg strings.Builder
	msg.WriteString("📚 התוכניות שלך:\n\n")
	for i := range plans {
		msg.WriteString(planSummary(i+1, &plans[i]))
		msg.WriteString("\n")
	}
	msg.WriteString("פקודות על תוכנית מסוימת מקבלות מספר, למשל /today 2")
	b.send(chatID, msg.String())
}

func (b *Bot) todayItems(plan *models.LearningPlan) []schedule.LearningItem {
	amount := schedule.AmountForPosition(plan.CurrentPosition, plan.CalculatedAmountPerDay, plan.Distribution)
	return schedule.ItemsForDay(plan.MasechetIDs, plan.Unit, plan.CurrentPosition, amount, plan.PreLearnedChapters)
}

func (b *Bot) handleToday(chatID int64, args []string) {
	plan := b.activePlan(chatID, args)
	if plan == nil {
		return
	}

	items := b.todayItems(plan)
	if len(items) == 0 {
		b.send(chatID, "אין מה ללמוד — כל החומר שנותר כבר סומן כנלמד. שלח /done לסגירת התוכנית.")
		return
	}

	msg := todayHeader(plan, time.Now()) + "\n\n" + formatItems(items, plan.Unit) +
		"\n\nסיימת? שלח /done"
	b.send(chatID, msg)

	b.prefetchUpcoming(plan)
}

// prefetchUpcoming warms the text cache for the next few days of the plan
func (b *Bot) prefetchUpcoming(plan *models.LearningPlan) {
	sim := *plan
	var refs []string
	for day := 0; day < b.config.PrefetchDays; day++ {
		amount := schedule.AmountForPosition(sim.CurrentPosition, sim.CalculatedAmountPerDay, sim.Distribution)
		items := schedule.ItemsForDay(sim.MasechetIDs, sim.Unit, sim.CurrentPosition, amount, sim.PreLearnedChapters)
		if len(items) == 0 {
			break
		}
		for _, item := range items {
			refs = append(refs, item.SefariaRef)
		}
		sim.CurrentPosition += schedule.UnitsCovered(sim.Unit, items)
	}
	b.texts.Prefetch(refs)
}

func (b *Bot) handleTodayText(chatID int64, args []string) {
	plan := b.activePlan(chatID, args)
	if plan == nil {
		return
	}
	items := b.todayItems(plan)
	if len(items) == 0 {
		b.send(chatID, "אין לימוד להיום.")
		return
	}

	item := items[0]
	text, err := b.texts.FetchText(item.SefariaRef)
	if err != nil {
		log.Printf("Error fetching text %q: %v", item.SefariaRef, err)
		b.send(chatID, "לא הצלחתי להביא את הטקסט כרגע. נסה שוב מאוחר יותר.")
		return
	}

	body := strings.Join(text.Hebrew, "\n\n")
	if body == "" {
		b.send(chatID, "לא נמצא טקסט עבור "+formatItem(item, plan.Unit))
		return
	}
	// Telegram caps messages at 4096 characters
	const maxLen = 3800
	if len(body) > maxLen {
		body = body[:maxLen] + "…"
	}
	b.send(chatID, formatItem(item, plan.Unit)+"\n\n"+body)
}

func (b *Bot) handleDone(chatID int64, args []string) {
	plan := b.activePlan(chatID, args)
	if plan == nil {
		return
	}

	items := b.todayItems(plan)
	learned := schedule.UnitsCovered(plan.Unit, items)

	finishedID := b.finishedMasechet(plan, learned)

	today := time.Now().Format("2006-01-02")
	schedule.MarkDayComplete(plan, today, learned)
	if err := b.planRepo.Update(plan); err != nil {
		log.Printf("Error updating plan %s: %v", plan.ID, err)
		b.send(chatID, "אירעה שגיאה בשמירה.")
		return
	}

	if plan.IsCompleted {
		b.send(chatID, fmt.Sprintf("🎉 הדרן עלך! סיימת את \"%s\"!", plan.PlanName))
		return
	}

	if finishedID != "" && len(plan.MasechetIDs) > b.config.NextBookPromptThreshold {
		b.sendNextBookPrompt(chatID, plan, finishedID)
		return
	}

	b.send(chatID, "כל הכבוד! הלימוד היומי הושלם. 💪")
}

// finishedMasechet reports whether completing `learned` units from the
// current position finishes a masechet, and which one
func (b *Bot) finishedMasechet(plan *models.LearningPlan, learned int) string {
	if len(plan.MasechetIDs) <= 1 {
		return ""
	}
	cur := structure.GlobalToLocal(plan.MasechetIDs, plan.CurrentPosition, plan.Unit)
	if cur == nil {
		return ""
	}
	next := structure.GlobalToLocal(plan.MasechetIDs, plan.CurrentPosition+learned, plan.Unit)
	if next == nil {
		return ""
	}
	if next.Masechet.ID != cur.Masechet.ID {
		return cur.Masechet.ID
	}
	if cur.PositionInMasechet+learned >= structure.MasechetUnits(cur.Masechet, plan.Unit) {
		return cur.Masechet.ID
	}
	return ""
}

// sendNextBookPrompt offers the remaining books after one is finished, so
// the learner can pull a different one forward
func (b *Bot) sendNextBookPrompt(chatID int64, plan *models.LearningPlan, finishedID string) {
	finished := structure.GetMasechet(finishedID)
	remaining := remainingMasechtot(plan, finishedID)
	if finished == nil || len(remaining) < 2 {
		b.send(chatID, "כל הכבוד! הלימוד היומי הושלם. 💪")
		return
	}

	buttons := [][]MenuButton{
		{{Text: "להמשיך לפי הסדר (" + remaining[0].Name + ")", CallbackData: "nx|-"}},
	}
	for _, m := range remaining[1:] {
		buttons = append(buttons, []MenuButton{{Text: m.Name, CallbackData: "nx|" + m.ID}})
	}
	b.sendWithKeyboard(chatID, fmt.Sprintf("🎉 הדרן עלך %s!\nמה נלמד עכשיו?", finished.Name), buttons)
}

// remainingMasechtot lists the plan's books that still have unlearned
// content, in plan order
func remainingMasechtot(plan *models.LearningPlan, finishedID string) []*structure.Masechet {
	var remaining []*structure.Masechet
	offset := 0
	for _, id := range plan.MasechetIDs {
		m := structure.GetMasechet(id)
		if m == nil {
			continue
		}
		units := structure.MasechetUnits(m, plan.Unit)
		if plan.CurrentPosition < offset+units && id != finishedID {
			remaining = append(remaining, m)
		}
		offset += units
	}
	return remaining
}

func (b *Bot) handleNextBookChoice(chatID int64, parts []string) {
	if len(parts) < 2 {
		return
	}
	plan := b.activePlan(chatID, nil)
	if plan == nil {
		return
	}
	if parts[1] == "-" {
		b.send(chatID, "ממשיכים לפי הסדר. שלח /today מחר.")
		return
	}

	chosen := parts[1]
	if !containsString(plan.MasechetIDs, chosen) {
		return
	}

	// Move the chosen book to the first position that still has content
	firstOpen := 0
	offset := 0
	for i, id := range plan.MasechetIDs {
		m := structure.GetMasechet(id)
		if m == nil {
			continue
		}
		units := structure.MasechetUnits(m, plan.Unit)
		if plan.CurrentPosition < offset+units {
			firstOpen = i
			break
		}
		offset += units
	}

	newOrder := removeString(plan.MasechetIDs, chosen)
	if firstOpen > len(newOrder) {
		firstOpen = len(newOrder)
	}
	newOrder = append(newOrder[:firstOpen], append([]string{chosen}, newOrder[firstOpen:]...)...)
	schedule.ReorderMasechtot(plan, newOrder)

	if err := b.planRepo.Update(plan); err != nil {
		log.Printf("Error updating plan %s: %v", plan.ID, err)
		b.send(chatID, "אירעה שגיאה בשמירה.")
		return
	}
	m := structure.GetMasechet(chosen)
	b.send(chatID, "מעולה! נמשיך עם "+m.Name+". שלח /today מחר.")
}

// chapterKeyboard builds toggle buttons for the next chapters around the
// current position of a plan
func chapterKeyboard(plan *models.LearningPlan, prefix string, marked func(string, int) bool) ([][]MenuButton, string) {
	loc := structure.GlobalToLocal(plan.MasechetIDs, plan.CurrentPosition, plan.Unit)
	if loc == nil {
		return nil, ""
	}
	m := loc.Masechet

	startChapter := 1
	if plan.Unit == models.UnitPerek {
		startChapter = loc.PositionInMasechet + 1
	} else {
		startChapter = structure.IndexToRef(m, loc.PositionInMasechet).Chapter
	}

	var buttons [][]MenuButton
	var row []MenuButton
	for ch := startChapter; ch <= structure.TotalChapters(m) && ch < startChapter+10; ch++ {
		text := structure.Gematria(ch)
		if marked(m.ID, ch) {
			text = "✅ " + text
		}
		row = append(row, MenuButton{Text: text, CallbackData: fmt.Sprintf("%s|%s|%d", prefix, m.ID, ch)})
		if len(row) == 5 {
			buttons = append(buttons, row)
			row = nil
		}
	}
	if len(row) > 0 {
		buttons = append(buttons, row)
	}
	return buttons, m.Name
}

func (b *Bot) handleSkip(chatID int64, args []string) {
	plan := b.activePlan(chatID, args)
	if plan == nil {
		return
	}
	buttons, name := chapterKeyboard(plan, "sk", func(mid string, ch int) bool {
		return schedule.IsChapterSkipped(plan, mid, ch)
	})
	if buttons == nil {
		b.send(chatID, "התוכנית כבר בסופה.")
		return
	}
	b.sendWithKeyboard(chatID, "אילו פרקים לדלג ב"+name+"? (לחיצה מסמנת/מבטלת)", buttons)
}

func (b *Bot) handleSkipToggle(chatID int64, parts []string) {
	if len(parts) < 3 {
		return
	}
	plan := b.activePlan(chatID, nil)
	if plan == nil {
		return
	}
	chapter, err := strconv.Atoi(parts[2])
	if err != nil {
		return
	}

	schedule.ToggleSkippedChapter(plan, parts[1], chapter)
	if err := b.planRepo.Update(plan); err != nil {
		log.Printf("Error updating plan %s: %v", plan.ID, err)
		return
	}

	m := structure.GetMasechet(parts[1])
	state := "יסומן לדילוג"
	if !schedule.IsChapterSkipped(plan, parts[1], chapter) {
		state = "חזר לתוכנית"
	}
	b.send(chatID, fmt.Sprintf("%s פרק %s %s.", m.Name, structure.Gematria(chapter), state))
}

func (b *Bot) handlePreLearned(chatID int64, args []string) {
	plan := b.activePlan(chatID, args)
	if plan == nil {
		return
	}
	buttons, name := chapterKeyboard(plan, "pl", func(mid string, ch int) bool {
		return schedule.IsChapterPreLearned(plan, mid, ch)
	})
	if buttons == nil {
		b.send(chatID, "התוכנית כבר בסופה.")
		return
	}
	b.sendWithKeyboard(chatID, "אילו פרקים כבר למדת ב"+name+"?", buttons)
}

func (b *Bot) handlePreLearnedToggle(chatID int64, parts []string) {
	if len(parts) < 3 {
		return
	}
	plan := b.activePlan(chatID, nil)
	if plan == nil {
		return
	}
	chapter, err := strconv.Atoi(parts[2])
	if err != nil {
		return
	}

	if schedule.IsChapterPreLearned(plan, parts[1], chapter) {
		schedule.RemovePreLearnedChapter(plan, parts[1], chapter)
	} else {
		schedule.AddPreLearnedChapters(plan, []models.ChapterRef{{MasechetID: parts[1], Chapter: chapter}})
	}
	if err := b.planRepo.Update(plan); err != nil {
		log.Printf("Error updating plan %s: %v", plan.ID, err)
		return
	}

	m := structure.GetMasechet(parts[1])
	state := "סומן כנלמד"
	if !schedule.IsChapterPreLearned(plan, parts[1], chapter) {
		state = "כבר לא מסומן כנלמד"
	}
	b.send(chatID, fmt.Sprintf("%s פרק %s %s.", m.Name, structure.Gematria(chapter), state))
}

func (b *Bot) handlePace(chatID int64, args []string) {
	plan := b.activePlan(chatID, nil)
	if plan == nil {
		return
	}
	ct := structure.ContentTypeOf(firstID(plan.MasechetIDs))
	unitName := structure.UnitLabel(ct, plan.Unit, true)

	if len(args) == 0 {
		if plan.Mode == models.ModeByBook && plan.TargetDate != "" {
			target, err := time.Parse("2006-01-02", plan.TargetDate)
			if err != nil {
				b.send(chatID, "תאריך היעד של התוכנית אינו תקין.")
				return
			}
			newAmount := schedule.RecalculateSpread(plan.MasechetIDs, plan.Unit, plan.CurrentPosition,
				target, plan.Frequency, time.Now())
			schedule.UpdatePace(plan, newAmount, nil)
			if err := b.planRepo.Update(plan); err != nil {
				log.Printf("Error updating plan %s: %v", plan.ID, err)
				return
			}
			b.send(chatID, fmt.Sprintf("הקצב כויל מחדש: %d %s ביום כדי לעמוד ביעד %s.",
				newAmount, unitName, plan.TargetDate))
			return
		}
		b.send(chatID, fmt.Sprintf("הקצב הנוכחי: %d %s ביום. שלח /pace <מספר> כדי לשנות.",
			plan.CalculatedAmountPerDay, unitName))
		return
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		b.send(chatID, "נא להזין מספר חיובי.")
		return
	}
	schedule.UpdatePace(plan, n, nil)
	if err := b.planRepo.Update(plan); err != nil {
		log.Printf("Error updating plan %s: %v", plan.ID, err)
		return
	}
	b.send(chatID, fmt.Sprintf("הקצב עודכן ל-%d %s ביום.", n, unitName))
}

func (b *Bot) handleExport(chatID int64, args []string) {
	plan := b.activePlan(chatID, args)
	if plan == nil {
		return
	}

	path := filepath.Join(os.TempDir(), fmt.Sprintf("schedule_%s.xlsx", plan.ID))
	result, err := excel.ExportSchedule(plan, excel.ExportConfig{
		FilePath:  path,
		StartDate: time.Now(),
	})
	if err != nil {
		log.Printf("Error exporting plan %s: %v", plan.ID, err)
		b.send(chatID, "אירעה שגיאה בייצוא.")
		return
	}
	defer os.Remove(path)

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(path))
	doc.Caption = fmt.Sprintf("לוח הלימוד של \"%s\": %d ימי לימוד, %d ימי חזרה.",
		plan.PlanName, result.LearningDays, result.ReviewDays)
	if _, err := b.api.Send(doc); err != nil {
		log.Printf("Error sending document to %d: %v", chatID, err)
		b.send(chatID, "אירעה שגיאה בשליחת הקובץ.")
	}
}

func (b *Bot) handleReset(chatID int64, args []string) {
	plan := b.activePlan(chatID, args)
	if plan == nil {
		return
	}
	schedule.ResetPlan(plan)
	if err := b.planRepo.Update(plan); err != nil {
		log.Printf("Error updating plan %s: %v", plan.ID, err)
		b.send(chatID, "אירעה שגיאה בשמירה.")
		return
	}
	b.send(chatID, fmt.Sprintf("ההתקדמות בתוכנית \"%s\" אופסה.", plan.PlanName))
}

func (b *Bot) handleDelete(chatID int64, args []string) {
	plans, err := b.planRepo.GetByUser(chatID)
	if err != nil || len(plans) == 0 {
		b.send(chatID, "אין לך תוכניות למחוק.")
		return
	}

	var buttons [][]MenuButton
	for i := range plans {
		buttons = append(buttons, []MenuButton{{
			Text:         "🗑 " + plans[i].PlanName,
			CallbackData: "del|" + plans[i].ID,
		}})
	}
	b.sendWithKeyboard(chatID, "איזו תוכנית למחוק? (המחיקה מיידית)", buttons)
}

func (b *Bot) handleDeleteConfirm(chatID int64, parts []string) {
	if len(parts) < 2 {
		return
	}
	plan, err := b.planRepo.GetByID(parts[1])
	if err != nil || plan == nil || plan.UserID != chatID {
		return
	}
	if err := b.planRepo.Delete(plan.ID); err != nil {
		log.Printf("Error deleting plan %s: %v", plan.ID, err)
		b.send(chatID, "אירעה שגיאה במחיקה.")
		return
	}
	b.send(chatID, fmt.Sprintf("התוכנית \"%s\" נמחקה.", plan.PlanName))
}

func (b *Bot) handleNotify(chatID int64, args []string) {
	if len(args) == 0 {
		user, err := b.userRepo.GetByID(chatID)
		if err != nil || user == nil {
			b.send(chatID, "שלח /start קודם.")
			return
		}
		if user.NotificationEnabled {
			b.send(chatID, fmt.Sprintf("תזכורת יומית פעילה בשעה %d:00.\n/notify <שעה> לשינוי, /notify off לכיבוי.", user.NotificationHour))
		} else {
			b.send(chatID, "תזכורת יומית כבויה. /notify <שעה> להפעלה.")
		}
		return
	}

	if args[0] == "off" {
		if err := b.userRepo.UpdateNotificationSettings(chatID, false, 0); err != nil {
			log.Printf("Error updating notifications for %d: %v", chatID, err)
			return
		}
		b.send(chatID, "התזכורת היומית כובתה.")
		return
	}

	hour, err := strconv.Atoi(args[0])
	if err != nil || hour < 0 || hour > 23 {
		b.send(chatID, "נא להזין שעה בין 0 ל-23, או off.")
		return
	}
	if err := b.userRepo.UpdateNotificationSettings(chatID, true, hour); err != nil {
		log.Printf("Error updating notifications for %d: %v", chatID, err)
		return
	}
	b.send(chatID, fmt.Sprintf("תזכורת יומית נקבעה לשעה %d:00.", hour))
}

func (b *Bot) handleUsers(message *tgbotapi.Message) {
	if !b.isAdmin(message.From.ID) {
		b.send(message.Chat.ID, "פקודה זו זמינה למנהלים בלבד.")
		return
	}
	users, err := b.userRepo.GetAll()
	if err != nil {
		log.Printf("Error loading users: %v", err)
		return
	}
	b.send(message.Chat.ID, fmt.Sprintf("רשומים %d משתמשים.", len(users)))
}
