package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/limudbot/pkg/models"
)

// PlanRepository handles database operations for learning plans
type PlanRepository struct{}

// NewPlanRepository creates a new repository instance
func NewPlanRepository() *PlanRepository {
	return &PlanRepository{}
}

const planColumns = `id, user_id, created_at, masechet_ids, plan_name, mode, unit, frequency,
	target_date, amount_per_day, calculated_amount_per_day, total_units, estimated_end_date,
	distribution, current_position, completed_dates, last_learning_date, is_completed,
	skipped_chapters, pre_learned_chapters`

// rebind converts ? placeholders for the active driver
func rebind(query string) string {
	return DB.Rebind(query)
}

// GetByID returns a plan by its id, or nil when it does not exist
func (r *PlanRepository) GetByID(planID string) (*models.LearningPlan, error) {
	row := DB.QueryRow(rebind("SELECT "+planColumns+" FROM learning_plans WHERE id = ?"), planID)
	plan, err := scanPlan(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %v", err)
	}
	return plan, nil
}

// GetByUser returns all plans of one user, newest first
func (r *PlanRepository) GetByUser(userID int64) ([]models.LearningPlan, error) {
	rows, err := DB.Query(rebind("SELECT "+planColumns+" FROM learning_plans WHERE user_id = ? ORDER BY created_at DESC"), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plans: %v", err)
	}
	defer rows.Close()
	return collectPlans(rows)
}

// GetActiveByUser returns the user's plans that are not completed
func (r *PlanRepository) GetActiveByUser(userID int64) ([]models.LearningPlan, error) {
	rows, err := DB.Query(rebind("SELECT "+planColumns+" FROM learning_plans WHERE user_id = ? AND is_completed = false ORDER BY created_at DESC"), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active plans: %v", err)
	}
	defer rows.Close()
	return collectPlans(rows)
}

// Create inserts a new plan
func (r *PlanRepository) Create(plan *models.LearningPlan) error {
	enc, err := encodePlan(plan)
	if err != nil {
		return err
	}
	query := rebind(`
		INSERT INTO learning_plans (
			id, user_id, created_at, masechet_ids, plan_name, mode, unit, frequency,
			target_date, amount_per_day, calculated_amount_per_day, total_units,
			estimated_end_date, distribution, current_position, completed_dates,
			last_learning_date, is_completed, skipped_chapters, pre_learned_chapters
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err = DB.Exec(query,
		plan.ID, plan.UserID, plan.CreatedAt.UTC().Format(time.RFC3339),
		enc.masechetIDs, plan.PlanName, string(plan.Mode), string(plan.Unit), enc.frequency,
		plan.TargetDate, plan.AmountPerDay, plan.CalculatedAmountPerDay, plan.TotalUnits,
		plan.EstimatedEndDate, enc.distribution, plan.CurrentPosition, enc.completedDates,
		plan.LastLearningDate, plan.IsCompleted, enc.skipped, enc.preLearned,
	)
	if err != nil {
		return fmt.Errorf("failed to create plan: %v", err)
	}
	return nil
}

// Update rewrites a plan row as a whole-object replacement
func (r *PlanRepository) Update(plan *models.LearningPlan) error {
	enc, err := encodePlan(plan)
	if err != nil {
		return err
	}
	query := rebind(`
		UPDATE learning_plans SET
			masechet_ids = ?, plan_name = ?, mode = ?, unit = ?, frequency = ?,
			target_date = ?, amount_per_day = ?, calculated_amount_per_day = ?,
			total_units = ?, estimated_end_date = ?, distribution = ?,
			current_position = ?, completed_dates = ?, last_learning_date = ?,
			is_completed = ?, skipped_chapters = ?, pre_learned_chapters = ?
		WHERE id = ?
	`)
	_, err = DB.Exec(query,
		enc.masechetIDs, plan.PlanName, string(plan.Mode), string(plan.Unit), enc.frequency,
		plan.TargetDate, plan.AmountPerDay, plan.CalculatedAmountPerDay,
		plan.TotalUnits, plan.EstimatedEndDate, enc.distribution,
		plan.CurrentPosition, enc.completedDates, plan.LastLearningDate,
		plan.IsCompleted, enc.skipped, enc.preLearned,
		plan.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update plan: %v", err)
	}
	return nil
}

// Delete removes a plan
func (r *PlanRepository) Delete(planID string) error {
	_, err := DB.Exec(rebind("DELETE FROM learning_plans WHERE id = ?"), planID)
	if err != nil {
		return fmt.Errorf("failed to delete plan: %v", err)
	}
	return nil
}

type encodedPlan struct {
	masechetIDs    string
	frequency      string
	distribution   sql.NullString
	completedDates string
	skipped        string
	preLearned     string
}

func encodePlan(plan *models.LearningPlan) (*encodedPlan, error) {
	enc := &encodedPlan{}

	ids, err := json.Marshal(plan.MasechetIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal masechet ids: %v", err)
	}
	enc.masechetIDs = string(ids)

	freq, err := json.Marshal(plan.Frequency)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal frequency: %v", err)
	}
	enc.frequency = string(freq)

	if plan.Distribution != nil {
		dist, err := json.Marshal(plan.Distribution)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal distribution: %v", err)
		}
		enc.distribution = sql.NullString{String: string(dist), Valid: true}
	}

	enc.completedDates = marshalOrEmpty(plan.CompletedDates)
	enc.skipped = marshalRefs(plan.SkippedChapters)
	enc.preLearned = marshalRefs(plan.PreLearnedChapters)
	return enc, nil
}

func marshalOrEmpty(dates []string) string {
	if dates == nil {
		dates = []string{}
	}
	b, _ := json.Marshal(dates)
	return string(b)
}

func marshalRefs(refs []models.ChapterRef) string {
	if refs == nil {
		refs = []models.ChapterRef{}
	}
	b, _ := json.Marshal(refs)
	return string(b)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPlan(row rowScanner) (*models.LearningPlan, error) {
	var plan models.LearningPlan
	var createdAt string
	var masechetIDs, frequency string
	var targetDate, estimatedEnd, lastLearning, distribution sql.NullString
	var completedDates, skipped, preLearned sql.NullString

	err := row.Scan(
		&plan.ID, &plan.UserID, &createdAt, &masechetIDs, &plan.PlanName,
		&plan.Mode, &plan.Unit, &frequency,
		&targetDate, &plan.AmountPerDay, &plan.CalculatedAmountPerDay, &plan.TotalUnits,
		&estimatedEnd, &distribution, &plan.CurrentPosition, &completedDates,
		&lastLearning, &plan.IsCompleted, &skipped, &preLearned,
	)
	if err != nil {
		return nil, err
	}

	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		plan.CreatedAt = t
	} else if t, err := time.Parse("2006-01-02 15:04:05", createdAt); err == nil {
		plan.CreatedAt = t
	}

	if err := json.Unmarshal([]byte(masechetIDs), &plan.MasechetIDs); err != nil {
		return nil, fmt.Errorf("failed to parse masechet ids: %v", err)
	}
	if err := json.Unmarshal([]byte(frequency), &plan.Frequency); err != nil {
		return nil, fmt.Errorf("failed to parse frequency: %v", err)
	}
	plan.TargetDate = targetDate.String
	plan.EstimatedEndDate = estimatedEnd.String
	plan.LastLearningDate = lastLearning.String

	if distribution.Valid && distribution.String != "" {
		var dist models.Distribution
		if err := json.Unmarshal([]byte(distribution.String), &dist); err != nil {
			return nil, fmt.Errorf("failed to parse distribution: %v", err)
		}
		plan.Distribution = &dist
	}

	// Older rows predate these columns; default to empty rather than nil so
	// downstream logic never trips on missing lists
	plan.CompletedDates = unmarshalStrings(completedDates)
	plan.SkippedChapters = unmarshalRefs(skipped)
	plan.PreLearnedChapters = unmarshalRefs(preLearned)
	return &plan, nil
}

func unmarshalStrings(col sql.NullString) []string {
	out := []string{}
	if col.Valid && col.String != "" {
		_ = json.Unmarshal([]byte(col.String), &out)
	}
	return out
}

func unmarshalRefs(col sql.NullString) []models.ChapterRef {
	out := []models.ChapterRef{}
	if col.Valid && col.String != "" {
		_ = json.Unmarshal([]byte(col.String), &out)
	}
	return out
}

func collectPlans(rows *sql.Rows) ([]models.LearningPlan, error) {
	var plans []models.LearningPlan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plan: %v", err)
		}
		plans = append(plans, *plan)
	}
	return plans, rows.Err()
}
