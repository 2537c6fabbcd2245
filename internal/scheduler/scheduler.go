// Package scheduler runs the periodic budget warning job.
//
// Each run evaluates the budget limits of all users, logs every warning,
// updates the budget_warnings_active gauge and deletes expired sessions.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/auth"
	"github.com/pocket-ledger/backend/internal/budget"
	"github.com/pocket-ledger/backend/internal/metrics"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/types"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Scheduler runs the warning job on a cron schedule.
type Scheduler struct {
	spec      string
	evaluator budget.Evaluator
	auth      *auth.Service
	metrics   *metrics.Metrics
}

// Report is the result of one run.
type Report struct {
	Users          int
	Limits         int
	Warnings       map[types.Period]int
	SessionsPurged int64
	EvaluatedAt    time.Time
}

// New returns a scheduler for the cron spec. Standard five field
// expressions and descriptors like @hourly are supported.
func New(spec string, e budget.Evaluator, a *auth.Service, m *metrics.Metrics) *Scheduler {
	return &Scheduler{
		spec:      spec,
		evaluator: e,
		auth:      a,
		metrics:   m,
	}
}

// Run starts the schedule and blocks until ctx is done. Running jobs
// are finished before Run returns.
func (s *Scheduler) Run(ctx context.Context) error {
	logger := cronLogger{}
	c := cron.New(cron.WithChain(
		cron.Recover(logger),
		cron.SkipIfStillRunning(logger),
	), cron.WithLogger(logger))

	_, err := c.AddFunc(s.spec, s.run)
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", s.spec, err)
	}

	c.Start()
	log.Info().Str("schedule", s.spec).Msg("scheduler started")

	<-ctx.Done()

	<-c.Stop().Done()
	log.Info().Msg("scheduler stopped")

	return nil
}

// run is the cron job. Errors are logged, the next run is not affected.
func (s *Scheduler) run() {
	_, err := s.RunOnce(models.DB)
	if err != nil {
		log.Error().Str("job", "budget-warnings").Err(err).Msg("budget warning job failed")
	}
}

// RunOnce evaluates the budget limits of all users.
func (s *Scheduler) RunOnce(db *gorm.DB) (Report, error) {
	now := s.evaluator.Now()
	report := Report{
		Warnings:    make(map[types.Period]int, len(types.Periods)),
		EvaluatedAt: now,
	}

	var limits []models.BudgetLimit
	err := db.Order("user_id ASC, created_at ASC").Find(&limits).Error
	if err != nil {
		return report, fmt.Errorf("loading budget limits: %w", err)
	}
	report.Limits = len(limits)

	var order []uuid.UUID
	byUser := make(map[uuid.UUID][]models.BudgetLimit)
	for _, l := range limits {
		if _, ok := byUser[l.UserID]; !ok {
			order = append(order, l.UserID)
		}
		byUser[l.UserID] = append(byUser[l.UserID], l)
	}
	report.Users = len(order)

	for _, userID := range order {
		warnings, err := s.evaluateUser(db, userID, byUser[userID], now)
		if err != nil {
			return report, err
		}

		for _, w := range warnings {
			report.Warnings[w.Period]++

			log.Info().
				Str("user-id", userID.String()).
				Str("category", w.Category).
				Str("period", string(w.Period)).
				Str("current", w.Current.String()).
				Str("limit", w.Limit.String()).
				Msg("budget limit reached")
		}
	}

	if s.metrics != nil {
		s.metrics.SetWarnings(report.Warnings)
	}

	if s.auth != nil {
		report.SessionsPurged, err = s.auth.PurgeExpired(db)
		if err != nil {
			return report, fmt.Errorf("purging expired sessions: %w", err)
		}
	}

	log.Debug().
		Int("users", report.Users).
		Int("limits", report.Limits).
		Int64("sessions-purged", report.SessionsPurged).
		Msg("budget warning job finished")

	return report, nil
}

// evaluateUser evaluates the limits of one user. Only expenses that
// can fall into one of the windows are loaded.
func (s *Scheduler) evaluateUser(db *gorm.DB, userID uuid.UUID, limits []models.BudgetLimit, now time.Time) ([]budget.Warning, error) {
	snapshots := make([]budget.Limit, 0, len(limits))
	categories := make([]string, 0, len(limits))
	earliest := now

	for _, l := range limits {
		snapshots = append(snapshots, l.Snapshot())
		categories = append(categories, l.Category)

		if start := budget.WindowStart(l.Period, now); start.Before(earliest) {
			earliest = start
		}
	}

	var expenses []models.Expense
	err := db.
		Where("user_id = ? AND category IN ? AND date >= ?", userID, categories, earliest.UTC()).
		Find(&expenses).Error
	if err != nil {
		return nil, fmt.Errorf("loading expenses of user %s: %w", userID, err)
	}

	inputs := make([]budget.Expense, 0, len(expenses))
	for _, e := range expenses {
		inputs = append(inputs, e.Snapshot())
	}

	return budget.Evaluate(inputs, snapshots, now), nil
}

// cronLogger writes the log output of cron with zerolog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	log.Debug().Str("component", "cron").Fields(keysAndValues).Msg(msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	log.Error().Str("component", "cron").Err(err).Fields(keysAndValues).Msg(msg)
}
