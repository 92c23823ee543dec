package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/rendite-app/rendite/internal/config"
	"github.com/rendite-app/rendite/internal/service/analysis"
)

// Scheduler manages scheduled maintenance tasks.
type Scheduler struct {
	cron        *cron.Cron
	analysisSvc *analysis.Service
	cfg         config.MaintenanceConfig
	logger      *zap.Logger
}

// NewScheduler creates a new scheduler instance running in the configured
// timezone. An invalid timezone falls back to the host's local time.
func NewScheduler(cfg config.MaintenanceConfig, analysisSvc *analysis.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := []cron.Option{}
	if location, err := time.LoadLocation(cfg.Timezone); err == nil {
		opts = append(opts, cron.WithLocation(location))
	} else {
		logger.Warn("invalid timezone, scheduler uses local time", zap.String("timezone", cfg.Timezone), zap.Error(err))
	}

	return &Scheduler{
		cron:        cron.New(opts...),
		analysisSvc: analysisSvc,
		cfg:         cfg,
		logger:      logger,
	}
}

// Start registers the nightly re-derivation sweep and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	_, err := s.cron.AddFunc(s.cfg.CronSchedule, s.rederiveAnalyses)
	if err != nil {
		s.logger.Error("failed to schedule re-derivation sweep", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

// rederiveAnalyses rewrites any stored analysis whose derived values no
// longer match its baseline, so a model change never leaves stale scores.
func (s *Scheduler) rederiveAnalyses() {
	s.logger.Info("running re-derivation sweep")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	updated, err := s.analysisSvc.RederiveAll(ctx)
	if err != nil {
		s.logger.Error("re-derivation sweep failed", zap.Error(err))
		return
	}

	s.logger.Info("re-derivation sweep finished", zap.Int("updated", updated))
}
