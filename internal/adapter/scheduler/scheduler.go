package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
)

const auditTimeout = 5 * time.Minute

// CounterAuditor is satisfied by service.CounterAudit.
type CounterAuditor interface {
	Run(ctx context.Context) ([]domain.CounterDrift, error)
}

// Scheduler runs background maintenance jobs.
type Scheduler struct {
	cron    *cron.Cron
	auditor CounterAuditor
}

func NewScheduler(auditor CounterAuditor) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		auditor: auditor,
	}
}

// Start registers the jobs and starts the cron loop. An invalid spec is
// returned before anything is scheduled.
func (s *Scheduler) Start(auditSpec string) error {
	if _, err := s.cron.AddFunc(auditSpec, s.runCounterAudit); err != nil {
		return fmt.Errorf("invalid counter audit schedule %q: %w", auditSpec, err)
	}

	s.cron.Start()
	zap.L().Info("scheduler started", zap.String("counter_audit", auditSpec))
	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	zap.L().Info("scheduler stopped")
}

func (s *Scheduler) runCounterAudit() {
	ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
	defer cancel()

	drifts, err := s.auditor.Run(ctx)
	if err != nil {
		zap.L().Error("counter audit failed", zap.Error(err))
		return
	}
	zap.L().Info("counter audit finished", zap.Int("repaired", len(drifts)))
}
