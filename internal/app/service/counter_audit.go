package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
	"github.com/Abdullah-yafai/project-managment/internal/core/ports"
)

// CounterAudit compares every task's stored comments count with its live
// comments and rewrites the ones that drifted.
type CounterAudit struct {
	tasks ports.TaskRepository
}

func NewCounterAudit(tasks ports.TaskRepository) *CounterAudit {
	return &CounterAudit{tasks: tasks}
}

// Run returns the drift it found. Repair failures are logged and do not stop
// the remaining tasks from being repaired.
func (a *CounterAudit) Run(ctx context.Context) ([]domain.CounterDrift, error) {
	drifts, err := a.tasks.ListCommentsCountDrift(ctx)
	if err != nil {
		return nil, err
	}

	for _, drift := range drifts {
		zap.L().Warn("comments count drift",
			zap.String("task_id", drift.TaskID),
			zap.Int("stored", drift.Stored),
			zap.Int("actual", drift.Actual),
		)
		if err := a.tasks.RecountComments(ctx, drift.TaskID); err != nil {
			zap.L().Error("failed to repair comments count", zap.String("task_id", drift.TaskID), zap.Error(err))
		}
	}
	return drifts, nil
}
