package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
)

type auditorStub struct {
	runs int
	err  error
}

func (a *auditorStub) Run(context.Context) ([]domain.CounterDrift, error) {
	a.runs++
	return nil, a.err
}

func TestStart_RejectsInvalidSchedule(t *testing.T) {
	s := NewScheduler(&auditorStub{})
	require.Error(t, s.Start("every now and then"))
}

func TestStart_AcceptsDescriptors(t *testing.T) {
	s := NewScheduler(&auditorStub{})
	require.NoError(t, s.Start("@hourly"))
	s.Stop()
}

func TestRunCounterAudit_SurvivesErrors(t *testing.T) {
	auditor := &auditorStub{err: errors.New("db down")}
	s := NewScheduler(auditor)

	s.runCounterAudit()
	s.runCounterAudit()

	assert.Equal(t, 2, auditor.runs)
}
