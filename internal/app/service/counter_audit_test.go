package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
)

func TestCounterAudit_RepairsEveryDrift(t *testing.T) {
	tasks := new(taskRepositoryMock)
	drifts := []domain.CounterDrift{
		{TaskID: "t1", Stored: 3, Actual: 2},
		{TaskID: "t2", Stored: 0, Actual: 1},
	}
	tasks.On("ListCommentsCountDrift", mock.Anything).Return(drifts, nil).Once()
	tasks.On("RecountComments", mock.Anything, "t1").Return(errors.New("deadlock")).Once()
	tasks.On("RecountComments", mock.Anything, "t2").Return(nil).Once()

	got, err := NewCounterAudit(tasks).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, drifts, got)
	tasks.AssertExpectations(t)
}

func TestCounterAudit_ListFailure(t *testing.T) {
	tasks := new(taskRepositoryMock)
	tasks.On("ListCommentsCountDrift", mock.Anything).Return(nil, errors.New("db down")).Once()

	_, err := NewCounterAudit(tasks).Run(context.Background())

	require.Error(t, err)
	tasks.AssertNotCalled(t, "RecountComments", mock.Anything, mock.Anything)
}
