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

func TestContentGenerate_CacheHit(t *testing.T) {
	generator := new(contentGeneratorMock)
	cache := new(contentCacheMock)
	cached := domain.ContentPlan{Ideas: []string{"cached"}}
	cache.On("Get", mock.Anything, "go tips").Return(cached, true, nil).Once()

	plan, err := NewContentService(generator, cache).Generate(context.Background(), " go tips ")

	require.NoError(t, err)
	assert.Equal(t, cached, plan)
	generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestContentGenerate_ParsedPlanIsCached(t *testing.T) {
	generator := new(contentGeneratorMock)
	cache := new(contentCacheMock)
	parsed := domain.ContentPlan{Ideas: []string{"a"}, Outline: "1. intro"}
	cache.On("Get", mock.Anything, "go tips").Return(domain.ContentPlan{}, false, nil).Once()
	generator.On("Generate", mock.Anything, "go tips").Return(parsed, nil).Once()
	cache.On("Set", mock.Anything, "go tips", parsed).Return(nil).Once()

	plan, err := NewContentService(generator, cache).Generate(context.Background(), "go tips")

	require.NoError(t, err)
	assert.Equal(t, parsed, plan)
	cache.AssertExpectations(t)
}

func TestContentGenerate_UpstreamFailureReturnsMock(t *testing.T) {
	generator := new(contentGeneratorMock)
	generator.On("Generate", mock.Anything, "go tips").Return(domain.ContentPlan{}, errors.New("circuit breaker is open")).Once()

	plan, err := NewContentService(generator, nil).Generate(context.Background(), "go tips")

	require.NoError(t, err)
	assert.True(t, plan.Mock)
	assert.Len(t, plan.Ideas, 5)
	assert.Contains(t, plan.Outline, "Intro to go tips")
}

func TestContentGenerate_ShortRawReturnsMock(t *testing.T) {
	generator := new(contentGeneratorMock)
	cache := new(contentCacheMock)
	cache.On("Get", mock.Anything, "go tips").Return(domain.ContentPlan{}, false, nil).Once()
	generator.On("Generate", mock.Anything, "go tips").Return(domain.ContentPlan{Raw: "too short"}, nil).Once()

	plan, err := NewContentService(generator, cache).Generate(context.Background(), "go tips")

	require.NoError(t, err)
	assert.True(t, plan.Mock)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestContentGenerate_LongRawIsReturnedUncached(t *testing.T) {
	generator := new(contentGeneratorMock)
	cache := new(contentCacheMock)
	raw := domain.ContentPlan{Raw: "Here are a few thoughts about go tips for your feed."}
	cache.On("Get", mock.Anything, "go tips").Return(domain.ContentPlan{}, false, nil).Once()
	generator.On("Generate", mock.Anything, "go tips").Return(raw, nil).Once()

	plan, err := NewContentService(generator, cache).Generate(context.Background(), "go tips")

	require.NoError(t, err)
	assert.Equal(t, raw, plan)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestContentGenerate_EmptyTopic(t *testing.T) {
	_, err := NewContentService(new(contentGeneratorMock), nil).Generate(context.Background(), "   ")
	require.ErrorIs(t, err, domain.ErrValidation)
}
