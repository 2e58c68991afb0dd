package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
	"github.com/Abdullah-yafai/project-managment/internal/core/ports"
)

type ContentService struct {
	generator ports.ContentGenerator
	cache     ports.ContentCache
}

// NewContentService builds the service; cache may be nil.
func NewContentService(generator ports.ContentGenerator, cache ports.ContentCache) *ContentService {
	return &ContentService{generator: generator, cache: cache}
}

// Generate never fails because of the upstream model: when it is unreachable
// or answers with too little text a mock plan is returned instead.
func (s *ContentService) Generate(ctx context.Context, topic string) (domain.ContentPlan, error) {
	topic, err := domain.NormalizeTopic(topic)
	if err != nil {
		return domain.ContentPlan{}, err
	}

	if s.cache != nil {
		plan, ok, err := s.cache.Get(ctx, topic)
		if err != nil {
			zap.L().Warn("content cache read failed", zap.String("topic", topic), zap.Error(err))
		} else if ok {
			return plan, nil
		}
	}

	plan, err := s.generator.Generate(ctx, topic)
	if err != nil {
		zap.L().Warn("content generation unavailable, returning mock plan", zap.String("topic", topic), zap.Error(err))
		return domain.MockContentPlan(topic), nil
	}

	if !plan.Structured() {
		if len(strings.TrimSpace(plan.Raw)) < domain.MinRawContentLength {
			return domain.MockContentPlan(topic), nil
		}
		return plan, nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, topic, plan); err != nil {
			zap.L().Warn("content cache write failed", zap.String("topic", topic), zap.Error(err))
		}
	}
	return plan, nil
}

var _ ports.ContentService = (*ContentService)(nil)
