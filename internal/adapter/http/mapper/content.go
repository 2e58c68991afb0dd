package mapper

import (
	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/dto"
	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
)

func ToContentPlanItem(plan domain.ContentPlan) dto.ContentPlanItem {
	return dto.ContentPlanItem{
		Ideas:    plan.Ideas,
		Captions: plan.Captions,
		Hashtags: plan.Hashtags,
		Outline:  plan.Outline,
		Raw:      plan.Raw,
		Mock:     plan.Mock,
	}
}
