// internal/repository/plan.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/campushq/licensing/internal/domain"
	"github.com/campushq/licensing/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriptionPlanRepositoryIface is the read-only plan catalog collaborator.
type SubscriptionPlanRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.SubscriptionPlan, error)
	FindAllActive(ctx context.Context) ([]*model.SubscriptionPlan, error)
}

type SubscriptionPlanRepository struct {
	db *gorm.DB
}

func NewSubscriptionPlanRepository(db *gorm.DB) *SubscriptionPlanRepository {
	return &SubscriptionPlanRepository{db: db}
}

func (r *SubscriptionPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.SubscriptionPlan, error) {
	var plan model.SubscriptionPlan
	if err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPlanNotFound
		}
		return nil, fmt.Errorf("finding subscription plan: %w", err)
	}
	return &plan, nil
}

func (r *SubscriptionPlanRepository) FindAllActive(ctx context.Context) ([]*model.SubscriptionPlan, error) {
	var plans []*model.SubscriptionPlan
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("finding active plans: %w", err)
	}
	return plans, nil
}
