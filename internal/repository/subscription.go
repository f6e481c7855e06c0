// internal/repository/subscription.go
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

type SubscriptionRepositoryIface interface {
	Create(ctx context.Context, sub *model.OrganizationSubscription) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.OrganizationSubscription, error)
	FindByOrganization(ctx context.Context, orgID uuid.UUID, orgType model.OrganizationType) ([]*model.OrganizationSubscription, error)
	FindByOrganizationAndStatuses(ctx context.Context, orgID uuid.UUID, orgType model.OrganizationType, statuses []model.SubscriptionStatus) ([]*model.OrganizationSubscription, error)
	Update(ctx context.Context, sub *model.OrganizationSubscription) error
	ResizeSeats(ctx context.Context, id uuid.UUID, newTotal int, price model.OrganizationSubscription) error
}

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *model.OrganizationSubscription) error {
	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		return fmt.Errorf("creating subscription: %w", err)
	}
	return nil
}

func (r *SubscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.OrganizationSubscription, error) {
	var sub model.OrganizationSubscription
	if err := r.db.WithContext(ctx).Preload("SubscriptionPlan").First(&sub, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("finding subscription: %w", err)
	}
	return &sub, nil
}

func (r *SubscriptionRepository) FindByOrganization(ctx context.Context, orgID uuid.UUID, orgType model.OrganizationType) ([]*model.OrganizationSubscription, error) {
	var subs []*model.OrganizationSubscription
	q := r.db.WithContext(ctx).Preload("SubscriptionPlan").Where("organization_id = ?", orgID)
	if orgType != "" {
		q = q.Where("organization_type = ?", orgType)
	}
	if err := q.Order("created_at DESC").Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("finding organization subscriptions: %w", err)
	}
	return subs, nil
}

func (r *SubscriptionRepository) FindByOrganizationAndStatuses(ctx context.Context, orgID uuid.UUID, orgType model.OrganizationType, statuses []model.SubscriptionStatus) ([]*model.OrganizationSubscription, error) {
	var subs []*model.OrganizationSubscription
	q := r.db.WithContext(ctx).Preload("SubscriptionPlan").
		Where("organization_id = ? AND status IN ?", orgID, statuses)
	if orgType != "" {
		q = q.Where("organization_type = ?", orgType)
	}
	if err := q.Order("created_at DESC").Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("finding subscriptions by status: %w", err)
	}
	return subs, nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, sub *model.OrganizationSubscription) error {
	if err := r.db.WithContext(ctx).Save(sub).Error; err != nil {
		return fmt.Errorf("updating subscription: %w", err)
	}
	return nil
}

// ResizeSeats sets a new seat total and repriced amounts in one conditional
// statement: the guard on assigned_seats makes a concurrent assignment that
// would overrun the new total reject the resize instead of corrupting the
// counters.
func (r *SubscriptionRepository) ResizeSeats(ctx context.Context, id uuid.UUID, newTotal int, price model.OrganizationSubscription) error {
	result := r.db.WithContext(ctx).Model(&model.OrganizationSubscription{}).
		Where("id = ? AND assigned_seats <= ?", id, newTotal).
		Updates(map[string]interface{}{
			"total_seats":         newTotal,
			"available_seats":     gorm.Expr("? - assigned_seats", newTotal),
			"price_per_seat":      price.PricePerSeat,
			"total_amount":        price.TotalAmount,
			"discount_percentage": price.DiscountPercentage,
			"final_amount":        price.FinalAmount,
		})
	if result.Error != nil {
		return fmt.Errorf("resizing subscription seats: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Either the row is gone or assigned seats exceed the new total.
		if _, err := r.FindByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrCannotReduceSeats
	}
	return nil
}
