// internal/repository/entitlement.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campushq/licensing/internal/domain"
	"github.com/campushq/licensing/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EntitlementRepositoryIface interface {
	Upsert(ctx context.Context, entitlement *model.Entitlement) error
	FindActiveByUserAndFeature(ctx context.Context, userID uuid.UUID, featureKey string, orgGranted bool) (*model.Entitlement, error)
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*model.Entitlement, error)
	FindActiveBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]*model.Entitlement, error)
	RevokeByUserAndSubscription(ctx context.Context, userID, subscriptionID uuid.UUID) (int64, error)
	RevokeByUsersAndSubscription(ctx context.Context, userIDs []uuid.UUID, subscriptionID uuid.UUID) (int64, error)
}

type EntitlementRepository struct {
	db *gorm.DB
}

func NewEntitlementRepository(db *gorm.DB) *EntitlementRepository {
	return &EntitlementRepository{db: db}
}

// Upsert creates the entitlement, or re-activates a prior row for the same
// (user, feature, subscription) grant so repeated grants never stack
// duplicates. Check and write run in one transaction.
func (r *EntitlementRepository) Upsert(ctx context.Context, entitlement *model.Entitlement) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Entitlement
		q := tx.Where("user_id = ? AND feature_key = ? AND granted_by_organization = ?",
			entitlement.UserID, entitlement.FeatureKey, entitlement.GrantedByOrganization)
		if entitlement.OrganizationSubscriptionID != nil {
			q = q.Where("organization_subscription_id = ?", *entitlement.OrganizationSubscriptionID)
		} else {
			q = q.Where("organization_subscription_id IS NULL")
		}

		err := q.First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := tx.Create(entitlement).Error; err != nil {
					return fmt.Errorf("creating entitlement: %w", err)
				}
				return nil
			}
			return fmt.Errorf("checking existing entitlement: %w", err)
		}

		existing.IsActive = true
		existing.GrantedByID = entitlement.GrantedByID
		existing.GrantedAt = entitlement.GrantedAt
		existing.ExpiresAt = entitlement.ExpiresAt
		existing.RevokedAt = nil
		if err := tx.Save(&existing).Error; err != nil {
			return fmt.Errorf("re-activating entitlement: %w", err)
		}
		*entitlement = existing
		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *EntitlementRepository) FindActiveByUserAndFeature(ctx context.Context, userID uuid.UUID, featureKey string, orgGranted bool) (*model.Entitlement, error) {
	var entitlement model.Entitlement
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND feature_key = ? AND granted_by_organization = ? AND is_active = ?",
			userID, featureKey, orgGranted, true).
		Where("expires_at IS NULL OR expires_at > ?", time.Now().UTC()).
		First(&entitlement).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("finding entitlement: %w", err)
	}
	return &entitlement, nil
}

func (r *EntitlementRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*model.Entitlement, error) {
	var entitlements []*model.Entitlement
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("feature_key").
		Find(&entitlements).Error; err != nil {
		return nil, fmt.Errorf("finding user entitlements: %w", err)
	}
	return entitlements, nil
}

func (r *EntitlementRepository) FindActiveBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]*model.Entitlement, error) {
	var entitlements []*model.Entitlement
	if err := r.db.WithContext(ctx).
		Where("organization_subscription_id = ? AND granted_by_organization = ? AND is_active = ?",
			subscriptionID, true, true).
		Find(&entitlements).Error; err != nil {
		return nil, fmt.Errorf("finding subscription entitlements: %w", err)
	}
	return entitlements, nil
}

// RevokeByUserAndSubscription deactivates every organization-sourced grant
// the user holds under the subscription. Personally purchased entitlements
// for the same feature keys are untouched.
func (r *EntitlementRepository) RevokeByUserAndSubscription(ctx context.Context, userID, subscriptionID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Entitlement{}).
		Where("user_id = ? AND organization_subscription_id = ? AND granted_by_organization = ? AND is_active = ?",
			userID, subscriptionID, true, true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"revoked_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("revoking entitlements: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *EntitlementRepository) RevokeByUsersAndSubscription(ctx context.Context, userIDs []uuid.UUID, subscriptionID uuid.UUID) (int64, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Model(&model.Entitlement{}).
		Where("user_id IN ? AND organization_subscription_id = ? AND granted_by_organization = ? AND is_active = ?",
			userIDs, subscriptionID, true, true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"revoked_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("bulk revoking entitlements: %w", result.Error)
	}
	return result.RowsAffected, nil
}
