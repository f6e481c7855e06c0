// internal/repository/license_pool.go
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

type LicensePoolRepositoryIface interface {
	Create(ctx context.Context, pool *model.LicensePool) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.LicensePool, error)
	FindByOrganization(ctx context.Context, orgID uuid.UUID, orgType model.OrganizationType) ([]*model.LicensePool, error)
	FindActiveByOrgAndMemberType(ctx context.Context, orgID uuid.UUID, memberType model.MemberType) ([]*model.LicensePool, error)
	UpdateAllocation(ctx context.Context, poolID uuid.UUID, newAllocated int) (*model.LicensePool, error)
	UpdateAutoAssignment(ctx context.Context, poolID uuid.UUID, criteria model.JSONMap, enabled bool) (*model.LicensePool, error)
}

type LicensePoolRepository struct {
	db *gorm.DB
}

func NewLicensePoolRepository(db *gorm.DB) *LicensePoolRepository {
	return &LicensePoolRepository{db: db}
}

func (r *LicensePoolRepository) Create(ctx context.Context, pool *model.LicensePool) error {
	if err := r.db.WithContext(ctx).Create(pool).Error; err != nil {
		return fmt.Errorf("creating license pool: %w", err)
	}
	return nil
}

func (r *LicensePoolRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.LicensePool, error) {
	var pool model.LicensePool
	if err := r.db.WithContext(ctx).First(&pool, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPoolNotFound
		}
		return nil, fmt.Errorf("finding license pool: %w", err)
	}
	return &pool, nil
}

func (r *LicensePoolRepository) FindByOrganization(ctx context.Context, orgID uuid.UUID, orgType model.OrganizationType) ([]*model.LicensePool, error) {
	var pools []*model.LicensePool
	q := r.db.WithContext(ctx).Where("organization_id = ?", orgID)
	if orgType != "" {
		q = q.Where("organization_type = ?", orgType)
	}
	if err := q.Order("created_at DESC").Find(&pools).Error; err != nil {
		return nil, fmt.Errorf("finding license pools: %w", err)
	}
	return pools, nil
}

func (r *LicensePoolRepository) FindActiveByOrgAndMemberType(ctx context.Context, orgID uuid.UUID, memberType model.MemberType) ([]*model.LicensePool, error) {
	var pools []*model.LicensePool
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND member_type = ? AND is_active = ?", orgID, memberType, true).
		Find(&pools).Error; err != nil {
		return nil, fmt.Errorf("finding active pools: %w", err)
	}
	return pools, nil
}

// UpdateAllocation changes a pool's allocated seat count. The guard on
// assigned_seats rejects a reduction below the currently assigned count in
// the same statement that performs the write.
func (r *LicensePoolRepository) UpdateAllocation(ctx context.Context, poolID uuid.UUID, newAllocated int) (*model.LicensePool, error) {
	result := r.db.WithContext(ctx).Model(&model.LicensePool{}).
		Where("id = ? AND assigned_seats <= ?", poolID, newAllocated).
		Updates(map[string]interface{}{
			"allocated_seats": newAllocated,
			"available_seats": gorm.Expr("? - assigned_seats", newAllocated),
		})
	if result.Error != nil {
		return nil, fmt.Errorf("updating pool allocation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		if _, err := r.FindByID(ctx, poolID); err != nil {
			return nil, err
		}
		return nil, domain.ErrCannotReduceAllocation
	}
	return r.FindByID(ctx, poolID)
}

func (r *LicensePoolRepository) UpdateAutoAssignment(ctx context.Context, poolID uuid.UUID, criteria model.JSONMap, enabled bool) (*model.LicensePool, error) {
	result := r.db.WithContext(ctx).Model(&model.LicensePool{}).
		Where("id = ?", poolID).
		Updates(map[string]interface{}{
			"auto_assign_new_members": enabled,
			"assignment_criteria":     criteria,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("configuring auto-assignment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrPoolNotFound
	}
	return r.FindByID(ctx, poolID)
}
