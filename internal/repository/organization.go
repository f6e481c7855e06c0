// internal/repository/organization.go
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

type OrganizationRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	AddMember(ctx context.Context, member *model.OrganizationMember) error
	FindMembers(ctx context.Context, orgID uuid.UUID) ([]*model.OrganizationMember, error)
}

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("finding organization: %w", err)
	}
	return &org, nil
}

// AddMember links a user to an organization, once. Re-linking an existing
// member is a no-op rather than an error.
func (r *OrganizationRepository) AddMember(ctx context.Context, member *model.OrganizationMember) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.OrganizationMember{}).
			Where("organization_id = ? AND user_id = ?", member.OrganizationID, member.UserID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("checking existing membership: %w", err)
		}
		if count > 0 {
			return nil
		}

		if err := tx.Create(member).Error; err != nil {
			return fmt.Errorf("creating organization member: %w", err)
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) FindMembers(ctx context.Context, orgID uuid.UUID) ([]*model.OrganizationMember, error) {
	var members []*model.OrganizationMember
	if err := r.db.WithContext(ctx).Where("organization_id = ?", orgID).Find(&members).Error; err != nil {
		return nil, fmt.Errorf("finding organization members: %w", err)
	}
	return members, nil
}
