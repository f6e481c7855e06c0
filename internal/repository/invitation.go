// internal/repository/invitation.go
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

// InvitationFilter narrows invitation listings. Zero values mean "no filter".
type InvitationFilter struct {
	Status     model.InvitationStatus
	MemberType model.MemberType
	Limit      int
}

type InvitationRepositoryIface interface {
	Create(ctx context.Context, invitation *model.Invitation) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Invitation, error)
	FindPendingByOrgAndEmail(ctx context.Context, orgID uuid.UUID, email string) (*model.Invitation, error)
	FindByToken(ctx context.Context, token string) (*model.Invitation, error)
	FindPendingByToken(ctx context.Context, token string) (*model.Invitation, error)
	FindByOrganization(ctx context.Context, orgID uuid.UUID, filter InvitationFilter) ([]*model.Invitation, error)
	Update(ctx context.Context, invitation *model.Invitation) error
	CountByStatus(ctx context.Context, orgID uuid.UUID) (map[model.InvitationStatus]int, error)
	ExpirePending(ctx context.Context, now time.Time) (int64, error)
}

type InvitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

func (r *InvitationRepository) Create(ctx context.Context, invitation *model.Invitation) error {
	if err := r.db.WithContext(ctx).Create(invitation).Error; err != nil {
		return fmt.Errorf("creating invitation: %w", err)
	}
	return nil
}

func (r *InvitationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Invitation, error) {
	var invitation model.Invitation
	if err := r.db.WithContext(ctx).First(&invitation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("finding invitation: %w", err)
	}
	return &invitation, nil
}

func (r *InvitationRepository) FindPendingByOrgAndEmail(ctx context.Context, orgID uuid.UUID, email string) (*model.Invitation, error) {
	var invitation model.Invitation
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND email = ? AND status = ?", orgID, email, model.InvitationPending).
		First(&invitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("finding pending invitation: %w", err)
	}
	return &invitation, nil
}

func (r *InvitationRepository) FindByToken(ctx context.Context, token string) (*model.Invitation, error) {
	var invitation model.Invitation
	if err := r.db.WithContext(ctx).First(&invitation, "invitation_token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("finding invitation by token: %w", err)
	}
	return &invitation, nil
}

func (r *InvitationRepository) FindPendingByToken(ctx context.Context, token string) (*model.Invitation, error) {
	var invitation model.Invitation
	err := r.db.WithContext(ctx).
		Where("invitation_token = ? AND status = ?", token, model.InvitationPending).
		First(&invitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("finding pending invitation by token: %w", err)
	}
	return &invitation, nil
}

func (r *InvitationRepository) FindByOrganization(ctx context.Context, orgID uuid.UUID, filter InvitationFilter) ([]*model.Invitation, error) {
	var invitations []*model.Invitation
	q := r.db.WithContext(ctx).Where("organization_id = ?", orgID)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.MemberType != "" {
		q = q.Where("member_type = ?", filter.MemberType)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if err := q.Order("created_at DESC").Find(&invitations).Error; err != nil {
		return nil, fmt.Errorf("finding invitations: %w", err)
	}
	return invitations, nil
}

func (r *InvitationRepository) Update(ctx context.Context, invitation *model.Invitation) error {
	if err := r.db.WithContext(ctx).Save(invitation).Error; err != nil {
		return fmt.Errorf("updating invitation: %w", err)
	}
	return nil
}

func (r *InvitationRepository) CountByStatus(ctx context.Context, orgID uuid.UUID) (map[model.InvitationStatus]int, error) {
	var rows []struct {
		Status model.InvitationStatus
		Count  int
	}
	if err := r.db.WithContext(ctx).Model(&model.Invitation{}).
		Select("status, count(*) as count").
		Where("organization_id = ?", orgID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("counting invitations: %w", err)
	}

	counts := make(map[model.InvitationStatus]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// ExpirePending batch-transitions every pending invitation past its expiry.
func (r *InvitationRepository) ExpirePending(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Invitation{}).
		Where("status = ? AND expires_at < ?", model.InvitationPending, now).
		Update("status", model.InvitationExpired)
	if result.Error != nil {
		return 0, fmt.Errorf("expiring invitations: %w", result.Error)
	}
	return result.RowsAffected, nil
}
