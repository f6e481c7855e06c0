// internal/repository/license_assignment.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campushq/licensing/internal/domain"
	"github.com/campushq/licensing/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

type LicenseAssignmentRepositoryIface interface {
	Create(ctx context.Context, assignment *model.LicenseAssignment) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.LicenseAssignment, error)
	FindActiveByUserAndSubscription(ctx context.Context, userID, subscriptionID uuid.UUID) (*model.LicenseAssignment, error)
	FindActiveBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]*model.LicenseAssignment, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.LicenseAssignment, error)
	FindByPool(ctx context.Context, poolID uuid.UUID) ([]*model.LicenseAssignment, error)
	Revoke(ctx context.Context, id uuid.UUID, reason string, revokedBy uuid.UUID) error
	Transfer(ctx context.Context, current *model.LicenseAssignment, replacement *model.LicenseAssignment) error
}

type LicenseAssignmentRepository struct {
	db *gorm.DB
}

func NewLicenseAssignmentRepository(db *gorm.DB) *LicenseAssignmentRepository {
	return &LicenseAssignmentRepository{db: db}
}

// Create inserts an assignment and claims one seat from its pool and its
// subscription. The seat claims are conditional single-statement updates, so
// two concurrent assignments racing for the last seat cannot both succeed:
// the loser's guard matches zero rows and the whole transaction rolls back.
func (r *LicenseAssignmentRepository) Create(ctx context.Context, assignment *model.LicenseAssignment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pool := tx.Model(&model.LicensePool{}).
			Where("id = ? AND is_active = ? AND available_seats > 0", assignment.LicensePoolID, true).
			Updates(map[string]interface{}{
				"assigned_seats":  gorm.Expr("assigned_seats + 1"),
				"available_seats": gorm.Expr("available_seats - 1"),
			})
		if pool.Error != nil {
			return fmt.Errorf("claiming pool seat: %w", pool.Error)
		}
		if pool.RowsAffected == 0 {
			return domain.ErrNoAvailableSeats
		}

		sub := tx.Model(&model.OrganizationSubscription{}).
			Where("id = ? AND available_seats > 0", assignment.OrganizationSubscriptionID).
			Updates(map[string]interface{}{
				"assigned_seats":  gorm.Expr("assigned_seats + 1"),
				"available_seats": gorm.Expr("available_seats - 1"),
			})
		if sub.Error != nil {
			return fmt.Errorf("claiming subscription seat: %w", sub.Error)
		}
		if sub.RowsAffected == 0 {
			return domain.ErrNoAvailableSeats
		}

		if err := tx.Create(assignment).Error; err != nil {
			// The partial unique index on active (user, subscription) rows
			// backstops the service-level duplicate check under races.
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return domain.ErrAlreadyAssigned
			}
			return fmt.Errorf("creating assignment: %w", err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrNoAvailableSeats) || errors.Is(err, domain.ErrAlreadyAssigned) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *LicenseAssignmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.LicenseAssignment, error) {
	var assignment model.LicenseAssignment
	if err := r.db.WithContext(ctx).First(&assignment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("finding assignment: %w", err)
	}
	return &assignment, nil
}

func (r *LicenseAssignmentRepository) FindActiveByUserAndSubscription(ctx context.Context, userID, subscriptionID uuid.UUID) (*model.LicenseAssignment, error) {
	var assignment model.LicenseAssignment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND organization_subscription_id = ? AND status = ?",
			userID, subscriptionID, model.AssignmentActive).
		First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoActiveAssignment
		}
		return nil, fmt.Errorf("finding active assignment: %w", err)
	}
	return &assignment, nil
}

func (r *LicenseAssignmentRepository) FindActiveBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]*model.LicenseAssignment, error) {
	var assignments []*model.LicenseAssignment
	if err := r.db.WithContext(ctx).
		Where("organization_subscription_id = ? AND status = ?", subscriptionID, model.AssignmentActive).
		Find(&assignments).Error; err != nil {
		return nil, fmt.Errorf("finding subscription assignments: %w", err)
	}
	return assignments, nil
}

func (r *LicenseAssignmentRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.LicenseAssignment, error) {
	var assignments []*model.LicenseAssignment
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&assignments).Error; err != nil {
		return nil, fmt.Errorf("finding user assignments: %w", err)
	}
	return assignments, nil
}

func (r *LicenseAssignmentRepository) FindByPool(ctx context.Context, poolID uuid.UUID) ([]*model.LicenseAssignment, error) {
	var assignments []*model.LicenseAssignment
	if err := r.db.WithContext(ctx).
		Where("license_pool_id = ?", poolID).
		Order("created_at DESC").
		Find(&assignments).Error; err != nil {
		return nil, fmt.Errorf("finding pool assignments: %w", err)
	}
	return assignments, nil
}

// Revoke flips an active assignment to unassigned and releases its seat back
// to the pool and subscription. The row itself survives as the audit trail.
func (r *LicenseAssignmentRepository) Revoke(ctx context.Context, id uuid.UUID, reason string, revokedBy uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var assignment model.LicenseAssignment
		if err := tx.First(&assignment, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrAssignmentNotFound
			}
			return fmt.Errorf("finding assignment: %w", err)
		}

		result := tx.Model(&model.LicenseAssignment{}).
			Where("id = ? AND status = ?", id, model.AssignmentActive).
			Updates(map[string]interface{}{
				"status":            model.AssignmentUnassigned,
				"revoked_at":        time.Now().UTC(),
				"revoked_by_id":     revokedBy,
				"revocation_reason": reason,
			})
		if result.Error != nil {
			return fmt.Errorf("revoking assignment: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			// Already unassigned. Nothing to release.
			return nil
		}

		return releaseSeat(tx, assignment.LicensePoolID, assignment.OrganizationSubscriptionID)
	})

	if err != nil {
		if errors.Is(err, domain.ErrAssignmentNotFound) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

// Transfer revokes the current assignment and creates its replacement as a
// single unit. Seat counters are untouched: the replacement takes over the
// seat the revoked assignment held.
func (r *LicenseAssignmentRepository) Transfer(ctx context.Context, current *model.LicenseAssignment, replacement *model.LicenseAssignment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reason := "Transferred to another user"
		result := tx.Model(&model.LicenseAssignment{}).
			Where("id = ? AND status = ?", current.ID, model.AssignmentActive).
			Updates(map[string]interface{}{
				"status":            model.AssignmentUnassigned,
				"revoked_at":        time.Now().UTC(),
				"revoked_by_id":     replacement.AssignedByID,
				"revocation_reason": reason,
			})
		if result.Error != nil {
			return fmt.Errorf("revoking source assignment: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNoActiveAssignment
		}

		if err := tx.Create(replacement).Error; err != nil {
			return fmt.Errorf("creating replacement assignment: %w", err)
		}

		if err := tx.Model(&model.LicenseAssignment{}).
			Where("id = ?", current.ID).
			Update("transferred_to", replacement.ID).Error; err != nil {
			return fmt.Errorf("back-filling transfer reference: %w", err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrNoActiveAssignment) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func releaseSeat(tx *gorm.DB, poolID, subscriptionID uuid.UUID) error {
	pool := tx.Model(&model.LicensePool{}).
		Where("id = ? AND assigned_seats > 0", poolID).
		Updates(map[string]interface{}{
			"assigned_seats":  gorm.Expr("assigned_seats - 1"),
			"available_seats": gorm.Expr("available_seats + 1"),
		})
	if pool.Error != nil {
		return fmt.Errorf("releasing pool seat: %w", pool.Error)
	}

	sub := tx.Model(&model.OrganizationSubscription{}).
		Where("id = ? AND assigned_seats > 0", subscriptionID).
		Updates(map[string]interface{}{
			"assigned_seats":  gorm.Expr("assigned_seats - 1"),
			"available_seats": gorm.Expr("available_seats + 1"),
		})
	if sub.Error != nil {
		return fmt.Errorf("releasing subscription seat: %w", sub.Error)
	}
	return nil
}
