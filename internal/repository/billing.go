// internal/repository/billing.go
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

type PaymentTransactionRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.PaymentTransaction, error)
	FindByOrganization(ctx context.Context, orgID uuid.UUID, limit int) ([]*model.PaymentTransaction, error)
	FindSuccessfulByOrganization(ctx context.Context, orgID uuid.UUID, limit int) ([]*model.PaymentTransaction, error)
}

type PaymentTransactionRepository struct {
	db *gorm.DB
}

func NewPaymentTransactionRepository(db *gorm.DB) *PaymentTransactionRepository {
	return &PaymentTransactionRepository{db: db}
}

func (r *PaymentTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.PaymentTransaction, error) {
	var txn model.PaymentTransaction
	if err := r.db.WithContext(ctx).First(&txn, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("finding transaction: %w", err)
	}
	return &txn, nil
}

func (r *PaymentTransactionRepository) FindByOrganization(ctx context.Context, orgID uuid.UUID, limit int) ([]*model.PaymentTransaction, error) {
	var txns []*model.PaymentTransaction
	q := r.db.WithContext(ctx).Where("organization_id = ?", orgID).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&txns).Error; err != nil {
		return nil, fmt.Errorf("finding transactions: %w", err)
	}
	return txns, nil
}

func (r *PaymentTransactionRepository) FindSuccessfulByOrganization(ctx context.Context, orgID uuid.UUID, limit int) ([]*model.PaymentTransaction, error) {
	var txns []*model.PaymentTransaction
	q := r.db.WithContext(ctx).
		Where("organization_id = ? AND status = ?", orgID, model.PaymentSuccess).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&txns).Error; err != nil {
		return nil, fmt.Errorf("finding successful transactions: %w", err)
	}
	return txns, nil
}

type AddonOrderRepositoryIface interface {
	FindByOrganizationAndStatus(ctx context.Context, orgID uuid.UUID, status model.AddonOrderStatus) ([]*model.AddonOrder, error)
}

type AddonOrderRepository struct {
	db *gorm.DB
}

func NewAddonOrderRepository(db *gorm.DB) *AddonOrderRepository {
	return &AddonOrderRepository{db: db}
}

func (r *AddonOrderRepository) FindByOrganizationAndStatus(ctx context.Context, orgID uuid.UUID, status model.AddonOrderStatus) ([]*model.AddonOrder, error) {
	var orders []*model.AddonOrder
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND status = ?", orgID, status).
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("finding addon orders: %w", err)
	}
	return orders, nil
}
