// internal/service/subscription.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campushq/licensing/internal/domain"
	"github.com/campushq/licensing/internal/model"
	"github.com/campushq/licensing/internal/pricing"
	"github.com/campushq/licensing/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SubscriptionService owns the lifecycle of an organization's purchased seat
// block: purchase, renew, upgrade, cancel, resize.
type SubscriptionService struct {
	subs     repository.SubscriptionRepositoryIface
	plans    repository.SubscriptionPlanRepositoryIface
	validate *validator.Validate
}

func NewSubscriptionService(
	subs repository.SubscriptionRepositoryIface,
	plans repository.SubscriptionPlanRepositoryIface,
) *SubscriptionService {
	return &SubscriptionService{
		subs:     subs,
		plans:    plans,
		validate: validator.New(),
	}
}

type PurchaseSubscriptionInput struct {
	OrganizationID   uuid.UUID              `json:"organization_id" validate:"required"`
	OrganizationType model.OrganizationType `json:"organization_type" validate:"required"`
	PlanID           uuid.UUID              `json:"plan_id" validate:"required"`
	SeatCount        int                    `json:"seat_count" validate:"required,min=1"`
	TargetMemberType model.MemberType       `json:"target_member_type" validate:"required"`
	BillingCycle     model.BillingCycle     `json:"billing_cycle"`
	AutoRenew        bool                   `json:"auto_renew"`
}

// Purchase prices the requested seat block against the plan catalog and
// persists a fresh subscription with no seats assigned.
func (s *SubscriptionService) Purchase(ctx context.Context, actorID uuid.UUID, input PurchaseSubscriptionInput) (*model.OrganizationSubscription, error) {
	if actorID == uuid.Nil {
		return nil, domain.ErrNotAuthenticated
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	plan, err := s.plans.FindByID(ctx, input.PlanID)
	if err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("looking up plan: %w", err)
	}

	cycle := input.BillingCycle
	if cycle == "" {
		cycle = model.BillingMonthly
	}

	price := pricing.BulkPricing(plan.Price, input.SeatCount)

	now := time.Now().UTC()
	sub := &model.OrganizationSubscription{
		OrganizationID:     input.OrganizationID,
		OrganizationType:   input.OrganizationType,
		SubscriptionPlanID: plan.ID,
		PurchasedByID:      actorID,
		TotalSeats:         input.SeatCount,
		AssignedSeats:      0,
		AvailableSeats:     input.SeatCount,
		TargetMemberType:   input.TargetMemberType,
		Status:             model.SubscriptionActive,
		BillingCycle:       cycle,
		StartDate:          now,
		EndDate:            now.Add(termFor(cycle)),
		AutoRenew:          input.AutoRenew,
		PricePerSeat:       price.PricePerSeat,
		TotalAmount:        price.Subtotal,
		DiscountPercentage: price.DiscountPercentage,
		FinalAmount:        price.FinalAmount,
	}

	if err := s.subs.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("persisting subscription: %w", err)
	}
	return sub, nil
}

// ListByOrganization returns an organization's subscriptions, newest first,
// optionally filtered by organization type.
func (s *SubscriptionService) ListByOrganization(ctx context.Context, orgID uuid.UUID, orgType model.OrganizationType) ([]*model.OrganizationSubscription, error) {
	return s.subs.FindByOrganization(ctx, orgID, orgType)
}

func (s *SubscriptionService) GetByID(ctx context.Context, id uuid.UUID) (*model.OrganizationSubscription, error) {
	return s.subs.FindByID(ctx, id)
}

// Plans returns the purchasable plan catalog.
func (s *SubscriptionService) Plans(ctx context.Context) ([]*model.SubscriptionPlan, error) {
	return s.plans.FindAllActive(ctx)
}

// UpdateSeatCount resizes the subscription. Reducing below the assigned seat
// count is rejected and leaves the record untouched.
func (s *SubscriptionService) UpdateSeatCount(ctx context.Context, subID uuid.UUID, newTotal int) (*model.OrganizationSubscription, error) {
	if newTotal < 1 {
		return nil, fmt.Errorf("%w: seat count must be positive", domain.ErrInvalidInput)
	}

	sub, err := s.subs.FindByID(ctx, subID)
	if err != nil {
		return nil, err
	}
	if newTotal < sub.AssignedSeats {
		return nil, fmt.Errorf("%w (%d)", domain.ErrCannotReduceSeats, sub.AssignedSeats)
	}

	plan, err := s.plans.FindByID(ctx, sub.SubscriptionPlanID)
	if err != nil {
		return nil, fmt.Errorf("looking up plan for repricing: %w", err)
	}
	price := pricing.BulkPricing(plan.Price, newTotal)

	repriced := model.OrganizationSubscription{
		PricePerSeat:       price.PricePerSeat,
		TotalAmount:        price.Subtotal,
		DiscountPercentage: price.DiscountPercentage,
		FinalAmount:        price.FinalAmount,
	}
	if err := s.subs.ResizeSeats(ctx, subID, newTotal, repriced); err != nil {
		return nil, err
	}

	return s.subs.FindByID(ctx, subID)
}

// Cancel marks the subscription cancelled and records the reason. The record
// is preserved, not deleted.
func (s *SubscriptionService) Cancel(ctx context.Context, subID uuid.UUID, reason string) error {
	sub, err := s.subs.FindByID(ctx, subID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	sub.Status = model.SubscriptionCancelled
	sub.CancellationReason = &reason
	sub.CancelledAt = &now

	if err := s.subs.Update(ctx, sub); err != nil {
		return fmt.Errorf("cancelling subscription: %w", err)
	}
	return nil
}

// RenewOptions tunes a renewal. A nil SeatCount keeps the current block size.
type RenewOptions struct {
	SeatCount *int `json:"seat_count,omitempty"`
}

// Renew extends the subscription's term, optionally resizing and re-pricing
// the seat block. AutoRenew carries over unchanged.
func (s *SubscriptionService) Renew(ctx context.Context, subID uuid.UUID, opts *RenewOptions) (*model.OrganizationSubscription, error) {
	sub, err := s.subs.FindByID(ctx, subID)
	if err != nil {
		return nil, err
	}

	seats := sub.TotalSeats
	if opts != nil && opts.SeatCount != nil {
		seats = *opts.SeatCount
		if seats < sub.AssignedSeats {
			return nil, fmt.Errorf("%w (%d)", domain.ErrCannotReduceSeats, sub.AssignedSeats)
		}
	}

	plan, err := s.plans.FindByID(ctx, sub.SubscriptionPlanID)
	if err != nil {
		return nil, fmt.Errorf("looking up plan for renewal: %w", err)
	}
	price := pricing.BulkPricing(plan.Price, seats)

	// A lapsed subscription renews from now; an active one extends its term.
	from := sub.EndDate
	if now := time.Now().UTC(); from.Before(now) {
		from = now
	}

	sub.TotalSeats = seats
	sub.AvailableSeats = seats - sub.AssignedSeats
	sub.Status = model.SubscriptionActive
	sub.EndDate = from.Add(termFor(sub.BillingCycle))
	sub.PricePerSeat = price.PricePerSeat
	sub.TotalAmount = price.Subtotal
	sub.DiscountPercentage = price.DiscountPercentage
	sub.FinalAmount = price.FinalAmount

	if err := s.subs.Update(ctx, sub); err != nil {
		return nil, fmt.Errorf("renewing subscription: %w", err)
	}
	return sub, nil
}

// Upgrade moves the subscription onto a new plan, re-pricing the existing
// seat count at the new plan's base price.
func (s *SubscriptionService) Upgrade(ctx context.Context, subID, newPlanID uuid.UUID) (*model.OrganizationSubscription, error) {
	sub, err := s.subs.FindByID(ctx, subID)
	if err != nil {
		return nil, err
	}

	plan, err := s.plans.FindByID(ctx, newPlanID)
	if err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("looking up new plan: %w", err)
	}

	price := pricing.BulkPricing(plan.Price, sub.TotalSeats)

	sub.SubscriptionPlanID = plan.ID
	sub.PricePerSeat = price.PricePerSeat
	sub.TotalAmount = price.Subtotal
	sub.DiscountPercentage = price.DiscountPercentage
	sub.FinalAmount = price.FinalAmount

	if err := s.subs.Update(ctx, sub); err != nil {
		return nil, fmt.Errorf("upgrading subscription: %w", err)
	}
	return sub, nil
}

func termFor(cycle model.BillingCycle) time.Duration {
	if cycle == model.BillingYearly {
		return 365 * 24 * time.Hour
	}
	return 30 * 24 * time.Hour
}
