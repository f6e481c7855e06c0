// internal/service/license.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/campushq/licensing/internal/domain"
	"github.com/campushq/licensing/internal/metrics"
	"github.com/campushq/licensing/internal/model"
	"github.com/campushq/licensing/internal/repository"
	"github.com/google/uuid"
)

// LicenseService manages pools carved out of a subscription's seat block and
// the per-user assignments drawn from those pools.
type LicenseService struct {
	pools       repository.LicensePoolRepositoryIface
	assignments repository.LicenseAssignmentRepositoryIface
	subs        repository.SubscriptionRepositoryIface
}

func NewLicenseService(
	pools repository.LicensePoolRepositoryIface,
	assignments repository.LicenseAssignmentRepositoryIface,
	subs repository.SubscriptionRepositoryIface,
) *LicenseService {
	return &LicenseService{
		pools:       pools,
		assignments: assignments,
		subs:        subs,
	}
}

type CreatePoolInput struct {
	SubscriptionID       uuid.UUID        `json:"subscription_id"`
	Name                 string           `json:"name"`
	MemberType           model.MemberType `json:"member_type"`
	AllocatedSeats       int              `json:"allocated_seats"`
	AutoAssignNewMembers bool             `json:"auto_assign_new_members"`
	AssignmentCriteria   model.JSONMap    `json:"assignment_criteria,omitempty"`
}

// CreatePool carves a named block of seats out of a subscription. The pool's
// allocation may not exceed the subscription's unassigned seats.
func (s *LicenseService) CreatePool(ctx context.Context, actorID uuid.UUID, input CreatePoolInput) (*model.LicensePool, error) {
	if actorID == uuid.Nil {
		return nil, domain.ErrNotAuthenticated
	}
	if input.AllocatedSeats < 1 {
		return nil, fmt.Errorf("%w: allocated seats must be positive", domain.ErrInvalidInput)
	}

	sub, err := s.subs.FindByID(ctx, input.SubscriptionID)
	if err != nil {
		return nil, err
	}
	if sub.AvailableSeats < input.AllocatedSeats {
		return nil, fmt.Errorf("%w: %d requested, %d available", domain.ErrInsufficientSeats, input.AllocatedSeats, sub.AvailableSeats)
	}

	pool := &model.LicensePool{
		OrganizationSubscriptionID: sub.ID,
		OrganizationID:             sub.OrganizationID,
		OrganizationType:           sub.OrganizationType,
		PoolName:                   input.Name,
		MemberType:                 input.MemberType,
		AllocatedSeats:             input.AllocatedSeats,
		AssignedSeats:              0,
		AvailableSeats:             input.AllocatedSeats,
		AutoAssignNewMembers:       input.AutoAssignNewMembers,
		AssignmentCriteria:         input.AssignmentCriteria,
		IsActive:                   true,
		CreatedByID:                actorID,
	}
	if err := s.pools.Create(ctx, pool); err != nil {
		return nil, fmt.Errorf("creating license pool: %w", err)
	}
	return pool, nil
}

func (s *LicenseService) Pools(ctx context.Context, orgID uuid.UUID, orgType model.OrganizationType) ([]*model.LicensePool, error) {
	return s.pools.FindByOrganization(ctx, orgID, orgType)
}

// Assign draws one seat from the pool for a user. A user may hold at most one
// active assignment per subscription; the seat claim itself is decided by a
// conditional update, so concurrent callers cannot oversubscribe the pool.
func (s *LicenseService) Assign(ctx context.Context, poolID, userID, assignedByID uuid.UUID) (*model.LicenseAssignment, error) {
	pool, err := s.pools.FindByID(ctx, poolID)
	if err != nil {
		metrics.LicenseAssignmentsTotal.WithLabelValues("pool_not_found").Inc()
		return nil, err
	}

	_, err = s.assignments.FindActiveByUserAndSubscription(ctx, userID, pool.OrganizationSubscriptionID)
	if err == nil {
		metrics.LicenseAssignmentsTotal.WithLabelValues("already_assigned").Inc()
		return nil, domain.ErrAlreadyAssigned
	}
	if !errors.Is(err, domain.ErrNoActiveAssignment) {
		return nil, fmt.Errorf("checking existing assignment: %w", err)
	}

	assignment := &model.LicenseAssignment{
		LicensePoolID:              pool.ID,
		OrganizationSubscriptionID: pool.OrganizationSubscriptionID,
		UserID:                     userID,
		MemberType:                 pool.MemberType,
		AssignedByID:               assignedByID,
		Status:                     model.AssignmentActive,
		AssignedAt:                 time.Now().UTC(),
	}
	if err := s.assignments.Create(ctx, assignment); err != nil {
		if errors.Is(err, domain.ErrNoAvailableSeats) {
			metrics.LicenseAssignmentsTotal.WithLabelValues("no_seats").Inc()
		} else {
			metrics.LicenseAssignmentsTotal.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	metrics.LicenseAssignmentsTotal.WithLabelValues("assigned").Inc()
	return assignment, nil
}

// Unassign releases a user's active seat on the subscription back to its pool.
func (s *LicenseService) Unassign(ctx context.Context, userID, subscriptionID, revokedByID uuid.UUID, reason string) error {
	assignment, err := s.assignments.FindActiveByUserAndSubscription(ctx, userID, subscriptionID)
	if err != nil {
		return err
	}
	if err := s.assignments.Revoke(ctx, assignment.ID, reason, revokedByID); err != nil {
		return err
	}
	metrics.LicenseAssignmentsTotal.WithLabelValues("revoked").Inc()
	return nil
}

// Transfer moves a seat from one user to another without touching pool
// counters: the source assignment is closed and a linked replacement opens in
// the same pool, atomically.
func (s *LicenseService) Transfer(ctx context.Context, fromUserID, toUserID, subscriptionID, transferredByID uuid.UUID) (*model.LicenseAssignment, error) {
	current, err := s.assignments.FindActiveByUserAndSubscription(ctx, fromUserID, subscriptionID)
	if err != nil {
		return nil, err
	}

	_, err = s.assignments.FindActiveByUserAndSubscription(ctx, toUserID, subscriptionID)
	if err == nil {
		return nil, domain.ErrAlreadyAssigned
	}
	if !errors.Is(err, domain.ErrNoActiveAssignment) {
		return nil, fmt.Errorf("checking recipient assignment: %w", err)
	}

	replacement := &model.LicenseAssignment{
		LicensePoolID:              current.LicensePoolID,
		OrganizationSubscriptionID: current.OrganizationSubscriptionID,
		UserID:                     toUserID,
		MemberType:                 current.MemberType,
		AssignedByID:               transferredByID,
		Status:                     model.AssignmentActive,
		AssignedAt:                 time.Now().UTC(),
		TransferredFrom:            &current.ID,
	}
	if err := s.assignments.Transfer(ctx, current, replacement); err != nil {
		return nil, err
	}

	metrics.LicenseAssignmentsTotal.WithLabelValues("transferred").Inc()
	return replacement, nil
}

// AssignmentFailure records why one user in a bulk operation was skipped.
type AssignmentFailure struct {
	UserID uuid.UUID `json:"user_id"`
	Error  string    `json:"error"`
}

type BulkAssignmentResult struct {
	Successful []*model.LicenseAssignment `json:"successful"`
	Failed     []AssignmentFailure        `json:"failed"`
}

// BulkAssign assigns seats to each user in turn. Individual failures are
// collected rather than aborting the batch.
func (s *LicenseService) BulkAssign(ctx context.Context, poolID uuid.UUID, userIDs []uuid.UUID, assignedByID uuid.UUID) (*BulkAssignmentResult, error) {
	result := &BulkAssignmentResult{
		Successful: []*model.LicenseAssignment{},
		Failed:     []AssignmentFailure{},
	}
	for _, userID := range userIDs {
		assignment, err := s.Assign(ctx, poolID, userID, assignedByID)
		if err != nil {
			result.Failed = append(result.Failed, AssignmentFailure{UserID: userID, Error: err.Error()})
			continue
		}
		result.Successful = append(result.Successful, assignment)
	}
	return result, nil
}

// AvailableSeats reports the total seats still assignable to the given member
// type across an organization's active pools. No pools means zero.
func (s *LicenseService) AvailableSeats(ctx context.Context, orgID uuid.UUID, memberType model.MemberType) (int, error) {
	pools, err := s.pools.FindActiveByOrgAndMemberType(ctx, orgID, memberType)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, pool := range pools {
		total += pool.AvailableSeats
	}
	return total, nil
}

// UpdatePoolAllocation resizes a pool. Shrinking below the assigned count is
// rejected.
func (s *LicenseService) UpdatePoolAllocation(ctx context.Context, poolID uuid.UUID, newAllocation int) (*model.LicensePool, error) {
	if newAllocation < 1 {
		return nil, fmt.Errorf("%w: allocation must be positive", domain.ErrInvalidInput)
	}

	pool, err := s.pools.FindByID(ctx, poolID)
	if err != nil {
		return nil, err
	}

	if newAllocation > pool.AllocatedSeats {
		grow := newAllocation - pool.AllocatedSeats
		sub, err := s.subs.FindByID(ctx, pool.OrganizationSubscriptionID)
		if err != nil {
			return nil, err
		}
		if sub.AvailableSeats < grow {
			return nil, fmt.Errorf("%w: %d more requested, %d available", domain.ErrInsufficientSeats, grow, sub.AvailableSeats)
		}
	}

	return s.pools.UpdateAllocation(ctx, poolID, newAllocation)
}

// ConfigureAutoAssignment toggles automatic assignment for new members and
// replaces the matching criteria.
func (s *LicenseService) ConfigureAutoAssignment(ctx context.Context, poolID uuid.UUID, enabled bool, criteria model.JSONMap) (*model.LicensePool, error) {
	return s.pools.UpdateAutoAssignment(ctx, poolID, criteria, enabled)
}

// UserAssignments lists every assignment a user has held, newest first.
func (s *LicenseService) UserAssignments(ctx context.Context, userID uuid.UUID) ([]*model.LicenseAssignment, error) {
	return s.assignments.FindByUser(ctx, userID)
}

// PoolAssignments lists a pool's assignments, active ones first.
func (s *LicenseService) PoolAssignments(ctx context.Context, poolID uuid.UUID) ([]*model.LicenseAssignment, error) {
	if _, err := s.pools.FindByID(ctx, poolID); err != nil {
		return nil, err
	}
	return s.assignments.FindByPool(ctx, poolID)
}

// AutoAssignForMember finds an active pool matching the member type and, if it
// allows auto-assignment, draws a seat for the user. A nil assignment with nil
// error means no pool wanted the member.
func (s *LicenseService) AutoAssignForMember(ctx context.Context, orgID, userID uuid.UUID, memberType model.MemberType, assignedByID uuid.UUID) (*model.LicenseAssignment, error) {
	pools, err := s.pools.FindActiveByOrgAndMemberType(ctx, orgID, memberType)
	if err != nil {
		return nil, err
	}
	for _, pool := range pools {
		if !pool.AutoAssignNewMembers || pool.AvailableSeats < 1 {
			continue
		}
		assignment, err := s.Assign(ctx, pool.ID, userID, assignedByID)
		if err != nil {
			if errors.Is(err, domain.ErrNoAvailableSeats) {
				continue
			}
			if errors.Is(err, domain.ErrAlreadyAssigned) {
				return nil, err
			}
			slog.Warn("auto-assignment failed", "pool_id", pool.ID, "user_id", userID, "error", err)
			continue
		}
		return assignment, nil
	}
	return nil, nil
}
