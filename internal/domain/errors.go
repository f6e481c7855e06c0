// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotAuthenticated = errors.New("user not authenticated")

	// Plan-related errors
	ErrPlanNotFound         = errors.New("subscription plan not found")
	ErrPlanFeaturesNotFound = errors.New("plan features not found")

	// Subscription-related errors
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrCannotReduceSeats    = errors.New("cannot reduce seats below assigned count")

	// License pool and assignment errors
	ErrPoolNotFound           = errors.New("license pool not found")
	ErrInsufficientSeats      = errors.New("insufficient available seats in subscription")
	ErrNoAvailableSeats       = errors.New("no available seats in pool")
	ErrAlreadyAssigned        = errors.New("user already has an active license assignment")
	ErrNoActiveAssignment     = errors.New("no active assignment found for source user")
	ErrAssignmentNotFound     = errors.New("license assignment not found")
	ErrCannotReduceAllocation = errors.New("cannot reduce allocation below assigned seats")

	// Invitation-related errors
	ErrInvitationNotFound         = errors.New("invitation not found")
	ErrDuplicatePendingInvitation = errors.New("an invitation is already pending for this email")
	ErrInvitationNotPending       = errors.New("can only act on pending invitations")
	ErrInvitationInvalid          = errors.New("invalid or expired invitation")
	ErrInvitationExpired          = errors.New("invitation has expired")

	// Billing-related errors
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrOrganizationNotFound = errors.New("organization not found")
)
