// internal/service/invitation.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/campushq/licensing/internal/domain"
	"github.com/campushq/licensing/internal/metrics"
	"github.com/campushq/licensing/internal/model"
	"github.com/campushq/licensing/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const invitationValidity = 7 * 24 * time.Hour

// InvitationService runs the invite-join loop: issuing tokens, accepting
// them, and optionally seating new members on acceptance.
type InvitationService struct {
	invites  repository.InvitationRepositoryIface
	orgs     repository.OrganizationRepositoryIface
	license  *LicenseService
	validate *validator.Validate
}

func NewInvitationService(
	invites repository.InvitationRepositoryIface,
	orgs repository.OrganizationRepositoryIface,
	license *LicenseService,
) *InvitationService {
	return &InvitationService{
		invites:  invites,
		orgs:     orgs,
		license:  license,
		validate: validator.New(),
	}
}

type InviteInput struct {
	OrganizationID         uuid.UUID              `json:"organization_id" validate:"required"`
	OrganizationType       model.OrganizationType `json:"organization_type" validate:"required"`
	Email                  string                 `json:"email" validate:"required,email"`
	MemberType             model.MemberType       `json:"member_type" validate:"required"`
	AutoAssignSubscription bool                   `json:"auto_assign_subscription"`
	TargetLicensePoolID    *uuid.UUID             `json:"target_license_pool_id,omitempty"`
	Message                string                 `json:"message,omitempty"`
	Metadata               model.JSONMap          `json:"metadata,omitempty"`
}

// Invite issues a pending invitation for the email address. Only one pending
// invitation per organization and address may exist at a time.
func (s *InvitationService) Invite(ctx context.Context, actorID uuid.UUID, input InviteInput) (*model.Invitation, error) {
	if actorID == uuid.Nil {
		return nil, domain.ErrNotAuthenticated
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	_, err := s.invites.FindPendingByOrgAndEmail(ctx, input.OrganizationID, email)
	if err == nil {
		return nil, domain.ErrDuplicatePendingInvitation
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("checking pending invitations: %w", err)
	}

	token, err := newInvitationToken()
	if err != nil {
		return nil, err
	}

	inv := &model.Invitation{
		OrganizationID:         input.OrganizationID,
		OrganizationType:       input.OrganizationType,
		Email:                  email,
		MemberType:             input.MemberType,
		InvitedByID:            actorID,
		Status:                 model.InvitationPending,
		AutoAssignSubscription: input.AutoAssignSubscription,
		TargetLicensePoolID:    input.TargetLicensePoolID,
		InvitationToken:        token,
		ExpiresAt:              time.Now().UTC().Add(invitationValidity),
		Message:                input.Message,
		Metadata:               input.Metadata,
	}
	if err := s.invites.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("creating invitation: %w", err)
	}

	metrics.InvitationsTotal.WithLabelValues("sent").Inc()
	return inv, nil
}

// InviteFailure records why one address in a bulk invite was skipped.
type InviteFailure struct {
	Email string `json:"email"`
	Error string `json:"error"`
}

type BulkInviteResult struct {
	Successful  []*model.Invitation `json:"successful"`
	Failed      []InviteFailure     `json:"failed"`
	TotalSent   int                 `json:"total_sent"`
	TotalFailed int                 `json:"total_failed"`
}

// BulkInvite issues invitations for each address, collecting per-address
// failures instead of aborting the batch.
func (s *InvitationService) BulkInvite(ctx context.Context, actorID uuid.UUID, base InviteInput, emails []string) (*BulkInviteResult, error) {
	if actorID == uuid.Nil {
		return nil, domain.ErrNotAuthenticated
	}

	result := &BulkInviteResult{
		Successful: []*model.Invitation{},
		Failed:     []InviteFailure{},
	}
	for _, email := range emails {
		input := base
		input.Email = email
		inv, err := s.Invite(ctx, actorID, input)
		if err != nil {
			result.Failed = append(result.Failed, InviteFailure{Email: email, Error: err.Error()})
			continue
		}
		result.Successful = append(result.Successful, inv)
	}
	result.TotalSent = len(result.Successful)
	result.TotalFailed = len(result.Failed)
	return result, nil
}

// Resend rotates a pending invitation's token and pushes out its expiry.
func (s *InvitationService) Resend(ctx context.Context, invitationID uuid.UUID) (*model.Invitation, error) {
	inv, err := s.invites.FindByID(ctx, invitationID)
	if err != nil {
		return nil, err
	}
	if inv.Status != model.InvitationPending {
		return nil, domain.ErrInvitationNotPending
	}

	token, err := newInvitationToken()
	if err != nil {
		return nil, err
	}
	inv.InvitationToken = token
	inv.ExpiresAt = time.Now().UTC().Add(invitationValidity)

	if err := s.invites.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("resending invitation: %w", err)
	}
	metrics.InvitationsTotal.WithLabelValues("resent").Inc()
	return inv, nil
}

// Cancel withdraws a pending invitation.
func (s *InvitationService) Cancel(ctx context.Context, invitationID uuid.UUID) error {
	inv, err := s.invites.FindByID(ctx, invitationID)
	if err != nil {
		return err
	}
	if inv.Status != model.InvitationPending {
		return domain.ErrInvitationNotPending
	}

	inv.Status = model.InvitationCancelled
	if err := s.invites.Update(ctx, inv); err != nil {
		return fmt.Errorf("cancelling invitation: %w", err)
	}
	metrics.InvitationsTotal.WithLabelValues("cancelled").Inc()
	return nil
}

// AcceptResult reports what happened when an invitation was redeemed.
type AcceptResult struct {
	Invitation       *model.Invitation        `json:"invitation"`
	AssignedLicense  *model.LicenseAssignment `json:"assigned_license,omitempty"`
	OrganizationName string                   `json:"organization_name"`
}

// Accept redeems an invitation token for the joining user. Membership and
// seat assignment are best effort: the acceptance itself stands even when the
// follow-on steps fail.
func (s *InvitationService) Accept(ctx context.Context, token string, userID uuid.UUID) (*AcceptResult, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrNotAuthenticated
	}

	inv, err := s.invites.FindPendingByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvitationInvalid
		}
		return nil, err
	}

	now := time.Now().UTC()
	if now.After(inv.ExpiresAt) {
		inv.Status = model.InvitationExpired
		if err := s.invites.Update(ctx, inv); err != nil {
			slog.Warn("failed to mark invitation expired", "invitation_id", inv.ID, "error", err)
		}
		metrics.InvitationsTotal.WithLabelValues("expired").Inc()
		return nil, domain.ErrInvitationExpired
	}

	inv.Status = model.InvitationAccepted
	inv.AcceptedAt = &now
	inv.AcceptedByID = &userID
	if err := s.invites.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("accepting invitation: %w", err)
	}
	metrics.InvitationsTotal.WithLabelValues("accepted").Inc()

	result := &AcceptResult{Invitation: inv, OrganizationName: "Organization"}

	member := &model.OrganizationMember{
		OrganizationID: inv.OrganizationID,
		UserID:         userID,
		MemberType:     inv.MemberType,
		JoinedAt:       now,
	}
	if err := s.orgs.AddMember(ctx, member); err != nil {
		slog.Warn("failed to add accepted invitee as member", "invitation_id", inv.ID, "user_id", userID, "error", err)
	}

	if inv.AutoAssignSubscription && inv.TargetLicensePoolID != nil {
		assignment, err := s.license.Assign(ctx, *inv.TargetLicensePoolID, userID, inv.InvitedByID)
		if err != nil {
			slog.Warn("auto-assignment on acceptance failed", "invitation_id", inv.ID, "pool_id", *inv.TargetLicensePoolID, "error", err)
		} else {
			result.AssignedLicense = assignment
		}
	}

	if org, err := s.orgs.FindByID(ctx, inv.OrganizationID); err == nil {
		result.OrganizationName = org.Name
	}

	return result, nil
}

// Pending lists an organization's pending invitations.
func (s *InvitationService) Pending(ctx context.Context, orgID uuid.UUID) ([]*model.Invitation, error) {
	return s.invites.FindByOrganization(ctx, orgID, repository.InvitationFilter{Status: model.InvitationPending})
}

// List returns an organization's invitations under the given filter.
func (s *InvitationService) List(ctx context.Context, orgID uuid.UUID, filter repository.InvitationFilter) ([]*model.Invitation, error) {
	return s.invites.FindByOrganization(ctx, orgID, filter)
}

// Members lists the organization's current roster, built up as invitations
// are accepted.
func (s *InvitationService) Members(ctx context.Context, orgID uuid.UUID) ([]*model.OrganizationMember, error) {
	return s.orgs.FindMembers(ctx, orgID)
}

// ByToken looks up an invitation for preview before acceptance. An unknown
// token yields nil, not an error.
func (s *InvitationService) ByToken(ctx context.Context, token string) (*model.Invitation, error) {
	inv, err := s.invites.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvitationNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return inv, nil
}

// InvitationStats summarizes an organization's invitations. AcceptanceRate is
// a whole percentage over resolved invitations only.
type InvitationStats struct {
	Total          int `json:"total"`
	Pending        int `json:"pending"`
	Accepted       int `json:"accepted"`
	Expired        int `json:"expired"`
	Cancelled      int `json:"cancelled"`
	AcceptanceRate int `json:"acceptance_rate"`
}

func (s *InvitationService) Stats(ctx context.Context, orgID uuid.UUID) (*InvitationStats, error) {
	counts, err := s.invites.CountByStatus(ctx, orgID)
	if err != nil {
		return nil, err
	}

	stats := &InvitationStats{
		Pending:   counts[model.InvitationPending],
		Accepted:  counts[model.InvitationAccepted],
		Expired:   counts[model.InvitationExpired],
		Cancelled: counts[model.InvitationCancelled],
	}
	stats.Total = stats.Pending + stats.Accepted + stats.Expired + stats.Cancelled

	resolved := stats.Accepted + stats.Expired + stats.Cancelled
	if resolved > 0 {
		stats.AcceptanceRate = int(math.Round(float64(stats.Accepted) / float64(resolved) * 100))
	}
	return stats, nil
}

// ExpireOld flips every pending invitation past its expiry to expired and
// returns how many changed.
func (s *InvitationService) ExpireOld(ctx context.Context) (int64, error) {
	expired, err := s.invites.ExpirePending(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	if expired > 0 {
		metrics.InvitationsTotal.WithLabelValues("expired").Add(float64(expired))
	}
	return expired, nil
}

func newInvitationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating invitation token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
