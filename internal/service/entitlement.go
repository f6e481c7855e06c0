// internal/service/entitlement.go
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

// EntitlementService materializes plan features into per-user feature grants
// and answers access checks against them.
type EntitlementService struct {
	ents        repository.EntitlementRepositoryIface
	assignments repository.LicenseAssignmentRepositoryIface
	subs        repository.SubscriptionRepositoryIface
	plans       repository.SubscriptionPlanRepositoryIface
}

func NewEntitlementService(
	ents repository.EntitlementRepositoryIface,
	assignments repository.LicenseAssignmentRepositoryIface,
	subs repository.SubscriptionRepositoryIface,
	plans repository.SubscriptionPlanRepositoryIface,
) *EntitlementService {
	return &EntitlementService{
		ents:        ents,
		assignments: assignments,
		subs:        subs,
		plans:       plans,
	}
}

// GrantFromAssignment grants the user one entitlement per feature of the
// subscription's plan, expiring with the subscription. Re-granting is
// idempotent.
func (s *EntitlementService) GrantFromAssignment(ctx context.Context, assignment *model.LicenseAssignment) ([]*model.Entitlement, error) {
	sub, err := s.subs.FindByID(ctx, assignment.OrganizationSubscriptionID)
	if err != nil {
		return nil, err
	}

	plan, err := s.plans.FindByID(ctx, sub.SubscriptionPlanID)
	if err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			return nil, domain.ErrPlanFeaturesNotFound
		}
		return nil, fmt.Errorf("looking up plan features: %w", err)
	}
	if len(plan.Features) == 0 {
		return nil, domain.ErrPlanFeaturesNotFound
	}

	grantedBy := assignment.AssignedByID
	granted := make([]*model.Entitlement, 0, len(plan.Features))
	for _, feature := range plan.Features {
		expires := sub.EndDate
		ent := &model.Entitlement{
			UserID:                     assignment.UserID,
			FeatureKey:                 feature,
			IsActive:                   true,
			GrantedByOrganization:      true,
			OrganizationSubscriptionID: &sub.ID,
			GrantedByID:                &grantedBy,
			GrantedAt:                  assignment.AssignedAt,
			ExpiresAt:                  &expires,
		}
		if err := s.ents.Upsert(ctx, ent); err != nil {
			return nil, fmt.Errorf("granting %q: %w", feature, err)
		}
		granted = append(granted, ent)
	}

	metrics.EntitlementGrantsTotal.WithLabelValues("grant").Add(float64(len(granted)))
	return granted, nil
}

// RevokeFromAssignment deactivates every entitlement the subscription granted
// the user. Returns how many grants were revoked.
func (s *EntitlementService) RevokeFromAssignment(ctx context.Context, userID, subscriptionID uuid.UUID) (int64, error) {
	revoked, err := s.ents.RevokeByUserAndSubscription(ctx, userID, subscriptionID)
	if err != nil {
		return 0, err
	}
	metrics.EntitlementGrantsTotal.WithLabelValues("revoke").Add(float64(revoked))
	return revoked, nil
}

// AccessResult answers whether a user may use a feature and where the grant
// came from.
type AccessResult struct {
	HasAccess bool   `json:"has_access"`
	Source    string `json:"source"`
}

// HasAccess checks a user's standing for a feature. Organization grants are
// consulted before personal ones; any unexpected storage failure denies
// access.
func (s *EntitlementService) HasAccess(ctx context.Context, userID uuid.UUID, featureKey string) AccessResult {
	if _, err := s.ents.FindActiveByUserAndFeature(ctx, userID, featureKey, true); err == nil {
		return AccessResult{HasAccess: true, Source: "organization"}
	} else if !errors.Is(err, domain.ErrNotFound) {
		slog.Warn("access check failed, denying", "user_id", userID, "feature", featureKey, "error", err)
		return AccessResult{HasAccess: false, Source: "none"}
	}

	if _, err := s.ents.FindActiveByUserAndFeature(ctx, userID, featureKey, false); err == nil {
		return AccessResult{HasAccess: true, Source: "personal"}
	} else if !errors.Is(err, domain.ErrNotFound) {
		slog.Warn("access check failed, denying", "user_id", userID, "feature", featureKey, "error", err)
	}
	return AccessResult{HasAccess: false, Source: "none"}
}

// UserEntitlements splits a user's active grants by origin.
type UserEntitlements struct {
	OrganizationProvided []*model.Entitlement `json:"organization_provided"`
	SelfPurchased        []*model.Entitlement `json:"self_purchased"`
}

func (s *EntitlementService) ForUser(ctx context.Context, userID uuid.UUID) (*UserEntitlements, error) {
	ents, err := s.ents.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &UserEntitlements{
		OrganizationProvided: []*model.Entitlement{},
		SelfPurchased:        []*model.Entitlement{},
	}
	for _, ent := range ents {
		if ent.GrantedByOrganization {
			result.OrganizationProvided = append(result.OrganizationProvided, ent)
		} else {
			result.SelfPurchased = append(result.SelfPurchased, ent)
		}
	}
	return result, nil
}

// SyncSubscription re-derives entitlements for every active assignment on the
// subscription, typically after a plan upgrade changes the feature set.
// Per-user failures are logged and skipped.
func (s *EntitlementService) SyncSubscription(ctx context.Context, subscriptionID uuid.UUID) (int, error) {
	assignments, err := s.assignments.FindActiveBySubscription(ctx, subscriptionID)
	if err != nil {
		return 0, err
	}

	synced := 0
	for _, assignment := range assignments {
		if _, err := s.ents.RevokeByUserAndSubscription(ctx, assignment.UserID, subscriptionID); err != nil {
			slog.Warn("entitlement sync: revoke failed", "user_id", assignment.UserID, "error", err)
			continue
		}
		if _, err := s.GrantFromAssignment(ctx, assignment); err != nil {
			slog.Warn("entitlement sync: re-grant failed", "user_id", assignment.UserID, "error", err)
			continue
		}
		synced++
	}
	return synced, nil
}

// BulkGrant grants the given features to each user, collecting per-user
// failures instead of aborting.
func (s *EntitlementService) BulkGrant(ctx context.Context, userIDs []uuid.UUID, featureKeys []string, subscriptionID, grantedByID uuid.UUID) ([]AssignmentFailure, error) {
	sub, err := s.subs.FindByID(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	failed := []AssignmentFailure{}
	for _, userID := range userIDs {
		var userErr error
		for _, feature := range featureKeys {
			expires := sub.EndDate
			ent := &model.Entitlement{
				UserID:                     userID,
				FeatureKey:                 feature,
				IsActive:                   true,
				GrantedByOrganization:      true,
				OrganizationSubscriptionID: &sub.ID,
				GrantedByID:                &grantedByID,
				GrantedAt:                  now,
				ExpiresAt:                  &expires,
			}
			if err := s.ents.Upsert(ctx, ent); err != nil {
				userErr = err
				break
			}
		}
		if userErr != nil {
			failed = append(failed, AssignmentFailure{UserID: userID, Error: userErr.Error()})
			continue
		}
		metrics.EntitlementGrantsTotal.WithLabelValues("grant").Add(float64(len(featureKeys)))
	}
	return failed, nil
}

// BulkRevoke deactivates all grants the subscription gave the listed users.
func (s *EntitlementService) BulkRevoke(ctx context.Context, userIDs []uuid.UUID, subscriptionID uuid.UUID) (int64, error) {
	revoked, err := s.ents.RevokeByUsersAndSubscription(ctx, userIDs, subscriptionID)
	if err != nil {
		return 0, err
	}
	metrics.EntitlementGrantsTotal.WithLabelValues("revoke").Add(float64(revoked))
	return revoked, nil
}

// EntitlementStats summarizes a subscription's active grants.
type EntitlementStats struct {
	TotalMembers       int            `json:"total_members"`
	ActiveEntitlements int            `json:"active_entitlements"`
	FeatureBreakdown   map[string]int `json:"feature_breakdown"`
}

func (s *EntitlementService) Stats(ctx context.Context, subscriptionID uuid.UUID) (*EntitlementStats, error) {
	ents, err := s.ents.FindActiveBySubscription(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}

	stats := &EntitlementStats{
		ActiveEntitlements: len(ents),
		FeatureBreakdown:   map[string]int{},
	}
	members := map[uuid.UUID]struct{}{}
	for _, ent := range ents {
		members[ent.UserID] = struct{}{}
		stats.FeatureBreakdown[ent.FeatureKey]++
	}
	stats.TotalMembers = len(members)
	return stats, nil
}
