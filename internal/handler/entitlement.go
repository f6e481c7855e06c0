// internal/handler/entitlement.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campushq/licensing/internal/domain"
	"github.com/campushq/licensing/internal/middleware"
	"github.com/campushq/licensing/internal/service"
	"github.com/google/uuid"
)

type EntitlementHandler struct {
	service *service.EntitlementService
}

func NewEntitlementHandler(service *service.EntitlementService) *EntitlementHandler {
	return &EntitlementHandler{
		service: service,
	}
}

// CheckAccess answers whether a user may use a feature
func (h *EntitlementHandler) CheckAccess(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlUUID(w, r, "userID")
	if !ok {
		return
	}
	feature := r.URL.Query().Get("feature")
	if feature == "" {
		respondWithError(w, http.StatusBadRequest, "Missing feature key")
		return
	}

	respondWithJSON(w, http.StatusOK, h.service.HasAccess(r.Context(), userID, feature))
}

// UserEntitlements lists a user's active grants split by origin
func (h *EntitlementHandler) UserEntitlements(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlUUID(w, r, "userID")
	if !ok {
		return
	}

	ents, err := h.service.ForUser(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ents)
}

// Sync re-derives entitlements for a subscription's active assignments
func (h *EntitlementHandler) Sync(w http.ResponseWriter, r *http.Request) {
	subID, ok := urlUUID(w, r, "subscriptionID")
	if !ok {
		return
	}

	synced, err := h.service.SyncSubscription(r.Context(), subID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]int{"synced": synced})
}

// BulkGrantRequest grants features to several users at once
type BulkGrantRequest struct {
	UserIDs        []string `json:"user_ids"`
	FeatureKeys    []string `json:"feature_keys"`
	SubscriptionID string   `json:"subscription_id"`
}

// BulkGrant grants the named features to each user
func (h *EntitlementHandler) BulkGrant(w http.ResponseWriter, r *http.Request) {
	var req BulkGrantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	subID, ok := parseBodyUUID(w, req.SubscriptionID, "subscription ID")
	if !ok {
		return
	}
	userIDs, ok := parseUUIDList(w, req.UserIDs)
	if !ok {
		return
	}

	failed, err := h.service.BulkGrant(r.Context(), userIDs, req.FeatureKeys, subID, middleware.ActorID(r.Context()))
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"granted": len(userIDs) - len(failed),
		"failed":  failed,
	})
}

// BulkRevokeRequest revokes a subscription's grants from several users
type BulkRevokeRequest struct {
	UserIDs        []string `json:"user_ids"`
	SubscriptionID string   `json:"subscription_id"`
}

// BulkRevoke deactivates subscription grants for the listed users
func (h *EntitlementHandler) BulkRevoke(w http.ResponseWriter, r *http.Request) {
	var req BulkRevokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	subID, ok := parseBodyUUID(w, req.SubscriptionID, "subscription ID")
	if !ok {
		return
	}
	userIDs, ok := parseUUIDList(w, req.UserIDs)
	if !ok {
		return
	}

	revoked, err := h.service.BulkRevoke(r.Context(), userIDs, subID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]int64{"revoked": revoked})
}

// Stats summarizes a subscription's active grants
func (h *EntitlementHandler) Stats(w http.ResponseWriter, r *http.Request) {
	subID, ok := urlUUID(w, r, "subscriptionID")
	if !ok {
		return
	}

	stats, err := h.service.Stats(r.Context(), subID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, stats)
}

func parseUUIDList(w http.ResponseWriter, raw []string) ([]uuid.UUID, bool) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid user ID: "+s)
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

func (h *EntitlementHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, domain.ErrSubscriptionNotFound):
		respondWithError(w, http.StatusNotFound, "Subscription not found")
	case errors.Is(err, domain.ErrPlanFeaturesNotFound):
		respondWithError(w, http.StatusUnprocessableEntity, "Plan has no features to grant")
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Not found")
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
