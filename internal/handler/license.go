// internal/handler/license.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campushq/licensing/internal/domain"
	"github.com/campushq/licensing/internal/middleware"
	"github.com/campushq/licensing/internal/model"
	"github.com/campushq/licensing/internal/service"
	"github.com/google/uuid"
)

type LicenseHandler struct {
	license      *service.LicenseService
	entitlements *service.EntitlementService
}

func NewLicenseHandler(license *service.LicenseService, entitlements *service.EntitlementService) *LicenseHandler {
	return &LicenseHandler{
		license:      license,
		entitlements: entitlements,
	}
}

// CreatePool carves a seat block out of a subscription
func (h *LicenseHandler) CreatePool(w http.ResponseWriter, r *http.Request) {
	var input service.CreatePoolInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	pool, err := h.license.CreatePool(r.Context(), middleware.ActorID(r.Context()), input)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, pool)
}

// ListPools returns an organization's license pools
func (h *LicenseHandler) ListPools(w http.ResponseWriter, r *http.Request) {
	orgID, ok := urlUUID(w, r, "orgID")
	if !ok {
		return
	}
	orgType := model.OrganizationType(r.URL.Query().Get("organization_type"))

	pools, err := h.license.Pools(r.Context(), orgID, orgType)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, pools)
}

// AssignRequest binds one user to a pool seat
type AssignRequest struct {
	UserID string `json:"user_id"`
}

// Assign draws a seat from a pool for one user and grants the plan's
// entitlements on success
func (h *LicenseHandler) Assign(w http.ResponseWriter, r *http.Request) {
	poolID, ok := urlUUID(w, r, "poolID")
	if !ok {
		return
	}

	var req AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	userID, ok := parseBodyUUID(w, req.UserID, "user ID")
	if !ok {
		return
	}

	assignment, err := h.license.Assign(r.Context(), poolID, userID, middleware.ActorID(r.Context()))
	if err != nil {
		h.handleError(w, err)
		return
	}

	if _, err := h.entitlements.GrantFromAssignment(r.Context(), assignment); err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, assignment)
}

// UnassignRequest releases a user's seat on a subscription
type UnassignRequest struct {
	UserID         string `json:"user_id"`
	SubscriptionID string `json:"subscription_id"`
	Reason         string `json:"reason"`
}

// Unassign releases the user's seat and revokes the entitlements it carried
func (h *LicenseHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	var req UnassignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	userID, ok := parseBodyUUID(w, req.UserID, "user ID")
	if !ok {
		return
	}
	subID, ok := parseBodyUUID(w, req.SubscriptionID, "subscription ID")
	if !ok {
		return
	}

	if err := h.license.Unassign(r.Context(), userID, subID, middleware.ActorID(r.Context()), req.Reason); err != nil {
		h.handleError(w, err)
		return
	}

	if _, err := h.entitlements.RevokeFromAssignment(r.Context(), userID, subID); err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// TransferRequest moves a seat between two users
type TransferRequest struct {
	FromUserID     string `json:"from_user_id"`
	ToUserID       string `json:"to_user_id"`
	SubscriptionID string `json:"subscription_id"`
}

// Transfer closes the source assignment, opens a linked replacement, and
// moves the entitlements across
func (h *LicenseHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	fromID, ok := parseBodyUUID(w, req.FromUserID, "from user ID")
	if !ok {
		return
	}
	toID, ok := parseBodyUUID(w, req.ToUserID, "to user ID")
	if !ok {
		return
	}
	subID, ok := parseBodyUUID(w, req.SubscriptionID, "subscription ID")
	if !ok {
		return
	}

	replacement, err := h.license.Transfer(r.Context(), fromID, toID, subID, middleware.ActorID(r.Context()))
	if err != nil {
		h.handleError(w, err)
		return
	}

	if _, err := h.entitlements.RevokeFromAssignment(r.Context(), fromID, subID); err != nil {
		h.handleError(w, err)
		return
	}
	if _, err := h.entitlements.GrantFromAssignment(r.Context(), replacement); err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, replacement)
}

// BulkAssignRequest assigns seats to several users at once
type BulkAssignRequest struct {
	UserIDs []string `json:"user_ids"`
}

// BulkAssign assigns seats user by user, reporting per-user failures
func (h *LicenseHandler) BulkAssign(w http.ResponseWriter, r *http.Request) {
	poolID, ok := urlUUID(w, r, "poolID")
	if !ok {
		return
	}

	var req BulkAssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userIDs := make([]uuid.UUID, 0, len(req.UserIDs))
	for _, raw := range req.UserIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid user ID: "+raw)
			return
		}
		userIDs = append(userIDs, id)
	}

	result, err := h.license.BulkAssign(r.Context(), poolID, userIDs, middleware.ActorID(r.Context()))
	if err != nil {
		h.handleError(w, err)
		return
	}

	for _, assignment := range result.Successful {
		if _, err := h.entitlements.GrantFromAssignment(r.Context(), assignment); err != nil {
			result.Failed = append(result.Failed, service.AssignmentFailure{
				UserID: assignment.UserID,
				Error:  err.Error(),
			})
		}
	}

	respondWithJSON(w, http.StatusOK, result)
}

// AvailableSeats reports the assignable seats for a member type
func (h *LicenseHandler) AvailableSeats(w http.ResponseWriter, r *http.Request) {
	orgID, ok := urlUUID(w, r, "orgID")
	if !ok {
		return
	}
	memberType := model.MemberType(r.URL.Query().Get("member_type"))
	if memberType == "" {
		memberType = model.MemberTypeStudent
	}

	total, err := h.license.AvailableSeats(r.Context(), orgID, memberType)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]int{"available_seats": total})
}

// UpdateAllocationRequest resizes a pool
type UpdateAllocationRequest struct {
	AllocatedSeats int `json:"allocated_seats"`
}

// UpdateAllocation resizes a pool's seat allocation
func (h *LicenseHandler) UpdateAllocation(w http.ResponseWriter, r *http.Request) {
	poolID, ok := urlUUID(w, r, "poolID")
	if !ok {
		return
	}

	var req UpdateAllocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	pool, err := h.license.UpdatePoolAllocation(r.Context(), poolID, req.AllocatedSeats)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, pool)
}

// AutoAssignRequest configures automatic assignment for new members
type AutoAssignRequest struct {
	Enabled  bool          `json:"enabled"`
	Criteria model.JSONMap `json:"criteria,omitempty"`
}

// ConfigureAutoAssign toggles auto-assignment on a pool
func (h *LicenseHandler) ConfigureAutoAssign(w http.ResponseWriter, r *http.Request) {
	poolID, ok := urlUUID(w, r, "poolID")
	if !ok {
		return
	}

	var req AutoAssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	pool, err := h.license.ConfigureAutoAssignment(r.Context(), poolID, req.Enabled, req.Criteria)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, pool)
}

// UserAssignments lists a user's assignment history
func (h *LicenseHandler) UserAssignments(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlUUID(w, r, "userID")
	if !ok {
		return
	}

	assignments, err := h.license.UserAssignments(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, assignments)
}

// PoolAssignments lists a pool's assignments
func (h *LicenseHandler) PoolAssignments(w http.ResponseWriter, r *http.Request) {
	poolID, ok := urlUUID(w, r, "poolID")
	if !ok {
		return
	}

	assignments, err := h.license.PoolAssignments(r.Context(), poolID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, assignments)
}

func (h *LicenseHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, domain.ErrPoolNotFound):
		respondWithError(w, http.StatusNotFound, "License pool not found")
	case errors.Is(err, domain.ErrSubscriptionNotFound):
		respondWithError(w, http.StatusNotFound, "Subscription not found")
	case errors.Is(err, domain.ErrAssignmentNotFound), errors.Is(err, domain.ErrNoActiveAssignment):
		respondWithError(w, http.StatusNotFound, "Assignment not found")
	case errors.Is(err, domain.ErrAlreadyAssigned):
		respondWithError(w, http.StatusConflict, "User already holds a seat on this subscription")
	case errors.Is(err, domain.ErrNoAvailableSeats):
		respondWithError(w, http.StatusConflict, "No seats available in this pool")
	case errors.Is(err, domain.ErrInsufficientSeats), errors.Is(err, domain.ErrCannotReduceAllocation):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrPlanFeaturesNotFound):
		respondWithError(w, http.StatusUnprocessableEntity, "Plan has no features to grant")
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
