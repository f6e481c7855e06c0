// internal/handler/subscription.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campushq/licensing/internal/domain"
	"github.com/campushq/licensing/internal/middleware"
	"github.com/campushq/licensing/internal/model"
	"github.com/campushq/licensing/internal/service"
)

type SubscriptionHandler struct {
	service *service.SubscriptionService
}

func NewSubscriptionHandler(service *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		service: service,
	}
}

// Purchase buys a seat block for an organization
func (h *SubscriptionHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	var input service.PurchaseSubscriptionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	sub, err := h.service.Purchase(r.Context(), middleware.ActorID(r.Context()), input)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, sub)
}

// ListPlans returns the purchasable plan catalog
func (h *SubscriptionHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.service.Plans(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, plans)
}

// List returns an organization's subscriptions
func (h *SubscriptionHandler) List(w http.ResponseWriter, r *http.Request) {
	orgID, ok := urlUUID(w, r, "orgID")
	if !ok {
		return
	}
	orgType := model.OrganizationType(r.URL.Query().Get("organization_type"))

	subs, err := h.service.ListByOrganization(r.Context(), orgID, orgType)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, subs)
}

// Get returns one subscription
func (h *SubscriptionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	sub, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, sub)
}

// UpdateSeatsRequest resizes a subscription's seat block
type UpdateSeatsRequest struct {
	SeatCount int `json:"seat_count"`
}

// UpdateSeats resizes the subscription
func (h *SubscriptionHandler) UpdateSeats(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateSeatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	sub, err := h.service.UpdateSeatCount(r.Context(), id, req.SeatCount)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, sub)
}

// CancelRequest carries the cancellation reason
type CancelRequest struct {
	Reason string `json:"reason"`
}

// Cancel cancels the subscription while preserving its history
func (h *SubscriptionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	var req CancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.service.Cancel(r.Context(), id, req.Reason); err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// Renew extends the subscription's term
func (h *SubscriptionHandler) Renew(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	var opts service.RenewOptions
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request payload")
			return
		}
	}

	sub, err := h.service.Renew(r.Context(), id, &opts)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, sub)
}

// UpgradeRequest names the plan to move onto
type UpgradeRequest struct {
	PlanID string `json:"plan_id"`
}

// Upgrade moves the subscription to a new plan
func (h *SubscriptionHandler) Upgrade(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpgradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	planID, ok := parseBodyUUID(w, req.PlanID, "plan ID")
	if !ok {
		return
	}

	sub, err := h.service.Upgrade(r.Context(), id, planID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, sub)
}

func (h *SubscriptionHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, domain.ErrPlanNotFound):
		respondWithError(w, http.StatusNotFound, "Plan not found")
	case errors.Is(err, domain.ErrSubscriptionNotFound):
		respondWithError(w, http.StatusNotFound, "Subscription not found")
	case errors.Is(err, domain.ErrCannotReduceSeats):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
