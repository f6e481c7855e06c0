// internal/handler/invitation.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/campushq/licensing/internal/domain"
	"github.com/campushq/licensing/internal/middleware"
	"github.com/campushq/licensing/internal/model"
	"github.com/campushq/licensing/internal/repository"
	"github.com/campushq/licensing/internal/service"
	"github.com/go-chi/chi/v5"
)

type InvitationHandler struct {
	service *service.InvitationService
}

func NewInvitationHandler(service *service.InvitationService) *InvitationHandler {
	return &InvitationHandler{
		service: service,
	}
}

// Invite issues a single invitation
func (h *InvitationHandler) Invite(w http.ResponseWriter, r *http.Request) {
	var input service.InviteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	inv, err := h.service.Invite(r.Context(), middleware.ActorID(r.Context()), input)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, inv)
}

// BulkInviteRequest invites several addresses with shared settings
type BulkInviteRequest struct {
	service.InviteInput
	Emails []string `json:"emails"`
}

// BulkInvite issues invitations address by address
func (h *InvitationHandler) BulkInvite(w http.ResponseWriter, r *http.Request) {
	var req BulkInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := h.service.BulkInvite(r.Context(), middleware.ActorID(r.Context()), req.InviteInput, req.Emails)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// Resend rotates a pending invitation's token
func (h *InvitationHandler) Resend(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	inv, err := h.service.Resend(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, inv)
}

// Cancel withdraws a pending invitation
func (h *InvitationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Cancel(r.Context(), id); err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// Accept redeems an invitation token for the authenticated user
func (h *InvitationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	result, err := h.service.Accept(r.Context(), token, middleware.ActorID(r.Context()))
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// Preview returns the invitation behind a token without redeeming it
func (h *InvitationHandler) Preview(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	inv, err := h.service.ByToken(r.Context(), token)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if inv == nil {
		respondWithError(w, http.StatusNotFound, "Invitation not found")
		return
	}

	respondWithJSON(w, http.StatusOK, inv)
}

// List returns an organization's invitations, optionally filtered
func (h *InvitationHandler) List(w http.ResponseWriter, r *http.Request) {
	orgID, ok := urlUUID(w, r, "orgID")
	if !ok {
		return
	}

	filter := repository.InvitationFilter{
		Status:     model.InvitationStatus(r.URL.Query().Get("status")),
		MemberType: model.MemberType(r.URL.Query().Get("member_type")),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}

	invitations, err := h.service.List(r.Context(), orgID, filter)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, invitations)
}

// Members lists the organization's roster
func (h *InvitationHandler) Members(w http.ResponseWriter, r *http.Request) {
	orgID, ok := urlUUID(w, r, "orgID")
	if !ok {
		return
	}

	members, err := h.service.Members(r.Context(), orgID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, members)
}

// Stats summarizes an organization's invitations
func (h *InvitationHandler) Stats(w http.ResponseWriter, r *http.Request) {
	orgID, ok := urlUUID(w, r, "orgID")
	if !ok {
		return
	}

	stats, err := h.service.Stats(r.Context(), orgID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, stats)
}

func (h *InvitationHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, domain.ErrDuplicatePendingInvitation):
		respondWithError(w, http.StatusConflict, "A pending invitation already exists for this email")
	case errors.Is(err, domain.ErrInvitationNotFound):
		respondWithError(w, http.StatusNotFound, "Invitation not found")
	case errors.Is(err, domain.ErrInvitationNotPending):
		respondWithError(w, http.StatusConflict, "Invitation is no longer pending")
	case errors.Is(err, domain.ErrInvitationInvalid):
		respondWithError(w, http.StatusNotFound, "Invalid invitation token")
	case errors.Is(err, domain.ErrInvitationExpired):
		respondWithError(w, http.StatusGone, "Invitation has expired")
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
