// internal/handler/billing.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/campushq/licensing/internal/domain"
	"github.com/campushq/licensing/internal/middleware"
	"github.com/campushq/licensing/internal/model"
	"github.com/campushq/licensing/internal/service"
	"github.com/go-chi/chi/v5"
)

type BillingHandler struct {
	service *service.BillingService
}

func NewBillingHandler(service *service.BillingService) *BillingHandler {
	return &BillingHandler{
		service: service,
	}
}

// Dashboard returns the full billing overview for an organization
func (h *BillingHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	orgID, ok := urlUUID(w, r, "orgID")
	if !ok {
		return
	}
	orgType := model.OrganizationType(r.URL.Query().Get("organization_type"))

	dash, err := h.service.Dashboard(r.Context(), orgID, orgType)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, dash)
}

// GenerateInvoiceRequest supplies the descriptive invoice context
type GenerateInvoiceRequest struct {
	service.InvoiceDetails
}

// GenerateInvoice renders a transaction into an itemized invoice
func (h *BillingHandler) GenerateInvoice(w http.ResponseWriter, r *http.Request) {
	txnID, ok := urlUUID(w, r, "transactionID")
	if !ok {
		return
	}

	var req GenerateInvoiceRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request payload")
			return
		}
	}

	invoice, err := h.service.GenerateInvoice(r.Context(), txnID, req.InvoiceDetails)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, invoice)
}

// InvoiceHistory lists an organization's settled payments
func (h *BillingHandler) InvoiceHistory(w http.ResponseWriter, r *http.Request) {
	orgID, ok := urlUUID(w, r, "orgID")
	if !ok {
		return
	}

	history, err := h.service.InvoiceHistory(r.Context(), orgID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, history)
}

// DownloadInvoice streams the rendered invoice PDF
func (h *BillingHandler) DownloadInvoice(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, "invoiceID")

	pdf, err := h.service.DownloadInvoice(r.Context(), invoiceID, middleware.BearerToken(r.Context()))
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="invoice-`+invoiceID+`.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// ProjectCosts estimates the organization's go-forward monthly spend
func (h *BillingHandler) ProjectCosts(w http.ResponseWriter, r *http.Request) {
	orgID, ok := urlUUID(w, r, "orgID")
	if !ok {
		return
	}
	orgType := model.OrganizationType(r.URL.Query().Get("organization_type"))

	projection, err := h.service.ProjectMonthlyCost(r.Context(), orgID, orgType)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, projection)
}

// SeatAdditionCost quotes the prorated price of expanding a subscription
func (h *BillingHandler) SeatAdditionCost(w http.ResponseWriter, r *http.Request) {
	subID, ok := urlUUID(w, r, "subscriptionID")
	if !ok {
		return
	}

	additional, err := strconv.Atoi(r.URL.Query().Get("additional_seats"))
	if err != nil || additional < 1 {
		respondWithError(w, http.StatusBadRequest, "Invalid additional_seats")
		return
	}

	quote, err := h.service.SeatAdditionCost(r.Context(), subID, additional)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, quote)
}

// BillingContacts returns who to reach about an organization's invoices
func (h *BillingHandler) BillingContacts(w http.ResponseWriter, r *http.Request) {
	orgID, ok := urlUUID(w, r, "orgID")
	if !ok {
		return
	}

	contacts, err := h.service.BillingContacts(r.Context(), orgID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, contacts)
}

func (h *BillingHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, domain.ErrTransactionNotFound):
		respondWithError(w, http.StatusNotFound, "Transaction not found")
	case errors.Is(err, domain.ErrSubscriptionNotFound):
		respondWithError(w, http.StatusNotFound, "Subscription not found")
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
