// internal/service/billing.go
package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/campushq/licensing/internal/domain"
	"github.com/campushq/licensing/internal/model"
	"github.com/campushq/licensing/internal/pdfrender"
	"github.com/campushq/licensing/internal/pricing"
	"github.com/campushq/licensing/internal/repository"
	"github.com/google/uuid"
)

const paymentHistoryLimit = 20

// BillingService builds the organization's financial views: the billing
// dashboard, invoices, cost projections, and seat-expansion quotes.
type BillingService struct {
	subs      repository.SubscriptionRepositoryIface
	plans     repository.SubscriptionPlanRepositoryIface
	txns      repository.PaymentTransactionRepositoryIface
	addons    repository.AddonOrderRepositoryIface
	orgs      repository.OrganizationRepositoryIface
	pdf       *pdfrender.Client
	addonRate float64
}

func NewBillingService(
	subs repository.SubscriptionRepositoryIface,
	plans repository.SubscriptionPlanRepositoryIface,
	txns repository.PaymentTransactionRepositoryIface,
	addons repository.AddonOrderRepositoryIface,
	orgs repository.OrganizationRepositoryIface,
	pdf *pdfrender.Client,
	addonRatePerMember float64,
) *BillingService {
	return &BillingService{
		subs:      subs,
		plans:     plans,
		txns:      txns,
		addons:    addons,
		orgs:      orgs,
		pdf:       pdf,
		addonRate: addonRatePerMember,
	}
}

// SubscriptionSummary is one subscription's line on the dashboard.
type SubscriptionSummary struct {
	ID             uuid.UUID                `json:"id"`
	PlanName       string                   `json:"plan_name"`
	Status         model.SubscriptionStatus `json:"status"`
	TotalSeats     int                      `json:"total_seats"`
	AssignedSeats  int                      `json:"assigned_seats"`
	AvailableSeats int                      `json:"available_seats"`
	Utilization    int                      `json:"utilization"`
	FinalAmount    float64                  `json:"final_amount"`
	BillingCycle   model.BillingCycle       `json:"billing_cycle"`
	EndDate        time.Time                `json:"end_date"`
	AutoRenew      bool                     `json:"auto_renew"`
}

// AddonSummary aggregates pending add-on orders for one feature.
type AddonSummary struct {
	FeatureKey  string  `json:"feature_key"`
	OrderCount  int     `json:"order_count"`
	MemberCount int     `json:"member_count"`
	TotalAmount float64 `json:"total_amount"`
}

// CurrentPeriod totals payments settled in the current calendar month.
type CurrentPeriod struct {
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	AmountSpent float64   `json:"amount_spent"`
	Payments    int       `json:"payments"`
}

// Dashboard is the full billing overview for one organization.
type Dashboard struct {
	Subscriptions      []SubscriptionSummary       `json:"subscriptions"`
	TotalSeats         int                         `json:"total_seats"`
	AssignedSeats      int                         `json:"assigned_seats"`
	OverallUtilization int                         `json:"overall_utilization"`
	TotalMonthlySpend  float64                     `json:"total_monthly_spend"`
	CurrentPeriod      CurrentPeriod               `json:"current_period"`
	PaymentHistory     []*model.PaymentTransaction `json:"payment_history"`
	PendingAddons      []AddonSummary              `json:"pending_addons"`
	UpcomingRenewals   []SubscriptionSummary       `json:"upcoming_renewals"`
}

// Dashboard assembles the billing overview. An organization with no activity
// gets a fully zeroed dashboard, not an error.
func (s *BillingService) Dashboard(ctx context.Context, orgID uuid.UUID, orgType model.OrganizationType) (*Dashboard, error) {
	subs, err := s.subs.FindByOrganizationAndStatuses(ctx, orgID, orgType,
		[]model.SubscriptionStatus{model.SubscriptionActive, model.SubscriptionCancelled})
	if err != nil {
		return nil, fmt.Errorf("loading subscriptions: %w", err)
	}

	dash := &Dashboard{
		Subscriptions:    []SubscriptionSummary{},
		PaymentHistory:   []*model.PaymentTransaction{},
		PendingAddons:    []AddonSummary{},
		UpcomingRenewals: []SubscriptionSummary{},
	}

	now := time.Now().UTC()
	renewalHorizon := now.Add(30 * 24 * time.Hour)
	for _, sub := range subs {
		summary := summarize(sub)
		dash.Subscriptions = append(dash.Subscriptions, summary)

		if sub.Status != model.SubscriptionActive {
			continue
		}
		dash.TotalSeats += sub.TotalSeats
		dash.AssignedSeats += sub.AssignedSeats
		dash.TotalMonthlySpend += monthlyShare(sub)
		if sub.EndDate.After(now) && !sub.EndDate.After(renewalHorizon) {
			dash.UpcomingRenewals = append(dash.UpcomingRenewals, summary)
		}
	}
	if dash.TotalSeats > 0 {
		dash.OverallUtilization = int(math.Round(float64(dash.AssignedSeats) / float64(dash.TotalSeats) * 100))
	}
	dash.TotalMonthlySpend = round2(dash.TotalMonthlySpend)

	history, err := s.txns.FindByOrganization(ctx, orgID, paymentHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("loading payment history: %w", err)
	}
	dash.PaymentHistory = history

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)
	dash.CurrentPeriod = CurrentPeriod{Start: monthStart, End: monthEnd}
	for _, txn := range history {
		if txn.Status == model.PaymentSuccess && !txn.CreatedAt.Before(monthStart) && txn.CreatedAt.Before(monthEnd) {
			dash.CurrentPeriod.AmountSpent += txn.Amount
			dash.CurrentPeriod.Payments++
		}
	}
	dash.CurrentPeriod.AmountSpent = round2(dash.CurrentPeriod.AmountSpent)

	orders, err := s.addons.FindByOrganizationAndStatus(ctx, orgID, model.AddonOrderPending)
	if err != nil {
		return nil, fmt.Errorf("loading addon orders: %w", err)
	}
	byFeature := map[string]*AddonSummary{}
	order := []string{}
	for _, o := range orders {
		summary, ok := byFeature[o.AddonFeatureKey]
		if !ok {
			summary = &AddonSummary{FeatureKey: o.AddonFeatureKey}
			byFeature[o.AddonFeatureKey] = summary
			order = append(order, o.AddonFeatureKey)
		}
		summary.OrderCount++
		summary.MemberCount += o.MemberCount()
		summary.TotalAmount += o.Amount
	}
	for _, key := range order {
		summary := byFeature[key]
		summary.TotalAmount = round2(summary.TotalAmount)
		dash.PendingAddons = append(dash.PendingAddons, *summary)
	}

	return dash, nil
}

// InvoiceLineItem is one priced row on an invoice. Discounts appear as
// negative amounts.
type InvoiceLineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

type Invoice struct {
	Number           string            `json:"number"`
	TransactionID    uuid.UUID         `json:"transaction_id"`
	OrganizationID   uuid.UUID         `json:"organization_id"`
	IssuedAt         time.Time         `json:"issued_at"`
	Status           string            `json:"status"`
	LineItems        []InvoiceLineItem `json:"line_items"`
	Subtotal         float64           `json:"subtotal"`
	TaxAmount        float64           `json:"tax_amount"`
	TotalAmount      float64           `json:"total_amount"`
	Currency         string            `json:"currency"`
	PaymentMethod    string            `json:"payment_method"`
	GatewayPaymentID string            `json:"gateway_payment_id"`
}

// InvoiceDetails supplies the descriptive context a bare transaction row
// lacks.
type InvoiceDetails struct {
	PlanName           string  `json:"plan_name"`
	SeatCount          int     `json:"seat_count"`
	PricePerSeat       float64 `json:"price_per_seat"`
	DiscountPercentage int     `json:"discount_percentage"`
	DiscountAmount     float64 `json:"discount_amount"`
}

// GenerateInvoice renders a transaction into an itemized invoice. The tax
// line is extracted from the settled amount, which already includes it.
func (s *BillingService) GenerateInvoice(ctx context.Context, transactionID uuid.UUID, details InvoiceDetails) (*Invoice, error) {
	txn, err := s.txns.FindByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	taxAmount := round2(txn.Amount * pricing.TaxRate / (1 + pricing.TaxRate))
	preTax := round2(txn.Amount - taxAmount)

	seats := details.SeatCount
	if seats == 0 {
		seats = txn.SeatCount
	}
	if seats == 0 {
		seats = 1
	}
	unit := details.PricePerSeat
	if unit == 0 {
		unit = round2(preTax / float64(seats))
	}

	items := []InvoiceLineItem{
		{
			Description: fmt.Sprintf("%s (%d seats)", orDefault(details.PlanName, "Subscription"), seats),
			Quantity:    seats,
			UnitPrice:   unit,
			Amount:      round2(preTax + details.DiscountAmount),
		},
	}
	if details.DiscountAmount > 0 {
		items = append(items, InvoiceLineItem{
			Description: fmt.Sprintf("Volume discount (%d%%)", details.DiscountPercentage),
			Quantity:    1,
			UnitPrice:   -details.DiscountAmount,
			Amount:      -details.DiscountAmount,
		})
	}
	items = append(items, InvoiceLineItem{
		Description: "GST (18%)",
		Quantity:    1,
		UnitPrice:   taxAmount,
		Amount:      taxAmount,
	})

	status := "unpaid"
	if txn.Status == model.PaymentSuccess {
		status = "paid"
	}

	return &Invoice{
		Number:           invoiceNumber(),
		TransactionID:    txn.ID,
		OrganizationID:   txn.OrganizationID,
		IssuedAt:         txn.CreatedAt,
		Status:           status,
		LineItems:        items,
		Subtotal:         preTax,
		TaxAmount:        taxAmount,
		TotalAmount:      txn.Amount,
		Currency:         txn.Currency,
		PaymentMethod:    txn.PaymentMethod,
		GatewayPaymentID: txn.GatewayPaymentID,
	}, nil
}

// InvoiceHistory lists an organization's settled payments.
func (s *BillingService) InvoiceHistory(ctx context.Context, orgID uuid.UUID) ([]*model.PaymentTransaction, error) {
	return s.txns.FindSuccessfulByOrganization(ctx, orgID, 0)
}

// DownloadInvoice fetches the rendered PDF for an invoice from the render
// service, forwarding the caller's credentials.
func (s *BillingService) DownloadInvoice(ctx context.Context, invoiceID string, bearerToken string) ([]byte, error) {
	if bearerToken == "" {
		return nil, domain.ErrNotAuthenticated
	}
	return s.pdf.Render(ctx, invoiceID, bearerToken)
}

// CostBreakdown splits a projection into its components.
type CostBreakdown struct {
	Subscriptions float64 `json:"subscriptions"`
	Addons        float64 `json:"addons"`
	Taxes         float64 `json:"taxes"`
}

type CostProjection struct {
	CurrentMonthlyCost   float64       `json:"current_monthly_cost"`
	ProjectedMonthlyCost float64       `json:"projected_monthly_cost"`
	ProjectedAnnualCost  float64       `json:"projected_annual_cost"`
	Breakdown            CostBreakdown `json:"breakdown"`
}

// ProjectMonthlyCost estimates the organization's go-forward monthly spend:
// active subscriptions normalized to a monthly share, plus per-member add-on
// charges, plus tax on the pre-tax total.
func (s *BillingService) ProjectMonthlyCost(ctx context.Context, orgID uuid.UUID, orgType model.OrganizationType) (*CostProjection, error) {
	subs, err := s.subs.FindByOrganizationAndStatuses(ctx, orgID, orgType,
		[]model.SubscriptionStatus{model.SubscriptionActive})
	if err != nil {
		return nil, fmt.Errorf("loading subscriptions: %w", err)
	}

	var subscriptionCost float64
	for _, sub := range subs {
		subscriptionCost += monthlyShare(sub)
	}

	orders, err := s.addons.FindByOrganizationAndStatus(ctx, orgID, model.AddonOrderCompleted)
	if err != nil {
		return nil, fmt.Errorf("loading addon orders: %w", err)
	}
	var addonCost float64
	for _, order := range orders {
		addonCost += float64(order.MemberCount()) * s.addonRate
	}

	// Subscription amounts already carry tax; only the addon surcharge does
	// not. Back the pre-tax base out before applying the rate uniformly.
	preTaxSubs := subscriptionCost / (1 + pricing.TaxRate)
	taxes := (preTaxSubs + addonCost) * pricing.TaxRate

	monthly := preTaxSubs + addonCost + taxes
	projection := &CostProjection{
		CurrentMonthlyCost:   round2(subscriptionCost),
		ProjectedMonthlyCost: round2(monthly),
		ProjectedAnnualCost:  round2(monthly * 12),
		Breakdown: CostBreakdown{
			Subscriptions: round2(preTaxSubs),
			Addons:        round2(addonCost),
			Taxes:         round2(taxes),
		},
	}
	return projection, nil
}

// SeatAdditionQuote prices adding seats mid-term. The new seats are charged
// at the discount tier the enlarged block qualifies for, prorated over the
// remaining term.
type SeatAdditionQuote struct {
	SubscriptionID     uuid.UUID `json:"subscription_id"`
	AdditionalSeats    int       `json:"additional_seats"`
	NewTotalSeats      int       `json:"new_total_seats"`
	Subtotal           float64   `json:"subtotal"`
	DiscountPercentage int       `json:"discount_percentage"`
	DiscountAmount     float64   `json:"discount_amount"`
	TaxAmount          float64   `json:"tax_amount"`
	TotalCost          float64   `json:"total_cost"`
	ProratedCost       float64   `json:"prorated_cost"`
	ProratedDays       int       `json:"prorated_days"`
}

// SeatAdditionCost quotes the prorated price of expanding a subscription.
func (s *BillingService) SeatAdditionCost(ctx context.Context, subID uuid.UUID, additionalSeats int) (*SeatAdditionQuote, error) {
	if additionalSeats < 1 {
		return nil, fmt.Errorf("%w: additional seats must be positive", domain.ErrInvalidInput)
	}

	sub, err := s.subs.FindByID(ctx, subID)
	if err != nil {
		return nil, err
	}

	basePrice := sub.PricePerSeat
	if plan, err := s.plans.FindByID(ctx, sub.SubscriptionPlanID); err == nil {
		basePrice = plan.Price
	}

	newTotal := sub.TotalSeats + additionalSeats
	discountPct := pricing.VolumeDiscount(newTotal)

	subtotal := basePrice * float64(additionalSeats)
	discountAmount := subtotal * float64(discountPct) / 100
	taxAmount := (subtotal - discountAmount) * pricing.TaxRate
	totalCost := subtotal - discountAmount + taxAmount

	totalDays := int(sub.EndDate.Sub(sub.StartDate).Hours() / 24)
	if totalDays < 1 {
		totalDays = 1
	}
	remainingDays := int(time.Until(sub.EndDate).Hours() / 24)
	if remainingDays < 0 {
		remainingDays = 0
	}
	if remainingDays > totalDays {
		remainingDays = totalDays
	}
	prorated := totalCost / float64(totalDays) * float64(remainingDays)

	return &SeatAdditionQuote{
		SubscriptionID:     sub.ID,
		AdditionalSeats:    additionalSeats,
		NewTotalSeats:      newTotal,
		Subtotal:           round2(subtotal),
		DiscountPercentage: discountPct,
		DiscountAmount:     round2(discountAmount),
		TaxAmount:          round2(taxAmount),
		TotalCost:          round2(totalCost),
		ProratedCost:       round2(prorated),
		ProratedDays:       remainingDays,
	}, nil
}

// BillingContact is who to reach about an organization's invoices.
type BillingContact struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	IsPrimary bool   `json:"is_primary"`
}

// BillingContacts returns an organization's billing contacts. An unknown
// organization yields an empty list, not an error.
func (s *BillingService) BillingContacts(ctx context.Context, orgID uuid.UUID) ([]BillingContact, error) {
	org, err := s.orgs.FindByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, domain.ErrOrganizationNotFound) || errors.Is(err, domain.ErrNotFound) {
			return []BillingContact{}, nil
		}
		return nil, err
	}
	return []BillingContact{
		{
			Name:      org.Name,
			Email:     org.Email,
			Phone:     org.Phone,
			IsPrimary: true,
		},
	}, nil
}

// monthlyShare normalizes a subscription's settled amount to one month:
// terms over 60 days are treated as annual and divided by twelve.
func monthlyShare(sub *model.OrganizationSubscription) float64 {
	if sub.EndDate.Sub(sub.StartDate) > 60*24*time.Hour {
		return sub.FinalAmount / 12
	}
	return sub.FinalAmount
}

func summarize(sub *model.OrganizationSubscription) SubscriptionSummary {
	utilization := 0
	if sub.TotalSeats > 0 {
		utilization = int(math.Round(float64(sub.AssignedSeats) / float64(sub.TotalSeats) * 100))
	}
	return SubscriptionSummary{
		ID:             sub.ID,
		PlanName:       sub.SubscriptionPlan.Name,
		Status:         sub.Status,
		TotalSeats:     sub.TotalSeats,
		AssignedSeats:  sub.AssignedSeats,
		AvailableSeats: sub.AvailableSeats,
		Utilization:    utilization,
		FinalAmount:    sub.FinalAmount,
		BillingCycle:   sub.BillingCycle,
		EndDate:        sub.EndDate,
		AutoRenew:      sub.AutoRenew,
	}
}

func invoiceNumber() string {
	n, err := rand.Int(rand.Reader, big.NewInt(100000))
	if err != nil {
		n = big.NewInt(time.Now().UnixNano() % 100000)
	}
	return fmt.Sprintf("INV-%d-%05d", time.Now().Unix(), n.Int64())
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
