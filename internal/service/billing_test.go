package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/campushq/licensing/internal/domain"
	"github.com/campushq/licensing/internal/mocks"
	"github.com/campushq/licensing/internal/model"
	"github.com/campushq/licensing/internal/pdfrender"
	"github.com/campushq/licensing/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const testAddonRate = 50.0

func newBillingFixture(ctrl *gomock.Controller) (
	*mocks.MockSubscriptionRepositoryIface,
	*mocks.MockSubscriptionPlanRepositoryIface,
	*mocks.MockPaymentTransactionRepositoryIface,
	*mocks.MockAddonOrderRepositoryIface,
	*mocks.MockOrganizationRepositoryIface,
	*service.BillingService,
) {
	subRepo := mocks.NewMockSubscriptionRepositoryIface(ctrl)
	planRepo := mocks.NewMockSubscriptionPlanRepositoryIface(ctrl)
	txnRepo := mocks.NewMockPaymentTransactionRepositoryIface(ctrl)
	addonRepo := mocks.NewMockAddonOrderRepositoryIface(ctrl)
	orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)

	svc := service.NewBillingService(
		subRepo, planRepo, txnRepo, addonRepo, orgRepo,
		pdfrender.NewClient(pdfrender.DefaultConfig()),
		testAddonRate,
	)
	return subRepo, planRepo, txnRepo, addonRepo, orgRepo, svc
}

func TestBillingDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()

	t.Run("degrades to zeros for an idle organization", func(t *testing.T) {
		subRepo, _, txnRepo, addonRepo, _, svc := newBillingFixture(ctrl)

		subRepo.EXPECT().
			FindByOrganizationAndStatuses(gomock.Any(), orgID, model.OrgTypeCollege, gomock.Any()).
			Return(nil, nil)
		txnRepo.EXPECT().
			FindByOrganization(gomock.Any(), orgID, 20).
			Return(nil, nil)
		addonRepo.EXPECT().
			FindByOrganizationAndStatus(gomock.Any(), orgID, model.AddonOrderPending).
			Return(nil, nil)

		dash, err := svc.Dashboard(context.Background(), orgID, model.OrgTypeCollege)

		assert.NoError(t, err)
		assert.Empty(t, dash.Subscriptions)
		assert.Zero(t, dash.TotalSeats)
		assert.Zero(t, dash.OverallUtilization)
		assert.Zero(t, dash.TotalMonthlySpend)
		assert.Empty(t, dash.PaymentHistory)
		assert.Empty(t, dash.PendingAddons)
	})

	t.Run("aggregates active subscriptions only", func(t *testing.T) {
		subRepo, _, txnRepo, addonRepo, _, svc := newBillingFixture(ctrl)

		now := time.Now().UTC()
		subs := []*model.OrganizationSubscription{
			{
				ID:             uuid.New(),
				Status:         model.SubscriptionActive,
				TotalSeats:     100,
				AssignedSeats:  75,
				AvailableSeats: 25,
				FinalAmount:    9440,
				StartDate:      now.Add(-10 * 24 * time.Hour),
				EndDate:        now.Add(20 * 24 * time.Hour),
				BillingCycle:   model.BillingMonthly,
			},
			{
				ID:            uuid.New(),
				Status:        model.SubscriptionCancelled,
				TotalSeats:    50,
				AssignedSeats: 50,
				FinalAmount:   5310,
				StartDate:     now.Add(-40 * 24 * time.Hour),
				EndDate:       now.Add(-10 * 24 * time.Hour),
			},
		}

		subRepo.EXPECT().
			FindByOrganizationAndStatuses(gomock.Any(), orgID, model.OrgTypeCollege, gomock.Any()).
			Return(subs, nil)
		txnRepo.EXPECT().
			FindByOrganization(gomock.Any(), orgID, 20).
			Return([]*model.PaymentTransaction{
				{Status: model.PaymentSuccess, Amount: 9440, CreatedAt: now},
				{Status: model.PaymentFailed, Amount: 100, CreatedAt: now},
			}, nil)
		addonRepo.EXPECT().
			FindByOrganizationAndStatus(gomock.Any(), orgID, model.AddonOrderPending).
			Return([]*model.AddonOrder{
				{AddonFeatureKey: "ai_review", TargetMemberIDs: model.StringList{"u1", "u2"}, Amount: 200},
				{AddonFeatureKey: "ai_review", Amount: 100},
			}, nil)

		dash, err := svc.Dashboard(context.Background(), orgID, model.OrgTypeCollege)

		assert.NoError(t, err)
		assert.Len(t, dash.Subscriptions, 2)
		// Cancelled subscriptions appear in the list but not in the totals.
		assert.Equal(t, 100, dash.TotalSeats)
		assert.Equal(t, 75, dash.AssignedSeats)
		assert.Equal(t, 75, dash.OverallUtilization)
		assert.InDelta(t, 9440, dash.TotalMonthlySpend, 0.01)
		assert.Equal(t, 1, dash.CurrentPeriod.Payments)
		assert.InDelta(t, 9440, dash.CurrentPeriod.AmountSpent, 0.01)
		assert.Len(t, dash.UpcomingRenewals, 1)
		assert.Len(t, dash.PendingAddons, 1)
		assert.Equal(t, 2, dash.PendingAddons[0].OrderCount)
		assert.Equal(t, 3, dash.PendingAddons[0].MemberCount)
		assert.InDelta(t, 300, dash.PendingAddons[0].TotalAmount, 0.01)
	})

	t.Run("lapsed subscriptions are not upcoming renewals", func(t *testing.T) {
		subRepo, _, txnRepo, addonRepo, _, svc := newBillingFixture(ctrl)

		now := time.Now().UTC()
		subs := []*model.OrganizationSubscription{
			{
				ID:            uuid.New(),
				Status:        model.SubscriptionActive,
				TotalSeats:    50,
				AssignedSeats: 10,
				FinalAmount:   5310,
				StartDate:     now.Add(-40 * 24 * time.Hour),
				EndDate:       now.Add(-2 * 24 * time.Hour),
				BillingCycle:  model.BillingMonthly,
			},
			{
				ID:            uuid.New(),
				Status:        model.SubscriptionActive,
				TotalSeats:    50,
				AssignedSeats: 10,
				FinalAmount:   5310,
				StartDate:     now.Add(-20 * 24 * time.Hour),
				EndDate:       now.Add(10 * 24 * time.Hour),
				BillingCycle:  model.BillingMonthly,
			},
		}

		subRepo.EXPECT().
			FindByOrganizationAndStatuses(gomock.Any(), orgID, model.OrgTypeCollege, gomock.Any()).
			Return(subs, nil)
		txnRepo.EXPECT().
			FindByOrganization(gomock.Any(), orgID, 20).
			Return(nil, nil)
		addonRepo.EXPECT().
			FindByOrganizationAndStatus(gomock.Any(), orgID, model.AddonOrderPending).
			Return(nil, nil)

		dash, err := svc.Dashboard(context.Background(), orgID, model.OrgTypeCollege)

		assert.NoError(t, err)
		assert.Len(t, dash.Subscriptions, 2)
		assert.Len(t, dash.UpcomingRenewals, 1)
		assert.Equal(t, subs[1].ID, dash.UpcomingRenewals[0].ID)
	})
}

func TestGenerateInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("itemizes a settled payment", func(t *testing.T) {
		_, _, txnRepo, _, _, svc := newBillingFixture(ctrl)

		txn := &model.PaymentTransaction{
			ID:             uuid.New(),
			OrganizationID: uuid.New(),
			Amount:         5310,
			Currency:       "INR",
			Status:         model.PaymentSuccess,
			SeatCount:      50,
			CreatedAt:      time.Now().UTC(),
		}
		txnRepo.EXPECT().
			FindByID(gomock.Any(), txn.ID).
			Return(txn, nil)

		invoice, err := svc.GenerateInvoice(context.Background(), txn.ID, service.InvoiceDetails{
			PlanName:           "Campus Pro",
			SeatCount:          50,
			PricePerSeat:       100,
			DiscountPercentage: 10,
			DiscountAmount:     500,
		})

		assert.NoError(t, err)
		assert.Equal(t, "paid", invoice.Status)
		assert.Contains(t, invoice.Number, "INV-")
		// 5310 settled = 4500 pre-tax + 810 GST
		assert.InDelta(t, 810, invoice.TaxAmount, 0.01)
		assert.InDelta(t, 4500, invoice.Subtotal, 0.01)
		assert.InDelta(t, 5310, invoice.TotalAmount, 0.01)
		assert.Len(t, invoice.LineItems, 3)
		assert.InDelta(t, -500, invoice.LineItems[1].Amount, 0.01)
	})

	t.Run("propagates an unknown transaction", func(t *testing.T) {
		_, _, txnRepo, _, _, svc := newBillingFixture(ctrl)

		id := uuid.New()
		txnRepo.EXPECT().
			FindByID(gomock.Any(), id).
			Return(nil, domain.ErrTransactionNotFound)

		_, err := svc.GenerateInvoice(context.Background(), id, service.InvoiceDetails{})

		assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
	})
}

func TestSeatAdditionCost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	plan := &model.SubscriptionPlan{ID: uuid.New(), Price: 100}
	sub := &model.OrganizationSubscription{
		ID:                 uuid.New(),
		SubscriptionPlanID: plan.ID,
		TotalSeats:         90,
		StartDate:          now.Add(-15 * 24 * time.Hour),
		EndDate:            now.Add(15 * 24 * time.Hour),
		PricePerSeat:       118,
	}

	subRepo, planRepo, _, _, _, svc := newBillingFixture(ctrl)

	subRepo.EXPECT().
		FindByID(gomock.Any(), sub.ID).
		Return(sub, nil)
	planRepo.EXPECT().
		FindByID(gomock.Any(), plan.ID).
		Return(plan, nil)

	quote, err := svc.SeatAdditionCost(context.Background(), sub.ID, 20)

	assert.NoError(t, err)
	assert.Equal(t, 110, quote.NewTotalSeats)
	// 110 total seats reaches the 20% tier even though the block held 90.
	assert.Equal(t, 20, quote.DiscountPercentage)
	// 20 * 100 = 2000, minus 20% = 1600, plus 18% tax = 1888
	assert.InDelta(t, 1888, quote.TotalCost, 0.01)
	assert.LessOrEqual(t, quote.ProratedCost, quote.TotalCost)
	assert.Greater(t, quote.ProratedCost, 0.0)
	assert.LessOrEqual(t, quote.ProratedDays, 30)
}

func TestProjectMonthlyCost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	now := time.Now().UTC()

	subRepo, _, _, addonRepo, _, svc := newBillingFixture(ctrl)

	subRepo.EXPECT().
		FindByOrganizationAndStatuses(gomock.Any(), orgID, model.OrgTypeUniversity, gomock.Any()).
		Return([]*model.OrganizationSubscription{
			{
				// Annual term: amount is spread across twelve months.
				Status:      model.SubscriptionActive,
				FinalAmount: 12000,
				StartDate:   now,
				EndDate:     now.Add(365 * 24 * time.Hour),
			},
			{
				Status:      model.SubscriptionActive,
				FinalAmount: 1180,
				StartDate:   now,
				EndDate:     now.Add(30 * 24 * time.Hour),
			},
		}, nil)
	addonRepo.EXPECT().
		FindByOrganizationAndStatus(gomock.Any(), orgID, model.AddonOrderCompleted).
		Return([]*model.AddonOrder{
			{AddonFeatureKey: "ai_review", TargetMemberIDs: model.StringList{"u1", "u2", "u3"}},
		}, nil)

	projection, err := svc.ProjectMonthlyCost(context.Background(), orgID, model.OrgTypeUniversity)

	assert.NoError(t, err)
	// 12000/12 + 1180 = 2180 settled monthly spend
	assert.InDelta(t, 2180, projection.CurrentMonthlyCost, 0.01)
	// 3 members at the flat addon rate
	assert.InDelta(t, 150, projection.Breakdown.Addons, 0.01)
	assert.InDelta(t, projection.ProjectedMonthlyCost*12, projection.ProjectedAnnualCost, 0.05)
	assert.InDelta(t,
		projection.Breakdown.Subscriptions+projection.Breakdown.Addons+projection.Breakdown.Taxes,
		projection.ProjectedMonthlyCost, 0.05)
}

func TestBillingContacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()

	t.Run("returns the organization's primary contact", func(t *testing.T) {
		_, _, _, _, orgRepo, svc := newBillingFixture(ctrl)

		orgRepo.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(&model.Organization{
				ID:    orgID,
				Name:  "State University",
				Email: "billing@stateu.edu",
				Phone: "+1-555-0100",
			}, nil)

		contacts, err := svc.BillingContacts(context.Background(), orgID)

		assert.NoError(t, err)
		assert.Len(t, contacts, 1)
		assert.Equal(t, "billing@stateu.edu", contacts[0].Email)
		assert.True(t, contacts[0].IsPrimary)
	})

	t.Run("yields an empty list for an unknown organization", func(t *testing.T) {
		_, _, _, _, orgRepo, svc := newBillingFixture(ctrl)

		orgRepo.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(nil, domain.ErrOrganizationNotFound)

		contacts, err := svc.BillingContacts(context.Background(), orgID)

		assert.NoError(t, err)
		assert.Empty(t, contacts)
	})
}

func TestDownloadInvoiceRequiresToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, _, _, _, _, svc := newBillingFixture(ctrl)

	_, err := svc.DownloadInvoice(context.Background(), "inv-1", "")

	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}
