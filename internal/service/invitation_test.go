package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/campushq/licensing/internal/domain"
	"github.com/campushq/licensing/internal/mocks"
	"github.com/campushq/licensing/internal/model"
	"github.com/campushq/licensing/internal/repository"
	"github.com/campushq/licensing/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newInvitationFixture(ctrl *gomock.Controller) (
	*mocks.MockInvitationRepositoryIface,
	*mocks.MockOrganizationRepositoryIface,
	*mocks.MockLicensePoolRepositoryIface,
	*mocks.MockLicenseAssignmentRepositoryIface,
	*service.InvitationService,
) {
	inviteRepo := mocks.NewMockInvitationRepositoryIface(ctrl)
	orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
	poolRepo := mocks.NewMockLicensePoolRepositoryIface(ctrl)
	assignRepo := mocks.NewMockLicenseAssignmentRepositoryIface(ctrl)
	subRepo := mocks.NewMockSubscriptionRepositoryIface(ctrl)

	license := service.NewLicenseService(poolRepo, assignRepo, subRepo)
	svc := service.NewInvitationService(inviteRepo, orgRepo, license)
	return inviteRepo, orgRepo, poolRepo, assignRepo, svc
}

func TestInvite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actorID := uuid.New()
	orgID := uuid.New()
	input := service.InviteInput{
		OrganizationID:   orgID,
		OrganizationType: model.OrgTypeCollege,
		Email:            "Student@Example.EDU",
		MemberType:       model.MemberTypeStudent,
	}

	t.Run("issues a pending invitation with a fresh token", func(t *testing.T) {
		inviteRepo, _, _, _, svc := newInvitationFixture(ctrl)

		gomock.InOrder(
			inviteRepo.EXPECT().
				FindPendingByOrgAndEmail(gomock.Any(), orgID, "student@example.edu").
				Return(nil, domain.ErrNotFound),
			inviteRepo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				Return(nil),
		)

		inv, err := svc.Invite(context.Background(), actorID, input)

		assert.NoError(t, err)
		assert.Equal(t, model.InvitationPending, inv.Status)
		assert.Equal(t, "student@example.edu", inv.Email)
		assert.Len(t, inv.InvitationToken, 64)
		assert.WithinDuration(t, time.Now().UTC().Add(7*24*time.Hour), inv.ExpiresAt, 5*time.Second)
	})

	t.Run("rejects a duplicate pending invitation", func(t *testing.T) {
		inviteRepo, _, _, _, svc := newInvitationFixture(ctrl)

		inviteRepo.EXPECT().
			FindPendingByOrgAndEmail(gomock.Any(), orgID, "student@example.edu").
			Return(&model.Invitation{ID: uuid.New(), Status: model.InvitationPending}, nil)

		_, err := svc.Invite(context.Background(), actorID, input)

		assert.ErrorIs(t, err, domain.ErrDuplicatePendingInvitation)
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		_, _, _, _, svc := newInvitationFixture(ctrl)

		bad := input
		bad.Email = "not-an-email"
		_, err := svc.Invite(context.Background(), actorID, bad)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestAcceptInvitation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	userID := uuid.New()
	inviterID := uuid.New()
	poolID := uuid.New()
	subID := uuid.New()
	token := "abc123"

	t.Run("accepts and auto-assigns a seat", func(t *testing.T) {
		inviteRepo, orgRepo, poolRepo, assignRepo, svc := newInvitationFixture(ctrl)

		inv := &model.Invitation{
			ID:                     uuid.New(),
			OrganizationID:         orgID,
			Email:                  "student@example.edu",
			MemberType:             model.MemberTypeStudent,
			InvitedByID:            inviterID,
			Status:                 model.InvitationPending,
			AutoAssignSubscription: true,
			TargetLicensePoolID:    &poolID,
			InvitationToken:        token,
			ExpiresAt:              time.Now().UTC().Add(time.Hour),
		}
		pool := &model.LicensePool{
			ID:                         poolID,
			OrganizationSubscriptionID: subID,
			MemberType:                 model.MemberTypeStudent,
			AvailableSeats:             3,
			IsActive:                   true,
		}

		inviteRepo.EXPECT().
			FindPendingByToken(gomock.Any(), token).
			Return(inv, nil)
		inviteRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil)
		orgRepo.EXPECT().
			AddMember(gomock.Any(), gomock.Any()).
			Return(nil)
		poolRepo.EXPECT().
			FindByID(gomock.Any(), poolID).
			Return(pool, nil)
		assignRepo.EXPECT().
			FindActiveByUserAndSubscription(gomock.Any(), userID, subID).
			Return(nil, domain.ErrNoActiveAssignment)
		assignRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)
		orgRepo.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(&model.Organization{ID: orgID, Name: "State University"}, nil)

		result, err := svc.Accept(context.Background(), token, userID)

		assert.NoError(t, err)
		assert.Equal(t, model.InvitationAccepted, result.Invitation.Status)
		assert.Equal(t, &userID, result.Invitation.AcceptedByID)
		assert.NotNil(t, result.AssignedLicense)
		assert.Equal(t, userID, result.AssignedLicense.UserID)
		assert.Equal(t, "State University", result.OrganizationName)
	})

	t.Run("acceptance stands when auto-assignment fails", func(t *testing.T) {
		inviteRepo, orgRepo, poolRepo, _, svc := newInvitationFixture(ctrl)

		inv := &model.Invitation{
			ID:                     uuid.New(),
			OrganizationID:         orgID,
			MemberType:             model.MemberTypeStudent,
			InvitedByID:            inviterID,
			Status:                 model.InvitationPending,
			AutoAssignSubscription: true,
			TargetLicensePoolID:    &poolID,
			InvitationToken:        token,
			ExpiresAt:              time.Now().UTC().Add(time.Hour),
		}

		inviteRepo.EXPECT().
			FindPendingByToken(gomock.Any(), token).
			Return(inv, nil)
		inviteRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil)
		orgRepo.EXPECT().
			AddMember(gomock.Any(), gomock.Any()).
			Return(nil)
		poolRepo.EXPECT().
			FindByID(gomock.Any(), poolID).
			Return(nil, domain.ErrPoolNotFound)
		orgRepo.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(&model.Organization{ID: orgID, Name: "State University"}, nil)

		result, err := svc.Accept(context.Background(), token, userID)

		assert.NoError(t, err)
		assert.Equal(t, model.InvitationAccepted, result.Invitation.Status)
		assert.Nil(t, result.AssignedLicense)
	})

	t.Run("marks an overdue invitation expired", func(t *testing.T) {
		inviteRepo, _, _, _, svc := newInvitationFixture(ctrl)

		inv := &model.Invitation{
			ID:              uuid.New(),
			OrganizationID:  orgID,
			Status:          model.InvitationPending,
			InvitationToken: token,
			ExpiresAt:       time.Now().UTC().Add(-time.Hour),
		}

		var saved *model.Invitation
		inviteRepo.EXPECT().
			FindPendingByToken(gomock.Any(), token).
			Return(inv, nil)
		inviteRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, i *model.Invitation) error {
				saved = i
				return nil
			})

		result, err := svc.Accept(context.Background(), token, userID)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrInvitationExpired)
		assert.Equal(t, model.InvitationExpired, saved.Status)
	})

	t.Run("rejects an unknown token", func(t *testing.T) {
		inviteRepo, _, _, _, svc := newInvitationFixture(ctrl)

		inviteRepo.EXPECT().
			FindPendingByToken(gomock.Any(), "bogus").
			Return(nil, domain.ErrNotFound)

		_, err := svc.Accept(context.Background(), "bogus", userID)

		assert.ErrorIs(t, err, domain.ErrInvitationInvalid)
	})
}

func TestResendInvitation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("rotates the token on a pending invitation", func(t *testing.T) {
		inviteRepo, _, _, _, svc := newInvitationFixture(ctrl)

		inv := &model.Invitation{
			ID:              uuid.New(),
			Status:          model.InvitationPending,
			InvitationToken: "old-token",
			ExpiresAt:       time.Now().UTC().Add(time.Hour),
		}

		gomock.InOrder(
			inviteRepo.EXPECT().
				FindByID(gomock.Any(), inv.ID).
				Return(inv, nil),
			inviteRepo.EXPECT().
				Update(gomock.Any(), gomock.Any()).
				Return(nil),
		)

		updated, err := svc.Resend(context.Background(), inv.ID)

		assert.NoError(t, err)
		assert.NotEqual(t, "old-token", updated.InvitationToken)
		assert.Len(t, updated.InvitationToken, 64)
	})

	t.Run("refuses a resolved invitation", func(t *testing.T) {
		inviteRepo, _, _, _, svc := newInvitationFixture(ctrl)

		inv := &model.Invitation{ID: uuid.New(), Status: model.InvitationAccepted}
		inviteRepo.EXPECT().
			FindByID(gomock.Any(), inv.ID).
			Return(inv, nil)

		_, err := svc.Resend(context.Background(), inv.ID)

		assert.ErrorIs(t, err, domain.ErrInvitationNotPending)
	})
}

func TestInvitationStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	inviteRepo, _, _, _, svc := newInvitationFixture(ctrl)

	inviteRepo.EXPECT().
		CountByStatus(gomock.Any(), orgID).
		Return(map[model.InvitationStatus]int{
			model.InvitationPending:   4,
			model.InvitationAccepted:  3,
			model.InvitationExpired:   1,
			model.InvitationCancelled: 1,
		}, nil)

	stats, err := svc.Stats(context.Background(), orgID)

	assert.NoError(t, err)
	assert.Equal(t, 9, stats.Total)
	assert.Equal(t, 4, stats.Pending)
	// 3 accepted of 5 resolved
	assert.Equal(t, 60, stats.AcceptanceRate)
}

func TestExpireOldInvitations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inviteRepo, _, _, _, svc := newInvitationFixture(ctrl)

	inviteRepo.EXPECT().
		ExpirePending(gomock.Any(), gomock.Any()).
		Return(int64(7), nil)

	expired, err := svc.ExpireOld(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(7), expired)
}

func TestListInvitations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	inviteRepo, _, _, _, svc := newInvitationFixture(ctrl)

	filter := repository.InvitationFilter{Status: model.InvitationPending, Limit: 10}
	inviteRepo.EXPECT().
		FindByOrganization(gomock.Any(), orgID, filter).
		Return([]*model.Invitation{{ID: uuid.New()}}, nil)

	invitations, err := svc.List(context.Background(), orgID, filter)

	assert.NoError(t, err)
	assert.Len(t, invitations, 1)
}

func TestOrganizationMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()

	t.Run("lists the roster", func(t *testing.T) {
		_, orgRepo, _, _, svc := newInvitationFixture(ctrl)

		roster := []*model.OrganizationMember{
			{OrganizationID: orgID, UserID: uuid.New(), MemberType: model.MemberTypeStudent, JoinedAt: time.Now().UTC()},
			{OrganizationID: orgID, UserID: uuid.New(), MemberType: model.MemberTypeEducator, JoinedAt: time.Now().UTC()},
		}
		orgRepo.EXPECT().
			FindMembers(gomock.Any(), orgID).
			Return(roster, nil)

		members, err := svc.Members(context.Background(), orgID)

		assert.NoError(t, err)
		assert.Len(t, members, 2)
		assert.Equal(t, roster[0].UserID, members[0].UserID)
	})

	t.Run("empty roster is not an error", func(t *testing.T) {
		_, orgRepo, _, _, svc := newInvitationFixture(ctrl)

		orgRepo.EXPECT().
			FindMembers(gomock.Any(), orgID).
			Return(nil, nil)

		members, err := svc.Members(context.Background(), orgID)

		assert.NoError(t, err)
		assert.Empty(t, members)
	})
}
