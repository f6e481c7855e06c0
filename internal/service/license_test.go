package service_test

import (
	"context"
	"testing"

	"github.com/campushq/licensing/internal/domain"
	"github.com/campushq/licensing/internal/mocks"
	"github.com/campushq/licensing/internal/model"
	"github.com/campushq/licensing/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAssignLicense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	subID := uuid.New()
	pool := &model.LicensePool{
		ID:                         uuid.New(),
		OrganizationSubscriptionID: subID,
		PoolName:                   "Engineering Students",
		MemberType:                 model.MemberTypeStudent,
		AllocatedSeats:             10,
		AssignedSeats:              4,
		AvailableSeats:             6,
		IsActive:                   true,
	}
	userID := uuid.New()
	adminID := uuid.New()

	t.Run("assigns a seat from the pool", func(t *testing.T) {
		poolRepo := mocks.NewMockLicensePoolRepositoryIface(ctrl)
		assignRepo := mocks.NewMockLicenseAssignmentRepositoryIface(ctrl)
		subRepo := mocks.NewMockSubscriptionRepositoryIface(ctrl)

		gomock.InOrder(
			poolRepo.EXPECT().
				FindByID(gomock.Any(), pool.ID).
				Return(pool, nil),
			assignRepo.EXPECT().
				FindActiveByUserAndSubscription(gomock.Any(), userID, subID).
				Return(nil, domain.ErrNoActiveAssignment),
			assignRepo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				Return(nil),
		)

		svc := service.NewLicenseService(poolRepo, assignRepo, subRepo)
		assignment, err := svc.Assign(context.Background(), pool.ID, userID, adminID)

		assert.NoError(t, err)
		assert.Equal(t, model.AssignmentActive, assignment.Status)
		assert.Equal(t, pool.ID, assignment.LicensePoolID)
		assert.Equal(t, subID, assignment.OrganizationSubscriptionID)
		assert.Equal(t, model.MemberTypeStudent, assignment.MemberType)
	})

	t.Run("rejects a second active assignment for the same user", func(t *testing.T) {
		poolRepo := mocks.NewMockLicensePoolRepositoryIface(ctrl)
		assignRepo := mocks.NewMockLicenseAssignmentRepositoryIface(ctrl)
		subRepo := mocks.NewMockSubscriptionRepositoryIface(ctrl)

		gomock.InOrder(
			poolRepo.EXPECT().
				FindByID(gomock.Any(), pool.ID).
				Return(pool, nil),
			assignRepo.EXPECT().
				FindActiveByUserAndSubscription(gomock.Any(), userID, subID).
				Return(&model.LicenseAssignment{ID: uuid.New(), UserID: userID}, nil),
		)

		svc := service.NewLicenseService(poolRepo, assignRepo, subRepo)
		_, err := svc.Assign(context.Background(), pool.ID, userID, adminID)

		assert.ErrorIs(t, err, domain.ErrAlreadyAssigned)
	})

	t.Run("surfaces seat exhaustion from the conditional claim", func(t *testing.T) {
		poolRepo := mocks.NewMockLicensePoolRepositoryIface(ctrl)
		assignRepo := mocks.NewMockLicenseAssignmentRepositoryIface(ctrl)
		subRepo := mocks.NewMockSubscriptionRepositoryIface(ctrl)

		gomock.InOrder(
			poolRepo.EXPECT().
				FindByID(gomock.Any(), pool.ID).
				Return(pool, nil),
			assignRepo.EXPECT().
				FindActiveByUserAndSubscription(gomock.Any(), userID, subID).
				Return(nil, domain.ErrNoActiveAssignment),
			assignRepo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				Return(domain.ErrNoAvailableSeats),
		)

		svc := service.NewLicenseService(poolRepo, assignRepo, subRepo)
		_, err := svc.Assign(context.Background(), pool.ID, userID, adminID)

		assert.ErrorIs(t, err, domain.ErrNoAvailableSeats)
	})

	t.Run("propagates an unknown pool", func(t *testing.T) {
		poolRepo := mocks.NewMockLicensePoolRepositoryIface(ctrl)
		assignRepo := mocks.NewMockLicenseAssignmentRepositoryIface(ctrl)
		subRepo := mocks.NewMockSubscriptionRepositoryIface(ctrl)

		poolRepo.EXPECT().
			FindByID(gomock.Any(), pool.ID).
			Return(nil, domain.ErrPoolNotFound)

		svc := service.NewLicenseService(poolRepo, assignRepo, subRepo)
		_, err := svc.Assign(context.Background(), pool.ID, userID, adminID)

		assert.ErrorIs(t, err, domain.ErrPoolNotFound)
	})
}

func TestTransferLicense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	subID := uuid.New()
	poolID := uuid.New()
	fromUser := uuid.New()
	toUser := uuid.New()
	adminID := uuid.New()

	current := &model.LicenseAssignment{
		ID:                         uuid.New(),
		LicensePoolID:              poolID,
		OrganizationSubscriptionID: subID,
		UserID:                     fromUser,
		MemberType:                 model.MemberTypeStudent,
		Status:                     model.AssignmentActive,
	}

	t.Run("moves the seat within the same pool", func(t *testing.T) {
		poolRepo := mocks.NewMockLicensePoolRepositoryIface(ctrl)
		assignRepo := mocks.NewMockLicenseAssignmentRepositoryIface(ctrl)
		subRepo := mocks.NewMockSubscriptionRepositoryIface(ctrl)

		gomock.InOrder(
			assignRepo.EXPECT().
				FindActiveByUserAndSubscription(gomock.Any(), fromUser, subID).
				Return(current, nil),
			assignRepo.EXPECT().
				FindActiveByUserAndSubscription(gomock.Any(), toUser, subID).
				Return(nil, domain.ErrNoActiveAssignment),
			assignRepo.EXPECT().
				Transfer(gomock.Any(), current, gomock.Any()).
				Return(nil),
		)

		svc := service.NewLicenseService(poolRepo, assignRepo, subRepo)
		replacement, err := svc.Transfer(context.Background(), fromUser, toUser, subID, adminID)

		assert.NoError(t, err)
		assert.Equal(t, toUser, replacement.UserID)
		assert.Equal(t, poolID, replacement.LicensePoolID)
		assert.Equal(t, current.MemberType, replacement.MemberType)
		assert.Equal(t, &current.ID, replacement.TransferredFrom)
	})

	t.Run("refuses when the recipient already holds a seat", func(t *testing.T) {
		poolRepo := mocks.NewMockLicensePoolRepositoryIface(ctrl)
		assignRepo := mocks.NewMockLicenseAssignmentRepositoryIface(ctrl)
		subRepo := mocks.NewMockSubscriptionRepositoryIface(ctrl)

		gomock.InOrder(
			assignRepo.EXPECT().
				FindActiveByUserAndSubscription(gomock.Any(), fromUser, subID).
				Return(current, nil),
			assignRepo.EXPECT().
				FindActiveByUserAndSubscription(gomock.Any(), toUser, subID).
				Return(&model.LicenseAssignment{ID: uuid.New(), UserID: toUser}, nil),
		)

		svc := service.NewLicenseService(poolRepo, assignRepo, subRepo)
		_, err := svc.Transfer(context.Background(), fromUser, toUser, subID, adminID)

		assert.ErrorIs(t, err, domain.ErrAlreadyAssigned)
	})
}

func TestBulkAssign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	subID := uuid.New()
	pool := &model.LicensePool{
		ID:                         uuid.New(),
		OrganizationSubscriptionID: subID,
		MemberType:                 model.MemberTypeStudent,
		AvailableSeats:             1,
		IsActive:                   true,
	}
	adminID := uuid.New()
	userA := uuid.New()
	userB := uuid.New()

	poolRepo := mocks.NewMockLicensePoolRepositoryIface(ctrl)
	assignRepo := mocks.NewMockLicenseAssignmentRepositoryIface(ctrl)
	subRepo := mocks.NewMockSubscriptionRepositoryIface(ctrl)

	// First user gets the last seat, second one hits the exhausted pool.
	gomock.InOrder(
		poolRepo.EXPECT().FindByID(gomock.Any(), pool.ID).Return(pool, nil),
		assignRepo.EXPECT().
			FindActiveByUserAndSubscription(gomock.Any(), userA, subID).
			Return(nil, domain.ErrNoActiveAssignment),
		assignRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),

		poolRepo.EXPECT().FindByID(gomock.Any(), pool.ID).Return(pool, nil),
		assignRepo.EXPECT().
			FindActiveByUserAndSubscription(gomock.Any(), userB, subID).
			Return(nil, domain.ErrNoActiveAssignment),
		assignRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrNoAvailableSeats),
	)

	svc := service.NewLicenseService(poolRepo, assignRepo, subRepo)
	result, err := svc.BulkAssign(context.Background(), pool.ID, []uuid.UUID{userA, userB}, adminID)

	assert.NoError(t, err)
	assert.Len(t, result.Successful, 1)
	assert.Len(t, result.Failed, 1)
	assert.Equal(t, userB, result.Failed[0].UserID)
}

func TestAvailableSeats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()

	t.Run("sums across active pools", func(t *testing.T) {
		poolRepo := mocks.NewMockLicensePoolRepositoryIface(ctrl)
		assignRepo := mocks.NewMockLicenseAssignmentRepositoryIface(ctrl)
		subRepo := mocks.NewMockSubscriptionRepositoryIface(ctrl)

		poolRepo.EXPECT().
			FindActiveByOrgAndMemberType(gomock.Any(), orgID, model.MemberTypeStudent).
			Return([]*model.LicensePool{
				{AvailableSeats: 6},
				{AvailableSeats: 4},
			}, nil)

		svc := service.NewLicenseService(poolRepo, assignRepo, subRepo)
		total, err := svc.AvailableSeats(context.Background(), orgID, model.MemberTypeStudent)

		assert.NoError(t, err)
		assert.Equal(t, 10, total)
	})

	t.Run("reports zero when no pools exist", func(t *testing.T) {
		poolRepo := mocks.NewMockLicensePoolRepositoryIface(ctrl)
		assignRepo := mocks.NewMockLicenseAssignmentRepositoryIface(ctrl)
		subRepo := mocks.NewMockSubscriptionRepositoryIface(ctrl)

		poolRepo.EXPECT().
			FindActiveByOrgAndMemberType(gomock.Any(), orgID, model.MemberTypeEducator).
			Return(nil, nil)

		svc := service.NewLicenseService(poolRepo, assignRepo, subRepo)
		total, err := svc.AvailableSeats(context.Background(), orgID, model.MemberTypeEducator)

		assert.NoError(t, err)
		assert.Equal(t, 0, total)
	})
}

func TestCreatePool(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminID := uuid.New()
	sub := &model.OrganizationSubscription{
		ID:               uuid.New(),
		OrganizationID:   uuid.New(),
		OrganizationType: model.OrgTypeUniversity,
		TotalSeats:       100,
		AssignedSeats:    80,
		AvailableSeats:   20,
	}

	t.Run("rejects a pool larger than the free seats", func(t *testing.T) {
		poolRepo := mocks.NewMockLicensePoolRepositoryIface(ctrl)
		assignRepo := mocks.NewMockLicenseAssignmentRepositoryIface(ctrl)
		subRepo := mocks.NewMockSubscriptionRepositoryIface(ctrl)

		subRepo.EXPECT().
			FindByID(gomock.Any(), sub.ID).
			Return(sub, nil)

		svc := service.NewLicenseService(poolRepo, assignRepo, subRepo)
		_, err := svc.CreatePool(context.Background(), adminID, service.CreatePoolInput{
			SubscriptionID: sub.ID,
			Name:           "Overflow",
			MemberType:     model.MemberTypeStudent,
			AllocatedSeats: 30,
		})

		assert.ErrorIs(t, err, domain.ErrInsufficientSeats)
	})

	t.Run("creates a pool with its full allocation free", func(t *testing.T) {
		poolRepo := mocks.NewMockLicensePoolRepositoryIface(ctrl)
		assignRepo := mocks.NewMockLicenseAssignmentRepositoryIface(ctrl)
		subRepo := mocks.NewMockSubscriptionRepositoryIface(ctrl)

		gomock.InOrder(
			subRepo.EXPECT().
				FindByID(gomock.Any(), sub.ID).
				Return(sub, nil),
			poolRepo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				Return(nil),
		)

		svc := service.NewLicenseService(poolRepo, assignRepo, subRepo)
		pool, err := svc.CreatePool(context.Background(), adminID, service.CreatePoolInput{
			SubscriptionID: sub.ID,
			Name:           "Faculty",
			MemberType:     model.MemberTypeEducator,
			AllocatedSeats: 15,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Faculty", pool.PoolName)
		assert.Equal(t, sub.OrganizationID, pool.OrganizationID)
		assert.Equal(t, 15, pool.AllocatedSeats)
		assert.Equal(t, 0, pool.AssignedSeats)
		assert.Equal(t, 15, pool.AvailableSeats)
		assert.True(t, pool.IsActive)
	})
}

func TestUpdatePoolAllocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	subID := uuid.New()
	pool := &model.LicensePool{
		ID:                         uuid.New(),
		OrganizationSubscriptionID: subID,
		PoolName:                   "Engineering Students",
		MemberType:                 model.MemberTypeStudent,
		AllocatedSeats:             50,
		AssignedSeats:              40,
		AvailableSeats:             10,
		IsActive:                   true,
	}

	t.Run("refuses to shrink below the assigned seats", func(t *testing.T) {
		poolRepo := mocks.NewMockLicensePoolRepositoryIface(ctrl)
		assignRepo := mocks.NewMockLicenseAssignmentRepositoryIface(ctrl)
		subRepo := mocks.NewMockSubscriptionRepositoryIface(ctrl)

		gomock.InOrder(
			poolRepo.EXPECT().
				FindByID(gomock.Any(), pool.ID).
				Return(pool, nil),
			poolRepo.EXPECT().
				UpdateAllocation(gomock.Any(), pool.ID, 30).
				Return(nil, domain.ErrCannotReduceAllocation),
		)

		svc := service.NewLicenseService(poolRepo, assignRepo, subRepo)
		updated, err := svc.UpdatePoolAllocation(context.Background(), pool.ID, 30)

		assert.ErrorIs(t, err, domain.ErrCannotReduceAllocation)
		assert.Nil(t, updated)
	})

	t.Run("grows within the subscription headroom", func(t *testing.T) {
		poolRepo := mocks.NewMockLicensePoolRepositoryIface(ctrl)
		assignRepo := mocks.NewMockLicenseAssignmentRepositoryIface(ctrl)
		subRepo := mocks.NewMockSubscriptionRepositoryIface(ctrl)

		grown := &model.LicensePool{
			ID:             pool.ID,
			AllocatedSeats: 60,
			AssignedSeats:  40,
			AvailableSeats: 20,
		}
		gomock.InOrder(
			poolRepo.EXPECT().
				FindByID(gomock.Any(), pool.ID).
				Return(pool, nil),
			subRepo.EXPECT().
				FindByID(gomock.Any(), subID).
				Return(&model.OrganizationSubscription{ID: subID, AvailableSeats: 25}, nil),
			poolRepo.EXPECT().
				UpdateAllocation(gomock.Any(), pool.ID, 60).
				Return(grown, nil),
		)

		svc := service.NewLicenseService(poolRepo, assignRepo, subRepo)
		updated, err := svc.UpdatePoolAllocation(context.Background(), pool.ID, 60)

		assert.NoError(t, err)
		assert.Equal(t, 60, updated.AllocatedSeats)
		assert.Equal(t, 20, updated.AvailableSeats)
	})

	t.Run("refuses growth beyond the subscription headroom", func(t *testing.T) {
		poolRepo := mocks.NewMockLicensePoolRepositoryIface(ctrl)
		assignRepo := mocks.NewMockLicenseAssignmentRepositoryIface(ctrl)
		subRepo := mocks.NewMockSubscriptionRepositoryIface(ctrl)

		gomock.InOrder(
			poolRepo.EXPECT().
				FindByID(gomock.Any(), pool.ID).
				Return(pool, nil),
			subRepo.EXPECT().
				FindByID(gomock.Any(), subID).
				Return(&model.OrganizationSubscription{ID: subID, AvailableSeats: 5}, nil),
		)

		svc := service.NewLicenseService(poolRepo, assignRepo, subRepo)
		_, err := svc.UpdatePoolAllocation(context.Background(), pool.ID, 60)

		assert.ErrorIs(t, err, domain.ErrInsufficientSeats)
	})
}
