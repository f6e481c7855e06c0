package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/campushq/licensing/internal/domain"
	"github.com/campushq/licensing/internal/model"
	"github.com/campushq/licensing/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestAssignmentCreateClaimsPoolSeat(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewLicenseAssignmentRepository(db)

	assignment := &model.LicenseAssignment{
		LicensePoolID:              uuid.New(),
		OrganizationSubscriptionID: uuid.New(),
		UserID:                     uuid.New(),
		MemberType:                 model.MemberTypeStudent,
		AssignedByID:               uuid.New(),
		Status:                     model.AssignmentActive,
		AssignedAt:                 time.Now().UTC(),
	}

	t.Run("inserts after both conditional claims succeed", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "license_pools" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "organization_subscriptions" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "license_assignments"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
		mock.ExpectCommit()

		err := repo.Create(context.Background(), assignment)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when the pool guard matches no rows", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "license_pools" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Create(context.Background(), assignment)

		assert.ErrorIs(t, err, domain.ErrNoAvailableSeats)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when the subscription guard matches no rows", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "license_pools" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "organization_subscriptions" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Create(context.Background(), assignment)

		assert.ErrorIs(t, err, domain.ErrNoAvailableSeats)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAssignmentRevokeReleasesSeat(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewLicenseAssignmentRepository(db)

	assignmentID := uuid.New()
	poolID := uuid.New()
	subID := uuid.New()
	userID := uuid.New()
	adminID := uuid.New()

	assignmentRow := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "license_pool_id", "organization_subscription_id", "user_id", "status"}).
			AddRow(assignmentID, poolID, subID, userID, "active")
	}

	t.Run("releases the seat back to pool and subscription", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "license_assignments"`)).
			WillReturnRows(assignmentRow())
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "license_assignments" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "license_pools" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "organization_subscriptions" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Revoke(context.Background(), assignmentID, "Graduated", adminID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("released seat can be claimed by the same user again", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "license_assignments"`)).
			WillReturnRows(assignmentRow())
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "license_assignments" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "license_pools" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "organization_subscriptions" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Revoke(context.Background(), assignmentID, "Rotating seat", adminID))

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "license_pools" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "organization_subscriptions" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "license_assignments"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
		mock.ExpectCommit()

		err := repo.Create(context.Background(), &model.LicenseAssignment{
			LicensePoolID:              poolID,
			OrganizationSubscriptionID: subID,
			UserID:                     userID,
			MemberType:                 model.MemberTypeStudent,
			AssignedByID:               adminID,
			Status:                     model.AssignmentActive,
			AssignedAt:                 time.Now().UTC(),
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("leaves counters alone when already unassigned", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "license_assignments"`)).
			WillReturnRows(assignmentRow())
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "license_assignments" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.Revoke(context.Background(), assignmentID, "Graduated", adminID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("fails when the assignment does not exist", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "license_assignments"`)).
			WillReturnError(gorm.ErrRecordNotFound)
		mock.ExpectRollback()

		err := repo.Revoke(context.Background(), uuid.New(), "Graduated", adminID)

		assert.ErrorIs(t, err, domain.ErrAssignmentNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
