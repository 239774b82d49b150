package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/NeuralTrust/TrustGuard/pkg/domain"
	"github.com/NeuralTrust/TrustGuard/pkg/domain/guardrail_log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

var (
	reviewUpdateSQL = `^UPDATE "guardrail_logs" SET .+ WHERE id = \$\d+ AND reviewed_at IS NULL$`
	countByIDSQL    = `^SELECT count\(\*\) FROM "guardrail_logs" WHERE id = \$1$`
)

func testReview() guardrail_log.Review {
	return guardrail_log.Review{
		ReviewedBy: "alice",
		Decision:   guardrail_log.ReviewApproved,
		ReviewedAt: time.Now().UTC(),
	}
}

func TestGuardrailLogRepository_UpdateReview(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGuardrailLogRepository(db)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(reviewUpdateSQL).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateReview(context.Background(), id, testReview())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuardrailLogRepository_UpdateReview_AlreadyReviewed(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGuardrailLogRepository(db)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(reviewUpdateSQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectQuery(countByIDSQL).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	err := repo.UpdateReview(context.Background(), id, testReview())

	assert.ErrorIs(t, err, guardrail_log.ErrAlreadyReviewed)
	assert.False(t, domain.IsNotFoundError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuardrailLogRepository_UpdateReview_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGuardrailLogRepository(db)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(reviewUpdateSQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectQuery(countByIDSQL).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

	err := repo.UpdateReview(context.Background(), id, testReview())

	assert.True(t, domain.IsNotFoundError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuardrailLogRepository_UpdateReview_ExecError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGuardrailLogRepository(db)
	dbErr := errors.New("connection reset")

	mock.ExpectBegin()
	mock.ExpectExec(reviewUpdateSQL).WillReturnError(dbErr)
	mock.ExpectRollback()

	err := repo.UpdateReview(context.Background(), uuid.New(), testReview())

	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuardrailLogRepository_ListPending(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGuardrailLogRepository(db)
	severity := "high"
	id := uuid.New()

	mock.ExpectQuery(`^SELECT count\(\*\) FROM "guardrail_logs" WHERE organization_id = \$1 AND severity = \$2 AND reviewed_at IS NULL$`).
		WithArgs("org-1", "high").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(21)))
	mock.ExpectQuery(`^SELECT \* FROM "guardrail_logs" WHERE organization_id = \$1 AND severity = \$2 AND reviewed_at IS NULL ORDER BY created_at DESC LIMIT .+ OFFSET .+$`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "request_id", "severity"}).
			AddRow(id.String(), "req-1", "high"))

	logs, total, err := repo.ListPending(context.Background(), guardrail_log.PendingFilter{
		OrganizationID: "org-1",
		Severity:       &severity,
		OnlyUnreviewed: true,
		Offset:         20,
		Limit:          10,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(21), total)
	require.Len(t, logs, 1)
	assert.Equal(t, id, logs[0].ID)
	assert.Equal(t, "req-1", logs[0].RequestID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuardrailLogRepository_ListPending_RequiresHumanReviewOnly(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGuardrailLogRepository(db)
	requires := true

	mock.ExpectQuery(`^SELECT count\(\*\) FROM "guardrail_logs" WHERE requires_human_review = \$1$`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery(`^SELECT \* FROM "guardrail_logs" WHERE requires_human_review = \$1 ORDER BY created_at DESC LIMIT .+$`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	logs, total, err := repo.ListPending(context.Background(), guardrail_log.PendingFilter{
		RequiresHumanReview: &requires,
		Limit:               50,
	})

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, logs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuardrailLogRepository_GetNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGuardrailLogRepository(db)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "guardrail_logs" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	entity, err := repo.Get(context.Background(), id)

	assert.Nil(t, entity)
	assert.True(t, domain.IsNotFoundError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
