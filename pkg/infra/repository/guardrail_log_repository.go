package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/NeuralTrust/TrustGuard/pkg/domain"
	"github.com/NeuralTrust/TrustGuard/pkg/domain/guardrail_log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const guardrailLogEntity = "guardrail_log"

type guardrailLogRepository struct {
	db *gorm.DB
}

func NewGuardrailLogRepository(db *gorm.DB) guardrail_log.Repository {
	return &guardrailLogRepository{
		db: db,
	}
}

func (r *guardrailLogRepository) Save(ctx context.Context, log *guardrail_log.GuardrailLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *guardrailLogRepository) Get(ctx context.Context, id uuid.UUID) (*guardrail_log.GuardrailLog, error) {
	var entity guardrail_log.GuardrailLog
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(guardrailLogEntity, id)
		}
		return nil, err
	}
	return &entity, nil
}

func (r *guardrailLogRepository) ListPending(
	ctx context.Context,
	filter guardrail_log.PendingFilter,
) ([]guardrail_log.GuardrailLog, int64, error) {
	query := r.db.WithContext(ctx).Model(&guardrail_log.GuardrailLog{})
	if filter.OrganizationID != "" {
		query = query.Where("organization_id = ?", filter.OrganizationID)
	}
	if filter.Severity != nil {
		query = query.Where("severity = ?", *filter.Severity)
	}
	if filter.RequiresHumanReview != nil {
		query = query.Where("requires_human_review = ?", *filter.RequiresHumanReview)
	}
	if filter.OnlyUnreviewed {
		query = query.Where("reviewed_at IS NULL")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count guardrail logs: %w", err)
	}

	logs := make([]guardrail_log.GuardrailLog, 0)
	if err := query.
		Order("created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list guardrail logs: %w", err)
	}
	return logs, total, nil
}

// UpdateReview writes the review columns once. The reviewed_at guard keeps a
// concurrent second reviewer from overwriting the first decision.
func (r *guardrailLogRepository) UpdateReview(ctx context.Context, id uuid.UUID, review guardrail_log.Review) error {
	result := r.db.WithContext(ctx).
		Model(&guardrail_log.GuardrailLog{}).
		Where("id = ? AND reviewed_at IS NULL", id).
		Updates(map[string]interface{}{
			"reviewed_by":     review.ReviewedBy,
			"review_decision": string(review.Decision),
			"review_notes":    review.Notes,
			"reviewed_at":     review.ReviewedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&guardrail_log.GuardrailLog{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domain.NewNotFoundError(guardrailLogEntity, id)
	}
	return guardrail_log.ErrAlreadyReviewed
}
