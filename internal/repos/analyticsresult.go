package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tekerra/acadlens-backend/internal/logger"
	"github.com/Tekerra/acadlens-backend/internal/types"
)

type AnalyticsResultRepo interface {
	// Upsert writes the single analytics row for an enrollment,
	// overwriting the risk level, recommendation and compute time when
	// one already exists.
	Upsert(ctx context.Context, tx *gorm.DB, result *types.AnalyticsResult) error
	GetByEnrollmentID(ctx context.Context, tx *gorm.DB, enrollmentID uuid.UUID) (*types.AnalyticsResult, error)
	CountByEnrollmentID(ctx context.Context, tx *gorm.DB, enrollmentID uuid.UUID) (int64, error)
}

type analyticsResultRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAnalyticsResultRepo(db *gorm.DB, baseLog *logger.Logger) AnalyticsResultRepo {
	return &analyticsResultRepo{db: db, log: baseLog.With("repo", "AnalyticsResultRepo")}
}

func (rr *analyticsResultRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return rr.db
}

func (rr *analyticsResultRepo) Upsert(ctx context.Context, tx *gorm.DB, result *types.AnalyticsResult) error {
	h := rr.handle(tx).WithContext(ctx)

	var existing types.AnalyticsResult
	err := h.Where("enrollment_id = ?", result.EnrollmentID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if result.ID == uuid.Nil {
			result.ID = uuid.New()
		}
		return h.Create(result).Error
	}
	if err != nil {
		return err
	}

	result.ID = existing.ID
	return h.Model(&existing).Updates(map[string]interface{}{
		"risk_level":     result.RiskLevel,
		"recommendation": result.Recommendation,
		"date_computed":  result.DateComputed,
	}).Error
}

func (rr *analyticsResultRepo) GetByEnrollmentID(ctx context.Context, tx *gorm.DB, enrollmentID uuid.UUID) (*types.AnalyticsResult, error) {
	var result types.AnalyticsResult
	if err := rr.handle(tx).WithContext(ctx).
		Where("enrollment_id = ?", enrollmentID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (rr *analyticsResultRepo) CountByEnrollmentID(ctx context.Context, tx *gorm.DB, enrollmentID uuid.UUID) (int64, error) {
	var count int64
	if err := rr.handle(tx).WithContext(ctx).
		Model(&types.AnalyticsResult{}).
		Where("enrollment_id = ?", enrollmentID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
