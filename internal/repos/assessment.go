package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tekerra/acadlens-backend/internal/logger"
	"github.com/Tekerra/acadlens-backend/internal/types"
)

type AssessmentRepo interface {
	// Upsert writes the single assessment row for an enrollment,
	// overwriting scores and grade when one already exists.
	Upsert(ctx context.Context, tx *gorm.DB, assessment *types.Assessment) error
	GetByEnrollmentID(ctx context.Context, tx *gorm.DB, enrollmentID uuid.UUID) (*types.Assessment, error)
	CountByEnrollmentID(ctx context.Context, tx *gorm.DB, enrollmentID uuid.UUID) (int64, error)
}

type assessmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssessmentRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentRepo {
	return &assessmentRepo{db: db, log: baseLog.With("repo", "AssessmentRepo")}
}

func (ar *assessmentRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return ar.db
}

func (ar *assessmentRepo) Upsert(ctx context.Context, tx *gorm.DB, assessment *types.Assessment) error {
	h := ar.handle(tx).WithContext(ctx)

	var existing types.Assessment
	err := h.Where("enrollment_id = ?", assessment.EnrollmentID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if assessment.ID == uuid.Nil {
			assessment.ID = uuid.New()
		}
		return h.Create(assessment).Error
	}
	if err != nil {
		return err
	}

	assessment.ID = existing.ID
	assessment.CreatedAt = existing.CreatedAt
	return h.Model(&existing).Updates(map[string]interface{}{
		"ca_score":    assessment.CAScore,
		"exam_score":  assessment.ExamScore,
		"total_score": assessment.TotalScore,
		"grade":       assessment.Grade,
	}).Error
}

func (ar *assessmentRepo) GetByEnrollmentID(ctx context.Context, tx *gorm.DB, enrollmentID uuid.UUID) (*types.Assessment, error) {
	var result types.Assessment
	if err := ar.handle(tx).WithContext(ctx).
		Where("enrollment_id = ?", enrollmentID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (ar *assessmentRepo) CountByEnrollmentID(ctx context.Context, tx *gorm.DB, enrollmentID uuid.UUID) (int64, error) {
	var count int64
	if err := ar.handle(tx).WithContext(ctx).
		Model(&types.Assessment{}).
		Where("enrollment_id = ?", enrollmentID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
