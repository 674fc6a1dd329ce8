package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tekerra/acadlens-backend/internal/grading"
	"github.com/Tekerra/acadlens-backend/internal/logger"
	"github.com/Tekerra/acadlens-backend/internal/repos"
	"github.com/Tekerra/acadlens-backend/internal/types"
)

// ScoreRecord is what the recorder hands back to the ingestion pipeline
// for each scored enrollment.
type ScoreRecord struct {
	EnrollmentID   uuid.UUID         `json:"enrollment_id"`
	TotalScore     float64           `json:"total_score"`
	Grade          string            `json:"grade"`
	RiskLevel      grading.RiskLevel `json:"risk_level"`
	Recommendation string            `json:"recommendation"`
}

// AnalyticsService derives grade and risk for an enrollment's scores
// and upserts the single assessment and analytics rows behind it. It
// stages writes on the caller's transaction and never commits itself;
// score validation is the caller's job.
type AnalyticsService interface {
	Record(ctx context.Context, tx *gorm.DB, enrollment *types.Enrollment, caScore, examScore float64) (*ScoreRecord, error)
}

type analyticsService struct {
	log            *logger.Logger
	assessmentRepo repos.AssessmentRepo
	analyticsRepo  repos.AnalyticsResultRepo
}

func NewAnalyticsService(log *logger.Logger, assessmentRepo repos.AssessmentRepo, analyticsRepo repos.AnalyticsResultRepo) AnalyticsService {
	return &analyticsService{
		log:            log.With("service", "AnalyticsService"),
		assessmentRepo: assessmentRepo,
		analyticsRepo:  analyticsRepo,
	}
}

func (as *analyticsService) Record(ctx context.Context, tx *gorm.DB, enrollment *types.Enrollment, caScore, examScore float64) (*ScoreRecord, error) {
	totalScore := grading.Total(caScore, examScore)
	grade := grading.GradeFor(totalScore)
	riskLevel := grading.RiskLevelFor(totalScore)
	recommendation := grading.Recommendation(riskLevel, grade)

	assessment := &types.Assessment{
		EnrollmentID: enrollment.ID,
		CAScore:      caScore,
		ExamScore:    examScore,
		TotalScore:   totalScore,
		Grade:        grade,
	}
	if err := as.assessmentRepo.Upsert(ctx, tx, assessment); err != nil {
		return nil, err
	}

	result := &types.AnalyticsResult{
		EnrollmentID:   enrollment.ID,
		RiskLevel:      string(riskLevel),
		Recommendation: recommendation,
		DateComputed:   time.Now().UTC(),
	}
	if err := as.analyticsRepo.Upsert(ctx, tx, result); err != nil {
		return nil, err
	}

	return &ScoreRecord{
		EnrollmentID:   enrollment.ID,
		TotalScore:     totalScore,
		Grade:          grade,
		RiskLevel:      riskLevel,
		Recommendation: recommendation,
	}, nil
}
