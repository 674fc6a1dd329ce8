package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tekerra/acadlens-backend/internal/logger"
	"github.com/Tekerra/acadlens-backend/internal/types"
)

type CourseRepo interface {
	Create(ctx context.Context, tx *gorm.DB, course *types.Course) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Course, error)
	GetByCode(ctx context.Context, tx *gorm.DB, courseCode string) (*types.Course, error)
	ListByLecturer(ctx context.Context, tx *gorm.DB, lecturerID uuid.UUID) ([]*types.Course, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type courseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseRepo(db *gorm.DB, baseLog *logger.Logger) CourseRepo {
	return &courseRepo{db: db, log: baseLog.With("repo", "CourseRepo")}
}

func (cr *courseRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return cr.db
}

func (cr *courseRepo) Create(ctx context.Context, tx *gorm.DB, course *types.Course) error {
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	return cr.handle(tx).WithContext(ctx).Create(course).Error
}

func (cr *courseRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Course, error) {
	var result types.Course
	if err := cr.handle(tx).WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (cr *courseRepo) GetByCode(ctx context.Context, tx *gorm.DB, courseCode string) (*types.Course, error) {
	var result types.Course
	if err := cr.handle(tx).WithContext(ctx).
		Where("course_code = ?", courseCode).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (cr *courseRepo) ListByLecturer(ctx context.Context, tx *gorm.DB, lecturerID uuid.UUID) ([]*types.Course, error) {
	var results []*types.Course
	if err := cr.handle(tx).WithContext(ctx).
		Where("lecturer_id = ?", lecturerID).
		Order("course_code asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *courseRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	var count int64
	if err := cr.handle(tx).WithContext(ctx).
		Model(&types.Course{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
