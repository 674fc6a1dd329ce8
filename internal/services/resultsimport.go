package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tekerra/acadlens-backend/internal/apierr"
	"github.com/Tekerra/acadlens-backend/internal/logger"
	"github.com/Tekerra/acadlens-backend/internal/normalization"
	"github.com/Tekerra/acadlens-backend/internal/repos"
)

var requiredColumns = []string{"matric_no", "course_code", "ca_score", "exam_score"}

// SchemaError is the one batch-fatal failure mode: the upload's header
// is missing required columns, so no row can be salvaged.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("CSV missing required columns: %s", strings.Join(e.Missing, ", "))
}

type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

type ImportSummary struct {
	Processed          int        `json:"processed"`
	CreatedEnrollments int        `json:"created_enrollments"`
	Errors             []RowError `json:"errors"`
}

// ResultsImportService runs the bulk score upload: schema check, then
// per-row resolution, authorization and scoring, accumulating row
// errors without aborting the batch. All staged writes commit once at
// the end of the batch, so the summary's error list is always atomic
// with the data it describes.
type ResultsImportService interface {
	ImportCSV(ctx context.Context, r io.Reader, lecturerID uuid.UUID, session, semester string) (*ImportSummary, error)
}

type resultsImportService struct {
	db               *gorm.DB
	log              *logger.Logger
	studentRepo      repos.StudentRepo
	courseRepo       repos.CourseRepo
	enrollmentRepo   repos.EnrollmentRepo
	analyticsService AnalyticsService
}

func NewResultsImportService(
	db *gorm.DB,
	log *logger.Logger,
	studentRepo repos.StudentRepo,
	courseRepo repos.CourseRepo,
	enrollmentRepo repos.EnrollmentRepo,
	analyticsService AnalyticsService,
) ResultsImportService {
	return &resultsImportService{
		db:               db,
		log:              log.With("service", "ResultsImportService"),
		studentRepo:      studentRepo,
		courseRepo:       courseRepo,
		enrollmentRepo:   enrollmentRepo,
		analyticsService: analyticsService,
	}
}

func (ris *resultsImportService) ImportCSV(ctx context.Context, r io.Reader, lecturerID uuid.UUID, session, semester string) (*ImportSummary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, apierr.BadRequest("invalid_csv", fmt.Errorf("read CSV header: %w", err))
	}

	columnIndex := map[string]int{}
	for i, name := range header {
		columnIndex[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := columnIndex[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, apierr.BadRequest("invalid_csv_schema", &SchemaError{Missing: missing})
	}

	summary := &ImportSummary{Errors: []RowError{}}
	err = ris.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rowNum := 0
		for {
			record, readErr := reader.Read()
			if readErr == io.EOF {
				return nil
			}
			rowNum++
			if readErr != nil {
				summary.Errors = append(summary.Errors, RowError{Row: rowNum, Error: readErr.Error()})
				continue
			}
			if rowErr := ris.processRow(ctx, tx, record, columnIndex, lecturerID, session, semester, summary); rowErr != nil {
				summary.Errors = append(summary.Errors, RowError{Row: rowNum, Error: rowErr.Error()})
			}
		}
	})
	if err != nil {
		return nil, fmt.Errorf("commit results import: %w", err)
	}

	ris.log.Info("Results import finished",
		"lecturer_id", lecturerID,
		"session", session,
		"semester", semester,
		"processed", summary.Processed,
		"created_enrollments", summary.CreatedEnrollments,
		"row_errors", len(summary.Errors),
	)
	return summary, nil
}

func (ris *resultsImportService) processRow(
	ctx context.Context,
	tx *gorm.DB,
	record []string,
	columnIndex map[string]int,
	lecturerID uuid.UUID,
	session, semester string,
	summary *ImportSummary,
) error {
	field := func(name string) string {
		idx := columnIndex[name]
		if idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	matricNo := strings.TrimSpace(field("matric_no"))
	courseCode := normalization.CourseCode(field("course_code"))

	caScore, err := strconv.ParseFloat(strings.TrimSpace(field("ca_score")), 64)
	if err != nil {
		return fmt.Errorf("invalid ca_score %q", field("ca_score"))
	}
	examScore, err := strconv.ParseFloat(strings.TrimSpace(field("exam_score")), 64)
	if err != nil {
		return fmt.Errorf("invalid exam_score %q", field("exam_score"))
	}

	student, err := ris.studentRepo.GetByMatricNo(ctx, tx, matricNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("student not found for matric_no=%s", matricNo)
		}
		return err
	}

	course, err := ris.courseRepo.GetByCode(ctx, tx, courseCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("course not found for course_code=%s", courseCode)
		}
		return err
	}
	if course.LecturerID == nil || *course.LecturerID != lecturerID {
		return fmt.Errorf("unauthorized upload for course=%s", courseCode)
	}

	enrollment, created, err := ris.enrollmentRepo.FindOrCreate(ctx, tx, student.ID, course.ID, session, semester)
	if err != nil {
		return err
	}
	if created {
		summary.CreatedEnrollments++
	}

	if _, err := ris.analyticsService.Record(ctx, tx, enrollment, caScore, examScore); err != nil {
		return err
	}
	summary.Processed++
	return nil
}
