package services

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tekerra/acadlens-backend/internal/grading"
	"github.com/Tekerra/acadlens-backend/internal/logger"
	"github.com/Tekerra/acadlens-backend/internal/repos"
	"github.com/Tekerra/acadlens-backend/internal/types"
)

// PersonalizationService assembles the per-student learning payload
// from everything the system knows: enrollments, assessments,
// analytics results and the GPA estimate.
type PersonalizationService interface {
	PayloadForStudent(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) (*types.PersonalizedLearningPayload, error)
}

type personalizationService struct {
	log                *logger.Logger
	studentRepo        repos.StudentRepo
	enrollmentRepo     repos.EnrollmentRepo
	aggregationService AggregationService
}

func NewPersonalizationService(
	baseLog *logger.Logger,
	studentRepo repos.StudentRepo,
	enrollmentRepo repos.EnrollmentRepo,
	aggregationService AggregationService,
) PersonalizationService {
	return &personalizationService{
		log:                baseLog.With("service", "PersonalizationService"),
		studentRepo:        studentRepo,
		enrollmentRepo:     enrollmentRepo,
		aggregationService: aggregationService,
	}
}

func (ps *personalizationService) PayloadForStudent(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) (*types.PersonalizedLearningPayload, error) {
	student, err := ps.studentRepo.GetByID(ctx, tx, studentID)
	if err != nil {
		return nil, err
	}
	enrollments, err := ps.enrollmentRepo.ListByStudentWithHistory(ctx, tx, studentID)
	if err != nil {
		return nil, err
	}
	gpa, err := ps.aggregationService.StudentGPAEstimate(ctx, tx, studentID)
	if err != nil {
		return nil, err
	}
	return BuildPersonalizedLearningPayload(student, enrollments, gpa), nil
}

// BuildPersonalizedLearningPayload derives the full learning payload
// from an already-loaded student history. Pure over its inputs; the
// "latest" grade and risk fields each follow their own most recent
// timestamp, so they can legitimately come from different enrollments.
func BuildPersonalizedLearningPayload(student *types.Student, enrollments []*types.Enrollment, gpa float64) *types.PersonalizedLearningPayload {
	payload := &types.PersonalizedLearningPayload{
		StudentInfo: types.StudentInfo{
			StudentID:    student.ID,
			MatricNo:     student.MatricNo,
			FullName:     student.FullName,
			Level:        student.Level,
			DepartmentID: student.DepartmentID,
		},
		EnrolledCourses:   []types.EnrolledCourse{},
		Scores:            []types.ScoreRow{},
		PerformanceTrend:  []types.TrendPoint{},
		CoursePerformance: []types.CoursePerformanceRow{},
		WeakCourses:       []types.WeakCourse{},
		StrengthCourses:   []types.StrengthCourse{},
		GPAEstimate:       gpa,
	}

	sessionScores := map[string][]float64{}
	var latestMarker *int64

	for _, enrollment := range enrollments {
		course := enrollment.Course
		if course == nil {
			continue
		}
		payload.EnrolledCourses = append(payload.EnrolledCourses, types.EnrolledCourse{
			CourseCode:  course.CourseCode,
			CourseTitle: course.CourseTitle,
			CreditUnits: course.CreditUnits,
			Session:     enrollment.Session,
			Semester:    enrollment.Semester,
		})

		analytics := enrollment.AnalyticsResult
		if analytics != nil {
			switch analytics.RiskLevel {
			case string(grading.RiskLow):
				payload.RiskBreakdown.Low++
			case string(grading.RiskMedium):
				payload.RiskBreakdown.Medium++
			case string(grading.RiskHigh):
				payload.RiskBreakdown.High++
			}
		}

		if assessment := enrollment.Assessment; assessment != nil {
			status := grading.CourseStatus(assessment.TotalScore)
			payload.CoursePerformance = append(payload.CoursePerformance, types.CoursePerformanceRow{
				CourseCode:  course.CourseCode,
				CourseTitle: course.CourseTitle,
				CreditUnits: course.CreditUnits,
				Session:     enrollment.Session,
				Semester:    enrollment.Semester,
				CAScore:     assessment.CAScore,
				ExamScore:   assessment.ExamScore,
				TotalScore:  assessment.TotalScore,
				Grade:       assessment.Grade,
				Status:      status,
			})
			payload.Scores = append(payload.Scores, types.ScoreRow{
				CourseCode: course.CourseCode,
				CAScore:    assessment.CAScore,
				ExamScore:  assessment.ExamScore,
				TotalScore: assessment.TotalScore,
			})
			sessionScores[enrollment.Session] = append(sessionScores[enrollment.Session], assessment.TotalScore)

			switch status {
			case grading.StatusCritical, grading.StatusAtRisk:
				payload.WeakCourses = append(payload.WeakCourses, types.WeakCourse{
					CourseCode:  course.CourseCode,
					CourseTitle: course.CourseTitle,
					TotalScore:  assessment.TotalScore,
					Status:      status,
				})
			case grading.StatusStrong:
				payload.StrengthCourses = append(payload.StrengthCourses, types.StrengthCourse{
					CourseCode:  course.CourseCode,
					CourseTitle: course.CourseTitle,
					TotalScore:  assessment.TotalScore,
				})
			}

			marker := assessment.CreatedAt.UnixNano()
			if latestMarker == nil || marker > *latestMarker {
				latestMarker = &marker
				payload.Grade = assessment.Grade
			}
		}

		if analytics != nil {
			marker := analytics.DateComputed.UnixNano()
			if latestMarker == nil || marker > *latestMarker {
				latestMarker = &marker
				payload.RiskLevel = analytics.RiskLevel
				payload.Recommendation = analytics.Recommendation
			}
		}
	}

	sessions := make([]string, 0, len(sessionScores))
	for session := range sessionScores {
		sessions = append(sessions, session)
	}
	sort.Strings(sessions)
	for _, session := range sessions {
		values := sessionScores[session]
		var sum float64
		for _, v := range values {
			sum += v
		}
		payload.PerformanceTrend = append(payload.PerformanceTrend, types.TrendPoint{
			Session:      session,
			AverageScore: grading.Round2(sum / float64(len(values))),
		})
	}

	if len(enrollments) > 0 {
		assessed := float64(len(payload.CoursePerformance))
		payload.EngagementIndex = grading.Round2(assessed / float64(len(enrollments)) * 100)
	}

	weeklyHours := 8 + 2*len(payload.WeakCourses) + 2*payload.RiskBreakdown.High + payload.RiskBreakdown.Medium
	if weeklyHours > 26 {
		weeklyHours = 26
	}
	payload.StudyPlan = types.StudyPlan{
		WeeklyTargetHours: weeklyHours,
		WeeklySchedule: []types.StudyPlanDay{
			{Day: "Monday", Focus: "Review lecture notes and summarize key concepts", Hours: 2},
			{Day: "Tuesday", Focus: "Practice past questions from weak courses", Hours: 2},
			{Day: "Wednesday", Focus: "Group study and peer explanation", Hours: 2},
			{Day: "Thursday", Focus: "Targeted revision for identified weak topics", Hours: 2},
			{Day: "Friday", Focus: "Mini self-test and reflection", Hours: 1},
		},
	}

	payload.Interventions = []string{
		"Meet course advisor once weekly if risk is MEDIUM or HIGH",
		"Attend departmental tutorial classes for weak courses",
		"Set bi-weekly progress checkpoints with measurable targets",
	}
	if payload.RiskBreakdown.High >= 1 {
		payload.Interventions = append([]string{"Immediate remediation plan required with lecturer and advisor"}, payload.Interventions...)
	}
	payload.NextActions = []string{
		"Complete one practice test before next class",
		"Spend at least 30 minutes daily on weak topic revision",
		"Track weekly goals and update progress every Friday",
	}

	// A student with no history has nothing to intervene on, so the
	// low-GPA clause does not apply to an all-zero record.
	if len(enrollments) == 0 {
		payload.PredictedOutcome = "On track for strong academic standing"
	} else {
		payload.PredictedOutcome = predictOutcome(gpa, payload.RiskBreakdown.High, payload.RiskBreakdown.Medium)
	}
	return payload
}

func predictOutcome(gpa float64, highRisk, mediumRisk int) string {
	switch {
	case highRisk >= 2 || gpa < 2.0:
		return "Needs urgent academic intervention"
	case highRisk == 1 || mediumRisk >= 2 || gpa < 3.0:
		return "Can improve with targeted support"
	default:
		return "On track for strong academic standing"
	}
}
