package services

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Tekerra/acadlens-backend/internal/types"
)

func testStudent() *types.Student {
	return &types.Student{
		ID:           uuid.New(),
		MatricNo:     "CSC/2022/101",
		FullName:     "Ada Obi",
		Gender:       "F",
		Level:        400,
		DepartmentID: uuid.New(),
	}
}

func assessedEnrollment(session string, total float64, grade, risk string, at time.Time) *types.Enrollment {
	enrollmentID := uuid.New()
	return &types.Enrollment{
		ID:       enrollmentID,
		Session:  session,
		Semester: "FIRST",
		Course: &types.Course{
			ID:          uuid.New(),
			CourseCode:  "CSC" + session[2:4],
			CourseTitle: "Course",
			CreditUnits: 3,
		},
		Assessment: &types.Assessment{
			ID:           uuid.New(),
			EnrollmentID: enrollmentID,
			CAScore:      total / 2,
			ExamScore:    total / 2,
			TotalScore:   total,
			Grade:        grade,
			CreatedAt:    at,
		},
		AnalyticsResult: &types.AnalyticsResult{
			ID:           uuid.New(),
			EnrollmentID: enrollmentID,
			RiskLevel:    risk,
			DateComputed: at,
		},
	}
}

func TestBuildPayloadZeroEnrollments(t *testing.T) {
	payload := BuildPersonalizedLearningPayload(testStudent(), nil, 0)

	if payload.GPAEstimate != 0 {
		t.Fatalf("expected gpa 0, got %v", payload.GPAEstimate)
	}
	if payload.EngagementIndex != 0 {
		t.Fatalf("expected engagement 0, got %v", payload.EngagementIndex)
	}
	if len(payload.WeakCourses) != 0 {
		t.Fatalf("expected no weak courses, got %+v", payload.WeakCourses)
	}
	if payload.PredictedOutcome != "On track for strong academic standing" {
		t.Fatalf("expected default outcome, got %q", payload.PredictedOutcome)
	}
	if payload.StudyPlan.WeeklyTargetHours != 8 {
		t.Fatalf("expected base weekly hours 8, got %d", payload.StudyPlan.WeeklyTargetHours)
	}
	if len(payload.Interventions) != 3 {
		t.Fatalf("expected 3 interventions, got %d", len(payload.Interventions))
	}
	if payload.Scores == nil || payload.EnrolledCourses == nil {
		t.Fatalf("expected empty slices, not nil")
	}
}

func TestPredictOutcomePriority(t *testing.T) {
	cases := []struct {
		name   string
		gpa    float64
		high   int
		medium int
		want   string
	}{
		{"low gpa alone fires urgent", 1.5, 0, 0, "Needs urgent academic intervention"},
		{"two high risks fire urgent", 4.5, 2, 0, "Needs urgent academic intervention"},
		{"single high risk", 4.5, 1, 0, "Can improve with targeted support"},
		{"two medium risks", 4.5, 0, 2, "Can improve with targeted support"},
		{"mid gpa", 2.5, 0, 0, "Can improve with targeted support"},
		{"healthy record", 4.5, 0, 1, "On track for strong academic standing"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := predictOutcome(tc.gpa, tc.high, tc.medium); got != tc.want {
				t.Fatalf("predictOutcome(%v,%d,%d) = %q, want %q", tc.gpa, tc.high, tc.medium, got, tc.want)
			}
		})
	}
}

func TestBuildPayloadWeeklyHoursClamp(t *testing.T) {
	now := time.Now().UTC()
	var enrollments []*types.Enrollment
	for i := 0; i < 10; i++ {
		risk := "MEDIUM"
		if i < 5 {
			risk = "HIGH"
		}
		enrollments = append(enrollments, assessedEnrollment("2025/2026", 30, "F", risk, now))
	}

	payload := BuildPersonalizedLearningPayload(testStudent(), enrollments, 1.0)
	if payload.StudyPlan.WeeklyTargetHours != 26 {
		t.Fatalf("expected weekly hours clamped to 26, got %d", payload.StudyPlan.WeeklyTargetHours)
	}
	if payload.RiskBreakdown.High != 5 || payload.RiskBreakdown.Medium != 5 {
		t.Fatalf("unexpected risk breakdown: %+v", payload.RiskBreakdown)
	}
	if len(payload.Interventions) != 4 {
		t.Fatalf("expected urgent intervention prepended, got %d entries", len(payload.Interventions))
	}
	if payload.Interventions[0] != "Immediate remediation plan required with lecturer and advisor" {
		t.Fatalf("expected urgent intervention first, got %q", payload.Interventions[0])
	}
}

func TestBuildPayloadTrendAndEngagement(t *testing.T) {
	now := time.Now().UTC()
	enrollments := []*types.Enrollment{
		assessedEnrollment("2025/2026", 70, "A", "LOW", now),
		assessedEnrollment("2024/2025", 55.555, "C", "LOW", now.Add(-time.Hour)),
		assessedEnrollment("2024/2025", 44.444, "D", "MEDIUM", now.Add(-2*time.Hour)),
	}
	// An enrollment without scores still counts against engagement.
	enrollments = append(enrollments, &types.Enrollment{
		ID:       uuid.New(),
		Session:  "2025/2026",
		Semester: "FIRST",
		Course:   &types.Course{ID: uuid.New(), CourseCode: "CSC499", CourseTitle: "Project", CreditUnits: 6},
	})

	payload := BuildPersonalizedLearningPayload(testStudent(), enrollments, 3.2)

	if len(payload.PerformanceTrend) != 2 {
		t.Fatalf("expected 2 trend points, got %+v", payload.PerformanceTrend)
	}
	if payload.PerformanceTrend[0].Session != "2024/2025" || payload.PerformanceTrend[1].Session != "2025/2026" {
		t.Fatalf("expected ascending sessions, got %+v", payload.PerformanceTrend)
	}
	if payload.PerformanceTrend[0].AverageScore != 50.0 {
		t.Fatalf("expected 2024/2025 average 50.0, got %v", payload.PerformanceTrend[0].AverageScore)
	}
	if payload.EngagementIndex != 75.0 {
		t.Fatalf("expected engagement 75.0 (3 of 4 assessed), got %v", payload.EngagementIndex)
	}
	if len(payload.EnrolledCourses) != 4 {
		t.Fatalf("expected 4 enrolled courses, got %d", len(payload.EnrolledCourses))
	}
	if len(payload.WeakCourses) != 1 || payload.WeakCourses[0].Status != "AT_RISK" {
		t.Fatalf("expected one AT_RISK weak course, got %+v", payload.WeakCourses)
	}
	if len(payload.StrengthCourses) != 1 {
		t.Fatalf("expected one strength course, got %+v", payload.StrengthCourses)
	}
}

// The "latest" grade and risk track independent timestamps: a newer
// analytics recompute moves the risk pointer without moving the grade.
func TestBuildPayloadLatestPointersDiverge(t *testing.T) {
	now := time.Now().UTC()
	older := assessedEnrollment("2024/2025", 72, "A", "LOW", now.Add(-time.Hour))
	newer := assessedEnrollment("2025/2026", 35, "F", "HIGH", now)
	newer.Assessment.CreatedAt = now.Add(-2 * time.Hour)

	payload := BuildPersonalizedLearningPayload(testStudent(), []*types.Enrollment{older, newer}, 2.5)

	if payload.Grade != "A" {
		t.Fatalf("expected latest grade A (older enrollment re-scored last), got %q", payload.Grade)
	}
	if payload.RiskLevel != "HIGH" {
		t.Fatalf("expected latest risk HIGH, got %q", payload.RiskLevel)
	}
}
