package types

import (
	"github.com/google/uuid"
)

// PersonalizedLearningPayload is the aggregator output consumed by the
// report formatters. The JSON field names are a stable contract.
type PersonalizedLearningPayload struct {
	StudentInfo       StudentInfo            `json:"student_info"`
	EnrolledCourses   []EnrolledCourse       `json:"enrolled_courses"`
	Scores            []ScoreRow             `json:"scores"`
	Grade             string                 `json:"grade"`
	RiskLevel         string                 `json:"risk_level"`
	Recommendation    string                 `json:"recommendation"`
	GPAEstimate       float64                `json:"gpa_estimate"`
	EngagementIndex   float64                `json:"engagement_index"`
	RiskBreakdown     RiskBreakdown          `json:"risk_breakdown"`
	PerformanceTrend  []TrendPoint           `json:"performance_trend"`
	CoursePerformance []CoursePerformanceRow `json:"course_performance"`
	WeakCourses       []WeakCourse           `json:"weak_courses"`
	StrengthCourses   []StrengthCourse       `json:"strength_courses"`
	PredictedOutcome  string                 `json:"predicted_outcome"`
	StudyPlan         StudyPlan              `json:"personalized_study_plan"`
	Interventions     []string               `json:"intervention_recommendations"`
	NextActions       []string               `json:"next_actions"`
}

type StudentInfo struct {
	StudentID    uuid.UUID `json:"student_id"`
	MatricNo     string    `json:"matric_no"`
	FullName     string    `json:"full_name"`
	Level        int       `json:"level"`
	DepartmentID uuid.UUID `json:"department_id"`
}

type EnrolledCourse struct {
	CourseCode  string `json:"course_code"`
	CourseTitle string `json:"course_title"`
	CreditUnits int    `json:"credit_units"`
	Session     string `json:"session"`
	Semester    string `json:"semester"`
}

type ScoreRow struct {
	CourseCode string  `json:"course_code"`
	CAScore    float64 `json:"ca_score"`
	ExamScore  float64 `json:"exam_score"`
	TotalScore float64 `json:"total_score"`
}

type RiskBreakdown struct {
	Low    int `json:"LOW"`
	Medium int `json:"MEDIUM"`
	High   int `json:"HIGH"`
}

type TrendPoint struct {
	Session      string  `json:"session"`
	AverageScore float64 `json:"average_score"`
}

type CoursePerformanceRow struct {
	CourseCode  string  `json:"course_code"`
	CourseTitle string  `json:"course_title"`
	CreditUnits int     `json:"credit_units"`
	Session     string  `json:"session"`
	Semester    string  `json:"semester"`
	CAScore     float64 `json:"ca_score"`
	ExamScore   float64 `json:"exam_score"`
	TotalScore  float64 `json:"total_score"`
	Grade       string  `json:"grade"`
	Status      string  `json:"status"`
}

type WeakCourse struct {
	CourseCode  string  `json:"course_code"`
	CourseTitle string  `json:"course_title"`
	TotalScore  float64 `json:"total_score"`
	Status      string  `json:"status"`
}

type StrengthCourse struct {
	CourseCode  string  `json:"course_code"`
	CourseTitle string  `json:"course_title"`
	TotalScore  float64 `json:"total_score"`
}

type StudyPlan struct {
	WeeklyTargetHours int            `json:"weekly_target_hours"`
	WeeklySchedule    []StudyPlanDay `json:"weekly_schedule"`
}

type StudyPlanDay struct {
	Day   string `json:"day"`
	Focus string `json:"focus"`
	Hours int    `json:"hours"`
}
