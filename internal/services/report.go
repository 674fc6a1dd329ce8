package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/Tekerra/acadlens-backend/internal/apierr"
	"github.com/Tekerra/acadlens-backend/internal/types"
)

// BuildStudentReportCSV renders the personalized learning payload as a
// sectioned CSV document for download.
func BuildStudentReportCSV(payload *types.PersonalizedLearningPayload) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	write := func(record ...string) {
		_ = w.Write(record)
	}

	write("Student Personalized Learning Report")
	write()
	write("Matric No", payload.StudentInfo.MatricNo)
	write("Full Name", payload.StudentInfo.FullName)
	write("Level", strconv.Itoa(payload.StudentInfo.Level))
	write("GPA Estimate", formatFloat(payload.GPAEstimate))
	write("Risk Level", payload.RiskLevel)
	write("Predicted Outcome", payload.PredictedOutcome)
	write("Engagement Index", formatFloat(payload.EngagementIndex))
	write()

	write("Risk Breakdown")
	write("LOW", "MEDIUM", "HIGH")
	write(
		strconv.Itoa(payload.RiskBreakdown.Low),
		strconv.Itoa(payload.RiskBreakdown.Medium),
		strconv.Itoa(payload.RiskBreakdown.High),
	)
	write()

	write("Course Performance")
	write("Course Code", "Course Title", "Session", "Semester", "CA", "Exam", "Total", "Grade", "Status")
	for _, row := range payload.CoursePerformance {
		write(
			row.CourseCode,
			row.CourseTitle,
			row.Session,
			row.Semester,
			formatFloat(row.CAScore),
			formatFloat(row.ExamScore),
			formatFloat(row.TotalScore),
			row.Grade,
			row.Status,
		)
	}
	write()

	write("Performance Trend")
	write("Session", "Average Score")
	for _, point := range payload.PerformanceTrend {
		write(point.Session, formatFloat(point.AverageScore))
	}
	write()

	write("Personalized Study Plan")
	write("Weekly Target Hours", strconv.Itoa(payload.StudyPlan.WeeklyTargetHours))
	write("Day", "Focus", "Hours")
	for _, day := range payload.StudyPlan.WeeklySchedule {
		write(day.Day, day.Focus, strconv.Itoa(day.Hours))
	}
	write()

	write("Intervention Recommendations")
	for _, item := range payload.Interventions {
		write(item)
	}
	write()

	write("Next Actions")
	for _, item := range payload.NextActions {
		write(item)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildStudentReportPDF is a placeholder until a PDF renderer ships.
func BuildStudentReportPDF(_ *types.PersonalizedLearningPayload) ([]byte, error) {
	return nil, apierr.New(501, "pdf_unavailable", fmt.Errorf("PDF export unavailable"))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
