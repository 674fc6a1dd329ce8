package grading

import "math"

type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Staff roles plus the student role. The role claim in a token must be
// one of these.
const (
	RoleAdmin         = "ADMIN"
	RoleDean          = "DEAN"
	RoleHOD           = "HOD"
	RoleCourseAdvisor = "COURSE_ADVISOR"
	RoleLecturer      = "LECTURER"
	RoleStudent       = "STUDENT"
)

var StaffRoles = map[string]bool{
	RoleAdmin:         true,
	RoleDean:          true,
	RoleHOD:           true,
	RoleCourseAdvisor: true,
	RoleLecturer:      true,
}

// Course status bands used by the personalization aggregator.
const (
	StatusCritical = "CRITICAL"
	StatusAtRisk   = "AT_RISK"
	StatusStable   = "STABLE"
	StatusStrong   = "STRONG"
)

type gradeBand struct {
	Boundary float64
	Grade    string
}

// Descending threshold table, first match wins. Kept as an ordered list
// rather than a formula so the boundary semantics stay exact.
var gradeScale = []gradeBand{
	{70, "A"},
	{60, "B"},
	{50, "C"},
	{45, "D"},
	{40, "E"},
	{0, "F"},
}

var GradePoints = map[string]float64{
	"A": 5.0,
	"B": 4.0,
	"C": 3.0,
	"D": 2.0,
	"E": 1.0,
	"F": 0.0,
}

// Round2 rounds to 2 decimal places, half away from zero. Every derived
// score and metric in the system uses this one rule.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Total sums the continuous-assessment and exam scores. Range
// validation happens upstream in the ingestion pipeline.
func Total(caScore, examScore float64) float64 {
	return Round2(caScore + examScore)
}

func GradeFor(totalScore float64) string {
	for _, band := range gradeScale {
		if totalScore >= band.Boundary {
			return band.Grade
		}
	}
	return "F"
}

// RiskLevelFor classifies a total score. 49 is the last MEDIUM value
// and 50 the first LOW one; the band deliberately does not line up with
// the D/E grade boundaries.
func RiskLevelFor(totalScore float64) RiskLevel {
	switch {
	case totalScore < 40:
		return RiskHigh
	case totalScore <= 49:
		return RiskMedium
	default:
		return RiskLow
	}
}

// Recommendation returns the advisory text for a risk tier. The strings
// are contract data surfaced verbatim in reports; do not reword them.
func Recommendation(risk RiskLevel, grade string) string {
	switch risk {
	case RiskHigh:
		return "Immediate intervention required: attend tutorials, meet course advisor weekly, and follow a recovery study plan."
	case RiskMedium:
		return "Moderate risk: increase study hours, attend revision classes, and review weak topics with lecturer support."
	}
	if grade == "A" || grade == "B" {
		return "Maintain performance: continue consistent study habits and support peers through study groups."
	}
	return "Low risk: keep steady effort and monitor progress with periodic self-assessment."
}

// CourseStatus buckets a total score for the weak/strong course split.
func CourseStatus(totalScore float64) string {
	switch {
	case totalScore < 40:
		return StatusCritical
	case totalScore < 50:
		return StatusAtRisk
	case totalScore < 65:
		return StatusStable
	default:
		return StatusStrong
	}
}
