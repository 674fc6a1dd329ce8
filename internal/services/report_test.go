package services

import (
	"strings"
	"testing"
	"time"

	"github.com/Tekerra/acadlens-backend/internal/apierr"
	"github.com/Tekerra/acadlens-backend/internal/types"
)

func TestBuildStudentReportCSV(t *testing.T) {
	now := time.Now().UTC()
	payload := BuildPersonalizedLearningPayload(testStudent(), []*types.Enrollment{
		assessedEnrollment("2024/2025", 72, "A", "LOW", now.Add(-time.Hour)),
		assessedEnrollment("2025/2026", 38, "F", "HIGH", now),
	}, 2.5)

	data, err := BuildStudentReportCSV(payload)
	if err != nil {
		t.Fatalf("BuildStudentReportCSV: %v", err)
	}
	out := string(data)

	for _, want := range []string{
		"Student Personalized Learning Report",
		"Matric No,CSC/2022/101",
		"GPA Estimate,2.5",
		"Risk Breakdown",
		"LOW,MEDIUM,HIGH",
		"Course Performance",
		"Performance Trend",
		"2024/2025,72",
		"Personalized Study Plan",
		"Intervention Recommendations",
		"Immediate remediation plan required with lecturer and advisor",
		"Next Actions",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestBuildStudentReportPDFUnavailable(t *testing.T) {
	_, err := BuildStudentReportPDF(nil)
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr := apierr.From(err)
	if apiErr.Status != 501 || apiErr.Code != "pdf_unavailable" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}
