package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Tekerra/acadlens-backend/internal/repos"
	"github.com/Tekerra/acadlens-backend/internal/requestdata"
	"github.com/Tekerra/acadlens-backend/internal/services"
)

type StudentHandler struct {
	personalizationService services.PersonalizationService
	enrollmentRepo         repos.EnrollmentRepo
}

func NewStudentHandler(personalizationService services.PersonalizationService, enrollmentRepo repos.EnrollmentRepo) *StudentHandler {
	return &StudentHandler{personalizationService: personalizationService, enrollmentRepo: enrollmentRepo}
}

func (sh *StudentHandler) Courses(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	enrollments, err := sh.enrollmentRepo.ListByStudent(c.Request.Context(), nil, rd.UserID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	payload := make([]gin.H, 0, len(enrollments))
	for _, e := range enrollments {
		if e.Course == nil {
			continue
		}
		payload = append(payload, gin.H{
			"course_code":  e.Course.CourseCode,
			"course_title": e.Course.CourseTitle,
			"credit_units": e.Course.CreditUnits,
			"session":      e.Session,
			"semester":     e.Semester,
		})
	}
	RespondOK(c, payload)
}

func (sh *StudentHandler) Dashboard(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	payload, err := sh.personalizationService.PayloadForStudent(c.Request.Context(), nil, rd.UserID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, payload)
}

// Report streams the personalized learning report as an attachment.
// Only CSV has a renderer; requesting pdf reports 501 rather than
// silently falling back.
func (sh *StudentHandler) Report(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	payload, err := sh.personalizationService.PayloadForStudent(c.Request.Context(), nil, rd.UserID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	format := strings.ToLower(strings.TrimSpace(c.Query("format")))
	if format == "" {
		format = "csv"
	}
	stamp := time.Now().UTC().Format("20060102_150405")
	baseFilename := fmt.Sprintf("%s_personalized_report_%s",
		strings.ReplaceAll(payload.StudentInfo.MatricNo, "/", "_"), stamp)

	if format == "pdf" {
		report, err := services.BuildStudentReportPDF(payload)
		if err != nil {
			RespondServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", baseFilename))
		c.Data(http.StatusOK, "application/pdf", report)
		return
	}

	report, err := services.BuildStudentReportCSV(payload)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", baseFilename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", report)
}
