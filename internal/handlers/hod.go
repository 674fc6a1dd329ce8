package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tekerra/acadlens-backend/internal/grading"
	"github.com/Tekerra/acadlens-backend/internal/repos"
	"github.com/Tekerra/acadlens-backend/internal/requestdata"
	"github.com/Tekerra/acadlens-backend/internal/services"
)

type HODHandler struct {
	aggregationService services.AggregationService
	staffRepo          repos.StaffRepo
	statsRepo          repos.StatsRepo
}

func NewHODHandler(aggregationService services.AggregationService, staffRepo repos.StaffRepo, statsRepo repos.StatsRepo) *HODHandler {
	return &HODHandler{aggregationService: aggregationService, staffRepo: staffRepo, statsRepo: statsRepo}
}

func (hh *HODHandler) DepartmentAnalytics(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.DepartmentID == nil {
		RespondError(c, http.StatusBadRequest, "no_department", fmt.Errorf("no department assigned"))
		return
	}
	snapshot, err := hh.aggregationService.DepartmentSnapshot(c.Request.Context(), nil, *rd.DepartmentID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, snapshot)
}

func (hh *HODHandler) Lecturers(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.DepartmentID == nil {
		RespondError(c, http.StatusBadRequest, "no_department", fmt.Errorf("no department assigned"))
		return
	}
	lecturers, err := hh.staffRepo.ListByDepartmentAndRole(c.Request.Context(), nil, *rd.DepartmentID, grading.RoleLecturer)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, lecturers)
}

func (hh *HODHandler) HighRiskCourses(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.DepartmentID == nil {
		RespondError(c, http.StatusBadRequest, "no_department", fmt.Errorf("no department assigned"))
		return
	}
	rows, err := hh.statsRepo.HighRiskCourses(c.Request.Context(), nil, *rd.DepartmentID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	payload := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		payload = append(payload, gin.H{
			"course_id":     row.CourseID,
			"course_code":   row.CourseCode,
			"average_score": grading.Round2(row.AverageScore),
		})
	}
	RespondOK(c, payload)
}
