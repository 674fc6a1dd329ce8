package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Tekerra/acadlens-backend/internal/services"
)

type AdminHandler struct {
	academicService    services.AcademicService
	aggregationService services.AggregationService
}

func NewAdminHandler(academicService services.AcademicService, aggregationService services.AggregationService) *AdminHandler {
	return &AdminHandler{academicService: academicService, aggregationService: aggregationService}
}

func (ah *AdminHandler) CreateUniversity(c *gin.Context) {
	var req services.CreateUniversityInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if req.Name == "" {
		RespondError(c, http.StatusBadRequest, "missing_fields", fmt.Errorf("name is required"))
		return
	}
	result, err := ah.academicService.CreateUniversity(c.Request.Context(), &req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, result)
}

func (ah *AdminHandler) CreateFaculty(c *gin.Context) {
	var req struct {
		Name         string    `json:"name"`
		UniversityID uuid.UUID `json:"university_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if req.Name == "" || req.UniversityID == uuid.Nil {
		RespondError(c, http.StatusBadRequest, "missing_fields", fmt.Errorf("name and university_id are required"))
		return
	}
	faculty, err := ah.academicService.CreateFaculty(c.Request.Context(), req.Name, req.UniversityID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, faculty)
}

func (ah *AdminHandler) CreateDepartment(c *gin.Context) {
	var req struct {
		Name      string    `json:"name"`
		FacultyID uuid.UUID `json:"faculty_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if req.Name == "" || req.FacultyID == uuid.Nil {
		RespondError(c, http.StatusBadRequest, "missing_fields", fmt.Errorf("name and faculty_id are required"))
		return
	}
	department, err := ah.academicService.CreateDepartment(c.Request.Context(), req.Name, req.FacultyID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, department)
}

func (ah *AdminHandler) CreateStaff(c *gin.Context) {
	var req services.CreateStaffInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if req.FullName == "" || req.Email == "" || req.Role == "" || req.Password == "" {
		RespondError(c, http.StatusBadRequest, "missing_fields",
			fmt.Errorf("full_name, email, role and password are required"))
		return
	}
	staff, err := ah.academicService.CreateStaff(c.Request.Context(), &req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, staff)
}

func (ah *AdminHandler) CreateCourse(c *gin.Context) {
	var req services.CreateCourseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if req.CourseCode == "" || req.CourseTitle == "" || req.CreditUnits <= 0 || req.DepartmentID == uuid.Nil {
		RespondError(c, http.StatusBadRequest, "missing_fields",
			fmt.Errorf("course_code, course_title, credit_units and department_id are required"))
		return
	}
	course, err := ah.academicService.CreateCourse(c.Request.Context(), &req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, course)
}

func (ah *AdminHandler) SystemStats(c *gin.Context) {
	stats, err := ah.aggregationService.SystemStats(c.Request.Context(), nil)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, stats)
}

func (ah *AdminHandler) BootstrapStructure(c *gin.Context) {
	var req services.BootstrapStructureInput
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	result, err := ah.academicService.BootstrapStructure(c.Request.Context(), &req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, result)
}

func (ah *AdminHandler) ReferenceData(c *gin.Context) {
	payload, err := ah.academicService.ReferenceData(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, payload)
}

func (ah *AdminHandler) UniversityStructure(c *gin.Context) {
	universityID, err := uuid.Parse(c.Param("university_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_university_id", err)
		return
	}
	structure, err := ah.academicService.UniversityStructure(c.Request.Context(), universityID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, structure)
}
