package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Tekerra/acadlens-backend/internal/requestdata"
	"github.com/Tekerra/acadlens-backend/internal/services"
)

type AuthHandler struct {
	authService     services.AuthService
	academicService services.AcademicService
}

func NewAuthHandler(authService services.AuthService, academicService services.AcademicService) *AuthHandler {
	return &AuthHandler{authService: authService, academicService: academicService}
}

// Universities is public: the login form needs the list before any
// token exists.
func (ah *AuthHandler) Universities(c *gin.Context) {
	universities, err := ah.academicService.ListUniversities(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, universities)
}

func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Identifier   string    `json:"identifier"`
		Password     string    `json:"password"`
		UniversityID uuid.UUID `json:"university_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if req.Identifier == "" || req.Password == "" || req.UniversityID == uuid.Nil {
		RespondError(c, http.StatusBadRequest, "missing_fields",
			fmt.Errorf("identifier, password and university_id are required"))
		return
	}
	result, err := ah.authService.Login(c.Request.Context(), &services.LoginInput{
		Identifier:   req.Identifier,
		Password:     req.Password,
		UniversityID: req.UniversityID,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

func (ah *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterStudentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if req.MatricNo == "" || req.FullName == "" || req.Password == "" || req.DepartmentID == uuid.Nil {
		RespondError(c, http.StatusBadRequest, "missing_fields",
			fmt.Errorf("matric_no, full_name, password and department_id are required"))
		return
	}
	student, err := ah.authService.RegisterStudent(c.Request.Context(), &req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, student)
}

func (ah *AuthHandler) Me(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	profile, err := ah.authService.Profile(c.Request.Context(), rd)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, profile)
}
