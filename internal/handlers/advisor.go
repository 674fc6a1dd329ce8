package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Tekerra/acadlens-backend/internal/repos"
	"github.com/Tekerra/acadlens-backend/internal/requestdata"
)

type AdvisorHandler struct {
	studentRepo repos.StudentRepo
}

func NewAdvisorHandler(studentRepo repos.StudentRepo) *AdvisorHandler {
	return &AdvisorHandler{studentRepo: studentRepo}
}

func (ah *AdvisorHandler) Students(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	students, err := ah.studentRepo.ListByAdvisor(c.Request.Context(), nil, rd.UserID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	payload := make([]gin.H, 0, len(students))
	for _, s := range students {
		payload = append(payload, gin.H{
			"student_id":    s.ID,
			"matric_no":     s.MatricNo,
			"full_name":     s.FullName,
			"level":         s.Level,
			"department_id": s.DepartmentID,
		})
	}
	RespondOK(c, payload)
}

func (ah *AdvisorHandler) AtRisk(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	students, err := ah.studentRepo.ListAtRiskByAdvisor(c.Request.Context(), nil, rd.UserID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	payload := make([]gin.H, 0, len(students))
	for _, s := range students {
		payload = append(payload, gin.H{
			"student_id": s.ID,
			"matric_no":  s.MatricNo,
			"full_name":  s.FullName,
		})
	}
	RespondOK(c, payload)
}
