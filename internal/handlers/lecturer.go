package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Tekerra/acadlens-backend/internal/requestdata"
	"github.com/Tekerra/acadlens-backend/internal/services"
)

type LecturerHandler struct {
	resultsImportService services.ResultsImportService
	aggregationService   services.AggregationService
}

func NewLecturerHandler(resultsImportService services.ResultsImportService, aggregationService services.AggregationService) *LecturerHandler {
	return &LecturerHandler{resultsImportService: resultsImportService, aggregationService: aggregationService}
}

// UploadResults takes a multipart form: the CSV under "file" plus
// "session" and "semester" fields. Row-level failures come back in the
// summary, not as an HTTP error.
func (lh *LecturerHandler) UploadResults(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "missing_file", fmt.Errorf("CSV file is required"))
		return
	}
	session := strings.TrimSpace(c.PostForm("session"))
	semester := strings.TrimSpace(c.PostForm("semester"))
	if session == "" || semester == "" {
		RespondError(c, http.StatusBadRequest, "missing_fields", fmt.Errorf("session and semester are required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "unreadable_file", err)
		return
	}
	defer file.Close()

	rd := requestdata.GetRequestData(c.Request.Context())
	summary, err := lh.resultsImportService.ImportCSV(c.Request.Context(), file, rd.UserID, session, semester)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, summary)
}

func (lh *LecturerHandler) ClassAnalytics(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	rows, err := lh.aggregationService.ClassAnalytics(c.Request.Context(), nil, rd.UserID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, rows)
}
