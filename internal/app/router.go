package app

import (
	"github.com/gin-gonic/gin"

	"github.com/Tekerra/acadlens-backend/internal/server"
)

func wireRouter(cfg Config, h Handlers, m Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		ServiceName:     cfg.ServiceName,
		AllowedOrigins:  cfg.AllowedOrigins,
		AuthMiddleware:  m.Auth,
		AuthHandler:     h.Auth,
		AdminHandler:    h.Admin,
		HODHandler:      h.HOD,
		AdvisorHandler:  h.Advisor,
		LecturerHandler: h.Lecturer,
		StudentHandler:  h.Student,
	})
}
