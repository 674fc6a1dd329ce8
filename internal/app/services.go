package app

import (
	"gorm.io/gorm"

	"github.com/Tekerra/acadlens-backend/internal/logger"
	"github.com/Tekerra/acadlens-backend/internal/services"
)

type Services struct {
	Auth            services.AuthService
	Academic        services.AcademicService
	Analytics       services.AnalyticsService
	ResultsImport   services.ResultsImportService
	Aggregation     services.AggregationService
	Personalization services.PersonalizationService
	Bootstrap       services.BootstrapService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos) Services {
	analytics := services.NewAnalyticsService(log, r.Assessment, r.AnalyticsResult)
	aggregation := services.NewAggregationService(log, r.Stats, r.Student, r.Faculty, r.Department, r.Course)
	return Services{
		Auth: services.NewAuthService(
			db, log, r.Staff, r.Student, r.University, r.Faculty, r.Department,
			cfg.JWTSecretKey, cfg.AccessTokenTTL,
		),
		Academic:        services.NewAcademicService(db, log, r.University, r.Faculty, r.Department, r.Staff, r.Course),
		Analytics:       analytics,
		ResultsImport:   services.NewResultsImportService(db, log, r.Student, r.Course, r.Enrollment, analytics),
		Aggregation:     aggregation,
		Personalization: services.NewPersonalizationService(log, r.Student, r.Enrollment, aggregation),
		Bootstrap: services.NewBootstrapService(
			db, log, r.University, r.Faculty, r.Department, r.Staff, r.Student, r.Course, r.Enrollment,
		),
	}
}
