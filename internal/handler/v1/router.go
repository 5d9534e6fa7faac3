package v1

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/scribeflow/api/internal/config"
	"github.com/scribeflow/api/internal/service"
	"github.com/scribeflow/api/pkg/metrics"
)

// RouterDeps carries everything the router needs, injected explicitly so the
// whole HTTP surface stays constructible in tests.
type RouterDeps struct {
	Patients  *service.PatientService
	Notes     *service.NoteService
	Scribe    *service.ScribeService
	Admin     *service.AdminService
	DB        *gorm.DB
	Collector *metrics.Collector
	Log       *zap.Logger
	CORS      config.CORSConfig
	Env       string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		RequestID(),
		AccessLog(deps.Log),
		Metrics(deps.Collector),
		cors.New(cors.Config{
			AllowOrigins:     deps.CORS.AllowedOrigins,
			AllowMethods:     deps.CORS.AllowedMethods,
			AllowHeaders:     deps.CORS.AllowedHeaders,
			AllowCredentials: false,
			MaxAge:           deps.CORS.MaxAge,
		}),
	)

	r.GET("/healthz", healthHandler(deps.DB, deps.Collector))
	r.GET("/metrics", gin.WrapH(metrics.MetricsHandler()))

	patients := NewPatientHandler(deps.Patients)
	notes := NewNoteHandler(deps.Notes, deps.Scribe)
	admin := NewAdminHandler(deps.Admin)

	api := r.Group("/api/v1")
	{
		api.GET("/patients", patients.List)
		api.POST("/patients", patients.Create)
		api.GET("/patients/:id", patients.Get)
		api.GET("/patients/:id/notes", notes.ListForPatient)

		api.POST("/notes/generate", notes.Generate)
		api.POST("/notes", notes.Save)
		api.POST("/analyze", notes.Analyze)

		api.POST("/admin/seed", admin.Seed)
		api.POST("/admin/reset", admin.Reset)
	}

	return r
}

func healthHandler(db *gorm.DB, mc *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}

		mc.DBConnections.Set(float64(sqlDB.Stats().OpenConnections))
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
