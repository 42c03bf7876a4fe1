package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nandraak/siakad/config"
	"github.com/nandraak/siakad/database"
	_ "github.com/nandraak/siakad/docs" // Swagger docs
	authctrl "github.com/nandraak/siakad/internal/controller/auth"
	lecturerctrl "github.com/nandraak/siakad/internal/controller/lecturer"
	studentctrl "github.com/nandraak/siakad/internal/controller/student"
	"github.com/nandraak/siakad/internal/logger"
	"github.com/nandraak/siakad/internal/middleware"
	"github.com/nandraak/siakad/internal/model"
	"github.com/nandraak/siakad/internal/notify"
	"github.com/nandraak/siakad/internal/repository"
	"github.com/nandraak/siakad/internal/service"
	"github.com/nandraak/siakad/internal/store"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title SIAKAD Assignment & Grading API
// @version 1.0
// @description Academic information system backend: accounts by NIM, lecturer assignment lifecycle, student submissions, grading and KHS transcripts.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			NewNotifier,
			store.NewGormStore,
		),

		fx.Provide(
			repository.NewAssignmentRepository,
			repository.NewSubmissionRepository,
			repository.NewNoticeRepository,
			repository.NewTranscriptRepository,
			repository.NewUserRepository,
		),

		fx.Provide(
			service.NewAssignmentService,
			service.NewSubmissionService,
			service.NewGradingService,
			service.NewAuthService,
			service.NewTranscriptService,
			service.NewNoticeService,
			service.NewFeedbackService,
		),

		fx.Provide(
			authctrl.NewAuthController,
			lecturerctrl.NewAssignmentController,
			studentctrl.NewAssignmentController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// NewNotifier picks the dispatcher variant once from config; nothing else
// ever branches on notification transport.
func NewNotifier(cfg *config.Config) notify.Notifier {
	switch cfg.Notifier.Kind {
	case "email":
		return notify.NewEmailNotifier(cfg.Notifier.SendgridKey, cfg.Notifier.EmailFrom, cfg.Notifier.EmailTo)
	case "system":
		return notify.NewSystemScheduledNotifier(0)
	default:
		return notify.NewLocalAlertNotifier()
	}
}

func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authCtrl *authctrl.AuthController,
	lecturerCtrl *lecturerctrl.AssignmentController,
	studentCtrl *studentctrl.AssignmentController,
) {
	api := router.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)
		authGroup.GET("/profile", middleware.Auth(cfg.JWTSecret), authCtrl.Profile)
		authGroup.PUT("/profile", middleware.Auth(cfg.JWTSecret), authCtrl.UpdateProfile)
	}

	dosenGroup := api.Group("/dosen")
	dosenGroup.Use(middleware.Auth(cfg.JWTSecret), middleware.LecturerOnly())
	{
		dosenGroup.POST("/assignments", lecturerCtrl.CreateAssignment)
		dosenGroup.GET("/assignments", lecturerCtrl.ListAssignments)
		dosenGroup.PUT("/assignments/:assignment_id", lecturerCtrl.UpdateAssignment)
		dosenGroup.DELETE("/assignments/:assignment_id", lecturerCtrl.DeleteAssignment)
		dosenGroup.GET("/assignments/:assignment_id/summary", lecturerCtrl.SummarizeAssignment)
		dosenGroup.POST("/assignments/:assignment_id/submissions/:student_id/grade", lecturerCtrl.GradeSubmission)
		dosenGroup.GET("/assignments/:assignment_id/submissions/:student_id/feedback-draft", lecturerCtrl.DraftFeedback)
		dosenGroup.PUT("/students/:nim/transcript", lecturerCtrl.PutTranscript)
	}

	mahasiswaGroup := api.Group("/mahasiswa")
	mahasiswaGroup.Use(middleware.Auth(cfg.JWTSecret), middleware.StudentOnly())
	{
		mahasiswaGroup.GET("/assignments", studentCtrl.ListAssignments)
		mahasiswaGroup.POST("/assignments/:assignment_id/submission", studentCtrl.UploadSubmission)
		mahasiswaGroup.DELETE("/assignments/:assignment_id/submission", studentCtrl.DeleteSubmission)
		mahasiswaGroup.GET("/transcript", studentCtrl.GetTranscript)
		mahasiswaGroup.GET("/notices", studentCtrl.ListNotices)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("SIAKAD API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.StoredRecord{},
		&model.User{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed.")
	return nil
}
