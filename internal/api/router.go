package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/campuskit/school-admin-api/docs"
	"github.com/campuskit/school-admin-api/internal/api/handler"
	"github.com/campuskit/school-admin-api/internal/api/middleware"
	"github.com/campuskit/school-admin-api/internal/core/domain"
	"github.com/campuskit/school-admin-api/internal/core/service"
	"github.com/campuskit/school-admin-api/internal/infrastructure/config"
	mongodb "github.com/campuskit/school-admin-api/internal/infrastructure/db/mongo"
	redisdb "github.com/campuskit/school-admin-api/internal/infrastructure/db/redis"
	"github.com/campuskit/school-admin-api/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered and starts
// the audit dispatcher workers. Workers stop when ctx is cancelled.
func NewRouter(ctx context.Context, db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("school_admin"))

	// --- Repositories ---
	accountRepo := mongodb.NewAccountRepository(db)
	classroomRepo := mongodb.NewClassroomRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)
	overviewCache := redisdb.NewOverviewCache(rdb)

	// --- Audit pipeline ---
	auditService := service.NewAuditService(auditRepo, log)
	auditDispatcher := queue.NewAuditDispatcher(0, auditService, log)
	auditDispatcher.Start(ctx)

	// --- Services ---
	authService := service.NewAuthService(accountRepo, cfg.JWTSecret, cfg.TokenTTL)
	accountService := service.NewAccountService(accountRepo, classroomRepo, overviewCache, auditDispatcher, log)
	classroomService := service.NewClassroomService(classroomRepo, overviewCache, auditDispatcher, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, accountService)
	principalHandler := handler.NewPrincipalHandler(accountService, auditService)
	classroomHandler := handler.NewClassroomHandler(classroomService)
	teacherHandler := handler.NewTeacherHandler(accountService)

	authMW := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	auth := e.Group("/api/v1/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/user", authHandler.CurrentUser, authMW)

	// --- Principal dashboard routes ---
	principal := e.Group("/api/v1/principal", authMW, middleware.RequireRole(domain.RolePrincipal))
	principal.GET("/overview", principalHandler.Overview)
	principal.GET("/students", principalHandler.ListStudents)
	principal.POST("/students", principalHandler.CreateStudent)
	principal.PUT("/students/:id", principalHandler.UpdateStudent)
	principal.DELETE("/students/:id", principalHandler.DeleteStudent)
	principal.POST("/teachers", principalHandler.CreateTeacher)
	principal.POST("/classrooms", classroomHandler.Create)
	principal.POST("/classrooms/assign", classroomHandler.Assign)
	principal.GET("/audit", principalHandler.Audit)

	// --- Teacher dashboard routes ---
	teacher := e.Group("/api/v1/teacher", authMW, middleware.RequireRole(domain.RoleTeacher))
	teacher.GET("/classroom", teacherHandler.AssignedClassroom)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
