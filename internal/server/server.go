package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "workout-tracker/docs" // регистрация swagger-спецификации
	"workout-tracker/internal/config"
	"workout-tracker/internal/database"
	authhandler "workout-tracker/internal/handler/auth"
	exercisehandler "workout-tracker/internal/handler/exercise"
	"workout-tracker/internal/handler/health"
	"workout-tracker/internal/handler/middleware"
	userhandler "workout-tracker/internal/handler/user"
	workouthandler "workout-tracker/internal/handler/workout"
	pgrepo "workout-tracker/internal/repository/postgres"
	authuc "workout-tracker/internal/usecase/auth"
	exuc "workout-tracker/internal/usecase/exercise"
	useruc "workout-tracker/internal/usecase/user"
	workoutuc "workout-tracker/internal/usecase/workout"
	jwtsvc "workout-tracker/pkg/jwt"
)

// Server представляет HTTP сервер приложения
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	db         *database.DB
	cfg        *config.Config

	jwtService      jwtsvc.Service
	authHandler     *authhandler.Handler
	userHandler     *userhandler.Handler
	exerciseHandler *exercisehandler.Handler
	workoutHandler  *workouthandler.Handler
}

// NewServer создает новый экземпляр сервера
func NewServer(cfg *config.Config, db *database.DB) *Server {
	// Устанавливаем режим Gin в зависимости от окружения
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()

	s := &Server{
		router: router,
		db:     db,
		cfg:    cfg,
	}

	// Инициализируем зависимости всех доменов один раз
	gormDB := db.DB
	userRepo := pgrepo.NewUserRepository(gormDB)
	exerciseRepo := pgrepo.NewExerciseRepository(gormDB)
	workoutRepo := pgrepo.NewWorkoutRepository(gormDB)

	userService := useruc.NewService(userRepo)
	exerciseService := exuc.NewService(exerciseRepo)
	workoutService := workoutuc.NewService(workoutRepo, exerciseRepo)
	s.jwtService = jwtsvc.NewService(&cfg.JWT)
	authService := authuc.NewService(userRepo, s.jwtService)

	s.authHandler = authhandler.NewHandler(authService)
	s.userHandler = userhandler.NewHandler(userService)
	s.exerciseHandler = exercisehandler.NewHandler(exerciseService)
	s.workoutHandler = workouthandler.NewHandler(workoutService, userService)

	// Настраиваем middleware и роуты
	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// setupMiddleware настраивает middleware для роутера
func (s *Server) setupMiddleware() {
	// Recovery middleware - должен быть первым для перехвата паник
	s.router.Use(middleware.Recovery())

	// Logger middleware - логирование всех запросов
	s.router.Use(middleware.LoggerStructured())

	// CORS middleware - настройка CORS
	s.router.Use(middleware.CORS(&s.cfg.CORS))
}

// setupRoutes настраивает маршруты приложения
func (s *Server) setupRoutes() {
	s.setupHealthRoutes()
	s.setupAuthRoutes()
	s.setupUserRoutes()
	s.setupExerciseRoutes()
	s.setupWorkoutRoutes()
}

// setupHealthRoutes настраивает health-check эндпоинты.
func (s *Server) setupHealthRoutes() {
	healthHandler := health.NewHandler(s.db, s.cfg.AppEnv)
	// GET /health — базовый health-check сервера (жив ли процесс).
	s.router.GET("/health", healthHandler.Health)
	// GET /health/db — проверка доступности базы данных.
	s.router.GET("/health/db", healthHandler.HealthDB)
}

// setupAuthRoutes настраивает эндпоинты аутентификации и корневой роут API.
func (s *Server) setupAuthRoutes() {
	v1 := s.router.Group("/api/v1")

	// GET /api/v1/ — корневой эндпоинт API v1, возвращает версию и базовую информацию.
	v1.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Workout Tracker API v1",
			"version": "1.0.0",
		})
	})

	// GET /swagger/*any — интерактивная документация API.
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authGroup := v1.Group("/auth")
	{
		// POST /api/v1/auth/signup — регистрация нового пользователя по username/паролю.
		authGroup.POST("/signup", s.authHandler.SignUp)
		// POST /api/v1/auth/login — аутентификация пользователя по username/паролю.
		authGroup.POST("/login", s.authHandler.Login)
		// POST /api/v1/auth/refresh — обновление пары access/refresh токенов по refresh-токену.
		authGroup.POST("/refresh", s.authHandler.Refresh)
	}
}

// setupUserRoutes настраивает защищённые эндпоинты пользователя.
func (s *Server) setupUserRoutes() {
	v1 := s.router.Group("/api/v1")

	userGroup := v1.Group("/users")
	userGroup.Use(middleware.Auth(s.jwtService))
	{
		// GET /api/v1/users/me — получить профиль текущего аутентифицированного пользователя.
		userGroup.GET("/me", s.userHandler.GetMe)
	}
}

// setupExerciseRoutes настраивает эндпоинты справочника упражнений.
func (s *Server) setupExerciseRoutes() {
	v1 := s.router.Group("/api/v1")

	exerciseGroup := v1.Group("/exercises")
	exerciseGroup.Use(middleware.Auth(s.jwtService))
	{
		// GET /api/v1/exercises — список всех упражнений справочника.
		exerciseGroup.GET("", s.exerciseHandler.List)
		// GET /api/v1/exercises/:id — упражнение по идентификатору.
		exerciseGroup.GET("/:id", s.exerciseHandler.Get)
	}
}

// setupWorkoutRoutes настраивает защищённые эндпоинты тренировок.
func (s *Server) setupWorkoutRoutes() {
	v1 := s.router.Group("/api/v1")

	workoutGroup := v1.Group("/workouts")
	workoutGroup.Use(middleware.Auth(s.jwtService))
	{
		// POST /api/v1/workouts — создать тренировку с планами упражнений.
		workoutGroup.POST("", s.workoutHandler.Create)
		// GET /api/v1/workouts — список тренировок текущего пользователя
		// (с ?status=... — только с данным статусом, по дате по убыванию).
		workoutGroup.GET("", s.workoutHandler.List)
		// GET /api/v1/workouts/report — текстовый отчёт по тренировкам пользователя.
		workoutGroup.GET("/report", s.workoutHandler.Report)
		// PUT /api/v1/workouts/:id — полное обновление тренировки с заменой планов.
		workoutGroup.PUT("/:id", s.workoutHandler.Update)
		// PATCH /api/v1/workouts/:id — перенос тренировки (только дата и время).
		workoutGroup.PATCH("/:id", s.workoutHandler.Schedule)
		// DELETE /api/v1/workouts/:id — удалить тренировку вместе с планами.
		workoutGroup.DELETE("/:id", s.workoutHandler.Delete)
	}
}

// Start запускает HTTP сервер с graceful shutdown
func (s *Server) Start() error {
	address := s.cfg.Server.Address()

	s.httpServer = &http.Server{
		Addr:           address,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	// Канал для получения сигналов ОС
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Канал для ошибок запуска сервера
	serverErr := make(chan error, 1)

	// Запускаем сервер в отдельной горутине
	go func() {
		log.Printf("HTTP сервер запущен на %s", address)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("ошибка запуска HTTP сервера: %w", err)
		}
	}()

	// Ожидаем либо сигнал для graceful shutdown, либо ошибку запуска
	select {
	case err := <-serverErr:
		// Если сервер не смог запуститься, пытаемся корректно остановить
		log.Printf("Ошибка запуска сервера: %v", err)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpServer.Shutdown(ctx)
		return err
	case sig := <-quit:
		log.Printf("Получен сигнал %v для остановки сервера...", sig)
	}

	// Создаем контекст с таймаутом для graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Останавливаем сервер
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("ошибка при остановке сервера: %w", err)
	}

	log.Println("HTTP сервер успешно остановлен")
	return nil
}

// GetRouter возвращает роутер (для тестирования)
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
