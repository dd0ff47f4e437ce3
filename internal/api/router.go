package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/explora/travel-system/internal/api/handler"
	"github.com/explora/travel-system/internal/api/middleware"
	"github.com/explora/travel-system/internal/core/domain"
	"github.com/explora/travel-system/internal/core/security"
	"github.com/explora/travel-system/internal/core/service"
	mongodb "github.com/explora/travel-system/internal/infrastructure/db/mongo"
	redisdb "github.com/explora/travel-system/internal/infrastructure/db/redis"
)

func newEcho(name string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware(name))

	e.GET("/metrics", echoprometheus.NewHandler())
	return e
}

// NewAuthRouter builds the Echo instance for the auth service.
func NewAuthRouter(db *mongo.Database, rdb *redis.Client, jwtSecret, bootstrapToken string, log zerolog.Logger) (*echo.Echo, *service.AuthService) {
	e := newEcho("explora_auth", log)

	// --- Dependencies ---
	codec := security.NewTokenCodec(jwtSecret)
	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, codec, log)
	authHandler := handler.NewAuthHandler(authService)
	bootstrapStore := redisdb.NewBootstrapTokenStore(rdb, bootstrapToken)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/token", authHandler.Token)
	e.GET("/verify", authHandler.Verify)
	e.POST("/make-admin/:username", authHandler.MakeAdmin,
		middleware.ElevationGuard(codec, bootstrapStore))

	// --- Health probes ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(db, rdb).Readiness)

	return e, authService
}

// NewAPIRouter builds the Echo instance for the resource service. Tokens are
// validated locally against the shared signing secret; the auth service is
// never called at request time.
func NewAPIRouter(db *mongo.Database, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := newEcho("explora_api", log)

	// --- Dependencies ---
	codec := security.NewTokenCodec(jwtSecret)
	destRepo := mongodb.NewDestinationRepository(db)
	resRepo := mongodb.NewReservationRepository(db)
	destService := service.NewDestinationService(destRepo, log)
	resService := service.NewReservationService(resRepo, destRepo, log)
	destHandler := handler.NewDestinationHandler(destService)
	resHandler := handler.NewReservationHandler(resService)

	requireToken := middleware.Auth(codec)
	requireAdmin := middleware.RBAC(domain.RoleAdmin)

	// --- Destination routes: public read, admin-only writes ---
	e.GET("/destinations", destHandler.List)
	e.POST("/destinations", destHandler.Create, requireToken, requireAdmin)
	e.PATCH("/destinations/:id", destHandler.Update, requireToken, requireAdmin)
	e.DELETE("/destinations/:id", destHandler.Delete, requireToken, requireAdmin)

	// --- Reservation routes: any authenticated user, owner-scoped ---
	e.POST("/reservations", resHandler.Create, requireToken)
	e.GET("/reservations", resHandler.List, requireToken)

	// --- Health probes ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(db, nil).Readiness)

	return e
}
