package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"carservice/internal/config"
	"carservice/internal/database"
	"carservice/internal/middleware"
	"carservice/internal/modules/auth"
	"carservice/internal/modules/booking"
	"carservice/internal/modules/dashboard"
	jwtsvc "carservice/internal/pkg/jwt"
	"carservice/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	bookingService := booking.NewService(customerRepo, appointmentRepo, bookingRepo)
	bookingHandler := booking.NewHandler(bookingService)

	dashboardService := dashboard.NewService(bookingRepo)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.ErrorLogger())

	// public
	authHandler.RegisterRoutes(&r.RouterGroup)
	bookingHandler.RegisterRoutes(&r.RouterGroup)

	// protected (admin dashboard)
	protected := r.Group("/")
	protected.Use(middleware.RequireAuth(j))
	{
		dashboardHandler.RegisterRoutes(protected)
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
