package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ristorante/internal/database"
	"ristorante/internal/mailer"
	"ristorante/internal/middleware"
	"ristorante/internal/modules/auth"
	"ristorante/internal/modules/availability"
	"ristorante/internal/modules/customer"
	"ristorante/internal/modules/dashboard"
	"ristorante/internal/modules/gallery"
	"ristorante/internal/modules/menu"
	"ristorante/internal/modules/reservation"
	"ristorante/internal/modules/settings"
	"ristorante/internal/modules/table"
	jwtsvc "ristorante/internal/pkg/jwt"
	"ristorante/internal/pkg/logger"
	"ristorante/internal/pkg/metrics"
	"ristorante/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "ristorante.db"
		logger.Info.Println("DATABASE_URL is empty, using local SQLite file")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error.Fatal("JWT_SECRET is empty")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		logger.Error.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		logger.Error.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	tableRepo := repository.NewTableRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)
	mail := buildMailer()
	hub := dashboard.NewHub()

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	availabilityHandler := availability.NewHandler(availability.NewService(tableRepo, reservationRepo))
	reservationHandler := reservation.NewHandler(
		reservation.NewService(reservationRepo, customerRepo, tableRepo, mail, hub))
	tableHandler := table.NewHandler(table.NewService(tableRepo, reservationRepo, hub))
	customerHandler := customer.NewHandler(customer.NewService(customerRepo, reservationRepo))
	menuHandler := menu.NewHandler(menu.NewService(menuRepo))
	galleryHandler := gallery.NewHandler(gallery.NewService(galleryRepo))
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(reservationRepo, tableRepo), hub)
	settingsHandler := settings.NewHandler(settingRepo)

	m := metrics.New("ristorante-api")

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics(m))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		availabilityHandler.RegisterRoutes(v1)
		reservationHandler.RegisterPublicRoutes(v1)
		menuHandler.RegisterPublicRoutes(v1)
		galleryHandler.RegisterPublicRoutes(v1)

		// staff
		staff := v1.Group("/")
		staff.Use(middleware.Auth(j), middleware.StaffOrAdmin())
		{
			authHandler.RegisterStaffRoutes(staff)
			reservationHandler.RegisterStaffRoutes(staff)
			tableHandler.RegisterStaffRoutes(staff)
			customerHandler.RegisterStaffRoutes(staff)
			dashboardHandler.RegisterStaffRoutes(staff)
		}

		// admin
		admin := v1.Group("/")
		admin.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			tableHandler.RegisterAdminRoutes(admin)
			customerHandler.RegisterAdminRoutes(admin)
			menuHandler.RegisterAdminRoutes(admin)
			galleryHandler.RegisterAdminRoutes(admin)
			settingsHandler.RegisterAdminRoutes(admin)
		}
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Info.Printf("Listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error.Printf("Forced shutdown: %v", err)
	}
	logger.Info.Println("Server stopped")
}

func buildMailer() mailer.Mailer {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return mailer.NewDevConsoleMailer(true)
	}

	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "reservations@ristorante.local"
	}

	return mailer.NewSMTPMailer(host, port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"), from)
}
