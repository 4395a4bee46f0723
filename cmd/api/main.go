package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"aparthotel/internal/config"
	"aparthotel/internal/database"
	"aparthotel/internal/middleware"
	"aparthotel/internal/modules/auth"
	"aparthotel/internal/modules/catalog"
	"aparthotel/internal/modules/cleaning"
	"aparthotel/internal/modules/events"
	"aparthotel/internal/modules/logbook"
	"aparthotel/internal/modules/maintenance"
	"aparthotel/internal/modules/report"
	"aparthotel/internal/modules/reservation"
	"aparthotel/internal/modules/staff"
	jwtsvc "aparthotel/internal/pkg/jwt"
	"aparthotel/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	apartmentRepo := repository.NewApartmentRepository(db)
	taskTypeRepo := repository.NewTaskTypeRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	workOrderRepo := repository.NewWorkOrderRepository(db)
	logbookRepo := repository.NewLogbookRepository(db)
	postItRepo := repository.NewPostItRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	hub := events.NewHub()
	defer hub.Close()

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	staffHandler := staff.NewHandler(staff.NewService(userRepo, roleRepo))
	catalogHandler := catalog.NewHandler(catalog.NewService(
		apartmentRepo,
		taskTypeRepo,
		reservationRepo,
		assignmentRepo,
		workOrderRepo,
	))
	reservationHandler := reservation.NewHandler(reservation.NewService(reservationRepo, apartmentRepo, hub))
	cleaningHandler := cleaning.NewHandler(cleaning.NewService(
		assignmentRepo,
		apartmentRepo,
		userRepo,
		taskTypeRepo,
		hub,
	))
	maintenanceHandler := maintenance.NewHandler(maintenance.NewService(workOrderRepo, apartmentRepo, hub))
	reportHandler := report.NewHandler(report.NewService(assignmentRepo, userRepo, apartmentRepo))
	logbookHandler := logbook.NewHandler(logbook.NewService(logbookRepo, postItRepo, settingRepo))
	eventsHandler := events.NewHandler(hub, j)

	boardCache := cache.New(cfg.BoardCacheTTL, 2*cfg.BoardCacheTTL)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public, rate-limited login
		public := v1.Group("/")
		public.Use(middleware.RateLimiter(rate.Limit(cfg.LoginRateRPS), cfg.LoginRateBurst))
		authHandler.RegisterPublicRoutes(public)

		eventsHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterRoutes(protected)
			catalogHandler.RegisterReadRoutes(protected)
			reservationHandler.RegisterRoutes(protected)
			cleaningHandler.RegisterRoutes(protected)
			maintenanceHandler.RegisterRoutes(protected)
			reportHandler.RegisterRoutes(protected)
			logbookHandler.RegisterRoutes(protected)

			board := protected.Group("/")
			board.Use(middleware.Cache(boardCache, cfg.BoardCacheTTL))
			reservationHandler.RegisterBoardRoutes(board)

			supervisor := protected.Group("/")
			supervisor.Use(middleware.SupervisorOnly())
			{
				staffHandler.RegisterRoutes(supervisor)
				catalogHandler.RegisterWriteRoutes(supervisor)
				cleaningHandler.RegisterSupervisorRoutes(supervisor)
				logbookHandler.RegisterSupervisorRoutes(supervisor)
			}
		}
	}

	log.Printf("listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
