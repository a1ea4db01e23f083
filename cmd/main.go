package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	billingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/billing"
	changeRoomHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/change_room"
	checkAvailabilityHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/check_availability"
	checkInHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/check_in"
	checkoutHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/checkout"
	clientsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/clients"
	createReservationHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/create_reservation"
	exportHistoryHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/export_history"
	frontdeskHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/frontdesk"
	getAvailabilityHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_availability"
	getFolioHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_folio"
	healthHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/health"
	productsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/products"
	renderInvoiceHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/render_invoice"
	reservationsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/reservations"
	roomsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/rooms"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/config"
	clientRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/client"
	consumptionRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/consumption"
	paymentRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/payment"
	productRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/product"
	reservationRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	billingService "github.com/m04kA/SMC-HotelService/internal/service/billing"
	clientsService "github.com/m04kA/SMC-HotelService/internal/service/clients"
	frontdeskService "github.com/m04kA/SMC-HotelService/internal/service/frontdesk"
	productsService "github.com/m04kA/SMC-HotelService/internal/service/products"
	reservationsService "github.com/m04kA/SMC-HotelService/internal/service/reservations"
	roomsService "github.com/m04kA/SMC-HotelService/internal/service/rooms"
	changeRoomUC "github.com/m04kA/SMC-HotelService/internal/usecase/change_room"
	checkAvailabilityUC "github.com/m04kA/SMC-HotelService/internal/usecase/check_availability"
	checkInUC "github.com/m04kA/SMC-HotelService/internal/usecase/check_in"
	checkoutUC "github.com/m04kA/SMC-HotelService/internal/usecase/checkout"
	createReservationUC "github.com/m04kA/SMC-HotelService/internal/usecase/create_reservation"
	exportHistoryUC "github.com/m04kA/SMC-HotelService/internal/usecase/export_history"
	getAvailabilityUC "github.com/m04kA/SMC-HotelService/internal/usecase/get_availability"
	getFolioUC "github.com/m04kA/SMC-HotelService/internal/usecase/get_folio"
	renderInvoiceUC "github.com/m04kA/SMC-HotelService/internal/usecase/render_invoice"
	"github.com/m04kA/SMC-HotelService/migrations"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/logger"
	"github.com/m04kA/SMC-HotelService/pkg/metrics"
	"github.com/m04kA/SMC-HotelService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-HotelService/pkg/txmanager"
)

// txManager общий интерфейс txmanager и simpletxmanager
type txManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting %s...", cfg.Hotel.Name)

	// Календарный день отеля: от него считаются "сегодня", ночи и просроченные заселения
	if cfg.Hotel.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Hotel.Timezone)
		if err != nil {
			log.Fatal("Invalid hotel timezone %q: %v", cfg.Hotel.Timezone, err)
		}
		time.Local = loc
	}

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Database.ApplyMigrations {
		if err := migrations.NewMigrator(db, log).Run(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Репозитории работают через обертку с метриками или напрямую с *sql.DB
	var (
		rooms        *roomRepo.Repository
		clients      *clientRepo.Repository
		products     *productRepo.Repository
		reservations *reservationRepo.Repository
		consumptions *consumptionRepo.Repository
		payments     *paymentRepo.Repository
		txMgr        txManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		rooms = roomRepo.NewRepository(wrappedDB)
		clients = clientRepo.NewRepository(wrappedDB)
		products = productRepo.NewRepository(wrappedDB)
		reservations = reservationRepo.NewRepository(wrappedDB)
		consumptions = consumptionRepo.NewRepository(wrappedDB)
		payments = paymentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		rooms = roomRepo.NewRepository(db)
		clients = clientRepo.NewRepository(db)
		products = productRepo.NewRepository(db)
		reservations = reservationRepo.NewRepository(db)
		consumptions = consumptionRepo.NewRepository(db)
		payments = paymentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	roomSvc := roomsService.NewService(rooms, reservations, log)
	clientSvc := clientsService.NewService(clients, reservations, log)
	productSvc := productsService.NewService(products, log)
	reservationSvc := reservationsService.NewService(reservations, txMgr, metricsCollector, log)
	billingSvc := billingService.NewService(reservations, products, consumptions, payments, log)
	frontdeskSvc := frontdeskService.NewService(reservations, rooms, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(reservations, rooms, clients, txMgr, metricsCollector, log)
	checkInUseCase := checkInUC.NewUseCase(reservations, rooms, clients, txMgr, metricsCollector, log)
	changeRoomUseCase := changeRoomUC.NewUseCase(reservations, rooms, txMgr, metricsCollector, log)
	checkoutUseCase := checkoutUC.NewUseCase(reservations, txMgr, metricsCollector, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(reservations, rooms, log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(reservations, rooms, log)
	getFolioUseCase := getFolioUC.NewUseCase(reservations, consumptions, payments, log)
	renderInvoiceUseCase := renderInvoiceUC.NewUseCase(getFolioUseCase, renderInvoiceUC.Hotel{
		Name:           cfg.Hotel.Name,
		Address:        cfg.Hotel.Address,
		TaxID:          cfg.Hotel.TaxID,
		Phone:          cfg.Hotel.Phone,
		CurrencySymbol: cfg.Hotel.CurrencySymbol,
	}, log)
	exportHistoryUseCase := exportHistoryUC.NewUseCase(reservations, log)

	// Инициализируем handlers
	roomsH := roomsHandler.NewHandler(roomSvc, log)
	clientsH := clientsHandler.NewHandler(clientSvc, log)
	productsH := productsHandler.NewHandler(productSvc, log)
	reservationsH := reservationsHandler.NewHandler(reservationSvc, log)
	billingH := billingHandler.NewHandler(billingSvc, log)
	frontdeskH := frontdeskHandler.NewHandler(frontdeskSvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	checkIn := checkInHandler.NewHandler(checkInUseCase, log)
	changeRoom := changeRoomHandler.NewHandler(changeRoomUseCase, log)
	checkout := checkoutHandler.NewHandler(checkoutUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getFolio := getFolioHandler.NewHandler(getFolioUseCase, log)
	renderInvoice := renderInvoiceHandler.NewHandler(renderInvoiceUseCase, log)
	exportHistory := exportHistoryHandler.NewHandler(exportHistoryUseCase, log)
	health := healthHandler.NewHandler(db, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestLogger(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Номера ---
	// С фильтром estado отдается справочник, без него снимок занятости на сегодня
	api.HandleFunc("/habitaciones", roomsH.List).Methods(http.MethodGet).Queries("estado", "{estado}")
	api.HandleFunc("/habitaciones", getAvailability.HandleRooms).Methods(http.MethodGet)
	api.HandleFunc("/habitaciones", roomsH.Create).Methods(http.MethodPost)
	api.HandleFunc("/habitaciones/{id}", roomsH.Get).Methods(http.MethodGet)
	api.HandleFunc("/habitaciones/{id}", roomsH.Update).Methods(http.MethodPut)
	api.HandleFunc("/habitaciones/{id}", roomsH.Delete).Methods(http.MethodDelete)

	// --- Гости ---
	api.HandleFunc("/clientes", clientsH.List).Methods(http.MethodGet)
	api.HandleFunc("/clientes", clientsH.Create).Methods(http.MethodPost)
	api.HandleFunc("/clientes/{id}", clientsH.Get).Methods(http.MethodGet)
	api.HandleFunc("/clientes/{id}", clientsH.Update).Methods(http.MethodPut)
	api.HandleFunc("/clientes/{id}", clientsH.Delete).Methods(http.MethodDelete)

	// --- Каталог товаров ---
	api.HandleFunc("/productos", productsH.List).Methods(http.MethodGet)
	api.HandleFunc("/productos", productsH.Create).Methods(http.MethodPost)
	api.HandleFunc("/productos/{id}", productsH.Get).Methods(http.MethodGet)
	api.HandleFunc("/productos/{id}", productsH.Update).Methods(http.MethodPut)
	api.HandleFunc("/productos/{id}", productsH.Delete).Methods(http.MethodDelete)

	// --- Бронирования ---
	// historial регистрируется раньше /reservas/{id}
	api.HandleFunc("/reservas/historial/export", exportHistory.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservas/historial", reservationsH.History).Methods(http.MethodGet)
	api.HandleFunc("/reservas", reservationsH.List).Methods(http.MethodGet)
	api.HandleFunc("/reservas", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservas/{id}", reservationsH.Get).Methods(http.MethodGet)
	api.HandleFunc("/reservas/{id}", reservationsH.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/reservas/{id}/cancelar", reservationsH.Cancel).Methods(http.MethodPut)
	api.HandleFunc("/reservas/{id}/checkout", checkout.Handle).Methods(http.MethodPut)

	// --- Счет ---
	api.HandleFunc("/reservas/{id}/consumos", billingH.ListConsumptions).Methods(http.MethodGet)
	api.HandleFunc("/reservas/{id}/consumos", billingH.AddConsumption).Methods(http.MethodPost)
	api.HandleFunc("/consumos/{id}", billingH.DeleteConsumption).Methods(http.MethodDelete)
	api.HandleFunc("/reservas/{id}/pagos", billingH.ListPayments).Methods(http.MethodGet)
	api.HandleFunc("/reservas/{id}/pagos", billingH.AddPayment).Methods(http.MethodPost)
	api.HandleFunc("/reservas/{id}/cuenta", getFolio.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservas/{id}/cuenta/preview", getFolio.HandlePreview).Methods(http.MethodPost)
	api.HandleFunc("/reservas/{id}/factura", renderInvoice.Handle).Methods(http.MethodGet)

	// --- Доступность ---
	api.HandleFunc("/disponibilidad", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/disponibilidad", checkAvailability.Handle).Methods(http.MethodPost)

	// --- Стойка регистрации ---
	api.HandleFunc("/checkin/llegadas-hoy", frontdeskH.ArrivalsToday).Methods(http.MethodGet)
	api.HandleFunc("/checkin/buscar", frontdeskH.Search).Methods(http.MethodGet)
	api.HandleFunc("/checkin/habitaciones-disponibles", frontdeskH.AvailableRooms).Methods(http.MethodGet)
	api.HandleFunc("/checkin/{id}", checkIn.Handle).Methods(http.MethodPost)
	api.HandleFunc("/checkin/{id}/cambiar-habitacion/{roomId}", changeRoom.Handle).Methods(http.MethodPut)

	// CORS оборачивает роутер целиком: preflight OPTIONS не совпадает ни с одним маршрутом
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.NewCORS(cfg.CORS)(r),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
