package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	createBookingHandler "github.com/m04kA/SMC-DoctorBooking/internal/api/handlers/create_booking"
	createPaymentOrderHandler "github.com/m04kA/SMC-DoctorBooking/internal/api/handlers/create_payment_order"
	getAvailableSlotsHandler "github.com/m04kA/SMC-DoctorBooking/internal/api/handlers/get_available_slots"
	getBookingAttemptsHandler "github.com/m04kA/SMC-DoctorBooking/internal/api/handlers/get_booking_attempts"
	getUserAppointmentsHandler "github.com/m04kA/SMC-DoctorBooking/internal/api/handlers/get_user_appointments"
	verifyPaymentHandler "github.com/m04kA/SMC-DoctorBooking/internal/api/handlers/verify_payment"
	"github.com/m04kA/SMC-DoctorBooking/internal/api/middleware"
	appointmentsService "github.com/m04kA/SMC-DoctorBooking/internal/service/appointments"
	createBookingUC "github.com/m04kA/SMC-DoctorBooking/internal/usecase/create_booking"
	createPaymentOrderUC "github.com/m04kA/SMC-DoctorBooking/internal/usecase/create_payment_order"
	getAvailableSlotsUC "github.com/m04kA/SMC-DoctorBooking/internal/usecase/get_available_slots"
	verifyPaymentUC "github.com/m04kA/SMC-DoctorBooking/internal/usecase/verify_payment"
)

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the booking gateway HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath)
		},
	}
}

func runServer(ctx context.Context, configPath string) error {
	a, err := newApp(ctx, configPath, true)
	if err != nil {
		return err
	}
	defer a.close()

	log := a.log
	log.Info("Starting SMC-DoctorBooking gateway...")

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(a.clinic, a.attemptsJournal(), log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(a.clinic, a.policy, log)
	createBookingUseCase := createBookingUC.NewUseCase(a.clinic, a.bookingJournal(), a.metrics, a.policy, log)
	createPaymentOrderUseCase := createPaymentOrderUC.NewUseCase(appointmentsSvc, a.clinic, log)
	verifyPaymentUseCase := verifyPaymentUC.NewUseCase(a.clinic, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentsSvc, log)
	createPaymentOrder := createPaymentOrderHandler.NewHandler(createPaymentOrderUseCase, log)
	verifyPayment := verifyPaymentHandler.NewHandler(verifyPaymentUseCase, log)
	getBookingAttempts := getBookingAttemptsHandler.NewHandler(appointmentsSvc, log)

	auth := middleware.NewAuth(log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestLog(log))

	if a.cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(a.metrics))
		r.Handle(a.cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", a.cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Свободные слоты врача на горизонт записи
	api.HandleFunc("/doctors/{doctorId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Журнал попыток бронирования (503, если журнал выключен)
	api.HandleFunc("/doctors/{doctorId}/booking-attempts", getBookingAttempts.Handle).Methods(http.MethodGet)

	// ============================================================
	// SESSION ROUTES (Authorization: Bearer <token>)
	// ============================================================

	// Бронирование: сессия опциональна на уровне middleware,
	// чтобы "время не выбрано" отдавалось раньше, чем "нужна авторизация"
	booking := api.PathPrefix("").Subrouter()
	booking.Use(auth.Optional)
	booking.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth.Required)

	// --- Записи пользователя ---
	protected.HandleFunc("/appointments", getUserAppointments.Handle).Methods(http.MethodGet)

	// --- Оплата ---
	protected.HandleFunc("/appointments/{appointmentId}/payment-order", createPaymentOrder.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/payments/verify", verifyPayment.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", a.cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(a.cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(a.cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(a.cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// bookingJournal возвращает nil-интерфейс, если журнал выключен
func (a *app) bookingJournal() createBookingUC.JournalRepository {
	if a.journal == nil {
		return nil
	}
	return a.journal
}

func (a *app) attemptsJournal() appointmentsService.JournalRepository {
	if a.journal == nil {
		return nil
	}
	return a.journal
}
