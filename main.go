// File: lawyerup/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lawyerup/config"
	"lawyerup/cron"
	"lawyerup/database"
	bookingRepoPkg "lawyerup/database/repository/booking"
	caseRepoPkg "lawyerup/database/repository/cases"
	documentRepoPkg "lawyerup/database/repository/document"
	eventRepoPkg "lawyerup/database/repository/event"
	messageRepoPkg "lawyerup/database/repository/message"
	networkRepoPkg "lawyerup/database/repository/network"
	notificationRepoPkg "lawyerup/database/repository/notification"
	userRepoPkg "lawyerup/database/repository/user"
	"lawyerup/handlers"
	"lawyerup/routes"
	"lawyerup/services/booking"
	"lawyerup/services/cases"
	"lawyerup/services/dashboard"
	"lawyerup/services/document"
	"lawyerup/services/event"
	"lawyerup/services/message"
	"lawyerup/services/network"
	"lawyerup/services/notification"
	"lawyerup/services/tasks"
	"lawyerup/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.InitSlotLockClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	eventRepo := eventRepoPkg.NewMongoEventRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	caseRepo := caseRepoPkg.NewMongoCaseRepo()
	documentRepo := documentRepoPkg.NewMongoDocumentRepo()
	messageRepo := messageRepoPkg.NewMongoMessageRepo()
	networkRepo := networkRepoPkg.NewMongoNetworkRepo()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Repo: notificationRepo,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		Events:    eventRepo,
		Users:     userRepo,
		Notifier:  notificationService,
		Reserver:  &booking.RedisSlotReserver{Client: utils.GetSlotLockClient()},
		Reminders: tasks.NewAsynqReminderScheduler(),
	}

	eventService := &event.DefaultEventService{Repo: eventRepo}
	caseService := &cases.DefaultCaseService{Repo: caseRepo}
	documentService := &document.DefaultDocumentService{
		Repo:     documentRepo,
		Notifier: notificationService,
	}
	messageService := &message.DefaultMessageService{
		Repo:  messageRepo,
		Users: userRepo,
	}
	networkService := &network.DefaultNetworkService{Repo: networkRepo}
	dashboardService := &dashboard.DefaultDashboardService{
		Bookings:  bookingRepo,
		Cases:     caseRepo,
		Documents: documentRepo,
	}

	// Reminder worker consumes scheduled tasks and writes notifications.
	cron.InitReminderWorker(notificationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		CreateBookingHandler:       handlers.CreateBooking(bookingService),
		CreateGuestBookingHandler:  handlers.CreateGuestBooking(bookingService),
		ListBookingsHandler:        handlers.ListBookings(bookingService),
		UpdateBookingStatusHandler: handlers.UpdateBookingStatus(bookingService),
		RescheduleBookingHandler:   handlers.RescheduleBooking(bookingService),
		CancelBookingHandler:       handlers.CancelBooking(bookingService),

		CreateEventHandler: handlers.CreateEvent(eventService),
		ListEventsHandler:  handlers.ListEvents(eventService),
		DeleteEventHandler: handlers.DeleteEvent(eventService),

		ListNotificationsHandler: handlers.ListNotifications(notificationService),
		MarkNotificationHandler:  handlers.MarkNotificationRead(notificationService),

		CreateCaseHandler: handlers.CreateCase(caseService),
		ListCasesHandler:  handlers.ListCases(caseService),
		GetCaseHandler:    handlers.GetCase(caseService),
		UpdateCaseHandler: handlers.UpdateCase(caseService),

		CreateDocumentHandler: handlers.CreateDocument(documentService),
		ListDocumentsHandler:  handlers.ListDocuments(documentService),
		ShareDocumentHandler:  handlers.ShareDocument(documentService),

		SendMessageHandler:         handlers.SendMessage(messageService),
		GetConversationHandler:     handlers.GetConversation(messageService),
		RecentConversationsHandler: handlers.RecentConversations(messageService),

		NetworkFeedHandler:        handlers.NetworkFeed(networkService),
		PostNetworkMessageHandler: handlers.PostNetworkMessage(networkService),

		LawyerDashboardHandler: handlers.LawyerDashboard(dashboardService),
		ClientDashboardHandler: handlers.ClientDashboard(dashboardService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background dependency health monitor.
	utils.StartHealthMonitor(map[string]*redis.Client{
		"auth_cache": utils.GetAuthCacheClient(),
		"slot_lock":  utils.GetSlotLockClient(),
	}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
