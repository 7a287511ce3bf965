// main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-laundry/controllers"
	"go-laundry/logger"
	"go-laundry/models"
	"go-laundry/routes"
	"go-laundry/services"
	"go-laundry/storage"
	"go-laundry/utils"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	zlog := logger.New()
	defer zlog.Sync()

	// Set the JWT secret key
	utils.JwtKey = []byte(os.Getenv("JWT_SECRET"))

	// Initialize EmailService
	emailService := utils.NewEmailService()

	// Connect to MongoDB
	client := storage.ConnectDB()
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			zlog.Error("failed to disconnect from MongoDB", zap.Error(err))
		}
	}()

	// Local file store for lost-item images
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:" + port()
	}
	fileStore := storage.NewDiskFileStore(uploadDir, baseURL)

	// Persistence gateways
	orderStore := storage.NewMongoOrderStore(client)
	lostItemStore := storage.NewMongoLostItemStore(client)
	complaintStore := storage.NewMongoComplaintStore(client)
	userStore := storage.NewMongoUserStore(client)

	// Core services
	orderService := services.NewOrderService(orderStore, zlog)
	orderService.SetReadyHook(func(order models.LaundryOrder) {
		if order.UserEmail == "" {
			return
		}
		go func() {
			if err := emailService.SendLaundryReadyEmail(order.UserEmail, order.BagCode); err != nil {
				zlog.Warn("failed to send ready notification", zap.Error(err))
			}
		}()
	})
	simulator := services.NewSimulator(orderService, services.DefaultTickInterval, zlog)
	lostItemService := services.NewLostItemService(lostItemStore, fileStore, userStore, zlog)
	complaintService := services.NewComplaintService(complaintStore)

	// Initialize controllers
	userController := controllers.NewUserController(userStore, emailService)
	orderController := controllers.NewOrderController(orderService, simulator)
	lostFoundController := controllers.NewLostFoundController(lostItemService)
	complaintController := controllers.NewComplaintController(complaintService, userStore, emailService)

	// Set up the router
	router := mux.NewRouter()
	router.Use(logger.RequestLogger(zlog))
	routes.RegisterRoutes(router, userController, orderController, lostFoundController, complaintController, fileStore.Dir())

	server := &http.Server{
		Addr:    ":" + port(),
		Handler: router,
	}

	go func() {
		zlog.Info("server is running", zap.String("port", port()))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	// Shut down cleanly on SIGINT/SIGTERM: stop progress tickers first so no
	// timer keeps writing against a closing backend.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	simulator.StopAll()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zlog.Error("server shutdown failed", zap.Error(err))
	}
}

func port() string {
	p := os.Getenv("PORT")
	if p == "" {
		p = "8000"
	}
	return p
}
