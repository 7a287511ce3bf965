// routes/routes.go
package routes

import (
	"net/http"

	"go-laundry/controllers"
	"go-laundry/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(
	router *mux.Router,
	userController *controllers.UserController,
	orderController *controllers.OrderController,
	lostFoundController *controllers.LostFoundController,
	complaintController *controllers.ComplaintController,
	uploadsDir string,
) {
	// Public routes
	router.HandleFunc("/api/register", userController.Register).Methods("POST")
	router.HandleFunc("/api/login", userController.Login).Methods("POST")

	// Stored lost-item images
	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))

	// Metrics
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Authenticated routes
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.AuthMiddleware)

	api.HandleFunc("/profile", userController.GetProfile).Methods("GET")
	api.HandleFunc("/profile", userController.UpdateProfile).Methods("PUT")

	// Order routes (customer dashboard)
	api.HandleFunc("/orders", orderController.GetMyOrders).Methods("GET")
	api.HandleFunc("/orders/current", orderController.GetCurrentOrder).Methods("GET")
	api.HandleFunc("/orders/{id}", orderController.GetOrder).Methods("GET")
	api.HandleFunc("/orders/{id}/advance", orderController.AdvanceOrder).Methods("POST")

	// Lost & found routes
	api.HandleFunc("/lost-items", lostFoundController.ReportLostItem).Methods("POST")
	api.HandleFunc("/lost-items", lostFoundController.GetLostItems).Methods("GET")
	api.HandleFunc("/lost-items/{id}", lostFoundController.GetLostItem).Methods("GET")
	api.HandleFunc("/lost-items/{id}/contact", lostFoundController.GetItemContact).Methods("GET")
	api.HandleFunc("/lost-items/{id}", lostFoundController.DeleteLostItem).Methods("DELETE")

	// Complaint routes (support tab)
	api.HandleFunc("/complaints", complaintController.SubmitComplaint).Methods("POST")
	api.HandleFunc("/complaints", complaintController.GetMyComplaints).Methods("GET")
	api.HandleFunc("/complaints/{id}", complaintController.GetComplaint).Methods("GET")
	api.HandleFunc("/complaints/{id}", complaintController.DeleteComplaint).Methods("DELETE")

	// Admin routes
	admin := router.PathPrefix("/api/admin").Subrouter()
	admin.Use(middleware.AuthMiddleware)
	admin.Use(middleware.AdminMiddleware)

	admin.HandleFunc("/orders", orderController.CreateOrder).Methods("POST")
	admin.HandleFunc("/orders", orderController.GetAllOrders).Methods("GET")
	admin.HandleFunc("/orders/{id}", orderController.UpdateOrder).Methods("PUT")
	admin.HandleFunc("/orders/{id}", orderController.DeleteOrder).Methods("DELETE")
	admin.HandleFunc("/orders/{id}/progress", orderController.UpdateOrderProgress).Methods("PUT")
	admin.HandleFunc("/orders/{id}/simulate", orderController.StartSimulation).Methods("POST")
	admin.HandleFunc("/orders/{id}/simulate", orderController.StopSimulation).Methods("DELETE")

	admin.HandleFunc("/lost-items/{id}/status", lostFoundController.UpdateLostItemStatus).Methods("PUT")

	admin.HandleFunc("/complaints", complaintController.GetAllComplaints).Methods("GET")
	admin.HandleFunc("/complaints/{id}/status", complaintController.UpdateComplaintStatus).Methods("PUT")

	admin.HandleFunc("/users", userController.GetUsers).Methods("GET")
	admin.HandleFunc("/users/search", userController.SearchUsers).Methods("GET")
	admin.HandleFunc("/users/{id}/grant-admin", userController.GrantAdmin).Methods("POST")
}
