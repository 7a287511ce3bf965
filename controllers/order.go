// controllers/order.go
package controllers

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"go-laundry/middleware"
	"go-laundry/models"
	"go-laundry/services"

	"github.com/gorilla/mux"
)

// OrderController handles order-related requests
type OrderController struct {
	Orders    *services.OrderService
	Simulator *services.Simulator
}

// NewOrderController creates a new OrderController
func NewOrderController(orders *services.OrderService, simulator *services.Simulator) *OrderController {
	return &OrderController{Orders: orders, Simulator: simulator}
}

// generateBagCode returns a random 4-digit laundry bag code.
func generateBagCode() string {
	return fmt.Sprintf("%04d", 1000+rand.Intn(9000))
}

// GetMyOrders returns the authenticated user's orders, newest first
func (oc *OrderController) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	orders := oc.Orders.ListForUser(r.Context(), claims.UserID)
	if orders == nil {
		orders = []models.LaundryOrder{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// GetCurrentOrder returns the user's most recent active order, or 204 when
// everything is completed
func (oc *OrderController) GetCurrentOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	order := oc.Orders.GetCurrentActive(r.Context(), claims.UserID)
	if order == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

// GetOrder returns a single order; customers can only see their own
func (oc *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	order := oc.Orders.Get(r.Context(), mux.Vars(r)["id"])
	if order == nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if order.UserID != claims.UserID && !claims.IsAdmin {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

// AdvanceOrder performs one simulated progress tick. The dashboard polls this
// while the current order is on screen; ticking stops with the screen.
func (oc *OrderController) AdvanceOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	orderID := mux.Vars(r)["id"]
	order := oc.Orders.Get(r.Context(), orderID)
	if order == nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if order.UserID != claims.UserID && !claims.IsAdmin {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	progress, err := oc.Orders.AdvanceProgress(r.Context(), orderID)
	if err != nil {
		http.Error(w, "Failed to update progress", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"progress": progress,
		"ready":    progress >= 100,
	})
}

type createOrderRequest struct {
	UserID                  string             `json:"userId"`
	UserEmail               string             `json:"userEmail,omitempty"`
	Items                   int                `json:"items"`
	Status                  string             `json:"status,omitempty"`
	Notes                   string             `json:"notes,omitempty"`
	Cost                    float64            `json:"cost,omitempty"`
	ClothItems              *models.ClothItems `json:"clothItems,omitempty"`
	BagCode                 string             `json:"bagCode,omitempty"`
	EstimatedCompletionTime *time.Time         `json:"estimatedCompletionTime,omitempty"`
}

// CreateOrder creates a new order for a customer (admin order form)
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.UserID == "" {
		http.Error(w, "User ID is required", http.StatusBadRequest)
		return
	}
	if req.Items <= 0 {
		http.Error(w, "Order must contain at least one item", http.StatusBadRequest)
		return
	}
	if req.Status == "" {
		req.Status = models.OrderStatusPending
	}
	if !models.ValidOrderStatus(req.Status) {
		http.Error(w, "Invalid order status", http.StatusBadRequest)
		return
	}
	if req.BagCode == "" {
		req.BagCode = generateBagCode()
	}
	if req.EstimatedCompletionTime == nil {
		// Pickup is promised within a day of drop-off
		estimated := time.Now().UTC().Add(24 * time.Hour)
		req.EstimatedCompletionTime = &estimated
	}

	order := models.LaundryOrder{
		UserID:                  req.UserID,
		UserEmail:               req.UserEmail,
		Items:                   req.Items,
		Status:                  req.Status,
		Progress:                0,
		Notes:                   req.Notes,
		Cost:                    req.Cost,
		ClothItems:              req.ClothItems,
		BagCode:                 req.BagCode,
		EstimatedCompletionTime: req.EstimatedCompletionTime,
	}

	id, err := oc.Orders.Create(r.Context(), &order)
	if err != nil {
		http.Error(w, "Failed to create order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"orderId": id,
		"bagCode": order.BagCode,
		"message": "Order created successfully",
	})
}

// GetAllOrders returns every order across all users (admin view)
func (oc *OrderController) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	orders := oc.Orders.ListAll(r.Context())
	if orders == nil {
		orders = []models.LaundryOrder{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// UpdateOrder merges the supplied fields into an order (admin order detail)
func (oc *OrderController) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var upd models.OrderUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if upd.Status != nil && !models.ValidOrderStatus(*upd.Status) {
		http.Error(w, "Invalid order status", http.StatusBadRequest)
		return
	}

	if order := oc.Orders.Get(r.Context(), orderID); order == nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	if err := oc.Orders.Update(r.Context(), orderID, upd); err != nil {
		http.Error(w, "Failed to update order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Order updated successfully"})
}

// UpdateOrderProgress sets an order's progress explicitly (admin)
func (oc *OrderController) UpdateOrderProgress(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var req struct {
		Progress int `json:"progress"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if order := oc.Orders.Get(r.Context(), orderID); order == nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	if err := oc.Orders.UpdateProgress(r.Context(), orderID, req.Progress); err != nil {
		http.Error(w, "Failed to update progress", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Progress updated successfully"})
}

// DeleteOrder removes an order (admin)
func (oc *OrderController) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	oc.Simulator.Stop(orderID)
	if err := oc.Orders.Delete(r.Context(), orderID); err != nil {
		http.Error(w, "Failed to delete order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Order deleted successfully"})
}

// StartSimulation launches the server-side progress ticker for an order (admin)
func (oc *OrderController) StartSimulation(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	order := oc.Orders.Get(r.Context(), orderID)
	if order == nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if !models.ActiveOrderStatus(order.Status) {
		http.Error(w, "Order is already completed", http.StatusConflict)
		return
	}

	if !oc.Simulator.Start(orderID) {
		http.Error(w, "Simulation already running", http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Simulation started"})
}

// StopSimulation cancels the progress ticker for an order (admin)
func (oc *OrderController) StopSimulation(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	if !oc.Simulator.Stop(orderID) {
		http.Error(w, "No simulation running for this order", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Simulation stopped"})
}
