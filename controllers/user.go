package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"go-laundry/middleware"
	"go-laundry/models"
	"go-laundry/services"
	"go-laundry/utils"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"
)

// UserController handles account-related requests
type UserController struct {
	Users        services.UserStore
	EmailService *utils.EmailService
}

// NewUserController creates a new UserController
func NewUserController(users services.UserStore, emailService *utils.EmailService) *UserController {
	return &UserController{Users: users, EmailService: emailService}
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FullName  string `json:"fullName"`
	StudentID string `json:"studentId"`
}

// Register handles account creation
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.FullName == "" || req.StudentID == "" {
		http.Error(w, "Email, full name and student ID are required", http.StatusBadRequest)
		return
	}
	if len(req.Password) < 6 {
		http.Error(w, "Password must be at least 6 characters", http.StatusBadRequest)
		return
	}

	// Check if the account already exists
	existing, err := uc.Users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		http.Error(w, "User already exists", http.StatusBadRequest)
		return
	}

	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Error hashing password", http.StatusInternalServerError)
		return
	}

	user := models.User{
		Email:       req.Email,
		Password:    string(hashedPassword),
		FullName:    req.FullName,
		StudentID:   req.StudentID,
		CreatedAt:   time.Now().UTC(),
		IsAdmin:     false,
		ContactInfo: req.Email, // Default contact info is the email
	}

	id, err := uc.Users.Insert(r.Context(), &user)
	if err != nil {
		http.Error(w, "Error creating user", http.StatusInternalServerError)
		return
	}

	token, err := utils.GenerateJWT(id, user.Email, user.IsAdmin)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	go func(email, name string) {
		if err := uc.EmailService.SendWelcomeEmail(email, name); err != nil {
			log.Printf("Failed to send welcome email to %s: %v", email, err)
		}
	}(user.Email, user.FullName)

	user.Password = ""
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and issues a session token
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	user, err := uc.Users.GetByEmail(r.Context(), strings.TrimSpace(strings.ToLower(req.Email)))
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.IsAdmin)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	user.Password = ""
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// GetProfile returns the authenticated user's account
func (uc *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := uc.Users.GetByID(r.Context(), claims.UserID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	user.Password = ""
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

type profileUpdateRequest struct {
	FullName    *string `json:"fullName,omitempty"`
	ContactInfo *string `json:"contactInfo,omitempty"`
}

// UpdateProfile updates the settings-screen fields (display name, contact info)
func (uc *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req profileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if req.FullName == nil && req.ContactInfo == nil {
		http.Error(w, "Nothing to update", http.StatusBadRequest)
		return
	}

	upd := models.UserUpdate{FullName: req.FullName, ContactInfo: req.ContactInfo}
	if err := uc.Users.Update(r.Context(), claims.UserID, upd); err != nil {
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Profile updated successfully"})
}

// GetUsers returns every account (admin view)
func (uc *UserController) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := uc.Users.ListAll(r.Context())
	if err != nil {
		http.Error(w, "Failed to retrieve users", http.StatusInternalServerError)
		return
	}

	for i := range users {
		users[i].Password = ""
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}

// SearchUsers looks accounts up by email prefix (admin order form)
func (uc *UserController) SearchUsers(w http.ResponseWriter, r *http.Request) {
	prefix := strings.TrimSpace(strings.ToLower(r.URL.Query().Get("email")))
	if prefix == "" {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.User{})
		return
	}

	users, err := uc.Users.SearchByEmailPrefix(r.Context(), prefix)
	if err != nil {
		http.Error(w, "Failed to search users", http.StatusInternalServerError)
		return
	}

	for i := range users {
		users[i].Password = ""
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}

// GrantAdmin promotes an account to staff (admin only)
func (uc *UserController) GrantAdmin(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	user, err := uc.Users.GetByID(r.Context(), userID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	isAdmin := true
	if err := uc.Users.Update(r.Context(), userID, models.UserUpdate{IsAdmin: &isAdmin}); err != nil {
		http.Error(w, "Failed to grant admin access", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Admin access granted"})
}
