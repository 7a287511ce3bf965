package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"go-laundry/middleware"
	"go-laundry/models"
	"go-laundry/services"
	"go-laundry/utils"

	"github.com/gorilla/mux"
)

// ComplaintController handles complaint-related requests
type ComplaintController struct {
	Complaints   *services.ComplaintService
	Users        services.UserStore
	EmailService *utils.EmailService
}

// NewComplaintController creates a new ComplaintController
func NewComplaintController(complaints *services.ComplaintService, users services.UserStore, emailService *utils.EmailService) *ComplaintController {
	return &ComplaintController{Complaints: complaints, Users: users, EmailService: emailService}
}

type submitComplaintRequest struct {
	IssueType   string `json:"issueType"`
	Description string `json:"description"`
	OrderID     string `json:"orderId,omitempty"`
}

// SubmitComplaint files a new complaint from the support tab
func (cc *ComplaintController) SubmitComplaint(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req submitComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.IssueType == "" || req.Description == "" {
		http.Error(w, "Issue type and description are required", http.StatusBadRequest)
		return
	}
	if !models.ValidComplaintIssueType(req.IssueType) {
		http.Error(w, "Unknown issue type", http.StatusBadRequest)
		return
	}

	complaint := models.Complaint{
		IssueType:   req.IssueType,
		Description: req.Description,
		OrderID:     req.OrderID,
		SubmittedBy: claims.UserID,
	}

	id, err := cc.Complaints.Submit(r.Context(), &complaint)
	if err != nil {
		http.Error(w, "Failed to submit complaint", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"complaintId": id,
		"message":     "Complaint submitted successfully",
	})
}

// GetMyComplaints returns the caller's complaints, newest first
func (cc *ComplaintController) GetMyComplaints(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	complaints, err := cc.Complaints.ListForUser(r.Context(), claims.UserID)
	if err != nil {
		http.Error(w, "Failed to retrieve complaints", http.StatusInternalServerError)
		return
	}
	if complaints == nil {
		complaints = []models.Complaint{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(complaints)
}

// GetAllComplaints returns every complaint (admin view)
func (cc *ComplaintController) GetAllComplaints(w http.ResponseWriter, r *http.Request) {
	complaints, err := cc.Complaints.ListAll(r.Context())
	if err != nil {
		http.Error(w, "Failed to retrieve complaints", http.StatusInternalServerError)
		return
	}
	if complaints == nil {
		complaints = []models.Complaint{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(complaints)
}

// GetComplaint returns a single complaint; customers can only see their own
func (cc *ComplaintController) GetComplaint(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	complaint, err := cc.Complaints.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Failed to retrieve complaint", http.StatusInternalServerError)
		return
	}
	if complaint == nil {
		http.Error(w, "Complaint not found", http.StatusNotFound)
		return
	}
	if complaint.SubmittedBy != claims.UserID && !claims.IsAdmin {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(complaint)
}

type complaintStatusRequest struct {
	Status   string `json:"status"`
	Response string `json:"response,omitempty"`
}

// UpdateComplaintStatus sets a complaint's status and staff response (staff
// only). Resolving a complaint notifies the submitter by email.
func (cc *ComplaintController) UpdateComplaintStatus(w http.ResponseWriter, r *http.Request) {
	complaintID := mux.Vars(r)["id"]

	var req complaintStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if !models.ValidComplaintStatus(req.Status) {
		http.Error(w, "Invalid complaint status", http.StatusBadRequest)
		return
	}

	complaint, err := cc.Complaints.Get(r.Context(), complaintID)
	if err != nil {
		http.Error(w, "Failed to retrieve complaint", http.StatusInternalServerError)
		return
	}
	if complaint == nil {
		http.Error(w, "Complaint not found", http.StatusNotFound)
		return
	}

	if err := cc.Complaints.UpdateStatus(r.Context(), complaintID, req.Status, req.Response); err != nil {
		http.Error(w, "Failed to update complaint", http.StatusInternalServerError)
		return
	}

	if req.Status == models.ComplaintStatusResolved {
		go func(userID, response string) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			user, err := cc.Users.GetByID(ctx, userID)
			if err != nil || user == nil {
				return
			}
			if err := cc.EmailService.SendComplaintResolvedEmail(user.Email, response); err != nil {
				log.Printf("Failed to send resolution email to %s: %v", user.Email, err)
			}
		}(complaint.SubmittedBy, req.Response)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Complaint updated successfully"})
}

// DeleteComplaint removes a complaint; allowed for its submitter or staff
func (cc *ComplaintController) DeleteComplaint(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	complaintID := mux.Vars(r)["id"]
	complaint, err := cc.Complaints.Get(r.Context(), complaintID)
	if err != nil {
		http.Error(w, "Failed to retrieve complaint", http.StatusInternalServerError)
		return
	}
	if complaint == nil {
		http.Error(w, "Complaint not found", http.StatusNotFound)
		return
	}
	if complaint.SubmittedBy != claims.UserID && !claims.IsAdmin {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if err := cc.Complaints.Delete(r.Context(), complaintID); err != nil {
		http.Error(w, "Failed to delete complaint", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Complaint deleted successfully"})
}
