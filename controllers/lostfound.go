package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"go-laundry/middleware"
	"go-laundry/models"
	"go-laundry/services"

	"github.com/gorilla/mux"
)

// LostFoundController handles lost-item requests
type LostFoundController struct {
	Items *services.LostItemService
}

// NewLostFoundController creates a new LostFoundController
func NewLostFoundController(items *services.LostItemService) *LostFoundController {
	return &LostFoundController{Items: items}
}

// ReportLostItem files a new lost-item report, optionally with an image.
// The report form submits multipart; plain JSON is accepted for imageless
// reports.
func (lc *LostFoundController) ReportLostItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var item models.LostItem
	var image io.Reader
	var filename string

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		// Parse multipart form with a max memory of 10MB
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			http.Error(w, "Failed to parse multipart form", http.StatusBadRequest)
			return
		}

		item = models.LostItem{
			ItemType:    r.FormValue("itemType"),
			Color:       r.FormValue("color"),
			Brand:       r.FormValue("brand"),
			Description: r.FormValue("description"),
			LastSeen:    r.FormValue("lastSeen"),
			OrderID:     r.FormValue("orderId"),
		}

		file, handler, err := r.FormFile("image")
		if err == nil {
			defer file.Close()
			image = file
			filename = handler.Filename
		} else if err != http.ErrMissingFile {
			http.Error(w, "Failed to retrieve file", http.StatusBadRequest)
			return
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		// Server-owned fields; images only enter through the upload path.
		item.ImageURL = ""
	}

	if item.ItemType == "" || item.Color == "" || item.Description == "" || item.LastSeen == "" {
		http.Error(w, "Item type, color, description and last-seen date are required", http.StatusBadRequest)
		return
	}
	if !models.ValidLostItemType(item.ItemType) {
		http.Error(w, "Unknown item type", http.StatusBadRequest)
		return
	}
	item.ReportedBy = claims.UserID

	id, err := lc.Items.Report(r.Context(), &item, image, filename)
	if err != nil {
		http.Error(w, "Failed to report lost item", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"itemId":   id,
		"imageUrl": item.ImageURL,
		"message":  "Lost item reported successfully",
	})
}

// GetLostItems lists reports. ?mine=true restricts to the caller's own
// reports; ?q= runs the substring search.
func (lc *LostFoundController) GetLostItems(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var items []models.LostItem
	var err error

	switch {
	case r.URL.Query().Get("q") != "":
		items, err = lc.Items.Search(r.Context(), r.URL.Query().Get("q"))
	case r.URL.Query().Get("mine") == "true":
		items, err = lc.Items.List(r.Context(), claims.UserID)
	default:
		items, err = lc.Items.List(r.Context(), "")
	}
	if err != nil {
		http.Error(w, "Failed to retrieve lost items", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []models.LostItem{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

// GetLostItem returns a single report
func (lc *LostFoundController) GetLostItem(w http.ResponseWriter, r *http.Request) {
	item, err := lc.Items.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Failed to retrieve lost item", http.StatusInternalServerError)
		return
	}
	if item == nil {
		http.Error(w, "Lost item not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// GetItemContact discloses the reporter's contact details so a finder can
// reach them
func (lc *LostFoundController) GetItemContact(w http.ResponseWriter, r *http.Request) {
	item, err := lc.Items.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Failed to retrieve lost item", http.StatusInternalServerError)
		return
	}
	if item == nil {
		http.Error(w, "Lost item not found", http.StatusNotFound)
		return
	}

	owner, err := lc.Items.GetOwner(r.Context(), item.ReportedBy)
	if err != nil {
		http.Error(w, "Failed to retrieve reporter", http.StatusInternalServerError)
		return
	}
	if owner == nil {
		http.Error(w, "Reporter not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"fullName":    owner.FullName,
		"contactInfo": owner.ContactInfo,
	})
}

// UpdateLostItemStatus advances a report's status (staff only)
func (lc *LostFoundController) UpdateLostItemStatus(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["id"]

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if !models.ValidLostItemStatus(req.Status) {
		http.Error(w, "Invalid lost item status", http.StatusBadRequest)
		return
	}

	item, err := lc.Items.Get(r.Context(), itemID)
	if err != nil {
		http.Error(w, "Failed to retrieve lost item", http.StatusInternalServerError)
		return
	}
	if item == nil {
		http.Error(w, "Lost item not found", http.StatusNotFound)
		return
	}

	if err := lc.Items.UpdateStatus(r.Context(), itemID, req.Status); err != nil {
		http.Error(w, "Failed to update lost item status", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Status updated successfully"})
}

// DeleteLostItem removes a report. Only the original reporter may delete it.
func (lc *LostFoundController) DeleteLostItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	itemID := mux.Vars(r)["id"]
	item, err := lc.Items.Get(r.Context(), itemID)
	if err != nil {
		http.Error(w, "Failed to retrieve lost item", http.StatusInternalServerError)
		return
	}
	if item == nil {
		http.Error(w, "Lost item not found", http.StatusNotFound)
		return
	}
	if item.ReportedBy != claims.UserID {
		http.Error(w, "Only the original reporter can delete a report", http.StatusForbidden)
		return
	}

	if err := lc.Items.Delete(r.Context(), itemID, item.ImageURL); err != nil {
		http.Error(w, "Failed to delete lost item", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Lost item deleted successfully"})
}
