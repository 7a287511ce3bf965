package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-laundry/models"
	"go-laundry/services"
	"go-laundry/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitComplaint_IssueTypeVocabulary(t *testing.T) {
	store := newStubComplaintStore()
	svc := services.NewComplaintService(store)
	controller := NewComplaintController(svc, newStubUserStore(), utils.NewEmailService())

	submit := func(issueType string) *httptest.ResponseRecorder {
		body := `{"issueType": "` + issueType + `", "description": "torn sleeve"}`
		req := httptest.NewRequest(http.MethodPost, "/api/complaints", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req = authedRequest(req, &utils.Claims{UserID: "user-1"})

		rec := httptest.NewRecorder()
		controller.SubmitComplaint(rec, req)
		return rec
	}

	t.Run("known issue type is accepted", func(t *testing.T) {
		rec := submit("damaged")
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Len(t, store.complaints, 1)
		for _, complaint := range store.complaints {
			assert.Equal(t, models.ComplaintStatusSubmitted, complaint.Status)
		}
	})

	t.Run("unknown issue type is rejected", func(t *testing.T) {
		rec := submit("telepathy")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Len(t, store.complaints, 1)
	})
}
