package events

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Cheppar/merch/models"

	"github.com/gin-gonic/gin"
)

type captureRSVPs struct {
	created []models.RSVP
}

func (c *captureRSVPs) Create(rsvp *models.RSVP) error {
	c.created = append(c.created, *rsvp)
	return nil
}

func postRSVP(t *testing.T, store RSVPStore, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &Handler{RSVPs: store}
	r.POST("/events/rsvp", h.SubmitRSVP)

	req := httptest.NewRequest(http.MethodPost, "/events/rsvp", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitRSVP_StoresNormalizedPhone(t *testing.T) {
	store := &captureRSVPs{}

	w := postRSVP(t, store, `{"name":"Jane Doe","email":"jane@example.com","mobile":"0722123456"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if len(store.created) != 1 {
		t.Fatalf("expected exactly one saved reservation, got %d", len(store.created))
	}
	if store.created[0].Phone != "+254722123456" {
		t.Errorf("expected the stored phone in +254 form, got %q", store.created[0].Phone)
	}
}

func TestSubmitRSVP_PrefixedPhonePassesThrough(t *testing.T) {
	store := &captureRSVPs{}

	w := postRSVP(t, store, `{"name":"Jane Doe","email":"jane@example.com","mobile":"+254733000111"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if len(store.created) != 1 || store.created[0].Phone != "+254733000111" {
		t.Errorf("expected the prefixed phone stored unchanged, got %+v", store.created)
	}
}

func TestSubmitRSVP_RejectsInvalidPhone(t *testing.T) {
	store := &captureRSVPs{}

	w := postRSVP(t, store, `{"name":"Jane Doe","email":"jane@example.com","mobile":"12345"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if len(store.created) != 0 {
		t.Errorf("nothing should be saved for an invalid phone, got %d rows", len(store.created))
	}
}
