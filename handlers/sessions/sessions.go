package sessions

import (
	"net/http"

	"github.com/Cheppar/merch/config"
	"github.com/Cheppar/merch/models"
	"github.com/Cheppar/merch/payments"
	"github.com/Cheppar/merch/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Cfg      config.App
	Registry *payments.Registry
}

func NewHandler(cfg config.App, registry *payments.Registry) *Handler {
	return &Handler{Cfg: cfg, Registry: registry}
}

func RegisterSessionRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/sessions", h.BookSession)
}

type bookingRequest struct {
	Name        string `json:"name"`
	SessionType string `json:"session_type"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	AltContact  string `json:"alt_contact"`
	Venue       string `json:"venue"`
	Phone       string `json:"phone"`
}

// bookingDraft builds the pending row for a session checkout. The phone is
// stored in +254 form so later lookups match however the client typed it.
func bookingDraft(req bookingRequest, amount int, reference string) models.SessionBooking {
	draft := models.SessionBooking{
		EventID:           "counselling_session",
		Name:              req.Name,
		SessionType:       req.SessionType,
		Phone:             utils.NormalizePhone(req.Phone),
		Amount:            amount,
		ExternalReference: reference,
	}
	if req.SessionType == models.SessionVirtual {
		draft.Date = req.Date
		draft.Time = req.Time
		draft.AltContact = req.AltContact
	} else {
		draft.Venue = req.Venue
	}
	return draft
}

// BookSession validates a counselling-session checkout and starts the
// payment confirmation loop. Virtual sessions need a date, time and a
// reachable alternative contact; physical sessions need a venue.
func (h *Handler) BookSession(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide your name."})
		return
	}

	var amount int
	switch req.SessionType {
	case models.SessionVirtual:
		if req.Date == "" || req.Time == "" || req.AltContact == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide date, time, and alternative contact for virtual sessions."})
			return
		}
		if !utils.IsValidEmail(req.AltContact) && !utils.IsValidKenyanPhone(req.AltContact) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a valid email or Kenyan phone number for alternative contact."})
			return
		}
		amount = h.Cfg.VirtualSessionPrice
	case models.SessionPhysical:
		if req.Venue == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a venue for physical sessions."})
			return
		}
		amount = h.Cfg.PhysicalSessionPrice
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session type must be virtual or physical."})
		return
	}

	if !utils.IsValidKenyanPhone(req.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid Kenyan phone number (e.g., 0722XXXXXX or +254722XXXXXX)"})
		return
	}

	reference := utils.NewReference()
	draft := bookingDraft(req, amount, reference)

	err := h.Registry.Start(payments.Request{
		PhoneNumber: utils.NormalizePhone(req.Phone),
		Amount:      amount,
		Reference:   reference,
		Record:      &payments.BookingStore{DB: utils.PortalDB, Draft: draft},
	})
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message":    "Please wait for an M-Pesa prompt.",
		"reference":  reference,
		"amount":     amount,
		"status_url": "/payments/" + reference + "/status",
	})
}
