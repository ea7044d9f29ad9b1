package reservations

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

func RegisterReservationRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/reservations", h.CreateReservation)
}

type checkoutRequest struct {
	Name    string `json:"name"`
	Tickets int    `json:"tickets"`
	Phone   string `json:"phone"`
	EventID string `json:"event_id"`
}

// reservationDraft builds the pending row for a ticket checkout. The phone
// is stored in +254 form so later lookups match however the buyer typed it.
func reservationDraft(req checkoutRequest, eventID string, amount int, reference string) models.Reservation {
	return models.Reservation{
		EventID:           eventID,
		Name:              req.Name,
		Phone:             utils.NormalizePhone(req.Phone),
		Tickets:           req.Tickets,
		Amount:            amount,
		ExternalReference: reference,
	}
}

// CreateReservation validates the ticket checkout, dispatches the M-Pesa
// push and starts the confirmation loop. It answers 202 with the reference;
// the client follows /payments/:reference/status for progress.
func (h *Handler) CreateReservation(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide your name and select the number of tickets."})
		return
	}
	if req.Tickets < 1 || req.Tickets > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tickets must be between 1 and 5."})
		return
	}
	if !utils.IsValidKenyanPhone(req.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid Kenyan phone number (e.g., 0722XXXXXX or +254722XXXXXX)"})
		return
	}

	eventID := req.EventID
	if eventID == "" {
		eventID = h.Cfg.DefaultEventID
	}

	// Unit price comes from the event record when one exists; the
	// configured default covers events that are not seeded.
	price := h.Cfg.TicketPrice
	var event models.Event
	if err := utils.PortalDB.Where("slug = ?", eventID).First(&event).Error; err == nil && event.TicketPrice > 0 {
		price = event.TicketPrice
	}
	amount := price * req.Tickets

	reference := utils.NewReference()
	store := &payments.ReservationStore{
		DB:    utils.PortalDB,
		Draft: reservationDraft(req, eventID, amount, reference),
	}

	err := h.Registry.Start(payments.Request{
		PhoneNumber: utils.NormalizePhone(req.Phone),
		Amount:      amount,
		Reference:   reference,
		Record:      store,
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
