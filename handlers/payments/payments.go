package payments

import (
	"net/http"

	"github.com/Cheppar/merch/config"
	"github.com/Cheppar/merch/models"
	corepayments "github.com/Cheppar/merch/payments"
	"github.com/Cheppar/merch/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RecordFinder resolves a reference against the stored checkout records
// once its loop is no longer held by the registry.
type RecordFinder interface {
	Find(reference string) (status string, mpesaCode *string, ok bool)
}

// StoredRecords is the gorm-backed RecordFinder. Reservations and session
// bookings share the reference namespace, so both tables are consulted.
type StoredRecords struct {
	DB *gorm.DB
}

func (s StoredRecords) Find(reference string) (string, *string, bool) {
	var reservation models.Reservation
	if err := s.DB.Where("external_reference = ?", reference).First(&reservation).Error; err == nil {
		return reservation.Status, reservation.MpesaCode, true
	}

	var booking models.SessionBooking
	if err := s.DB.Where("external_reference = ?", reference).First(&booking).Error; err == nil {
		return booking.Status, booking.MpesaCode, true
	}

	return "", nil, false
}

type Handler struct {
	Cfg      config.App
	Registry *corepayments.Registry
	Records  RecordFinder
}

func NewHandler(cfg config.App, registry *corepayments.Registry, records RecordFinder) *Handler {
	return &Handler{Cfg: cfg, Registry: registry, Records: records}
}

func RegisterPaymentRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/payments/initiate", h.InitiatePayment)
	r.GET("/payments/:reference/status", h.GetPaymentStatus)
}

type initiateRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Amount  int    `json:"amount"`
	EventID string `json:"event_id"`
}

// InitiatePayment is the generic checkout: an explicit amount against a
// named event or bill (rent, one-off tariffs) rather than a priced form.
func (h *Handler) InitiatePayment(c *gin.Context) {
	var req initiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide your name."})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be a positive whole number."})
		return
	}
	if !utils.IsValidKenyanPhone(req.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid Kenyan phone number (e.g., 0722XXXXXX or +254722XXXXXX)"})
		return
	}

	eventID := req.EventID
	if eventID == "" {
		eventID = "direct"
	}

	reference := utils.NewReference()
	store := &corepayments.ReservationStore{
		DB: utils.PortalDB,
		Draft: models.Reservation{
			EventID:           eventID,
			Name:              req.Name,
			Phone:             utils.NormalizePhone(req.Phone),
			Tickets:           1,
			Amount:            req.Amount,
			ExternalReference: reference,
		},
	}

	err := h.Registry.Start(corepayments.Request{
		PhoneNumber: utils.NormalizePhone(req.Phone),
		Amount:      req.Amount,
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
		"amount":     req.Amount,
		"status_url": "/payments/" + reference + "/status",
	})
}

// GetPaymentStatus serves the progress of an in-flight checkout from the
// registry and falls back to the stored record for references whose loop
// finished in an earlier process.
func (h *Handler) GetPaymentStatus(c *gin.Context) {
	reference := c.Param("reference")
	if reference == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reference is required"})
		return
	}

	if snap, ok := h.Registry.Snapshot(reference); ok {
		c.JSON(http.StatusOK, snap)
		return
	}

	if status, code, ok := h.Records.Find(reference); ok {
		c.JSON(http.StatusOK, gin.H{
			"reference": reference,
			"status":    status,
			"mpesacode": code,
		})
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "No payment found for this reference"})
}
