package events

import (
	"net/http"

	"github.com/Cheppar/merch/models"
	"github.com/Cheppar/merch/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RSVPStore persists seat reservations.
type RSVPStore interface {
	Create(rsvp *models.RSVP) error
}

type gormRSVPStore struct {
	db *gorm.DB
}

func (s gormRSVPStore) Create(rsvp *models.RSVP) error {
	return s.db.Create(rsvp).Error
}

type Handler struct {
	RSVPs RSVPStore
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{RSVPs: gormRSVPStore{db: db}}
}

func RegisterEventsRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/events", GetEvents)
	r.GET("/events/featured", GetFeaturedEvent)
	r.GET("/events/:slug", GetEvent)
	r.POST("/events/rsvp", h.SubmitRSVP)
}

func GetEvents(c *gin.Context) {
	var events []models.Event
	if err := utils.PortalDB.Order("id DESC").Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

func GetFeaturedEvent(c *gin.Context) {
	var event models.Event
	if err := utils.PortalDB.Where("featured = ?", true).First(&event).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No featured event found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

func GetEvent(c *gin.Context) {
	var event models.Event
	if err := utils.PortalDB.Where("slug = ?", c.Param("slug")).First(&event).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

type rsvpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Question string `json:"question"`
}

// SubmitRSVP records a free seat reservation. No payment is involved.
func (h *Handler) SubmitRSVP(c *gin.Context) {
	var req rsvpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if req.Name == "" || req.Email == "" || req.Mobile == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all required fields."})
		return
	}
	if !utils.IsValidKenyanPhone(req.Mobile) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid Kenyan phone number (e.g., 0722XXXXXX or +254722XXXXXX)"})
		return
	}
	if !utils.IsValidEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid email address."})
		return
	}

	rsvp := models.RSVP{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    utils.NormalizePhone(req.Mobile),
		Question: req.Question,
	}
	if err := h.RSVPs.Create(&rsvp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save reservation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Your reservation has been successfully submitted!"})
}
