package dashboard

import (
	"fmt"
	"net/http"

	"github.com/Cheppar/merch/models"
	"github.com/Cheppar/merch/utils"

	"github.com/gin-gonic/gin"
)

func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard/reservations", GetReservations)
	r.GET("/dashboard/sessions", GetSessionBookings)
}

type reservationRow struct {
	models.Reservation
	WhatsAppURL string `json:"whatsapp_url"`
}

type bookingRow struct {
	models.SessionBooking
	WhatsAppURL string `json:"whatsapp_url"`
}

// GetReservations lists ticket reservations for the staff dashboard,
// grouped by payment status, each with a pre-filled WhatsApp link.
func GetReservations(c *gin.Context) {
	var reservations []models.Reservation
	if err := utils.PortalDB.Order("id DESC").Find(&reservations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reservations"})
		return
	}

	paid := []reservationRow{}
	pending := []reservationRow{}
	for _, res := range reservations {
		message := fmt.Sprintf("Hello %s, thank you for your reservation (Ref: %s). How can we assist you today?",
			res.Name, res.ExternalReference)
		row := reservationRow{
			Reservation: res,
			WhatsAppURL: utils.WhatsAppLink(res.Phone, message),
		}
		switch res.Status {
		case models.StatusPaid:
			paid = append(paid, row)
		case models.StatusPending:
			pending = append(pending, row)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"paid":    paid,
		"pending": pending,
	})
}

// GetSessionBookings lists counselling-session bookings grouped the way the
// sessions dashboard renders them: paid virtual, paid physical, pending.
func GetSessionBookings(c *gin.Context) {
	var bookings []models.SessionBooking
	if err := utils.PortalDB.Order("id DESC").Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch session bookings"})
		return
	}

	virtual := []bookingRow{}
	physical := []bookingRow{}
	pending := []bookingRow{}
	for _, booking := range bookings {
		message := fmt.Sprintf("Hello %s, your %s e-counselling session (Ref: %s) is scheduled. How can we assist you?",
			booking.Name, booking.SessionType, booking.ExternalReference)
		row := bookingRow{
			SessionBooking: booking,
			WhatsAppURL:    utils.WhatsAppLink(booking.Phone, message),
		}
		switch {
		case booking.Status == models.StatusPaid && booking.SessionType == models.SessionVirtual:
			virtual = append(virtual, row)
		case booking.Status == models.StatusPaid && booking.SessionType == models.SessionPhysical:
			physical = append(physical, row)
		case booking.Status == models.StatusPending:
			pending = append(pending, row)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"virtual":  virtual,
		"physical": physical,
		"pending":  pending,
	})
}
