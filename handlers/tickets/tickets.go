package tickets

import (
	"fmt"
	"net/http"

	"github.com/Cheppar/merch/models"
	"github.com/Cheppar/merch/utils"

	"github.com/gin-gonic/gin"
)

func RegisterTicketRoutes(r *gin.RouterGroup) {
	r.GET("/tickets", GetTickets)
	r.GET("/sessions/booked", GetBookedSessions)
}

func RegisterStaffTicketRoutes(r *gin.RouterGroup) {
	r.POST("/tickets/:reference/claim", ClaimTicket)
}

type ticketRow struct {
	models.Reservation
	ShareURL string `json:"share_url"`
}

func admits(tickets int) string {
	if tickets == 1 {
		return "Person"
	}
	return "People"
}

// GetTickets lists the paid reservations for a phone number, each with a
// WhatsApp share link carrying the ticket details.
func GetTickets(c *gin.Context) {
	// Stored phones carry the +254 prefix; normalize the query so a buyer
	// who typed 07... at checkout can look up with either form.
	phone := utils.NormalizePhone(c.Query("phone"))
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a phone number to view your orders."})
		return
	}

	var orders []models.Reservation
	if err := utils.PortalDB.
		Where("phone = ? AND status = ?", phone, models.StatusPaid).
		Order("id DESC").
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tickets"})
		return
	}

	rows := []ticketRow{}
	for _, order := range orders {
		var event models.Event
		utils.PortalDB.Where("slug = ?", order.EventID).First(&event)

		message := fmt.Sprintf("Your ticket for %s is confirmed!\nName: %s\nAdmits: %d %s\nDate: %s\nVenue: %s\nRef: %s",
			event.Name, order.Name, order.Tickets, admits(order.Tickets), event.Date, event.Location, order.ExternalReference)
		rows = append(rows, ticketRow{
			Reservation: order,
			ShareURL:    utils.WhatsAppLink(order.Phone, message),
		})
	}

	c.JSON(http.StatusOK, gin.H{"tickets": rows})
}

type sessionRow struct {
	models.SessionBooking
	ShareURL string `json:"share_url"`
}

// GetBookedSessions is the session counterpart of GetTickets.
func GetBookedSessions(c *gin.Context) {
	phone := utils.NormalizePhone(c.Query("phone"))
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a phone number to view your sessions."})
		return
	}

	var bookings []models.SessionBooking
	if err := utils.PortalDB.
		Where("phone = ? AND status = ?", phone, models.StatusPaid).
		Order("id DESC").
		Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booked sessions"})
		return
	}

	rows := []sessionRow{}
	for _, booking := range bookings {
		var when string
		if booking.SessionType == models.SessionVirtual {
			when = fmt.Sprintf("Date: %s\nTime: %s", booking.Date, booking.Time)
		} else {
			when = fmt.Sprintf("Venue: %s", booking.Venue)
		}
		message := fmt.Sprintf("Your %s e-counselling session is confirmed!\nName: %s\nAmount: KES %d\n%s\nRef: %s",
			booking.SessionType, booking.Name, booking.Amount, when, booking.ExternalReference)
		rows = append(rows, sessionRow{
			SessionBooking: booking,
			ShareURL:       utils.WhatsAppLink(booking.Phone, message),
		})
	}

	c.JSON(http.StatusOK, gin.H{"sessions": rows})
}

// ClaimTicket marks a paid reservation as claimed at the door. Only the
// Paid -> claimed transition is allowed; anything else is refused.
func ClaimTicket(c *gin.Context) {
	reference := c.Param("reference")

	var reservation models.Reservation
	if err := utils.PortalDB.Where("external_reference = ?", reference).First(&reservation).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		return
	}

	if !models.IsValidTransition(reservation.Status, models.StatusClaimed) {
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Cannot claim a %s reservation", reservation.Status)})
		return
	}

	if err := utils.PortalDB.Model(&reservation).Update("status", models.StatusClaimed).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reservation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Ticket claimed.",
		"reference": reference,
	})
}
