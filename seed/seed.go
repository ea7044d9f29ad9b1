// seed/seed.go
package seed

import (
	"errors"
	"log"

	"github.com/Cheppar/merch/models"
	"github.com/Cheppar/merch/utils"

	"gorm.io/gorm"
)

var defaultEvents = []models.Event{
	{
		Slug:        "lw14",
		Name:        "LiveWire Event",
		Date:        "2025-05-10",
		Location:    "Nairobi Convention Center",
		Description: "Join us for an exciting day of talks, workshops, and networking!",
		TicketPrice: 1000,
		Featured:    true,
	},
	{
		Slug:        "trf-dinner",
		Name:        "Rotary Club of Nakuru - TRF Dinner",
		Date:        "May 22, 2025",
		Time:        "19:00 PM - 22:00 PM",
		Location:    "Rift Valley Sports club (Nakuru)",
		Description: "Join us for an exciting day of talks, workshops, and networking with the Rotary community!",
		TicketPrice: 1000,
	},
	{
		Slug:        "counselling_session",
		Name:        "Book an E-Session with Us",
		Description: "Experience a safe and supportive virtual e-counselling session. Book now to start your journey toward healing and growth.",
	},
}

func SeedEvents() error {
	for _, event := range defaultEvents {
		var existing models.Event
		err := utils.PortalDB.Where("slug = ?", event.Slug).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := utils.PortalDB.Create(&event).Error; err != nil {
			return err
		}
		log.Printf("Seeded event %q.", event.Slug)
	}

	return nil
}
