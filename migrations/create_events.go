package migrations

import (
	"github.com/Cheppar/merch/models"
	"github.com/Cheppar/merch/utils"
)

func MigrateEvents() {
	utils.PortalDB.AutoMigrate(&models.Event{})
}
