package migrations

import (
	"github.com/Cheppar/merch/models"
	"github.com/Cheppar/merch/utils"
)

func MigrateOperatorAlerts() {
	utils.PortalDB.AutoMigrate(&models.OperatorAlert{})
}
