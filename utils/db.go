package utils

import (
	"fmt"
	"log"

	"github.com/Cheppar/merch/config"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var PortalDB *gorm.DB
var PaymentsDB *gorm.DB

// ConnectDatabase opens the portal database (reservations, bookings, staff
// users) and the payments database, where the gateway backend writes its
// confirmation rows. The two may point at the same schema.
func ConnectDatabase(cfg config.App) {
	portalDSN := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.PortalDB,
	)

	paymentsDSN := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.PaymentsDB,
	)

	var err error

	PortalDB, err = gorm.Open(mysql.Open(portalDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to portal database: %v", err)
	}

	PaymentsDB, err = gorm.Open(mysql.Open(paymentsDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to payments database: %v", err)
	}
}
