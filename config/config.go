package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type App struct {
	Port string `envconfig:"PORT" default:"8080"`

	// Database
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBHost     string `envconfig:"DB_HOST" default:"127.0.0.1"`
	DBPort     string `envconfig:"DB_PORT" default:"3306"`
	PortalDB   string `envconfig:"PORTAL_DB" required:"true"`
	// The payments database is where the gateway backend writes its
	// status rows (gaspayments). It may be the same schema as the portal.
	PaymentsDB string `envconfig:"PAYMENTS_DB" required:"true"`

	// Payment gateway
	GatewayURL        string `envconfig:"GATEWAY_URL" default:"https://cheppar.co.ke/cheppar/authPay.php"`
	GatewayTimeoutSec int    `envconfig:"GATEWAY_TIMEOUT_SEC" default:"30"`
	// Optional HTTP status endpoint. When empty the poller reads the
	// gaspayments table directly.
	StatusURL string `envconfig:"STATUS_URL"`

	// Poll budget
	PollIntervalMs int `envconfig:"POLL_INTERVAL_MS" default:"10000"`
	InitialDelayMs int `envconfig:"POLL_INITIAL_DELAY_MS" default:"5000"`
	MaxAttempts    int `envconfig:"POLL_MAX_ATTEMPTS" default:"15"`

	// Tariffs (KES, whole units)
	TicketPrice          int    `envconfig:"TICKET_PRICE" default:"1000"`
	VirtualSessionPrice  int    `envconfig:"VIRTUAL_SESSION_PRICE" default:"500"`
	PhysicalSessionPrice int    `envconfig:"PHYSICAL_SESSION_PRICE" default:"2000"`
	DefaultEventID       string `envconfig:"DEFAULT_EVENT_ID" default:"lw14"`

	AllowOrigins []string `envconfig:"ALLOW_ORIGINS" default:"https://events.cheppar.co.ke"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}

func (c App) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

func (c App) InitialDelay() time.Duration {
	return time.Duration(c.InitialDelayMs) * time.Millisecond
}

func (c App) GatewayTimeout() time.Duration {
	return time.Duration(c.GatewayTimeoutSec) * time.Second
}
