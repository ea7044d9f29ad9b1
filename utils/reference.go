package utils

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	refMu    sync.Mutex
	lastBase string
)

// NewReference returns a checkout reference such as INV-1715938123456. The
// reference joins the business record to the gateway's status row, so two
// checkouts in the same millisecond get a random suffix to keep it unique.
func NewReference() string {
	refMu.Lock()
	defer refMu.Unlock()

	base := fmt.Sprintf("INV-%d", time.Now().UnixMilli())
	if base == lastBase {
		return base + "-" + uuid.NewString()[:8]
	}
	lastBase = base
	return base
}
