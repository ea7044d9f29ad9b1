package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Cheppar/merch/models"
	"gorm.io/gorm"
)

// Status is the result of one confirmation check. A zero Status with a nil
// error means the payment has not settled yet.
type Status struct {
	Confirmed       bool
	TransactionCode string
}

// StatusSource reads the gateway backend's view of a payment. An error is a
// transport problem with the check itself; the poller treats it the same as
// an absent row.
type StatusSource interface {
	Check(ctx context.Context, reference string) (Status, error)
}

// successValue normalizes the terminal-success field. The status column has
// been written as a boolean by one integration and a string label by
// another; both encodings mean the same thing and must stay equivalent.
func successValue(v interface{}) bool {
	switch s := v.(type) {
	case bool:
		return s
	case string:
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "1", "paid", "success", "successful", "complete", "completed":
			return true
		}
		return false
	case float64:
		return s == 1
	default:
		return false
	}
}

// TableStatusSource reads the gaspayments table the gateway backend writes.
type TableStatusSource struct {
	DB *gorm.DB
}

func (s *TableStatusSource) Check(ctx context.Context, reference string) (Status, error) {
	var record models.PaymentStatusRecord
	err := s.DB.WithContext(ctx).
		Where("user_reference = ?", reference).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// No row yet; the payer has not completed the push.
		return Status{}, nil
	}
	if err != nil {
		return Status{}, err
	}

	if !successValue(record.Status) {
		return Status{}, nil
	}
	return Status{Confirmed: true, TransactionCode: record.MpesaReference}, nil
}

// HTTPStatusSource polls a status endpoint instead of the table, for
// deployments where the payments database is not reachable directly.
type HTTPStatusSource struct {
	URL    string
	Client *http.Client
}

func NewHTTPStatusSource(url string, timeout time.Duration) *HTTPStatusSource {
	return &HTTPStatusSource{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPStatusSource) Check(ctx context.Context, reference string) (Status, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return Status{}, err
	}
	q := req.URL.Query()
	q.Set("reference", reference)
	req.URL.RawQuery = q.Encode()

	resp, err := s.Client.Do(req)
	if err != nil {
		return Status{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Status{}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Status{}, fmt.Errorf("status endpoint returned %d", resp.StatusCode)
	}

	var body struct {
		Status         interface{} `json:"status"`
		MpesaReference string      `json:"mpesa_reference"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Status{}, err
	}

	if !successValue(body.Status) {
		return Status{}, nil
	}
	return Status{Confirmed: true, TransactionCode: body.MpesaReference}, nil
}
