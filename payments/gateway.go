package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Gateway issues an M-Pesa STK push. A nil error only means the gateway
// queued the request; the push on the payer's phone settles out of band and
// the outcome is knowable solely by polling. Initiate is never retried.
type Gateway interface {
	Initiate(ctx context.Context, phoneNumber string, amount int, reference string) error
}

// STKGateway talks to the hosted push endpoint.
type STKGateway struct {
	URL    string
	Client *http.Client
}

func NewSTKGateway(url string, timeout time.Duration) *STKGateway {
	return &STKGateway{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

type stkRequest struct {
	PhoneNumber       string `json:"phone_number"`
	Amount            int    `json:"amount"`
	ExternalReference string `json:"external_reference"`
}

type stkResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (g *STKGateway) Initiate(ctx context.Context, phoneNumber string, amount int, reference string) error {
	if !strings.HasPrefix(phoneNumber, "+") {
		return fmt.Errorf("%w: phone number must be in international format", ErrGatewayRejected)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be a positive whole number", ErrGatewayRejected)
	}
	if reference == "" {
		return fmt.Errorf("%w: missing payment reference", ErrGatewayRejected)
	}

	payload, err := json.Marshal(stkRequest{
		PhoneNumber:       phoneNumber,
		Amount:            amount,
		ExternalReference: reference,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGatewayUnreachable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.URL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGatewayUnreachable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGatewayUnreachable, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: gateway returned status %d: %s", ErrGatewayUnreachable, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out stkResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return fmt.Errorf("%w: malformed gateway response: %v", ErrGatewayUnreachable, err)
	}

	// Accepted means queued, nothing more.
	if !out.Success || out.Status != "QUEUED" {
		detail := out.Message
		if detail == "" {
			detail = "payment initiation failed"
		}
		return fmt.Errorf("%w: %s", ErrGatewayRejected, detail)
	}

	return nil
}
