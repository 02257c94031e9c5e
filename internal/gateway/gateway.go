package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ab65ed/soaledu-finance/internal/config"
	"github.com/ab65ed/soaledu-finance/pkg/clients"
	"go.uber.org/zap"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var (
	ErrPaymentRejected = errors.New("payment rejected by gateway")
)

// PaymentLink is what the gateway hands back for a registered payment.
type PaymentLink struct {
	Token string
	URL   string
}

type createRequest struct {
	Amount      int64  `json:"amount"`
	CallbackURL string `json:"callback_url"`
}

type createResponse struct {
	Token      string `json:"token"`
	PaymentURL string `json:"payment_url"`
}

type verifyRequest struct {
	Token     string `json:"token"`
	Reference string `json:"reference"`
}

type verifyResponse struct {
	Status string `json:"status"`
	RefID  string `json:"ref_id"`
}

type Client struct {
	url    string
	client clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:    cfg.GatewayAddress,
		client: client,
	}
}

// CreatePaymentLink registers a payment with the gateway and returns the
// redirect URL the buyer must visit.
func (c *Client) CreatePaymentLink(ctx context.Context, amount int64, callbackURL string) (*PaymentLink, error) {
	body, err := json.Marshal(createRequest{Amount: amount, CallbackURL: callbackURL})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal create request: %w", err)
	}

	respBody, err := c.post(ctx, c.url+"/api/payment/request", body)
	if err != nil {
		return nil, err
	}

	var response createResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response body: %w", err)
	}
	if response.Token == "" {
		return nil, errors.New("gateway returned empty token")
	}
	return &PaymentLink{Token: response.Token, URL: response.PaymentURL}, nil
}

// VerifyPayment confirms a completed payment with the gateway and returns
// its settlement reference. A non-OK status means the payment did not go
// through.
func (c *Client) VerifyPayment(ctx context.Context, token, reference string) (string, error) {
	body, err := json.Marshal(verifyRequest{Token: token, Reference: reference})
	if err != nil {
		return "", fmt.Errorf("failed to marshal verify request: %w", err)
	}

	respBody, err := c.post(ctx, c.url+"/api/payment/verify", body)
	if err != nil {
		return "", err
	}

	var response verifyResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return "", fmt.Errorf("failed to parse response body: %w", err)
	}
	if response.Status != "OK" {
		zap.L().Info("gateway rejected payment", zap.String("status", response.Status))
		return "", ErrPaymentRejected
	}
	return response.RefID, nil
}

// post retries transport failures with a growing backoff; HTTP-level
// rejections are returned immediately.
func (c *Client) post(ctx context.Context, url string, body []byte) ([]byte, error) {
	var statusCode int
	var respBody []byte
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			statusCode, respBody, _, err = c.client.Post(url, nil, body)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return nil, fmt.Errorf("gateway unreachable after %d retries: %w", maxRetries, err)
			}

			if statusCode != http.StatusOK {
				zap.L().Error("unexpected gateway status code", zap.Int("status", statusCode))
				return nil, fmt.Errorf("unexpected gateway status code: %d", statusCode)
			}
			return respBody, nil
		}
	}
	return nil, err
}
