package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jontropati/storefront/internal/config"
	apperrors "github.com/jontropati/storefront/pkg/util"
)

// Intent is the provider's confirmation of a created payment intent.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// Provider creates payment intents at the external payment processor.
// Amounts are integer minor units.
type Provider interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error)
}

type httpProvider struct {
	baseURL   string
	secretKey string
	client    *http.Client
}

// NewHTTPProvider builds a provider speaking the payment-intents wire
// format over HTTPS.
func NewHTTPProvider(cfg config.PaymentConfig) Provider {
	return &httpProvider{
		baseURL:   strings.TrimRight(cfg.APIBase, "/"),
		secretKey: cfg.SecretKey,
		client:    &http.Client{Timeout: cfg.Timeout()},
	}
}

func (p *httpProvider) CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)
	form.Add("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	req.Header.Set("Authorization", "Bearer "+p.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamFailure(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return nil, apperrors.NewUpstreamFailure(
			fmt.Errorf("payment provider returned %d: %s", resp.StatusCode, body.Error.Message))
	}

	var intent Intent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, apperrors.NewUpstreamFailure(err)
	}
	return &intent, nil
}
