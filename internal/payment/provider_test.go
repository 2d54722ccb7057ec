package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jontropati/storefront/internal/config"
	apperrors "github.com/jontropati/storefront/pkg/util"
)

func newTestProvider(baseURL string) Provider {
	return NewHTTPProvider(config.PaymentConfig{
		SecretKey:      "sk_test_123",
		APIBase:        baseURL,
		Currency:       "usd",
		TimeoutSeconds: 5,
	})
}

func TestCreateIntentSendsWireFormat(t *testing.T) {
	var gotPath, gotAuth, gotIdem string
	var gotForm map[string][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotIdem = r.Header.Get("Idempotency-Key")
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_1","client_secret":"pi_1_secret","amount":1000,"currency":"usd"}`))
	}))
	defer srv.Close()

	intent, err := newTestProvider(srv.URL).CreateIntent(context.Background(), 1000, "usd")
	require.NoError(t, err)

	assert.Equal(t, "/v1/payment_intents", gotPath)
	assert.Equal(t, "Bearer sk_test_123", gotAuth)
	assert.NotEmpty(t, gotIdem)
	assert.Equal(t, []string{"1000"}, gotForm["amount"])
	assert.Equal(t, []string{"usd"}, gotForm["currency"])
	assert.Equal(t, []string{"card"}, gotForm["payment_method_types[]"])

	assert.Equal(t, "pi_1_secret", intent.ClientSecret)
	assert.Equal(t, int64(1000), intent.Amount)
}

func TestCreateIntentMapsProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"message":"card declined"}}`))
	}))
	defer srv.Close()

	_, err := newTestProvider(srv.URL).CreateIntent(context.Background(), 1000, "usd")
	require.Error(t, err)

	de := apperrors.ToDomainError(err)
	assert.Equal(t, "UPSTREAM_FAILURE", de.Code)
	assert.Contains(t, de.Err.Error(), "card declined")
}

func TestCreateIntentMapsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := newTestProvider(srv.URL).CreateIntent(context.Background(), 1000, "usd")
	require.Error(t, err)
	assert.Equal(t, "UPSTREAM_FAILURE", apperrors.ToDomainError(err).Code)
}
