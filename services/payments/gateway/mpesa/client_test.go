package mpesa

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	httpclient "github.com/tumapesa/tumapesa/internal/pkg/http"
	"github.com/tumapesa/tumapesa/internal/pkg/models"
	"github.com/tumapesa/tumapesa/services/payments"
)

func testConfig() models.MpesaConfig {
	return models.MpesaConfig{
		Environment:    "sandbox",
		ShortCode:      "174379",
		ConsumerKey:    "test-key",
		ConsumerSecret: "test-secret",
		Passkey:        "test-passkey",
		InitiatorName:  "testapi",
		CallbackURL:    "https://example.com/api/v1/payments/callback",
		ResultURL:      "https://example.com/api/v1/payouts/result",
		TimeoutURL:     "https://example.com/api/v1/payouts/timeout",
		RequestTimeout: 5,
	}
}

func testClient(serverURL string) *Client {
	return &Client{
		cfg:    testConfig(),
		client: httpclient.NewClient(serverURL, 5*time.Second),
		now:    func() time.Time { return time.Date(2024, 6, 1, 12, 30, 45, 0, time.UTC) },
	}
}

func TestPassword(t *testing.T) {
	got := Password("174379", "passkey", "20240601123045")
	want := base64.StdEncoding.EncodeToString([]byte("174379passkey20240601123045"))
	assert.Equal(t, want, got)
}

func TestAuthenticate(t *testing.T) {
	t.Run("returns token on success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "test-key", user)
			assert.Equal(t, "test-secret", pass)
			w.Write([]byte(`{"access_token":"token-123","expires_in":"3599"}`))
		}))
		defer server.Close()

		token, err := testClient(server.URL).Authenticate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "token-123", token)
	})

	t.Run("incomplete credentials return AuthError without a request", func(t *testing.T) {
		client := testClient("http://unreachable.invalid")
		client.cfg.ConsumerSecret = ""

		_, err := client.Authenticate(context.Background())
		var authErr *payments.AuthError
		require.ErrorAs(t, err, &authErr)
	})

	t.Run("rejected credentials return AuthError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"errorCode":"401.002.01","errorMessage":"Invalid credentials"}`))
		}))
		defer server.Close()

		_, err := testClient(server.URL).Authenticate(context.Background())
		var authErr *payments.AuthError
		require.ErrorAs(t, err, &authErr)
	})

	t.Run("unreachable gateway returns NetworkError", func(t *testing.T) {
		_, err := testClient("http://127.0.0.1:1").Authenticate(context.Background())
		var netErr *payments.NetworkError
		require.ErrorAs(t, err, &netErr)
	})
}

func TestInitiateSTK(t *testing.T) {
	t.Run("normalizes phone and returns checkout IDs", func(t *testing.T) {
		var captured models.STKPushRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/oauth/v1/generate" {
				w.Write([]byte(`{"access_token":"token-123","expires_in":"3599"}`))
				return
			}
			assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
			require.NoError(t, jsonDecode(r, &captured))
			w.Write([]byte(`{
				"MerchantRequestID": "29115-34620561-1",
				"CheckoutRequestID": "ws_CO_191220191020363925",
				"ResponseCode": "0",
				"ResponseDescription": "Success. Request accepted for processing",
				"CustomerMessage": "Success. Request accepted for processing"
			}`))
		}))
		defer server.Close()

		result, err := testClient(server.URL).InitiateSTK(context.Background(), "0712345678", 150, "TUMAPESA-1")
		require.NoError(t, err)

		assert.Equal(t, "29115-34620561-1", result.MerchantRequestID)
		assert.Equal(t, "ws_CO_191220191020363925", result.CheckoutRequestID)
		assert.Equal(t, "254712345678", captured.PhoneNumber)
		assert.Equal(t, "254712345678", captured.PartyA)
		assert.Equal(t, "150", captured.Amount)
		assert.Equal(t, "20240601123045", captured.Timestamp)
		assert.Equal(t, Password("174379", "test-passkey", "20240601123045"), captured.Password)
	})

	t.Run("invalid phone fails before any request", func(t *testing.T) {
		_, err := testClient("http://unreachable.invalid").InitiateSTK(context.Background(), "12345", 150, "TUMAPESA-1")
		assert.Error(t, err)
	})

	t.Run("non-zero response code returns GatewayError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/oauth/v1/generate" {
				w.Write([]byte(`{"access_token":"token-123","expires_in":"3599"}`))
				return
			}
			w.Write([]byte(`{"ResponseCode":"1","ResponseDescription":"Insufficient funds on shortcode"}`))
		}))
		defer server.Close()

		_, err := testClient(server.URL).InitiateSTK(context.Background(), "0712345678", 150, "TUMAPESA-1")
		var gwErr *payments.GatewayError
		require.ErrorAs(t, err, &gwErr)
		assert.Equal(t, "1", gwErr.Code)
	})

	t.Run("error envelope on non-2xx returns GatewayError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/oauth/v1/generate" {
				w.Write([]byte(`{"access_token":"token-123","expires_in":"3599"}`))
				return
			}
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"requestId":"1234","errorCode":"400.002.02","errorMessage":"Bad Request - Invalid Amount"}`))
		}))
		defer server.Close()

		_, err := testClient(server.URL).InitiateSTK(context.Background(), "0712345678", 150, "TUMAPESA-1")
		var gwErr *payments.GatewayError
		require.ErrorAs(t, err, &gwErr)
		assert.Equal(t, "400.002.02", gwErr.Code)
	})
}

func TestQuerySTK(t *testing.T) {
	querySequence := func(queryStatus int, queryBody string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/oauth/v1/generate" {
				w.Write([]byte(`{"access_token":"token-123","expires_in":"3599"}`))
				return
			}
			w.WriteHeader(queryStatus)
			w.Write([]byte(queryBody))
		}))
	}

	t.Run("successful payment", func(t *testing.T) {
		server := querySequence(http.StatusOK, `{
			"ResponseCode": "0",
			"ResponseDescription": "The service request has been accepted successsfully",
			"MerchantRequestID": "22205-34066-1",
			"CheckoutRequestID": "ws_CO_13012021093521236557",
			"ResultCode": "0",
			"ResultDesc": "The service request is processed successfully."
		}`)
		defer server.Close()

		result, err := testClient(server.URL).QuerySTK(context.Background(), "ws_CO_13012021093521236557")
		require.NoError(t, err)
		assert.False(t, result.Pending)
		assert.Equal(t, models.MpesaResultSuccess, result.ResultCode)
	})

	t.Run("user cancelled", func(t *testing.T) {
		server := querySequence(http.StatusOK, `{
			"ResponseCode": "0",
			"ResultCode": "1032",
			"ResultDesc": "Request cancelled by user"
		}`)
		defer server.Close()

		result, err := testClient(server.URL).QuerySTK(context.Background(), "ws_CO_1")
		require.NoError(t, err)
		assert.False(t, result.Pending)
		assert.Equal(t, models.MpesaResultUserCancelled, result.ResultCode)
	})

	t.Run("still processing error envelope maps to pending", func(t *testing.T) {
		server := querySequence(http.StatusInternalServerError, `{
			"requestId": "ws_CO_1",
			"errorCode": "500.001.1001",
			"errorMessage": "The transaction is being processed"
		}`)
		defer server.Close()

		result, err := testClient(server.URL).QuerySTK(context.Background(), "ws_CO_1")
		require.NoError(t, err)
		assert.True(t, result.Pending)
	})

	t.Run("still processing in response body maps to pending", func(t *testing.T) {
		server := querySequence(http.StatusOK, `{
			"errorCode": "500.001.1001",
			"errorMessage": "The transaction is being processed"
		}`)
		defer server.Close()

		result, err := testClient(server.URL).QuerySTK(context.Background(), "ws_CO_1")
		require.NoError(t, err)
		assert.True(t, result.Pending)
	})

	t.Run("other gateway errors propagate", func(t *testing.T) {
		server := querySequence(http.StatusBadRequest, `{
			"requestId": "ws_CO_1",
			"errorCode": "400.002.02",
			"errorMessage": "Bad Request - Invalid CheckoutRequestID"
		}`)
		defer server.Close()

		_, err := testClient(server.URL).QuerySTK(context.Background(), "bogus")
		var gwErr *payments.GatewayError
		require.ErrorAs(t, err, &gwErr)
		assert.Equal(t, "400.002.02", gwErr.Code)
	})
}

func TestDisburse(t *testing.T) {
	t.Run("returns conversation IDs on success", func(t *testing.T) {
		var captured models.B2CRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/oauth/v1/generate" {
				w.Write([]byte(`{"access_token":"token-123","expires_in":"3599"}`))
				return
			}
			require.NoError(t, jsonDecode(r, &captured))
			w.Write([]byte(`{
				"ConversationID": "AG_20240601_0000abc",
				"OriginatorConversationID": "29112-34801843-1",
				"ResponseCode": "0",
				"ResponseDescription": "Accept the service request successfully."
			}`))
		}))
		defer server.Close()

		result, err := testClient(server.URL).Disburse(context.Background(), "+254712345678", 500, "PAYOUT-1")
		require.NoError(t, err)

		assert.Equal(t, "AG_20240601_0000abc", result.ConversationID)
		assert.Equal(t, "29112-34801843-1", result.OriginatorConversationID)
		assert.Equal(t, "BusinessPayment", captured.CommandID)
		assert.Equal(t, "254712345678", captured.PartyB)
		assert.Equal(t, "174379", captured.PartyA)
	})

	t.Run("non-zero response code returns GatewayError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/oauth/v1/generate" {
				w.Write([]byte(`{"access_token":"token-123","expires_in":"3599"}`))
				return
			}
			w.Write([]byte(`{"ResponseCode":"1","ResponseDescription":"Insufficient balance"}`))
		}))
		defer server.Close()

		_, err := testClient(server.URL).Disburse(context.Background(), "0712345678", 500, "PAYOUT-1")
		var gwErr *payments.GatewayError
		require.ErrorAs(t, err, &gwErr)
	})

	t.Run("auth failure surfaces before disbursement", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		_, err := testClient(server.URL).Disburse(context.Background(), "0712345678", 500, "PAYOUT-1")
		var authErr *payments.AuthError
		require.True(t, errors.As(err, &authErr))
	})
}

func jsonDecode(r *http.Request, out interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(out)
}
