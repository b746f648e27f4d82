package mpesa

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	httpclient "github.com/tumapesa/tumapesa/internal/pkg/http"
	"github.com/tumapesa/tumapesa/internal/pkg/models"
	"github.com/tumapesa/tumapesa/internal/utils"
	"github.com/tumapesa/tumapesa/services/payments"
)

const (
	authPath     = "/oauth/v1/generate?grant_type=client_credentials"
	stkPushPath  = "/mpesa/stkpush/v1/processrequest"
	stkQueryPath = "/mpesa/stkpushquery/v1/query"
	b2cPath      = "/mpesa/b2c/v1/paymentrequest"

	// timestampLayout is the 14-character one-second precision form the
	// gateway expects in password derivation.
	timestampLayout = "20060102150405"
)

// errorEnvelope is the Daraja error body returned on non-2xx responses
type errorEnvelope struct {
	RequestID    string `json:"requestId"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// Client is an HTTP client for the Daraja payment gateway. It keeps no
// state between calls: access tokens are fetched per operation since they
// are short-lived and re-fetching is cheap and safer.
type Client struct {
	cfg    models.MpesaConfig
	client *httpclient.Client
	now    func() time.Time
}

// NewClient creates a new Daraja gateway client
func NewClient(cfg models.MpesaConfig) *Client {
	timeout := time.Duration(cfg.RequestTimeout) * time.Second
	return &Client{
		cfg:    cfg,
		client: httpclient.NewClient(cfg.BaseURL(), timeout),
		now:    time.Now,
	}
}

// Password derives the gateway's time-boxed authentication password from
// the shortcode, passkey and a UTC timestamp
func Password(shortCode, passkey, timestamp string) string {
	return base64.StdEncoding.EncodeToString([]byte(shortCode + passkey + timestamp))
}

// Authenticate exchanges the consumer key/secret for a short-lived bearer token
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	if !c.cfg.Complete() {
		return "", &payments.AuthError{Reason: "gateway credentials are missing or incomplete"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.client.BaseURL+authPath, nil)
	if err != nil {
		return "", &payments.NetworkError{Op: "authenticate", Err: err}
	}
	req.SetBasicAuth(c.cfg.ConsumerKey, c.cfg.ConsumerSecret)

	resp, err := c.client.HTTPClient.Do(req)
	if err != nil {
		return "", &payments.NetworkError{Op: "authenticate", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &payments.NetworkError{Op: "authenticate", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &payments.AuthError{Reason: fmt.Sprintf("gateway rejected credentials (status %d)", resp.StatusCode)}
	}

	var auth models.MpesaAuthResponse
	if err := json.Unmarshal(body, &auth); err != nil {
		return "", &payments.NetworkError{Op: "authenticate", Err: err}
	}
	if auth.AccessToken == "" {
		return "", &payments.AuthError{Reason: "gateway returned an empty access token"}
	}

	return auth.AccessToken, nil
}

// InitiateSTK sends an STK push prompt to the payer's device. The phone
// number is normalized to international form before submission. A non-zero
// gateway response code is returned as a GatewayError and is not retried.
func (c *Client) InitiateSTK(ctx context.Context, phoneNumber string, amount float64, reference string) (*models.STKPushResult, error) {
	msisdn, err := utils.NormalizeMSISDN(phoneNumber)
	if err != nil {
		return nil, fmt.Errorf("invalid destination phone: %w", err)
	}

	token, err := c.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	timestamp := c.now().UTC().Format(timestampLayout)
	payload := models.STKPushRequest{
		BusinessShortCode: c.cfg.ShortCode,
		Password:          Password(c.cfg.ShortCode, c.cfg.Passkey, timestamp),
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            formatAmount(amount),
		PartyA:            msisdn,
		PartyB:            c.cfg.ShortCode,
		PhoneNumber:       msisdn,
		CallBackURL:       c.cfg.CallbackURL,
		AccountReference:  reference,
		TransactionDesc:   reference,
	}

	var pushResp models.STKPushResponse
	if err := c.postJSON(ctx, "stk push", stkPushPath, token, payload, &pushResp); err != nil {
		return nil, err
	}

	if pushResp.ResponseCode != "0" {
		return nil, &payments.GatewayError{
			Code:        pushResp.ResponseCode,
			Description: pushResp.ResponseDescription,
		}
	}

	return &models.STKPushResult{
		MerchantRequestID: pushResp.MerchantRequestID,
		CheckoutRequestID: pushResp.CheckoutRequestID,
		CustomerMessage:   pushResp.CustomerMessage,
	}, nil
}

// QuerySTK asks the gateway for the current outcome of an initiated
// payment. A gateway answer of "still processing" is reported as Pending,
// distinct from a definitive failure.
func (c *Client) QuerySTK(ctx context.Context, checkoutRequestID string) (*models.STKQueryResult, error) {
	token, err := c.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	timestamp := c.now().UTC().Format(timestampLayout)
	payload := models.STKQueryRequest{
		BusinessShortCode: c.cfg.ShortCode,
		Password:          Password(c.cfg.ShortCode, c.cfg.Passkey, timestamp),
		Timestamp:         timestamp,
		CheckoutRequestID: checkoutRequestID,
	}

	var queryResp models.STKQueryResponse
	if err := c.postJSON(ctx, "stk query", stkQueryPath, token, payload, &queryResp); err != nil {
		// An in-flight prompt comes back as an error envelope with a
		// dedicated code, not as a result payload.
		var gwErr *payments.GatewayError
		if errors.As(err, &gwErr) && gwErr.Code == models.MpesaErrorStillProcessing {
			return &models.STKQueryResult{Pending: true}, nil
		}
		return nil, err
	}

	if queryResp.ErrorCode == models.MpesaErrorStillProcessing {
		return &models.STKQueryResult{Pending: true}, nil
	}

	resultCode, err := strconv.Atoi(queryResp.ResultCode)
	if err != nil {
		return nil, &payments.NetworkError{Op: "stk query", Err: fmt.Errorf("malformed result code %q", queryResp.ResultCode)}
	}

	return &models.STKQueryResult{
		ResultCode: resultCode,
		ResultDesc: queryResp.ResultDesc,
	}, nil
}

// Disburse invokes the outbound B2C payment operation, with the same
// password derivation and phone normalization rules as collection.
func (c *Client) Disburse(ctx context.Context, phoneNumber string, amount float64, reference string) (*models.B2CResult, error) {
	msisdn, err := utils.NormalizeMSISDN(phoneNumber)
	if err != nil {
		return nil, fmt.Errorf("invalid destination phone: %w", err)
	}

	token, err := c.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	timestamp := c.now().UTC().Format(timestampLayout)
	payload := models.B2CRequest{
		InitiatorName:      c.cfg.InitiatorName,
		SecurityCredential: Password(c.cfg.ShortCode, c.cfg.Passkey, timestamp),
		CommandID:          "BusinessPayment",
		Amount:             formatAmount(amount),
		PartyA:             c.cfg.ShortCode,
		PartyB:             msisdn,
		Remarks:            reference,
		QueueTimeOutURL:    c.cfg.TimeoutURL,
		ResultURL:          c.cfg.ResultURL,
	}

	var b2cResp models.B2CResponse
	if err := c.postJSON(ctx, "b2c payment", b2cPath, token, payload, &b2cResp); err != nil {
		return nil, err
	}

	if b2cResp.ResponseCode != "0" {
		return nil, &payments.GatewayError{
			Code:        b2cResp.ResponseCode,
			Description: b2cResp.ResponseDescription,
		}
	}

	return &models.B2CResult{
		ConversationID:           b2cResp.ConversationID,
		OriginatorConversationID: b2cResp.OriginatorConversationID,
	}, nil
}

// postJSON sends an authenticated JSON request and decodes the response
// into out. Non-2xx responses are mapped to GatewayError via the Daraja
// error envelope; transport and decoding failures become NetworkError.
func (c *Client) postJSON(ctx context.Context, op, path, token string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &payments.NetworkError{Op: op, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.client.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return &payments.NetworkError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.HTTPClient.Do(req)
	if err != nil {
		return &payments.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &payments.NetworkError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope errorEnvelope
		if err := json.Unmarshal(respBody, &envelope); err != nil || envelope.ErrorCode == "" {
			return &payments.NetworkError{Op: op, Err: fmt.Errorf("unexpected gateway response (status %d)", resp.StatusCode)}
		}
		return &payments.GatewayError{
			Code:        envelope.ErrorCode,
			Description: envelope.ErrorMessage,
		}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &payments.NetworkError{Op: op, Err: err}
	}

	return nil
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
