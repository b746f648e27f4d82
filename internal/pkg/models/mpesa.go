package models

import "encoding/json"

// Daraja result codes the reconciliation engine cares about. Anything else
// that is non-zero counts as a definitive failure.
const (
	MpesaResultSuccess        = 0
	MpesaResultUserCancelled  = 1032
	MpesaErrorStillProcessing = "500.001.1001"
)

// MpesaAuthResponse is the OAuth token exchange response
type MpesaAuthResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

// STKPushRequest is the Daraja STK push (process request) payload
type STKPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            string `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

// STKPushResponse is the synchronous Daraja response to an STK push
type STKPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

// STKPushResult is the normalized initiation outcome handed to the usecase
type STKPushResult struct {
	MerchantRequestID string
	CheckoutRequestID string
	CustomerMessage   string
}

// STKQueryRequest is the Daraja STK push status query payload
type STKQueryRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	CheckoutRequestID string `json:"CheckoutRequestID"`
}

// STKQueryResponse is the Daraja status query response. On an in-flight
// transaction Daraja answers with an error envelope instead, carrying
// MpesaErrorStillProcessing as the error code.
type STKQueryResponse struct {
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResultCode          string `json:"ResultCode"`
	ResultDesc          string `json:"ResultDesc"`
	ErrorCode           string `json:"errorCode"`
	ErrorMessage        string `json:"errorMessage"`
}

// STKQueryResult is the normalized poll outcome. Pending means the gateway
// has not settled the prompt yet and no state transition may be applied.
type STKQueryResult struct {
	Pending    bool
	ResultCode int
	ResultDesc string
}

// STKCallback is the nested asynchronous callback payload delivered by the
// gateway after the payer acts on (or abandons) the STK prompt.
type STKCallback struct {
	Body struct {
		StkCallback struct {
			MerchantRequestID string `json:"MerchantRequestID"`
			CheckoutRequestID string `json:"CheckoutRequestID"`
			ResultCode        int    `json:"ResultCode"`
			ResultDesc        string `json:"ResultDesc"`
			CallbackMetadata  struct {
				Item []STKCallbackItem `json:"Item"`
			} `json:"CallbackMetadata"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

// STKCallbackItem is one metadata entry of a success callback
type STKCallbackItem struct {
	Name  string          `json:"Name"`
	Value json.RawMessage `json:"Value,omitempty"`
}

// ReceiptNumber extracts the MpesaReceiptNumber metadata item, empty when absent
func (c *STKCallback) ReceiptNumber() string {
	for _, item := range c.Body.StkCallback.CallbackMetadata.Item {
		if item.Name == "MpesaReceiptNumber" {
			var receipt string
			if err := json.Unmarshal(item.Value, &receipt); err == nil {
				return receipt
			}
		}
	}
	return ""
}

// CallbackAck is the positive acknowledgment returned to the gateway for
// every callback, processing errors included, to stop retry storms.
type CallbackAck struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}

// B2CRequest is the Daraja business-to-customer payment request payload
type B2CRequest struct {
	InitiatorName      string `json:"InitiatorName"`
	SecurityCredential string `json:"SecurityCredential"`
	CommandID          string `json:"CommandID"`
	Amount             string `json:"Amount"`
	PartyA             string `json:"PartyA"`
	PartyB             string `json:"PartyB"`
	Remarks            string `json:"Remarks"`
	QueueTimeOutURL    string `json:"QueueTimeOutURL"`
	ResultURL          string `json:"ResultURL"`
}

// B2CResponse is the synchronous Daraja response to a B2C request
type B2CResponse struct {
	ConversationID           string `json:"ConversationID"`
	OriginatorConversationID string `json:"OriginatorConversationID"`
	ResponseCode             string `json:"ResponseCode"`
	ResponseDescription      string `json:"ResponseDescription"`
}

// B2CResult is the normalized disbursement outcome handed to the usecase
type B2CResult struct {
	ConversationID           string
	OriginatorConversationID string
}
