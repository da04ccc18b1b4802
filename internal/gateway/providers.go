package gateway

import (
	"encoding/json"
	"strconv"

	"builderhub-payments/internal/core/domain"
	"builderhub-payments/internal/core/ports"
)

// Default USSD instructions shown when a push provider returns no message.
const (
	moovConfirmMessage    = "Confirmez le paiement sur votre téléphone Moov Money (*555#)"
	telecelConfirmMessage = "Confirmez le paiement sur votre téléphone Telecel Money (*808#)"
)

// callContext carries the per-call values a request builder needs.
type callContext struct {
	creds       Credentials
	callbackURL string
	returnURL   string
}

// descriptor is one row of the provider table.
type descriptor struct {
	id            domain.ProviderID
	defaultBase   string
	endpoint      string
	minAmount     int64
	requiresPhone bool
	build         func(req ports.GatewayRequest, cc callContext) any
	normalize     func(req ports.GatewayRequest, body []byte) *ports.GatewayResponse
}

func defaultDescriptors() map[domain.ProviderID]descriptor {
	list := []descriptor{orangeMoney(), moovMoney(), wave(), telecelMoney()}
	out := make(map[domain.ProviderID]descriptor, len(list))
	for _, d := range list {
		out[d.id] = d
	}
	return out
}

// --- Orange Money (web payment, redirect) ---

type orangeRequest struct {
	MerchantKey string `json:"merchant_key"`
	Currency    string `json:"currency"`
	OrderID     string `json:"order_id"`
	Amount      int64  `json:"amount"`
	ReturnURL   string `json:"return_url,omitempty"`
	CancelURL   string `json:"cancel_url,omitempty"`
	NotifURL    string `json:"notif_url,omitempty"`
	Lang        string `json:"lang"`
	Reference   string `json:"reference,omitempty"`
	Customer    string `json:"customer_msisdn,omitempty"`
}

type orangeResponse struct {
	Status     int    `json:"status"`
	Message    string `json:"message"`
	PayToken   string `json:"pay_token"`
	PaymentURL string `json:"payment_url"`
	NotifToken string `json:"notif_token"`
}

func orangeMoney() descriptor {
	return descriptor{
		id:          domain.ProviderOrangeMoney,
		defaultBase: "https://api.orange.com",
		endpoint:    "/orange-money-webpay/bf/v1/webpayment",
		minAmount:   100,
		build: func(req ports.GatewayRequest, cc callContext) any {
			return orangeRequest{
				MerchantKey: cc.creds.MerchantID,
				Currency:    "XOF",
				OrderID:     req.Reference,
				Amount:      req.Amount,
				ReturnURL:   cc.returnURL,
				CancelURL:   cc.returnURL,
				NotifURL:    cc.callbackURL,
				Lang:        "fr",
				Reference:   req.Description,
				Customer:    req.Phone,
			}
		},
		normalize: func(req ports.GatewayRequest, body []byte) *ports.GatewayResponse {
			var r orangeResponse
			if err := json.Unmarshal(body, &r); err != nil || r.PaymentURL == "" {
				return rejected(r.Message)
			}
			return &ports.GatewayResponse{
				Success:           true,
				TransactionID:     r.PayToken,
				ProviderReference: firstNonEmpty(r.NotifToken, req.Reference),
				CheckoutURL:       r.PaymentURL,
				Message:           r.Message,
			}
		},
	}
}

// --- Moov Money (USSD push) ---

type moovRequest struct {
	MerchantID  string `json:"merchant_id"`
	MSISDN      string `json:"msisdn"`
	Amount      int64  `json:"amount"`
	Reference   string `json:"reference"`
	Description string `json:"description,omitempty"`
	CallbackURL string `json:"callback_url,omitempty"`
}

type moovResponse struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
	Reference     string `json:"reference"`
	Message       string `json:"message"`
}

func moovMoney() descriptor {
	return descriptor{
		id:            domain.ProviderMoovMoney,
		defaultBase:   "https://api.moov-africa.bf",
		endpoint:      "/api/v1/payments/push",
		minAmount:     100,
		requiresPhone: true,
		build: func(req ports.GatewayRequest, cc callContext) any {
			return moovRequest{
				MerchantID:  cc.creds.MerchantID,
				MSISDN:      req.Phone,
				Amount:      req.Amount,
				Reference:   req.Reference,
				Description: req.Description,
				CallbackURL: cc.callbackURL,
			}
		},
		normalize: func(req ports.GatewayRequest, body []byte) *ports.GatewayResponse {
			var r moovResponse
			if err := json.Unmarshal(body, &r); err != nil {
				return rejected("")
			}
			if r.Status != "SUCCESS" && r.Status != "PENDING" {
				return rejected(r.Message)
			}
			return &ports.GatewayResponse{
				Success:           true,
				TransactionID:     r.TransactionID,
				ProviderReference: firstNonEmpty(r.Reference, req.Reference),
				Message:           firstNonEmpty(r.Message, moovConfirmMessage),
			}
		},
	}
}

// --- Wave (checkout session, redirect) ---

type waveRequest struct {
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
	ClientReference string `json:"client_reference"`
	SuccessURL      string `json:"success_url,omitempty"`
	ErrorURL        string `json:"error_url,omitempty"`
	MerchantID      string `json:"aggregated_merchant_id,omitempty"`
}

type waveResponse struct {
	ID              string `json:"id"`
	WaveLaunchURL   string `json:"wave_launch_url"`
	CheckoutStatus  string `json:"checkout_status"`
	PaymentStatus   string `json:"payment_status"`
	ClientReference string `json:"client_reference"`
	Message         string `json:"message"`
}

func wave() descriptor {
	return descriptor{
		id:          domain.ProviderWave,
		defaultBase: "https://api.wave.com",
		endpoint:    "/v1/checkout/sessions",
		minAmount:   100,
		build: func(req ports.GatewayRequest, cc callContext) any {
			return waveRequest{
				Amount:          strconv.FormatInt(req.Amount, 10),
				Currency:        "XOF",
				ClientReference: req.Reference,
				SuccessURL:      cc.returnURL,
				ErrorURL:        cc.returnURL,
				MerchantID:      cc.creds.MerchantID,
			}
		},
		normalize: func(req ports.GatewayRequest, body []byte) *ports.GatewayResponse {
			var r waveResponse
			if err := json.Unmarshal(body, &r); err != nil {
				return rejected("")
			}
			if r.WaveLaunchURL == "" || r.CheckoutStatus != "open" {
				return rejected(r.Message)
			}
			return &ports.GatewayResponse{
				Success:           true,
				TransactionID:     r.ID,
				ProviderReference: firstNonEmpty(r.ClientReference, req.Reference),
				CheckoutURL:       r.WaveLaunchURL,
			}
		},
	}
}

// --- Telecel Money (USSD push, numeric status) ---

type telecelRequest struct {
	MerchantCode      string `json:"merchant_code"`
	CustomerMSISDN    string `json:"customer_msisdn"`
	Amount            int64  `json:"amount"`
	ExternalReference string `json:"external_reference"`
	Description       string `json:"description,omitempty"`
	CallbackURL       string `json:"callback_url,omitempty"`
}

type telecelResponse struct {
	Status        *int   `json:"status"`
	TransactionID string `json:"transaction_id"`
	Reference     string `json:"reference"`
	Message       string `json:"message"`
}

const (
	telecelStatusSuccess = 0
	telecelStatusPending = 1
)

func telecelMoney() descriptor {
	return descriptor{
		id:            domain.ProviderTelecelMoney,
		defaultBase:   "https://api.telecelfaso.bf",
		endpoint:      "/api/payment/initiate",
		minAmount:     100,
		requiresPhone: true,
		build: func(req ports.GatewayRequest, cc callContext) any {
			return telecelRequest{
				MerchantCode:      cc.creds.MerchantID,
				CustomerMSISDN:    req.Phone,
				Amount:            req.Amount,
				ExternalReference: req.Reference,
				Description:       req.Description,
				CallbackURL:       cc.callbackURL,
			}
		},
		normalize: func(req ports.GatewayRequest, body []byte) *ports.GatewayResponse {
			var r telecelResponse
			if err := json.Unmarshal(body, &r); err != nil || r.Status == nil {
				return rejected(r.Message)
			}
			if *r.Status != telecelStatusSuccess && *r.Status != telecelStatusPending {
				return rejected(r.Message)
			}
			return &ports.GatewayResponse{
				Success:           true,
				TransactionID:     r.TransactionID,
				ProviderReference: firstNonEmpty(r.Reference, req.Reference),
				Message:           firstNonEmpty(r.Message, telecelConfirmMessage),
			}
		},
	}
}

func rejected(msg string) *ports.GatewayResponse {
	return &ports.GatewayResponse{Success: false, Error: firstNonEmpty(msg, MsgPaymentRejected)}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
