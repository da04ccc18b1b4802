// Package gateway dispatches payment intents to the mobile-money providers.
// It runs server-side only: it holds provider credentials.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"builderhub-payments/config"
	"builderhub-payments/internal/core/domain"
	"builderhub-payments/internal/core/ports"
	"builderhub-payments/internal/metrics"

	"github.com/rs/zerolog"
)

// User-facing messages.
const (
	MsgUnsupportedProvider = "Fournisseur de paiement non supporté"
	MsgNotConfigured       = "Fournisseur de paiement non configuré"
	MsgConnectionError     = "Erreur de connexion au fournisseur de paiement"
	MsgPaymentRejected     = "Paiement refusé par le fournisseur"
	MsgInvalidAmount       = "Montant invalide"
	MsgNotMultipleOfFive   = "Le montant doit être un multiple de 5 FCFA"
	MsgPhoneRequired       = "Numéro de téléphone requis"
)

const maxResponseBytes = 1 << 20

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Credentials are the server-side secrets of one provider.
type Credentials struct {
	BaseURL    string
	APIKey     string
	MerchantID string
}

func (c Credentials) configured() bool {
	return c.APIKey != "" && c.MerchantID != ""
}

// Options configures a Dispatcher.
type Options struct {
	Timeout     time.Duration
	CallbackURL string
	ReturnURL   string
	Credentials map[domain.ProviderID]Credentials
}

// OptionsFromConfig maps application configuration to dispatcher options.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := Options{
		Timeout:     cfg.Gateway.Timeout,
		CallbackURL: cfg.Gateway.CallbackURL,
		ReturnURL:   cfg.Gateway.ReturnURL,
		Credentials: make(map[domain.ProviderID]Credentials),
	}
	for _, id := range domain.MobileMoneyProviders() {
		p := cfg.Provider(string(id))
		opts.Credentials[id] = Credentials{BaseURL: p.BaseURL, APIKey: p.APIKey, MerchantID: p.MerchantID}
	}
	return opts
}

// Dispatcher implements ports.GatewayDispatcher.
type Dispatcher struct {
	providers map[domain.ProviderID]descriptor
	opts      Options
	client    HTTPClient
	log       zerolog.Logger
}

// NewDispatcher creates a dispatcher over the four supported providers.
// A nil client gets an http.Client bounded by opts.Timeout.
func NewDispatcher(opts Options, client HTTPClient, log zerolog.Logger) *Dispatcher {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	return &Dispatcher{
		providers: defaultDescriptors(),
		opts:      opts,
		client:    client,
		log:       log,
	}
}

// ProviderStatus describes one provider for operators.
type ProviderStatus struct {
	ID         domain.ProviderID `json:"id"`
	Name       string            `json:"name"`
	Endpoint   string            `json:"endpoint"`
	MinAmount  int64             `json:"min_amount"`
	Configured bool              `json:"configured"`
}

// Providers lists the provider table in a stable order.
func (d *Dispatcher) Providers() []ProviderStatus {
	out := make([]ProviderStatus, 0, len(d.providers))
	for _, id := range domain.MobileMoneyProviders() {
		desc, ok := d.providers[id]
		if !ok {
			continue
		}
		out = append(out, ProviderStatus{
			ID:         id,
			Name:       id.DisplayName(),
			Endpoint:   d.baseURL(desc) + desc.endpoint,
			MinAmount:  desc.minAmount,
			Configured: d.opts.Credentials[id].configured(),
		})
	}
	return out
}

// Validate checks a request against a provider's rules without any I/O.
// It returns the user-facing message, or "" when the request is acceptable.
func (d *Dispatcher) Validate(provider domain.ProviderID, req ports.GatewayRequest) string {
	desc, ok := d.providers[provider]
	if !ok {
		return MsgUnsupportedProvider
	}
	return validate(desc, req)
}

func validate(desc descriptor, req ports.GatewayRequest) string {
	if req.Amount <= 0 {
		return MsgInvalidAmount
	}
	if req.Amount < desc.minAmount {
		return fmt.Sprintf("Montant minimum pour %s: %d FCFA", desc.id.DisplayName(), desc.minAmount)
	}
	if !req.FeeInclusive && req.Amount%5 != 0 {
		return MsgNotMultipleOfFive
	}
	if desc.requiresPhone && strings.TrimSpace(req.Phone) == "" {
		return MsgPhoneRequired
	}
	return ""
}

// Process sends one payment intent and normalizes the provider's answer.
// It never returns nil.
func (d *Dispatcher) Process(ctx context.Context, provider domain.ProviderID, req ports.GatewayRequest) *ports.GatewayResponse {
	desc, ok := d.providers[provider]
	if !ok {
		metrics.ObserveGateway("unknown", "rejected", time.Time{})
		d.log.Warn().Str("provider", string(provider)).Msg("gateway: unsupported provider")
		return &ports.GatewayResponse{Success: false, Error: MsgUnsupportedProvider}
	}

	if msg := validate(desc, req); msg != "" {
		metrics.ObserveGateway(string(provider), "rejected", time.Time{})
		return &ports.GatewayResponse{Success: false, Error: msg}
	}

	creds := d.opts.Credentials[provider]
	if !creds.configured() {
		metrics.ObserveGateway(string(provider), "unconfigured", time.Time{})
		d.log.Error().Str("provider", string(provider)).Msg("gateway: provider credentials missing")
		return &ports.GatewayResponse{Success: false, Error: MsgNotConfigured}
	}

	payload, err := json.Marshal(desc.build(req, callContext{
		creds:       creds,
		callbackURL: d.opts.CallbackURL,
		returnURL:   d.opts.ReturnURL,
	}))
	if err != nil {
		d.log.Error().Err(err).Str("provider", string(provider)).Msg("gateway: failed to marshal request")
		return &ports.GatewayResponse{Success: false, Error: MsgConnectionError}
	}

	ctx, cancel := context.WithTimeout(ctx, d.opts.Timeout)
	defer cancel()

	url := strings.TrimRight(d.baseURL(desc), "/") + desc.endpoint
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		d.log.Error().Err(err).Str("provider", string(provider)).Msg("gateway: failed to create request")
		return &ports.GatewayResponse{Success: false, Error: MsgConnectionError}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+creds.APIKey)

	started := time.Now()
	resp, err := d.client.Do(httpReq)
	if err != nil {
		metrics.ObserveGateway(string(provider), "failure", started)
		d.log.Warn().Err(err).Str("provider", string(provider)).Str("reference", req.Reference).Msg("gateway: request failed")
		return &ports.GatewayResponse{Success: false, Error: MsgConnectionError}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		metrics.ObserveGateway(string(provider), "failure", started)
		d.log.Warn().Err(err).Str("provider", string(provider)).Msg("gateway: failed to read response")
		return &ports.GatewayResponse{Success: false, Error: MsgConnectionError}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.ObserveGateway(string(provider), "failure", started)
		d.log.Warn().
			Str("provider", string(provider)).
			Int("status", resp.StatusCode).
			Str("reference", req.Reference).
			Msg("gateway: non-2xx response")
		return &ports.GatewayResponse{Success: false, Error: firstNonEmpty(providerMessage(body), MsgConnectionError)}
	}

	out := desc.normalize(req, body)
	outcome := "success"
	if !out.Success {
		outcome = "failure"
	}
	metrics.ObserveGateway(string(provider), outcome, started)

	d.log.Info().
		Str("provider", string(provider)).
		Str("reference", req.Reference).
		Int64("amount", req.Amount).
		Bool("success", out.Success).
		Bool("redirect", out.CheckoutURL != "").
		Msg("gateway: provider answered")

	return out
}

func (d *Dispatcher) baseURL(desc descriptor) string {
	if base := d.opts.Credentials[desc.id].BaseURL; base != "" {
		return base
	}
	return desc.defaultBase
}

// providerMessage extracts a human message from an error body, if any.
func providerMessage(body []byte) string {
	var parsed struct {
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	return firstNonEmpty(parsed.Message, parsed.ErrorDescription)
}
