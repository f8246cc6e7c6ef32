package zarinpal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/playmixer/goldmarket/internal/core/market"
	"go.uber.org/zap"
)

type Config struct {
	MerchantID  string `env:"ZARINPAL_MERCHANT_ID"`
	RequestURL  string `env:"ZARINPAL_REQUEST_URL" envDefault:"https://sandbox.zarinpal.com/pg/v4/payment/request.json"`
	VerifyURL   string `env:"ZARINPAL_VERIFY_URL" envDefault:"https://sandbox.zarinpal.com/pg/v4/payment/verify.json"`
	StartPayURL string `env:"ZARINPAL_STARTPAY_URL" envDefault:"https://sandbox.zarinpal.com/pg/StartPay/"`
}

// Client talks the zarinpal v4 REST protocol and implements
// market.Gateway.
type Client struct {
	log    *zap.Logger
	client *http.Client
	cfg    *Config
}

type option func(*Client)

func Logger(log *zap.Logger) option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

func New(cfg *Config, options ...option) *Client {
	c := &Client{
		log: zap.NewNop(),
		cfg: cfg,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	for _, opt := range options {
		opt(c)
	}

	return c
}

type tRequestBody struct {
	Metadata    tMetadata `json:"metadata"`
	MerchantID  string    `json:"merchant_id"`
	CallbackURL string    `json:"callback_url"`
	Description string    `json:"description"`
	Amount      int       `json:"amount"`
}

type tMetadata struct {
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
}

type tVerifyBody struct {
	MerchantID string `json:"merchant_id"`
	Authority  string `json:"authority"`
	Amount     int    `json:"amount"`
}

type tEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors json.RawMessage `json:"errors"`
}

type tRequestData struct {
	Authority string `json:"authority"`
	Code      int    `json:"code"`
}

type tVerifyData struct {
	RefID json.Number `json:"ref_id"`
	Code  int         `json:"code"`
}

type tErrors struct {
	Message string `json:"message"`
}

func (c *Client) post(ctx context.Context, url string, body interface{}) (tEnvelope, error) {
	envelope := tEnvelope{}
	bBody, err := json.Marshal(body)
	if err != nil {
		return envelope, fmt.Errorf("failed marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bBody))
	if err != nil {
		return envelope, fmt.Errorf("failed create request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("content-type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return envelope, fmt.Errorf("failed request gateway: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Error("failed close response body", zap.Error(err))
		}
	}()

	bResp, err := io.ReadAll(resp.Body)
	if err != nil {
		return envelope, fmt.Errorf("failed read response body: %w", err)
	}
	if err := json.Unmarshal(bResp, &envelope); err != nil {
		return envelope, fmt.Errorf("failed unmarshal response: %w", err)
	}

	return envelope, nil
}

func (c *Client) gatewayMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	e := tErrors{}
	if err := json.Unmarshal(raw, &e); err != nil {
		return ""
	}
	return e.Message
}

// Request registers a payment and returns the gateway authority token.
func (c *Client) Request(ctx context.Context, req market.GatewayRequest) (string, error) {
	envelope, err := c.post(ctx, c.cfg.RequestURL, tRequestBody{
		MerchantID:  c.cfg.MerchantID,
		Amount:      req.Amount,
		CallbackURL: req.CallbackURL,
		Description: req.Description,
		Metadata:    tMetadata{Email: req.Email, Mobile: req.Mobile},
	})
	if err != nil {
		return "", err
	}

	// on errors the gateway sends data as an empty array
	data := tRequestData{}
	if len(envelope.Data) > 0 && envelope.Data[0] == '{' {
		if err := json.Unmarshal(envelope.Data, &data); err != nil {
			return "", fmt.Errorf("failed unmarshal gateway data: %w", err)
		}
	}
	if data.Code != 100 || data.Authority == "" {
		return "", &market.GatewayError{Message: c.gatewayMessage(envelope.Errors)}
	}

	return data.Authority, nil
}

// Verify confirms the payment identified by authority with the amount
// originally requested.
func (c *Client) Verify(ctx context.Context, amount int, authority string) (market.GatewayVerify, error) {
	verify := market.GatewayVerify{}
	envelope, err := c.post(ctx, c.cfg.VerifyURL, tVerifyBody{
		MerchantID: c.cfg.MerchantID,
		Amount:     amount,
		Authority:  authority,
	})
	if err != nil {
		return verify, err
	}

	data := tVerifyData{}
	if len(envelope.Data) > 0 && envelope.Data[0] == '{' {
		if err := json.Unmarshal(envelope.Data, &data); err != nil {
			return verify, fmt.Errorf("failed unmarshal gateway data: %w", err)
		}
	}

	verify.Code = data.Code
	verify.RefID = data.RefID.String()
	verify.Message = c.gatewayMessage(envelope.Errors)

	return verify, nil
}

func (c *Client) StartPayURL(authority string) string {
	return c.cfg.StartPayURL + authority
}
