package zarinpal_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/playmixer/goldmarket/internal/adapters/gateway/zarinpal"
	"github.com/playmixer/goldmarket/internal/core/market"
	"github.com/stretchr/testify/assert"
)

func TestClient_Request(t *testing.T) {
	tests := []struct {
		name      string
		response  string
		authority string
		wantErr   bool
	}{
		{
			name:      "correct",
			response:  `{"data":{"code":100,"message":"Success","authority":"A0001","fee_type":"Merchant","fee":100},"errors":[]}`,
			authority: "A0001",
		},
		{
			name:     "merchant rejected",
			response: `{"data":[],"errors":{"code":-74,"message":"The merchant have not access."}}`,
			wantErr:  true,
		},
		{
			name:     "no authority",
			response: `{"data":{"code":100,"authority":""},"errors":[]}`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)

				body := map[string]any{}
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "merchant", body["merchant_id"])
				assert.Equal(t, float64(2180), body["amount"])

				w.Header().Set("Content-Type", "application/json")
				_, err := w.Write([]byte(tt.response))
				assert.NoError(t, err)
			}))
			defer srv.Close()

			client := zarinpal.New(&zarinpal.Config{
				MerchantID: "merchant",
				RequestURL: srv.URL,
			})

			authority, err := client.Request(context.Background(), market.GatewayRequest{
				Amount:      2180,
				CallbackURL: "http://localhost:8080/api/payment/verify",
				Description: "purchase from goldmarket",
				Email:       "user@example.com",
				Mobile:      "79000000000",
			})
			if tt.wantErr {
				var gwErr *market.GatewayError
				assert.ErrorAs(t, err, &gwErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.authority, authority)
		})
	}
}

func TestClient_Verify(t *testing.T) {
	tests := []struct {
		name     string
		response string
		code     int
		refID    string
		message  string
	}{
		{
			name:     "verified",
			response: `{"data":{"code":100,"message":"Verified","ref_id":201,"card_pan":"502229******5995"},"errors":[]}`,
			code:     100,
			refID:    "201",
		},
		{
			name:     "already verified",
			response: `{"data":{"code":101,"message":"Verified","ref_id":201},"errors":[]}`,
			code:     101,
			refID:    "201",
		},
		{
			name:     "session not valid",
			response: `{"data":[],"errors":{"code":-51,"message":"Session is not valid, session is not active paid try."}}`,
			code:     0,
			refID:    "",
			message:  "Session is not valid, session is not active paid try.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body := map[string]any{}
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "A0001", body["authority"])

				w.Header().Set("Content-Type", "application/json")
				_, err := w.Write([]byte(tt.response))
				assert.NoError(t, err)
			}))
			defer srv.Close()

			client := zarinpal.New(&zarinpal.Config{
				MerchantID: "merchant",
				VerifyURL:  srv.URL,
			})

			verify, err := client.Verify(context.Background(), 2180, "A0001")
			assert.NoError(t, err)
			assert.Equal(t, tt.code, verify.Code)
			assert.Equal(t, tt.refID, verify.RefID)
			assert.Equal(t, tt.message, verify.Message)
		})
	}
}

func TestClient_Verify_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := zarinpal.New(&zarinpal.Config{
		MerchantID: "merchant",
		VerifyURL:  srv.URL,
	})

	_, err := client.Verify(context.Background(), 2180, "A0001")
	assert.Error(t, err)
}

func TestClient_StartPayURL(t *testing.T) {
	client := zarinpal.New(&zarinpal.Config{
		StartPayURL: "https://sandbox.zarinpal.com/pg/StartPay/",
	})
	assert.Equal(t, "https://sandbox.zarinpal.com/pg/StartPay/A0001", client.StartPayURL("A0001"))
}
