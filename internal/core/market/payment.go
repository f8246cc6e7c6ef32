package market

import (
	"context"
	"errors"
	"fmt"

	"github.com/playmixer/goldmarket/internal/adapters/store/errstore"
	"github.com/playmixer/goldmarket/internal/adapters/store/model"
	"go.uber.org/zap"
)

const verifyStatusOK = "OK"

type VerifyResult struct {
	RefID           string
	Message         string
	Canceled        bool
	Failed          bool
	AlreadyVerified bool
}

// RequestPayment registers the payment with the gateway and returns the
// redirect target. The payment stays pending whatever happens here, so
// a failed request can be retried.
func (m *Market) RequestPayment(ctx context.Context, payment model.Payment, callbackURL string, user model.User) (string, error) {
	email := user.Email
	if email == "" {
		email = "noemail@example.com"
	}
	mobile := digitsOnly(user.Phone)
	if mobile == "" {
		mobile = "0000000000"
	}

	authority, err := m.gateway.Request(ctx, GatewayRequest{
		Amount:      payment.Total,
		CallbackURL: callbackURL,
		Description: payment.Description,
		Email:       email,
		Mobile:      mobile,
	})
	if err != nil {
		var gwErr *GatewayError
		if errors.As(err, &gwErr) {
			return "", fmt.Errorf("payment request rejected: %w", err)
		}
		return "", fmt.Errorf("%w: %w", ErrGatewayUnreachable, err)
	}

	if err := m.store.SetPaymentAuthority(ctx, payment.ID, authority); err != nil {
		return "", fmt.Errorf("failed store authority: %w", err)
	}

	return m.gateway.StartPayURL(authority), nil
}

// VerifyPayment reconciles the gateway callback. Only pending payments
// are ever looked up, so a duplicate callback resolves to
// ErrTransactionNotFound instead of a double credit. The amount sent to
// the gateway is always the stored payment total.
func (m *Market) VerifyPayment(ctx context.Context, status, authority string) (VerifyResult, error) {
	result := VerifyResult{}
	if status != verifyStatusOK {
		result.Canceled = true
		return result, nil
	}

	payment, err := m.store.GetPendingPaymentByAuthority(ctx, authority)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			return result, ErrTransactionNotFound
		}
		return result, fmt.Errorf("failed getting payment: %w", err)
	}

	resp, err := m.gateway.Verify(ctx, payment.Total, authority)
	if err != nil {
		if finishErr := m.store.FinishPayment(ctx, payment.ID, model.PaymentStateError, ""); finishErr != nil {
			m.log.Error("failed finish payment", zap.Uint("paymentID", payment.ID), zap.Error(finishErr))
		}
		return result, fmt.Errorf("%w: %w", ErrGatewayUnreachable, err)
	}

	switch resp.Code {
	case gatewayCodeVerified:
		if err := m.store.FinishPayment(ctx, payment.ID, model.PaymentStateDone, resp.RefID); err != nil {
			return result, fmt.Errorf("failed finish payment: %w", err)
		}
		result.RefID = resp.RefID
	case gatewayCodeAlreadyVerified:
		if err := m.store.FinishPayment(ctx, payment.ID, model.PaymentStateDone, ""); err != nil {
			return result, fmt.Errorf("failed finish payment: %w", err)
		}
		result.RefID = payment.Ref
		result.AlreadyVerified = true
	default:
		if err := m.store.FinishPayment(ctx, payment.ID, model.PaymentStateError, ""); err != nil {
			return result, fmt.Errorf("failed finish payment: %w", err)
		}
		result.Failed = true
		result.Message = resp.Message
	}

	return result, nil
}

const (
	gatewayCodeVerified        = 100
	gatewayCodeAlreadyVerified = 101
)
