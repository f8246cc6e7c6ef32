package market

import "errors"

var (
	ErrLoginNotValid     = errors.New("login is not valid")
	ErrPasswordNotValid  = errors.New("password is not valid")
	ErrPasswordNotEquale = errors.New("password is not correct")

	ErrPriceNotValid    = errors.New("price must not be negative")
	ErrDiscountNotValid = errors.New("discount must be between 0 and 100")
	ErrNameNotValid     = errors.New("name must not be empty")

	ErrOrderNotValid       = errors.New("order fields are not valid")
	ErrInvalidQuantity     = errors.New("quantity is not valid for this order")
	ErrNoActiveOffer       = errors.New("no active offer for this order")
	ErrInvalidFile         = errors.New("proof file type or size is not acceptable")
	ErrInvalidTransition   = errors.New("offer status transition is not allowed")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrProductNotFound     = errors.New("product not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrGatewayUnreachable  = errors.New("payment gateway is unreachable")
)

// GatewayError carries the error message returned by the payment
// gateway itself, as opposed to a transport failure.
type GatewayError struct {
	Message string
}

func (e *GatewayError) Error() string {
	return "gateway error: " + e.Message
}
