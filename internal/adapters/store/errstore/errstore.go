package errstore

import "errors"

var (
	ErrNotFoundData       = errors.New("data not found")
	ErrLoginNotUnique     = errors.New("login already taken")
	ErrNameNotUnique      = errors.New("name already taken")
	ErrCategoryInUse      = errors.New("category is referenced by live products or categories")
	ErrCategoryCycle      = errors.New("category parent creates a cycle")
	ErrOrderRestNotEnough = errors.New("order rest is not enough")
	ErrPaymentNotPending  = errors.New("payment is not pending")
)
