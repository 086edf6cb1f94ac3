package sales

import "errors"

var (
	ErrRecordNotFound       = errors.New("sales record not found")
	ErrForbidden            = errors.New("only the owner may delete records")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)
