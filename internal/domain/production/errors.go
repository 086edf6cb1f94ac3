package production

import "errors"

var (
	ErrRecordNotFound = errors.New("production record not found")
	ErrForbidden      = errors.New("only the owner may delete records")
)
