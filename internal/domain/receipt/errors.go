package receipt

import "errors"

var ErrReceiptNotFound = errors.New("receipt not found")
