package securestore

import "errors"

var ErrNotFound = errors.New("value not found")
