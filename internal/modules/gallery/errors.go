package gallery

import "errors"

var ErrNotFound = errors.New("gallery image not found")
