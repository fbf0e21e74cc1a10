package buf

import "errors"

// ErrTooLarge indicates a requested capacity whose byte size is not
// representable. The requesting container is left unchanged.
var ErrTooLarge = errors.New("buf: buffer too large")
