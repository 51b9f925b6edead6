package providers

import "errors"

// ErrProviderUnavailable indicates the provider cannot serve requests at all
// (nil wiring, closed limiter). Individual fetch failures return their own
// errors.
var ErrProviderUnavailable = errors.New("provider unavailable")
