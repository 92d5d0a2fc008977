package model

import "errors"

// Per-product recoverable conditions: the scanner logs them and moves to
// the next product, it never aborts a cycle on them.
var ErrDataUnavailable = errors.New("not enough market data for this cycle")
var ErrSizingRejected = errors.New("notional rejected by sizing rules")
var ErrOrderFailed = errors.New("order submission failed")
