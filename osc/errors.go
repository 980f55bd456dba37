package osc

import "errors"

// Decode failures come in exactly two kinds. ErrUnderrun means the
// input ran out before a field was complete; ErrParse means the input
// is structurally invalid (bad alignment, a type tag string without
// its leading comma, an unknown tag character, a malformed bundle).
// Either kind aborts the decode entirely: no partial packet is ever
// returned. Returned errors wrap one of these sentinels, so match
// with errors.Is.
var (
	ErrUnderrun = errors.New("osc: buffer underrun")
	ErrParse    = errors.New("osc: invalid packet")
)
