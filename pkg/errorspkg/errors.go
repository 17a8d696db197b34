// Package errorspkg holds errors shared by every layer of the ledger.
package errorspkg

import "errors"

// ErrInternal replaces store and driver failures the caller cannot act on.
// The cause is logged where it is replaced.
var ErrInternal = errors.New("internal")
