package domain

import "errors"

// ErrProtocolInvariant marks failures of the pipeline's hard assumptions about
// the shapes of on-chain results: exactly one immutable object created by a
// package publication, exactly one shared and two owned objects created by
// `new_ramm`, aggregators always being shared objects. These are not business
// errors and are never retried: if one of them fires, the RAMM Move package or
// the ledger itself no longer behaves the way this tool was written against.
var ErrProtocolInvariant = errors.New("protocol invariant violated")
