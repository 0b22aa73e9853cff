package quiver

import "sync/atomic"

// Key identifies an arrow within its host scene. Keys are opaque to
// this package: arrows carry them for the host's benefit (layout
// bookkeeping, event routing) and report them in logs.
type Key uint64

// KeySource allocates keys. The host owns the source and injects the
// keys it hands out; nothing in this package allocates keys behind the
// host's back, so two scenes never contend for a shared counter.
type KeySource interface {
	Next() Key
}

// keyCounter is an atomic in-process KeySource.
type keyCounter struct {
	n atomic.Uint64
}

// Next returns the next key. Safe for concurrent use.
func (k *keyCounter) Next() Key {
	return Key(k.n.Add(1))
}

// NewKeySource returns a KeySource handing out sequential keys
// starting at 1. Each source counts independently.
func NewKeySource() KeySource {
	return &keyCounter{}
}
