// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package recommend

import (
	"sync/atomic"
)

// Holder publishes the current Engine snapshot to concurrent readers.
// Readers never block; a swap is a single atomic pointer store.
type Holder struct {
	current atomic.Pointer[Engine]
	version atomic.Uint64
}

// NewHolder returns a Holder with no snapshot installed.
func NewHolder() *Holder {
	return &Holder{}
}

// Load returns the current snapshot, or nil if none has been installed.
func (h *Holder) Load() *Engine {
	return h.current.Load()
}

// Swap installs e as the current snapshot, stamps it with the next version
// and returns that version. The engine must not be shared with another Holder.
func (h *Holder) Swap(e *Engine) uint64 {
	v := h.version.Add(1)
	e.stats.Version = v
	h.current.Store(e)
	return v
}

// Version returns the version of the current snapshot, 0 if none.
func (h *Holder) Version() uint64 {
	if e := h.current.Load(); e != nil {
		return e.stats.Version
	}
	return 0
}
