// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package dataset

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/productrec/internal/recommend"
)

// FileStamp identifies one version of a data file.
type FileStamp struct {
	Size    int64
	ModTime time.Time
}

// Same reports whether two stamps describe the same file contents.
func (f FileStamp) Same(o FileStamp) bool {
	return f.Size == o.Size && f.ModTime.Equal(o.ModTime)
}

// StatSources stamps the products and interactions files.
func StatSources(productsPath, interactionsPath string) ([2]FileStamp, error) {
	var stamps [2]FileStamp
	for i, path := range []string{productsPath, interactionsPath} {
		info, err := os.Stat(path)
		if err != nil {
			return stamps, fmt.Errorf("stat %s: %w", path, err)
		}
		stamps[i] = FileStamp{Size: info.Size(), ModTime: info.ModTime()}
	}
	return stamps, nil
}

// Snapshot is a dataset together with the engine built from it. Handlers
// read both from one Snapshot so listings and recommendations always agree.
type Snapshot struct {
	*Dataset
	Engine *recommend.Engine

	// Sources stamps the products and interactions files as they were
	// before loading began. Zero for snapshots not built from files.
	Sources [2]FileStamp
}

// SourcesMatch reports whether stamps equal the ones this snapshot was loaded from.
func (s *Snapshot) SourcesMatch(stamps [2]FileStamp) bool {
	return s != nil && s.Sources[0].Same(stamps[0]) && s.Sources[1].Same(stamps[1])
}

// CacheScope identifies the results this snapshot produces: the table
// digest plus the engine settings. Unlike Version it is stable across
// processes, so replicas and restarts serving the same data share cache
// entries and different data never does.
func (s *Snapshot) CacheScope() string {
	cfg := s.Engine.Config()
	h := sha256.New()
	fmt.Fprintf(h, "%s\n%d/%d/%d/%g/%g", s.Digest(),
		cfg.ResultLimit, cfg.SimilarTopN, cfg.FallbackSize, cfg.ContentScoreMax, cfg.ContentScoreMin)
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// Version returns the engine's snapshot version, 0 when not installed.
func (s *Snapshot) Version() uint64 {
	if s == nil {
		return 0
	}
	return s.Engine.Stats().Version
}

// LoadSnapshot reads both files and builds the engine. The files are
// stamped before they are read, so an edit made during or after loading
// always looks like a change to the reload service.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func LoadSnapshot(productsPath, interactionsPath string, cfg recommend.Config, logger zerolog.Logger) (*Snapshot, error) {
	stamps, err := StatSources(productsPath, interactionsPath)
	if err != nil {
		return nil, err
	}
	d, err := Load(productsPath, interactionsPath)
	if err != nil {
		return nil, err
	}
	e, err := d.Build(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}
	return &Snapshot{Dataset: d, Engine: e, Sources: stamps}, nil
}

// Holder publishes the current Snapshot. Versions come from the wrapped
// recommend.Holder and count swaps within this process; they feed stats
// and metrics only.
type Holder struct {
	engines *recommend.Holder
	current atomic.Pointer[Snapshot]
}

// NewHolder returns a Holder with nothing installed.
func NewHolder() *Holder {
	return &Holder{engines: recommend.NewHolder()}
}

// Load returns the current snapshot, or nil before the first Swap.
func (h *Holder) Load() *Snapshot {
	return h.current.Load()
}

// Swap installs s and returns its version. Swap calls must not run concurrently.
func (h *Holder) Swap(s *Snapshot) uint64 {
	v := h.engines.Swap(s.Engine)
	h.current.Store(s)
	return v
}
