// Package mmv provides the value core for exporting live metrics through a
// fixed-layout memory-mapped region.
//
// A producing process creates typed metric descriptors, mutates them through
// their Set method, and hands them to a registry component that computes the
// overall file layout and rebinds each descriptor to its reserved offset.
// From that point every value update is mirrored into shared memory, where an
// external monitoring agent reads current values without any system call or
// handshake with the producer.
//
// # Core Features
//
//   - Bit-exact value codec with seven fixed on-wire type codes
//   - Uniform 8-byte encoding for all numeric widths, byte order fixed per process
//   - Null-terminated string values bounded by the external string block size
//   - Typed descriptors with construction-time contract validation
//   - Type-erased Descriptor interface for registry iteration
//   - Shared anonymous scratch region for not-yet-bound descriptors
//
// # Basic Usage
//
// Creating and updating a metric:
//
//	import (
//	    "github.com/arloliu/mmv/format"
//	    "github.com/arloliu/mmv/metric"
//	    "github.com/arloliu/mmv/values"
//	)
//
//	m, err := metric.New("requests.total", 1, format.SemCounter, 0,
//	    values.Uint64(0), "total requests", "")
//	if err != nil {
//	    return err
//	}
//
//	// Before rebinding, writes land in the shared scratch region.
//	_ = m.Set(values.Uint64(42))
//
// The registry later rebinds each descriptor through the type-erased
// interface:
//
//	var d metric.Descriptor = m
//	d.Rebind(region.New(mapped[off : off+8]))
//	_ = m.Set(values.Uint64(43)) // now mirrored into the mapped file
//
// # Package Structure
//
// This package provides top-level conveniences. The functionality lives in:
//   - format: on-wire type codes, semantics codes, and layout constants
//   - endian: the process-wide byte order engine
//   - values: the value codec (seven storable types)
//   - region: backing-region handles and the shared scratch region
//   - metric: typed descriptors and the type-erased Descriptor interface
package mmv

import "github.com/arloliu/mmv/internal/hash"

// MetricID converts a metric name to its 64-bit xxHash64 identifier.
//
// Registries use the hash as a stable identity key for descriptors, e.g. to
// detect duplicate names before computing the file layout.
//
// Parameters:
//   - name: The metric name to hash
//
// Returns:
//   - uint64: 64-bit hash identifier for the metric name
func MetricID(name string) uint64 {
	return hash.ID(name)
}
