// Package metric implements the typed metric descriptor.
//
// A Metric binds a name, a 10-bit item identifier, a semantic classification,
// a dimension tag, help text, a current value, and a handle to the byte
// region that mirrors that value. Descriptors are created against a shared
// anonymous scratch region and later rebound by the owning registry to their
// real offset inside the mapped file; from then on every Set mirrors the
// value into shared memory.
//
// The package provides no locking. Concurrent Set calls on one descriptor
// are last-write-wins, and a cross-process reader may observe a torn value
// mid-update; tolerating or retrying that is the reader's concern.
package metric

import (
	"fmt"

	"github.com/arloliu/mmv/endian"
	"github.com/arloliu/mmv/errs"
	"github.com/arloliu/mmv/format"
	"github.com/arloliu/mmv/internal/options"
	"github.com/arloliu/mmv/region"
	"github.com/arloliu/mmv/values"
)

// Metric is a named, typed measurement slot holding a current value of type V
// and the backing region that mirrors it.
type Metric[V values.Value] struct {
	name      string
	item      uint32
	sem       format.Semantics
	indom     uint32
	dim       uint32
	shorthelp string
	longhelp  string
	val       V
	backing   region.Region
	order     endian.EndianEngine
}

// New creates a metric descriptor.
//
// The name must be strictly shorter than format.NameMaxLen and each help text
// strictly shorter than format.StringBlockLen; violations fail construction,
// nothing is truncated. Only the low format.ItemBitLen bits of item are kept,
// matching the fixed-width slot field of the external layout.
//
// The descriptor starts out backed by the process-wide scratch region; the
// owning registry rebinds it to its real file offset once the overall layout
// is known.
//
// Parameters:
//   - name: Metric name (must be shorter than format.NameMaxLen)
//   - item: Item identifier (only the low 10 bits are significant)
//   - sem: Semantic classification (format.SemCounter, SemInstant, SemDiscrete)
//   - dim: Dimension/unit tag, opaque to this package
//   - initVal: Initial value; fixes the value type of the descriptor
//   - shorthelp: One-line help text (must be shorter than format.StringBlockLen)
//   - longhelp: Long help text (must be shorter than format.StringBlockLen)
//   - opts: Optional configuration (WithByteOrder, WithInstanceDomain)
//
// Returns:
//   - *Metric[V]: The created descriptor
//   - error: errs.ErrNameTooLong or errs.ErrHelpTooLong on contract violation
func New[V values.Value](name string, item uint32, sem format.Semantics, dim uint32,
	initVal V, shorthelp, longhelp string, opts ...Option) (*Metric[V], error) {
	if len(name) >= format.NameMaxLen {
		return nil, fmt.Errorf("%w: %q is %d bytes, limit %d", errs.ErrNameTooLong, name, len(name), format.NameMaxLen-1)
	}
	if len(shorthelp) >= format.StringBlockLen {
		return nil, fmt.Errorf("%w: short help is %d bytes, limit %d", errs.ErrHelpTooLong, len(shorthelp), format.StringBlockLen-1)
	}
	if len(longhelp) >= format.StringBlockLen {
		return nil, fmt.Errorf("%w: long help is %d bytes, limit %d", errs.ErrHelpTooLong, len(longhelp), format.StringBlockLen-1)
	}

	cfg := config{order: endian.Native()}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Metric[V]{
		name:      name,
		item:      item & format.ItemMask,
		sem:       sem,
		indom:     cfg.indom,
		dim:       dim,
		shorthelp: shorthelp,
		longhelp:  longhelp,
		val:       initVal,
		backing:   region.Scratch(),
		order:     cfg.order,
	}, nil
}

// Val returns a copy of the in-process value. It never touches the backing
// region.
func (m *Metric[V]) Val() V {
	return m.val
}

// Set replaces the in-process value and immediately encodes it into the
// backing region.
//
// On success the shared region is observable-consistent with the in-process
// value. If the region cannot hold the encoded form, or the value cannot be
// encoded (a string with an embedded zero byte), the in-process value is
// still updated but the region keeps its previous bytes; the caller decides
// whether to retry, skip, or escalate. No ordering is guaranteed against a
// concurrent reader of the region.
func (m *Metric[V]) Set(v V) error {
	m.val = v

	return m.val.Encode(m.order, m.backing.NewWriter())
}

// ByteOrder returns the byte order every numeric encode of this descriptor
// uses.
func (m *Metric[V]) ByteOrder() endian.EndianEngine {
	return m.order
}
