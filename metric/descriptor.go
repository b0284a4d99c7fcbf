package metric

import (
	"io"

	"github.com/arloliu/mmv/format"
	"github.com/arloliu/mmv/region"
	"github.com/arloliu/mmv/values"
)

// Descriptor is the type-erased view over metric descriptors of different
// value types.
//
// The registry iterates a heterogeneous set of descriptors through this
// interface to emit their headers into the file layout, bulk-write every
// current value into its reserved slot, and rebind each descriptor to that
// slot. It is the sole extension point between descriptors and the registry.
type Descriptor interface {
	// Name returns the metric name.
	Name() string

	// Item returns the 10-bit item identifier.
	Item() uint32

	// TypeCode returns the on-wire type code of the current value.
	TypeCode() format.Type

	// Semantics returns the semantic classification.
	Semantics() format.Semantics

	// Dim returns the dimension/unit tag. Its meaning is caller-defined.
	Dim() uint32

	// InstanceDomain returns the instance domain identifier, zero for none.
	InstanceDomain() uint32

	// ShortHelp returns the one-line help text.
	ShortHelp() string

	// LongHelp returns the long help text.
	LongHelp() string

	// WriteValue encodes the current value into w. The registry uses this
	// for the initial bulk write of every metric into the final layout.
	WriteValue(w io.Writer) error

	// Rebind replaces the descriptor's backing region with a view into the
	// real shared storage reserved for it. No encoding occurs; the new
	// region stays stale until the next value update.
	Rebind(r region.Region)
}

var (
	_ Descriptor = (*Metric[values.Int32])(nil)
	_ Descriptor = (*Metric[values.Uint32])(nil)
	_ Descriptor = (*Metric[values.Int64])(nil)
	_ Descriptor = (*Metric[values.Uint64])(nil)
	_ Descriptor = (*Metric[values.Float32])(nil)
	_ Descriptor = (*Metric[values.Float64])(nil)
	_ Descriptor = (*Metric[values.String])(nil)
)

func (m *Metric[V]) Name() string { return m.name }

func (m *Metric[V]) Item() uint32 { return m.item }

// TypeCode delegates to the value codec of the current value.
func (m *Metric[V]) TypeCode() format.Type { return m.val.Type() }

func (m *Metric[V]) Semantics() format.Semantics { return m.sem }

func (m *Metric[V]) Dim() uint32 { return m.dim }

func (m *Metric[V]) InstanceDomain() uint32 { return m.indom }

func (m *Metric[V]) ShortHelp() string { return m.shorthelp }

func (m *Metric[V]) LongHelp() string { return m.longhelp }

func (m *Metric[V]) WriteValue(w io.Writer) error {
	return m.val.Encode(m.order, w)
}

func (m *Metric[V]) Rebind(r region.Region) {
	m.backing = r
}
