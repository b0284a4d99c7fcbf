package metric

import (
	"errors"

	"github.com/arloliu/mmv/endian"
	"github.com/arloliu/mmv/internal/options"
)

type config struct {
	order endian.EndianEngine
	indom uint32
}

// Option configures a metric descriptor at construction time.
type Option = options.Option[*config]

// WithByteOrder sets the byte order used for every numeric encode of the
// descriptor. The order is fixed once per process by the external format;
// all descriptors of one producer must use the same engine. Defaults to
// endian.Native().
func WithByteOrder(engine endian.EndianEngine) Option {
	return options.New(func(c *config) error {
		if engine == nil {
			return errors.New("byte order engine cannot be nil")
		}
		c.order = engine

		return nil
	})
}

// WithInstanceDomain sets the instance domain identifier. The default, zero,
// means the metric belongs to no domain. Linkage to an actual domain table is
// the registry's concern; the identifier is stored as-is.
func WithInstanceDomain(indom uint32) Option {
	return options.NoError(func(c *config) {
		c.indom = indom
	})
}
