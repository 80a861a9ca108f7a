package series

import (
	"fmt"

	"github.com/arloliu/measure/compress"
	"github.com/arloliu/measure/dynamic"
	"github.com/arloliu/measure/endian"
	"github.com/arloliu/measure/errs"
	"github.com/arloliu/measure/format"
	"github.com/arloliu/measure/internal/options"
	"github.com/arloliu/measure/section"
)

// EncoderConfig holds the header being built and the codec it selects.
type EncoderConfig struct {
	header *section.Header
	codec  compress.Codec
	engine endian.EndianEngine
}

func newEncoderConfig() *EncoderConfig {
	header := section.NewHeader()

	return &EncoderConfig{
		header: header,
		engine: header.Flag.EndianEngine(),
	}
}

func (c *EncoderConfig) setCompression(comp format.CompressionType) error {
	if !comp.Valid() {
		return fmt.Errorf("%w: value compression 0x%02x", errs.ErrUnsupportedCompression, uint8(comp))
	}
	c.header.Flag.SetCompression(comp)

	return nil
}

func (c *EncoderConfig) setValueEncoding(enc format.EncodingType) error {
	if !enc.Valid() {
		return fmt.Errorf("%w: value encoding 0x%02x", errs.ErrUnsupportedEncoding, uint8(enc))
	}
	c.header.Flag.SetValueEncoding(enc)

	return nil
}

func (c *EncoderConfig) setBigEndian(big bool) {
	if big {
		c.header.Flag.WithBigEndian()
	} else {
		c.header.Flag.WithLittleEndian()
	}
	c.engine = c.header.Flag.EndianEngine()
}

// setCodec resolves the codec once all options have been applied.
func (c *EncoderConfig) setCodec() error {
	codec, err := compress.CreateCodec(c.header.Flag.Compression(), "values")
	if err != nil {
		return err
	}
	c.codec = codec

	return nil
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithCompression sets the codec applied to the value payload. The default
// is format.CompressionZstd.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setCompression(comp)
	})
}

// WithValueEncoding sets how values are laid out before compression. The
// default is format.TypeRaw. format.TypeGorilla XORs each value with its
// predecessor within the series, which shrinks slowly changing readings.
func WithValueEncoding(enc format.EncodingType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setValueEncoding(enc)
	})
}

// WithLittleEndian writes values little-endian. It is the default option.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setBigEndian(false)
	})
}

// WithBigEndian writes values big-endian.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setBigEndian(true)
	})
}

// WithUnitNames controls whether canonical unit names are stored next to
// their IDs. Names let a decoder verify IDs and report unknown units by name.
// They are stored by default.
func WithUnitNames(enabled bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.header.Flag.SetHasUnitNames(enabled)
	})
}

// DecoderConfig holds the registry used to resolve unit IDs.
type DecoderConfig struct {
	registry *dynamic.Registry
}

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*DecoderConfig]

// WithRegistry resolves unit IDs against r instead of the default registry.
func WithRegistry(r *dynamic.Registry) DecoderOption {
	return options.New(func(c *DecoderConfig) error {
		if r == nil {
			return fmt.Errorf("%w: nil registry", errs.ErrUnknownUnit)
		}
		c.registry = r

		return nil
	})
}
