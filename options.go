package framer

import "strconv"

// DefaultCapacity is the default working buffer size in bytes. The
// serialized payload plus its checksum trailer must fit within it.
const DefaultCapacity = 1024

// Option configures a Framer.
type Option func(*config)

// config holds framer settings before validation.
type config struct {
	codec    Codec
	capacity int
	checksum ChecksumAlgo
	target   Target
}

func defaultConfig() config {
	return config{
		codec:    JSON(),
		capacity: DefaultCapacity,
		checksum: ChecksumIEEE,
		target:   TargetHosted,
	}
}

// WithCodec sets the payload codec. Defaults to JSON().
func WithCodec(c Codec) Option {
	return func(cfg *config) {
		cfg.codec = c
	}
}

// WithCapacity sets the working buffer capacity in bytes.
// It bounds the serialized payload plus the 4-byte trailer on encode and
// the unstuffed frame on decode.
func WithCapacity(n int) Option {
	return func(cfg *config) {
		cfg.capacity = n
	}
}

// WithChecksum selects the CRC-32 polynomial. Defaults to ChecksumIEEE.
func WithChecksum(algo ChecksumAlgo) Option {
	return func(cfg *config) {
		cfg.checksum = algo
	}
}

// WithTarget selects the target environment. Defaults to TargetHosted.
func WithTarget(t Target) Option {
	return func(cfg *config) {
		cfg.target = t
	}
}

func buildConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c config) validate() error {
	if c.codec == nil {
		return newConfigError(ErrMissingCodec, "", "")
	}
	if c.capacity <= TrailerSize {
		return newConfigError(ErrInvalidCapacity, strconv.Itoa(c.capacity), "")
	}
	if !IsValidChecksumAlgo(c.checksum) {
		return newConfigError(ErrInvalidChecksum, string(c.checksum), "")
	}
	if !IsValidTarget(c.target) {
		return newConfigError(ErrInvalidTarget, string(c.target), "")
	}
	return nil
}
