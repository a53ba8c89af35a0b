package framer

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrCobsDecode indicates the input violates the byte-stuffing grammar,
	// is truncated, or unstuffs to something that cannot hold a trailer.
	ErrCobsDecode = errors.New("cobs decode failed")

	// ErrPayloadDecode indicates the unstuffed payload did not parse as the
	// target type. With the default JSON codec this is the JSON decode error.
	ErrPayloadDecode = errors.New("payload decode failed")

	// ErrCRCInvalid indicates the recomputed checksum does not match the trailer.
	ErrCRCInvalid = errors.New("crc invalid")

	// ErrCapacityExceeded indicates a payload or frame does not fit the
	// working buffer or the caller's destination.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrPayloadEncode indicates the codec failed to marshal the value.
	ErrPayloadEncode = errors.New("payload encode failed")

	// ErrUnsupportedType indicates a value type the framer cannot carry.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrInvalidCapacity indicates a working buffer capacity too small to
	// hold even the checksum trailer.
	ErrInvalidCapacity = errors.New("invalid capacity")

	// ErrInvalidTarget indicates an unknown target environment.
	ErrInvalidTarget = errors.New("invalid target")

	// ErrInvalidChecksum indicates an unknown checksum algorithm.
	ErrInvalidChecksum = errors.New("invalid checksum")

	// ErrMissingCodec indicates a nil codec was configured.
	ErrMissingCodec = errors.New("missing codec")
)

// ErrorKind classifies an Encode or Decode failure. The set is closed.
type ErrorKind uint8

const (
	// KindCobsDecode: the frame is not well-formed COBS.
	KindCobsDecode ErrorKind = iota + 1

	// KindPayloadDecode: the payload is not valid structured text for T.
	KindPayloadDecode

	// KindCRCInvalid: the payload parsed but failed its integrity check.
	KindCRCInvalid

	// KindCapacityExceeded: the value or frame does not fit.
	KindCapacityExceeded

	// KindPayloadEncode: the codec could not marshal the value.
	KindPayloadEncode
)

var kindNames = [...]string{
	KindCobsDecode:       "cobs_decode",
	KindPayloadDecode:    "payload_decode",
	KindCRCInvalid:       "crc_invalid",
	KindCapacityExceeded: "capacity_exceeded",
	KindPayloadEncode:    "payload_encode",
}

var kindSentinels = [...]error{
	KindCobsDecode:       ErrCobsDecode,
	KindPayloadDecode:    ErrPayloadDecode,
	KindCRCInvalid:       ErrCRCInvalid,
	KindCapacityExceeded: ErrCapacityExceeded,
	KindPayloadEncode:    ErrPayloadEncode,
}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Error is returned by every failed Encode or Decode.
// It wraps the sentinel for its Kind with the underlying cause, if any.
type Error struct {
	Kind  ErrorKind // Closed classification of the failure
	Cause error     // Original error from the codec, stuffing, or sizing check
}

func (e *Error) Error() string {
	msg := e.sentinel().Error()
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.sentinel()
}

func (e *Error) sentinel() error {
	if int(e.Kind) < len(kindSentinels) && kindSentinels[e.Kind] != nil {
		return kindSentinels[e.Kind]
	}
	return fmt.Errorf("framer error %s", e.Kind)
}

// ConfigError represents a framer configuration error.
// It wraps a sentinel error with context about the offending setting.
type ConfigError struct {
	Err    error  // Underlying sentinel error (ErrUnsupportedType, etc.)
	Field  string // Field path that triggered the error, if any
	Detail string // Offending value or type
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.Detail != "" {
		return fmt.Sprintf("%s %q (field %s)", e.Err.Error(), e.Detail, e.Field)
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s %q", e.Err.Error(), e.Detail)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// newError creates an Error of the given kind.
func newError(kind ErrorKind, cause error) error {
	return &Error{
		Kind:  kind,
		Cause: cause,
	}
}

// newConfigError creates a ConfigError for invalid settings.
func newConfigError(sentinel error, detail, field string) error {
	return &ConfigError{
		Err:    sentinel,
		Detail: detail,
		Field:  field,
	}
}

// KindOf reports the ErrorKind of err, or 0 if err is not a framer *Error.
func KindOf(err error) ErrorKind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return 0
}
