// Package framer provides a framed-message codec for byte-oriented links.
//
// A value is serialized with a compact structured-text codec, followed by a
// CRC-32 of those bytes, and the whole is byte-stuffed with COBS and
// terminated by a single 0x00. Frame boundaries on a stream are therefore
// recoverable without a length prefix, and the decoder rejects corrupted
// frames before handing a value back.
//
// # Wire Format
//
//	[ payload (n bytes) ][ CRC32(payload), little-endian, 4 bytes ]
//	--- the n+4 bytes above are COBS stuffed ---
//	[ stuffed bytes ][ 0x00 ]
//
// The payload is compact JSON by default, so {x: 10, y: 10} travels as
// {"x":10,"y":10} plus its trailer.
//
// # Basic Usage
//
//	type Point struct {
//	    X int32 `json:"x"`
//	    Y int32 `json:"y"`
//	}
//
//	var buf [64]byte
//	n, err := framer.Encode(Point{X: 10, Y: 10}, buf[:])
//
//	p, err := framer.Decode[Point](buf[:n])
//
// For non-default settings build a Framer once and reuse it:
//
//	f, err := framer.New[Point](
//	    framer.WithCapacity(256),
//	    framer.WithTarget(framer.TargetFreestanding),
//	)
//	n, err := f.Encode(ctx, &p, buf[:])
//	p2, err := f.Decode(ctx, buf[:n])
//
// # Errors
//
// Every Encode and Decode failure is an *Error with a Kind from a closed set:
//
//   - KindCobsDecode: malformed or truncated stuffing, or a frame too short
//     to carry its trailer
//   - KindPayloadDecode: the payload is not valid structured text for T
//   - KindCRCInvalid: the payload parsed but its checksum does not match
//   - KindCapacityExceeded: the value or frame does not fit its buffer
//   - KindPayloadEncode: the codec could not marshal the value
//
// # Targets
//
//   - TargetHosted: emits capitan signals for every operation
//   - TargetFreestanding: silent, and rejects slice, map and pointer fields
//
// # Codec Providers
//
// JSON() is built in. The following codec implementations are available as
// subpackages:
//
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//
// Independent implementations of this frame format expect JSON; the other
// codecs are for links where both ends run this package.
package framer

import "context"

// Encode frames v into dst using the default configuration and returns the
// number of bytes written, terminator included.
func Encode[T any](v T, dst []byte) (int, error) {
	f, err := Use[T]()
	if err != nil {
		return 0, err
	}
	return f.Encode(context.Background(), &v, dst)
}

// Decode parses the frame at the start of src using the default configuration.
func Decode[T any](src []byte) (T, error) {
	var zero T
	f, err := Use[T]()
	if err != nil {
		return zero, err
	}
	obj, err := f.Decode(context.Background(), src)
	if err != nil {
		return zero, err
	}
	return *obj, nil
}
