package framer

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/zoobzio/framer/cobs"
)

// checksums holds the CRC tables shared by all framers.
var checksums = builtinChecksums()

// Framer encodes values of type T into self-delimiting frames and decodes
// them back, verifying integrity before returning.
//
// A frame is COBS(payload ++ CRC32(payload) little-endian) followed by a
// single 0x00 terminator. Framers are immutable after construction and safe
// for concurrent use; every call works in its own buffers.
type Framer[T any] struct {
	codec    Codec
	checksum Checksum
	algo     ChecksumAlgo
	capacity int
	target   Target

	// Type metadata
	typeName string
}

// New creates a Framer for type T.
//
// T is checked against the configured target at construction: interface,
// channel and function fields are always rejected, and freestanding
// targets also reject slices, maps and pointers. Every exported field is
// checked, including ones a codec tag hides.
func New[T any](opts ...Option) (*Framer[T], error) {
	cfg := buildConfig(opts)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	typeName, err := scanShape[T](cfg.target)
	if err != nil {
		return nil, err
	}

	f := &Framer[T]{
		codec:    cfg.codec,
		checksum: checksums[cfg.checksum],
		algo:     cfg.checksum,
		capacity: cfg.capacity,
		target:   cfg.target,
		typeName: typeName,
	}

	if f.target.emitsSignals() {
		emitFramerCreated(context.Background(), f.codec.ContentType(), typeName, f.algo, f.capacity)
	}
	return f, nil
}

// ContentType returns the payload codec's MIME type.
func (f *Framer[T]) ContentType() string { return f.codec.ContentType() }

// Capacity returns the working buffer size in bytes.
func (f *Framer[T]) Capacity() int { return f.capacity }

// Checksum returns the configured checksum algorithm.
func (f *Framer[T]) Checksum() ChecksumAlgo { return f.algo }

// Target returns the configured target environment.
func (f *Framer[T]) Target() Target { return f.target }

// MaxFrameLen returns a destination size that holds any frame this framer
// can produce, terminator included.
func (f *Framer[T]) MaxFrameLen() int {
	return MaxFrameLen(f.capacity - TrailerSize)
}

// MaxFrameLen returns the worst-case frame length, terminator included, for
// a serialized payload of n bytes.
func MaxFrameLen(n int) int {
	return cobs.MaxEncodedLen(n+TrailerSize) + 1
}

// Encode serializes v, appends its checksum, stuffs the result into dst and
// terminates it with 0x00. It returns the number of bytes written,
// terminator included.
//
// A payload that does not fit the working buffer, or a frame that does not
// fit dst, fails with ErrCapacityExceeded; nothing is truncated. Sizing dst
// to MaxFrameLen always suffices.
func (f *Framer[T]) Encode(ctx context.Context, v *T, dst []byte) (int, error) {
	if !f.target.emitsSignals() {
		return f.encode(v, dst)
	}

	start := time.Now()
	emitEncodeStart(ctx, f.codec.ContentType(), f.typeName)

	n, err := f.encode(v, dst)
	emitEncodeComplete(ctx, f.codec.ContentType(), f.typeName, n, time.Since(start), err)
	return n, err
}

func (f *Framer[T]) encode(v *T, dst []byte) (int, error) {
	payload, err := f.marshal(v)
	if err != nil {
		return 0, err
	}

	if len(payload)+TrailerSize > f.capacity {
		return 0, newError(KindCapacityExceeded,
			fmt.Errorf("payload of %d bytes plus %d byte trailer exceeds capacity %d", len(payload), TrailerSize, f.capacity))
	}
	payload = appendTrailer(f.checksum, payload)

	if len(dst) == 0 {
		return 0, newError(KindCapacityExceeded, cobs.ErrShortBuffer)
	}
	n, err := cobs.Encode(dst[:len(dst)-1], payload)
	if err != nil {
		return 0, newError(KindCapacityExceeded, err)
	}
	dst[n] = cobs.Delimiter
	return n + 1, nil
}

// marshal serializes v through its PayloadAppender override or the codec.
// The result is always safe to append the trailer to: it either lives in
// framer-owned scratch or has no spare capacity.
func (f *Framer[T]) marshal(v *T) ([]byte, error) {
	if a, ok := any(v).(PayloadAppender); ok && v != nil {
		scratch := make([]byte, 0, f.capacity)
		payload, err := a.AppendPayload(scratch)
		if err != nil {
			return nil, newError(KindPayloadEncode, err)
		}
		if !sameArray(payload, scratch) {
			payload = append(scratch, payload...)
		}
		return payload, nil
	}

	payload, err := f.codec.Marshal(v)
	if err != nil {
		return nil, newError(KindPayloadEncode, err)
	}
	return payload[:len(payload):len(payload)], nil
}

// sameArray reports whether payload starts at the first element of
// scratch's backing array.
func sameArray(payload, scratch []byte) bool {
	if cap(payload) == 0 || cap(scratch) == 0 {
		return cap(payload) == 0
	}
	return &payload[:1][0] == &scratch[:1][0]
}

// Decode unstuffs the frame at the start of src, parses its payload as T and
// verifies the checksum trailer. Bytes after the first 0x00 are ignored; a
// src without a terminator is treated as one whole frame.
//
// Failures are *Error values of kind KindCobsDecode, KindPayloadDecode or
// KindCRCInvalid. A frame too short to carry the 4-byte trailer is
// KindCobsDecode. No partial value is ever returned.
func (f *Framer[T]) Decode(ctx context.Context, src []byte) (*T, error) {
	if !f.target.emitsSignals() {
		obj, _, err := f.decode(src)
		return obj, err
	}

	start := time.Now()
	emitDecodeStart(ctx, f.codec.ContentType(), f.typeName)

	obj, size, err := f.decode(src)
	emitDecodeComplete(ctx, f.codec.ContentType(), f.typeName, size, time.Since(start), err)
	return obj, err
}

func (f *Framer[T]) decode(src []byte) (*T, int, error) {
	if i := bytes.IndexByte(src, cobs.Delimiter); i >= 0 {
		src = src[:i]
	}

	buf := make([]byte, f.capacity)
	n, err := cobs.Decode(buf, src)
	if err != nil {
		return nil, 0, newError(KindCobsDecode, err)
	}
	if n < TrailerSize {
		return nil, n, newError(KindCobsDecode,
			fmt.Errorf("frame of %d bytes is shorter than the %d byte trailer", n, TrailerSize))
	}

	payload, trailer := buf[:n-TrailerSize], buf[n-TrailerSize:n]

	var obj T
	if err := f.unmarshal(payload, &obj); err != nil {
		return nil, n, newError(KindPayloadDecode, err)
	}
	if !verifyTrailer(f.checksum, payload, trailer) {
		return nil, n, newError(KindCRCInvalid, nil)
	}
	return &obj, n, nil
}

// unmarshal parses payload through the PayloadUnmarshaler override or the codec.
func (f *Framer[T]) unmarshal(payload []byte, obj *T) error {
	if u, ok := any(obj).(PayloadUnmarshaler); ok {
		return u.UnmarshalPayload(payload)
	}
	return f.codec.Unmarshal(payload, obj)
}
