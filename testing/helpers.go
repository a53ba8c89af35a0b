// Package testing provides test utilities for framer.
package testing

import (
	"bytes"
	"testing"

	"github.com/zoobzio/framer/cobs"
)

// Point is the two-field record used throughout framer tests.
type Point struct {
	X int32 `json:"x" xml:"x" yaml:"x" msgpack:"x" bson:"x"`
	Y int32 `json:"y" xml:"y" yaml:"y" msgpack:"y" bson:"y"`
}

// Reading is a fixed-shape telemetry record with nested and array fields.
// It is accepted by freestanding framers.
type Reading struct {
	Sensor  string   `json:"sensor" xml:"sensor" yaml:"sensor" msgpack:"sensor" bson:"sensor"`
	Seq     uint32   `json:"seq" xml:"seq" yaml:"seq" msgpack:"seq" bson:"seq"`
	Celsius float64  `json:"celsius" xml:"celsius" yaml:"celsius" msgpack:"celsius" bson:"celsius"`
	Samples [4]int16 `json:"samples" xml:"samples" yaml:"samples" msgpack:"samples" bson:"samples"`
	At      Point    `json:"at" xml:"at" yaml:"at" msgpack:"at" bson:"at"`
	Ok      bool     `json:"ok" xml:"ok" yaml:"ok" msgpack:"ok" bson:"ok"`
}

// Unstuff returns the raw payload-plus-trailer carried by frame.
// frame may include its terminator.
func Unstuff(tb testing.TB, frame []byte) []byte {
	tb.Helper()
	if i := bytes.IndexByte(frame, cobs.Delimiter); i >= 0 {
		frame = frame[:i]
	}
	raw := make([]byte, len(frame))
	n, err := cobs.Decode(raw, frame)
	if err != nil {
		tb.Fatalf("unstuff frame: %v", err)
	}
	return raw[:n]
}

// Restuff stuffs raw and appends the terminator, producing a frame.
func Restuff(tb testing.TB, raw []byte) []byte {
	tb.Helper()
	frame := make([]byte, cobs.MaxEncodedLen(len(raw))+1)
	n, err := cobs.Encode(frame, raw)
	if err != nil {
		tb.Fatalf("stuff frame: %v", err)
	}
	frame[n] = cobs.Delimiter
	return frame[:n+1]
}

// Corrupt returns a copy of frame whose unstuffed bytes have been changed
// by mutate and then stuffed again, so the result is always well-formed COBS.
func Corrupt(tb testing.TB, frame []byte, mutate func(raw []byte)) []byte {
	tb.Helper()
	raw := Unstuff(tb, frame)
	mutate(raw)
	return Restuff(tb, raw)
}

// FlipBit returns a mutation that inverts bit (0-7) of the byte at index i.
// Negative i counts from the end, so -1 is the last trailer byte.
func FlipBit(i int, bit uint) func(raw []byte) {
	return func(raw []byte) {
		at := i
		if at < 0 {
			at += len(raw)
		}
		raw[at] ^= 1 << bit
	}
}
