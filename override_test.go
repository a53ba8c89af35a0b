package framer_test

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/zoobzio/framer"
	framertest "github.com/zoobzio/framer/testing"
)

// appendPoint writes its JSON by hand instead of through the codec.
type appendPoint struct {
	X, Y int32
}

func (p *appendPoint) AppendPayload(dst []byte) ([]byte, error) {
	dst = append(dst, `{"x":`...)
	dst = strconv.AppendInt(dst, int64(p.X), 10)
	dst = append(dst, `,"y":`...)
	dst = strconv.AppendInt(dst, int64(p.Y), 10)
	return append(dst, '}'), nil
}

func TestPayloadAppender_MatchesCodec(t *testing.T) {
	f := newFramer[appendPoint](t)

	frame := encode(t, f, &appendPoint{X: 10, Y: 10})
	if !bytes.Equal(frame, goldenPoint) {
		t.Errorf("Encode() = %x, want %x", frame, goldenPoint)
	}

	// a codec-backed framer reads it back
	pf := newFramer[framertest.Point](t)
	got, err := pf.Decode(context.Background(), frame)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if *got != (framertest.Point{X: 10, Y: 10}) {
		t.Errorf("Decode() = %+v, want {X:10 Y:10}", *got)
	}
}

// greedy appends more than any reasonable capacity.
type greedy struct{}

func (g *greedy) AppendPayload(dst []byte) ([]byte, error) {
	return append(dst, bytes.Repeat([]byte{'7'}, 100)...), nil
}

// failing reports an error from its appender.
type failing struct{}

var errRefused = errors.New("refused")

func (f *failing) AppendPayload(dst []byte) ([]byte, error) {
	return dst, errRefused
}

func TestPayloadAppender_Errors(t *testing.T) {
	buf := make([]byte, 256)

	g := newFramer[greedy](t, framer.WithCapacity(32))
	if _, err := g.Encode(context.Background(), &greedy{}, buf); !errors.Is(err, framer.ErrCapacityExceeded) {
		t.Errorf("Encode(greedy) error = %v, want ErrCapacityExceeded", err)
	}

	f := newFramer[failing](t)
	_, err := f.Encode(context.Background(), &failing{}, buf)
	if !errors.Is(err, framer.ErrPayloadEncode) {
		t.Errorf("Encode(failing) error = %v, want ErrPayloadEncode", err)
	}
	var fe *framer.Error
	if !errors.As(err, &fe) || !errors.Is(fe.Cause, errRefused) {
		t.Errorf("Encode(failing) cause = %v, want errRefused", err)
	}
}

// digits decodes a bare JSON integer without the codec.
type digits struct {
	N     int
	calls int
}

func (d *digits) UnmarshalPayload(data []byte) error {
	d.calls++
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return err
	}
	d.N = n
	return nil
}

func TestPayloadUnmarshaler(t *testing.T) {
	f := newFramer[digits](t)

	frame := framertest.Restuff(t, appendCRC([]byte("1234")))
	got, err := f.Decode(context.Background(), frame)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if got.N != 1234 || got.calls != 1 {
		t.Errorf("Decode() = %+v, want N=1234 after one call", *got)
	}

	bad := framertest.Restuff(t, appendCRC([]byte("12a4")))
	if _, err := f.Decode(context.Background(), bad); !errors.Is(err, framer.ErrPayloadDecode) {
		t.Errorf("Decode(bad) error = %v, want ErrPayloadDecode", err)
	}
}

// borrowed returns a prefix of its own buffer instead of appending to dst.
type borrowed struct {
	buf []byte
}

func (b *borrowed) AppendPayload(_ []byte) ([]byte, error) {
	return b.buf[:2], nil
}

func TestPayloadAppender_ForeignSliceUntouched(t *testing.T) {
	f := newFramer[borrowed](t)
	v := &borrowed{buf: []byte("{}XXXX")}

	frame := encode(t, f, v)
	if string(v.buf) != "{}XXXX" {
		t.Errorf("Encode() wrote into the appender's buffer: %q", v.buf)
	}

	raw := framertest.Unstuff(t, frame)
	if want := appendCRC([]byte("{}")); !bytes.Equal(raw, want) {
		t.Errorf("unstuffed frame = %x, want %x", raw, want)
	}
}

// spareCodec returns JSON from a shared buffer that has room to spare.
type spareCodec struct {
	buf []byte
}

func (c *spareCodec) ContentType() string { return "application/json" }

func (c *spareCodec) Marshal(_ any) ([]byte, error) {
	return c.buf[:2], nil
}

func (c *spareCodec) Unmarshal(data []byte, v any) error {
	return framer.JSON().Unmarshal(data, v)
}

func TestCodec_SpareCapacityUntouched(t *testing.T) {
	c := &spareCodec{buf: []byte("{}XXXX")}
	f := newFramer[framertest.Point](t, framer.WithCodec(c))

	encode(t, f, &framertest.Point{})
	if string(c.buf) != "{}XXXX" {
		t.Errorf("Encode() wrote into the codec's buffer: %q", c.buf)
	}
}
