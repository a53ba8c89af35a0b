package xml

import (
	"context"
	"errors"
	"testing"

	"github.com/zoobzio/framer"
)

type point struct {
	X int32 `xml:"x"`
	Y int32 `xml:"y"`
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/xml" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/xml")
	}
}

func TestMarshal(t *testing.T) {
	c := New()

	data, err := c.Marshal(point{X: 10, Y: 10})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	want := "<point><x>10</x><y>10</y></point>"
	if string(data) != want {
		t.Errorf("Marshal() = %q, want %q", data, want)
	}
}

func TestUnmarshal_MalformedXML(t *testing.T) {
	c := New()

	testCases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"unclosed tag", "<point><x>1</point>"},
		{"mismatched tags", "<point></wrong>"},
		{"unclosed element", "<point><x>"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var v point
			if err := c.Unmarshal([]byte(tc.input), &v); err == nil {
				t.Errorf("Unmarshal(%q) should return error", tc.input)
			}
		})
	}
}

func TestNewFramer_RoundTrip(t *testing.T) {
	f, err := NewFramer[point](framer.WithTarget(framer.TargetFreestanding))
	if err != nil {
		t.Fatalf("NewFramer() error: %v", err)
	}

	in := point{X: -3, Y: 99}
	buf := make([]byte, f.MaxFrameLen())

	n, err := f.Encode(context.Background(), &in, buf)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	out, err := f.Decode(context.Background(), buf[:n])
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if *out != in {
		t.Errorf("Decode() = %+v, want %+v", *out, in)
	}
}

func TestNewFramer_NilEncodesEmptyPayload(t *testing.T) {
	f, err := NewFramer[point]()
	if err != nil {
		t.Fatalf("NewFramer() error: %v", err)
	}

	buf := make([]byte, f.MaxFrameLen())
	n, err := f.Encode(context.Background(), nil, buf)
	if err != nil {
		t.Fatalf("Encode(nil) error: %v", err)
	}

	// An empty XML document frames fine but cannot be decoded as a point.
	if _, err := f.Decode(context.Background(), buf[:n]); !errors.Is(err, framer.ErrPayloadDecode) {
		t.Errorf("Decode() error = %v, want ErrPayloadDecode", err)
	}
}
