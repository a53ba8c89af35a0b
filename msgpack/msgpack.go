// Package msgpack provides a MessagePack payload codec for framer.
package msgpack

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/framer"
)

// msgpackCodec implements framer.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
// Map keys are sorted and integers use their smallest encoding, so equal
// values always produce identical payloads.
func New() framer.Codec {
	return &msgpackCodec{}
}

// NewFramer returns a Framer whose payloads are MessagePack.
func NewFramer[T any](opts ...framer.Option) (*framer.Framer[T], error) {
	return framer.New[T](append([]framer.Option{framer.WithCodec(New())}, opts...)...)
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	enc.UseCompactInts(true)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
