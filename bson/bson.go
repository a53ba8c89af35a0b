// Package bson provides a BSON payload codec for framer.
//
// BSON documents carry their own length prefix and embed zero bytes freely;
// COBS stuffing makes them safe to frame.
package bson

import (
	"github.com/zoobzio/framer"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonCodec implements framer.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec. Values must be documents: structs or maps.
func New() framer.Codec {
	return &bsonCodec{}
}

// NewFramer returns a Framer whose payloads are BSON documents.
func NewFramer[T any](opts ...framer.Option) (*framer.Framer[T], error) {
	return framer.New[T](append([]framer.Option{framer.WithCodec(New())}, opts...)...)
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
