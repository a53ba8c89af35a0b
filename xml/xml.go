// Package xml provides an XML payload codec for framer.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/framer"
)

// xmlCodec implements framer.Codec for XML.
type xmlCodec struct{}

// New returns an XML codec. Output has no declaration or indentation.
func New() framer.Codec {
	return &xmlCodec{}
}

// NewFramer returns a Framer whose payloads are XML elements.
func NewFramer[T any](opts ...framer.Option) (*framer.Framer[T], error) {
	return framer.New[T](append([]framer.Option{framer.WithCodec(New())}, opts...)...)
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

// Unmarshal decodes XML data into v.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
