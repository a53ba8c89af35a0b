// Package yaml provides a YAML payload codec for framer.
package yaml

import (
	"github.com/zoobzio/framer"
	"gopkg.in/yaml.v3"
)

// yamlCodec implements framer.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
func New() framer.Codec {
	return &yamlCodec{}
}

// NewFramer returns a Framer whose payloads are YAML documents.
func NewFramer[T any](opts ...framer.Option) (*framer.Framer[T], error) {
	return framer.New[T](append([]framer.Option{framer.WithCodec(New())}, opts...)...)
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal decodes YAML data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
