package framer

// Override interfaces let a type serialize itself instead of going through
// the configured Codec. When *T implements one, the Framer calls it directly.
//
// An appender writes into the framer's working buffer, so a type that
// implements PayloadAppender is encoded without the codec's allocations.
// The bytes produced must still be what the peer's codec expects: a type
// overriding a JSON framer must append JSON.

// PayloadAppender bypasses the codec on Encode.
type PayloadAppender interface {
	// AppendPayload appends the receiver's encoding to dst and returns the
	// extended slice. dst has zero length and the framer's capacity; growing
	// past that capacity is reported as ErrCapacityExceeded.
	AppendPayload(dst []byte) ([]byte, error)
}

// PayloadUnmarshaler bypasses the codec on Decode.
type PayloadUnmarshaler interface {
	// UnmarshalPayload decodes data into the receiver. data aliases the
	// framer's working buffer and must not be retained.
	UnmarshalPayload(data []byte) error
}
