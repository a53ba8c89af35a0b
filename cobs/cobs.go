// Package cobs implements Consistent Overhead Byte Stuffing.
//
// Encoded output never contains 0x00, so a single zero byte can delimit
// frames on a byte stream. Both directions write into caller-supplied
// buffers and never allocate.
package cobs

import "errors"

// Delimiter is the byte that terminates a stuffed frame on the wire.
const Delimiter byte = 0x00

// maxBlock is the largest code value; a block of that code carries 254
// data bytes and no implied zero.
const maxBlock = 0xFF

var (
	// ErrShortBuffer indicates the destination cannot hold the result.
	ErrShortBuffer = errors.New("cobs: short buffer")

	// ErrZeroByte indicates a delimiter byte inside a frame body.
	ErrZeroByte = errors.New("cobs: unexpected zero byte")

	// ErrTruncated indicates a code byte that points past the end of the frame.
	ErrTruncated = errors.New("cobs: frame truncated")
)

// MaxEncodedLen returns the worst-case stuffed length of n input bytes,
// excluding the delimiter.
func MaxEncodedLen(n int) int {
	return n + n/254 + 1
}

// Encode stuffs src into dst and returns the number of bytes written.
// The delimiter is not written.
func Encode(dst, src []byte) (int, error) {
	if len(dst) < 1 {
		return 0, ErrShortBuffer
	}

	codeIdx := 0
	code := byte(1)
	w := 1

	for i, b := range src {
		if b != 0 {
			if w >= len(dst) {
				return 0, ErrShortBuffer
			}
			dst[w] = b
			w++
			code++
			if code != maxBlock {
				continue
			}
			// Full block. Only open another one if data remains.
			if i == len(src)-1 {
				break
			}
		}

		dst[codeIdx] = code
		if w >= len(dst) {
			return 0, ErrShortBuffer
		}
		codeIdx = w
		w++
		code = 1
	}

	dst[codeIdx] = code
	return w, nil
}

// Decode unstuffs src into dst and returns the number of bytes written.
// src must not include the delimiter.
func Decode(dst, src []byte) (int, error) {
	w := 0
	for i := 0; i < len(src); {
		code := src[i]
		if code == Delimiter {
			return 0, ErrZeroByte
		}
		i++

		n := int(code) - 1
		if i+n > len(src) {
			return 0, ErrTruncated
		}
		if w+n > len(dst) {
			return 0, ErrShortBuffer
		}
		for _, b := range src[i : i+n] {
			if b == Delimiter {
				return 0, ErrZeroByte
			}
		}
		w += copy(dst[w:], src[i:i+n])
		i += n

		if code != maxBlock && i < len(src) {
			if w >= len(dst) {
				return 0, ErrShortBuffer
			}
			dst[w] = 0
			w++
		}
	}
	return w, nil
}
