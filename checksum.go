package framer

import (
	"encoding/binary"
	"hash/crc32"
)

// TrailerSize is the length of the little-endian checksum trailer.
const TrailerSize = 4

// Checksum computes the 32-bit integrity value for a payload.
type Checksum interface {
	// Sum returns the checksum of payload.
	Sum(payload []byte) uint32
}

// crcChecksum implements Checksum over a crc32 table.
type crcChecksum struct {
	table *crc32.Table
}

// CRC32 returns a Checksum for the given algorithm.
// Unknown algorithms fall back to IEEE; validate with IsValidChecksumAlgo.
func CRC32(algo ChecksumAlgo) Checksum {
	switch algo {
	case ChecksumCastagnoli:
		return &crcChecksum{table: crc32.MakeTable(crc32.Castagnoli)}
	case ChecksumKoopman:
		return &crcChecksum{table: crc32.MakeTable(crc32.Koopman)}
	default:
		return &crcChecksum{table: crc32.IEEETable}
	}
}

func (c *crcChecksum) Sum(payload []byte) uint32 {
	return crc32.Checksum(payload, c.table)
}

// appendTrailer appends the little-endian checksum of payload to payload.
func appendTrailer(c Checksum, payload []byte) []byte {
	return binary.LittleEndian.AppendUint32(payload, c.Sum(payload))
}

// verifyTrailer reports whether trailer holds the checksum of payload.
func verifyTrailer(c Checksum, payload, trailer []byte) bool {
	return len(trailer) == TrailerSize && binary.LittleEndian.Uint32(trailer) == c.Sum(payload)
}

// builtinChecksums returns the default checksum registry.
func builtinChecksums() map[ChecksumAlgo]Checksum {
	return map[ChecksumAlgo]Checksum{
		ChecksumIEEE:       CRC32(ChecksumIEEE),
		ChecksumCastagnoli: CRC32(ChecksumCastagnoli),
		ChecksumKoopman:    CRC32(ChecksumKoopman),
	}
}
