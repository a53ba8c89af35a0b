package framer

// Target selects the environment a framer is built for.
// Use these constants with WithTarget.
type Target string

const (
	// TargetHosted emits lifecycle signals and accepts any value shape
	// the codec can carry.
	TargetHosted Target = "hosted"

	// TargetFreestanding emits no signals and rejects heap-backed containers:
	// no slices, maps, or pointers. Strings are accepted, so the payload is
	// bounded only by the capacity check at Encode.
	TargetFreestanding Target = "freestanding"
)

// ChecksumAlgo represents a supported CRC-32 polynomial.
// Encoder and decoder must use the same one.
type ChecksumAlgo string

const (
	// ChecksumIEEE uses the IEEE polynomial. This is the wire default.
	ChecksumIEEE ChecksumAlgo = "crc32-ieee"

	// ChecksumCastagnoli uses the Castagnoli (CRC-32C) polynomial.
	ChecksumCastagnoli ChecksumAlgo = "crc32c"

	// ChecksumKoopman uses the Koopman polynomial.
	ChecksumKoopman ChecksumAlgo = "crc32k"
)

// validTargets contains all valid targets for option validation.
var validTargets = map[Target]bool{
	TargetHosted:       true,
	TargetFreestanding: true,
}

// validChecksumAlgos contains all valid checksum algorithms for option validation.
var validChecksumAlgos = map[ChecksumAlgo]bool{
	ChecksumIEEE:       true,
	ChecksumCastagnoli: true,
	ChecksumKoopman:    true,
}

// IsValidTarget returns true if t is a known target environment.
func IsValidTarget(t Target) bool {
	return validTargets[t]
}

// IsValidChecksumAlgo returns true if the algorithm is a known checksum algorithm.
func IsValidChecksumAlgo(algo ChecksumAlgo) bool {
	return validChecksumAlgos[algo]
}

// emitsSignals reports whether framers for t publish capitan events.
func (t Target) emitsSignals() bool {
	return t == TargetHosted
}

// fixedShape reports whether t rejects dynamically sized fields.
func (t Target) fixedShape() bool {
	return t == TargetFreestanding
}
