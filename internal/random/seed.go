// Package random provides seed helpers for dice rolls.
//
// It uses crypto/rand to generate high-entropy seeds and math/rand to turn a
// seed into a deterministic face source, so any roll can be replayed from the
// seed it reports.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/narrative.dice/internal/platform/errors"
)

// Seed sources reported alongside a resolved seed.
const (
	SeedSourceServer = "server"
	SeedSourceClient = "client"
)

var errSeedOutOfRange = apperrors.New(apperrors.CodeSeedOutOfRange, "seed must fit in a signed 64-bit integer")

// ErrSeedOutOfRange returns the error reported for seeds above math.MaxInt64.
func ErrSeedOutOfRange() error {
	return errSeedOutOfRange
}

// ParseSeed reads an optional decimal seed. A blank value means no seed was
// requested and returns nil. Values that are not unsigned integers are
// SEED_INVALID and values above math.MaxInt64 are SEED_OUT_OF_RANGE.
func ParseSeed(value string) (*uint64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	seed, err := strconv.ParseUint(value, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return nil, apperrors.Wrap(apperrors.CodeSeedOutOfRange, "parse seed", err)
	}
	if err != nil {
		invalid := apperrors.WithMetadata(apperrors.CodeSeedInvalid,
			fmt.Sprintf("parse seed %q", value),
			map[string]string{"seed": value})
		invalid.Cause = err
		return nil, invalid
	}
	if seed > math.MaxInt64 {
		return nil, errSeedOutOfRange
	}
	return &seed, nil
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// ResolveSeed picks the seed for a roll. A requested seed wins and is
// reported as a client seed; otherwise generate supplies a server seed.
func ResolveSeed(requested *uint64, generate func() (int64, error)) (int64, string, error) {
	if requested != nil {
		if *requested > math.MaxInt64 {
			return 0, "", errSeedOutOfRange
		}
		return int64(*requested), SeedSourceClient, nil
	}
	if generate == nil {
		generate = NewSeed
	}
	seed, err := generate()
	if err != nil {
		return 0, "", fmt.Errorf("generate seed: %w", err)
	}
	return seed, SeedSourceServer, nil
}

// NewSource returns a deterministic face source for seed. The source is not
// safe for concurrent use.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
