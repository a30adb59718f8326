// Package bcabi validates the LLVM version range a bitcode stream declares
// itself compatible with, the way the package manager
// (cmd/orizon/pkg/commands/outdated.go) validates a dependency version
// against a semver constraint.
package bcabi

import (
	semver "github.com/Masterminds/semver/v3"

	"github.com/orizon-lang/orizon-bc/internal/bcerrors"
)

// TargetRange wraps a semver constraint over the LLVM release that
// produced bitcode of a given epoch is expected to be readable by. The
// writer doesn't encode the LLVM version on the wire beyond the
// IDENTIFICATION_BLOCK epoch counter, so TargetRange lets a caller gate
// emission on its own declared compatibility policy before any bytes are
// written.
type TargetRange struct {
	constraint *semver.Constraints
	raw        string
}

// ParseTargetRange parses a semver constraint such as ">=14, <19".
func ParseTargetRange(constraint string) (*TargetRange, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, err
	}

	return &TargetRange{constraint: c, raw: constraint}, nil
}

// String returns the original constraint text.
func (t *TargetRange) String() string { return t.raw }

// Check reports whether version satisfies the range.
func (t *TargetRange) Check(version string) (bool, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false, err
	}

	return t.constraint.Check(v), nil
}

// RequireInRange panics with a *bcerrors.Violation if version does not
// satisfy the range. It is meant to be called once, before entering the
// IDENTIFICATION_BLOCK, so an out-of-range target is reported cleanly at
// the CLI boundary rather than partway through an emitted stream.
func (t *TargetRange) RequireInRange(version string) {
	ok, err := t.Check(version)
	if err != nil {
		bcerrors.Panic(bcerrors.CategoryEncoding, "INVALID_TARGET_VERSION", err.Error(), map[string]interface{}{"version": version})
	}

	if !ok {
		bcerrors.Panic(bcerrors.CategoryEncoding, "TARGET_OUT_OF_RANGE", "target LLVM version is not within the declared compatibility range", map[string]interface{}{"version": version, "range": t.raw})
	}
}
