package semver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidVersion = errors.New("invalid version")

// SemanticVersion keeps its components as raw text: only the component
// being incremented is ever parsed as an integer, the others are passed
// through verbatim.
type SemanticVersion struct {
	Major string
	Minor string
	Patch string
}

// Parse accepts versions of the form [v]MAJOR.MINOR.PATCH. Every "v" in
// the input is stripped, not just a leading prefix.
func Parse(version string) (SemanticVersion, error) {
	version = strings.TrimSpace(version)
	version = strings.ReplaceAll(version, "v", "")

	tokens := strings.Split(version, ".")
	if len(tokens) != 3 {
		return SemanticVersion{}, fmt.Errorf("%w: expected MAJOR.MINOR.PATCH, got %q", ErrInvalidVersion, version)
	}

	return SemanticVersion{Major: tokens[0], Minor: tokens[1], Patch: tokens[2]}, nil
}

// String always carries the leading "v", whether or not the parsed
// input had one.
func (s SemanticVersion) String() string {
	return "v" + s.Major + "." + s.Minor + "." + s.Patch
}

func (s SemanticVersion) IncrementMajor() (SemanticVersion, error) {
	major, err := increment(s.Major)
	if err != nil {
		return SemanticVersion{}, fmt.Errorf("major: %w", err)
	}

	return SemanticVersion{Major: major, Minor: s.Minor, Patch: s.Patch}, nil
}

func (s SemanticVersion) IncrementMinor() (SemanticVersion, error) {
	minor, err := increment(s.Minor)
	if err != nil {
		return SemanticVersion{}, fmt.Errorf("minor: %w", err)
	}

	return SemanticVersion{Major: s.Major, Minor: minor, Patch: s.Patch}, nil
}

func (s SemanticVersion) IncrementPatch() (SemanticVersion, error) {
	patch, err := increment(s.Patch)
	if err != nil {
		return SemanticVersion{}, fmt.Errorf("patch: %w", err)
	}

	return SemanticVersion{Major: s.Major, Minor: s.Minor, Patch: patch}, nil
}

func increment(component string) (string, error) {
	n, err := strconv.Atoi(component)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a number", ErrInvalidVersion, component)
	}

	return strconv.Itoa(n + 1), nil
}
