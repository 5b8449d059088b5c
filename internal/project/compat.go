package project

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
// A leading "v" is tolerated on either side.
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// GeneratedByNewer reports whether a project recorded as generated by
// recorded was produced by a newer generator than running. Unparsable
// versions (such as "dev" builds) never count as newer.
func GeneratedByNewer(recorded, running string) bool {
	if recorded == "" {
		return false
	}
	cmp, err := CompareVersions(recorded, running)
	return err == nil && cmp == 1
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
