package service

import (
	"cmp"
	"regexp"
	"strconv"
)

// versionPattern extracts the leading major.minor pair of an app version.
var versionPattern = regexp.MustCompile(`^\s*v?(\d+)(?:\.(\d+))?`)

// CompareVersions orders app versions by (major, minor). Segments that do not
// parse count as 0 and a nil version sorts below every non-nil one, "0.0"
// included. Patch and later segments are ignored.
func CompareVersions(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	aMajor, aMinor := parseVersion(*a)
	bMajor, bMinor := parseVersion(*b)
	if c := cmp.Compare(aMajor, bMajor); c != 0 {
		return c
	}
	return cmp.Compare(aMinor, bMinor)
}

func parseVersion(v string) (major, minor int) {
	m := versionPattern.FindStringSubmatch(v)
	if m == nil {
		return 0, 0
	}
	major, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		minor, _ = strconv.Atoi(m[2])
	}
	return major, minor
}
