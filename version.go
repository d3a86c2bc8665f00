// Package annotate is a range-annotation engine for plain text with a
// terminal editing surface.
//
// The core lives in two packages with no UI imports: annotation keeps the
// text and its bold/italic ranges, markup renders them as balanced
// <b>/<i> markup. The editor package wraps both in a Bubble Tea component,
// and markdown seeds a store from CommonMark emphasis.
package annotate

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// SemVer 2.0.0, without the leading `v`.
var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version returns the module version embedded from VERSION.
func Version() string { return strings.TrimSpace(embeddedVersion) }

// VersionTag is Version in git tag form, e.g. "v0.1.0". annotate-demo
// prints it for -version.
func VersionTag() string { return "v" + Version() }

func IsSemver(v string) bool { return semverRE.MatchString(strings.TrimSpace(v)) }
