package version

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	goVersion "github.com/hashicorp/go-version"
)

const (
	unknownVersion  = "<unknown>"
	cliVersionTitle = "modulus"
)

// Get the value of this variables at build time.
// See magefile for more details.
var (
	gitTag       string
	gitCommit    string
	versionLabel string
)

// buildVersion returns normalized version from the build tag with an optional
// label: "1.2.0", "1.2.0/dev" or "<unknown>" for untagged builds.
func buildVersion() string {
	if gitTag == "" {
		return unknownVersion
	}

	version := gitTag
	if normalizedVersion, err := goVersion.NewVersion(gitTag); err == nil {
		segments := make([]string, 0, len(normalizedVersion.Segments()))
		for _, num := range normalizedVersion.Segments() {
			segments = append(segments, strconv.Itoa(num))
		}
		version = strings.Join(segments, ".")
	}
	if versionLabel != "" {
		version = fmt.Sprintf("%s/%s", version, versionLabel)
	}
	return version
}

// GetVersion returns modulus version info. Short form is the version only,
// needCommit appends the commit hash to it. The full form is
// "modulus 1.2.0 (linux/amd64, commit abc123)".
func GetVersion(showShort bool, needCommit bool) string {
	version := buildVersion()

	if needCommit {
		if gitCommit == "" {
			return version
		}
		return fmt.Sprintf("%s.%s", version, gitCommit)
	}
	if showShort {
		return version
	}

	details := []string{runtime.GOOS + "/" + runtime.GOARCH}
	if gitCommit != "" {
		details = append(details, "commit "+gitCommit)
	}
	return fmt.Sprintf("%s %s (%s)", cliVersionTitle, version, strings.Join(details, ", "))
}
