package thumbnailserver

import "fmt"

// Semantic version of the server, set here and tagged on release.
const (
	major = 0
	minor = 1
	patch = 0
)

func StringVersion() string {
	return fmt.Sprintf("%d.%d.%d", major, minor, patch)
}
