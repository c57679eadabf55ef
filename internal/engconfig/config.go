// Package engconfig holds the one environment-sensitive setting this
// engine has: where the precomputed TimeSumIndex artifact lives on disk.
package engconfig

import "os"

const defaultIndexPath = "timesum.db"

const indexPathEnvVar = "POTANIST_TIMESUM_INDEX"

var (
	loaded    bool
	indexPath string
)

// IndexPath returns the path to the TimeSumIndex artifact: the
// POTANIST_TIMESUM_INDEX environment variable if set, else the default
// relative path. Resolved once and cached; safe to call repeatedly.
func IndexPath() string {
	if loaded {
		return indexPath
	}
	indexPath = defaultIndexPath
	if p := os.Getenv(indexPathEnvVar); p != "" {
		indexPath = p
	}
	loaded = true
	return indexPath
}

// SetIndexPathForTest overrides the resolved path, bypassing the
// environment lookup. Intended for tests that need a temp-dir fixture.
func SetIndexPathForTest(path string) {
	indexPath = path
	loaded = true
}
