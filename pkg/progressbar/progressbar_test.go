package progressbar

import (
	"testing"

	"potanist/internal/search"
)

func TestNewDrivesProgressToCompletion(t *testing.T) {
	const total = 10

	progress, stop := New("test", total)

	var p search.Progress = progress
	for done := 1; done <= total; done++ {
		p(done, total)
	}
	stop()
}
