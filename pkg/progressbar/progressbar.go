// Package progressbar renders internal/search's Progress callback as a
// terminal bar, the way the teacher's corpus-ingestion pipeline rendered
// per-file progress.
package progressbar

import (
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"potanist/internal/search"
)

// New creates an mpb progress container with one bar labeled name, sized
// for total outer-loop iterations, and returns a search.Progress callback
// that drives it. Callers must invoke the returned stop function once the
// search completes so the container's render goroutine exits cleanly.
func New(name string, total int) (progress search.Progress, stop func()) {
	p := mpb.New(mpb.WithWidth(80))
	bar := p.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(name+": "),
			decor.Percentage(decor.WCSyncSpace),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.AverageETA(decor.ET_STYLE_GO), "done!"),
		),
	)

	lastDone := 0
	progress = func(done, _ int) {
		bar.IncrBy(done - lastDone)
		lastDone = done
	}
	stop = p.Wait
	return progress, stop
}
