package iomatch

import (
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/mattn/go-isatty"
)

// newProgressBar creates a progress bar if stderr is a terminal,
// otherwise it returns nil.
func newProgressBar(
	total int,
	prefix string,
) *pb.ProgressBar {
	fd := os.Stderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return nil
	}
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}

func increment(bar *pb.ProgressBar) {
	if bar != nil {
		bar.Increment()
	}
}
