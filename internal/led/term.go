package led

import (
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/mutker/ledmeter/internal/errors"
	"github.com/fatih/color"
)

// termSink renders the strip as a row of colored blocks on the terminal.
// Useful for tuning the animation without hardware attached.
type termSink struct {
	out   io.Writer
	count int
}

func newTerm(count int) Sink {
	return &termSink{out: os.Stdout, count: count}
}

func (s *termSink) Count() int {
	return s.count
}

func (s *termSink) Write(frame Frame) error {
	errFactory := errors.New()

	if len(frame) != s.count {
		return errFactory.WithData(ErrFrameMissize, len(frame))
	}

	var b strings.Builder
	b.WriteByte('\r')
	for _, c := range frame {
		b.WriteString(color.RGB(int(c.R), int(c.G), int(c.B)).Sprint("██"))
	}

	if _, err := fmt.Fprint(s.out, b.String()); err != nil {
		return errFactory.Wrap(ErrWriteFailed, err)
	}

	return nil
}

func (s *termSink) Close() error {
	_, err := fmt.Fprintln(s.out)
	return err
}
