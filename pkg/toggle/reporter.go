package toggle

import (
	"fmt"
	"io"
)

type WriterReporter struct {
	W io.Writer
}

func (r WriterReporter) Report(idx int, _ Layout) error {
	if _, err := fmt.Fprintf(r.W, "%d\n", idx); err != nil {
		return fmt.Errorf("report index: %w", err)
	}
	return nil
}

// MultiReporter calls each reporter in order and stops at the first error.
type MultiReporter []Reporter

func (m MultiReporter) Report(idx int, layout Layout) error {
	for _, r := range m {
		if err := r.Report(idx, layout); err != nil {
			return err
		}
	}
	return nil
}
