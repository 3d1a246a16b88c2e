// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/katalvlaran/distmv/matvec"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
)

// ms renders d in milliseconds with microsecond resolution.
func ms(d time.Duration) string {
	return fmt.Sprintf("%.3f ms", float64(d)/float64(time.Millisecond))
}

// Summary prints the root's view of a completed run: sizes, stage timings,
// the validation residual and a colored verdict.
func Summary(w io.Writer, res *matvec.Result) {
	fmt.Fprintf(w, "N=%d P=%d block=%d rows\n", res.Plan.N, res.Size, res.Plan.BlockSize)
	fmt.Fprintf(w, "  distribute  %s\n", ms(res.Timings.Distribute))
	fmt.Fprintf(w, "  compute     %s\n", ms(res.Timings.Compute))
	fmt.Fprintf(w, "  gather      %s\n", ms(res.Timings.Gather))
	fmt.Fprintf(w, "  total       %s\n", ms(res.Timings.Total))

	if res.Report == nil {
		okColor.Fprintln(w, "OK (not validated)")
		return
	}
	r := res.Report
	fmt.Fprintf(w, "  max abs error %g (tolerance %g, blas residual %g)\n", r.MaxAbsError, r.Tolerance, r.BLASResidual)
	if r.Diverged {
		warnColor.Fprintf(w, "WARNING: result diverges from the serial reference by %g\n", r.MaxAbsError)
		return
	}
	okColor.Fprintln(w, "OK")
}

// Failure prints err in red, naming the failed stage when known.
func Failure(w io.Writer, err error) {
	if stage, ok := matvec.FailedStage(err); ok {
		failColor.Fprintf(w, "FAILED in %s stage: %v\n", stage, err)
		return
	}
	failColor.Fprintf(w, "FAILED: %v\n", err)
}
