// SPDX-License-Identifier: MIT

// Package report formats run results for the console. In an SPMD program
// every participant runs the same reporting code; Printer keeps output to the
// root unless asked otherwise.
package report

import (
	"fmt"
	"io"

	"github.com/katalvlaran/distmv/comm"
)

// Printer writes on behalf of one participant.
type Printer struct {
	W  io.Writer
	ID comm.Identity
	// AllProcs makes Printf and Println print on every participant, with the
	// rank prefix, instead of only on the root.
	AllProcs bool
}

// NewPrinter returns a Printer for id writing to w.
func NewPrinter(w io.Writer, id comm.Identity) *Printer {
	return &Printer{W: w, ID: id}
}

// Printf prints only on the root (see AllProcs).
func (p *Printer) Printf(format string, args ...any) {
	if !p.AllProcs && !p.ID.IsRoot() {
		return
	}
	if !p.ID.IsRoot() {
		p.AllPrintf(format, args...)
		return
	}
	fmt.Fprintf(p.W, format, args...)
}

// AllPrintf prints on every participant, prefixed with "P<rank>: ".
func (p *Printer) AllPrintf(format string, args ...any) {
	fmt.Fprintf(p.W, fmt.Sprintf("P%d: ", p.ID.Rank)+format, args...)
}

// Println prints only on the root (see AllProcs).
func (p *Printer) Println(args ...any) {
	if !p.AllProcs && !p.ID.IsRoot() {
		return
	}
	if !p.ID.IsRoot() {
		p.AllPrintln(args...)
		return
	}
	fmt.Fprintln(p.W, args...)
}

// AllPrintln prints on every participant, prefixed with "P<rank>: ".
func (p *Printer) AllPrintln(args ...any) {
	all := make([]any, len(args)+1)
	all[0] = fmt.Sprintf("P%d:", p.ID.Rank)
	copy(all[1:], args)
	fmt.Fprintln(p.W, all...)
}
