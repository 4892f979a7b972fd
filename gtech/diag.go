// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gtech

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Severity is the level of a diagnostic.
type Severity int

const (
	SevIgnore Severity = iota
	SevRemark
	SevNote
	SevWarning
	SevError
	SevFatal
)

func (s Severity) String() string {
	switch s {
	case SevIgnore:
		return "ignore"
	case SevRemark:
		return "remark"
	case SevNote:
		return "note"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	case SevFatal:
		return "fatal"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// DiagID identifies the situation a diagnostic reports.
type DiagID int

const (
	ErrModuleHeader DiagID = iota
	ErrInputDeclaration
	ErrOutputDeclaration
	ErrWireDeclaration
	ErrParameter
	ErrLatch
	ErrGate
	ErrAssignment
	ErrAssignmentRHS
	ErrInstantiation
	ErrUndeclaredModule
	ErrUndeclaredPin
	ErrEndOfFile
	ErrStatement
	WrnUnresolvedDependency
	WrnDuplicateInstance
	WrnTopMismatch
	WrnUndrivenOutput
	NoteComment
	numDiagIDs
)

var diagDefs = [numDiagIDs]struct {
	sev    Severity
	format string
}{
	ErrModuleHeader:         {SevError, "cannot parse module header at %q"},
	ErrInputDeclaration:     {SevError, "cannot parse input declaration"},
	ErrOutputDeclaration:    {SevError, "cannot parse output declaration"},
	ErrWireDeclaration:      {SevError, "cannot parse wire declaration"},
	ErrParameter:            {SevError, "cannot parse parameter"},
	ErrLatch:                {SevError, "cannot parse latch statement"},
	ErrGate:                 {SevError, "cannot parse %s gate statement"},
	ErrAssignment:           {SevError, "cannot parse assignment"},
	ErrAssignmentRHS:        {SevError, "cannot parse right hand side of assignment to %s"},
	ErrInstantiation:        {SevError, "cannot parse instantiation of module %s"},
	ErrUndeclaredModule:     {SevError, "module %s is not declared"},
	ErrUndeclaredPin:        {SevError, "pin %s is not declared in module %s"},
	ErrEndOfFile:            {SevError, "unexpected end of file in module %s"},
	ErrStatement:            {SevError, "unexpected %q in module %s"},
	WrnUnresolvedDependency: {SevWarning, "%s depends on %s, which is never produced"},
	WrnDuplicateInstance:    {SevWarning, "instance %s is already defined, ignored"},
	WrnTopMismatch:          {SevWarning, "top module %s not found, using %s"},
	WrnUndrivenOutput:       {SevWarning, "output %s of module %s is not driven"},
	NoteComment:             {SevNote, "%s"}}

// Severity returns the severity of diagnostics with id.
func (id DiagID) Severity() Severity {
	return diagDefs[id].sev
}

// Format returns the format string of diagnostics with id.
func (id DiagID) Format() string {
	return diagDefs[id].format
}

// Diagnostic is a report of a situation encountered while reading.
type Diagnostic struct {
	ID   DiagID
	Line int // 0 if unknown
	Args []interface{}
}

func (d Diagnostic) Severity() Severity {
	return d.ID.Severity()
}

// Message returns the formatted message of d, without position and
// severity.
func (d Diagnostic) Message() string {
	return fmt.Sprintf(d.ID.Format(), d.Args...)
}

func (d Diagnostic) String() string {
	if d.Line == 0 {
		return fmt.Sprintf("%s: %s", d.Severity(), d.Message())
	}
	return fmt.Sprintf("line %d: %s: %s", d.Line, d.Severity(), d.Message())
}

// Diagnostics consumes diagnostics.
type Diagnostics interface {
	Report(d Diagnostic)
}

// Collector is a Diagnostics which keeps every diagnostic in memory.
type Collector struct {
	mu    sync.Mutex
	Diags []Diagnostic
}

func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Diags = append(c.Diags, d)
}

// Count returns the number of collected diagnostics with severity at
// least sev.
func (c *Collector) Count(sev Severity) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, d := range c.Diags {
		if d.Severity() >= sev {
			n++
		}
	}
	return n
}

// IDs returns the ids of the collected diagnostics in order.
func (c *Collector) IDs() []DiagID {
	c.mu.Lock()
	defer c.mu.Unlock()
	res := make([]DiagID, len(c.Diags))
	for i, d := range c.Diags {
		res[i] = d.ID
	}
	return res
}

// Printer is a Diagnostics which writes one line per diagnostic.
type Printer struct {
	w     io.Writer
	min   Severity
	color bool
}

// NewPrinter creates a printer writing to w the diagnostics of severity
// Warning or higher.  Severities are colored if w is a terminal.
func NewPrinter(w io.Writer) *Printer {
	p := &Printer{w: w, min: SevWarning}
	if f, ok := w.(*os.File); ok {
		p.color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return p
}

// SetColor forces coloring on or off.
func (p *Printer) SetColor(on bool) {
	p.color = on
}

// SetMin sets the least severity printed.
func (p *Printer) SetMin(sev Severity) {
	p.min = sev
}

var sevAttrs = map[Severity][]color.Attribute{
	SevRemark:  {color.FgCyan},
	SevNote:    {color.FgBlue},
	SevWarning: {color.FgYellow, color.Bold},
	SevError:   {color.FgRed, color.Bold},
	SevFatal:   {color.FgMagenta, color.Bold}}

func (p *Printer) Report(d Diagnostic) {
	sev := d.Severity()
	if sev < p.min || sev == SevIgnore {
		return
	}
	c := color.New(sevAttrs[sev]...)
	if p.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	if d.Line != 0 {
		fmt.Fprintf(p.w, "line %d: ", d.Line)
	}
	fmt.Fprintf(p.w, "%s: %s\n", c.Sprint(sev), d.Message())
}

type multi []Diagnostics

func (m multi) Report(d Diagnostic) {
	for _, x := range m {
		x.Report(d)
	}
}

// Tee returns a Diagnostics reporting to all of ds.
func Tee(ds ...Diagnostics) Diagnostics {
	return multi(ds)
}
