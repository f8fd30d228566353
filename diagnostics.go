package dodeca

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

var (
	ErrMalformedFace      = errors.New("face does not have 5 vertices")
	ErrMalformedTriangle  = errors.New("incomplete triangle")
	ErrIndexOutOfBounds   = errors.New("index out of bounds")
	ErrDegenerateTriangle = errors.New("degenerate triangle")
	ErrUnreferencedVertex = errors.New("vertex not referenced by any triangle")
	ErrCancelledNormal    = errors.New("face normals cancel out")
)

type Severity int

const (
	SeverityNotice Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityNotice:
		return "notice"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// Diagnostic is an advisory record of something skipped while building a mesh.
type Diagnostic struct {
	Severity Severity
	Err      error
}

func (d Diagnostic) String() string {
	return d.Severity.String() + ": " + d.Err.Error()
}

type Diagnostics []Diagnostic

// Errors returns the number of error-level entries.
func (ds Diagnostics) Errors() int {
	n := 0
	for _, d := range ds {
		if d.Severity == SeverityError {
			n++
		}
	}
	return n
}

// Notices returns the number of notice-level entries.
func (ds Diagnostics) Notices() int {
	return len(ds) - ds.Errors()
}

// Is reports whether any entry wraps target.
func (ds Diagnostics) Is(target error) bool {
	for _, d := range ds {
		if errors.Is(d.Err, target) {
			return true
		}
	}
	return false
}

func (ds Diagnostics) Log(l *log.Logger) {
	for _, d := range ds {
		l.Println(d.String())
	}
}

var logger = log.New(os.Stderr, "", log.LstdFlags)

// SetLogger replaces the logger diagnostics are written to. A nil logger
// discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}

func (ds *Diagnostics) errorf(sentinel error, format string, args ...any) {
	ds.add(SeverityError, sentinel, format, args...)
}

func (ds *Diagnostics) noticef(sentinel error, format string, args ...any) {
	ds.add(SeverityNotice, sentinel, format, args...)
}

func (ds *Diagnostics) add(sev Severity, sentinel error, format string, args ...any) {
	d := Diagnostic{
		Severity: sev,
		Err:      fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...),
	}
	logger.Println(d.String())
	*ds = append(*ds, d)
}
