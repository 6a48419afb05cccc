// Package stamp builds sortable destination filenames from the current moment.
package stamp

import (
	"fmt"
	"strings"
	"time"
)

// Layout is YYYY MON DD T HH MM SS. The month abbreviation is uppercased.
const Layout = "2006Jan02T150405"

// DefaultExt is used when Build is called with an empty extension.
const DefaultExt = "jpg"

var processStart = time.Now()

// Generator produces names of the form 2019SEP21T1030450123.jpg: the
// timestamp, then the process CPU time formatted to 3 decimals with the dot
// removed, then the extension.
//
// Two calls in the same wall-clock second with the same CPU-time fraction
// produce the same name.
type Generator struct {
	now func() time.Time
	cpu func() time.Duration
}

func New() *Generator {
	return &Generator{
		now: time.Now,
		cpu: processCPUTime,
	}
}

// NewWithSources is New with an injected wall clock and CPU-time source.
func NewWithSources(now func() time.Time, cpu func() time.Duration) *Generator {
	return &Generator{now: now, cpu: cpu}
}

// Build returns a name based on the current time.
func (g *Generator) Build(ext string) string {
	return g.BuildAt(g.now(), ext)
}

// BuildAt returns a name based on t instead of the current time.
func (g *Generator) BuildAt(t time.Time, ext string) string {
	if ext == "" {
		ext = DefaultExt
	}
	ext = strings.TrimPrefix(ext, ".")

	ts := strings.ToUpper(t.Format(Layout))
	return ts + Fraction(g.cpu()) + "." + ext
}

// Fraction formats d as seconds with 3 decimals and drops the decimal point,
// e.g. 12.3456s -> "12346".
func Fraction(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return strings.Replace(fmt.Sprintf("%.3f", d.Seconds()), ".", "", 1)
}
