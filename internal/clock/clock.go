// Package clock formats wall-clock time for the BCD face.
package clock

import (
	"fmt"
	"time"
)

// Layouts for the two hour modes. Both yield exactly six digits.
const (
	Layout24 = "15:04:05"
	Layout12 = "03:04:05 PM"
)

// In returns t in local civil time or UTC.
func In(t time.Time, local bool) time.Time {
	if local {
		return t.Local()
	}
	return t.UTC()
}

// Format renders t for display in the given hour mode and timezone.
func Format(t time.Time, hour24, local bool) string {
	layout := Layout24
	if !hour24 {
		layout = Layout12
	}
	return In(t, local).Format(layout)
}

// Zone returns the timezone label shown in the title: the local zone
// abbreviation (e.g. "CEST") or "UTC".
func Zone(t time.Time, local bool) string {
	if !local {
		return "UTC"
	}
	name, _ := t.Local().Zone()
	return name
}

// HourLabel returns "24h" or "12h".
func HourLabel(hour24 bool) string {
	if hour24 {
		return "24h"
	}
	return "12h"
}

// Title builds the window title, e.g. "BCD Clock (24h CEST)".
func Title(t time.Time, hour24, local bool) string {
	return fmt.Sprintf("BCD Clock (%s %s)", HourLabel(hour24), Zone(t, local))
}
