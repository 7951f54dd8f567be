// SPDX-License-Identifier: MIT

package epoch

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// New returns the Date (d1, d2) exactly as given.
func New(d1, d2 float64) Date {
	return Date{D1: d1, D2: d2}
}

// FromJD returns a Date holding a single-part Julian Date.
func FromJD(jd float64) Date {
	return Date{D1: jd, D2: 0}
}

// FromMJD returns the conventional (2400000.5, mjd) split.
func FromMJD(mjd float64) Date {
	return Date{D1: MJDZero, D2: mjd}
}

// FromTime converts the calendar reading of t into a Date split as
// (JD of 0h of the day, fraction of day). The time zone of t is honoured
// by converting to UTC first; the time scale label is the caller's.
//
// Stage 1 (Calendar): JD at 0h from the Gregorian calendar date.
// Stage 2 (Fraction): seconds since midnight / 86400, nanosecond resolution.
func FromTime(t time.Time) Date {
	t = t.UTC()
	jd0 := julian.CalendarGregorianToJD(t.Year(), int(t.Month()), float64(t.Day()))
	secs := float64(t.Hour()*3600+t.Minute()*60+t.Second()) + float64(t.Nanosecond())/1e9

	return Date{D1: jd0, D2: secs / SecondsPerDay}
}

// JD returns the single float64 Julian Date D1+D2 (precision is lost).
func (d Date) JD() float64 {
	return d.D1 + d.D2
}

// DaysSinceJ2000 returns the interval from J2000.0 in days,
// computed as (D1 - J2000) + D2 to preserve precision.
func (d Date) DaysSinceJ2000() float64 {
	return (d.D1 - J2000) + d.D2
}

// Centuries returns the interval from J2000.0 in Julian centuries.
func (d Date) Centuries() float64 {
	return ((d.D1 - J2000) + d.D2) / DaysPerCentury
}
