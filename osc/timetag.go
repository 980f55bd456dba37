package osc

import (
	"math"
	"time"
)

// secondsFrom1900To1970 offsets the OSC epoch (1900-01-01) to the Unix
// epoch, as in NTP.
const secondsFrom1900To1970 = 2208988800

// Immediate is the reserved time tag raw value 1, meaning "execute as
// soon as possible".
const Immediate Timetag = 1

// Timetag represents an OSC time tag: a 64-bit fixed point value whose
// high 32 bits count seconds since midnight January 1, 1900 and whose
// low 32 bits hold the fractional second, to a precision of about 200
// picoseconds. This is the representation used by NTP timestamps. The
// zero value marks a time that has not been set.
type Timetag uint64

// TimetagFromSeconds converts floating-point seconds since the 1900
// epoch to a time tag. A value that would encode as raw zero becomes
// Immediate.
func TimetagFromSeconds(secs float64) Timetag {
	whole, frac := math.Modf(secs)
	raw := uint64(whole)<<32 + uint64(frac*(1<<32))&0xffffffff
	if raw == 0 {
		return Immediate
	}
	return Timetag(raw)
}

// TimetagFromTime converts a time.Time to a time tag.
func TimetagFromTime(ts time.Time) Timetag {
	secs := uint64(ts.Unix() + secondsFrom1900To1970)
	frac := uint64(ts.Nanosecond()) << 32 / 1e9
	raw := secs<<32 + frac
	if raw == 0 {
		return Immediate
	}
	return Timetag(raw)
}

// Now returns the current wall-clock time as a time tag.
func Now() Timetag {
	return TimetagFromTime(time.Now())
}

// Seconds returns the tag as floating-point seconds since the 1900
// epoch.
func (t Timetag) Seconds() float64 {
	return float64(t) / (1 << 32)
}

// Time converts the tag to a time.Time.
func (t Timetag) Time() time.Time {
	secs := int64(t>>32) - secondsFrom1900To1970
	nsec := int64(t&0xffffffff) * 1e9 >> 32
	return time.Unix(secs, nsec)
}

// SecondsSinceEpoch returns the high 32 bits: whole seconds since the
// 1900 epoch.
func (t Timetag) SecondsSinceEpoch() uint32 {
	return uint32(t >> 32)
}

// FractionalSecond returns the low 32 bits: the fractional part of a
// second.
func (t Timetag) FractionalSecond() uint32 {
	return uint32(t)
}

// wire returns the raw value placed on the wire. An unset tag encodes
// as Immediate so that encoding stays deterministic.
func (t Timetag) wire() Timetag {
	if t == 0 {
		return Immediate
	}
	return t
}
