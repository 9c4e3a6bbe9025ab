package inter

import "time"

// Timestamp is a consensus time value with nanosecond precision.
// It is a plain uint64 so it can be compared and serialized cheaply.
type Timestamp uint64

// Time converts the consensus timestamp into a standard library time.Time.
func (t Timestamp) Time() time.Time {
	return time.Unix(0, int64(t))
}

// FromUnixNano converts a standard library nanosecond timestamp.
func FromUnixNano(nano int64) Timestamp {
	return Timestamp(nano)
}

// MaxTimestamp returns the later of two timestamps.
func MaxTimestamp(x, y Timestamp) Timestamp {
	if x > y {
		return x
	}
	return y
}
