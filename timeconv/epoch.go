package timeconv

import "time"

// EpochSeconds returns t as a count of seconds since the Unix epoch,
// 1970-01-01T00:00:00Z; instants before the epoch yield negative counts.
// The instant is used as-is, so a value constructed with the wrong Location
// yields a count shifted by that zone's offset.
func EpochSeconds(t time.Time) int64 {
	return t.Unix()
}

// FromEpochSecondsLocal returns the instant seconds after the Unix epoch,
// in the local zone.
func FromEpochSecondsLocal(seconds int64) time.Time {
	return time.Unix(seconds, 0)
}

// FromEpochSecondsUTC returns the instant seconds after the Unix epoch,
// in UTC.
func FromEpochSecondsUTC(seconds int64) time.Time {
	return time.Unix(seconds, 0).UTC()
}
