package timeutil

import "time"

func NowUnix() int64 {
	return time.Now().Unix()
}

// NowUnixMilli is used for entity timestamps, where second precision
// is too coarse to keep newest-first ordering stable.
func NowUnixMilli() int64 {
	return time.Now().UnixMilli()
}
