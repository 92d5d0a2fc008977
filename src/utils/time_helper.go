package utils

import "time"

type TimeServiceInterface interface {
	WaitSeconds(seconds int64)
	WaitMilliseconds(milliseconds int64)
	GetNowUnix() int64
	GetNowDateTimeString() string
}

type TimeHelper struct {
}

func (t *TimeHelper) WaitMilliseconds(milliseconds int64) {
	time.Sleep(time.Millisecond * time.Duration(milliseconds))
}

func (t *TimeHelper) WaitSeconds(seconds int64) {
	time.Sleep(time.Second * time.Duration(seconds))
}

func (t *TimeHelper) GetNowUnix() int64 {
	return time.Now().Unix()
}

func (t *TimeHelper) GetNowDateTimeString() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

// GetClosedBarBoundary returns the open time of the currently forming
// bar; every bar opened at or after it is still incomplete.
func GetClosedBarBoundary(nowUnix int64, granularitySecs int64) int64 {
	return nowUnix - nowUnix%granularitySecs
}

// GetNextBarBoundary returns the first bar boundary strictly after now.
func GetNextBarBoundary(nowUnix int64, granularitySecs int64) int64 {
	return GetClosedBarBoundary(nowUnix, granularitySecs) + granularitySecs
}
