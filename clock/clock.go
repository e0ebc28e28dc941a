package clock

import "time"

//Clock - clock interface
type Clock interface {
	After(time.Duration) <-chan time.Time
	Now() time.Time
}

type clock struct{}

//After - return channel after some time
func (c *clock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

//Now - current time
func (c *clock) Now() time.Time {
	return time.Now()
}

//NewClock - new clock interface
func NewClock() Clock {
	return &clock{}
}
