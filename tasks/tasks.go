package tasks

type executionFunction func() error

// Tasks - interface for Task to run
// Expect to receive signal from done channel when every goroutine finishes
// closing procedure, Done returns errors of finished goroutines
type Tasks interface {
	Go(executionFunction)
	Done() []error
}
