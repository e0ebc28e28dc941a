package tasks

import (
	"sync"

	"golang.org/x/net/context"
)

type task struct {
	cancel context.CancelFunc
	done   chan<- struct{}
	wg     sync.WaitGroup
	once   sync.Once
	mutex  sync.Mutex
	errs   []error
}

// Go - invoke a goroutine to run
// execution function needs to return after context.Done signal
func (t *task) Go(exec executionFunction) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		if err := exec(); nil != err {
			t.mutex.Lock()
			t.errs = append(t.errs, err)
			t.mutex.Unlock()
		}
	}()
}

// Done - cancel all goroutines, wait them to finish, and notify done
func (t *task) Done() []error {
	t.once.Do(func() {
		t.cancel()
		t.wg.Wait()
		t.done <- struct{}{}
	})

	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.errs
}

// NewTasks - create instance for Tasks interface
// done is used to notify that all goroutines are terminated
// cancel is used to send signal to all running goroutines
func NewTasks(done chan<- struct{}, cancel context.CancelFunc) Tasks {
	return &task{
		cancel: cancel,
		done:   done,
	}
}
