package tasks_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jamieabc/stream-monitor/tasks"
	"github.com/stretchr/testify/assert"
)

func TestDone(t *testing.T) {
	done := make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())
	myTask := tasks.NewTasks(done, cancel)
	var wgGoroutineReady sync.WaitGroup
	wgGoroutineReady.Add(2)

	myTask.Go(func() error {
		wgGoroutineReady.Done()
		<-ctx.Done()
		return nil
	})

	myTask.Go(func() error {
		wgGoroutineReady.Done()
		<-ctx.Done()
		return nil
	})
	wgGoroutineReady.Wait()

	channelStartWaiting := make(chan struct{})
	channelReceivedSignal := make(chan struct{})

	go func(ch <-chan struct{}) {
		channelStartWaiting <- struct{}{}
		<-ch
		channelReceivedSignal <- struct{}{}
	}(done)

	<-channelStartWaiting
	errs := myTask.Done()
	<-channelReceivedSignal

	assert.Equal(t, 0, len(errs), "wrong errors")
}

func TestDoneWhenError(t *testing.T) {
	done := make(chan struct{}, 1)
	ctx, cancel := context.WithCancel(context.Background())
	myTask := tasks.NewTasks(done, cancel)
	expected := errors.New("source unavailable")

	myTask.Go(func() error {
		<-ctx.Done()
		return expected
	})

	errs := myTask.Done()
	<-done

	assert.Equal(t, []error{expected}, errs, "wrong errors")
	assert.Equal(t, []error{expected}, myTask.Done(), "wrong errors when done twice")
}
