package window_test

import (
	"testing"

	"github.com/jamieabc/stream-monitor/fault"
	"github.com/jamieabc/stream-monitor/window"
	"github.com/stretchr/testify/assert"
)

func TestNewWhenInvalidCapacity(t *testing.T) {
	_, err := window.New(0)
	assert.Equal(t, fault.ErrInvalidWindowSize, err, "wrong error")

	_, err = window.New(-3)
	assert.Equal(t, fault.ErrInvalidWindowSize, err, "wrong error")
}

func TestAverageWhenEmpty(t *testing.T) {
	w, _ := window.New(3)

	_, err := w.Average()
	assert.Equal(t, fault.ErrEmptyWindow, err, "wrong error")
	assert.Equal(t, 0, w.Size(), "wrong initial size")
	assert.Equal(t, 3, w.Capacity(), "wrong capacity")
}

func TestAverageWhenNotFull(t *testing.T) {
	w, _ := window.New(5)
	w.Record(4)
	w.Record(6)

	avg, err := w.Average()
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, 5.0, avg, "wrong average")
	assert.Equal(t, 2, w.Size(), "wrong size")
}

func TestAverageWhenCycle(t *testing.T) {
	w, _ := window.New(3)
	for i := 1; i <= 10; i++ {
		w.Record(i)
	}

	avg, _ := w.Average()
	assert.Equal(t, 9.0, avg, "wrong average of 8, 9, 10")
	assert.Equal(t, 3, w.Size(), "wrong size")
}

func TestSizeNeverExceedsCapacity(t *testing.T) {
	capacity := 4
	w, _ := window.New(capacity)
	lengths := []int{7, 0, 3, 12, 5, 9, 1, 0, 22}

	for i, l := range lengths {
		w.Record(l)

		expectedSize := i + 1
		if capacity < expectedSize {
			expectedSize = capacity
		}
		assert.Equal(t, expectedSize, w.Size(), "wrong size")

		start := i + 1 - expectedSize
		sum := 0
		for _, v := range lengths[start : i+1] {
			sum += v
		}
		avg, err := w.Average()
		assert.Nil(t, err, "wrong error")
		assert.Equal(t, float64(sum)/float64(expectedSize), avg, "wrong average")
	}
}

func TestAverageWhenCapacityOne(t *testing.T) {
	w, _ := window.New(1)
	w.Record(10)
	w.Record(0)

	avg, _ := w.Average()
	assert.Equal(t, 0.0, avg, "wrong average")
	assert.Equal(t, 1, w.Size(), "wrong size")
}
