package window

import (
	"sync"

	"github.com/jamieabc/stream-monitor/fault"
)

// Window - interface for rolling window of payload lengths
type Window interface {
	Recorder
	Summarizer
}

// Recorder - interface for adding a length
type Recorder interface {
	Record(int)
}

// Summarizer - interface for summarizing current window
type Summarizer interface {
	Average() (float64, error)
	Size() int
	Capacity() int
}

type rolling struct {
	sync.Mutex
	data       []int
	nextItemID int
	size       int
	sum        int
}

// New - new rolling window holding the latest capacity lengths
func New(capacity int) (Window, error) {
	if 1 > capacity {
		return nil, fault.ErrInvalidWindowSize
	}

	return &rolling{
		data: make([]int, capacity),
	}, nil
}

// Record - add length, evict oldest one when window is full
func (r *rolling) Record(length int) {
	r.Lock()
	defer r.Unlock()

	if len(r.data) == r.size {
		r.sum -= r.data[r.nextItemID]
	} else {
		r.size++
	}

	r.data[r.nextItemID] = length
	r.sum += length
	r.nextItemID = r.nextID(r.nextItemID)
}

func (r *rolling) nextID(id int) int {
	if len(r.data)-1 == id {
		return 0
	}
	return id + 1
}

// Average - arithmetic mean of lengths in window
func (r *rolling) Average() (float64, error) {
	r.Lock()
	defer r.Unlock()

	if 0 == r.size {
		return 0, fault.ErrEmptyWindow
	}

	return float64(r.sum) / float64(r.size), nil
}

// Size - number of lengths in window
func (r *rolling) Size() int {
	r.Lock()
	defer r.Unlock()

	return r.size
}

// Capacity - max number of lengths in window
func (r *rolling) Capacity() int {
	return len(r.data)
}
