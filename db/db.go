package db

import (
	"io"

	"github.com/jamieabc/stream-monitor/engine"
)

//DBWriter - db interface
type DBWriter interface {
	engine.Reporter
	io.Closer
}
