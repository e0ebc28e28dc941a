package messengers

import (
	"fmt"

	"github.com/jamieabc/stream-monitor/cache"
	"github.com/jamieabc/stream-monitor/fault"
)

type throttled struct {
	messenger Messenger
	sent      cache.Cache
}

// Send - send message unless one with the same key was sent before it
// expired from cache, key is the second argument when given, otherwise
// the message itself
func (t *throttled) Send(args ...interface{}) error {
	if 1 > len(args) {
		return fault.ErrInsufficientSendParameter
	}

	key := fmt.Sprint(args[0])
	if 1 < len(args) {
		key = fmt.Sprint(args[1])
	}
	if _, found := t.sent.Get(key); found {
		return nil
	}

	if err := t.messenger.Send(args...); nil != err {
		return err
	}
	t.sent.Set(key, struct{}{})

	return nil
}

// Valid - validity of wrapped messenger
func (t *throttled) Valid() bool {
	return t.messenger.Valid()
}

// NewThrottled - wrap messenger to suppress repeated messages
func NewThrottled(m Messenger, sent cache.Cache) Messenger {
	return &throttled{
		messenger: m,
		sent:      sent,
	}
}
