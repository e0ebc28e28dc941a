package messengers

import (
	"fmt"

	"github.com/jamieabc/stream-monitor/fault"
	"github.com/nlopes/slack"
)

// Poster - interface for posting slack message, satisfied by *slack.Client
type Poster interface {
	PostMessage(string, ...slack.MsgOption) (string, string, error)
}

type slackMessenger struct {
	channelID string
	client    Poster
}

// Send - send first argument as message to slack channel
func (s *slackMessenger) Send(args ...interface{}) error {
	if 1 > len(args) {
		return fault.ErrInsufficientSendParameter
	}

	if !s.Valid() {
		return fault.ErrInvalidMessenger
	}

	message := fmt.Sprint(args[0])
	_, _, err := s.client.PostMessage(s.channelID, slack.MsgOptionText(message, false))
	return err
}

// Valid - true when channel and client are set
func (s *slackMessenger) Valid() bool {
	return "" != s.channelID && nil != s.client
}

// NewSlack - new slack messenger
func NewSlack(token string, channelID string) Messenger {
	return NewSlackWithClient(slack.New(token), channelID)
}

// NewSlackWithClient - new slack messenger posting through client
func NewSlackWithClient(client Poster, channelID string) Messenger {
	return &slackMessenger{
		channelID: channelID,
		client:    client,
	}
}
