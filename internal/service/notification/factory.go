package notification

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/notification"
)

const (
	ChannelLog = "log"
	ChannelSQS = "sqs"
)

// ChannelOptions selects and configures the delivery channel.
type ChannelOptions struct {
	Type        string
	Logger      *slog.Logger
	SQSClient   SQSClient
	SQSQueueURL string

	// Store, when set, also keeps every notification in the admin inbox.
	Store notification.Repository
}

// NewChannel builds the channel named by opts.Type. An empty type means log.
func NewChannel(opts ChannelOptions) (notification.Channel, error) {
	base, err := newBaseChannel(opts)
	if err != nil {
		return nil, err
	}
	if opts.Store == nil {
		return base, nil
	}
	store, err := NewStoreChannel(opts.Store)
	if err != nil {
		return nil, err
	}
	return NewFanoutChannel(base, store), nil
}

func newBaseChannel(opts ChannelOptions) (notification.Channel, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Type)) {
	case "", ChannelLog, "console":
		return NewLogChannel(opts.Logger), nil
	case ChannelSQS:
		if opts.SQSClient == nil {
			return nil, errors.New("sqs channel requires a client")
		}
		return NewSQSChannel(opts.SQSClient, opts.SQSQueueURL)
	default:
		return nil, fmt.Errorf("%w: %s", notification.ErrUnknownChannel, opts.Type)
	}
}
