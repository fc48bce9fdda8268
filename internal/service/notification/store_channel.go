package notification

import (
	"context"
	"errors"
	"strings"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/notification"
)

// StoreChannel saves notifications to the admin inbox.
type StoreChannel struct {
	repo notification.Repository
}

func NewStoreChannel(repo notification.Repository) (*StoreChannel, error) {
	if repo == nil {
		return nil, notification.ErrMissingStore
	}
	return &StoreChannel{repo: repo}, nil
}

func (c *StoreChannel) Name() string { return "store" }

// Send implements notification.Channel.
func (c *StoreChannel) Send(ctx context.Context, n notification.Notification) error {
	return c.repo.Create(ctx, n)
}

// FanoutChannel delivers to every channel and joins their errors.
type FanoutChannel struct {
	channels []notification.Channel
}

func NewFanoutChannel(channels ...notification.Channel) *FanoutChannel {
	return &FanoutChannel{channels: channels}
}

func (c *FanoutChannel) Name() string {
	names := make([]string, len(c.channels))
	for i, ch := range c.channels {
		names[i] = ch.Name()
	}
	return strings.Join(names, "+")
}

// Send implements notification.Channel.
func (c *FanoutChannel) Send(ctx context.Context, n notification.Notification) error {
	var errs []error
	for _, ch := range c.channels {
		if err := ch.Send(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
