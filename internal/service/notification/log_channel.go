package notification

import (
	"context"
	"log/slog"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/notification"
)

// LogChannel writes each notification as one structured log line.
type LogChannel struct {
	logger *slog.Logger
}

func NewLogChannel(logger *slog.Logger) *LogChannel {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogChannel{logger: logger.With(slog.String("component", "notification"))}
}

func (c *LogChannel) Name() string { return "log" }

func (c *LogChannel) Send(ctx context.Context, n notification.Notification) error {
	c.logger.InfoContext(ctx, n.Title,
		slog.String("notification_id", n.ID),
		slog.String("type", string(n.Type)),
		slog.String("message", n.Message),
		slog.Any("data", n.Data),
	)
	return nil
}
