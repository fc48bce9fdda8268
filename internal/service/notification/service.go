package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/timerecord"
	"github.com/google/uuid"
)

const recordCreatedTitle = "Nuevo registro de jornada creado"

// Config holds notification service configuration
type Config struct {
	SendTimeout time.Duration // default: 5 seconds
	WorkerCount int           // default: 2
	QueueSize   int           // default: 256
}

type service struct {
	channel notification.Channel
	config  Config
	now     func() time.Time

	queue    chan notification.Notification
	wg       sync.WaitGroup
	stopCh   chan struct{}
	stopOnce sync.Once

	// mu orders enqueues before Stop closes stopCh, so workers drain every queued send.
	mu      sync.RWMutex
	stopped bool
}

// NewNotificationService creates a notification service with background workers
func NewNotificationService(channel notification.Channel, cfg Config) notification.Service {
	if cfg.SendTimeout == 0 {
		cfg.SendTimeout = 5 * time.Second
	}
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 256
	}

	s := &service{
		channel: channel,
		config:  cfg,
		now:     time.Now,
		queue:   make(chan notification.Notification, cfg.QueueSize),
		stopCh:  make(chan struct{}),
	}

	for i := 0; i < cfg.WorkerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	slog.Info("notification service started",
		slog.String("channel", channel.Name()),
		slog.Int("workers", cfg.WorkerCount),
		slog.Duration("send_timeout", cfg.SendTimeout),
	)

	return s
}

func (s *service) worker(id int) {
	defer s.wg.Done()

	for {
		select {
		case n := <-s.queue:
			s.deliver(n, id)
		case <-s.stopCh:
			for {
				select {
				case n := <-s.queue:
					s.deliver(n, id)
				default:
					return
				}
			}
		}
	}
}

// deliver sends n with its own timeout. Failures are only logged.
func (s *service) deliver(n notification.Notification, workerID int) {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.SendTimeout)
	defer cancel()

	if err := s.channel.Send(ctx, n); err != nil {
		slog.Warn("notification delivery failed",
			slog.String("channel", s.channel.Name()),
			slog.String("notification_id", n.ID),
			slog.String("type", string(n.Type)),
			slog.Int("worker", workerID),
			slog.Any("error", err),
		)
	}
}

// NotifyRecordCreated implements notification.Service.
func (s *service) NotifyRecordCreated(ctx context.Context, record timerecord.TimeRecord) error {
	n := notification.Notification{
		ID:        uuid.New().String(),
		Type:      notification.TypeRecordCreated,
		Title:     recordCreatedTitle,
		Message:   recordCreatedMessage(record),
		Data:      notification.RecordCreatedData(record),
		CreatedAt: s.now(),
	}

	queued, err := s.enqueue(ctx, n)
	if err != nil {
		return err
	}
	if !queued {
		// Stopped or queue full, deliver inline
		s.deliver(n, -1)
	}
	return nil
}

func (s *service) enqueue(ctx context.Context, n notification.Notification) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.stopped {
		return false, nil
	}

	select {
	case s.queue <- n:
		return true, nil
	case <-ctx.Done():
		return false, ctx.Err()
	default:
		return false, nil
	}
}

func recordCreatedMessage(r timerecord.TimeRecord) string {
	who := r.EmployeeID
	if r.Employee != nil {
		who = r.Employee.FullName()
	}
	return who + " registró " + string(r.RecordType)
}

// Stop implements notification.Service.
func (s *service) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		s.stopped = true
		close(s.stopCh)
		s.mu.Unlock()

		s.wg.Wait()
		slog.Info("notification service stopped")
	})
}
