package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/timerecord"
)

type spyChannel struct {
	mu   sync.Mutex
	sent []notification.Notification
	err  error
}

func (c *spyChannel) Name() string { return "spy" }

func (c *spyChannel) Send(ctx context.Context, n notification.Notification) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, n)
	return c.err
}

func (c *spyChannel) Sent() []notification.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]notification.Notification(nil), c.sent...)
}

func sampleRecord() timerecord.TimeRecord {
	return timerecord.TimeRecord{
		ID:         "rec-1",
		EmployeeID: "emp-1",
		RecordType: timerecord.RecordTypeSalida,
		Timestamp:  time.Date(2025, 11, 17, 22, 30, 0, 0, time.UTC),
		Employee:   &timerecord.EmployeeSummary{ID: "emp-1", Name: "Ana", LastName: "Pérez", Cedula: "11111111"},
	}
}

func TestNotifyRecordCreated_DeliversThroughChannel(t *testing.T) {
	spy := &spyChannel{}
	svc := NewNotificationService(spy, Config{WorkerCount: 1})

	require.NoError(t, svc.NotifyRecordCreated(context.Background(), sampleRecord()))
	svc.Stop()

	sent := spy.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, notification.TypeRecordCreated, sent[0].Type)
	assert.Equal(t, recordCreatedTitle, sent[0].Title)
	assert.Equal(t, "Ana Pérez registró salida", sent[0].Message)
	assert.Equal(t, "11111111", sent[0].Data["cedula"])
	assert.Equal(t, "2025-11-17T22:30:00.000Z", sent[0].Data["timestamp"])
}

func TestNotifyRecordCreated_ChannelFailureIsSwallowed(t *testing.T) {
	spy := &spyChannel{err: errors.New("boom")}
	svc := NewNotificationService(spy, Config{WorkerCount: 1})

	assert.NoError(t, svc.NotifyRecordCreated(context.Background(), sampleRecord()))
	svc.Stop()
	assert.Len(t, spy.Sent(), 1)
}

func TestNotifyRecordCreated_AfterStopDeliversInline(t *testing.T) {
	spy := &spyChannel{}
	svc := NewNotificationService(spy, Config{WorkerCount: 1})
	svc.Stop()
	svc.Stop()

	require.NoError(t, svc.NotifyRecordCreated(context.Background(), sampleRecord()))
	assert.Len(t, spy.Sent(), 1)
}

func TestNotifyRecordCreated_ConcurrentStopLosesNothing(t *testing.T) {
	spy := &spyChannel{}
	svc := NewNotificationService(spy, Config{WorkerCount: 2, QueueSize: 4})

	const senders = 64
	var wg sync.WaitGroup
	for i := 0; i < senders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.NotifyRecordCreated(context.Background(), sampleRecord()))
		}()
		if i == senders/2 {
			go svc.Stop()
		}
	}
	wg.Wait()
	svc.Stop()

	assert.Len(t, spy.Sent(), senders)
}

func TestLogChannel_Send(t *testing.T) {
	var buf bytes.Buffer
	ch := NewLogChannel(slog.New(slog.NewJSONHandler(&buf, nil)))

	n := notification.Notification{ID: "n-1", Type: notification.TypeRecordCreated, Title: recordCreatedTitle, Message: "hola"}
	require.NoError(t, ch.Send(context.Background(), n))

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, recordCreatedTitle, line["msg"])
	assert.Equal(t, "n-1", line["notification_id"])
	assert.Equal(t, "notification", line["component"])
}

type fakeSQSClient struct {
	calls  int
	inputs []*sqs.SendMessageInput
	err    error
}

func (f *fakeSQSClient) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.calls++
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{}, nil
}

func TestSQSChannel_Send(t *testing.T) {
	client := &fakeSQSClient{}
	ch, err := NewSQSChannel(client, "http://localhost:4566/000000000000/jornada-events")
	require.NoError(t, err)

	n := notification.Notification{ID: "n-1", Type: notification.TypeRecordCreated, Title: recordCreatedTitle}
	require.NoError(t, ch.Send(context.Background(), n))

	require.Len(t, client.inputs, 1)
	in := client.inputs[0]
	assert.Equal(t, "http://localhost:4566/000000000000/jornada-events", *in.QueueUrl)
	assert.Equal(t, string(notification.TypeRecordCreated), *in.MessageAttributes["EventType"].StringValue)

	var body notification.Notification
	require.NoError(t, json.Unmarshal([]byte(*in.MessageBody), &body))
	assert.Equal(t, "n-1", body.ID)
}

func TestSQSChannel_BreakerOpensAfterRepeatedFailures(t *testing.T) {
	client := &fakeSQSClient{err: errors.New("queue down")}
	ch, err := NewSQSChannel(client, "queue")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		assert.Error(t, ch.Send(context.Background(), notification.Notification{ID: "n"}))
	}

	err = ch.Send(context.Background(), notification.Notification{ID: "n"})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 10, client.calls)
}

func TestNewSQSChannel_RequiresQueueURL(t *testing.T) {
	_, err := NewSQSChannel(&fakeSQSClient{}, "")
	assert.ErrorIs(t, err, notification.ErrMissingQueueURL)
}

func TestNewChannel(t *testing.T) {
	ch, err := NewChannel(ChannelOptions{})
	require.NoError(t, err)
	assert.Equal(t, "log", ch.Name())

	ch, err = NewChannel(ChannelOptions{Type: "SQS", SQSClient: &fakeSQSClient{}, SQSQueueURL: "queue"})
	require.NoError(t, err)
	assert.Equal(t, "sqs", ch.Name())

	_, err = NewChannel(ChannelOptions{Type: "sqs"})
	assert.Error(t, err)

	_, err = NewChannel(ChannelOptions{Type: "pigeon"})
	assert.ErrorIs(t, err, notification.ErrUnknownChannel)
}
