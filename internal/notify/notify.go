// Package notify dispatches contact messages to a Sender off the request
// path. Delivery is simulated: the default sender only writes a log line.
package notify

import (
	"context"

	"showcase/internal/domain/model"
	"showcase/pkg/logger"
	"showcase/pkg/metrics"

	"github.com/google/uuid"
)

const defaultQueueSize = 64

// Sender delivers a contact message. Implementations must not retain msg.
type Sender interface {
	SendContact(ctx context.Context, ref string, msg model.ContactMessage) error
}

// LogSender simulates outbound email by logging the envelope. The message
// body is deliberately left out of the log line.
type LogSender struct {
	log logger.Logger
}

// NewLogSender creates a sender that logs instead of delivering.
func NewLogSender(log logger.Logger) *LogSender {
	return &LogSender{log: log}
}

// SendContact writes the simulated-delivery log line.
func (s *LogSender) SendContact(ctx context.Context, ref string, msg model.ContactMessage) error {
	s.log.Info(ctx, "contact message received",
		logger.String("ref", ref),
		logger.String("name", msg.Name),
		logger.String("email", msg.Email),
		logger.String("subject", msg.Subject),
	)
	return nil
}

type item struct {
	ref string
	msg model.ContactMessage
}

// Dispatcher owns a bounded queue and a single worker goroutine that hands
// messages to the configured Sender. Dispatch never blocks the request path.
type Dispatcher struct {
	sender    Sender
	log       logger.Logger
	queueSize int
	queue     chan item
	done      chan struct{}
}

// Option applies a configuration option to the Dispatcher.
type Option func(*Dispatcher)

// WithQueueSize bounds the in-flight message queue.
func WithQueueSize(size int) Option {
	return func(d *Dispatcher) {
		if size > 0 {
			d.queueSize = size
		}
	}
}

// NewDispatcher creates and starts a dispatcher.
func NewDispatcher(sender Sender, log logger.Logger, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		sender:    sender,
		log:       log,
		queueSize: defaultQueueSize,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.queue = make(chan item, d.queueSize)
	d.done = make(chan struct{})
	go d.run()
	return d
}

// Dispatch queues msg for delivery and returns a reference ID. A full queue
// drops the message with a warning; the caller's response is unaffected.
func (d *Dispatcher) Dispatch(ctx context.Context, msg model.ContactMessage) string {
	ref := uuid.NewString()
	select {
	case d.queue <- item{ref: ref, msg: msg}:
		metrics.RecordContactAccepted()
	default:
		metrics.RecordContactDropped()
		d.log.Warn(ctx, "contact queue full; message dropped",
			logger.String("ref", ref),
			logger.String("email", msg.Email),
		)
	}
	return ref
}

// Close stops accepting messages and drains the queue.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}

func (d *Dispatcher) run() {
	defer close(d.done)
	ctx := context.Background()
	for it := range d.queue {
		if err := d.sender.SendContact(ctx, it.ref, it.msg); err != nil {
			d.log.Error(ctx, "contact delivery failed",
				logger.String("ref", it.ref),
				logger.Error(err),
			)
		}
	}
}
