package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/commercekit/customer-system/internal/api/metrics"
	"github.com/commercekit/customer-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher fans welcome notifications out to a fixed set of workers using
// consistent hashing on the customer email, keeping per-customer ordering.
// Enqueueing is fire-and-forget; a failed notification never reaches the
// request path.
type Dispatcher struct {
	workers []chan ports.WelcomeNotificationInput
	service ports.NotificationService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.NotificationService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.WelcomeNotificationInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.WelcomeNotificationInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a notification to the worker responsible for its customer.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(in ports.WelcomeNotificationInput) {
	i := d.shardIndex(in.Email)
	d.workers[i] <- in
	metrics.WelcomeQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps a customer email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.WelcomeNotificationInput) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, in); err != nil {
				metrics.WelcomeNotificationsTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Int64("customer_id", in.CustomerID).
					Int("worker_id", id).
					Msg("welcome notification failed")
			} else {
				metrics.WelcomeNotificationsTotal.WithLabelValues("queued").Inc()
			}
			metrics.WelcomeQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
		}
	}
}
