package queue

import (
	"errors"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"rentfolio/server/internal/models"
)

var (
	ErrQueueFull   = errors.New("queue is full")
	ErrQueueClosed = errors.New("queue is closed")
)

// TransactionQueue is an in-memory queue of imported transaction
// batches, decoupling CSV parsing from persistence.
type TransactionQueue struct {
	items    chan []*models.Transaction
	done     chan struct{}
	closed   bool
	mu       sync.RWMutex
	logger   *logrus.Logger
	handlers []func([]*models.Transaction) error
}

// NewTransactionQueue creates a queue with the specified buffer size.
func NewTransactionQueue(bufferSize int, logger *logrus.Logger) *TransactionQueue {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	return &TransactionQueue{
		items:  make(chan []*models.Transaction, bufferSize),
		done:   make(chan struct{}),
		logger: logger,
	}
}

// Push adds a batch to the queue without blocking; a full queue is an
// error so importers can surface backpressure.
func (q *TransactionQueue) Push(batch []*models.Transaction) error {
	q.mu.RLock()
	if q.closed {
		q.mu.RUnlock()
		return ErrQueueClosed
	}
	q.mu.RUnlock()

	select {
	case q.items <- batch:
		q.logger.WithField("batch_size", len(batch)).Debug("Pushed batch to queue")
		return nil
	default:
		return ErrQueueFull
	}
}

// Subscribe adds a handler that will be called for each batch.
func (q *TransactionQueue) Subscribe(handler func([]*models.Transaction) error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers = append(q.handlers, handler)
}

// Start begins processing items in the queue.
func (q *TransactionQueue) Start() {
	go q.process()
}

func (q *TransactionQueue) process() {
	for {
		select {
		case <-q.done:
			return
		case batch := <-q.items:
			q.dispatch(batch)
		}
	}
}

func (q *TransactionQueue) dispatch(batch []*models.Transaction) {
	q.mu.RLock()
	handlers := q.handlers
	q.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(batch); err != nil {
			q.logger.WithError(err).Error("Handler failed to process batch")
		}
	}
}

// Close stops the queue and prevents new batches from being added.
func (q *TransactionQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}

	q.closed = true
	close(q.done)
	close(q.items)
	return nil
}

// Len returns the current number of batches in the queue.
func (q *TransactionQueue) Len() int {
	return len(q.items)
}

// IsClosed returns whether the queue has been closed.
func (q *TransactionQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
