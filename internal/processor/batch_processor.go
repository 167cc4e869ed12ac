package processor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"rentfolio/server/config"
	"rentfolio/server/internal/models"
	"rentfolio/server/internal/queue"
)

// TransactionStore persists imported transaction batches.
type TransactionStore interface {
	UpsertTransactions(batch []*models.Transaction) error
}

// BatchProcessor drains the transaction queue and persists batches with
// retry logic.
type BatchProcessor struct {
	store     TransactionStore
	logger    *logrus.Logger
	config    *config.Config
	queue     *queue.TransactionQueue
	waitGroup sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewBatchProcessor creates a new batch processor instance.
func NewBatchProcessor(store TransactionStore, queue *queue.TransactionQueue, config *config.Config, logger *logrus.Logger) *BatchProcessor {
	ctx, cancel := context.WithCancel(context.Background())
	return &BatchProcessor{
		store:  store,
		queue:  queue,
		config: config,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start begins processing batches from the queue.
func (p *BatchProcessor) Start() {
	for i := 0; i < p.config.BatchProcessing.ProcessorCount; i++ {
		p.waitGroup.Add(1)
		go p.processLoop()
	}
}

// Stop gracefully shuts down the processor.
func (p *BatchProcessor) Stop() {
	p.cancel()
	p.waitGroup.Wait()
}

func (p *BatchProcessor) processLoop() {
	defer p.waitGroup.Done()

	p.queue.Subscribe(func(batch []*models.Transaction) error {
		return p.processBatch(batch)
	})
}

// processBatch persists a single batch, retrying on failure.
func (p *BatchProcessor) processBatch(batch []*models.Transaction) error {
	var err error
	for attempt := 0; attempt <= p.config.BatchProcessing.MaxRetries; attempt++ {
		if attempt > 0 {
			p.logger.Infof("Retrying batch processing, attempt %d of %d", attempt, p.config.BatchProcessing.MaxRetries)
			time.Sleep(time.Duration(p.config.BatchProcessing.RetryDelay) * time.Second)
		}

		err = p.store.UpsertTransactions(batch)
		if err == nil {
			p.logger.Infof("Successfully processed batch of %d transactions", len(batch))
			return nil
		}

		p.logger.Errorf("Batch processing failed: %v", err)
	}

	return fmt.Errorf("failed to process batch after %d attempts: %w", p.config.BatchProcessing.MaxRetries, err)
}
