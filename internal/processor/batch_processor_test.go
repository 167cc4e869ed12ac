package processor

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rentfolio/server/config"
	"rentfolio/server/internal/models"
	"rentfolio/server/internal/queue"
)

// MockStore is a mock implementation of the TransactionStore interface
type MockStore struct {
	mock.Mock
}

func (m *MockStore) UpsertTransactions(batch []*models.Transaction) error {
	args := m.Called(batch)
	return args.Error(0)
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.BatchProcessing.ProcessorCount = 1
	cfg.BatchProcessing.MaxRetries = 3
	cfg.BatchProcessing.RetryDelay = 0
	return cfg
}

func TestNewBatchProcessor(t *testing.T) {
	store := &MockStore{}
	q := queue.NewTransactionQueue(10, logrus.New())
	defer q.Close()

	p := NewBatchProcessor(store, q, testConfig(), logrus.New())
	require.NotNil(t, p)
}

func TestBatchProcessor_ProcessBatch(t *testing.T) {
	store := &MockStore{}
	q := queue.NewTransactionQueue(10, logrus.New())
	defer q.Close()

	p := NewBatchProcessor(store, q, testConfig(), logrus.New())
	batch := []*models.Transaction{
		{ID: "t1", Date: "2025-01-01", Amount: 100, Category: "Rent Income"},
		{ID: "t2", Date: "2025-01-02", Amount: -50, Category: "Repairs"},
	}

	// Successful processing
	store.On("UpsertTransactions", batch).Return(nil).Once()
	assert.NoError(t, p.processBatch(batch))

	// Retries until exhaustion on persistent failure
	store.On("UpsertTransactions", batch).Return(errors.New("db error")).Times(4)
	err := p.processBatch(batch)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to process batch after 3 attempts")
	store.AssertExpectations(t)
}

func TestBatchProcessor_RecoversAfterFailure(t *testing.T) {
	store := &MockStore{}
	q := queue.NewTransactionQueue(10, logrus.New())
	defer q.Close()

	p := NewBatchProcessor(store, q, testConfig(), logrus.New())
	batch := []*models.Transaction{{ID: "t1", Date: "2025-01-01", Amount: 100, Category: "Rent Income"}}

	store.On("UpsertTransactions", batch).Return(errors.New("locked")).Once()
	store.On("UpsertTransactions", batch).Return(nil).Once()

	assert.NoError(t, p.processBatch(batch))
	store.AssertExpectations(t)
}
