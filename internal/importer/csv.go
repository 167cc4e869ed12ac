// Package importer parses transaction CSV exports and feeds valid rows
// into the ingest queue in batches.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"rentfolio/server/internal/models"
	"rentfolio/server/internal/queue"
)

const dateFormat = "2006-01-02"

// Columns recognized in the CSV header, matched case-insensitively.
var requiredColumns = []string{"date", "amount", "category"}

// RowError records why one CSV line was rejected. Bad rows never abort
// the import.
type RowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// Result summarizes one import run.
type Result struct {
	Imported  int        `json:"imported"`
	Skipped   int        `json:"skipped"`
	RowErrors []RowError `json:"row_errors,omitempty"`
}

type Importer struct {
	queue     *queue.TransactionQueue
	batchSize int
	logger    *logrus.Logger
}

func NewImporter(q *queue.TransactionQueue, batchSize int, logger *logrus.Logger) *Importer {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Importer{queue: q, batchSize: batchSize, logger: logger}
}

// Import reads a transaction CSV and pushes parsed rows onto the queue
// in batches. Rows that fail validation are collected in the result and
// skipped; a malformed header or an unreadable stream aborts the run.
func (i *Importer) Import(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	columns, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	var batch []*models.Transaction
	line := 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Skipped++
			result.RowErrors = append(result.RowErrors, RowError{Line: line, Message: err.Error()})
			continue
		}

		transaction, err := parseRow(record, columns)
		if err != nil {
			result.Skipped++
			result.RowErrors = append(result.RowErrors, RowError{Line: line, Message: err.Error()})
			continue
		}

		batch = append(batch, transaction)
		result.Imported++
		if len(batch) >= i.batchSize {
			if err := i.queue.Push(batch); err != nil {
				return result, fmt.Errorf("failed to enqueue batch: %w", err)
			}
			batch = nil
		}
	}

	if len(batch) > 0 {
		if err := i.queue.Push(batch); err != nil {
			return result, fmt.Errorf("failed to enqueue batch: %w", err)
		}
	}

	i.logger.WithFields(logrus.Fields{
		"imported": result.Imported,
		"skipped":  result.Skipped,
	}).Info("Finished transaction import")
	return result, nil
}

func mapHeader(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for idx, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = idx
	}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required CSV column %q", required)
		}
	}
	return columns, nil
}

func field(record []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func parseRow(record []string, columns map[string]int) (*models.Transaction, error) {
	date := field(record, columns, "date")
	if _, err := time.Parse(dateFormat, date); err != nil {
		return nil, fmt.Errorf("invalid date %q", date)
	}

	rawAmount := field(record, columns, "amount")
	amount, err := strconv.ParseFloat(rawAmount, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, fmt.Errorf("invalid amount %q", rawAmount)
	}

	category := field(record, columns, "category")
	if category == "" {
		return nil, fmt.Errorf("missing category")
	}

	expenseType := field(record, columns, "expense_type")
	switch expenseType {
	case "":
		expenseType = models.ExpenseTypeOperating
	case models.ExpenseTypeOperating, models.ExpenseTypeCapital:
	default:
		return nil, fmt.Errorf("invalid expense type %q", expenseType)
	}

	overrideDate := field(record, columns, "override_date")
	if overrideDate != "" {
		if _, err := time.Parse(dateFormat, overrideDate); err != nil {
			return nil, fmt.Errorf("invalid override date %q", overrideDate)
		}
	}

	return &models.Transaction{
		ID:           uuid.NewString(),
		Date:         date,
		Amount:       amount,
		Category:     category,
		PropertyID:   field(record, columns, "property_id"),
		ExpenseType:  expenseType,
		OverrideDate: overrideDate,
	}, nil
}
