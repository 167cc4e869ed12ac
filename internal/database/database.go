package database

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"rentfolio/server/internal/models"
)

// ErrNotFound is returned when a lookup by id matches no record.
var ErrNotFound = errors.New("record not found")

type Database struct {
	db *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}

	return &Database{db: db}, nil
}

// GetDB exposes the underlying gorm handle for transactional callers.
func (d *Database) GetDB() *gorm.DB {
	return d.db
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// propertyScope preloads expenses and the ordered unit list.
func (d *Database) propertyScope() *gorm.DB {
	return d.db.
		Preload("MonthlyExpenses").
		Preload("PropertyUnits", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
}

// GetAllProperties returns properties in creation order. Archived
// properties are excluded unless requested; report callers rely on this
// pre-filter.
func (d *Database) GetAllProperties(includeArchived bool) ([]models.Property, error) {
	query := d.propertyScope().Order("created_at ASC")
	if !includeArchived {
		query = query.Where("archived = ?", false)
	}

	var properties []models.Property
	if err := query.Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

func (d *Database) GetProperty(id string) (*models.Property, error) {
	var property models.Property
	err := d.propertyScope().First(&property, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (d *Database) CreateProperty(p *models.Property) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	for i := range p.PropertyUnits {
		p.PropertyUnits[i].Position = i
	}
	return d.db.Create(p).Error
}

func (d *Database) UpdateProperty(p *models.Property) error {
	if _, err := d.GetProperty(p.ID); err != nil {
		return err
	}
	for i := range p.PropertyUnits {
		p.PropertyUnits[i].Position = i
	}
	return d.db.Transaction(func(tx *gorm.DB) error {
		// Replace child rows wholesale; partial unit updates are not
		// supported by the API.
		if err := tx.Where("property_id = ?", p.ID).Delete(&models.PropertyUnit{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", p.ID).Delete(&models.MonthlyExpenses{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(p).Error
	})
}

func (d *Database) SetPropertyArchived(id string, archived bool) error {
	result := d.db.Model(&models.Property{}).Where("id = ?", id).Update("archived", archived)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *Database) DeleteProperty(id string) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyUnit{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.MonthlyExpenses{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Property{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// GetTransactions returns transactions ordered by date. Empty filter
// values are ignored; date bounds compare lexically on the ISO strings.
func (d *Database) GetTransactions(propertyID, startDate, endDate string) ([]models.Transaction, error) {
	query := d.db.Order("date ASC, created_at ASC")
	if propertyID != "" {
		query = query.Where("property_id = ?", propertyID)
	}
	if startDate != "" {
		query = query.Where("date >= ?", startDate)
	}
	if endDate != "" {
		query = query.Where("date <= ?", endDate)
	}

	var transactions []models.Transaction
	if err := query.Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (d *Database) GetAllTransactions() ([]models.Transaction, error) {
	return d.GetTransactions("", "", "")
}

func (d *Database) CreateTransaction(t *models.Transaction) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return d.db.Create(t).Error
}

func (d *Database) DeleteTransaction(id string) error {
	result := d.db.Delete(&models.Transaction{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpsertTransactions writes an imported batch in one transaction,
// updating rows that share an id.
func (d *Database) UpsertTransactions(batch []*models.Transaction) error {
	if len(batch) == 0 {
		return nil
	}
	for _, t := range batch {
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
	}
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(batch).Error; err != nil {
			return fmt.Errorf("failed to upsert transactions batch: %w", err)
		}
		return nil
	})
}
