package database

import "rentfolio/server/internal/models"

func (d *Database) RunMigrations() error {
	return d.db.AutoMigrate(
		&models.Property{},
		&models.MonthlyExpenses{},
		&models.PropertyUnit{},
		&models.Transaction{},
	)
}
