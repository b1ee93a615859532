package migration

import (
	"github.com/alphaoracle/alphaoracle/models"
	"github.com/jinzhu/gorm"
	gormigrate "gopkg.in/gormigrate.v1"
)

// Migration contains the incremental migrations the database requires
// to keep its schema in sync with the current models.
func Migration(db *gorm.DB) *gormigrate.Gormigrate {
	return gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		// initial schema
		{
			ID: "202408120900",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.AutoMigrate(&models.Sector{}).Error; err != nil {
					return err
				}
				if err := tx.AutoMigrate(&models.Recommendation{}).Error; err != nil {
					return err
				}
				if err := tx.Model(&models.Recommendation{}).
					AddForeignKey("sector_id", "sectors(id)", "RESTRICT", "CASCADE").Error; err != nil {
					return err
				}
				if err := tx.AutoMigrate(&models.EconomicIndicator{}).Error; err != nil {
					return err
				}
				if err := tx.AutoMigrate(&models.MarketData{}).Error; err != nil {
					return err
				}
				return tx.AutoMigrate(&models.GeopoliticalRisk{}).Error
			},
		},
	})
}
