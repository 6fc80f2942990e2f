package main

import (
	"log"
	"os"
	"time"

	"techmart-be/internal/mapper"
	"techmart-be/internal/model"
	"techmart-be/pkg/catalog"
	"techmart-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	dsnFlag   = "dsn"
	resetFlag = "reset"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := pflag.StringP(dsnFlag, "d", os.Getenv("DB_CONNECTION_STRING"), "Postgres connection string")
	reset := pflag.BoolP(resetFlag, "r", false, "delete all orders and overwrite existing products")
	pflag.Parse()

	if *dsn == "" {
		color.Red("--%s flag or DB_CONNECTION_STRING: required", dsnFlag)
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(*dsn)
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Seeding TechMart demo catalog\n")

	if *reset {
		if err := resetOrders(db); err != nil {
			color.Red("Reset failed: %v", err)
			os.Exit(1)
		}
		color.Yellow("Orders cleared")
	}

	created, skipped, err := seedProducts(db, *reset)
	if err != nil {
		color.Red("Seeding failed: %v", err)
		os.Exit(1)
	}

	color.Green("Products created or updated: %d", created)
	if skipped > 0 {
		color.Yellow("Products already present (use --%s to overwrite): %d", resetFlag, skipped)
	}
}

func resetOrders(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Order{}).Error
	})
}

func seedProducts(db *gorm.DB, overwrite bool) (written, skipped int, err error) {
	m := mapper.NewProductMapper()

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, p := range catalog.DemoProducts(time.Now()) {
			row := m.ToModel(p)

			onConflict := clause.OnConflict{DoNothing: true}
			if overwrite {
				onConflict = clause.OnConflict{UpdateAll: true}
			}

			res := tx.Clauses(onConflict).Create(row)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				skipped++
				continue
			}
			written++
		}
		return nil
	})
	return written, skipped, err
}
