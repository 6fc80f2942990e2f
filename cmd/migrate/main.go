package main

import (
	"log"
	"os"

	"techmart-be/internal/model"
	"techmart-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. AutoMigrate
	models := []interface{}{
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 4. Post-Migration: Views
	postMigrationSQL := []string{
		`CREATE OR REPLACE VIEW order_revenue_by_day AS
		 SELECT date_trunc('day', o.created_at) AS day, COUNT(*) AS orders, SUM(o.total) AS revenue
		 FROM orders o
		 WHERE o.status <> 'Cancelled'
		 GROUP BY 1
		 ORDER BY 1 DESC;`,
	}
	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
