package main

import (
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Evaluation is one submitted expression and its outcome. Failed evaluations
// are kept too, with the failure kind in Status and the message in Error.
type Evaluation struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4()" json:"id"`
	Expression string    `gorm:"not null" json:"expression"`
	Status     string    `gorm:"not null" json:"status"`
	Result     *float64  `json:"result,omitempty"`
	Error      *string   `json:"error,omitempty"`
	// Functions lists the canonical names of the functions the expression
	// called, deduplicated and sorted.
	Functions pq.StringArray `gorm:"type:text[]" json:"functions"`

	CreatedAt time.Time `json:"created_at"`
}

func openDatabase(url string) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Error,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
		},
	)

	db, err := gorm.Open(postgres.Open(url), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, err
	}

	db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`)
	if err := db.AutoMigrate(&Evaluation{}); err != nil {
		return nil, err
	}
	return db, nil
}
