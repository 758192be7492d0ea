package repository

import (
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/taskledger/taskledger/internal/domain/entities"
)

var errMissingDSN = errors.New("missing TEST_POSTGRES_DSN")

var (
	dbOnce sync.Once
	testDB *gorm.DB
	dbErr  error
)

// DB returns a shared test database. Tests run inside per-test
// transactions, so the schema is migrated once.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dbOnce.Do(func() {
		dsn := os.Getenv("TEST_POSTGRES_DSN")
		if dsn == "" {
			dbErr = errMissingDSN
			return
		}

		var err error
		testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		if err != nil {
			dbErr = err
			return
		}

		if err := testDB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
			dbErr = err
			return
		}

		dbErr = testDB.AutoMigrate(
			&entities.Meeting{},
			&entities.ActionItem{},
			&entities.RiskFlag{},
			&entities.ClarificationQuestion{},
		)
	})

	if errors.Is(dbErr, errMissingDSN) {
		tb.Skip("set TEST_POSTGRES_DSN to run repository integration tests")
	}
	if dbErr != nil {
		tb.Fatalf("failed to init test db: %v", dbErr)
	}
	return testDB
}

// Tx wraps a test in a transaction that rolls back on cleanup
func Tx(tb testing.TB, db *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := db.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}

func seedMeeting(tb testing.TB, itemCount int) *entities.Meeting {
	tb.Helper()

	title := "Weekly Sync"
	meeting := entities.NewMeeting(
		"Mike, prepare the migration guide by February 1st.",
		[]string{"Mike Johnson", "Sarah Chen"},
		&title,
		time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC),
	)

	owner := "Mike Johnson"
	for i := 0; i < itemCount; i++ {
		item := entities.NewActionItem(meeting.ID, "Prepare the migration guide")
		item.Owner = &owner
		item.SetScore(0.85)
		item.RiskFlags = []entities.RiskFlag{
			{
				ActionItemID: item.ID,
				RiskType:     entities.RiskMissingDeadline,
				Description:  "no explicit date in transcript",
				Severity:     entities.PriorityMedium,
			},
		}
		item.ClarificationQuestions = []entities.ClarificationQuestion{
			{
				ActionItemID: item.ID,
				Question:     "Which deployment does the guide cover?",
				Field:        entities.FieldDescription,
				Priority:     entities.PriorityMedium,
			},
		}
		meeting.ActionItems = append(meeting.ActionItems, *item)
	}

	meeting.TotalConfidence = entities.OverallConfidence(meeting.ActionItems)
	return meeting
}

func mustCreateMeeting(tb testing.TB, tx *gorm.DB, meeting *entities.Meeting) {
	tb.Helper()
	if err := tx.Create(meeting).Error; err != nil {
		tb.Fatalf("seed meeting: %v", err)
	}
}

func otherUUID() uuid.UUID { return uuid.New() }
