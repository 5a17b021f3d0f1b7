package otp

import (
	"errors"
	"sync"
	"testing"
	"time"

	"sevakiosk/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite database. A single connection is
// enough here and keeps concurrent test operations serialized the same way
// the production store serializes writes.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.OTPChallenge{}); err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	return db
}

// stubSender records deliveries and can be flipped into failure mode.
type stubSender struct {
	mu   sync.Mutex
	sent []string
	fail bool
}

func (s *stubSender) Send(identifier, code string, validity time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("gateway unreachable")
	}
	s.sent = append(s.sent, identifier+":"+code)
	return nil
}

func (s *stubSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func newTestEngine(t *testing.T) (*Engine, *stubSender) {
	t.Helper()
	sender := &stubSender{}
	return NewEngine(newTestDB(t), DefaultConfig(), sender), sender
}
