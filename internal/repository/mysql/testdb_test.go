package mysql

import (
	"testing"
	"time"

	"github.com/arjunmnath/probidder-backend/internal/domain"
	infra "github.com/arjunmnath/probidder-backend/internal/infra/mysql"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database carrying the same schema the
// server migrates on startup. A single connection keeps the memory database
// alive for the whole test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, infra.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, email string) *domain.User {
	t.Helper()
	u := &domain.User{
		Username:   username,
		Email:      email,
		PasswdHash: "x",
		FirstName:  "Test",
		LastName:   "User",
		DateJoined: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *domain.Category {
	t.Helper()
	c := &domain.Category{Name: name}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedProduct(t *testing.T, db *gorm.DB, userID uint64, title string, status domain.ProductStatus, start time.Time) *domain.Product {
	t.Helper()
	p := &domain.Product{
		Title:      title,
		Condition:  domain.ConditionUsed,
		InitialBid: decimal.RequireFromString("100.00"),
		Status:     status,
		StartTime:  start,
		EndTime:    start.Add(7 * 24 * time.Hour),
		UserID:     userID,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedBid(t *testing.T, db *gorm.DB, userID, productID uint64, amount string, at time.Time) *domain.Bid {
	t.Helper()
	b := &domain.Bid{
		Amount:    decimal.RequireFromString(amount),
		BidTime:   at,
		UserID:    userID,
		ProductID: productID,
	}
	require.NoError(t, db.Create(b).Error)
	return b
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
