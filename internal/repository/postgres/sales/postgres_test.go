package sales

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	salesdomain "github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/sales"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&salesdomain.Record{}))
	return db
}

func testRecord(id string, saleDate, createdAt time.Time) salesdomain.Record {
	return salesdomain.Record{
		ID:            id,
		ProductType:   "ready_mix_concrete",
		Quantity:      10,
		Unit:          "cubic_meters",
		CustomerName:  "Kumar Constructions",
		SaleDate:      saleDate,
		UnitPrice:     250,
		TotalAmount:   2500,
		PaymentStatus: salesdomain.PaymentPending,
		CreatedAt:     createdAt,
	}
}

func TestListOrdersByDateThenCreation(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgres(db)
	ctx := context.Background()

	day1 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)
	base := time.Date(2024, 1, 12, 9, 0, 0, 0, time.UTC)

	records := []salesdomain.Record{
		testRecord("rec-old", day1, base),
		testRecord("rec-early", day2, base.Add(1*time.Minute)),
		testRecord("rec-late", day2, base.Add(2*time.Minute)),
	}
	for i := range records {
		require.NoError(t, repo.Insert(ctx, &records[i]))
	}

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	require.Equal(t, "rec-late", listed[0].ID)
	require.Equal(t, "rec-early", listed[1].ID)
	require.Equal(t, "rec-old", listed[2].ID)
}

func TestInsertPersistsTotalAsGiven(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgres(db)
	ctx := context.Background()

	record := testRecord("rec-1", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), time.Time{})
	record.TotalAmount = 9999.99
	require.NoError(t, repo.Insert(ctx, &record))

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, 9999.99, listed[0].TotalAmount)
	require.Equal(t, record.CustomerName, listed[0].CustomerName)
	require.Equal(t, record.PaymentStatus, listed[0].PaymentStatus)
}

func TestDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgres(db)
	ctx := context.Background()

	record := testRecord("rec-1", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), time.Time{})
	require.NoError(t, repo.Insert(ctx, &record))

	deleted, err := repo.Delete(ctx, "rec-1")
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = repo.Delete(ctx, "missing")
	require.NoError(t, err)
	require.False(t, deleted)
}
