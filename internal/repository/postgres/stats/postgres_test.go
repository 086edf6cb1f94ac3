package stats

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	productiondomain "github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/production"
	salesdomain "github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/sales"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&productiondomain.Record{}, &salesdomain.Record{}))
	return db
}

func seedSale(t *testing.T, db *gorm.DB, id, status string, total float64) {
	t.Helper()
	record := salesdomain.Record{
		ID:            id,
		ProductType:   "ready_mix_concrete",
		Quantity:      1,
		Unit:          "cubic_meters",
		CustomerName:  "Kumar Constructions",
		SaleDate:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		UnitPrice:     total,
		TotalAmount:   total,
		PaymentStatus: status,
	}
	require.NoError(t, db.Create(&record).Error)
}

func TestCountsOnEmptyStore(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgres(db)
	ctx := context.Background()

	productionCount, err := repo.CountProduction(ctx)
	require.NoError(t, err)
	require.Zero(t, productionCount)

	salesCount, err := repo.CountSales(ctx)
	require.NoError(t, err)
	require.Zero(t, salesCount)

	total, err := repo.SumSalesTotals(ctx, nil)
	require.NoError(t, err)
	require.Zero(t, total)
}

func TestCountProduction(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgres(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		record := productiondomain.Record{
			ID:             fmt.Sprintf("rec-%d", i),
			ProductType:    "clc_brick",
			Unit:           "pieces",
			BatchNumber:    fmt.Sprintf("B-%d", i),
			ProductionDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		}
		require.NoError(t, db.Create(&record).Error)
	}

	count, err := repo.CountProduction(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, count)
}

func TestSumSalesTotals(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgres(db)
	ctx := context.Background()

	seedSale(t, db, "sale-1", salesdomain.PaymentPaid, 1000)
	seedSale(t, db, "sale-2", salesdomain.PaymentPending, 250.50)
	seedSale(t, db, "sale-3", salesdomain.PaymentPartial, 99.50)

	count, err := repo.CountSales(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, count)

	total, err := repo.SumSalesTotals(ctx, nil)
	require.NoError(t, err)
	require.InDelta(t, 1350.00, total, 0.001)

	pending, err := repo.SumSalesTotals(ctx, []string{salesdomain.PaymentPending, salesdomain.PaymentPartial})
	require.NoError(t, err)
	require.InDelta(t, 350.00, pending, 0.001)
}

func TestSumSalesTotalsNoMatchingStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgres(db)
	ctx := context.Background()

	seedSale(t, db, "sale-1", salesdomain.PaymentPaid, 1000)

	pending, err := repo.SumSalesTotals(ctx, []string{salesdomain.PaymentPending, salesdomain.PaymentPartial})
	require.NoError(t, err)
	require.Zero(t, pending)
}
