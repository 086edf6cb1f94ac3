package stats

import (
	"context"

	productiondomain "github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/production"
	salesdomain "github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/sales"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CountProduction(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&productiondomain.Record{}).Count(&count).Error
	return count, err
}

func (r *PostgresRepository) CountSales(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&salesdomain.Record{}).Count(&count).Error
	return count, err
}

func (r *PostgresRepository) SumSalesTotals(ctx context.Context, statuses []string) (float64, error) {
	query := r.db.WithContext(ctx).Model(&salesdomain.Record{})
	if len(statuses) > 0 {
		query = query.Where("payment_status IN ?", statuses)
	}

	var total float64
	err := query.Select("COALESCE(SUM(total_amount), 0)").Scan(&total).Error
	return total, err
}
