package sales

import (
	"context"

	salesdomain "github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/sales"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]salesdomain.Record, error) {
	var records []salesdomain.Record
	err := r.db.WithContext(ctx).
		Order("sale_date desc, created_at desc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, record *salesdomain.Record) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&salesdomain.Record{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
