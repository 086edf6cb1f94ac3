package production

import (
	"context"

	productiondomain "github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/production"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]productiondomain.Record, error) {
	var records []productiondomain.Record
	err := r.db.WithContext(ctx).
		Order("production_date desc, created_at desc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, record *productiondomain.Record) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&productiondomain.Record{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
