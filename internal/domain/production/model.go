package production

import "time"

// Record is one production batch. Records are immutable once created: the only
// write operations are insert and delete.
type Record struct {
	ID             string    `gorm:"type:uuid;primaryKey"`
	ProductType    string    `gorm:"not null"`
	Quantity       float64   `gorm:"type:numeric(12,2);not null"`
	Unit           string    `gorm:"not null"`
	ProductionDate time.Time `gorm:"type:date;not null"`
	BatchNumber    string    `gorm:"not null"`
	QualityGrade   string    `gorm:"not null;default:''"`
	Notes          string    `gorm:"not null;default:''"`
	CreatedBy      string    `gorm:"type:uuid"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (Record) TableName() string {
	return "production_records"
}

type CreateInput struct {
	ProductType    string
	Quantity       float64
	Unit           string
	ProductionDate time.Time
	BatchNumber    string
	QualityGrade   string
	Notes          string
	CreatedBy      string
}
