package production

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/product"
	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/profile"
	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/refresh"
)

type Service struct {
	repo    Repository
	tracker *refresh.Tracker
	now     func() time.Time
}

func NewService(repo Repository, tracker *refresh.Tracker) *Service {
	return &Service{repo: repo, tracker: tracker, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Record, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*Record, error) {
	if strings.TrimSpace(input.BatchNumber) == "" {
		return nil, fmt.Errorf("batch number is required")
	}
	if input.Quantity < 0 {
		return nil, fmt.Errorf("quantity must not be negative")
	}

	productType := strings.TrimSpace(input.ProductType)
	if productType == "" {
		productType = product.DefaultType
	}
	unit := strings.TrimSpace(input.Unit)
	if unit == "" {
		unit = product.DefaultUnit
	}
	productionDate := input.ProductionDate
	if productionDate.IsZero() {
		productionDate = truncateToDate(s.now().UTC())
	}

	id, err := newUUID()
	if err != nil {
		return nil, err
	}

	record := Record{
		ID:             id,
		ProductType:    productType,
		Quantity:       input.Quantity,
		Unit:           unit,
		ProductionDate: productionDate,
		BatchNumber:    strings.TrimSpace(input.BatchNumber),
		QualityGrade:   strings.TrimSpace(input.QualityGrade),
		Notes:          strings.TrimSpace(input.Notes),
		CreatedBy:      input.CreatedBy,
	}

	if err := s.repo.Insert(ctx, &record); err != nil {
		return nil, err
	}

	s.tracker.Bump(refresh.TableProduction)
	return &record, nil
}

// Delete removes a record. Only owners may delete; for any other role the
// request never reaches the store.
func (s *Service) Delete(ctx context.Context, actorRole, id string) error {
	if actorRole != profile.RoleOwner {
		return ErrForbidden
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRecordNotFound
	}

	s.tracker.Bump(refresh.TableProduction)
	return nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func newUUID() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}

	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80

	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16]), nil
}
