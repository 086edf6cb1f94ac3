package sales

import (
	"context"
	"crypto/rand"
	"fmt"
	"math"
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
	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	if input.Quantity < 0 {
		return nil, fmt.Errorf("quantity must not be negative")
	}
	if input.UnitPrice < 0 {
		return nil, fmt.Errorf("unit price must not be negative")
	}

	paymentStatus := strings.TrimSpace(input.PaymentStatus)
	if paymentStatus == "" {
		paymentStatus = PaymentPending
	}
	if !ValidPaymentStatus(paymentStatus) {
		return nil, ErrInvalidPaymentStatus
	}

	productType := strings.TrimSpace(input.ProductType)
	if productType == "" {
		productType = product.DefaultType
	}
	unit := strings.TrimSpace(input.Unit)
	if unit == "" {
		unit = product.DefaultUnit
	}
	saleDate := input.SaleDate
	if saleDate.IsZero() {
		saleDate = truncateToDate(s.now().UTC())
	}

	id, err := newUUID()
	if err != nil {
		return nil, err
	}

	record := Record{
		ID:              id,
		ProductType:     productType,
		Quantity:        input.Quantity,
		Unit:            unit,
		CustomerName:    strings.TrimSpace(input.CustomerName),
		CustomerContact: strings.TrimSpace(input.CustomerContact),
		SaleDate:        saleDate,
		UnitPrice:       input.UnitPrice,
		TotalAmount:     TotalAmount(input.Quantity, input.UnitPrice),
		PaymentStatus:   paymentStatus,
		Notes:           strings.TrimSpace(input.Notes),
		CreatedBy:       input.CreatedBy,
	}

	if err := s.repo.Insert(ctx, &record); err != nil {
		return nil, err
	}

	s.tracker.Bump(refresh.TableSales)
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

	s.tracker.Bump(refresh.TableSales)
	return nil
}

// TotalAmount is quantity times unit price, rounded to two decimals. Either
// operand being zero yields zero.
func TotalAmount(quantity, unitPrice float64) float64 {
	return math.Round(quantity*unitPrice*100) / 100
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
