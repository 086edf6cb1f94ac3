package production

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/product"
	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/profile"
	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/refresh"
)

type fakeProductionRepo struct {
	records     map[string]*Record
	listErr     error
	insertErr   error
	deleteCalls int
}

func newFakeProductionRepo() *fakeProductionRepo {
	return &fakeProductionRepo{records: make(map[string]*Record)}
}

func (r *fakeProductionRepo) List(ctx context.Context) ([]Record, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	items := make([]Record, 0, len(r.records))
	for _, record := range r.records {
		items = append(items, *record)
	}
	return items, nil
}

func (r *fakeProductionRepo) Insert(ctx context.Context, record *Record) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.records[record.ID] = record
	return nil
}

func (r *fakeProductionRepo) Delete(ctx context.Context, id string) (bool, error) {
	r.deleteCalls++
	if _, ok := r.records[id]; !ok {
		return false, nil
	}
	delete(r.records, id)
	return true, nil
}

func newTestService(repo Repository) (*Service, *refresh.Tracker) {
	tracker := refresh.NewTracker()
	svc := NewService(repo, tracker)
	svc.now = func() time.Time {
		return time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	}
	return svc, tracker
}

func TestCreateAppliesDefaults(t *testing.T) {
	repo := newFakeProductionRepo()
	svc, tracker := newTestService(repo)

	created, err := svc.Create(context.Background(), CreateInput{
		Quantity:    50,
		BatchNumber: "BATCH-007",
		CreatedBy:   "user-1",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.ProductType != product.DefaultType {
		t.Fatalf("expected default product type, got %q", created.ProductType)
	}
	if created.Unit != product.DefaultUnit {
		t.Fatalf("expected default unit, got %q", created.Unit)
	}
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	if !created.ProductionDate.Equal(want) {
		t.Fatalf("expected production date %v, got %v", want, created.ProductionDate)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if tracker.Snapshot().Production != 1 {
		t.Fatalf("expected production counter bumped, got %d", tracker.Snapshot().Production)
	}
	if tracker.Snapshot().Sales != 0 {
		t.Fatalf("expected sales counter untouched, got %d", tracker.Snapshot().Sales)
	}
}

func TestCreateKeepsExplicitFields(t *testing.T) {
	repo := newFakeProductionRepo()
	svc, _ := newTestService(repo)

	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	created, err := svc.Create(context.Background(), CreateInput{
		ProductType:    product.TypeCLCBrick,
		Quantity:       50,
		Unit:           product.UnitPieces,
		ProductionDate: date,
		BatchNumber:    "BATCH-007",
		QualityGrade:   "Grade A",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.ProductType != product.TypeCLCBrick || created.Unit != product.UnitPieces {
		t.Fatalf("explicit fields overwritten: %+v", created)
	}
	if !created.ProductionDate.Equal(date) {
		t.Fatalf("expected production date %v, got %v", date, created.ProductionDate)
	}
}

func TestCreateUnknownProductTypePassesThrough(t *testing.T) {
	repo := newFakeProductionRepo()
	svc, _ := newTestService(repo)

	created, err := svc.Create(context.Background(), CreateInput{
		ProductType: "fly_ash_brick",
		Quantity:    10,
		BatchNumber: "BATCH-010",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.ProductType != "fly_ash_brick" {
		t.Fatalf("expected unknown type kept verbatim, got %q", created.ProductType)
	}
}

func TestCreateRequiresBatchNumber(t *testing.T) {
	repo := newFakeProductionRepo()
	svc, tracker := newTestService(repo)

	if _, err := svc.Create(context.Background(), CreateInput{Quantity: 10}); err == nil {
		t.Fatal("expected error for missing batch number")
	}
	if tracker.Snapshot().Production != 0 {
		t.Fatal("counter must not move on failed create")
	}
}

func TestCreateRejectsNegativeQuantity(t *testing.T) {
	repo := newFakeProductionRepo()
	svc, _ := newTestService(repo)

	if _, err := svc.Create(context.Background(), CreateInput{Quantity: -1, BatchNumber: "B-1"}); err == nil {
		t.Fatal("expected error for negative quantity")
	}
}

func TestCreateZeroQuantityAllowed(t *testing.T) {
	repo := newFakeProductionRepo()
	svc, _ := newTestService(repo)

	created, err := svc.Create(context.Background(), CreateInput{Quantity: 0, BatchNumber: "B-1"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.Quantity != 0 {
		t.Fatalf("expected zero quantity, got %v", created.Quantity)
	}
}

func TestCreateInsertFailureLeavesCounterUntouched(t *testing.T) {
	repo := newFakeProductionRepo()
	repo.insertErr = errors.New("connection reset")
	svc, tracker := newTestService(repo)

	if _, err := svc.Create(context.Background(), CreateInput{Quantity: 1, BatchNumber: "B-1"}); err == nil {
		t.Fatal("expected insert error")
	}
	if tracker.Snapshot().Production != 0 {
		t.Fatal("counter must not move on failed insert")
	}
}

func TestDeleteAsEmployeeNeverReachesStore(t *testing.T) {
	repo := newFakeProductionRepo()
	repo.records["rec-1"] = &Record{ID: "rec-1"}
	svc, tracker := newTestService(repo)

	err := svc.Delete(context.Background(), profile.RoleEmployee, "rec-1")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if repo.deleteCalls != 0 {
		t.Fatalf("expected no delete request issued, got %d", repo.deleteCalls)
	}
	if tracker.Snapshot().Production != 0 {
		t.Fatal("counter must not move on forbidden delete")
	}
}

func TestDeleteAsOwner(t *testing.T) {
	repo := newFakeProductionRepo()
	repo.records["rec-1"] = &Record{ID: "rec-1"}
	svc, tracker := newTestService(repo)

	if err := svc.Delete(context.Background(), profile.RoleOwner, "rec-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := repo.records["rec-1"]; ok {
		t.Fatal("expected record removed")
	}
	if tracker.Snapshot().Production != 1 {
		t.Fatal("expected counter bumped after delete")
	}
}

func TestDeleteNotFound(t *testing.T) {
	repo := newFakeProductionRepo()
	svc, _ := newTestService(repo)

	err := svc.Delete(context.Background(), profile.RoleOwner, "missing")
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestListEmptyIsNotNil(t *testing.T) {
	repo := newFakeProductionRepo()
	svc, _ := newTestService(repo)

	records, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if records == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}
