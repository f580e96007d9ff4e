package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gatepass/internal/model"
)

// GatePassRepository defines gate pass persistence operations.
type GatePassRepository interface {
	Create(ctx context.Context, gatePass *model.GatePass) error
	FindByID(ctx context.Context, id uint) (*model.GatePass, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*model.GatePass, error)
	ListByStudent(ctx context.Context, studentID uint) ([]model.GatePass, error)
	ListPending(ctx context.Context) ([]model.GatePass, error)
	ListResolved(ctx context.Context) ([]model.GatePass, error)
	SetStatus(ctx context.Context, id uint, status model.GatePassStatus) error
	ResolvePending(ctx context.Context, id uint, status model.GatePassStatus) (bool, error)
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo GatePassRepository) error) error
}

type gatePassRepository struct {
	db *gorm.DB
}

// NewGatePassRepository creates a new gate pass repository.
func NewGatePassRepository(db *gorm.DB) GatePassRepository {
	return &gatePassRepository{db: db}
}

// Create stores a new request. Every request starts Pending, stamped with the time it was made.
func (r *gatePassRepository) Create(ctx context.Context, gatePass *model.GatePass) error {
	gatePass.Status = model.GatePassStatusPending
	if gatePass.RequestedAt.IsZero() {
		gatePass.RequestedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(gatePass).Error
}

// FindByID finds a gate pass by ID.
func (r *gatePassRepository) FindByID(ctx context.Context, id uint) (*model.GatePass, error) {
	var gatePass model.GatePass
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&gatePass).Error; err != nil {
		return nil, err
	}
	return &gatePass, nil
}

// FindByIDForUpdate finds a gate pass by ID with row-level lock for update.
func (r *gatePassRepository) FindByIDForUpdate(ctx context.Context, id uint) (*model.GatePass, error) {
	var gatePass model.GatePass
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&gatePass).Error; err != nil {
		return nil, err
	}
	return &gatePass, nil
}

// ListByStudent lists a student's requests, most recent first.
func (r *gatePassRepository) ListByStudent(ctx context.Context, studentID uint) ([]model.GatePass, error) {
	var gatePasses []model.GatePass
	if err := r.db.WithContext(ctx).Where("student_id = ?", studentID).
		Order("request_date DESC").Order("id DESC").
		Find(&gatePasses).Error; err != nil {
		return nil, err
	}
	return gatePasses, nil
}

// ListPending lists requests awaiting a decision in insertion order.
func (r *gatePassRepository) ListPending(ctx context.Context) ([]model.GatePass, error) {
	var gatePasses []model.GatePass
	if err := r.db.WithContext(ctx).Where("status = ?", model.GatePassStatusPending).
		Order("id ASC").
		Find(&gatePasses).Error; err != nil {
		return nil, err
	}
	return gatePasses, nil
}

// ListResolved lists accepted and rejected requests, most recent first.
func (r *gatePassRepository) ListResolved(ctx context.Context) ([]model.GatePass, error) {
	var gatePasses []model.GatePass
	if err := r.db.WithContext(ctx).Where("status IN ?", model.ResolvedStatuses).
		Order("request_date DESC").Order("id DESC").
		Find(&gatePasses).Error; err != nil {
		return nil, err
	}
	return gatePasses, nil
}

// SetStatus overwrites the status whatever it currently is.
func (r *gatePassRepository) SetStatus(ctx context.Context, id uint, status model.GatePassStatus) error {
	res := r.db.WithContext(ctx).Model(&model.GatePass{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// MySQL reports zero rows when the value did not change; tell that apart from a missing row.
		if _, err := r.FindByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// ResolvePending moves a Pending request to status in one conditional update.
// It reports false when the request does not exist or was no longer Pending.
func (r *gatePassRepository) ResolvePending(ctx context.Context, id uint, status model.GatePassStatus) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.GatePass{}).
		Where("id = ? AND status = ?", id, model.GatePassStatusPending).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// WithTransaction executes a function within a database transaction.
func (r *gatePassRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo GatePassRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &gatePassRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
