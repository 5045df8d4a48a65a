package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/resale/backend/internal/domain/pricing"
)

// GormReportRepository implements pricing.ReportRepository using GORM
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// Save persists one profit calculation record
func (r *GormReportRepository) Save(ctx context.Context, record *pricing.ReportRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// FindPage returns one page of the calculation history, newest first,
// along with the total record count
func (r *GormReportRepository) FindPage(ctx context.Context, page, pageSize int) ([]pricing.ReportRecord, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&pricing.ReportRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []pricing.ReportRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// FindAll returns the full calculation history, newest first
func (r *GormReportRepository) FindAll(ctx context.Context) ([]pricing.ReportRecord, error) {
	var records []pricing.ReportRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
