package repo

import (
	"gorm.io/gorm"

	"devsync/app/models"
)

// LedgerRepository only appends and reads; ledger rows are immutable.
type LedgerRepository struct{ db *gorm.DB }

func NewLedgerRepository(db *gorm.DB) *LedgerRepository { return &LedgerRepository{db: db} }

func (r *LedgerRepository) Append(e *models.DeviceLedger) error {
	return r.db.Create(e).Error
}

func (r *LedgerRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.DeviceLedger{}).Count(&n).Error
	return n, err
}

func (r *LedgerRepository) ListByUDID(udid string) ([]models.DeviceLedger, error) {
	var out []models.DeviceLedger
	err := r.db.Where("udid = ?", udid).Order("id").Find(&out).Error
	return out, err
}

func (r *LedgerRepository) Recent(limit int) ([]models.DeviceLedger, error) {
	var out []models.DeviceLedger
	err := r.db.Order("timestamp desc").Limit(limit).Find(&out).Error
	return out, err
}
