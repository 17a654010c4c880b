package repo

import (
	"errors"

	"gorm.io/gorm"

	"devsync/app/models"
)

type InventoryRepository struct{ db *gorm.DB }

func NewInventoryRepository(db *gorm.DB) *InventoryRepository { return &InventoryRepository{db: db} }

// FindByUDID returns (nil, nil) when no row exists.
func (r *InventoryRepository) FindByUDID(udid string) (*models.DeviceInventory, error) {
	var d models.DeviceInventory
	err := r.db.Where("udid = ?", udid).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *InventoryRepository) ListUDIDs() ([]string, error) {
	var ids []string
	if err := r.db.Model(&models.DeviceInventory{}).Pluck("udid", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Upsert overwrites every field of an existing row keyed by UDID, or
// inserts a new one.
func (r *InventoryRepository) Upsert(d *models.DeviceInventory) error {
	existing, err := r.FindByUDID(d.UDID)
	if err != nil {
		return err
	}
	if existing != nil {
		d.ID = existing.ID
		d.CreatedAt = existing.CreatedAt
		return r.db.Save(d).Error
	}
	return r.db.Create(d).Error
}

func (r *InventoryRepository) Delete(d *models.DeviceInventory) error {
	return r.db.Delete(d).Error
}

func (r *InventoryRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.DeviceInventory{}).Count(&n).Error
	return n, err
}

func (r *InventoryRepository) ListByType(deviceType string) ([]models.DeviceInventory, error) {
	var out []models.DeviceInventory
	err := r.db.Where("device_type = ?", deviceType).Find(&out).Error
	return out, err
}

func (r *InventoryRepository) Recent(limit int) ([]models.DeviceInventory, error) {
	var out []models.DeviceInventory
	err := r.db.Order("id desc").Limit(limit).Find(&out).Error
	return out, err
}
