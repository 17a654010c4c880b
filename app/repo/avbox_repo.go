package repo

import (
	"errors"

	"gorm.io/gorm"

	"devsync/app/models"
)

type AVBoxRepository struct{ db *gorm.DB }

func NewAVBoxRepository(db *gorm.DB) *AVBoxRepository { return &AVBoxRepository{db: db} }

// FindByDUT returns (nil, nil) when no mapping exists.
func (r *AVBoxRepository) FindByDUT(dut string) (*models.AVBoxMapping, error) {
	var m models.AVBoxMapping
	err := r.db.Where("dut = ?", dut).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *AVBoxRepository) Upsert(m *models.AVBoxMapping) error {
	existing, err := r.FindByDUT(m.DUT)
	if err != nil {
		return err
	}
	if existing != nil {
		m.ID = existing.ID
		return r.db.Save(m).Error
	}
	return r.db.Create(m).Error
}

func (r *AVBoxRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.AVBoxMapping{}).Count(&n).Error
	return n, err
}

func (r *AVBoxRepository) Recent(limit int) ([]models.AVBoxMapping, error) {
	var out []models.AVBoxMapping
	err := r.db.Order("id desc").Limit(limit).Find(&out).Error
	return out, err
}
