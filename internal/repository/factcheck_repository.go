package repository

import (
	"debate_live/internal/models"
	"debate_live/internal/storage"
)

type FactCheckRepository interface {
	Create(factCheck *models.FactCheck) error
	FindByID(id uint) (*models.FactCheck, error)
	FindByDebateID(debateID string) ([]models.FactCheck, error)
	Delete(id uint) error
}

type factCheckRepository struct {
	db *storage.PostgresDB
}

func NewFactCheckRepository(db *storage.PostgresDB) FactCheckRepository {
	return &factCheckRepository{db: db}
}

func (r *factCheckRepository) Create(factCheck *models.FactCheck) error {
	return r.db.Create(factCheck).Error
}

func (r *factCheckRepository) FindByID(id uint) (*models.FactCheck, error) {
	var factCheck models.FactCheck
	err := r.db.First(&factCheck, id).Error
	if err != nil {
		return nil, err
	}
	return &factCheck, nil
}

// FindByDebateID 依辯論識別碼列出所有查核紀錄
func (r *factCheckRepository) FindByDebateID(debateID string) ([]models.FactCheck, error) {
	var factChecks []models.FactCheck
	err := r.db.Where("target_debate_id = ?", debateID).Order("created_at ASC").Find(&factChecks).Error
	return factChecks, err
}

func (r *factCheckRepository) Delete(id uint) error {
	return r.db.Delete(&models.FactCheck{}, id).Error
}
