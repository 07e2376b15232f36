package repository

import (
	"debate_live/internal/models"
	"debate_live/internal/storage"
)

type DebateRepository interface {
	Create(debate *models.Debate) error
	FindByDebateID(debateID string) (*models.Debate, error)
	Update(debate *models.Debate) error
	FindAll() ([]models.Debate, error) // 簡單的列表查詢
}

type debateRepository struct {
	db *storage.PostgresDB
}

func NewDebateRepository(db *storage.PostgresDB) DebateRepository {
	return &debateRepository{db: db}
}

func (r *debateRepository) Create(debate *models.Debate) error {
	return r.db.Create(debate).Error
}

func (r *debateRepository) FindByDebateID(debateID string) (*models.Debate, error) {
	var debate models.Debate
	err := r.db.Where("debate_id = ?", debateID).First(&debate).Error
	if err != nil {
		return nil, err
	}
	return &debate, nil
}

func (r *debateRepository) Update(debate *models.Debate) error {
	return r.db.Save(debate).Error
}

func (r *debateRepository) FindAll() ([]models.Debate, error) {
	var debates []models.Debate
	err := r.db.Order("created_at DESC").Find(&debates).Error
	return debates, err
}
