package service

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"debate_live/internal/models"
	"debate_live/internal/repository"
)

type DebateService struct {
	debateRepo repository.DebateRepository
}

func NewDebateService(debateRepo repository.DebateRepository) *DebateService {
	return &DebateService{debateRepo: debateRepo}
}

func (s *DebateService) CreateDebate(debateID, topic string) (*models.Debate, error) {
	debate := &models.Debate{
		DebateID: debateID,
		Topic:    topic,
		Status:   models.DebateStatusOpen,
	}
	if err := s.debateRepo.Create(debate); err != nil {
		return nil, err
	}
	return debate, nil
}

func (s *DebateService) GetDebate(debateID string) (*models.Debate, error) {
	return s.debateRepo.FindByDebateID(debateID)
}

func (s *DebateService) ListDebates() ([]models.Debate, error) {
	return s.debateRepo.FindAll()
}

// DebateFinished 在房間分出勝負時由辯論引擎呼叫,把結果寫進存檔。
// 沒有對應存檔的辯論(例如測試用的臨時房間)只留一筆記錄,不視為錯誤。
func (s *DebateService) DebateFinished(debateID string, prosWin bool) {
	debate, err := s.debateRepo.FindByDebateID(debateID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("lookup debate %s failed: %v", debateID, err)
		}
		return
	}

	debate.Status = models.DebateStatusFinished
	debate.ProsWin = &prosWin
	if err := s.debateRepo.Update(debate); err != nil {
		log.Printf("save debate %s result failed: %v", debateID, err)
	}
}
