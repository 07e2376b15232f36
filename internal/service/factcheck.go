package service

import (
	"errors"
	"net/url"

	"debate_live/internal/models"
	"debate_live/internal/repository"
)

var (
	ErrFactCheckIncomplete = errors.New("查核紀錄缺少必要欄位")
	ErrFactCheckBadRefURL  = errors.New("佐證連結不是合法的網址")
)

type FactCheckService struct {
	factCheckRepo repository.FactCheckRepository
}

func NewFactCheckService(factCheckRepo repository.FactCheckRepository) *FactCheckService {
	return &FactCheckService{factCheckRepo: factCheckRepo}
}

// CreateFactCheck 驗證並建立一筆查核紀錄
func (s *FactCheckService) CreateFactCheck(factCheck *models.FactCheck) error {
	if factCheck.TargetUserID == "" || factCheck.TargetDebateID == "" || factCheck.Description == "" {
		return ErrFactCheckIncomplete
	}
	if factCheck.ReferenceURL != "" {
		u, err := url.Parse(factCheck.ReferenceURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return ErrFactCheckBadRefURL
		}
	}
	return s.factCheckRepo.Create(factCheck)
}

func (s *FactCheckService) GetFactCheck(id uint) (*models.FactCheck, error) {
	return s.factCheckRepo.FindByID(id)
}

// ListFactChecks 列出某場辯論的全部查核紀錄
func (s *FactCheckService) ListFactChecks(debateID string) ([]models.FactCheck, error) {
	return s.factCheckRepo.FindByDebateID(debateID)
}

func (s *FactCheckService) DeleteFactCheck(id uint) error {
	return s.factCheckRepo.Delete(id)
}
