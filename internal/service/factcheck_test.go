package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debate_live/internal/models"
)

// fakeFactCheckRepo 只記錄被建立的紀錄,夠這裡的驗證測試用
type fakeFactCheckRepo struct {
	created []*models.FactCheck
}

func (r *fakeFactCheckRepo) Create(factCheck *models.FactCheck) error {
	r.created = append(r.created, factCheck)
	return nil
}

func (r *fakeFactCheckRepo) FindByID(id uint) (*models.FactCheck, error) { return nil, nil }

func (r *fakeFactCheckRepo) FindByDebateID(debateID string) ([]models.FactCheck, error) {
	return nil, nil
}

func (r *fakeFactCheckRepo) Delete(id uint) error { return nil }

func TestCreateFactCheckValidation(t *testing.T) {
	repo := &fakeFactCheckRepo{}
	svc := NewFactCheckService(repo)

	// 缺欄位
	err := svc.CreateFactCheck(&models.FactCheck{TargetUserID: "u1"})
	assert.ErrorIs(t, err, ErrFactCheckIncomplete)

	// 佐證連結不是網址
	err = svc.CreateFactCheck(&models.FactCheck{
		TargetUserID:   "u1",
		TargetDebateID: "d1",
		Description:    "引用數據有誤",
		ReferenceURL:   "not a url",
	})
	assert.ErrorIs(t, err, ErrFactCheckBadRefURL)
	assert.Empty(t, repo.created)

	// 合法紀錄
	err = svc.CreateFactCheck(&models.FactCheck{
		TargetUserID:   "u1",
		TargetDebateID: "d1",
		Pros:           true,
		Description:    "引用數據有誤",
		ReferenceURL:   "https://example.com/source",
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.True(t, repo.created[0].Pros)
}

func TestCreateFactCheckWithoutReferenceURL(t *testing.T) {
	repo := &fakeFactCheckRepo{}
	svc := NewFactCheckService(repo)

	// 佐證連結可以留空
	err := svc.CreateFactCheck(&models.FactCheck{
		TargetUserID:   "u1",
		TargetDebateID: "d1",
		Description:    "口誤,未更正",
	})
	assert.NoError(t, err)
	assert.Len(t, repo.created, 1)
}
