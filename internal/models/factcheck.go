package models

import (
	"gorm.io/gorm"
)

// FactCheck 是針對某場辯論中某位使用者發言的事實查核紀錄
type FactCheck struct {
	gorm.Model
	TargetUserID   string `gorm:"index;not null" json:"target_user_id"`   // 被查核的使用者
	TargetDebateID string `gorm:"index;not null" json:"target_debate_id"` // 所屬的辯論
	Pros           bool   `json:"pros"`                                   // 查核對象屬於正方或反方
	Description    string `gorm:"type:text" json:"description"`           // 查核說明
	ReferenceURL   string `json:"reference_url"`                          // 佐證資料連結
}
