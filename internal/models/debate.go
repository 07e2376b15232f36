package models

import (
	"gorm.io/gorm"
)

// Debate 是一場辯論的存檔紀錄。即時狀態都在記憶體裡,
// 這裡只保存題目與最後的結果。
type Debate struct {
	gorm.Model
	DebateID string       `gorm:"uniqueIndex;not null" json:"debate_id"` // 房間使用的辯論識別碼
	Topic    string       `gorm:"type:text" json:"topic"`
	Status   DebateStatus `gorm:"type:varchar(20)" json:"status"`
	ProsWin  *bool        `json:"pros_win,omitempty"` // 分出勝負前為 null
}

// DebateStatus 定義辯論紀錄的狀態
type DebateStatus string

const (
	DebateStatusOpen     DebateStatus = "open"     // 建立完成,等待或進行中
	DebateStatusFinished DebateStatus = "finished" // 已分出勝負或散場
)
