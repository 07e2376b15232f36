package debate

// 客戶端送進來的事件
const (
	EventJoin       = "join"
	EventReady      = "ready"
	EventOffer      = "offer"
	EventAnswer     = "answer"
	EventPeerVideo  = "peerVideo"
	EventPeerScreen = "peerScreen"
	EventSkip       = "skip"
	EventRecord     = "record"
	EventDebateDone = "debateDone"
)

// 伺服器發出去的事件
const (
	EventGuestJoin      = "guestJoin"
	EventIsHost         = "isHost"
	EventOvercapacity   = "overcapacity"
	EventDebateStart    = "debateStart"
	EventDebatePause    = "debatePause"
	EventDebateTick     = "debate"
	EventDebateRestart  = "debateRestart"
	EventPeerDisconnect = "peerDisconnect"
)

// TurnState 是每秒廣播給雙方的回合狀態
type TurnState struct {
	Turn  int `json:"turn"`
	Timer int `json:"timer"`
}

// DoneNotice 在辯論分出勝負時送出,Winner 為 true 表示正方獲勝
type DoneNotice struct {
	Winner bool `json:"winner"`
}
