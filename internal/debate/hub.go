package debate

import (
	"sync"
	"time"
)

// Peer 代表一個已連上的參與者,由 WebSocket 層實作
type Peer interface {
	ID() string
	Send(event string, data any)
}

// Presence 把房間的進出狀況鏡射到外部儲存,僅供監看,不影響房間狀態
type Presence interface {
	Joined(debateID, connID string)
	Left(debateID, connID string)
}

// ResultSink 在辯論分出勝負時收到通知,用來把結果寫進資料庫
type ResultSink interface {
	DebateFinished(debateID string, prosWin bool)
}

// binding 記錄一條連線屬於哪場辯論的哪一方
type binding struct {
	debateID string
	isPros   bool
}

// Hub 持有所有進行中的辯論房間。
// 全部狀態都由同一把鎖保護,任何事件(包含計時觸發)都在取得鎖之後
// 一次處理完,房間不會看到處理到一半的狀態。
type Hub struct {
	mu       sync.Mutex
	rooms    map[string]*Room
	bindings map[string]binding

	// 雙方重新到齊後,等這段時間讓信令重建完成才恢復倒數
	settleDelay time.Duration

	presence Presence
	results  ResultSink
}

func NewHub() *Hub {
	return &Hub{
		rooms:       make(map[string]*Room),
		bindings:    make(map[string]binding),
		settleDelay: 2 * time.Second,
	}
}

func (h *Hub) SetPresence(p Presence) {
	h.presence = p
}

func (h *Hub) SetResultSink(s ResultSink) {
	h.results = s
}

// Occupants 回傳房間目前的人數,房間不存在時為 0
func (h *Hub) Occupants(debateID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	room := h.rooms[debateID]
	if room == nil {
		return 0
	}
	return room.size
}

// State 回傳房間當前的回合狀態
func (h *Hub) State(debateID string) (TurnState, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room := h.rooms[debateID]
	if room == nil {
		return TurnState{}, false
	}
	return TurnState{Turn: room.turn, Timer: room.timer}, true
}

// tick 是一個可取消的每秒計時,停止後不會再觸發
type tick struct {
	ticker *time.Ticker
	done   chan struct{}
}

func (t *tick) stop() {
	t.ticker.Stop()
	close(t.done)
}

// startTick 啟動每秒一次的計時。回呼拿到自己的 handle,
// 觸發時必須先確認自己仍然是房間當前的計時,才能改動狀態。
func (h *Hub) startTick(fn func(t *tick)) *tick {
	t := &tick{
		ticker: time.NewTicker(time.Second),
		done:   make(chan struct{}),
	}
	go func() {
		for {
			select {
			case <-t.ticker.C:
				fn(t)
			case <-t.done:
				return
			}
		}
	}()
	return t
}

// afterSettle 在緩衝時間過後執行 fn 一次
func (h *Hub) afterSettle(fn func()) *time.Timer {
	return time.AfterFunc(h.settleDelay, fn)
}

// finishLocked 結束一場辯論並公佈勝方。extra 是尚未加入房間的連線
// (例如額度用盡還想重連的人),也要收到結果通知。
func (h *Hub) finishLocked(room *Room, extra Peer, prosWin bool) {
	notice := DoneNotice{Winner: prosWin}
	room.emit(EventDebateDone, notice)
	if extra != nil {
		extra.Send(EventDebateDone, notice)
	}

	if h.results != nil {
		h.results.DebateFinished(room.debateID, prosWin)
	}

	h.sealSegmentLocked(room)
	h.destroyLocked(room)
}

// destroyLocked 收掉一個房間。銷毀前必須先取消所有還在跑的計時,
// 避免孤兒回呼去動一個已經不存在的房間。
func (h *Hub) destroyLocked(room *Room) {
	if room.debateTick != nil {
		room.debateTick.stop()
		room.debateTick = nil
	}
	if room.pauseTick != nil {
		room.pauseTick.stop()
		room.pauseTick = nil
	}
	if room.settle != nil {
		room.settle.Stop()
		room.settle = nil
	}
	delete(h.rooms, room.debateID)
}
