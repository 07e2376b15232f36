package debate

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePeer 記錄收到的每個事件,給測試檢查用
type fakePeer struct {
	id string

	mu     sync.Mutex
	events []sentEvent
}

type sentEvent struct {
	event string
	data  any
}

func newFakePeer(id string) *fakePeer {
	return &fakePeer{id: id}
}

func (p *fakePeer) ID() string { return p.id }

func (p *fakePeer) Send(event string, data any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, sentEvent{event: event, data: data})
}

func (p *fakePeer) count(event string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, e := range p.events {
		if e.event == event {
			n++
		}
	}
	return n
}

func (p *fakePeer) received(event string) bool {
	return p.count(event) > 0
}

func (p *fakePeer) lastData(event string) any {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := len(p.events) - 1; i >= 0; i-- {
		if p.events[i].event == event {
			return p.events[i].data
		}
	}
	return nil
}

// freezeTicks 停掉房間底層的 ticker 但保留 handle,
// 讓測試可以自己呼叫 onDebateTick / onPauseTick 控制時間
func freezeTicks(h *Hub, debateID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room := h.rooms[debateID]
	if room == nil {
		return
	}
	if room.debateTick != nil {
		room.debateTick.ticker.Stop()
	}
	if room.pauseTick != nil {
		room.pauseTick.ticker.Stop()
	}
}

func debateHandle(h *Hub, debateID string) *tick {
	h.mu.Lock()
	defer h.mu.Unlock()
	if room := h.rooms[debateID]; room != nil {
		return room.debateTick
	}
	return nil
}

func pauseHandle(h *Hub, debateID string) *tick {
	h.mu.Lock()
	defer h.mu.Unlock()
	if room := h.rooms[debateID]; room != nil {
		return room.pauseTick
	}
	return nil
}

// tickDebate 手動推進 n 秒的辯論倒數
func tickDebate(h *Hub, debateID string, n int) {
	for i := 0; i < n; i++ {
		t := debateHandle(h, debateID)
		if t == nil {
			return
		}
		h.onDebateTick(debateID, t)
	}
}

// startedRoom 建好一個已經開打的房間:雙方加入、雙方準備,並凍結計時
func startedRoom(t *testing.T, h *Hub, debateID string) (pros, cons *fakePeer) {
	t.Helper()
	pros = newFakePeer("conn-pros")
	cons = newFakePeer("conn-cons")

	out := h.Join(pros, debateID, true)
	require.True(t, out.Admitted)
	out = h.Join(cons, debateID, false)
	require.True(t, out.Admitted)

	h.Ready(debateID, true, true)
	require.True(t, h.Ready(debateID, false, true))
	freezeTicks(h, debateID)
	return pros, cons
}

func TestJoinFirstIsHost(t *testing.T) {
	h := NewHub()
	a := newFakePeer("a")
	b := newFakePeer("b")

	out := h.Join(a, "X", true)
	assert.True(t, out.Admitted)
	assert.True(t, out.Host)
	assert.True(t, a.received(EventIsHost))

	out = h.Join(b, "X", false)
	assert.True(t, out.Admitted)
	assert.False(t, out.Host)
	assert.True(t, a.received(EventGuestJoin))
	assert.False(t, b.received(EventGuestJoin))

	assert.Equal(t, 2, h.Occupants("X"))
}

func TestJoinOvercapacity(t *testing.T) {
	h := NewHub()
	h.Join(newFakePeer("a"), "X", true)
	h.Join(newFakePeer("b"), "X", false)

	c := newFakePeer("c")
	out := h.Join(c, "X", true)
	assert.True(t, out.Rejected)
	assert.False(t, out.Admitted)
	assert.True(t, c.received(EventOvercapacity))

	// 房間狀態不受影響
	assert.Equal(t, 2, h.Occupants("X"))
}

func TestBothReadyStartsDebate(t *testing.T) {
	h := NewHub()
	pros, cons := startedRoom(t, h, "X")

	assert.True(t, pros.received(EventDebateStart))
	assert.True(t, cons.received(EventDebateStart))

	state, ok := h.State("X")
	require.True(t, ok)
	assert.Equal(t, 0, state.Turn)
	assert.Equal(t, 3, state.Timer)
}

func TestReadyNotEnough(t *testing.T) {
	h := NewHub()
	pros := newFakePeer("a")
	h.Join(pros, "X", true)

	// 只有一個人,準備了也不會開始
	assert.False(t, h.Ready("X", true, true))
	assert.False(t, pros.received(EventDebateStart))

	// 不存在的房間是無害的空操作
	assert.False(t, h.Ready("nope", true, true))
}

func TestLeaveBeforeStartDestroysRoom(t *testing.T) {
	h := NewHub()
	a := newFakePeer("a")
	b := newFakePeer("b")
	h.Join(a, "X", true)
	h.Join(b, "X", false)

	out := h.Leave("a")
	assert.True(t, out.Left)
	assert.True(t, out.Destroyed)
	assert.True(t, b.received(EventPeerDisconnect))
	assert.Equal(t, 0, h.Occupants("X"))

	// 另一個人的離開只剩解除綁定
	out = h.Leave("b")
	assert.True(t, out.Left)
	assert.False(t, out.Destroyed)
}

func TestLeaveUnknownConnection(t *testing.T) {
	h := NewHub()
	out := h.Leave("ghost")
	assert.False(t, out.Left)
}
