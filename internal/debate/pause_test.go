package debate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pauseRemaining(h *Hub, debateID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if room := h.rooms[debateID]; room != nil {
		return room.pauseRemaining
	}
	return 0
}

func sideBudget(h *Hub, debateID string, isPros bool) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if room := h.rooms[debateID]; room != nil {
		return room.budget(isPros)
	}
	return 0
}

func TestDisconnectWithPeerRemainingSpendsBudget(t *testing.T) {
	h := NewHub()
	_, cons := startedRoom(t, h, "X")

	out := h.Leave("conn-pros")
	assert.True(t, out.Left)
	assert.False(t, out.Paused)
	assert.True(t, cons.received(EventPeerDisconnect))

	// 離開者的額度被扣掉,倒數不受影響
	assert.Equal(t, disconnectBudget-1, sideBudget(h, "X", true))
	assert.Equal(t, disconnectBudget, sideBudget(h, "X", false))
	assert.NotNil(t, debateHandle(h, "X"))
}

func TestRoomEmptyEntersGraceWindow(t *testing.T) {
	h := NewHub()
	startedRoom(t, h, "X")

	h.Leave("conn-pros")
	out := h.Leave("conn-cons")
	assert.True(t, out.Paused)

	// 辯論倒數停了,寬限倒數開始,兩者不會同時在跑
	assert.Nil(t, debateHandle(h, "X"))
	require.NotNil(t, pauseHandle(h, "X"))
	assert.Equal(t, graceSeconds, pauseRemaining(h, "X"))
}

func TestRejoinWithinGraceResumes(t *testing.T) {
	h := NewHub()
	h.settleDelay = 5 * time.Millisecond
	startedRoom(t, h, "X")

	h.Leave("conn-pros")
	h.Leave("conn-cons")
	freezeTicks(h, "X")

	// 一個人回來:寬限倒數取消,但辯論還不能恢復
	pros2 := newFakePeer("conn-pros-2")
	out := h.Join(pros2, "X", true)
	require.True(t, out.Admitted)
	assert.False(t, out.Resuming)
	assert.Nil(t, pauseHandle(h, "X"))
	assert.Nil(t, debateHandle(h, "X"))
	assert.True(t, pros2.received(EventDebateStart))

	// 回來的人先停在暫停畫面
	assert.Equal(t, true, pros2.lastData(EventDebatePause))

	// 第二個人回來:緩衝過後恢復倒數
	cons2 := newFakePeer("conn-cons-2")
	out = h.Join(cons2, "X", false)
	require.True(t, out.Resuming)
	assert.Equal(t, false, cons2.lastData(EventDebatePause))
	assert.True(t, cons2.received(EventDebateRestart))

	assert.Eventually(t, func() bool {
		return debateHandle(h, "X") != nil
	}, time.Second, 2*time.Millisecond)
}

func TestGraceCountdownEvictsEmptyRoom(t *testing.T) {
	h := NewHub()
	startedRoom(t, h, "X")
	h.Leave("conn-pros")
	h.Leave("conn-cons")
	freezeTicks(h, "X")

	for i := 0; i < graceSeconds; i++ {
		ph := pauseHandle(h, "X")
		require.NotNil(t, ph)
		h.onPauseTick("X", ph)
	}

	// 沒有人回來,房間收掉
	_, ok := h.State("X")
	assert.False(t, ok)
}

func TestForfeitureAfterBudgetExhausted(t *testing.T) {
	h := NewHub()
	h.settleDelay = time.Millisecond
	_, cons := startedRoom(t, h, "X")

	// 正方在對手還在場的情況下反覆斷線,額度 3 -> -1
	for i := 0; i < 4; i++ {
		h.Leave("conn-pros")
		if i < 3 {
			p := newFakePeer("conn-pros")
			out := h.Join(p, "X", true)
			require.True(t, out.Admitted)
			freezeTicks(h, "X")
		}
	}
	assert.Equal(t, -1, sideBudget(h, "X", true))

	// 第四次回來:額度已經是負的,辯論直接判給反方
	late := newFakePeer("conn-pros-late")
	out := h.Join(late, "X", true)
	assert.True(t, out.Forfeited)
	assert.False(t, out.Admitted)

	notice, ok := late.lastData(EventDebateDone).(DoneNotice)
	require.True(t, ok)
	assert.False(t, notice.Winner)

	notice, ok = cons.lastData(EventDebateDone).(DoneNotice)
	require.True(t, ok)
	assert.False(t, notice.Winner)

	// 房間收掉,倒數沒有被重啟
	_, exists := h.State("X")
	assert.False(t, exists)
	assert.Nil(t, debateHandle(h, "X"))
}

func TestForfeitNotifiesResultSink(t *testing.T) {
	h := NewHub()
	sink := &recordedResult{}
	h.SetResultSink(sink)
	startedRoom(t, h, "X")

	h.Done("X", false)

	require.True(t, sink.called)
	assert.Equal(t, "X", sink.debateID)
	assert.False(t, sink.prosWin)
}

type recordedResult struct {
	called   bool
	debateID string
	prosWin  bool
}

func (r *recordedResult) DebateFinished(debateID string, prosWin bool) {
	r.called = true
	r.debateID = debateID
	r.prosWin = prosWin
}
