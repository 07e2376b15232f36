package debate

import "log"

// JoinOutcome 描述一次加入請求的處理結果
type JoinOutcome struct {
	Admitted  bool // 成功進入房間
	Host      bool // 是房間的第一位,被指定為主持端
	Rejected  bool // 房間已滿
	Forfeited bool // 該方斷線額度用盡,辯論直接判給對方
	Resuming  bool // 雙方到齊,辯論將在緩衝後恢復
}

// LeaveOutcome 描述一次離開(或斷線)的處理結果
type LeaveOutcome struct {
	Left      bool // 這條連線原本綁在某個房間上
	Destroyed bool // 房間因此被收掉
	Paused    bool // 辯論進入寬限期
}

// Join 處理加入請求。房間在第一次被點名時建立;
// 已經開打的房間,回來的人會先進入暫停畫面,雙方到齊後恢復倒數。
func (h *Hub) Join(p Peer, debateID string, isPros bool) JoinOutcome {
	h.mu.Lock()
	defer h.mu.Unlock()

	room := h.rooms[debateID]
	if room != nil && room.size >= 2 {
		p.Send(EventOvercapacity, nil)
		return JoinOutcome{Rejected: true}
	}

	if room == nil {
		room = newRoom(debateID)
		h.rooms[debateID] = room
	}

	// 有人回來了,先停掉寬限倒數
	if room.pauseTick != nil {
		room.pauseTick.stop()
		room.pauseTick = nil
	}

	// 加入前先檢查斷線額度:額度用盡的那一方直接判輸,
	// 這必須發生在任何回合狀態被改動之前。
	if room.prosBudget < 0 || room.consBudget < 0 {
		prosWin := room.consBudget < 0
		log.Printf("debate %s forfeited, prosWin=%v", debateID, prosWin)
		h.finishLocked(room, p, prosWin)
		return JoinOutcome{Forfeited: true}
	}

	room.size++
	room.peers[p.ID()] = p
	h.bindings[p.ID()] = binding{debateID: debateID, isPros: isPros}
	if h.presence != nil {
		h.presence.Joined(debateID, p.ID())
	}

	room.emitExcept(p.ID(), EventGuestJoin, nil)

	out := JoinOutcome{Admitted: true}
	if room.size == 1 {
		p.Send(EventIsHost, nil)
		out.Host = true
	}

	if !room.started {
		return out
	}

	// 辯論已經開始:回來的人先停在暫停畫面
	p.Send(EventDebatePause, true)
	p.Send(EventDebateStart, nil)

	if room.size >= 2 {
		out.Resuming = true
		room.emit(EventDebateRestart, TurnState{Turn: room.turn, Timer: room.timer})
		h.scheduleResume(room)
		room.emit(EventDebatePause, false)
	}
	return out
}

// Leave 處理連線離開,通常由 WebSocket 關閉觸發。
// 沒綁定房間的連線直接略過。
func (h *Hub) Leave(connID string) LeaveOutcome {
	h.mu.Lock()
	defer h.mu.Unlock()

	b, ok := h.bindings[connID]
	if !ok {
		return LeaveOutcome{}
	}
	delete(h.bindings, connID)
	if h.presence != nil {
		h.presence.Left(b.debateID, connID)
	}

	room := h.rooms[b.debateID]
	if room == nil {
		return LeaveOutcome{Left: true}
	}

	room.size--
	delete(room.peers, connID)
	room.emit(EventPeerDisconnect, nil)

	// 還沒開打的房間不用留,直接收掉
	if !room.started {
		h.destroyLocked(room)
		return LeaveOutcome{Left: true, Destroyed: true}
	}

	// 對方還在:扣掉離開者的斷線額度,倒數照常進行
	if room.size >= 1 {
		room.spendBudget(b.isPros)
		return LeaveOutcome{Left: true}
	}

	// 房間清空:停掉辯論倒數,進入寬限期
	if room.debateTick != nil {
		room.debateTick.stop()
		room.debateTick = nil
	}
	if room.settle != nil {
		room.settle.Stop()
		room.settle = nil
	}
	room.pauseRemaining = graceSeconds
	room.pauseTick = h.startTick(func(t *tick) {
		h.onPauseTick(b.debateID, t)
	})
	h.sealSegmentLocked(room)

	return LeaveOutcome{Left: true, Paused: true}
}

// Done 處理明確的結束請求(例如一方投降或雙方完成評比)
func (h *Hub) Done(debateID string, prosWin bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room := h.rooms[debateID]
	if room == nil {
		return
	}
	log.Printf("debate %s done, prosWin=%v", debateID, prosWin)
	h.finishLocked(room, nil, prosWin)
}
