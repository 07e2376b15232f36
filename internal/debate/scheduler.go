package debate

// Ready 記錄一方的準備狀態。雙方都到齊且都按下準備後,
// 辯論從準備回合開始,每秒推進一次。
func (h *Hub) Ready(debateID string, isPros, isReady bool) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	room := h.rooms[debateID]
	if room == nil {
		return false
	}

	if isPros {
		room.prosReady = isReady
	} else {
		room.consReady = isReady
	}

	if room.size != 2 || room.started || !room.prosReady || !room.consReady {
		return false
	}

	room.started = true
	room.turn = prepTurn
	room.timer = turnDurations[prepTurn]
	room.debateTick = h.startTick(func(t *tick) {
		h.onDebateTick(debateID, t)
	})
	room.emit(EventDebateStart, nil)
	return true
}

// Skip 把當前回合的剩餘時間縮到 1 秒,下一次倒數就會換人發言。
// 只有輪到自己發言、而且剩餘時間超過 1 秒時才有效,其餘情況不動任何狀態。
func (h *Hub) Skip(debateID string, isPros bool) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	room := h.rooms[debateID]
	if room == nil {
		return false
	}
	if room.timer <= 1 || !sideOwnsTurn(isPros, room.turn) {
		return false
	}
	room.timer = 1
	return true
}

// onDebateTick 每秒觸發一次,推進回合狀態。
// handle 不是房間當前的計時就表示已被取消,直接略過。
func (h *Hub) onDebateTick(debateID string, t *tick) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room := h.rooms[debateID]
	if room == nil || room.debateTick != t {
		return
	}

	room.timer--
	if room.timer > 0 {
		room.emit(EventDebateTick, TurnState{Turn: room.turn, Timer: room.timer})
		return
	}

	// 回合結束。最後一個回合走完,時間到即散場,時鐘本身不決定勝負。
	if room.turn >= finalTurn {
		room.debateTick.stop()
		room.debateTick = nil
		room.emit(EventDebateDone, nil)
		h.sealSegmentLocked(room)
		h.destroyLocked(room)
		return
	}

	room.turn++
	room.timer = turnDurations[room.turn]
	room.emit(EventDebateTick, TurnState{Turn: room.turn, Timer: room.timer})
}
