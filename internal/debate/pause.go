package debate

// scheduleResume 在雙方重新到齊後,等一小段緩衝時間再恢復辯論倒數,
// 讓兩邊的客戶端有時間把信令重新接上。觸發時房間狀態可能已經改變,
// 所以恢復前要重新確認人數與開打狀態。
func (h *Hub) scheduleResume(room *Room) {
	if room.settle != nil {
		room.settle.Stop()
	}
	debateID := room.debateID
	room.settle = h.afterSettle(func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		room := h.rooms[debateID]
		if room == nil || !room.started || room.size < 2 {
			return
		}
		room.settle = nil

		// 同一個房間不能同時有兩個計時在跑
		if room.pauseTick != nil {
			room.pauseTick.stop()
			room.pauseTick = nil
		}
		if room.debateTick != nil {
			room.debateTick.stop()
		}
		room.debateTick = h.startTick(func(t *tick) {
			h.onDebateTick(debateID, t)
		})
	})
}

// onPauseTick 每秒遞減寬限期倒數。這個倒數只是給客戶端顯示用,
// 判輸與否完全看斷線額度,在下一次加入時檢查。
// 倒數歸零表示沒有人要回來了,房間就此收掉。
func (h *Hub) onPauseTick(debateID string, t *tick) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room := h.rooms[debateID]
	if room == nil || room.pauseTick != t {
		return
	}

	room.pauseRemaining--
	if room.pauseRemaining > 0 {
		return
	}

	room.pauseTick.stop()
	room.pauseTick = nil
	h.destroyLocked(room)
}
