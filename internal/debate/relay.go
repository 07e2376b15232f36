package debate

// Relay 把信令原封不動轉送給房間裡的另一位參與者,絕不回送給發送者。
// 發送者沒有綁定房間、或房間已經不在時,整個操作靜默略過:
// 信令本來就是盡力而為,房間可能在訊息送達前就已經收掉了。
func (h *Hub) Relay(connID, event string, payload any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	b, ok := h.bindings[connID]
	if !ok {
		return
	}
	room := h.rooms[b.debateID]
	if room == nil {
		return
	}
	room.emitExcept(connID, event, payload)
}
