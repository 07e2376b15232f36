package debate

// Record 把一段媒體片段接到錄製中的片段串上。
// 房間不存在(可能已經結束)就丟棄,錄影不回報錯誤。
func (h *Hub) Record(debateID string, blob []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room := h.rooms[debateID]
	if room == nil {
		return
	}
	room.current = append(room.current, blob)
}

// Recordings 回傳已封存的錄影片段,每個片段對應一段不中斷的連線
func (h *Hub) Recordings(debateID string) [][][]byte {
	h.mu.Lock()
	defer h.mu.Unlock()

	room := h.rooms[debateID]
	if room == nil {
		return nil
	}
	out := make([][][]byte, len(room.sealed))
	copy(out, room.sealed)
	return out
}

// sealSegmentLocked 把錄製中的片段封存起來。
// 每次進入寬限期或辯論結束時呼叫一次;目前沒有內容就什麼都不做,
// 不會留下空片段。
func (h *Hub) sealSegmentLocked(room *Room) {
	if len(room.current) == 0 {
		return
	}
	room.sealed = append(room.sealed, room.current)
	room.current = nil
}
