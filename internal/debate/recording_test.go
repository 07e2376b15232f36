package debate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func currentSegmentLen(h *Hub, debateID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if room := h.rooms[debateID]; room != nil {
		return len(room.current)
	}
	return 0
}

func TestRecordAppendsToCurrentSegment(t *testing.T) {
	h := NewHub()
	startedRoom(t, h, "X")

	h.Record("X", []byte("frag-1"))
	h.Record("X", []byte("frag-2"))
	assert.Equal(t, 2, currentSegmentLen(h, "X"))

	// 封存前還沒有完成的片段
	assert.Empty(t, h.Recordings("X"))
}

func TestRecordUnknownRoomIsDropped(t *testing.T) {
	h := NewHub()
	h.Record("nope", []byte("frag"))
	assert.Nil(t, h.Recordings("nope"))
}

func TestSegmentSealedAtGraceWindowEntry(t *testing.T) {
	h := NewHub()
	startedRoom(t, h, "X")
	h.Record("X", []byte("frag-1"))
	h.Record("X", []byte("frag-2"))

	h.Leave("conn-pros")
	h.Leave("conn-cons")
	freezeTicks(h, "X")

	sealed := h.Recordings("X")
	require.Len(t, sealed, 1)
	assert.Equal(t, [][]byte{[]byte("frag-1"), []byte("frag-2")}, sealed[0])
	assert.Equal(t, 0, currentSegmentLen(h, "X"))
}

func TestEmptySegmentIsNeverSealed(t *testing.T) {
	h := NewHub()
	startedRoom(t, h, "X")

	// 沒有錄任何東西就清場:不會產生空片段
	h.Leave("conn-pros")
	h.Leave("conn-cons")
	freezeTicks(h, "X")

	assert.Empty(t, h.Recordings("X"))
}

func TestSegmentPerConnectedStretch(t *testing.T) {
	h := NewHub()
	h.settleDelay = 0
	startedRoom(t, h, "X")

	h.Record("X", []byte("first"))
	h.Leave("conn-pros")
	h.Leave("conn-cons")
	freezeTicks(h, "X")

	// 兩個人都回來,錄下第二段
	h.Join(newFakePeer("p2"), "X", true)
	h.Join(newFakePeer("c2"), "X", false)
	freezeTicks(h, "X")
	h.Record("X", []byte("second"))

	h.Leave("p2")
	h.Leave("c2")
	freezeTicks(h, "X")

	sealed := h.Recordings("X")
	require.Len(t, sealed, 2)
	assert.Equal(t, []byte("first"), sealed[0][0])
	assert.Equal(t, []byte("second"), sealed[1][0])
}
