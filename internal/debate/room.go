package debate

import "time"

const (
	// prepTurn 是辯論開始前的準備回合,finalTurn 是最後一個發言回合
	prepTurn  = 0
	finalTurn = 6

	// disconnectBudget 是每一方允許的斷線次數,用完即判輸
	disconnectBudget = 3

	// graceSeconds 是房間清空後等待雙方回來的寬限秒數
	graceSeconds = 60
)

// turnDurations 定義每個回合的秒數,索引對應回合編號。
// 回合 0 是 3 秒的準備時間;1、2 是開場陳述,3、4 是質詢,5、6 是結辯。
var turnDurations = [...]int{3, 240, 240, 180, 180, 120, 120}

// prosTurns 標出屬於正方的發言回合,其餘發言回合屬於反方
var prosTurns = map[int]bool{1: true, 4: true, 5: true}

// sideOwnsTurn 判斷指定回合是否輪到該方發言
func sideOwnsTurn(isPros bool, turn int) bool {
	if turn < 1 || turn > finalTurn {
		return false
	}
	if isPros {
		return prosTurns[turn]
	}
	return !prosTurns[turn]
}

// Room 保存一場辯論的全部即時狀態,只能透過 Hub 的操作讀寫
type Room struct {
	debateID string

	size                 int
	prosReady, consReady bool
	started              bool

	turn  int // -1 表示尚未開始,0 為準備回合,1~6 為發言回合
	timer int // 當前回合剩餘秒數

	prosBudget, consBudget int // 各方剩餘的斷線額度
	pauseRemaining         int // 寬限期剩餘秒數,僅供客戶端顯示

	peers map[string]Peer // connID -> 連線

	// 每個房間同一時間最多只有一個在跑的計時:辯論倒數或暫停倒數
	debateTick *tick
	pauseTick  *tick
	settle     *time.Timer

	current [][]byte   // 錄製中的片段
	sealed  [][][]byte // 已封存的片段,每段對應一段不中斷的連線
}

func newRoom(debateID string) *Room {
	return &Room{
		debateID:       debateID,
		turn:           -1,
		timer:          -1,
		prosBudget:     disconnectBudget,
		consBudget:     disconnectBudget,
		pauseRemaining: graceSeconds,
		peers:          make(map[string]Peer),
	}
}

func (r *Room) budget(isPros bool) int {
	if isPros {
		return r.prosBudget
	}
	return r.consBudget
}

func (r *Room) spendBudget(isPros bool) {
	if isPros {
		r.prosBudget--
	} else {
		r.consBudget--
	}
}

// emit 把事件送給房間內所有人
func (r *Room) emit(event string, data any) {
	for _, p := range r.peers {
		p.Send(event, data)
	}
}

// emitExcept 把事件送給除了 exclude 以外的人,也就是另一位參與者
func (r *Room) emitExcept(exclude string, event string, data any) {
	for id, p := range r.peers {
		if id != exclude {
			p.Send(event, data)
		}
	}
}
