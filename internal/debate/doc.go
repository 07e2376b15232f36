// Package debate 管理即時辯論房間的狀態。
//
// 這個包負責房間的建立與銷毀、雙方的發言回合倒數、WebRTC 信令的轉送、
// 斷線後的暫停與寬限期,以及錄影片段的彙整。所有狀態都保存在記憶體中,
// 由單一程序持有,不跨程序共享。
package debate
