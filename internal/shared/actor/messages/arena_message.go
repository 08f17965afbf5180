package messages

// ArenaMessage 是发往竞技场 actor 的请求，ManagerActor 按 ArenaID 转发。
type ArenaMessage interface {
	ArenaID() int
}

type ArenaBaseMessage struct {
	Arena int
}

func (m ArenaBaseMessage) ArenaID() int {
	return m.Arena
}

type HAArenaState struct {
	ArenaBaseMessage
}

type AHArenaState struct {
	State ArenaState
}

type HANextRound struct {
	ArenaBaseMessage
}

type AHNextRound struct {
	Round RoundView
	State ArenaState
}

// HARestart 在同一棋盘上重开一局，Seed 为 0 时沿用配置的种子派生。
type HARestart struct {
	ArenaBaseMessage
	Seed int64
}

type AHRestart struct {
	State ArenaState
}
