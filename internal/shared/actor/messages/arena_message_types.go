package messages

type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type WarriorView struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Location  Cell   `json:"location"`
	Previous  Cell   `json:"previous"`
	Direction string `json:"direction"`
	Age       int    `json:"age"`
	Health    int    `json:"health"`
	Strength  int    `json:"strength"`
}

// ArenaState 是一次只读快照：棋盘、避难格、本回合战斗格和全部存活战士。
type ArenaState struct {
	ArenaID     int           `json:"arena_id"`
	MatchID     int64         `json:"match_id,string"`
	Generation  int           `json:"generation"`
	Round       int           `json:"round"`
	State       string        `json:"state"`
	XStart      int           `json:"x_start"`
	YStart      int           `json:"y_start"`
	XLimit      int           `json:"x_limit"`
	YLimit      int           `json:"y_limit"`
	Sanctuaries []Cell        `json:"sanctuaries"`
	Fights      []Cell        `json:"fights"`
	Warriors    []WarriorView `json:"warriors"`
}

type FightView struct {
	Location Cell `json:"location"`
	A        int  `json:"a"`
	B        int  `json:"b"`
	Winner   int  `json:"winner"` // -1 表示平局
}

// RoundView 是推送给观战者的回合摘要。
type RoundView struct {
	ArenaID   int           `json:"arena_id"`
	MatchID   int64         `json:"match_id,string"`
	Round     int           `json:"round"`
	Fights    []FightView   `json:"fights"`
	Removed   []int         `json:"removed"`
	Survivors int           `json:"survivors"`
	Concluded bool          `json:"concluded"`
	Warriors  []WarriorView `json:"warriors"`
}
