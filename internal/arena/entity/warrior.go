package entity

// Attributes 是战士的生命属性。Age 只增不减。
type Attributes struct {
	Age      int `json:"age"`
	Health   int `json:"health"`
	Strength int `json:"strength"`
}

// Warrior 是棋盘上的战斗单位。id 创建后不可变。
type Warrior struct {
	id       int
	name     string
	location Point
	previous Point

	Attributes
}

func NewWarrior(id int, name string) *Warrior {
	return &Warrior{id: id, name: name}
}

func (w *Warrior) ID() int {
	return w.id
}

func (w *Warrior) Name() string {
	return w.name
}

func (w *Warrior) Location() Point {
	return w.location
}

// PreviousLocation 是最近一次移动前所在的格子。
func (w *Warrior) PreviousLocation() Point {
	return w.previous
}

// SetLocation 移动战士，旧位置记入 PreviousLocation。
func (w *Warrior) SetLocation(p Point) {
	w.previous = w.location
	w.location = p
}

// Direction 是最近一次移动的朝向。
func (w *Warrior) Direction() Direction {
	return GetDirection(w.previous, w.location)
}
