package entity

import "fmt"

// Point 是棋盘上的整数坐标。
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction 是四个基本朝向，渲染层用它挑选精灵图。
type Direction int8

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return fmt.Sprintf("Direction(%d)", int8(d))
	}
}

// GetDirection 由位移推断朝向：先看 Y，X 有变化时覆盖 Y 的结果；没有位移时返回 Right。
func GetDirection(from, to Point) Direction {
	dir := Right
	if from.Y > to.Y {
		dir = Up
	} else if from.Y < to.Y {
		dir = Down
	}
	if from.X > to.X {
		dir = Left
	} else if from.X < to.X {
		dir = Right
	}
	return dir
}
