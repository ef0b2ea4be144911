package component

import "image/color"

type EnemyType int

const (
	EnemyBat EnemyType = iota
	EnemyZombie
	EnemyGhost
	EnemyDemon
	EnemyGiant
)

func (t EnemyType) String() string {
	switch t {
	case EnemyBat:
		return "bat"
	case EnemyZombie:
		return "zombie"
	case EnemyGhost:
		return "ghost"
	case EnemyDemon:
		return "demon"
	case EnemyGiant:
		return "giant"
	default:
		return "unknown"
	}
}

type Enemy struct {
	Type   EnemyType
	Glyph  int
	Color  color.NRGBA
	Health int
	Exp    int
}

var EnemyComponent = NewComponent[Enemy]()

// FightAction is a one-shot request sent by the combat menu.
type FightAction struct{}

var FightActionComponent = NewComponent[FightAction]()
