package component

// MenuOption indexes the 2x2 combat menu: the top row is Fight, Swap and the
// bottom row Item, Run.
type MenuOption int

const (
	MenuFight MenuOption = iota
	MenuSwap
	MenuItem
	MenuRun
)

const MenuOptionCount = 4

func (o MenuOption) String() string {
	switch o {
	case MenuFight:
		return "Fight"
	case MenuSwap:
		return "Swap"
	case MenuItem:
		return "Item"
	case MenuRun:
		return "Run"
	default:
		return "?"
	}
}

// Step moves the selection by delta, wrapping into [0, MenuOptionCount).
func (o MenuOption) Step(delta int) MenuOption {
	n := (int(o) + delta) % MenuOptionCount
	if n < 0 {
		n += MenuOptionCount
	}
	return MenuOption(n)
}

// CombatMenu is the root of the menu UI. While Active is false the menu
// slides off screen and ignores selection input. SlideOffset is in world
// units from HomeX.
type CombatMenu struct {
	Selected    MenuOption
	Active      bool
	SlideOffset float64
	HomeX       float64
}

var CombatMenuComponent = NewComponent[CombatMenu]()

// CombatButton marks one option of the menu; its first child is the panel.
type CombatButton struct {
	Option MenuOption
}

var CombatButtonComponent = NewComponent[CombatButton]()

// NineSlice marks the root of a bordered panel.
type NineSlice struct {
	Width  int
	Height int
}

var NineSliceComponent = NewComponent[NineSlice]()
