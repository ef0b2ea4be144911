package component

// EncounterTimer accumulates seconds spent walking on grass. When Elapsed
// reaches Target a wild encounter starts and Target is redrawn in [Min, Max).
type EncounterTimer struct {
	Elapsed float64
	Target  float64
	Min     float64
	Max     float64
}

var EncounterTimerComponent = NewComponent[EncounterTimer]()
