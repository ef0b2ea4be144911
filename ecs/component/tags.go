package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// MapTag marks the root entity owning every tile of the loaded map.
type MapTag struct{}

var MapTagComponent = NewComponent[MapTag]()

type TileCollider struct{}

var TileColliderComponent = NewComponent[TileCollider]()

// EncounterZone marks grass tiles that feed the wild encounter timer.
type EncounterZone struct{}

var EncounterZoneComponent = NewComponent[EncounterZone]()

// Name is a debug label shown by the entity dump.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
