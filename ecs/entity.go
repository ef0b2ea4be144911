package ecs

import "fmt"

// Entity packs a slot id in the low 32 bits and the slot's generation in
// the high 32 bits. The zero Entity is never alive.
type Entity uint64

type (
	entityID   uint32
	generation uint32
)

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID { return entityID(uint32(e)) }

func (e Entity) generation() generation { return generation(uint32(uint64(e) >> entityIDBits)) }

// String renders the handle as id "v" generation, e.g. 3v1.
func (e Entity) String() string {
	return fmt.Sprintf("%dv%d", e.id(), e.generation())
}

// Valid reports whether e names a slot at all; it says nothing about
// liveness.
func (e Entity) Valid() bool {
	return e.id() != 0
}
