package ecs

import (
	"errors"

	"github.com/milk9111/monsterfighter/ecs/component"
)

var ErrHierarchyCycle = errors.New("ecs: parent would become its own descendant")

// SetParent attaches child under parent, moving it if it already had one.
// Children keep their insertion order.
func SetParent(w *World, child, parent Entity) error {
	if w == nil || !w.entities.isAlive(child) || !w.entities.isAlive(parent) {
		return component.ErrEntityNotAlive
	}
	for p := parent; p.Valid(); {
		if p == child {
			return ErrHierarchyCycle
		}
		next, ok := w.parents[p.id()]
		if !ok {
			break
		}
		p = next
	}
	detach(w, child)
	w.parents[child.id()] = parent
	w.children[parent.id()] = append(w.children[parent.id()], child)
	return nil
}

// AddChildren attaches each child under parent in order.
func AddChildren(w *World, parent Entity, children ...Entity) error {
	for _, c := range children {
		if err := SetParent(w, c, parent); err != nil {
			return err
		}
	}
	return nil
}

// Parent returns the parent of e, if any.
func Parent(w *World, e Entity) (Entity, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return 0, false
	}
	p, ok := w.parents[e.id()]
	return p, ok
}

// Children returns a copy of e's children in insertion order.
func Children(w *World, e Entity) []Entity {
	if w == nil || !w.entities.isAlive(e) {
		return nil
	}
	return append([]Entity(nil), w.children[e.id()]...)
}

// Descendants returns every entity below e, depth first.
func Descendants(w *World, e Entity) []Entity {
	var out []Entity
	for _, c := range Children(w, e) {
		out = append(out, c)
		out = append(out, Descendants(w, c)...)
	}
	return out
}

func detach(w *World, e Entity) {
	parent, ok := w.parents[e.id()]
	if !ok {
		return
	}
	delete(w.parents, e.id())
	siblings := w.children[parent.id()]
	for i, s := range siblings {
		if s == e {
			w.children[parent.id()] = append(siblings[:i:i], siblings[i+1:]...)
			break
		}
	}
}
