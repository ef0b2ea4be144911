package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/monsterfighter/ecs/component"
	"github.com/milk9111/monsterfighter/prefabs"
)

// DefaultDamage is dealt when no script is loaded or the script fails.
const DefaultDamage = 1

// DamageScript computes fight damage from a tengo script. The script sees
// enemy_type and enemy_health and must set damage.
type DamageScript struct {
	name     string
	compiled *tengo.Compiled
}

func LoadDamageScript(name string) (*DamageScript, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("damage script: load %s: %w", name, err)
	}
	ds, err := NewDamageScript(name, src)
	if err != nil {
		return nil, err
	}
	return ds, nil
}

func NewDamageScript(name string, src []byte) (*DamageScript, error) {
	script := tengo.NewScript(src)
	if err := script.Add("enemy_type", ""); err != nil {
		return nil, fmt.Errorf("damage script %s: add enemy_type: %w", name, err)
	}
	if err := script.Add("enemy_health", 0); err != nil {
		return nil, fmt.Errorf("damage script %s: add enemy_health: %w", name, err)
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("damage script %s: compile: %w", name, err)
	}
	return &DamageScript{name: name, compiled: compiled}, nil
}

// Damage runs the script against enemy. Any failure falls back to
// DefaultDamage.
func (d *DamageScript) Damage(enemy component.Enemy) int {
	if d == nil || d.compiled == nil {
		return DefaultDamage
	}
	if err := d.compiled.Set("enemy_type", enemy.Type.String()); err != nil {
		log.Printf("damage script %s: set enemy_type: %v", d.name, err)
		return DefaultDamage
	}
	if err := d.compiled.Set("enemy_health", enemy.Health); err != nil {
		log.Printf("damage script %s: set enemy_health: %v", d.name, err)
		return DefaultDamage
	}
	if err := d.compiled.Run(); err != nil {
		log.Printf("damage script %s: run: %v", d.name, err)
		return DefaultDamage
	}
	v := d.compiled.Get("damage")
	if v == nil || v.ValueType() != "int" {
		log.Printf("damage script %s: damage is not an int", d.name)
		return DefaultDamage
	}
	return v.Int()
}
