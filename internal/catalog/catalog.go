package catalog

import (
	"fmt"
	"slices"
)

// position locates a level inside the catalog.
type position struct {
	module int
	index  int
}

// Catalog is an immutable, validated course. All accessors return copies.
type Catalog struct {
	modules  []Module
	byModule map[string]int
	byLevel  map[string]position
	total    int
}

// New validates modules and builds the catalog indices. Validation problems
// are reported together in a single *ValidationError.
func New(modules []Module) (*Catalog, error) {
	if err := validateModules(modules); err != nil {
		return nil, err
	}

	c := &Catalog{
		modules:  cloneModules(modules),
		byModule: make(map[string]int, len(modules)),
		byLevel:  make(map[string]position),
	}
	for mi := range c.modules {
		c.byModule[c.modules[mi].ID] = mi
		for li := range c.modules[mi].Levels {
			c.byLevel[c.modules[mi].Levels[li].ID] = position{module: mi, index: li}
			c.total++
		}
	}
	return c, nil
}

// MustNew is New for static catalogs; it panics on invalid input.
func MustNew(modules []Module) *Catalog {
	c, err := New(modules)
	if err != nil {
		panic(err)
	}
	return c
}

// Modules returns all modules in display order.
func (c *Catalog) Modules() []Module {
	return cloneModules(c.modules)
}

// Module returns a module by ID.
func (c *Catalog) Module(id string) (Module, bool) {
	i, ok := c.byModule[id]
	if !ok {
		return Module{}, false
	}
	return cloneModule(c.modules[i]), true
}

// Level returns a level by ID together with the ID of its owning module.
func (c *Catalog) Level(id string) (Level, string, bool) {
	p, ok := c.byLevel[id]
	if !ok {
		return Level{}, "", false
	}
	m := c.modules[p.module]
	return m.Levels[p.index], m.ID, true
}

// GetLevel is Level with an error for unknown IDs.
func (c *Catalog) GetLevel(id string) (Level, error) {
	l, _, ok := c.Level(id)
	if !ok {
		return Level{}, fmt.Errorf("level not found: %q", id)
	}
	return l, nil
}

// Position returns the owning module ID and the zero-based index of a level
// within that module.
func (c *Catalog) Position(levelID string) (moduleID string, index int, ok bool) {
	p, ok := c.byLevel[levelID]
	if !ok {
		return "", 0, false
	}
	return c.modules[p.module].ID, p.index, true
}

// Predecessor returns the level immediately before levelID in its module.
// ok is false for first levels and unknown IDs.
func (c *Catalog) Predecessor(levelID string) (string, bool) {
	p, ok := c.byLevel[levelID]
	if !ok || p.index == 0 {
		return "", false
	}
	return c.modules[p.module].Levels[p.index-1].ID, true
}

// LevelIDs returns the ordered level IDs of a module, nil if unknown.
func (c *Catalog) LevelIDs(moduleID string) []string {
	i, ok := c.byModule[moduleID]
	if !ok {
		return nil
	}
	levels := c.modules[i].Levels
	ids := make([]string, len(levels))
	for j, l := range levels {
		ids[j] = l.ID
	}
	return ids
}

// LevelCount returns the total number of levels in the catalog.
func (c *Catalog) LevelCount() int {
	return c.total
}

// HasLevel reports whether id is a level of this catalog.
func (c *Catalog) HasLevel(id string) bool {
	_, ok := c.byLevel[id]
	return ok
}

// BadgeModule returns the module that awards badgeID.
func (c *Catalog) BadgeModule(badgeID string) (Module, bool) {
	for _, m := range c.modules {
		if m.BadgeID == badgeID {
			return cloneModule(m), true
		}
	}
	return Module{}, false
}

func cloneModules(ms []Module) []Module {
	out := make([]Module, len(ms))
	for i := range ms {
		out[i] = cloneModule(ms[i])
	}
	return out
}

// cloneModule copies the level slice. Payload pointers are shared; payloads
// are never mutated after construction.
func cloneModule(m Module) Module {
	m.Levels = slices.Clone(m.Levels)
	return m
}
