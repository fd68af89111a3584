package achievements

import (
	"fmt"

	"github.com/nikogura/skill-dashboard/pkg/aggregate"
	"github.com/nikogura/skill-dashboard/pkg/events"
	"github.com/pkg/errors"
)

// Condition decides whether an achievement is earned. Conditions must be pure
// and must return false, not fail, on empty input.
type Condition func(soft, hard aggregate.Accumulator, data events.Dataset) bool

// Definition is one entry of the achievement catalog.
type Definition struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	Badge                string    `json:"badge"`
	Condition            Condition `json:"-"`
	ConditionDescription string    `json:"condition_description"`
}

// Status is the evaluated state of one definition.
type Status struct {
	Definition
	Earned bool `json:"earned"`
}

// Catalog is a validated, ordered, immutable set of definitions.
type Catalog struct {
	defs  []Definition
	index map[string]int
}

// NewCatalog validates defs and builds a catalog that preserves their order.
// Every condition is run once against empty input; a condition that panics
// is reported here instead of during evaluation.
func NewCatalog(defs ...Definition) (catalog *Catalog, err error) {
	index := make(map[string]int, len(defs))

	for i, def := range defs {
		if def.ID == "" {
			err = errors.Errorf("achievement at index %d missing ID", i)
			return catalog, err
		}
		if def.Title == "" {
			err = errors.Errorf("achievement %s missing title", def.ID)
			return catalog, err
		}
		if def.Condition == nil {
			err = errors.Errorf("achievement %s missing condition", def.ID)
			return catalog, err
		}
		if _, dup := index[def.ID]; dup {
			err = errors.Errorf("duplicate achievement ID: %s", def.ID)
			return catalog, err
		}

		err = checkCondition(def)
		if err != nil {
			return catalog, err
		}

		index[def.ID] = i
	}

	catalog = &Catalog{
		defs:  append([]Definition(nil), defs...),
		index: index,
	}

	return catalog, err
}

// MustCatalog is like NewCatalog but panics on an invalid catalog.
func MustCatalog(defs ...Definition) (catalog *Catalog) {
	catalog, err := NewCatalog(defs...)
	if err != nil {
		panic(err)
	}
	return catalog
}

func checkCondition(def Definition) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("achievement %s condition panicked on empty input: %v", def.ID, r)
		}
	}()

	def.Condition(aggregate.Accumulator{}, aggregate.Accumulator{}, events.Dataset{})

	return err
}

// Len returns the number of definitions.
func (c *Catalog) Len() (count int) {
	count = len(c.defs)
	return count
}

// Definitions returns a copy of the definitions in catalog order.
func (c *Catalog) Definitions() (defs []Definition) {
	defs = append([]Definition(nil), c.defs...)
	return defs
}

// Lookup returns the definition with the given ID.
func (c *Catalog) Lookup(id string) (def Definition, ok bool) {
	i, ok := c.index[id]
	if ok {
		def = c.defs[i]
	}
	return def, ok
}

// Evaluate runs every condition in catalog order. Conditions are not guarded:
// a panic propagates to the caller rather than silently marking an
// achievement as unearned.
func (c *Catalog) Evaluate(soft, hard aggregate.Accumulator, data events.Dataset) (statuses []Status) {
	statuses = make([]Status, 0, len(c.defs))
	for _, def := range c.defs {
		statuses = append(statuses, Status{
			Definition: def,
			Earned:     def.Condition(soft, hard, data),
		})
	}
	return statuses
}

// Earned returns the set of earned achievement IDs.
func (c *Catalog) Earned(soft, hard aggregate.Accumulator, data events.Dataset) (earned map[string]bool) {
	earned = make(map[string]bool)
	for _, status := range c.Evaluate(soft, hard, data) {
		if status.Earned {
			earned[status.ID] = true
		}
	}
	return earned
}

// String implements fmt.Stringer.
func (s Status) String() (str string) {
	mark := "locked"
	if s.Earned {
		mark = "earned"
	}
	str = fmt.Sprintf("%s (%s)", s.ID, mark)
	return str
}
