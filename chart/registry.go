package chart

import (
	"slices"
)

// Slot is an active chart kind of the plot area with its options.
type Slot struct {
	Tag     Tag
	Options Options
}

// Registry holds the active slots of a plot area, at most one per tag.
type Registry struct {
	Slots map[Tag]*Slot
}

func NewRegistry() *Registry {
	return &Registry{
		Slots: make(map[Tag]*Slot),
	}
}

func (r *Registry) Get(tag Tag) (*Slot, bool) {
	s, ok := r.Slots[tag]
	return s, ok
}

func (r *Registry) Active(tag Tag) bool {
	_, ok := r.Slots[tag]
	return ok
}

// Activate returns the slot for tag, creating it when needed. Options given
// are merged on top of the current ones. Options of another family are
// ignored.
func (r *Registry) Activate(tag Tag, opts ...Options) *Slot {
	s, ok := r.Slots[tag]
	if !ok {
		s = &Slot{
			Tag:     tag,
			Options: newOptions(tag.family()),
		}
		if r.Slots == nil {
			r.Slots = make(map[Tag]*Slot)
		}
		r.Slots[tag] = s
	}
	for _, o := range opts {
		if o == nil || o.family() != tag.family() {
			continue
		}
		s.Options.merge(o)
	}
	return s
}

func (r *Registry) Reset() {
	clear(r.Slots)
}

func (r *Registry) Len() int {
	return len(r.Slots)
}

// Ordered gives the active slots in render order.
func (r *Registry) Ordered() []*Slot {
	var list []*Slot
	for _, t := range renderOrder {
		if s, ok := r.Slots[t]; ok {
			list = append(list, s)
		}
	}
	return list
}

// Tags gives the active tags in render order.
func (r *Registry) Tags() []Tag {
	var list []Tag
	for _, s := range r.Ordered() {
		list = append(list, s.Tag)
	}
	return slices.Clip(list)
}
