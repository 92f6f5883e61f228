package component

import "fmt"

// Type identifies a component kind. A store holds at most one component per type.
type Type uint16

// String returns the registered name of the type, or its hex value.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("0x%04x", uint16(t))
}

var typeNames = map[Type]string{}

// RegisterTypeName associates a display name with a component type.
// Packages defining component kinds call this from init.
func RegisterTypeName(t Type, name string) {
	typeNames[t] = name
}

// Descriptor describes a component instance.
type Descriptor struct {
	// Type is the component kind.
	Type Type

	// Name is a human-readable name, used in logs.
	Name string
}

// Component is implemented by everything stored in a Store.
type Component interface {
	// Descriptor returns the component descriptor.
	Descriptor() Descriptor

	// Reset returns the component to its disconnected state.
	// It must not mark the component dirty.
	Reset()
}

// Observer is notified when a committed batch includes a component.
type Observer interface {
	// OnComponentChanged is called once per commit for each changed component.
	OnComponentChanged(c Component)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(c Component)

// OnComponentChanged calls f(c).
func (f ObserverFunc) OnComponentChanged(c Component) {
	f(c)
}

// Core is the embeddable base of store-backed components.
// It links a component to its store for dirty marking.
type Core struct {
	desc  Descriptor
	store *Store
}

// NewCore creates a component base for the given descriptor and store.
func NewCore(desc Descriptor, store *Store) Core {
	return Core{desc: desc, store: store}
}

// Descriptor returns the component descriptor.
func (c *Core) Descriptor() Descriptor {
	return c.desc
}

// MarkChanged marks the component dirty in its store.
// The change is published on the next Store.Commit.
func (c *Core) MarkChanged() {
	if c.store != nil {
		c.store.MarkDirty(c.desc.Type)
	}
}

// Reset is a no-op; components embedding Core provide their own.
func (c *Core) Reset() {}
