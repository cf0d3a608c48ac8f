// Package entities holds the animated inhabitants of the pond.
//
// Every kind satisfies Entity: Update advances one tick and never draws,
// Display emits primitives and never mutates. Entities never look at each
// other, so update order has no effect on the outcome.
package entities

import "github.com/pthm-cable/pond/canvas"

// Entity is the per-tick contract shared by Fly, Frog and Fern.
type Entity interface {
	Update()
	Display(s canvas.Surface)
}

// Kind identifies an entity variant.
type Kind uint8

const (
	KindFly Kind = iota
	KindFrog
	KindFern
)

func (k Kind) String() string {
	switch k {
	case KindFly:
		return "fly"
	case KindFrog:
		return "frog"
	case KindFern:
		return "fern"
	default:
		return "unknown"
	}
}

var (
	_ Entity = (*Fly)(nil)
	_ Entity = (*Frog)(nil)
	_ Entity = (*Fern)(nil)
)
