package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/panoview/internal/navigation"
)

// KeySet is a set of keys currently held down.
type KeySet map[sdl.Keycode]struct{}

// Add marks key as held.
func (s KeySet) Add(key sdl.Keycode) {
	s[key] = struct{}{}
}

// Remove marks key as released.
func (s KeySet) Remove(key sdl.Keycode) {
	delete(s, key)
}

// Has reports whether key is held.
func (s KeySet) Has(key sdl.Keycode) bool {
	_, ok := s[key]
	return ok
}

// Bindings maps navigation actions to the keys that trigger them.
type Bindings map[navigation.Action][]sdl.Keycode

// DefaultBindings returns the stock key layout.
func DefaultBindings() Bindings {
	return Bindings{
		navigation.MoveForward: {sdl.K_w},
		navigation.MoveBack:    {sdl.K_s},
		navigation.MoveLeft:    {sdl.K_a},
		navigation.MoveRight:   {sdl.K_d},
		navigation.MoveDown:    {sdl.K_q},
		navigation.MoveUp:      {sdl.K_e},
		navigation.ZoomIn:      {sdl.K_PLUS, sdl.K_EQUALS, sdl.K_KP_PLUS},
		navigation.ZoomOut:     {sdl.K_MINUS, sdl.K_KP_MINUS},
	}
}

// Bound adapts a KeySet to navigation.Held through bindings.
type Bound struct {
	Keys     KeySet
	Bindings Bindings
}

// Held implements navigation.Held.
func (b Bound) Held(a navigation.Action) bool {
	for _, k := range b.Bindings[a] {
		if b.Keys.Has(k) {
			return true
		}
	}
	return false
}
