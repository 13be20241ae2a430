package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/panoview/internal/navigation"
)

func TestDefaultBindings(t *testing.T) {
	bindings := DefaultBindings()

	tests := []struct {
		name string
		key  sdl.Keycode
		want navigation.Action
	}{
		{"w", sdl.K_w, navigation.MoveForward},
		{"s", sdl.K_s, navigation.MoveBack},
		{"a", sdl.K_a, navigation.MoveLeft},
		{"d", sdl.K_d, navigation.MoveRight},
		{"q", sdl.K_q, navigation.MoveDown},
		{"e", sdl.K_e, navigation.MoveUp},
		{"plus", sdl.K_PLUS, navigation.ZoomIn},
		{"equals", sdl.K_EQUALS, navigation.ZoomIn},
		{"keypad plus", sdl.K_KP_PLUS, navigation.ZoomIn},
		{"minus", sdl.K_MINUS, navigation.ZoomOut},
		{"keypad minus", sdl.K_KP_MINUS, navigation.ZoomOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			held := Bound{Keys: KeySet{tt.key: {}}, Bindings: bindings}
			for a := navigation.MoveForward; a <= navigation.ZoomOut; a++ {
				if got := held.Held(a); got != (a == tt.want) {
					t.Errorf("Held(%v) = %v with only this key down", a, got)
				}
			}
		})
	}
}

func TestBoundNothingHeld(t *testing.T) {
	held := Bound{Keys: KeySet{sdl.K_F12: {}}, Bindings: DefaultBindings()}
	for a := navigation.MoveForward; a <= navigation.ZoomOut; a++ {
		if held.Held(a) {
			t.Errorf("Held(%v) = true with an unbound key down", a)
		}
	}
}

func TestKeySet(t *testing.T) {
	s := make(KeySet)
	s.Add(sdl.K_w)
	s.Add(sdl.K_w)
	if !s.Has(sdl.K_w) || len(s) != 1 {
		t.Fatalf("expected exactly w held, got %v", s)
	}

	s.Remove(sdl.K_w)
	s.Remove(sdl.K_a)
	if s.Has(sdl.K_w) || len(s) != 0 {
		t.Errorf("expected empty set, got %v", s)
	}
}
