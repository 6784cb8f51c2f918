// Package behavior holds the sprite behavior model: the shared read-only
// profile, the boundary-aware direction selector, the wander loop state and
// the happy/angry mood cycle. Nothing here depends on rendering or input.
package behavior

import (
	"fmt"
	"image/color"

	"github.com/jakecoffman/cp"
)

// Profile describes one kind of sprite. Profiles are shared by pointer
// between every entity using them and must not be modified after load.
type Profile struct {
	Name string

	Speed                   Value
	DirectionSwitchInterval Value
	OnscreenMargins         cp.Vector
	Directions              Directions

	HappyColor    color.Color
	AngryColor    color.Color
	AngryInterval Value
	AngryDuration Value
}

// Color returns the tint for mood.
func (p *Profile) Color(m Mood) color.Color {
	if m == Angry {
		return p.AngryColor
	}
	return p.HappyColor
}

// ViewBounds applies the profile margins to the camera view.
func (p *Profile) ViewBounds(orthoSize, aspect float64, center cp.Vector) cp.BB {
	return ComputeViewBounds(orthoSize, aspect, center, p.OnscreenMargins)
}

func (p *Profile) Validate() error {
	values := []struct {
		name string
		v    Value
	}{
		{"speed", p.Speed},
		{"direction_switch_interval", p.DirectionSwitchInterval},
		{"angry_interval", p.AngryInterval},
		{"angry_duration", p.AngryDuration},
	}
	for _, nv := range values {
		if err := nv.v.Validate(); err != nil {
			return fmt.Errorf("profile %q: %s: %w", p.Name, nv.name, err)
		}
		if nv.v.Lowest() < 0 {
			return fmt.Errorf("profile %q: %s must not be negative, got %s", p.Name, nv.name, nv.v)
		}
	}
	if p.AngryInterval.Lowest() == 0 && p.AngryDuration.Lowest() == 0 {
		return fmt.Errorf("profile %q: angry_interval and angry_duration must not both be zero", p.Name)
	}
	if p.OnscreenMargins.X < 0 || p.OnscreenMargins.Y < 0 {
		return fmt.Errorf("profile %q: onscreen_margins must not be negative", p.Name)
	}
	if p.HappyColor == nil || p.AngryColor == nil {
		return fmt.Errorf("profile %q: happy_color and angry_color are required", p.Name)
	}
	return nil
}
