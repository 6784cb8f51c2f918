package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/moodsprites/ecs"
	"github.com/milk9111/moodsprites/ecs/component"
)

// PhysicsSystem integrates sprite motion in a Chipmunk space. Sprites are
// kinematic circles: they move at the velocity set by the wander system and
// never push each other. The space doubles as the click hit-test index.
type PhysicsSystem struct {
	space    *cp.Space
	entities map[ecs.Entity]*bodyInfo
}

type bodyInfo struct {
	body  *cp.Body
	shape *cp.Shape
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:    newSpace(),
		entities: make(map[ecs.Entity]*bodyInfo),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	if ps.space == nil {
		ps.space = newSpace()
	}

	ps.syncEntities(w)

	_, dt, running := worldTime(w)
	if !running || dt <= 0 {
		return
	}

	for e, info := range ps.entities {
		if bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
			info.body.SetVelocity(bodyComp.Velocity.X, bodyComp.Velocity.Y)
		}
	}

	ps.space.Step(dt)

	ps.syncTransforms(w)
}

// EntityAt returns the sprite whose shape contains the world point.
func (ps *PhysicsSystem) EntityAt(p cp.Vector) (ecs.Entity, bool) {
	if ps == nil || ps.space == nil {
		return 0, false
	}
	info := ps.space.PointQueryNearest(p, 0, cp.SHAPE_FILTER_ALL)
	if info == nil || info.Shape == nil {
		return 0, false
	}
	e, ok := info.Shape.UserData.(ecs.Entity)
	return e, ok
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if info := ps.entities[e]; info != nil {
			bodyComp.Body = info.body
			bodyComp.Shape = info.shape
			return
		}

		radius := bodyComp.Radius
		if radius <= 0 {
			radius = 0.5
		}

		body := cp.NewKinematicBody()
		body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
		shape := cp.NewCircle(body, radius, cp.Vector{})
		shape.UserData = e

		ps.space.AddBody(body)
		ps.space.AddShape(shape)

		ps.entities[e] = &bodyInfo{body: body, shape: shape}
		bodyComp.Body = body
		bodyComp.Shape = shape
	})
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
		}
		if info.body != nil {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}
