package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// MaxParryEffects is the parry ring pool capacity
const MaxParryEffects = 32

// ParryEffect is the expanding ring drawn where a bullet was parried
type ParryEffect struct {
	Position math.Vec2
	Radius   float64
	Lifetime float64
	Duration float64
	Active   bool
	Growth   *gween.Tween // Drives Radius
}

// Alpha fades the ring out over its lifetime
func (e *ParryEffect) Alpha() float64 {
	if e.Duration <= 0 {
		return 0
	}
	return e.Lifetime / e.Duration
}

type ParryEffectPoolData struct {
	Effects [MaxParryEffects]ParryEffect
	Count   int
}

var ParryEffectPool = donburi.NewComponentType[ParryEffectPoolData]()

func (p *ParryEffectPoolData) Spawn(e ParryEffect) bool {
	if p.Count >= MaxParryEffects {
		return false
	}
	e.Active = true
	p.Effects[p.Count] = e
	p.Count++
	return true
}

func (p *ParryEffectPoolData) Compact() {
	write := 0
	for read := 0; read < p.Count; read++ {
		if !p.Effects[read].Active {
			continue
		}
		if write != read {
			p.Effects[write] = p.Effects[read]
		}
		write++
	}
	for i := write; i < p.Count; i++ {
		p.Effects[i] = ParryEffect{}
	}
	p.Count = write
}

func (p *ParryEffectPoolData) Clear() {
	*p = ParryEffectPoolData{}
}

func (p *ParryEffectPoolData) Live() []ParryEffect {
	return p.Effects[:p.Count]
}
