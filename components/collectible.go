package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// MaxCollectibles is the collectible pool capacity
const MaxCollectibles = 100

type CollectibleKind int

const (
	CollectibleHealthPoint CollectibleKind = iota
	CollectibleScore
)

type Collectible struct {
	Position math.Vec2
	Velocity math.Vec2
	Radius   float64
	Kind     CollectibleKind
	Active   bool
	Lifetime float64
}

type CollectiblePoolData struct {
	Items [MaxCollectibles]Collectible
	Count int
}

var CollectiblePool = donburi.NewComponentType[CollectiblePoolData]()

func (p *CollectiblePoolData) Spawn(c Collectible) bool {
	if p.Count >= MaxCollectibles {
		return false
	}
	c.Active = true
	p.Items[p.Count] = c
	p.Count++
	return true
}

func (p *CollectiblePoolData) Compact() {
	write := 0
	for read := 0; read < p.Count; read++ {
		if !p.Items[read].Active {
			continue
		}
		if write != read {
			p.Items[write] = p.Items[read]
		}
		write++
	}
	for i := write; i < p.Count; i++ {
		p.Items[i] = Collectible{}
	}
	p.Count = write
}

func (p *CollectiblePoolData) Clear() {
	*p = CollectiblePoolData{}
}

func (p *CollectiblePoolData) Live() []Collectible {
	return p.Items[:p.Count]
}
