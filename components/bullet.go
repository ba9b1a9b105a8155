package components

import (
	"image/color"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// MaxBullets is the bullet pool capacity
const MaxBullets = 500

type Bullet struct {
	Position math.Vec2
	Velocity math.Vec2
	Radius   float64
	Color    color.RGBA
	Active   bool
	Parried  bool // Reflected by the player; only hurts spawners
}

// BulletPoolData is a fixed-capacity pool. Bullets[:Count] are the live
// slots and every one of them is active after Compact.
type BulletPoolData struct {
	Bullets [MaxBullets]Bullet
	Count   int
}

var BulletPool = donburi.NewComponentType[BulletPoolData]()

// Spawn appends a bullet, dropping it when the pool is full.
func (p *BulletPoolData) Spawn(b Bullet) bool {
	if p.Count >= MaxBullets {
		return false
	}
	b.Active = true
	p.Bullets[p.Count] = b
	p.Count++
	return true
}

// Compact moves active bullets to the front, preserving order.
func (p *BulletPoolData) Compact() {
	write := 0
	for read := 0; read < p.Count; read++ {
		if !p.Bullets[read].Active {
			continue
		}
		if write != read {
			p.Bullets[write] = p.Bullets[read]
		}
		write++
	}
	for i := write; i < p.Count; i++ {
		p.Bullets[i] = Bullet{}
	}
	p.Count = write
}

func (p *BulletPoolData) Clear() {
	*p = BulletPoolData{}
}

// Live returns the occupied slots
func (p *BulletPoolData) Live() []Bullet {
	return p.Bullets[:p.Count]
}
