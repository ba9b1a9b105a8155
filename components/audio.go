package components

import (
	cfg "github.com/automoto/parrybound/config"
	"github.com/yohamta/donburi"
)

// SoundQueueData collects sounds requested during a tick. The world drains
// it to its sound sink once the tick is over.
type SoundQueueData struct {
	Pending []cfg.SoundID
}

var SoundQueue = donburi.NewComponentType[SoundQueueData]()

func (q *SoundQueueData) Push(id cfg.SoundID) {
	q.Pending = append(q.Pending, id)
}

// Drain returns the queued sounds and empties the queue
func (q *SoundQueueData) Drain() []cfg.SoundID {
	out := q.Pending
	q.Pending = nil
	return out
}
