package presenter

import (
	"sync"

	"github.com/soocke/signdetect-go/domain/detection"
)

// StateView sets the state label in the view.
type StateView interface{ SetStateLabel(string) }

// StatePresenter receives session transitions from the controller goroutine
// and reflects the latest one on the next UI tick.
type StatePresenter struct {
	view StateView

	mu      sync.Mutex
	pending []detection.State
	latest  detection.State
	shown   bool
}

func NewStatePresenter(view StateView) *StatePresenter {
	return &StatePresenter{view: view}
}

// OnState queues a transitioned state. Safe to use as a detection.StateListener target.
func (p *StatePresenter) OnState(prev, next detection.State) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.pending = append(p.pending, next)
	p.mu.Unlock()
}

// Tick reflects the most recent queued state and clears the queue.
func (p *StatePresenter) Tick() {
	if p == nil || p.view == nil {
		return
	}
	p.mu.Lock()
	if len(p.pending) == 0 {
		p.mu.Unlock()
		if !p.shown {
			p.shown = true
			p.view.SetStateLabel("State: " + p.latest.String())
		}
		return
	}
	last := p.pending[len(p.pending)-1]
	p.pending = p.pending[:0]
	p.mu.Unlock()
	if last != p.latest || !p.shown {
		p.latest = last
		p.shown = true
		p.view.SetStateLabel("State: " + last.String())
	}
}
