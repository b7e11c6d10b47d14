// golos-labs/golos-bot/telegram/poller.go
package telegram

import (
	"context"
	"time"

	"github.com/golos-labs/golos-bot/log"
)

// OffsetStore persists the getUpdates acknowledgement offset so a restart
// does not re-deliver messages that were already processed.
type OffsetStore interface {
	LoadOffset(ctx context.Context) (int64, error)
	SaveOffset(ctx context.Context, offset int64) error
}

// Poller long-polls the Bot API and hands each update to the handler.
// Updates are dispatched in arrival order; the handler decides whether to
// process them concurrently.
type Poller struct {
	session *Session
	offsets OffsetStore
	timeout time.Duration
	handle  func(Update)
}

// NewPoller wires a poller to a session. offsets may be nil, in which case
// the offset lives only in memory for the lifetime of the process.
func NewPoller(session *Session, offsets OffsetStore, timeout time.Duration, handle func(Update)) *Poller {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Poller{session: session, offsets: offsets, timeout: timeout, handle: handle}
}

// Run polls until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) {
	var offset int64
	if p.offsets != nil {
		saved, err := p.offsets.LoadOffset(ctx)
		if err != nil {
			log.Error("loading update offset", err)
		} else {
			offset = saved
		}
	}

	for {
		if ctx.Err() != nil {
			return
		}

		updates, next, err := p.session.GetUpdates(ctx, offset, p.timeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Error("polling telegram updates", err)
			select {
			case <-time.After(3 * time.Second):
			case <-ctx.Done():
				return
			}
			continue
		}

		for _, u := range updates {
			p.handle(u)
		}

		if next != offset {
			offset = next
			if p.offsets != nil {
				if err := p.offsets.SaveOffset(ctx, offset); err != nil {
					log.Error("saving update offset", err)
				}
			}
		}
	}
}
