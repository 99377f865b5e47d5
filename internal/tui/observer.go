package tui

import (
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/favorites"
)

// ChannelObserver adapts favorites listeners to a channel for Bubble Tea.
type ChannelObserver struct {
	ch chan []domain.Movie
}

// NewChannelObserver creates a new channel-based observer.
func NewChannelObserver(size int) *ChannelObserver {
	return &ChannelObserver{ch: make(chan []domain.Movie, size)}
}

// Attach subscribes the observer to svc; the returned func unsubscribes.
func (o *ChannelObserver) Attach(svc *favorites.Service) func() {
	return svc.Subscribe(o.OnChange)
}

// OnChange sends the new set to the channel (non-blocking if full).
func (o *ChannelObserver) OnChange(movies []domain.Movie) {
	select {
	case o.ch <- movies:
	default: // Non-blocking if channel full
	}
}

// Chan returns the receive side of the channel.
func (o *ChannelObserver) Chan() <-chan []domain.Movie {
	return o.ch
}
