package menu

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/vedic/internal/catalog"
	"github.com/abhisek/vedic/internal/generation"
)

// slotState tracks a card's detail fetch.
type slotState int

const (
	slotEmpty slotState = iota
	slotLoading
	slotReady
	slotFailed
)

// detailSlot caches one card's detail for the card's lifetime.
type detailSlot struct {
	state  slotState
	detail *generation.Detail
	err    error
}

// detailMsg carries a generated detail back to the card that asked for it.
type detailMsg struct {
	cardID uuid.UUID
	detail *generation.Detail
	err    error
}

// card is one technique entry in the selector.
type card struct {
	id        uuid.UUID
	technique catalog.Technique
	expanded  bool
	slot      detailSlot
}

func newCard(t catalog.Technique) *card {
	return &card{id: uuid.New(), technique: t}
}

// toggle flips expansion. The first expansion returns the command that
// fetches the detail; every later call returns nil.
func (c *card) toggle(src generation.Source) tea.Cmd {
	c.expanded = !c.expanded
	if !c.expanded || c.slot.state != slotEmpty {
		return nil
	}
	return c.fetch(src)
}

// retry refetches a failed detail.
func (c *card) retry(src generation.Source) tea.Cmd {
	if c.slot.state != slotFailed {
		return nil
	}
	return c.fetch(src)
}

func (c *card) fetch(src generation.Source) tea.Cmd {
	c.slot = detailSlot{state: slotLoading}
	id, t := c.id, c.technique
	return func() tea.Msg {
		d, err := src.Detail(context.Background(), t)
		return detailMsg{cardID: id, detail: d, err: err}
	}
}

// fill stores a fetch result. Results arriving outside a fetch are dropped.
func (c *card) fill(msg detailMsg) {
	if c.slot.state != slotLoading {
		return
	}
	if msg.err != nil || msg.detail == nil {
		c.slot = detailSlot{state: slotFailed, err: msg.err}
		return
	}
	c.slot = detailSlot{state: slotReady, detail: msg.detail}
}
