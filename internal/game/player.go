package game

import (
	"github.com/rs/zerolog"

	"liveclient-replay/internal/ddragon"
	"liveclient-replay/internal/domain"
)

// Participant is one roster member. The set of participants is fixed at
// session start; only the dispatcher mutates them.
type Participant struct {
	ID     int
	TeamID int
	domain.Player
}

// addItem stacks itemID into the inventory, or appends a new slot. Buying
// past the catalog stack cap is absorbed as a no-op.
func (p *Participant) addItem(itemID int, item ddragon.Item, logger zerolog.Logger) {
	for i := range p.Items {
		if p.Items[i].ItemID != itemID {
			continue
		}
		if p.Items[i].Count >= item.StackLimit() {
			logger.Warn().
				Int("participant_id", p.ID).
				Int("item_id", itemID).
				Str("item", item.Name).
				Int("stack_limit", item.StackLimit()).
				Msg("purchase beyond stack limit ignored")
			return
		}
		p.Items[i].Count++
		return
	}

	p.Items = append(p.Items, domain.Item{
		CanUse:      item.Consumed,
		Consumable:  item.Consumed,
		Count:       1,
		DisplayName: item.Name,
		ItemID:      itemID,
		Price:       item.TotalCost(),
		Slot:        len(p.Items),
	})
}

// removeItem decrements the matching stack, dropping it at zero. Removing an
// item that was never added is logged and ignored.
func (p *Participant) removeItem(itemID int, logger zerolog.Logger) {
	for i := range p.Items {
		if p.Items[i].ItemID != itemID {
			continue
		}
		p.Items[i].Count--
		if p.Items[i].Count <= 0 {
			p.Items = append(p.Items[:i], p.Items[i+1:]...)
		}
		return
	}
	logger.Warn().
		Int("participant_id", p.ID).
		Int("item_id", itemID).
		Msg("remove of item not in inventory ignored")
}

// holdsItem reports whether the inventory has a stack for itemID.
func (p *Participant) holdsItem(itemID int) bool {
	for i := range p.Items {
		if p.Items[i].ItemID == itemID {
			return true
		}
	}
	return false
}
