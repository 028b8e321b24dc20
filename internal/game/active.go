package game

import (
	"liveclient-replay/internal/ddragon"
	"liveclient-replay/internal/domain"
)

// activePlayer is the distinguished participant modeled in full detail. Its
// displayed gold is a floored projection of the session ledger, never stored
// here.
type activePlayer struct {
	participantID int
	detail        domain.ActivePlayer
}

// spend charges the ledger for a purchase. An item with components consumes
// every held component stack and only charges the marginal difference, the
// way the in-game shop does.
func (s *Session) spend(p *Participant, itemID int, item ddragon.Item) {
	if item.TotalCost() == 0 {
		return
	}
	if len(item.From) == 0 {
		s.gold -= float64(item.TotalCost())
		return
	}

	due := item.TotalCost()
	kept := p.Items[:0]
	for _, held := range p.Items {
		if !item.HasComponent(held.ItemID) {
			kept = append(kept, held)
			continue
		}
		component, err := s.items.ByID(held.ItemID)
		if err != nil {
			// Catalog is loaded in full before any event applies, so a held
			// item always resolves; a miss means the stack was built outside
			// the catalog and contributes nothing.
			s.logger.Warn().Int("item_id", held.ItemID).Msg("held component missing from catalog")
			continue
		}
		due -= component.TotalCost()
	}
	p.Items = kept
	s.gold -= float64(due)

	s.logger.Debug().
		Int("item_id", itemID).
		Str("item", item.Name).
		Int("charged", due).
		Msg("purchase charged to ledger")
}

// refund credits the ledger when an owned item leaves the inventory. An
// explicit sell and a shop undo both credit the catalog sell value; a
// destroyed (consumed) item credits nothing and never reaches here.
func (s *Session) refund(itemID int, item ddragon.Item) {
	credit := item.SellValue()
	if credit == 0 {
		return
	}
	s.gold += float64(credit)
	s.logger.Debug().
		Int("item_id", itemID).
		Str("item", item.Name).
		Int("credited", credit).
		Msg("refund credited to ledger")
}

// slotForSkill maps a timeline skill slot index to an ability slot. Slot 0 is
// undefined in the wire format and yields false.
func slotForSkill(slot int, abilities *domain.AbilitySlots) (*domain.Ability, bool) {
	switch slot {
	case 1:
		return &abilities.Q, true
	case 2:
		return &abilities.W, true
	case 3:
		return &abilities.E, true
	case 4:
		return &abilities.R, true
	default:
		return nil, false
	}
}
