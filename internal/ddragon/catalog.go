// Package ddragon models the Data Dragon reference catalogs (champions and
// items). Catalogs are loaded once per session and are read-only afterwards.
package ddragon

import (
	"fmt"
	"strconv"
)

type ChampionSpell struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ChampionPassive struct {
	Name string `json:"name"`
}

type ChampionStats struct {
	HP          float64 `json:"hp"`
	HPRegen     float64 `json:"hpregen"`
	MP          float64 `json:"mp"`
	MPRegen     float64 `json:"mpregen"`
	MoveSpeed   float64 `json:"movespeed"`
	Armor       float64 `json:"armor"`
	SpellBlock  float64 `json:"spellblock"`
	AttackRange float64 `json:"attackrange"`
	AttackDmg   float64 `json:"attackdamage"`
	AttackSpeed float64 `json:"attackspeed"`
}

type Champion struct {
	ID      string          `json:"id"`
	Key     string          `json:"key"`
	Name    string          `json:"name"`
	Partype string          `json:"partype"`
	Spells  []ChampionSpell `json:"spells"`
	Passive ChampionPassive `json:"passive"`
	Stats   ChampionStats   `json:"stats"`
}

type ChampionJSON struct {
	Type    string              `json:"type"`
	Version string              `json:"version"`
	Data    map[string]Champion `json:"data"`
}

type ItemGold struct {
	Base        int  `json:"base"`
	Total       int  `json:"total"`
	Sell        int  `json:"sell"`
	Purchasable bool `json:"purchasable"`
}

type Item struct {
	Name     string    `json:"name"`
	Gold     *ItemGold `json:"gold,omitempty"`
	Consumed bool      `json:"consumed,omitempty"`
	Stacks   int       `json:"stacks,omitempty"`
	From     []string  `json:"from,omitempty"`
	Into     []string  `json:"into,omitempty"`
}

// StackLimit is the catalog stack cap, defaulting to 1 when the catalog
// does not declare one.
func (i Item) StackLimit() int {
	if i.Stacks > 0 {
		return i.Stacks
	}
	return 1
}

// TotalCost is the full shop price, 0 for costless items.
func (i Item) TotalCost() int {
	if i.Gold == nil {
		return 0
	}
	return i.Gold.Total
}

// SellValue is the gold credited when the item is sold back.
func (i Item) SellValue() int {
	if i.Gold == nil {
		return 0
	}
	return i.Gold.Sell
}

// HasComponent reports whether itemID appears in this item's build recipe.
func (i Item) HasComponent(itemID int) bool {
	id := strconv.Itoa(itemID)
	for _, from := range i.From {
		if from == id {
			return true
		}
	}
	return false
}

type ItemJSON struct {
	Type    string          `json:"type"`
	Version string          `json:"version"`
	Data    map[string]Item `json:"data"`
}

type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("ddragon: no %s with key %q", e.Kind, e.Key)
}

// ChampionCatalog resolves champions by string id ("Aatrox") or numeric key
// ("266", the id matches use).
type ChampionCatalog struct {
	version string
	byID    map[string]Champion
	byKey   map[string]Champion
}

func NewChampionCatalog(raw *ChampionJSON) *ChampionCatalog {
	c := &ChampionCatalog{
		version: raw.Version,
		byID:    make(map[string]Champion, len(raw.Data)),
		byKey:   make(map[string]Champion, len(raw.Data)),
	}
	for _, champ := range raw.Data {
		c.byID[champ.ID] = champ
		c.byKey[champ.Key] = champ
	}
	return c
}

func (c *ChampionCatalog) Version() string { return c.version }

func (c *ChampionCatalog) ByID(id string) (Champion, error) {
	if champ, ok := c.byID[id]; ok {
		return champ, nil
	}
	if champ, ok := c.byKey[id]; ok {
		return champ, nil
	}
	return Champion{}, &NotFoundError{Kind: "champion", Key: id}
}

func (c *ChampionCatalog) ByKey(key int) (Champion, error) {
	return c.ByID(strconv.Itoa(key))
}

// ItemCatalog resolves items by their numeric id.
type ItemCatalog struct {
	version string
	byID    map[int]Item
}

func NewItemCatalog(raw *ItemJSON) (*ItemCatalog, error) {
	c := &ItemCatalog{
		version: raw.Version,
		byID:    make(map[int]Item, len(raw.Data)),
	}
	for id, item := range raw.Data {
		n, err := strconv.Atoi(id)
		if err != nil {
			return nil, fmt.Errorf("ddragon: item key %q is not numeric: %w", id, err)
		}
		c.byID[n] = item
	}
	return c, nil
}

func (c *ItemCatalog) Version() string { return c.version }

func (c *ItemCatalog) ByID(id int) (Item, error) {
	if item, ok := c.byID[id]; ok {
		return item, nil
	}
	return Item{}, &NotFoundError{Kind: "item", Key: strconv.Itoa(id)}
}
