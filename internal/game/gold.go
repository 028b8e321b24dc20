package game

import "fmt"

// BuildingReward is the gold paid out when a building falls: Global goes to
// every player on the killing team, Local only to the killer and assisters.
type BuildingReward struct {
	Global int
	Local  int
}

// BuildingGoldTable is configuration data, not a hardcoded rule: per game
// mode, the reward for each building type. Riot has changed these values
// across patches, so they are supplied and validated rather than assumed.
type BuildingGoldTable map[string]map[string]BuildingReward

const (
	BuildingTower     = "TOWER_BUILDING"
	BuildingInhibitor = "INHIBITOR_BUILDING"
)

// DefaultBuildingGold matches the values observed on current patches.
func DefaultBuildingGold() BuildingGoldTable {
	return BuildingGoldTable{
		"CLASSIC": {
			BuildingTower:     {Global: 250, Local: 150},
			BuildingInhibitor: {Global: 50, Local: 0},
		},
		"ARAM": {
			BuildingTower:     {Global: 150, Local: 0},
			BuildingInhibitor: {Global: 50, Local: 0},
		},
	}
}

// Validate rejects negative amounts and unknown building types.
func (t BuildingGoldTable) Validate() error {
	for mode, rewards := range t {
		for building, reward := range rewards {
			if building != BuildingTower && building != BuildingInhibitor {
				return fmt.Errorf("building gold table: unknown building type %q for mode %q", building, mode)
			}
			if reward.Global < 0 || reward.Local < 0 {
				return fmt.Errorf("building gold table: negative reward for %s in mode %q", building, mode)
			}
		}
	}
	return nil
}

// Reward looks up the payout for a building in the given mode, falling back
// to CLASSIC when the mode has no entry of its own.
func (t BuildingGoldTable) Reward(mode, building string) (BuildingReward, bool) {
	if rewards, ok := t[mode]; ok {
		if reward, ok := rewards[building]; ok {
			return reward, true
		}
	}
	if mode != "CLASSIC" {
		return t.Reward("CLASSIC", building)
	}
	return BuildingReward{}, false
}
