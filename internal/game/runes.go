package game

import "liveclient-replay/internal/domain"

// The timeline record carries perk ids but not display text, and resolving
// those needs runesReforged.json which the session does not load yet. Until
// then every player gets the same stock Domination page, as the original
// mock did.
// TODO: resolve rune names from the perk ids on the match record.

func defaultKeystone() domain.Rune {
	return domain.Rune{
		DisplayName:    "Electrocute",
		ID:             8112,
		RawDescription: "perk_tooltip_Electrocute",
		RawDisplayName: "perk_displayname_Electrocute",
	}
}

func defaultRunes() domain.Runes {
	return domain.Runes{
		Keystone: defaultKeystone(),
		PrimaryRuneTree: domain.Rune{
			DisplayName:    "Domination",
			ID:             8100,
			RawDescription: "perkstyle_tooltip_7200",
			RawDisplayName: "perkstyle_displayname_7200",
		},
		SecondaryRuneTree: domain.Rune{
			DisplayName:    "Sorcery",
			ID:             8200,
			RawDescription: "perkstyle_tooltip_7202",
			RawDisplayName: "perkstyle_displayname_7202",
		},
	}
}

func defaultFullRunes() domain.FullRunes {
	base := defaultRunes()
	return domain.FullRunes{
		GeneralRunes: []domain.Rune{
			defaultKeystone(),
			{DisplayName: "Cheap Shot", ID: 8126, RawDescription: "perk_tooltip_CheapShot", RawDisplayName: "perk_displayname_CheapShot"},
			{DisplayName: "Eyeball Collection", ID: 8138, RawDescription: "perk_tooltip_EyeballCollection", RawDisplayName: "perk_displayname_EyeballCollection"},
			{DisplayName: "Relentless Hunter", ID: 8105, RawDescription: "perk_tooltip_8105", RawDisplayName: "perk_displayname_8105"},
			{DisplayName: "Celerity", ID: 8234, RawDescription: "perk_tooltip_Celerity", RawDisplayName: "perk_displayname_Celerity"},
			{DisplayName: "Gathering Storm", ID: 8236, RawDescription: "perk_tooltip_GatheringStorm", RawDisplayName: "perk_displayname_GatheringStorm"},
		},
		Keystone:          base.Keystone,
		PrimaryRuneTree:   base.PrimaryRuneTree,
		SecondaryRuneTree: base.SecondaryRuneTree,
		StatRunes: []domain.StatRune{
			{ID: 5008, RawDescription: "perk_tooltip_StatModAdaptive"},
			{ID: 5003, RawDescription: "perk_tooltip_StatModMagicResist"},
			{ID: 5003, RawDescription: "perk_tooltip_StatModMagicResist"},
		},
	}
}

func defaultSummonerSpells() domain.SummonerSpells {
	return domain.SummonerSpells{
		SummonerSpellOne: domain.SummonerSpell{
			DisplayName:    "Flash",
			RawDescription: "GeneratedTip_SummonerSpell_SummonerFlash_Description",
			RawDisplayName: "GeneratedTip_SummonerSpell_SummonerFlash_DisplayName",
		},
		SummonerSpellTwo: domain.SummonerSpell{
			DisplayName:    "Ignite",
			RawDescription: "GeneratedTip_SummonerSpell_SummonerDot_Description",
			RawDisplayName: "GeneratedTip_SummonerSpell_SummonerDot_DisplayName",
		},
	}
}
