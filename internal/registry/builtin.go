package registry

func init() {
	Register(Preset{
		ID:          "solo",
		Title:       "Solo Battle",
		Description: "single start, plain destructible walls",
	})
	Register(Preset{
		ID:          "solo-escape",
		Title:       "Solo Escape",
		Description: "single start, heal walls, reach the exit",
		Escape:      true,
	})
	Register(Preset{
		ID:          "duel",
		Title:       "Duel",
		Description: "two central spawns, reward and heal walls",
		DualSpawn:   true,
		Width:       31,
		Height:      21,
	})
	Register(Preset{
		ID:          "duel-escape",
		Title:       "Duel Escape",
		Description: "two central spawns racing to a fair exit",
		DualSpawn:   true,
		Escape:      true,
		Width:       31,
		Height:      21,
	})
	Register(Preset{
		ID:          "arena",
		Title:       "Arena",
		Description: "large duel map with extra enemies",
		DualSpawn:   true,
		Width:       41,
		Height:      31,
		EnemyCount:  10,
	})
}
