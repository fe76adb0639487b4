package entities

// DefaultAutonomousRegions is the initial region set of the Império do Brasil.
func DefaultAutonomousRegions() []AutonomousRegion {
	return []AutonomousRegion{
		{ID: "1", Name: "Ducado de Serpa", Title: "Ducado", CoatOfArms: "https://static.rivalregions.com/static/states_gerbs/4915_m/4915_1744060471_big.png"},
		{ID: "2", Name: "Viscondado da Paraíba", Title: "Viscondado", CoatOfArms: "https://static.rivalregions.com/static/states_gerbs/4915_m/4915_1742161223_big.png"},
		{ID: "3", Name: "Ducado de Pernambuco", Title: "Ducado", CoatOfArms: "https://static.rivalregions.com/static/states_gerbs/4915_m/4915_1742266067_big.png"},
		{ID: "4", Name: "Viscondado de S. Paulo", Title: "Viscondado", CoatOfArms: "https://static.rivalregions.com/static/states_gerbs/4915_m/4915_1744283563_big.png"},
		{ID: "5", Name: "Ducado de Tocantins", Title: "Ducado", CoatOfArms: "https://static.rivalregions.com/static/states_gerbs/4915_m/4915_1742531301_big.png"},
		{ID: "6", Name: "Viscondado do Ceará", Title: "Viscondado", CoatOfArms: "https://static.rivalregions.com/static/states_gerbs/4915_m/4915_1743375399_big.png"},
		{ID: "7", Name: "Limpopo", Title: "Região Autônoma", CoatOfArms: "https://static.rivalregions.com/static/regions_gerbs/15501_big.png?5"},
		{ID: "8", Name: "Viscondado do Planalto", Title: "Viscondado", CoatOfArms: "https://static.rivalregions.com/static/states_gerbs/4915_m/4915_1744253259_big.png"},
	}
}

// DefaultDataSources holds the parliament log of the Império do Brasil.
func DefaultDataSources() []DataSource {
	return []DataSource{
		{
			ID:          "1",
			URL:         "https://rivalregions.com/#log/index/parliament/3005606",
			Description: "Parlamento do Império do Brasil",
			Active:      true,
		},
	}
}
