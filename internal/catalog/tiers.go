package catalog

// Housing tiers. SanMax is the SAN ceiling the tier grants; rent is monthly.
func defaultHousing() map[string]HousingTier {
	return map[string]HousingTier{
		"1": {Level: 1, Name: "Sleeping rough", Cost: 0, SanMax: 100},
		"2": {Level: 2, Name: "Shared basement bunk", Cost: 400, SanMax: 110},
		"3": {Level: 3, Name: "Private room", Cost: 900, SanMax: 130},
		"4": {Level: 4, Name: "Proper apartment", Cost: 1800, SanMax: 160},
		"5": {Level: 5, Name: "Suburban house", Cost: 3200, SanMax: 200},
		"6": {Level: 6, Name: "Ocean-view estate", Cost: 6000, SanMax: 250},
	}
}

// Diet tiers. SanCost is subtracted from SAN each settlement; negative values
// restore SAN.
func defaultDiet() map[string]DietTier {
	return map[string]DietTier{
		"1": {Level: 1, Name: "Instant noodles", Cost: 120, HealthChange: -4, SanCost: 3},
		"2": {Level: 2, Name: "Dollar-menu rotation", Cost: 260, HealthChange: -1, SanCost: 1},
		"3": {Level: 3, Name: "Home cooking", Cost: 480, HealthChange: 3, SanCost: 0},
		"4": {Level: 4, Name: "Balanced groceries", Cost: 850, HealthChange: 6, SanCost: -3},
		"5": {Level: 5, Name: "Organic everything", Cost: 1600, HealthChange: 10, SanCost: -6},
	}
}
