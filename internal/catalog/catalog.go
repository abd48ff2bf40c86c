// Package catalog holds the build-time destination data consumed read-only
// by the search pipeline.
package catalog

import "wandernest-api/internal/entity"

// All returns the full catalog. Callers must treat the slice and its
// entries as immutable.
func All() []entity.Destination {
	return destinations
}

// ByID returns a single catalog entry.
func ByID(id string) (entity.Destination, bool) {
	for _, d := range destinations {
		if d.ID == id {
			return d, true
		}
	}
	return entity.Destination{}, false
}

var destinations = []entity.Destination{
	{
		ID: "bali", Name: "Bali", Country: "Indonesia", Continent: "Asia",
		Description: "Tropical beaches, lush rice terraces and Hindu temples on the Island of the Gods.",
		Price:       "From $89/night", Rating: 4.8, Category: "Beach",
		TravelTypes: []string{"Beach", "Nature", "Cultural"}, BudgetLevel: "Low",
		BestSeason: "Jun - Aug", Duration: "1 Week",
		TopAttractions: []string{"Uluwatu Temple", "Tegallalang Rice Terraces", "Seminyak Beach"},
		Coordinates:    &entity.Coordinates{Lat: -8.3405, Lng: 115.092},
	},
	{
		ID: "paris", Name: "Paris", Country: "France", Continent: "Europe",
		Description: "The city of light, art, fashion and gastronomy along the Seine.",
		Price:       "From $156/night", Rating: 4.7, Category: "Urban",
		TravelTypes: []string{"Urban", "Cultural", "Food"}, BudgetLevel: "High",
		BestSeason: "Mar - May", Duration: "Weekend",
		TopAttractions: []string{"Eiffel Tower", "Louvre Museum", "Montmartre"},
		Coordinates:    &entity.Coordinates{Lat: 48.8566, Lng: 2.3522},
	},
	{
		ID: "kyoto", Name: "Kyoto", Country: "Japan", Continent: "Asia",
		Description: "Ancient temples, geisha districts and cherry blossoms in Japan's old capital.",
		Price:       "From $120/night", Rating: 4.9, Category: "Cultural",
		TravelTypes: []string{"Cultural", "History", "Nature"}, BudgetLevel: "Medium",
		BestSeason: "Mar - May", Duration: "1 Week",
		TopAttractions: []string{"Fushimi Inari Shrine", "Kinkaku-ji", "Arashiyama Bamboo Grove"},
		Coordinates:    &entity.Coordinates{Lat: 35.0116, Lng: 135.7681},
	},
	{
		ID: "santorini", Name: "Santorini", Country: "Greece", Continent: "Europe",
		Description: "Whitewashed villages perched above the caldera of a volcanic Aegean island.",
		Price:       "From $210/night", Rating: 4.8, Category: "Beach",
		TravelTypes: []string{"Beach", "Luxury", "Cultural"}, BudgetLevel: "High",
		BestSeason: "Jun - Aug", Duration: "Weekend",
		TopAttractions: []string{"Oia Sunset", "Red Beach", "Akrotiri"},
		Coordinates:    &entity.Coordinates{Lat: 36.3932, Lng: 25.4615},
	},
	{
		ID: "machu-picchu", Name: "Machu Picchu", Country: "Peru", Continent: "South America",
		Description: "The lost city of the Incas high in the Andes, reached by rail or the Inca Trail.",
		Price:       "From $75/night", Rating: 4.9, Category: "Adventure",
		TravelTypes: []string{"Adventure", "History", "Nature"}, BudgetLevel: "Medium",
		BestSeason: "Jun - Aug", Duration: "1 Week",
		TopAttractions: []string{"Inca Trail", "Huayna Picchu", "Sacred Valley"},
		Coordinates:    &entity.Coordinates{Lat: -13.1631, Lng: -72.545},
	},
	{
		ID: "new-york", Name: "New York City", Country: "United States", Continent: "North America",
		Description: "Skyscrapers, Broadway and world-class museums in the city that never sleeps.",
		Price:       "From $230/night", Rating: 4.6, Category: "Urban",
		TravelTypes: []string{"Urban", "Food", "Cultural"}, BudgetLevel: "High",
		BestSeason: "Sep - Nov", Duration: "Weekend",
		TopAttractions: []string{"Central Park", "Times Square", "Metropolitan Museum of Art"},
		Coordinates:    &entity.Coordinates{Lat: 40.7128, Lng: -74.006},
	},
	{
		ID: "cape-town", Name: "Cape Town", Country: "South Africa", Continent: "Africa",
		Description: "Table Mountain, winelands and penguin beaches at the tip of Africa.",
		Price:       "From $95/night", Rating: 4.7, Category: "Adventure",
		TravelTypes: []string{"Adventure", "Nature", "Beach"}, BudgetLevel: "Medium",
		BestSeason: "Dec - Feb", Duration: "1 Week",
		TopAttractions: []string{"Table Mountain", "Boulders Beach", "Cape Point"},
		Coordinates:    &entity.Coordinates{Lat: -33.9249, Lng: 18.4241},
	},
	{
		ID: "sydney", Name: "Sydney", Country: "Australia", Continent: "Oceania",
		Description: "Harbour city of sails, surf beaches and laid-back urban life.",
		Price:       "From $180/night", Rating: 4.6, Category: "Urban",
		TravelTypes: []string{"Urban", "Beach", "Food"}, BudgetLevel: "High",
		BestSeason: "Dec - Feb", Duration: "1 Week",
		TopAttractions: []string{"Sydney Opera House", "Bondi Beach", "Harbour Bridge"},
		Coordinates:    &entity.Coordinates{Lat: -33.8688, Lng: 151.2093},
	},
	{
		ID: "marrakech", Name: "Marrakech", Country: "Morocco", Continent: "Africa",
		Description: "Souks, riads and the snake charmers of Jemaa el-Fnaa at the edge of the Sahara.",
		Price:       "From $65/night", Rating: 4.5, Category: "Cultural",
		TravelTypes: []string{"Cultural", "History", "Food"}, BudgetLevel: "Low",
		BestSeason: "Mar - May", Duration: "Weekend",
		TopAttractions: []string{"Jemaa el-Fnaa", "Majorelle Garden", "Bahia Palace"},
		Coordinates:    &entity.Coordinates{Lat: 31.6295, Lng: -7.9811},
	},
	{
		ID: "reykjavik", Name: "Reykjavik", Country: "Iceland", Continent: "Europe",
		Description: "Gateway to glaciers, geysers and the northern lights.",
		Price:       "From $195/night", Rating: 4.7, Category: "Nature",
		TravelTypes: []string{"Nature", "Adventure"}, BudgetLevel: "High",
		BestSeason: "Sep - Nov", Duration: "1 Week",
		TopAttractions: []string{"Blue Lagoon", "Golden Circle", "Hallgrimskirkja"},
		Coordinates:    &entity.Coordinates{Lat: 64.1466, Lng: -21.9426},
	},
	{
		ID: "bangkok", Name: "Bangkok", Country: "Thailand", Continent: "Asia",
		Description: "Golden temples, canal markets and the best street food on earth.",
		Price:       "From $45/night", Rating: 4.5, Category: "Urban",
		TravelTypes: []string{"Urban", "Food", "Cultural"}, BudgetLevel: "Low",
		BestSeason: "Dec - Feb", Duration: "1 Week",
		TopAttractions: []string{"Grand Palace", "Wat Arun", "Chatuchak Market"},
		Coordinates:    &entity.Coordinates{Lat: 13.7563, Lng: 100.5018},
	},
	{
		ID: "rome", Name: "Rome", Country: "Italy", Continent: "Europe",
		Description: "The eternal city of ruins, piazzas and carbonara.",
		Price:       "From $140/night", Rating: 4.8, Category: "Cultural",
		TravelTypes: []string{"Cultural", "History", "Food"}, BudgetLevel: "Medium",
		BestSeason: "Mar - May", Duration: "Weekend",
		TopAttractions: []string{"Colosseum", "Vatican Museums", "Trevi Fountain"},
		Coordinates:    &entity.Coordinates{Lat: 41.9028, Lng: 12.4964},
	},
	{
		ID: "queenstown", Name: "Queenstown", Country: "New Zealand", Continent: "Oceania",
		Description: "Adventure capital of the world, ringed by lakes and the Remarkables.",
		Price:       "From $125/night", Rating: 4.8, Category: "Adventure",
		TravelTypes: []string{"Adventure", "Nature"}, BudgetLevel: "Medium",
		BestSeason: "Dec - Feb", Duration: "1 Week",
		TopAttractions: []string{"Milford Sound", "Bungy Jumping", "Lake Wakatipu"},
		Coordinates:    &entity.Coordinates{Lat: -45.0312, Lng: 168.6626},
	},
	{
		ID: "dubai", Name: "Dubai", Country: "UAE", Continent: "Asia",
		Description: "Desert luxury, record-breaking towers and indoor ski slopes.",
		Price:       "From $250/night", Rating: 4.4, Category: "Luxury",
		TravelTypes: []string{"Luxury", "Urban"}, BudgetLevel: "High",
		BestSeason: "Dec - Feb", Duration: "Weekend",
		TopAttractions: []string{"Burj Khalifa", "Palm Jumeirah", "Dubai Mall"},
		Coordinates:    &entity.Coordinates{Lat: 25.2048, Lng: 55.2708},
	},
	{
		ID: "rio", Name: "Rio de Janeiro", Country: "Brazil", Continent: "South America",
		Description: "Carnival, Copacabana and Christ the Redeemer above Guanabara Bay.",
		Price:       "From $85/night", Rating: 4.6, Category: "Beach",
		TravelTypes: []string{"Beach", "Urban", "Cultural"}, BudgetLevel: "Medium",
		BestSeason: "Dec - Feb", Duration: "1 Week",
		TopAttractions: []string{"Christ the Redeemer", "Sugarloaf Mountain", "Copacabana"},
		Coordinates:    &entity.Coordinates{Lat: -22.9068, Lng: -43.1729},
	},
	{
		ID: "istanbul", Name: "Istanbul", Country: "Turkey", Continent: "Europe",
		Description: "Where continents meet: bazaars, mosques and Bosphorus ferries.",
		Price:       "From $70/night", Rating: 4.6, Category: "Cultural",
		TravelTypes: []string{"Cultural", "History", "Food"}, BudgetLevel: "Low",
		BestSeason: "Sep - Nov", Duration: "Weekend",
		TopAttractions: []string{"Hagia Sophia", "Grand Bazaar", "Blue Mosque"},
		Coordinates:    &entity.Coordinates{Lat: 41.0082, Lng: 28.9784},
	},
	{
		ID: "maldives", Name: "Maldives", Country: "Maldives", Continent: "Asia",
		Description: "Overwater villas on coral atolls in impossibly blue water.",
		Price:       "From $450/night", Rating: 4.9, Category: "Luxury",
		TravelTypes: []string{"Luxury", "Beach"}, BudgetLevel: "High",
		BestSeason: "Dec - Feb", Duration: "1 Week",
		TopAttractions: []string{"Male Atoll", "Banana Reef", "Bioluminescent Beach"},
		Coordinates:    &entity.Coordinates{Lat: 3.2028, Lng: 73.2207},
	},
	{
		ID: "barcelona", Name: "Barcelona", Country: "Spain", Continent: "Europe",
		Description: "Gaudi's fantasy architecture, tapas bars and Mediterranean beaches.",
		Price:       "From $130/night", Rating: 4.7, Category: "Urban",
		TravelTypes: []string{"Urban", "Beach", "Food", "Cultural"}, BudgetLevel: "Medium",
		BestSeason: "Jun - Aug", Duration: "Weekend",
		TopAttractions: []string{"Sagrada Familia", "Park Guell", "La Rambla"},
		Coordinates:    &entity.Coordinates{Lat: 41.3874, Lng: 2.1686},
	},
	{
		ID: "petra", Name: "Petra", Country: "Jordan", Continent: "Asia",
		Description: "A rose-red city carved into desert canyons two thousand years ago.",
		Price:       "From $90/night", Rating: 4.8, Category: "History",
		TravelTypes: []string{"History", "Adventure", "Cultural"}, BudgetLevel: "Medium",
		BestSeason: "Mar - May", Duration: "Weekend",
		TopAttractions: []string{"The Treasury", "The Monastery", "Siq Canyon"},
		Coordinates:    &entity.Coordinates{Lat: 30.3285, Lng: 35.4444},
	},
	{
		ID: "banff", Name: "Banff", Country: "Canada", Continent: "North America",
		Description: "Turquoise lakes and grizzly country in the Canadian Rockies.",
		Price:       "From $165/night", Rating: 4.8, Category: "Nature",
		TravelTypes: []string{"Nature", "Adventure"}, BudgetLevel: "Medium",
		BestSeason: "Jun - Aug", Duration: "1 Week",
		TopAttractions: []string{"Lake Louise", "Moraine Lake", "Icefields Parkway"},
		Coordinates:    &entity.Coordinates{Lat: 51.1784, Lng: -115.5708},
	},
	{
		ID: "hanoi", Name: "Hanoi", Country: "Vietnam", Continent: "Asia",
		Description: "Old-quarter alleys, egg coffee and motorbike rivers of the Vietnamese capital.",
		Price:       "From $35/night", Rating: 4.5, Category: "Cultural",
		TravelTypes: []string{"Cultural", "Food", "Urban"}, BudgetLevel: "Low",
		BestSeason: "Sep - Nov", Duration: "1 Week",
		TopAttractions: []string{"Hoan Kiem Lake", "Old Quarter", "Ha Long Bay day trips"},
		Coordinates:    &entity.Coordinates{Lat: 21.0278, Lng: 105.8342},
	},
	{
		ID: "amalfi", Name: "Amalfi Coast", Country: "Italy", Continent: "Europe",
		Description: "Cliffside villages, lemon groves and hairpin coastal drives.",
		Price:       "From $220/night", Rating: 4.7, Category: "Luxury",
		TravelTypes: []string{"Luxury", "Beach", "Food"}, BudgetLevel: "High",
		BestSeason: "Jun - Aug", Duration: "1 Week",
		TopAttractions: []string{"Positano", "Ravello", "Path of the Gods"},
		Coordinates:    &entity.Coordinates{Lat: 40.634, Lng: 14.6027},
	},
	{
		ID: "cusco", Name: "Cusco", Country: "Peru", Continent: "South America",
		Description: "Inca walls under colonial arcades, gateway to the Sacred Valley.",
		Price:       "From $55/night", Rating: 4.6, Category: "History",
		TravelTypes: []string{"History", "Cultural", "Adventure"}, BudgetLevel: "Low",
		BestSeason: "Jun - Aug", Duration: "1 Week",
		TopAttractions: []string{"Sacsayhuaman", "Plaza de Armas", "San Pedro Market"},
		Coordinates:    &entity.Coordinates{Lat: -13.5319, Lng: -71.9675},
	},
	{
		ID: "serengeti", Name: "Serengeti", Country: "Tanzania", Continent: "Africa",
		Description: "The great migration across endless savannah plains.",
		Price:       "From $320/night", Rating: 4.9, Category: "Nature",
		TravelTypes: []string{"Nature", "Adventure", "Luxury"}, BudgetLevel: "High",
		BestSeason: "Jun - Aug", Duration: "2+ Weeks",
		TopAttractions: []string{"Great Migration", "Ngorongoro Crater", "Balloon Safari"},
		Coordinates:    &entity.Coordinates{Lat: -2.3333, Lng: 34.8333},
	},
	{
		ID: "lisbon", Name: "Lisbon", Country: "Portugal", Continent: "Europe",
		Description: "Tiled facades, tram 28 and pasteis de nata over seven hills.",
		Price:       "From $95/night", Rating: 4.6, Category: "Urban",
		TravelTypes: []string{"Urban", "Food", "Cultural"}, BudgetLevel: "Low",
		BestSeason: "Mar - May", Duration: "Weekend",
		TopAttractions: []string{"Belem Tower", "Alfama", "Jeronimos Monastery"},
		Coordinates:    &entity.Coordinates{Lat: 38.7223, Lng: -9.1393},
	},
	{
		ID: "singapore", Name: "Singapore", Country: "Singapore", Continent: "Asia",
		Description: "Supertrees, hawker centres and a skyline garden city.",
		Price:       "From $175/night", Rating: 4.7, Category: "Urban",
		TravelTypes: []string{"Urban", "Food", "Luxury"}, BudgetLevel: "High",
		BestSeason: "Dec - Feb", Duration: "Weekend",
		TopAttractions: []string{"Gardens by the Bay", "Marina Bay Sands", "Hawker Centres"},
		Coordinates:    &entity.Coordinates{Lat: 1.3521, Lng: 103.8198},
	},
	{
		ID: "patagonia", Name: "Patagonia", Country: "Argentina", Continent: "South America",
		Description: "Granite spires, glaciers and wind-blasted steppe at the end of the world.",
		Price:       "From $110/night", Rating: 4.8, Category: "Adventure",
		TravelTypes: []string{"Adventure", "Nature"}, BudgetLevel: "Medium",
		BestSeason: "Dec - Feb", Duration: "2+ Weeks",
		TopAttractions: []string{"Perito Moreno Glacier", "Fitz Roy", "Torres del Paine"},
		Coordinates:    &entity.Coordinates{Lat: -49.3306, Lng: -72.8864},
	},
	{
		ID: "cairo", Name: "Cairo", Country: "Egypt", Continent: "Africa",
		Description: "Pyramids on the horizon and five thousand years of history on the Nile.",
		Price:       "From $60/night", Rating: 4.4, Category: "History",
		TravelTypes: []string{"History", "Cultural"}, BudgetLevel: "Low",
		BestSeason: "Sep - Nov", Duration: "1 Week",
		TopAttractions: []string{"Pyramids of Giza", "Egyptian Museum", "Khan el-Khalili"},
		Coordinates:    &entity.Coordinates{Lat: 30.0444, Lng: 31.2357},
	},
	{
		ID: "bora-bora", Name: "Bora Bora", Country: "French Polynesia", Continent: "Oceania",
		Description: "A lagoon of every blue around a drowned volcano.",
		Price:       "From $520/night", Rating: 4.9, Category: "Luxury",
		TravelTypes: []string{"Luxury", "Beach"}, BudgetLevel: "High",
		BestSeason: "Jun - Aug", Duration: "1 Week",
		TopAttractions: []string{"Matira Beach", "Mount Otemanu", "Coral Gardens"},
		Coordinates:    &entity.Coordinates{Lat: -16.5004, Lng: -151.7415},
	},
	{
		ID: "mexico-city", Name: "Mexico City", Country: "Mexico", Continent: "North America",
		Description: "Aztec ruins, murals and taco stands in the high-altitude megacity.",
		Price:       "From $70/night", Rating: 4.5, Category: "Urban",
		TravelTypes: []string{"Urban", "Food", "History"}, BudgetLevel: "Low",
		BestSeason: "Mar - May", Duration: "Weekend",
		TopAttractions: []string{"Zocalo", "Teotihuacan", "Frida Kahlo Museum"},
		Coordinates:    &entity.Coordinates{Lat: 19.4326, Lng: -99.1332},
	},
}
