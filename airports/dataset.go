package airports

import "github.com/fly2any/alt-airports-api/pkg/geo"

// referenceSet is the build-time-embedded airport reference table.
// Coordinates are WGS84 decimal degrees. Metro keys are curated groupings of
// airports that serve the same city cluster and are considered interchangeable
// for substitution (e.g. JFK/LGA/EWR). Popularity is annual passengers in
// millions, rounded, used only as a ranking hint.
//
// Source: ACI World Airport Traffic Rankings, cross-checked against the
// mwgg/Airports dataset for coordinates and time zones.
var referenceSet = []Airport{
	// New York metro
	{Code: "JFK", ICAO: "KJFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "US", Continent: "NA", Timezone: "America/New_York", Coordinates: geo.Coordinates{Lat: 40.6413, Lon: -73.7781}, Metro: "NYC", Hub: true, Popularity: 62, Keywords: []string{"new york", "kennedy", "queens"}},
	{Code: "LGA", ICAO: "KLGA", Name: "LaGuardia Airport", City: "New York", Country: "US", Continent: "NA", Timezone: "America/New_York", Coordinates: geo.Coordinates{Lat: 40.7772, Lon: -73.8726}, Metro: "NYC", Popularity: 31, Keywords: []string{"new york", "laguardia"}},
	{Code: "EWR", ICAO: "KEWR", Name: "Newark Liberty International Airport", City: "Newark", Country: "US", Continent: "NA", Timezone: "America/New_York", Coordinates: geo.Coordinates{Lat: 40.6895, Lon: -74.1745}, Metro: "NYC", Hub: true, Popularity: 49, Keywords: []string{"new york", "newark", "new jersey"}},
	{Code: "HPN", ICAO: "KHPN", Name: "Westchester County Airport", City: "White Plains", Country: "US", Continent: "NA", Timezone: "America/New_York", Coordinates: geo.Coordinates{Lat: 41.0670, Lon: -73.7076}, Metro: "NYC", Popularity: 2},

	// Greater Los Angeles
	{Code: "LAX", ICAO: "KLAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "US", Continent: "NA", Timezone: "America/Los_Angeles", Coordinates: geo.Coordinates{Lat: 33.9425, Lon: -118.4081}, Metro: "QLA", Hub: true, Popularity: 75, Keywords: []string{"los angeles", "socal"}},
	{Code: "BUR", ICAO: "KBUR", Name: "Hollywood Burbank Airport", City: "Burbank", Country: "US", Continent: "NA", Timezone: "America/Los_Angeles", Coordinates: geo.Coordinates{Lat: 34.2007, Lon: -118.3590}, Metro: "QLA", Popularity: 6},
	{Code: "LGB", ICAO: "KLGB", Name: "Long Beach Airport", City: "Long Beach", Country: "US", Continent: "NA", Timezone: "America/Los_Angeles", Coordinates: geo.Coordinates{Lat: 33.8177, Lon: -118.1516}, Metro: "QLA", Popularity: 4},
	{Code: "SNA", ICAO: "KSNA", Name: "John Wayne Airport", City: "Santa Ana", Country: "US", Continent: "NA", Timezone: "America/Los_Angeles", Coordinates: geo.Coordinates{Lat: 33.6757, Lon: -117.8682}, Metro: "QLA", Popularity: 12},
	{Code: "ONT", ICAO: "KONT", Name: "Ontario International Airport", City: "Ontario", Country: "US", Continent: "NA", Timezone: "America/Los_Angeles", Coordinates: geo.Coordinates{Lat: 34.0560, Lon: -117.6012}, Metro: "QLA", Popularity: 6},

	// San Francisco Bay Area
	{Code: "SFO", ICAO: "KSFO", Name: "San Francisco International Airport", City: "San Francisco", Country: "US", Continent: "NA", Timezone: "America/Los_Angeles", Coordinates: geo.Coordinates{Lat: 37.6213, Lon: -122.3790}, Metro: "QSF", Hub: true, Popularity: 52, Keywords: []string{"san francisco", "bay area"}},
	{Code: "OAK", ICAO: "KOAK", Name: "Oakland International Airport", City: "Oakland", Country: "US", Continent: "NA", Timezone: "America/Los_Angeles", Coordinates: geo.Coordinates{Lat: 37.7126, Lon: -122.2197}, Metro: "QSF", Popularity: 11},
	{Code: "SJC", ICAO: "KSJC", Name: "Norman Y. Mineta San Jose International Airport", City: "San Jose", Country: "US", Continent: "NA", Timezone: "America/Los_Angeles", Coordinates: geo.Coordinates{Lat: 37.3639, Lon: -121.9289}, Metro: "QSF", Popularity: 12},

	// Chicago
	{Code: "ORD", ICAO: "KORD", Name: "O'Hare International Airport", City: "Chicago", Country: "US", Continent: "NA", Timezone: "America/Chicago", Coordinates: geo.Coordinates{Lat: 41.9742, Lon: -87.9073}, Metro: "CHI", Hub: true, Popularity: 74},
	{Code: "MDW", ICAO: "KMDW", Name: "Midway International Airport", City: "Chicago", Country: "US", Continent: "NA", Timezone: "America/Chicago", Coordinates: geo.Coordinates{Lat: 41.7868, Lon: -87.7522}, Metro: "CHI", Popularity: 20},

	// Washington / Baltimore
	{Code: "IAD", ICAO: "KIAD", Name: "Washington Dulles International Airport", City: "Washington", Country: "US", Continent: "NA", Timezone: "America/New_York", Coordinates: geo.Coordinates{Lat: 38.9531, Lon: -77.4565}, Metro: "WAS", Hub: true, Popularity: 25},
	{Code: "DCA", ICAO: "KDCA", Name: "Ronald Reagan Washington National Airport", City: "Arlington", Country: "US", Continent: "NA", Timezone: "America/New_York", Coordinates: geo.Coordinates{Lat: 38.8512, Lon: -77.0402}, Metro: "WAS", Popularity: 26},
	{Code: "BWI", ICAO: "KBWI", Name: "Baltimore/Washington International Airport", City: "Baltimore", Country: "US", Continent: "NA", Timezone: "America/New_York", Coordinates: geo.Coordinates{Lat: 39.1754, Lon: -76.6684}, Metro: "WAS", Popularity: 27, Keywords: []string{"baltimore", "washington"}},

	// South Florida
	{Code: "MIA", ICAO: "KMIA", Name: "Miami International Airport", City: "Miami", Country: "US", Continent: "NA", Timezone: "America/New_York", Coordinates: geo.Coordinates{Lat: 25.7959, Lon: -80.2870}, Metro: "QMI", Hub: true, Popularity: 52},
	{Code: "FLL", ICAO: "KFLL", Name: "Fort Lauderdale-Hollywood International Airport", City: "Fort Lauderdale", Country: "US", Continent: "NA", Timezone: "America/New_York", Coordinates: geo.Coordinates{Lat: 26.0726, Lon: -80.1527}, Metro: "QMI", Popularity: 35},
	{Code: "PBI", ICAO: "KPBI", Name: "Palm Beach International Airport", City: "West Palm Beach", Country: "US", Continent: "NA", Timezone: "America/New_York", Coordinates: geo.Coordinates{Lat: 26.6832, Lon: -80.0956}, Metro: "QMI", Popularity: 7},

	// Greater Boston
	{Code: "BOS", ICAO: "KBOS", Name: "Boston Logan International Airport", City: "Boston", Country: "US", Continent: "NA", Timezone: "America/New_York", Coordinates: geo.Coordinates{Lat: 42.3656, Lon: -71.0096}, Metro: "QBS", Hub: true, Popularity: 40},
	{Code: "MHT", ICAO: "KMHT", Name: "Manchester-Boston Regional Airport", City: "Manchester", Country: "US", Continent: "NA", Timezone: "America/New_York", Coordinates: geo.Coordinates{Lat: 42.9326, Lon: -71.4357}, Metro: "QBS", Popularity: 2},
	{Code: "PVD", ICAO: "KPVD", Name: "Rhode Island T.F. Green International Airport", City: "Providence", Country: "US", Continent: "NA", Timezone: "America/New_York", Coordinates: geo.Coordinates{Lat: 41.7267, Lon: -71.4325}, Metro: "QBS", Popularity: 4},

	// Houston
	{Code: "IAH", ICAO: "KIAH", Name: "George Bush Intercontinental Airport", City: "Houston", Country: "US", Continent: "NA", Timezone: "America/Chicago", Coordinates: geo.Coordinates{Lat: 29.9902, Lon: -95.3368}, Metro: "QHO", Hub: true, Popularity: 46},
	{Code: "HOU", ICAO: "KHOU", Name: "William P. Hobby Airport", City: "Houston", Country: "US", Continent: "NA", Timezone: "America/Chicago", Coordinates: geo.Coordinates{Lat: 29.6454, Lon: -95.2789}, Metro: "QHO", Popularity: 13},

	// Dallas
	{Code: "DFW", ICAO: "KDFW", Name: "Dallas/Fort Worth International Airport", City: "Dallas", Country: "US", Continent: "NA", Timezone: "America/Chicago", Coordinates: geo.Coordinates{Lat: 32.8998, Lon: -97.0403}, Metro: "QDA", Hub: true, Popularity: 82},
	{Code: "DAL", ICAO: "KDAL", Name: "Dallas Love Field", City: "Dallas", Country: "US", Continent: "NA", Timezone: "America/Chicago", Coordinates: geo.Coordinates{Lat: 32.8471, Lon: -96.8518}, Metro: "QDA", Popularity: 17},

	// US single-airport cities
	{Code: "ATL", ICAO: "KATL", Name: "Hartsfield-Jackson Atlanta International Airport", City: "Atlanta", Country: "US", Continent: "NA", Timezone: "America/New_York", Coordinates: geo.Coordinates{Lat: 33.6407, Lon: -84.4277}, Hub: true, Popularity: 105},
	{Code: "DEN", ICAO: "KDEN", Name: "Denver International Airport", City: "Denver", Country: "US", Continent: "NA", Timezone: "America/Denver", Coordinates: geo.Coordinates{Lat: 39.8561, Lon: -104.6737}, Hub: true, Popularity: 78},
	{Code: "SEA", ICAO: "KSEA", Name: "Seattle-Tacoma International Airport", City: "Seattle", Country: "US", Continent: "NA", Timezone: "America/Los_Angeles", Coordinates: geo.Coordinates{Lat: 47.4502, Lon: -122.3088}, Hub: true, Popularity: 51},
	{Code: "PHX", ICAO: "KPHX", Name: "Phoenix Sky Harbor International Airport", City: "Phoenix", Country: "US", Continent: "NA", Timezone: "America/Phoenix", Coordinates: geo.Coordinates{Lat: 33.4352, Lon: -112.0101}, Hub: true, Popularity: 49},
	{Code: "LAS", ICAO: "KLAS", Name: "Harry Reid International Airport", City: "Las Vegas", Country: "US", Continent: "NA", Timezone: "America/Los_Angeles", Coordinates: geo.Coordinates{Lat: 36.0840, Lon: -115.1537}, Hub: true, Popularity: 58},
	{Code: "SAN", ICAO: "KSAN", Name: "San Diego International Airport", City: "San Diego", Country: "US", Continent: "NA", Timezone: "America/Los_Angeles", Coordinates: geo.Coordinates{Lat: 32.7336, Lon: -117.1897}, Popularity: 24},
	{Code: "MCO", ICAO: "KMCO", Name: "Orlando International Airport", City: "Orlando", Country: "US", Continent: "NA", Timezone: "America/New_York", Coordinates: geo.Coordinates{Lat: 28.4312, Lon: -81.3081}, Hub: true, Popularity: 58},
	{Code: "TPA", ICAO: "KTPA", Name: "Tampa International Airport", City: "Tampa", Country: "US", Continent: "NA", Timezone: "America/New_York", Coordinates: geo.Coordinates{Lat: 27.9755, Lon: -82.5332}, Popularity: 24},
	{Code: "MSP", ICAO: "KMSP", Name: "Minneapolis-Saint Paul International Airport", City: "Minneapolis", Country: "US", Continent: "NA", Timezone: "America/Chicago", Coordinates: geo.Coordinates{Lat: 44.8848, Lon: -93.2223}, Hub: true, Popularity: 37},
	{Code: "DTW", ICAO: "KDTW", Name: "Detroit Metropolitan Wayne County Airport", City: "Detroit", Country: "US", Continent: "NA", Timezone: "America/Detroit", Coordinates: geo.Coordinates{Lat: 42.2162, Lon: -83.3554}, Hub: true, Popularity: 33},
	{Code: "CLT", ICAO: "KCLT", Name: "Charlotte Douglas International Airport", City: "Charlotte", Country: "US", Continent: "NA", Timezone: "America/New_York", Coordinates: geo.Coordinates{Lat: 35.2144, Lon: -80.9473}, Hub: true, Popularity: 53},
	{Code: "PDX", ICAO: "KPDX", Name: "Portland International Airport", City: "Portland", Country: "US", Continent: "NA", Timezone: "America/Los_Angeles", Coordinates: geo.Coordinates{Lat: 45.5898, Lon: -122.5951}, Popularity: 17},
	{Code: "AUS", ICAO: "KAUS", Name: "Austin-Bergstrom International Airport", City: "Austin", Country: "US", Continent: "NA", Timezone: "America/Chicago", Coordinates: geo.Coordinates{Lat: 30.1975, Lon: -97.6664}, Popularity: 22},
	{Code: "HNL", ICAO: "PHNL", Name: "Daniel K. Inouye International Airport", City: "Honolulu", Country: "US", Continent: "NA", Timezone: "Pacific/Honolulu", Coordinates: geo.Coordinates{Lat: 21.3187, Lon: -157.9225}, Hub: true, Popularity: 21},
	{Code: "ANC", ICAO: "PANC", Name: "Ted Stevens Anchorage International Airport", City: "Anchorage", Country: "US", Continent: "NA", Timezone: "America/Anchorage", Coordinates: geo.Coordinates{Lat: 61.1744, Lon: -149.9961}, Popularity: 6},

	// Canada & Mexico
	{Code: "YYZ", ICAO: "CYYZ", Name: "Toronto Pearson International Airport", City: "Toronto", Country: "CA", Continent: "NA", Timezone: "America/Toronto", Coordinates: geo.Coordinates{Lat: 43.6777, Lon: -79.6248}, Hub: true, Popularity: 45},
	{Code: "YVR", ICAO: "CYVR", Name: "Vancouver International Airport", City: "Vancouver", Country: "CA", Continent: "NA", Timezone: "America/Vancouver", Coordinates: geo.Coordinates{Lat: 49.1967, Lon: -123.1815}, Hub: true, Popularity: 25},
	{Code: "MEX", ICAO: "MMMX", Name: "Mexico City International Airport", City: "Mexico City", Country: "MX", Continent: "NA", Timezone: "America/Mexico_City", Coordinates: geo.Coordinates{Lat: 19.4363, Lon: -99.0721}, Hub: true, Popularity: 48},
	{Code: "CUN", ICAO: "MMUN", Name: "Cancun International Airport", City: "Cancun", Country: "MX", Continent: "NA", Timezone: "America/Cancun", Coordinates: geo.Coordinates{Lat: 21.0365, Lon: -86.8771}, Popularity: 30},

	// London
	{Code: "LHR", ICAO: "EGLL", Name: "London Heathrow Airport", City: "London", Country: "GB", Continent: "EU", Timezone: "Europe/London", Coordinates: geo.Coordinates{Lat: 51.4700, Lon: -0.4543}, Metro: "LON", Hub: true, Popularity: 79, Keywords: []string{"london", "heathrow"}},
	{Code: "LGW", ICAO: "EGKK", Name: "London Gatwick Airport", City: "London", Country: "GB", Continent: "EU", Timezone: "Europe/London", Coordinates: geo.Coordinates{Lat: 51.1537, Lon: -0.1821}, Metro: "LON", Popularity: 41},
	{Code: "STN", ICAO: "EGSS", Name: "London Stansted Airport", City: "London", Country: "GB", Continent: "EU", Timezone: "Europe/London", Coordinates: geo.Coordinates{Lat: 51.8860, Lon: 0.2389}, Metro: "LON", Popularity: 28},
	{Code: "LTN", ICAO: "EGGW", Name: "London Luton Airport", City: "London", Country: "GB", Continent: "EU", Timezone: "Europe/London", Coordinates: geo.Coordinates{Lat: 51.8747, Lon: -0.3683}, Metro: "LON", Popularity: 16},
	{Code: "LCY", ICAO: "EGLC", Name: "London City Airport", City: "London", Country: "GB", Continent: "EU", Timezone: "Europe/London", Coordinates: geo.Coordinates{Lat: 51.5053, Lon: 0.0553}, Metro: "LON", Popularity: 5},

	// Paris
	{Code: "CDG", ICAO: "LFPG", Name: "Paris Charles de Gaulle Airport", City: "Paris", Country: "FR", Continent: "EU", Timezone: "Europe/Paris", Coordinates: geo.Coordinates{Lat: 49.0097, Lon: 2.5479}, Metro: "PAR", Hub: true, Popularity: 67},
	{Code: "ORY", ICAO: "LFPO", Name: "Paris Orly Airport", City: "Paris", Country: "FR", Continent: "EU", Timezone: "Europe/Paris", Coordinates: geo.Coordinates{Lat: 48.7233, Lon: 2.3794}, Metro: "PAR", Popularity: 32},
	{Code: "BVA", ICAO: "LFOB", Name: "Beauvais-Tille Airport", City: "Beauvais", Country: "FR", Continent: "EU", Timezone: "Europe/Paris", Coordinates: geo.Coordinates{Lat: 49.4544, Lon: 2.1128}, Metro: "PAR", Popularity: 4},

	// Milan & Rome
	{Code: "MXP", ICAO: "LIMC", Name: "Milan Malpensa Airport", City: "Milan", Country: "IT", Continent: "EU", Timezone: "Europe/Rome", Coordinates: geo.Coordinates{Lat: 45.6306, Lon: 8.7281}, Metro: "MIL", Hub: true, Popularity: 26},
	{Code: "LIN", ICAO: "LIML", Name: "Milan Linate Airport", City: "Milan", Country: "IT", Continent: "EU", Timezone: "Europe/Rome", Coordinates: geo.Coordinates{Lat: 45.4451, Lon: 9.2767}, Metro: "MIL", Popularity: 9},
	{Code: "BGY", ICAO: "LIME", Name: "Milan Bergamo Airport", City: "Bergamo", Country: "IT", Continent: "EU", Timezone: "Europe/Rome", Coordinates: geo.Coordinates{Lat: 45.6739, Lon: 9.7042}, Metro: "MIL", Popularity: 16},
	{Code: "FCO", ICAO: "LIRF", Name: "Rome Fiumicino Airport", City: "Rome", Country: "IT", Continent: "EU", Timezone: "Europe/Rome", Coordinates: geo.Coordinates{Lat: 41.8003, Lon: 12.2389}, Metro: "ROM", Hub: true, Popularity: 40},
	{Code: "CIA", ICAO: "LIRA", Name: "Rome Ciampino Airport", City: "Rome", Country: "IT", Continent: "EU", Timezone: "Europe/Rome", Coordinates: geo.Coordinates{Lat: 41.7994, Lon: 12.5949}, Metro: "ROM", Popularity: 6},

	// Other Europe
	{Code: "AMS", ICAO: "EHAM", Name: "Amsterdam Airport Schiphol", City: "Amsterdam", Country: "NL", Continent: "EU", Timezone: "Europe/Amsterdam", Coordinates: geo.Coordinates{Lat: 52.3105, Lon: 4.7683}, Hub: true, Popularity: 62},
	{Code: "FRA", ICAO: "EDDF", Name: "Frankfurt Airport", City: "Frankfurt", Country: "DE", Continent: "EU", Timezone: "Europe/Berlin", Coordinates: geo.Coordinates{Lat: 50.0379, Lon: 8.5622}, Hub: true, Popularity: 59},
	{Code: "MAD", ICAO: "LEMD", Name: "Adolfo Suarez Madrid-Barajas Airport", City: "Madrid", Country: "ES", Continent: "EU", Timezone: "Europe/Madrid", Coordinates: geo.Coordinates{Lat: 40.4983, Lon: -3.5676}, Hub: true, Popularity: 60},
	{Code: "BCN", ICAO: "LEBL", Name: "Barcelona-El Prat Airport", City: "Barcelona", Country: "ES", Continent: "EU", Timezone: "Europe/Madrid", Coordinates: geo.Coordinates{Lat: 41.2974, Lon: 2.0833}, Popularity: 50},
	{Code: "MUC", ICAO: "EDDM", Name: "Munich Airport", City: "Munich", Country: "DE", Continent: "EU", Timezone: "Europe/Berlin", Coordinates: geo.Coordinates{Lat: 48.3537, Lon: 11.7750}, Hub: true, Popularity: 37},
	{Code: "DUB", ICAO: "EIDW", Name: "Dublin Airport", City: "Dublin", Country: "IE", Continent: "EU", Timezone: "Europe/Dublin", Coordinates: geo.Coordinates{Lat: 53.4264, Lon: -6.2499}, Popularity: 33},
	{Code: "ZRH", ICAO: "LSZH", Name: "Zurich Airport", City: "Zurich", Country: "CH", Continent: "EU", Timezone: "Europe/Zurich", Coordinates: geo.Coordinates{Lat: 47.4582, Lon: 8.5555}, Hub: true, Popularity: 29},
	{Code: "LIS", ICAO: "LPPT", Name: "Lisbon Humberto Delgado Airport", City: "Lisbon", Country: "PT", Continent: "EU", Timezone: "Europe/Lisbon", Coordinates: geo.Coordinates{Lat: 38.7742, Lon: -9.1342}, Popularity: 34},
	{Code: "KEF", ICAO: "BIKF", Name: "Keflavik International Airport", City: "Reykjavik", Country: "IS", Continent: "EU", Timezone: "Atlantic/Reykjavik", Coordinates: geo.Coordinates{Lat: 63.9850, Lon: -22.6056}, Popularity: 8},

	// Tokyo & Seoul
	{Code: "HND", ICAO: "RJTT", Name: "Tokyo Haneda Airport", City: "Tokyo", Country: "JP", Continent: "AS", Timezone: "Asia/Tokyo", Coordinates: geo.Coordinates{Lat: 35.5494, Lon: 139.7798}, Metro: "TYO", Hub: true, Popularity: 79},
	{Code: "NRT", ICAO: "RJAA", Name: "Narita International Airport", City: "Tokyo", Country: "JP", Continent: "AS", Timezone: "Asia/Tokyo", Coordinates: geo.Coordinates{Lat: 35.7720, Lon: 140.3929}, Metro: "TYO", Hub: true, Popularity: 33},
	{Code: "ICN", ICAO: "RKSI", Name: "Incheon International Airport", City: "Seoul", Country: "KR", Continent: "AS", Timezone: "Asia/Seoul", Coordinates: geo.Coordinates{Lat: 37.4602, Lon: 126.4407}, Metro: "SEL", Hub: true, Popularity: 56},
	{Code: "GMP", ICAO: "RKSS", Name: "Gimpo International Airport", City: "Seoul", Country: "KR", Continent: "AS", Timezone: "Asia/Seoul", Coordinates: geo.Coordinates{Lat: 37.5583, Lon: 126.7906}, Metro: "SEL", Popularity: 22},

	// Other Asia-Pacific
	{Code: "SIN", ICAO: "WSSS", Name: "Singapore Changi Airport", City: "Singapore", Country: "SG", Continent: "AS", Timezone: "Asia/Singapore", Coordinates: geo.Coordinates{Lat: 1.3644, Lon: 103.9915}, Hub: true, Popularity: 59},
	{Code: "HKG", ICAO: "VHHH", Name: "Hong Kong International Airport", City: "Hong Kong", Country: "HK", Continent: "AS", Timezone: "Asia/Hong_Kong", Coordinates: geo.Coordinates{Lat: 22.3080, Lon: 113.9185}, Hub: true, Popularity: 40},
	{Code: "DXB", ICAO: "OMDB", Name: "Dubai International Airport", City: "Dubai", Country: "AE", Continent: "AS", Timezone: "Asia/Dubai", Coordinates: geo.Coordinates{Lat: 25.2532, Lon: 55.3657}, Hub: true, Popularity: 87},
	{Code: "SYD", ICAO: "YSSY", Name: "Sydney Kingsford Smith Airport", City: "Sydney", Country: "AU", Continent: "OC", Timezone: "Australia/Sydney", Coordinates: geo.Coordinates{Lat: -33.9399, Lon: 151.1753}, Hub: true, Popularity: 38},
	{Code: "MEL", ICAO: "YMML", Name: "Melbourne Airport", City: "Melbourne", Country: "AU", Continent: "OC", Timezone: "Australia/Melbourne", Coordinates: geo.Coordinates{Lat: -37.6690, Lon: 144.8410}, Hub: true, Popularity: 35},

	// Sao Paulo & Rio de Janeiro
	{Code: "GRU", ICAO: "SBGR", Name: "Sao Paulo/Guarulhos International Airport", City: "Sao Paulo", Country: "BR", Continent: "SA", Timezone: "America/Sao_Paulo", Coordinates: geo.Coordinates{Lat: -23.4356, Lon: -46.4731}, Metro: "SAO", Hub: true, Popularity: 41, Keywords: []string{"sao paulo", "guarulhos"}},
	{Code: "CGH", ICAO: "SBSP", Name: "Sao Paulo Congonhas Airport", City: "Sao Paulo", Country: "BR", Continent: "SA", Timezone: "America/Sao_Paulo", Coordinates: geo.Coordinates{Lat: -23.6261, Lon: -46.6564}, Metro: "SAO", Popularity: 22},
	{Code: "VCP", ICAO: "SBKP", Name: "Viracopos International Airport", City: "Campinas", Country: "BR", Continent: "SA", Timezone: "America/Sao_Paulo", Coordinates: geo.Coordinates{Lat: -23.0074, Lon: -47.1345}, Metro: "SAO", Popularity: 12},
	{Code: "GIG", ICAO: "SBGL", Name: "Rio de Janeiro/Galeao International Airport", City: "Rio de Janeiro", Country: "BR", Continent: "SA", Timezone: "America/Sao_Paulo", Coordinates: geo.Coordinates{Lat: -22.8100, Lon: -43.2506}, Metro: "RIO", Hub: true, Popularity: 14},
	{Code: "SDU", ICAO: "SBRJ", Name: "Rio de Janeiro Santos Dumont Airport", City: "Rio de Janeiro", Country: "BR", Continent: "SA", Timezone: "America/Sao_Paulo", Coordinates: geo.Coordinates{Lat: -22.9105, Lon: -43.1631}, Metro: "RIO", Popularity: 9},

	// Buenos Aires & other South America
	{Code: "EZE", ICAO: "SAEZ", Name: "Ministro Pistarini International Airport", City: "Buenos Aires", Country: "AR", Continent: "SA", Timezone: "America/Argentina/Buenos_Aires", Coordinates: geo.Coordinates{Lat: -34.8222, Lon: -58.5358}, Metro: "BUE", Hub: true, Popularity: 10},
	{Code: "AEP", ICAO: "SABE", Name: "Aeroparque Jorge Newbery", City: "Buenos Aires", Country: "AR", Continent: "SA", Timezone: "America/Argentina/Buenos_Aires", Coordinates: geo.Coordinates{Lat: -34.5592, Lon: -58.4156}, Metro: "BUE", Popularity: 12},
	{Code: "SCL", ICAO: "SCEL", Name: "Arturo Merino Benitez International Airport", City: "Santiago", Country: "CL", Continent: "SA", Timezone: "America/Santiago", Coordinates: geo.Coordinates{Lat: -33.3930, Lon: -70.7858}, Hub: true, Popularity: 23},
	{Code: "LIM", ICAO: "SPJC", Name: "Jorge Chavez International Airport", City: "Lima", Country: "PE", Continent: "SA", Timezone: "America/Lima", Coordinates: geo.Coordinates{Lat: -12.0219, Lon: -77.1143}, Hub: true, Popularity: 22},
	{Code: "BOG", ICAO: "SKBO", Name: "El Dorado International Airport", City: "Bogota", Country: "CO", Continent: "SA", Timezone: "America/Bogota", Coordinates: geo.Coordinates{Lat: 4.7016, Lon: -74.1469}, Hub: true, Popularity: 39},
}
