package prices

// Seed prices for the 2025 season, in millions. The entity sets are fixed for
// the lifetime of the process; only the values are editable.

type seedEntry struct {
	Name  string
	Price float64
}

var defaultDriverPrices = []seedEntry{
	{"Lando Norris", 29.0},
	{"Max Verstappen", 28.4},
	{"Charles Leclerc", 25.9},
	{"Lewis Hamilton", 24.2},
	{"Oscar Piastri", 23.0},
	{"George Russell", 21.0},
	{"Kimi Antonelli", 18.4},
	{"Liam Lawson", 18.0},
	{"Carlos Sainz", 13.1},
	{"Alex Albon", 12.0},
	{"Pierre Gasly", 11.8},
	{"Yuki Tsunoda", 9.6},
	{"Fernando Alonso", 8.8},
	{"Lance Stroll", 8.1},
	{"Esteban Ocon", 7.3},
	{"Jack Doohan", 7.2},
	{"Oliver Bearman", 6.7},
	{"Nico Hulkenberg", 6.4},
	{"Isack Hadjar", 6.2},
	{"Gabriel Bortoleto", 6.0},
}

var defaultConstructorPrices = []seedEntry{
	{"McLaren", 30.0},
	{"Ferrari", 27.1},
	{"Red Bull Racing", 25.2},
	{"Mercedes", 22.7},
	{"Williams", 13.1},
	{"Alpine", 9.5},
	{"Aston Martin", 8.5},
	{"Racing Bulls", 8.0},
	{"Haas", 7.0},
	{"Sauber", 6.2},
}
