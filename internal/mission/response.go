package mission

// Coarse resamplings of the published instrument response curves,
// wavelength [nm] against throughput. The brightness-ratio integral is
// a ratio of weighted sums, so a 25 nm grid reproduces the full-
// resolution curves to well under a percent.

var tess = &Mission{
	name:     "TESS",
	bandpass: Bandpass{Lo: 600, Hi: 1000},
	response: []ResponsePoint{
		{550, 0.00}, {575, 0.05}, {600, 0.45}, {625, 0.75},
		{650, 0.84}, {675, 0.87}, {700, 0.88}, {725, 0.89},
		{750, 0.90}, {775, 0.90}, {800, 0.89}, {825, 0.87},
		{850, 0.85}, {875, 0.83}, {900, 0.80}, {925, 0.76},
		{950, 0.71}, {975, 0.64}, {1000, 0.55}, {1025, 0.41},
		{1050, 0.26}, {1075, 0.12}, {1100, 0.03},
	},
}

var kepler = &Mission{
	name:     "Kepler",
	bandpass: Bandpass{Lo: 420, Hi: 900},
	response: []ResponsePoint{
		{420, 0.02}, {440, 0.32}, {460, 0.56}, {480, 0.67},
		{500, 0.73}, {520, 0.77}, {540, 0.80}, {560, 0.82},
		{580, 0.84}, {600, 0.85}, {620, 0.85}, {640, 0.84},
		{660, 0.83}, {680, 0.81}, {700, 0.79}, {720, 0.77},
		{740, 0.74}, {760, 0.71}, {780, 0.68}, {800, 0.64},
		{820, 0.59}, {840, 0.52}, {860, 0.43}, {880, 0.30},
		{900, 0.12},
	},
}
