package catalog

import "github.com/wadjakorntonsri/coin-collection/pkg/core/domain"

var rooseveltMints = map[domain.OptionKey]window{
	domain.MintP: nil,
	domain.MintD: except(1965, 1966, 1967),
	domain.MintS: until(1955),
	domain.MintW: only(1996),
}

var basicDimes = &Series{
	Name:          "Roosevelt Dimes",
	StartYear:     1946,
	StopYear:      StillInProduction,
	EditableDates: true,
	FaceValue:     face("0.10"),
	Mints:         []Toggle{mintP(""), mintD, mintS},
	Obverse:       "obv_roosevelt_dime",
	Reverse:       "rev_roosevelt_dime",
	segments: []segment{{
		start: 1946, stop: StillInProduction, image: domain.NoImage,
		mints:  rooseveltMints,
		expand: pMarkSince(1980),
	}},
}

var rooseveltDimes = &Series{
	Name:          "Roosevelt Dimes (Advanced)",
	StartYear:     1946,
	StopYear:      StillInProduction,
	EditableDates: true,
	FaceValue:     face("0.10"),
	Mints: []Toggle{
		mintP(""), mintD, mintS, mintW,
		{Key: domain.MintProof, Label: "Proofs", Mark: "Proof"},
		{Key: domain.MintSatin, Label: "Satin finish", Mark: "Satin"},
	},
	Checkboxes: []Toggle{
		check(domain.CheckOlderDesigns, "Show older designs", false),
		check(domain.CheckClad, "Include clad coins", true),
		check(domain.CheckSilver, "Include silver coins", true),
	},
	Images:  named("dime", "Draped Bust", "Capped Bust", "Seated Liberty", "Barber", "Mercury"),
	Obverse: "obv_roosevelt_dime",
	Reverse: "rev_roosevelt_dime",
	prelude: func(g *gen) {
		if g.on(domain.CheckOlderDesigns) {
			g.placeholders("Draped Bust", "Capped Bust", "Seated Liberty", "Barber", "Mercury")
		}
	},
	years: func(g *gen, y int) {
		if y <= 1964 {
			if !g.on(domain.CheckSilver) {
				return
			}
			if g.on(domain.MintP) {
				g.slot(y, "", "")
			}
			if g.on(domain.MintD) {
				g.slot(y, "D", "")
			}
			if g.on(domain.MintS) && y <= 1955 {
				g.slot(y, "S", "")
			}
			if g.on(domain.MintProof) && y >= 1950 {
				g.slot(y, "Proof", "")
			}
			return
		}
		satin := between(2005, 2010)(y)
		if g.on(domain.CheckClad) {
			if g.on(domain.MintP) {
				if y >= 1980 {
					g.slot(y, "P", "")
				} else {
					g.slot(y, "", "")
				}
				if between(1965, 1967)(y) {
					g.slot(y, "SMS", "")
				}
			}
			if g.on(domain.MintSatin) && satin {
				g.slot(y, "P Satin", "")
			}
			if g.on(domain.MintD) && except(1965, 1966, 1967)(y) {
				g.slot(y, "D", "")
			}
			if g.on(domain.MintSatin) && satin {
				g.slot(y, "D Satin", "")
			}
			if g.on(domain.MintW) && y == 1996 {
				g.slot(y, "W", "")
			}
			if g.on(domain.MintProof) && y >= 1968 {
				g.slot(y, "S Proof", "")
			}
		}
		if g.on(domain.CheckSilver) && g.on(domain.MintProof) && y >= 1992 {
			g.slot(y, "S Silver Proof", "")
		}
	},
}

var barberDimes = &Series{
	Name:      "Barber Dimes",
	StartYear: 1892,
	StopYear:  1916,
	FaceValue: face("0.10"),
	Mints:     []Toggle{mintP(""), mintD, mintS, mintO},
	Obverse:   "obv_barber_dime",
	Reverse:   "rev_barber_dime",
	segments: []segment{{
		start: 1892, stop: 1916, image: domain.NoImage,
		mints: map[domain.OptionKey]window{
			domain.MintP: nil,
			domain.MintD: either(between(1906, 1912), only(1914)),
			domain.MintS: except(1894),
			domain.MintO: all(until(1909), except(1904)),
		},
	}},
}

var mercuryDimes = &Series{
	Name:      "Mercury Dimes",
	StartYear: 1916,
	StopYear:  1945,
	FaceValue: face("0.10"),
	Mints:     []Toggle{mintP(""), mintD, mintS},
	Obverse:   "obv_mercury_dime",
	Reverse:   "rev_mercury_dime",
	segments: []segment{{
		start: 1916, stop: 1945, image: domain.NoImage,
		skip: skipYears(1922, 1932, 1933),
		mints: map[domain.OptionKey]window{
			domain.MintP: nil,
			domain.MintD: except(1923, 1930),
			domain.MintS: except(1921, 1934),
		},
	}},
}

func barberDimeYear(g *gen, y int) {
	// Barber and Mercury dimes were both struck in 1916.
	suffix := ""
	if y == 1916 {
		suffix = "Barber"
	}
	if g.on(domain.MintP) {
		g.slot(y, suffix, "Barber")
	}
	if g.on(domain.MintD) && (between(1906, 1912)(y) || y == 1914) {
		g.slot(y, mk("D", suffix), "Barber")
	}
	if g.on(domain.MintS) && y != 1894 {
		g.slot(y, mk("S", suffix), "Barber")
	}
	if g.on(domain.MintO) && y <= 1909 && y != 1904 {
		g.slot(y, "O", "Barber")
	}
}

var silverDimes = &Series{
	Name:          "Silver Dimes",
	StartYear:     1892,
	StopYear:      1964,
	EditableDates: true,
	FaceValue:     face("0.10"),
	Mints: []Toggle{
		mintP(""), mintD, mintS, mintO,
		{Key: domain.MintSilverProof, Label: "Silver proofs", Mark: "Proof", Default: true},
	},
	Checkboxes: []Toggle{
		check(domain.CheckOlderDesigns, "Show older designs", false),
		check(domain.CheckBarber, "Include Barber dimes", true),
		check(domain.CheckMercury, "Include Mercury dimes", true),
		check(domain.CheckRoosevelt, "Include Roosevelt dimes", true),
	},
	Images:  named("dime", "Draped Bust", "Capped Bust", "Seated Liberty", "Barber", "Mercury", "Roosevelt"),
	Obverse: "obv_mercury_dime",
	Reverse: "rev_mercury_dime",
	prelude: func(g *gen) {
		if !g.on(domain.CheckOlderDesigns) {
			return
		}
		g.placeholders("Draped Bust", "Capped Bust", "Seated Liberty")
		if !g.on(domain.CheckBarber) {
			g.placeholders("Barber")
		}
		if !g.on(domain.CheckMercury) {
			g.placeholders("Mercury")
		}
	},
	years: func(g *gen, y int) {
		if g.on(domain.CheckBarber) && between(1892, 1916)(y) {
			barberDimeYear(g, y)
		}
		if g.on(domain.CheckMercury) && between(1916, 1945)(y) && except(1922, 1932, 1933)(y) {
			if g.on(domain.MintP) {
				g.slot(y, "", "Mercury")
			}
			if g.on(domain.MintD) && except(1923, 1930)(y) {
				g.slot(y, "D", "Mercury")
			}
			if g.on(domain.MintS) && except(1921, 1934)(y) {
				g.slot(y, "S", "Mercury")
			}
		}
		if g.on(domain.CheckRoosevelt) && between(1946, 1964)(y) {
			if g.on(domain.MintP) {
				g.slot(y, "", "Roosevelt")
			}
			if g.on(domain.MintD) {
				g.slot(y, "D", "Roosevelt")
			}
			if g.on(domain.MintS) && y <= 1955 {
				g.slot(y, "S", "Roosevelt")
			}
			if g.on(domain.MintSilverProof) && y >= 1950 {
				g.slot(y, "Proof", "Roosevelt")
			}
		}
	},
}

func seatedDimeYear(g *gen, y int) {
	const img = "Seated Liberty"
	if g.on(domain.MintP) {
		switch {
		case y == 1837:
			g.slot(y, "No Stars", img)
		case y <= 1859 && except(1854, 1855)(y):
			g.slot(y, "Stars", img)
		case y >= 1860 && y != 1874:
			g.slot(y, "Legend", img)
		}
		if between(1853, 1855)(y) || between(1873, 1874)(y) {
			g.slot(y, "Arrows", img)
		}
	}
	if g.on(domain.MintO) && (between(1838, 1860)(y) || y == 1891) && except(1844, 1846, 1847, 1848, 1855)(y) {
		switch {
		case y == 1838:
			g.slot(y, "O No Stars", img)
		case y == 1853 || y == 1854:
			g.slot(y, "O Arrows", img)
		case y <= 1859:
			g.slot(y, "O Stars", img)
		default:
			g.slot(y, "O Legend", img)
		}
	}
	if g.on(domain.MintS) && between(1856, 1891)(y) && y != 1857 && !between(1878, 1883)(y) {
		switch {
		case y < 1861:
			g.slot(y, "S Stars", img)
		case y == 1873 || y == 1874:
			g.slot(y, "S Arrows", img)
		default:
			g.slot(y, "S Legend", img)
		}
	}
	if g.on(domain.MintCC) && between(1871, 1878)(y) {
		if y != 1874 {
			g.slot(y, "CC Legend", img)
		}
		if y == 1873 || y == 1874 {
			g.slot(y, "CC Arrows", img)
		}
	}
}

var earlyDimes = &Series{
	Name:          "Early Dimes",
	StartYear:     1796,
	StopYear:      1891,
	EditableDates: true,
	FaceValue:     face("0.10"),
	Mints:         []Toggle{mintP(""), byDefault(mintO), byDefault(mintS), byDefault(mintCC)},
	Checkboxes: []Toggle{
		check(domain.CheckOlderDesigns, "Show older designs", false),
		check(domain.CheckDraped, "Include Draped Bust dimes", false),
		check(domain.CheckCapped, "Include Capped Bust dimes", false),
		check(domain.CheckSeated, "Include Seated Liberty dimes", true),
	},
	Images:  named("dime", "Draped Bust", "Capped Bust", "Seated Liberty"),
	Obverse: "obv_seated_dime",
	Reverse: "rev_seated_dime",
	prelude: func(g *gen) {
		if !g.on(domain.CheckOlderDesigns) {
			return
		}
		if !g.on(domain.CheckDraped) {
			g.placeholders("Draped Bust")
		}
		if !g.on(domain.CheckCapped) {
			g.placeholders("Capped Bust")
		}
	},
	years: func(g *gen, y int) {
		// The bust designs were struck at Philadelphia only.
		if g.on(domain.CheckDraped) && g.on(domain.MintP) {
			switch {
			case y == 1796 || y == 1797:
				g.slot(y, "Small Eagle", "Draped Bust")
			case between(1798, 1807)(y) && except(1799, 1806)(y):
				g.slot(y, "Heraldic Eagle", "Draped Bust")
			}
		}
		if g.on(domain.CheckCapped) && g.on(domain.MintP) &&
			(only(1809, 1811, 1814)(y) || (between(1820, 1837)(y) && y != 1826)) {
			g.slot(y, "", "Capped Bust")
		}
		if g.on(domain.CheckSeated) && y >= 1837 {
			seatedDimeYear(g, y)
		}
	},
}
