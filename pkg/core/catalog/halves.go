package catalog

import "github.com/wadjakorntonsri/coin-collection/pkg/core/domain"

func kennedySegment() segment {
	return segment{
		start: 1964, stop: StillInProduction, image: domain.NoImage,
		mints: map[domain.OptionKey]window{
			domain.MintP: except(1970),
			domain.MintD: except(1965, 1966, 1967),
		},
		skip:  bicentennialSkip,
		label: bicentennialLabel,
	}
}

var basicHalfDollars = &Series{
	Name:          "Kennedy Half Dollars",
	StartYear:     1964,
	StopYear:      StillInProduction,
	EditableDates: true,
	FaceValue:     face("0.50"),
	Mints:         []Toggle{mintP(""), mintD},
	Obverse:       "obv_kennedy_half",
	Reverse:       "rev_kennedy_half",
	segments:      []segment{kennedySegment()},
}

var kennedyHalfDollars = &Series{
	Name:          "Kennedy Half Dollars (Advanced)",
	StartYear:     1964,
	StopYear:      StillInProduction,
	EditableDates: true,
	FaceValue:     face("0.50"),
	Mints: []Toggle{
		mintP(""), mintD,
		{Key: domain.MintSatin, Label: "Satin finish", Mark: "Satin"},
		{Key: domain.MintProof, Label: "S proofs", Mark: "S Proof"},
	},
	Checkboxes: []Toggle{
		check(domain.CheckOlderDesigns, "Show older designs", false),
		check(domain.CheckClad, "Include clad coins", true),
		check(domain.CheckSilver, "Include silver coins", true),
	},
	Images: named("half_dollar", "Flowing Hair", "Draped Bust", "Capped Bust", "Seated Liberty",
		"Barber", "Walking Liberty", "Franklin"),
	Obverse: "obv_kennedy_half",
	Reverse: "rev_kennedy_half",
	prelude: func(g *gen) {
		if g.on(domain.CheckOlderDesigns) {
			g.placeholders("Flowing Hair", "Draped Bust", "Capped Bust", "Seated Liberty",
				"Barber", "Walking Liberty", "Franklin")
		}
	},
	years: func(g *gen, y int) {
		if y == 1975 {
			return
		}
		id := bicentennialLabel(y)
		if g.on(domain.CheckSilver) {
			switch {
			case y == 1964:
				if g.on(domain.MintP) {
					g.add(id, "Silver", "")
				}
				if g.on(domain.MintD) {
					g.add(id, "D Silver", "")
				}
				if g.on(domain.MintProof) {
					g.add(id, "Silver Proof", "")
				}
			case between(1965, 1967)(y):
				if g.on(domain.MintP) {
					g.add(id, "40% Silver", "")
					g.add(id, "SMS 40% Silver", "")
				}
			case between(1968, 1970)(y):
				if g.on(domain.MintD) {
					g.add(id, "D 40% Silver", "")
				}
				if g.on(domain.MintProof) {
					g.add(id, "S Proof 40% Silver", "")
				}
			case y == 1976:
				if g.on(domain.MintProof) {
					g.add(id, "S 40% Silver", "")
					g.add(id, "S 40% Silver Proof", "")
				}
			}
		}
		if g.on(domain.CheckClad) && y >= 1971 {
			satin := between(2005, 2010)(y)
			if g.on(domain.MintP) {
				if y >= 1980 {
					g.add(id, "P", "")
				} else {
					g.add(id, "", "")
				}
			}
			if g.on(domain.MintSatin) && satin {
				g.add(id, "P Satin", "")
			}
			if g.on(domain.MintD) {
				g.add(id, "D", "")
			}
			if g.on(domain.MintSatin) && satin {
				g.add(id, "D Satin", "")
			}
			if g.on(domain.MintProof) {
				g.add(id, "S Proof", "")
			}
		}
		if g.on(domain.CheckSilver) && g.on(domain.MintProof) && y >= 1992 {
			g.add(id, "S Silver Proof", "")
		}
	},
}

func barberHalfSegment() segment {
	return segment{
		start: 1892, stop: 1915, image: domain.NoImage,
		mints: map[domain.OptionKey]window{
			domain.MintP: nil,
			domain.MintD: all(since(1906), except(1909, 1910, 1914)),
			domain.MintS: nil,
			domain.MintO: until(1909),
		},
	}
}

var barberHalfDollars = &Series{
	Name:      "Barber Half Dollars",
	StartYear: 1892,
	StopYear:  1915,
	FaceValue: face("0.50"),
	Mints:     []Toggle{mintP(""), mintD, mintS, mintO},
	Obverse:   "obv_barber_half",
	Reverse:   "rev_barber_half",
	segments:  []segment{barberHalfSegment()},
}

func walkingLibertySegment() segment {
	return segment{
		start: 1916, stop: 1947, image: domain.NoImage,
		skip: skipYears(1922, 1924, 1925, 1926, 1930, 1931, 1932),
		mints: map[domain.OptionKey]window{
			domain.MintP: either(until(1922), since(1934)),
			domain.MintD: all(either(until(1922), since(1929)), except(1933, 1940)),
			domain.MintS: except(1938, 1947),
		},
		expand: func(y int, m *Toggle) []slotName {
			if y == 1917 && m != nil && (m.Key == domain.MintD || m.Key == domain.MintS) {
				return []slotName{variety("", markedVariety(m, "Obv")), variety("", markedVariety(m, "Rev"))}
			}
			return nil
		},
	}
}

var walkingLibertyHalfDollars = &Series{
	Name:      "Walking Liberty Half Dollars",
	StartYear: 1916,
	StopYear:  1947,
	FaceValue: face("0.50"),
	Mints:     []Toggle{mintP(""), mintD, mintS},
	Obverse:   "obv_walking_liberty_half",
	Reverse:   "rev_walking_liberty_half",
	segments:  []segment{walkingLibertySegment()},
}

func franklinSegment() segment {
	return segment{
		start: 1948, stop: 1963, image: domain.NoImage,
		mints: map[domain.OptionKey]window{
			domain.MintP: nil,
			domain.MintD: except(1955, 1956),
			domain.MintS: all(until(1954), except(1948, 1950)),
		},
	}
}

var franklinHalfDollars = &Series{
	Name:      "Franklin Half Dollars",
	StartYear: 1948,
	StopYear:  1963,
	FaceValue: face("0.50"),
	Mints:     []Toggle{mintP(""), mintD, mintS},
	Obverse:   "obv_franklin_half",
	Reverse:   "rev_franklin_half",
	segments:  []segment{franklinSegment()},
}

func barberHalfYear(g *gen, y int) {
	if g.on(domain.MintP) {
		g.slot(y, "", "Barber")
	}
	if g.on(domain.MintD) && y >= 1906 && except(1909, 1910, 1914)(y) {
		g.slot(y, "D", "Barber")
	}
	if g.on(domain.MintS) {
		g.slot(y, "S", "Barber")
	}
	if g.on(domain.MintO) && y <= 1909 {
		g.slot(y, "O", "Barber")
	}
}

func walkingLibertyYear(g *gen, y int) {
	const img = "Walking Liberty"
	if g.on(domain.MintP) && (y < 1923 || y > 1933) {
		g.slot(y, "", img)
	}
	if g.on(domain.MintD) && (y < 1923 || y > 1928) && except(1933, 1940)(y) {
		if y == 1917 {
			g.slot(y, "D Obverse", img)
			g.slot(y, "D Reverse", img)
		} else {
			g.slot(y, "D", img)
		}
	}
	if g.on(domain.MintS) && except(1938, 1947)(y) {
		if y == 1917 {
			g.slot(y, "S Obverse", img)
			g.slot(y, "S Reverse", img)
		} else {
			g.slot(y, "S", img)
		}
	}
}

// silverKennedyYear lists the Kennedy halves struck in silver.
func silverKennedyYear(g *gen, y int) {
	const img, proof = "Kennedy", "Kennedy Proof"
	switch {
	case y == 1964:
		if g.on(domain.MintP) {
			g.slot(y, "", img)
		}
		if g.on(domain.MintD) {
			g.slot(y, "D", img)
		}
		if g.on(domain.MintSilverProof) {
			g.slot(y, "Proof", proof)
		}
	case between(1965, 1967)(y):
		if g.on(domain.MintP) {
			g.slot(y, "40% Silver", img)
			g.slot(y, "SMS 40% Silver", img)
		}
	case between(1968, 1970)(y):
		if g.on(domain.MintD) {
			g.slot(y, "D 40% Silver", img)
		}
		if g.on(domain.MintSilverProof) {
			g.slot(y, "S Proof 40% Silver", proof)
		}
	case y == 1976:
		if g.on(domain.MintS) {
			g.add("1776-1976", "S 40% Silver", img)
		}
		if g.on(domain.MintSilverProof) {
			g.add("1776-1976", "S Proof 40% Silver", proof)
		}
	case y >= 1992:
		if g.on(domain.MintSilverProof) {
			g.slot(y, "S Silver Proof", proof)
		}
		if y == 2014 {
			if g.on(domain.MintSilverProof) {
				g.slot(y, "P Silver Proof", proof)
			}
			if g.on(domain.MintD) {
				g.slot(y, "D Silver", img)
			}
			if g.on(domain.MintS) {
				g.slot(y, "S Enhanced Silver", img)
			}
			if g.on(domain.MintSilverProof) {
				g.slot(y, "W Silver Proof", proof)
			}
		}
		if y == 2018 && g.on(domain.MintSilverProof) {
			g.slot(y, "S Reverse Proof", proof)
		}
	}
}

var silverHalfDollars = &Series{
	Name:          "Silver Half Dollars",
	StartYear:     1892,
	StopYear:      StillInProduction,
	EditableDates: true,
	FaceValue:     face("0.50"),
	Mints: []Toggle{
		mintP(""), byDefault(mintD), byDefault(mintS), byDefault(mintO),
		{Key: domain.MintSilverProof, Label: "Silver proofs", Mark: "Proof"},
	},
	Checkboxes: []Toggle{
		check(domain.CheckOlderDesigns, "Show older designs", false),
		check(domain.CheckBarber, "Include Barber half dollars", true),
		check(domain.CheckWalking, "Include Walking Liberty half dollars", true),
		check(domain.CheckFranklin, "Include Franklin half dollars", true),
		check(domain.CheckKennedy, "Include Kennedy half dollars", true),
	},
	Images: named("half_dollar", "Flowing Hair", "Draped Bust", "Capped Bust", "Seated Liberty",
		"Barber", "Walking Liberty", "Franklin", "Kennedy", "Kennedy Proof"),
	Obverse: "obv_walking_liberty_half",
	Reverse: "rev_walking_liberty_half",
	prelude: func(g *gen) {
		if !g.on(domain.CheckOlderDesigns) {
			return
		}
		g.placeholders("Flowing Hair", "Draped Bust", "Capped Bust", "Seated Liberty")
		for _, d := range []struct {
			key  domain.OptionKey
			name string
		}{
			{domain.CheckBarber, "Barber"},
			{domain.CheckWalking, "Walking Liberty"},
			{domain.CheckFranklin, "Franklin"},
		} {
			if !g.on(d.key) {
				g.placeholders(d.name)
			}
		}
	},
	years: func(g *gen, y int) {
		if only(1922, 1924, 1925, 1926, 1930, 1931, 1932)(y) {
			return
		}
		switch {
		case y <= 1915:
			if g.on(domain.CheckBarber) {
				barberHalfYear(g, y)
			}
		case y <= 1947:
			if g.on(domain.CheckWalking) {
				walkingLibertyYear(g, y)
			}
		case y <= 1963:
			if g.on(domain.CheckFranklin) {
				if g.on(domain.MintP) {
					g.slot(y, "", "Franklin")
				}
				if g.on(domain.MintD) && except(1955, 1956)(y) {
					g.slot(y, "D", "Franklin")
				}
				if g.on(domain.MintS) && y <= 1954 && except(1948, 1950)(y) {
					g.slot(y, "S", "Franklin")
				}
			}
		default:
			if g.on(domain.CheckKennedy) {
				silverKennedyYear(g, y)
			}
		}
	},
}

var earlyHalfDollars = &Series{
	Name:          "Early Half Dollars",
	StartYear:     1794,
	StopYear:      1891,
	EditableDates: true,
	FaceValue:     face("0.50"),
	Mints:         []Toggle{mintP(""), mintO, mintS, mintCC},
	Checkboxes: []Toggle{
		check(domain.CheckBust, "Include bust designs", true),
		check(domain.CheckSeated, "Include Seated Liberty", true),
	},
	Images:  named("half_dollar", "Flowing Hair", "Draped Bust", "Capped Bust", "Seated Liberty"),
	Obverse: "obv_seated_half",
	Reverse: "rev_seated_half",
	segments: []segment{
		{
			name: "Flowing Hair", start: 1794, stop: 1795, image: 0, requires: domain.CheckBust,
			mints: map[domain.OptionKey]window{domain.MintP: nil},
		},
		{
			name: "Draped Bust", start: 1796, stop: 1807, image: 1, requires: domain.CheckBust,
			skip:  skipYears(1798, 1799, 1800),
			mints: map[domain.OptionKey]window{domain.MintP: nil},
		},
		{
			name: "Capped Bust", start: 1807, stop: 1839, image: 2, requires: domain.CheckBust,
			skip: skipYears(1816),
			mints: map[domain.OptionKey]window{
				domain.MintP: nil,
				domain.MintO: only(1838, 1839),
			},
		},
		{
			name: "Seated Liberty", start: 1839, stop: 1891, image: 3, requires: domain.CheckSeated,
			mints: map[domain.OptionKey]window{
				domain.MintP:  nil,
				domain.MintO:  between(1840, 1861),
				domain.MintS:  between(1855, 1878),
				domain.MintCC: between(1870, 1878),
			},
		},
	},
}
