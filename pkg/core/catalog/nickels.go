package catalog

import "github.com/wadjakorntonsri/coin-collection/pkg/core/domain"

func jeffersonImages() []ImageEntry {
	return named("jefferson_nickel", "Monticello", "Peace Medal", "Keelboat",
		"American Bison", "Ocean in View", "Return to Monticello")
}

var jeffersonMints = map[domain.OptionKey]window{
	domain.MintP: except(1968, 1969, 1970),
	domain.MintD: except(1965, 1966, 1967),
	domain.MintS: all(until(1970), except(append([]int{1950}, yearsBetween(1955, 1967)...)...)),
}

// Westward Journey designs, two per year.
var westwardJourney = map[int][]string{
	2004: {"Peace Medal", "Keelboat"},
	2005: {"American Bison", "Ocean in View"},
}

func jeffersonSegment(base int) segment {
	first := map[int]int{2004: 1, 2005: 3}
	return segment{
		start: 1938,
		stop:  StillInProduction,
		mints: jeffersonMints,
		imageFor: func(y int) int {
			if y >= 2006 {
				return base + 5
			}
			return base
		},
		expand: func(y int, m *Toggle) []slotName {
			designs, ok := westwardJourney[y]
			if !ok {
				return nil
			}
			out := make([]slotName, 0, len(designs))
			for i, d := range designs {
				out = append(out, varietyImg("", markedVariety(m, d), base+first[y]+i))
			}
			return out
		},
	}
}

var jeffersonNickels = &Series{
	Name:          "Jefferson Nickels",
	StartYear:     1938,
	StopYear:      StillInProduction,
	EditableDates: true,
	FaceValue:     face("0.05"),
	Mints:         []Toggle{mintP(""), mintD, mintS},
	Images:        jeffersonImages(),
	Obverse:       "obv_jefferson_nickel",
	Reverse:       "rev_jefferson_nickel",
	segments:      []segment{jeffersonSegment(0)},
}

var libertyHeadNickels = &Series{
	Name:      "Liberty Head Nickels",
	StartYear: 1883,
	StopYear:  1912,
	FaceValue: face("0.05"),
	Mints:     []Toggle{mintP(""), mintD, mintS},
	Obverse:   "obv_liberty_head_nickel",
	Reverse:   "rev_liberty_head_nickel",
	segments: []segment{{
		start: 1883, stop: 1912, image: domain.NoImage,
		mints: map[domain.OptionKey]window{
			domain.MintP: nil,
			domain.MintD: only(1912),
			domain.MintS: only(1912),
		},
		expand: func(y int, m *Toggle) []slotName {
			if y == 1883 && (m == nil || m.Key == domain.MintP) {
				return []slotName{variety("1883 w/ Cents", ""), variety("1883 w/o Cents", "")}
			}
			return nil
		},
	}},
}

var buffaloNickels = &Series{
	Name:      "Buffalo Nickels",
	StartYear: 1913,
	StopYear:  1938,
	FaceValue: face("0.05"),
	Mints:     []Toggle{mintP(""), mintD, mintS},
	Obverse:   "obv_buffalo_nickel",
	Reverse:   "rev_buffalo_nickel",
	segments: []segment{{
		start: 1913, stop: 1938, image: domain.NoImage,
		skip: skipYears(1922, 1932, 1933),
		mints: map[domain.OptionKey]window{
			domain.MintP: except(1931, 1938),
			domain.MintD: except(1921, 1923, 1930, 1931),
			domain.MintS: except(1934, 1938),
		},
		expand: func(y int, m *Toggle) []slotName {
			if y == 1913 && m != nil {
				return []slotName{
					variety("", markedVariety(m, "Type 1")),
					variety("", markedVariety(m, "Type 2")),
				}
			}
			return nil
		},
	}},
}

func jeffersonYear(g *gen, y int) {
	img := "Monticello"
	if y >= 2006 {
		img = "Return to Monticello"
	}
	if designs, ok := westwardJourney[y]; ok {
		for _, d := range designs {
			if g.on(domain.MintP) {
				g.slot(y, mk("P", d), d)
			}
			if g.on(domain.MintSatin) && y == 2005 {
				g.slot(y, mk("P Satin", d), d)
			}
			if g.on(domain.MintD) {
				g.slot(y, mk("D", d), d)
			}
			if g.on(domain.MintSatin) && y == 2005 {
				g.slot(y, mk("D Satin", d), d)
			}
			if g.on(domain.MintProof) {
				g.slot(y, mk("S Proof", d), d)
			}
		}
		return
	}

	// Wartime nickels carry their mint mark over Monticello, Philadelphia included.
	if y == 1942 || between(1943, 1945)(y) {
		if g.on(domain.MintP) {
			if y == 1942 {
				g.slot(y, "", img)
			}
			g.slot(y, "P Silver", img)
		}
		if g.on(domain.MintD) {
			if y == 1942 {
				g.slot(y, "D", img)
			} else {
				g.slot(y, "D Silver", img)
			}
		}
		if g.on(domain.MintS) {
			g.slot(y, "S Silver", img)
		}
		return
	}

	satin := between(2006, 2010)(y)
	if g.on(domain.MintP) && except(1968, 1969, 1970)(y) {
		mark := ""
		if y >= 1980 {
			mark = "P"
		}
		g.slot(y, mark, img)
		if between(1965, 1967)(y) {
			g.slot(y, "SMS", img)
		}
	}
	if g.on(domain.MintSatin) && satin {
		g.slot(y, "P Satin", img)
	}
	if g.on(domain.MintD) && except(1965, 1966, 1967)(y) {
		g.slot(y, "D", img)
	}
	if g.on(domain.MintSatin) && satin {
		g.slot(y, "D Satin", img)
	}
	if g.on(domain.MintS) && y <= 1970 && y != 1950 && !between(1955, 1967)(y) {
		g.slot(y, "S", img)
	}
	if g.on(domain.MintProof) && y >= 1968 {
		g.slot(y, "S Proof", img)
	}
}

func buffaloYear(g *gen, y int) {
	if only(1922, 1932, 1933)(y) {
		return
	}
	// The last Buffalo nickels share 1938 with the first Jefferson nickels.
	suffix := ""
	if y == 1938 {
		suffix = "Buffalo"
	}
	emit := func(mark string) {
		if y == 1913 {
			g.slot(y, mk(mark, "Type 1"), "Buffalo")
			g.slot(y, mk(mark, "Type 2"), "Buffalo")
			return
		}
		g.slot(y, mk(mark, suffix), "Buffalo")
	}
	if g.on(domain.MintP) && except(1931, 1938)(y) {
		emit("")
	}
	if g.on(domain.MintD) && except(1921, 1923, 1930, 1931)(y) {
		emit("D")
	}
	if g.on(domain.MintS) && except(1934, 1938)(y) {
		emit("S")
	}
}

var allNickels = &Series{
	Name:          "All Nickels",
	StartYear:     1866,
	StopYear:      StillInProduction,
	EditableDates: true,
	FaceValue:     face("0.05"),
	Mints: []Toggle{
		mintP(""), byDefault(mintD), byDefault(mintS),
		{Key: domain.MintProof, Label: "S proofs", Mark: "S Proof"},
		{Key: domain.MintSatin, Label: "Satin finish", Mark: "Satin"},
	},
	Checkboxes: []Toggle{
		check(domain.CheckShield, "Include Shield nickels", true),
		check(domain.CheckLiberty, "Include Liberty Head nickels", true),
		check(domain.CheckBuffalo, "Include Buffalo nickels", true),
		check(domain.CheckJefferson, "Include Jefferson nickels", true),
	},
	Images:  append(named("nickel", "Shield", "Liberty Head", "Buffalo"), jeffersonImages()...),
	Obverse: "obv_shield_nickel",
	Reverse: "rev_jefferson_nickel",
	prelude: func(g *gen) {
		for _, d := range []struct {
			key  domain.OptionKey
			name string
		}{
			{domain.CheckShield, "Shield"},
			{domain.CheckLiberty, "Liberty Head"},
			{domain.CheckBuffalo, "Buffalo"},
		} {
			if !g.on(d.key) {
				g.placeholders(d.name)
			}
		}
	},
	years: func(g *gen, y int) {
		if g.on(domain.CheckShield) && g.on(domain.MintP) && between(1866, 1883)(y) && except(1877, 1878)(y) {
			g.slot(y, "", "Shield")
		}
		if g.on(domain.CheckLiberty) && between(1883, 1912)(y) {
			if g.on(domain.MintP) {
				if y == 1883 {
					g.slot(y, "w/ Cents", "Liberty Head")
					g.slot(y, "w/o Cents", "Liberty Head")
				} else {
					g.slot(y, "", "Liberty Head")
				}
			}
			if y == 1912 {
				if g.on(domain.MintD) {
					g.slot(y, "D", "Liberty Head")
				}
				if g.on(domain.MintS) {
					g.slot(y, "S", "Liberty Head")
				}
			}
		}
		if g.on(domain.CheckBuffalo) && between(1913, 1938)(y) {
			buffaloYear(g, y)
		}
		if g.on(domain.CheckJefferson) && y >= 1938 {
			jeffersonYear(g, y)
		}
	},
}

var halfDimes = &Series{
	Name:          "Half Dimes",
	StartYear:     1794,
	StopYear:      1873,
	EditableDates: true,
	FaceValue:     face("0.05"),
	Mints:         []Toggle{mintP(""), mintO, mintS},
	Checkboxes: []Toggle{
		check(domain.CheckBust, "Include bust designs", true),
		check(domain.CheckSeated, "Include Seated Liberty", true),
	},
	Images:  named("half_dime", "Flowing Hair", "Draped Bust", "Capped Bust", "Seated Liberty"),
	Obverse: "obv_seated_half_dime",
	Reverse: "rev_seated_half_dime",
	segments: []segment{
		{
			name: "Flowing Hair", start: 1794, stop: 1795, image: 0, requires: domain.CheckBust,
			mints: map[domain.OptionKey]window{domain.MintP: nil},
		},
		{
			name: "Draped Bust", start: 1796, stop: 1805, image: 1, requires: domain.CheckBust,
			skip:  skipYears(1798, 1799, 1804),
			mints: map[domain.OptionKey]window{domain.MintP: nil},
		},
		{
			name: "Capped Bust", start: 1829, stop: 1837, image: 2, requires: domain.CheckBust,
			mints: map[domain.OptionKey]window{domain.MintP: nil},
		},
		{
			name: "Seated Liberty", start: 1837, stop: 1873, image: 3, requires: domain.CheckSeated,
			mints: map[domain.OptionKey]window{
				domain.MintP: nil,
				domain.MintO: all(between(1838, 1860), except(1843, 1845, 1846, 1847)),
				domain.MintS: between(1863, 1867),
			},
		},
	},
}
