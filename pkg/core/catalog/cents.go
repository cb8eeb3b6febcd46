package catalog

import "github.com/wadjakorntonsri/coin-collection/pkg/core/domain"

var lincolnDesigns2009 = []string{"Early Childhood", "Formative Years", "Professional Life", "Presidency"}

// Designs a cent collection can hold a single placeholder for.
var oldCentDesigns = []string{
	"Flowing Hair", "Liberty Cap", "Draped Bust", "Capped Bust",
	"Coronet", "Braided Hair", "Flying Eagle", "Indian Head",
}

func centImages() []ImageEntry {
	return append(named("lincoln", "Wheat Ears", "Lincoln Memorial", "Early Childhood",
		"Formative Years", "Professional Life", "Presidency", "Union Shield", "Steel", "Proof"),
		named("cent", oldCentDesigns...)...)
}

func lincolnWheat(g *gen, y int) {
	const img = "Wheat Ears"
	switch y {
	case 1909:
		if g.on(domain.MintP) {
			g.slot(y, "", img)
			g.slot(y, "VDB", img)
		}
		if g.on(domain.MintS) {
			g.slot(y, "S", img)
			g.slot(y, "S VDB", img)
		}
	case 1922:
		if g.on(domain.MintD) {
			g.slot(y, "D", img)
			g.slot(y, "No D", img)
		}
	case 1943:
		if g.on(domain.MintP) {
			g.slot(y, "Steel", "Steel")
		}
		if g.on(domain.MintD) {
			g.slot(y, "D Steel", "Steel")
		}
		if g.on(domain.MintS) {
			g.slot(y, "S Steel", "Steel")
		}
	default:
		if g.on(domain.MintP) {
			g.slot(y, "", img)
		}
		if g.on(domain.MintD) && except(1910, 1921, 1923)(y) {
			g.slot(y, "D", img)
		}
		if g.on(domain.MintS) && except(1932, 1933, 1934, 1956, 1957, 1958)(y) {
			g.slot(y, "S", img)
		}
	}
}

func lincolnMemorial(g *gen, y int) {
	const img = "Lincoln Memorial"
	switch y {
	case 1982:
		if g.on(domain.MintP) {
			for _, v := range []string{"Copper Large Date", "Copper Small Date", "Zinc Large Date", "Zinc Small Date"} {
				g.slot(y, v, img)
			}
		}
		if g.on(domain.MintD) {
			for _, v := range []string{"D Copper Large Date", "D Zinc Large Date", "D Zinc Small Date"} {
				g.slot(y, v, img)
			}
		}
		if g.on(domain.MintProof) {
			g.slot(y, "S Proof", "Proof")
		}
		return
	case 2009:
		for _, d := range lincolnDesigns2009 {
			if g.on(domain.MintP) {
				g.slot(y, d, d)
			}
			if g.on(domain.MintSatin) {
				g.slot(y, mk("Satin", d), d)
			}
			if g.on(domain.MintD) {
				g.slot(y, mk("D", d), d)
			}
			if g.on(domain.MintSatin) {
				g.slot(y, mk("D Satin", d), d)
			}
			if g.on(domain.MintProof) {
				g.slot(y, mk("S Proof", d), d)
			}
		}
		return
	}
	satin := between(2005, 2008)(y)
	if g.on(domain.MintP) {
		g.slot(y, "", img)
		if between(1965, 1967)(y) {
			g.slot(y, "SMS", img)
		}
	}
	if g.on(domain.MintSatin) && satin {
		g.slot(y, "Satin", img)
	}
	if g.on(domain.MintD) && except(1965, 1966, 1967)(y) {
		g.slot(y, "D", img)
	}
	if g.on(domain.MintSatin) && satin {
		g.slot(y, "D Satin", img)
	}
	if g.on(domain.MintS) && between(1968, 1974)(y) {
		g.slot(y, "S", img)
	}
	if g.on(domain.MintProof) {
		switch {
		case y <= 1964:
			g.slot(y, "Proof", "Proof")
		case y >= 1968:
			g.slot(y, "S Proof", "Proof")
		}
	}
}

func lincolnShield(g *gen, y int) {
	const img = "Union Shield"
	if g.on(domain.MintP) {
		mark := ""
		if y == 2017 {
			mark = "P"
		}
		g.slot(y, mark, img)
	}
	if g.on(domain.MintSatin) && y == 2010 {
		g.slot(y, "Satin", img)
	}
	if g.on(domain.MintD) {
		g.slot(y, "D", img)
	}
	if g.on(domain.MintSatin) && y == 2010 {
		g.slot(y, "D Satin", img)
	}
	if g.on(domain.MintW) && y == 2019 {
		g.slot(y, "W", img)
		g.slot(y, "W Proof", "Proof")
		g.slot(y, "W Reverse Proof", "Proof")
	}
	if g.on(domain.MintProof) {
		g.slot(y, "S Proof", "Proof")
		if y == 2018 {
			g.slot(y, "S Reverse Proof", "Proof")
		}
	}
}

func lincolnYear(g *gen, y int) {
	switch {
	case y < 1959:
		lincolnWheat(g, y)
	case y <= 2009:
		lincolnMemorial(g, y)
	default:
		lincolnShield(g, y)
	}
}

var lincolnCents = &Series{
	Name:          "Lincoln Cents",
	StartYear:     1909,
	StopYear:      StillInProduction,
	EditableDates: true,
	FaceValue:     face("0.01"),
	Mints: []Toggle{
		mintP(""), mintD, mintS,
		{Key: domain.MintSatin, Label: "Satin finish", Mark: "Satin"},
		{Key: domain.MintProof, Label: "Memorial proofs", Mark: "Proof"},
	},
	Checkboxes: []Toggle{check(domain.CheckOlderDesigns, "Include older designs", false)},
	Images:     centImages(),
	Obverse:    "obv_lincoln_cent",
	Reverse:    "rev_lincoln_cent_shield",
	prelude: func(g *gen) {
		if g.on(domain.CheckOlderDesigns) {
			g.placeholders(oldCentDesigns...)
		}
	},
	years: lincolnYear,
}

func indianHeadSegment(name string, image int) segment {
	return segment{
		name:  name,
		start: 1859,
		stop:  1909,
		image: image,
		mints: map[domain.OptionKey]window{
			domain.MintP: nil,
			domain.MintS: only(1908, 1909),
		},
		expand: func(y int, m *Toggle) []slotName {
			if y == 1864 && m != nil && m.Key == domain.MintP {
				return []slotName{variety("", " Copper"), variety("", " Bronze"), variety("", " L")}
			}
			return nil
		},
	}
}

var indianHeadCents = &Series{
	Name:      "Indian Head Cents",
	StartYear: 1859,
	StopYear:  1909,
	FaceValue: face("0.01"),
	Mints:     []Toggle{mintP(""), mintS},
	Obverse:   "obv_indian_head_cent",
	Reverse:   "rev_indian_head_cent",
	segments:  []segment{indianHeadSegment("", domain.NoImage)},
}

var smallCents = &Series{
	Name:          "Small Cents",
	StartYear:     1856,
	StopYear:      StillInProduction,
	EditableDates: true,
	FaceValue:     face("0.01"),
	Mints: []Toggle{
		mintP(""), byDefault(mintD), byDefault(mintS),
		{Key: domain.MintSatin, Label: "Satin finish", Mark: "Satin"},
		{Key: domain.MintProof, Label: "Memorial and Shield proofs", Mark: "Proof"},
		mintW,
	},
	Checkboxes: []Toggle{
		check(domain.CheckOlderDesigns, "Include large cent designs", false),
		check(domain.CheckFlyingEagle, "Include Flying Eagle cents", false),
		check(domain.CheckIndianHead, "Include Indian Head cents", false),
		check(domain.CheckWheat, "Include Wheat cents", true),
		check(domain.CheckMemorial, "Include Memorial cents", true),
		check(domain.CheckShield, "Include Shield cents", true),
	},
	Images:  centImages(),
	Obverse: "obv_flying_eagle_cent",
	Reverse: "rev_lincoln_cent_wheat",
	prelude: func(g *gen) {
		if !g.on(domain.CheckOlderDesigns) {
			return
		}
		g.placeholders(oldCentDesigns[:6]...)
		if !g.on(domain.CheckFlyingEagle) {
			g.placeholders("Flying Eagle")
		}
		if !g.on(domain.CheckIndianHead) {
			g.placeholders("Indian Head")
		}
	},
	years: func(g *gen, y int) {
		if g.on(domain.CheckFlyingEagle) && between(1856, 1858)(y) {
			g.slot(y, "", "Flying Eagle")
		}
		if g.on(domain.CheckIndianHead) && between(1859, 1909)(y) {
			// 1909 is shared with the first Lincoln cents.
			suffix := ""
			if y == 1909 {
				suffix = "Indian Head"
			}
			if g.on(domain.MintP) {
				if y == 1864 {
					g.slot(y, "Copper", "Indian Head")
					g.slot(y, "Bronze", "Indian Head")
					g.slot(y, "L", "Indian Head")
				} else {
					g.slot(y, suffix, "Indian Head")
				}
			}
			if g.on(domain.MintS) && y >= 1908 {
				g.slot(y, mk("S", suffix), "Indian Head")
			}
		}
		switch {
		case y >= 1909 && y < 1959:
			if g.on(domain.CheckWheat) {
				lincolnWheat(g, y)
			}
		case y >= 1959 && y <= 2009:
			if g.on(domain.CheckMemorial) {
				lincolnMemorial(g, y)
			}
		case y > 2009:
			if g.on(domain.CheckShield) {
				lincolnShield(g, y)
			}
		}
	},
}

var largeCents = &Series{
	Name:          "Large Cents",
	StartYear:     1793,
	StopYear:      1857,
	EditableDates: true,
	FaceValue:     face("0.01"),
	Checkboxes: []Toggle{
		check(domain.CheckBust, "Include bust designs", true),
		check(domain.CheckCoronet, "Include Coronet and Braided Hair", true),
	},
	Images: named("large_cent", "Flowing Hair", "Liberty Cap", "Draped Bust", "Capped Bust",
		"Matron Coronet", "Young Coronet", "Petite Braided Hair", "Mature Braided Hair"),
	Obverse: "obv_coronet_large_cent",
	Reverse: "rev_large_cent",
	years: func(g *gen, y int) {
		design := func(from, to int, name string) {
			if y >= from && y <= to {
				g.slot(y, name, name)
			}
		}
		if g.on(domain.CheckBust) {
			if y == 1793 {
				g.slot(y, "Flowing Hair Chain Reverse", "Flowing Hair")
				g.slot(y, "Flowing Hair Wreath Reverse", "Flowing Hair")
			}
			design(1793, 1796, "Liberty Cap")
			design(1796, 1807, "Draped Bust")
			design(1808, 1814, "Capped Bust")
		}
		if g.on(domain.CheckCoronet) {
			design(1816, 1835, "Matron Coronet")
			design(1836, 1839, "Young Coronet")
			design(1839, 1843, "Petite Braided Hair")
			design(1844, 1857, "Mature Braided Hair")
		}
	},
}

var halfCents = &Series{
	Name:      "Half Cents",
	StartYear: 1793,
	StopYear:  1857,
	FaceValue: face("0.005"),
	Images:    named("half_cent", "Liberty Cap", "Draped Bust", "Classic Head", "Braided Hair"),
	Obverse:   "obv_braided_hair_half_cent",
	Reverse:   "rev_half_cent",
	segments: []segment{
		{name: "Liberty Cap", start: 1793, stop: 1797, image: 0},
		{name: "Draped Bust", start: 1800, stop: 1808, image: 1, skip: skipYears(1801)},
		{
			name: "Classic Head", start: 1809, stop: 1836, image: 2,
			skip: skipYears(append(yearsBetween(1812, 1824), 1827, 1830)...),
		},
		{name: "Braided Hair", start: 1840, stop: 1857, image: 3},
	},
}

var twoCents = &Series{
	Name:      "Two Cents",
	StartYear: 1864,
	StopYear:  1873,
	FaceValue: face("0.02"),
	Obverse:   "obv_two_cent",
	Reverse:   "rev_two_cent",
	segments: []segment{{
		start: 1864, stop: 1873,
		expand: func(y int, _ *Toggle) []slotName {
			switch y {
			case 1864:
				return []slotName{variety("1864 Small Motto", ""), variety("1864 Large Motto", "")}
			case 1873:
				return []slotName{variety("", " Proof")}
			}
			return nil
		},
	}},
}

var threeCents = &Series{
	Name:      "Three Cents",
	StartYear: 1851,
	StopYear:  1889,
	FaceValue: face("0.03"),
	Checkboxes: []Toggle{
		check(domain.CheckSilver, "Include silver three cents", true),
		check(domain.CheckNickel, "Include nickel three cents", true),
	},
	Images:  named("three_cent", "Silver", "Nickel"),
	Obverse: "obv_three_cent_nickel",
	Reverse: "rev_three_cent_nickel",
	segments: []segment{
		{
			name: "Silver", start: 1851, stop: 1873, image: 0, requires: domain.CheckSilver,
			expand: func(y int, _ *Toggle) []slotName {
				switch y {
				case 1851:
					return []slotName{variety("", ""), variety("", "O")}
				case 1873:
					return []slotName{variety("", " Proof")}
				}
				return nil
			},
		},
		{
			name: "Nickel", start: 1865, stop: 1889, image: 1, requires: domain.CheckNickel,
			expand: func(y int, _ *Toggle) []slotName {
				if y == 1877 || y == 1878 || y == 1886 {
					return []slotName{variety("", " Proof")}
				}
				return nil
			},
		},
	},
}
