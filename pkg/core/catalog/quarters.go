package catalog

import (
	"slices"

	"github.com/wadjakorntonsri/coin-collection/pkg/core/domain"
)

var stateNames = []string{
	"Delaware", "Pennsylvania", "New Jersey", "Georgia", "Connecticut",
	"Massachusetts", "Maryland", "South Carolina", "New Hampshire", "Virginia",
	"New York", "North Carolina", "Rhode Island", "Vermont", "Kentucky",
	"Tennessee", "Ohio", "Louisiana", "Indiana", "Mississippi",
	"Illinois", "Alabama", "Maine", "Missouri", "Arkansas",
	"Michigan", "Florida", "Texas", "Iowa", "Wisconsin",
	"California", "Minnesota", "Oregon", "Kansas", "West Virginia",
	"Nevada", "Nebraska", "Colorado", "North Dakota", "South Dakota",
	"Montana", "Washington", "Idaho", "Wyoming", "Utah",
	"Oklahoma", "New Mexico", "Arizona", "Alaska", "Hawaii",
}

var territoryNames = []string{
	"District of Columbia", "Puerto Rico", "Guam",
	"American Samoa", "U.S. Virgin Islands", "Northern Mariana Islands",
}

var parkNames = []string{
	"Hot Springs", "Yellowstone", "Yosemite", "Grand Canyon", "Mt. Hood",
	"Gettysburg", "Glacier", "Olympic", "Vicksburg", "Chickasaw",
	"El Yunque", "Chaco Culture", "Acadia", "Hawaii Volcanoes", "Denali",
	"White Mountain", "Perry's Victory", "Great Basin", "Fort McHenry", "Mount Rushmore",
	"Great Smoky Mountains", "Shenandoah", "Arches", "Great Sand Dunes", "Everglades",
	"Homestead", "Kisatchie", "Blue Ridge", "Bombay Hook", "Saratoga",
	"Shawnee", "Cumberland Gap", "Harpers Ferry", "Theodore Roosevelt", "Fort Moultrie",
	"Effigy Mounds", "Frederick Douglass", "Ozark Riverways", "Ellis Island", "George Rogers Clark",
	"Pictured Rocks", "Apostle Islands", "Voyageurs", "Cumberland Island", "Block Island",
	"Lowell", "American Memorial", "War in the Pacific", "San Antonio Missions", "River of No Return",
	"National Park of American Samoa", "Weir Farm", "Salt River Bay", "Marsh-Billings-Rockefeller", "Tallgrass Prairie",
	"Tuskegee Airmen",
}

var womenNames = []string{
	"Maya Angelou", "Dr. Sally Ride", "Wilma Mankiller", "Nina Otero-Warren", "Anna May Wong",
	"Bessie Coleman", "Edith Kanaka'ole", "Eleanor Roosevelt", "Jovita Idar", "Maria Tallchief",
	"Rev. Dr. Pauli Murray", "Patsy Takemoto Mink", "Dr. Mary Edwards Walker", "Celia Cruz", "Zitkala-Sa",
	"Ida B. Wells", "Juliette Gordon Low", "Dr. Vera Rubin", "Stacey Park Milbern", "Althea Gibson",
}

// releasedIn returns the designs of a five-a-year program released in year y.
func releasedIn(names []string, firstYear, y int) []string {
	i := (y - firstYear) * 5
	if i < 0 || i >= len(names) {
		return nil
	}
	return names[i:min(i+5, len(names))]
}

// Five designs a year, in release order.
func fivePerYear(names []string, firstYear, imageBase int) []issue {
	out := make([]issue, len(names))
	for i, n := range names {
		out[i] = issue{id: n, year: firstYear + i/5, image: imageBase + i}
	}
	return out
}

func stateIssues() []issue {
	out := fivePerYear(stateNames, 1999, 0)
	for i, n := range territoryNames {
		out = append(out, issue{
			id: n, year: 2009, requires: domain.CheckTerritories, image: len(stateNames) + i,
		})
	}
	return out
}

func stateImages() []ImageEntry {
	return named("state_quarter", append(append([]string{}, stateNames...), territoryNames...)...)
}

var stateQuarters = &Series{
	Name:       "State Quarters",
	FaceValue:  face("0.25"),
	Mints:      []Toggle{mintP("P"), mintD},
	Checkboxes: []Toggle{check(domain.CheckTerritories, "Include DC and territories", true)},
	Images:     stateImages(),
	Obverse:    "obv_state_quarter",
	Reverse:    "state_quarter_delaware",
	issues:     stateIssues(),
}

var nationalParkQuarters = &Series{
	Name:      "National Park Quarters",
	FaceValue: face("0.25"),
	Mints:     []Toggle{mintP("P"), mintD, mintS, mintW},
	Images:    named("park_quarter", parkNames...),
	Obverse:   "obv_state_quarter",
	Reverse:   "park_quarter_hot_springs",
	issues:    fivePerYear(parkNames, 2010, 0),
	issueMints: map[domain.OptionKey]window{
		domain.MintS: since(2012),
		domain.MintW: between(2019, 2020),
	},
}

var americanWomenQuarters = &Series{
	Name:      "American Women Quarters",
	FaceValue: face("0.25"),
	Mints: []Toggle{
		mintP("P"), mintD, mintS,
		{Key: domain.MintProof, Label: "S proofs", Mark: "S Proof"},
		{Key: domain.MintSilverProof, Label: "Silver proofs", Mark: "S Silver Proof"},
	},
	Images:    named("women_quarter", womenNames...),
	Obverse:   "obv_women_quarter",
	Reverse:   "women_quarter_maya_angelou",
	issues:    fivePerYear(womenNames, 2022, 0),
}

var washingtonMints = map[domain.OptionKey]window{
	domain.MintP: nil,
	domain.MintD: except(1938, 1965, 1966, 1967),
	domain.MintS: either(only(1932), between(1935, 1944), between(1946, 1948), between(1950, 1954)),
}

func washingtonSegment(name string, stop, image int) segment {
	return segment{
		name: name, start: 1932, stop: stop, image: image,
		mints: washingtonMints,
		skip:  skipBoth(skipYears(1933), bicentennialSkip),
		label: bicentennialLabel,
	}
}

var basicQuarters = &Series{
	Name:          "Washington Quarters",
	StartYear:     1932,
	StopYear:      1998,
	EditableDates: true,
	FaceValue:     face("0.25"),
	Mints:         []Toggle{mintP(""), mintD, mintS},
	Obverse:       "obv_washington_quarter",
	Reverse:       "rev_washington_quarter",
	segments:      []segment{washingtonSegment("", 1998, domain.NoImage)},
}

var washingtonQuarters = func() *Series {
	seg := washingtonSegment("", 1998, domain.NoImage)
	seg.extra = proofs(either(between(1936, 1942), between(1950, 1964)), since(1968))
	seg.expand = pMarkSince(1980)
	return &Series{
		Name:          "Washington Quarters (Advanced)",
		StartYear:     1932,
		StopYear:      1998,
		EditableDates: true,
		FaceValue:     face("0.25"),
		Mints:         []Toggle{mintP(""), mintD, mintS},
		Checkboxes:    []Toggle{check(domain.CheckProofs, "Include proofs", false)},
		Obverse:       "obv_washington_quarter",
		Reverse:       "rev_washington_quarter",
		segments:      []segment{seg},
	}
}()

func barberQuarterSegment(name string, image int) segment {
	return segment{
		name: name, start: 1892, stop: 1916, image: image,
		mints: map[domain.OptionKey]window{
			domain.MintP: nil,
			domain.MintD: all(since(1906), except(1912)),
			domain.MintS: except(1904, 1906, 1910, 1916),
			domain.MintO: until(1909),
		},
	}
}

var barberQuarters = &Series{
	Name:      "Barber Quarters",
	StartYear: 1892,
	StopYear:  1916,
	FaceValue: face("0.25"),
	Mints:     []Toggle{mintP(""), mintD, mintS, mintO},
	Obverse:   "obv_barber_quarter",
	Reverse:   "rev_barber_quarter",
	segments:  []segment{barberQuarterSegment("", domain.NoImage)},
}

func standingLibertySegment(name string, image int) segment {
	return segment{
		name: name, start: 1916, stop: 1930, image: image,
		skip: skipYears(1922),
		mints: map[domain.OptionKey]window{
			domain.MintP: nil,
			domain.MintD: except(1916, 1921, 1923, 1925, 1930),
			domain.MintS: except(1916, 1921, 1925),
		},
		expand: func(y int, m *Toggle) []slotName {
			if y != 1917 {
				return nil
			}
			mark := ""
			if m != nil {
				mark = m.Mark
			}
			return []slotName{variety("1917 Type 1", mark), variety("1917 Type 2", mark)}
		},
	}
}

var standingLibertyQuarters = &Series{
	Name:      "Standing Liberty Quarters",
	StartYear: 1916,
	StopYear:  1930,
	FaceValue: face("0.25"),
	Mints:     []Toggle{mintP(""), mintD, mintS},
	Obverse:   "obv_standing_liberty_quarter",
	Reverse:   "rev_standing_liberty_quarter",
	segments:  []segment{standingLibertySegment("", domain.NoImage)},
}

var silverQuarters = func() *Series {
	barber := barberQuarterSegment("Barber", 0)
	barber.requires = domain.CheckBarber
	standing := standingLibertySegment("Standing Liberty", 1)
	standing.requires = domain.CheckStanding
	washington := washingtonSegment("Washington", 1964, 2)
	washington.requires = domain.CheckWashington
	return &Series{
		Name:          "Silver Quarters",
		StartYear:     1892,
		StopYear:      1964,
		EditableDates: true,
		FaceValue:     face("0.25"),
		Mints:         []Toggle{mintP(""), mintD, mintS, mintO},
		Checkboxes: []Toggle{
			check(domain.CheckBarber, "Include Barber quarters", true),
			check(domain.CheckStanding, "Include Standing Liberty quarters", true),
			check(domain.CheckWashington, "Include Washington quarters", true),
		},
		Images:   named("quarter", "Barber", "Standing Liberty", "Washington"),
		Obverse:  "obv_standing_liberty_quarter",
		Reverse:  "rev_standing_liberty_quarter",
		segments: []segment{barber, standing, washington},
	}
}()

func seatedQuarterYear(g *gen, y int) {
	const img = "Seated Liberty"
	if g.on(domain.MintP) {
		switch {
		case y == 1838 || y == 1839:
			g.slot(y, "No Drapery", img)
		case y == 1853:
			g.slot(y, "Arrows & Rays", img)
		case y == 1854 || y == 1855:
			g.slot(y, "Arrows", img)
		case y <= 1865:
			g.slot(y, "", img)
		default:
			if y == 1866 {
				g.slot(y, "No Motto", img)
			}
			if y != 1873 {
				g.slot(y, "Motto", img)
			}
			if y == 1873 || y == 1874 {
				g.slot(y, "Arrows & Motto", img)
			}
		}
	}
	if g.on(domain.MintO) {
		switch {
		case y == 1853:
			g.slot(y, "O Arrows & Rays", img)
		case y == 1854 || y == 1855:
			g.slot(y, "O Arrows", img)
		case y == 1891:
			g.slot(y, "O Motto", img)
		case between(1840, 1860)(y) && except(1845, 1846, 1848)(y):
			if y == 1840 {
				g.slot(y, "O No Drapery", img)
			}
			g.slot(y, "O", img)
		}
	}
	if g.on(domain.MintS) {
		switch {
		case only(1854, 1855, 1873, 1874)(y):
			g.slot(y, "S Arrows", img)
		case between(1856, 1865)(y) && y != 1863:
			g.slot(y, "S", img)
		case between(1866, 1872)(y) && y != 1870,
			between(1875, 1878)(y), y == 1888, y == 1891:
			g.slot(y, "S Motto", img)
		}
	}
	if g.on(domain.MintCC) {
		switch {
		case between(1870, 1872)(y):
			g.slot(y, "CC", img)
		case y == 1873:
			g.slot(y, "CC No Arrows", img)
			g.slot(y, "CC Arrows", img)
		case between(1875, 1878)(y), y == 1888:
			g.slot(y, "CC Motto", img)
		}
	}
}

var earlyQuarters = &Series{
	Name:          "Early Quarters",
	StartYear:     1796,
	StopYear:      1930,
	EditableDates: true,
	FaceValue:     face("0.25"),
	Mints: []Toggle{
		mintP(""), byDefault(mintD), byDefault(mintS), byDefault(mintO), byDefault(mintCC),
	},
	Checkboxes: []Toggle{
		check(domain.CheckOlderDesigns, "Show older designs", false),
		check(domain.CheckBust, "Include bust designs", true),
		check(domain.CheckSeated, "Include Seated Liberty quarters", true),
		check(domain.CheckBarber, "Include Barber quarters", true),
		check(domain.CheckStanding, "Include Standing Liberty quarters", true),
	},
	Images:  named("quarter", "Draped Bust", "Capped Bust", "Seated Liberty", "Barber", "Standing Liberty"),
	Obverse: "obv_barber_quarter",
	Reverse: "rev_barber_quarter",
	prelude: func(g *gen) {
		if !g.on(domain.CheckOlderDesigns) {
			return
		}
		if !g.on(domain.CheckBust) {
			g.placeholders("Draped Bust", "Capped Bust")
		}
		if !g.on(domain.CheckSeated) {
			g.placeholders("Seated Liberty")
		}
		if !g.on(domain.CheckBarber) {
			g.placeholders("Barber")
		}
	},
	years: func(g *gen, y int) {
		// The bust designs were struck at Philadelphia only.
		if g.on(domain.CheckBust) && g.on(domain.MintP) {
			switch {
			case y == 1796:
				g.slot(y, "Small Eagle", "Draped Bust")
			case between(1804, 1807)(y):
				g.slot(y, "Heraldic Eagle", "Draped Bust")
			case y == 1815, between(1818, 1828)(y) && y != 1826:
				g.slot(y, "Large Diameter", "Capped Bust")
			case between(1831, 1838)(y):
				g.slot(y, "Small Diameter", "Capped Bust")
			}
		}
		if g.on(domain.CheckSeated) && between(1838, 1891)(y) {
			seatedQuarterYear(g, y)
		}
		if g.on(domain.CheckBarber) && between(1892, 1916)(y) {
			// Barber and Standing Liberty quarters were both struck in 1916.
			suffix := ""
			if y == 1916 {
				suffix = "Barber"
			}
			if g.on(domain.MintP) {
				g.slot(y, suffix, "Barber")
			}
			if g.on(domain.MintD) && y >= 1906 && except(1912, 1916)(y) {
				g.slot(y, "D", "Barber")
			}
			if g.on(domain.MintS) && except(1904, 1906, 1910, 1916)(y) {
				g.slot(y, "S", "Barber")
			}
			if g.on(domain.MintO) && y <= 1909 {
				g.slot(y, "O", "Barber")
			}
		}
		if g.on(domain.CheckStanding) && y >= 1916 && y != 1922 {
			const img = "Standing Liberty"
			for _, m := range []struct {
				key  domain.OptionKey
				mark string
				in   window
			}{
				{domain.MintP, "", nil},
				{domain.MintD, "D", except(1916, 1921, 1923, 1925, 1930)},
				{domain.MintS, "S", except(1916, 1921, 1925)},
			} {
				if !g.on(m.key) || (m.in != nil && !m.in(y)) {
					continue
				}
				if y == 1917 {
					g.slot(y, mk(m.mark, "Type 1"), img)
					g.slot(y, mk(m.mark, "Type 2"), img)
				} else {
					g.slot(y, m.mark, img)
				}
			}
		}
	},
}

// cladProgram emits one slot per mint for each design released in a year.
func cladProgram(g *gen, names []string, satin, s, w bool) {
	for _, n := range names {
		if g.on(domain.MintP) {
			g.add(n, "P", n)
		}
		if satin && g.on(domain.MintSatin) {
			g.add(n, "P Satin", n)
		}
		if g.on(domain.MintD) {
			g.add(n, "D", n)
		}
		if satin && g.on(domain.MintSatin) {
			g.add(n, "D Satin", n)
		}
		if s && g.on(domain.MintS) {
			g.add(n, "S", n)
		}
		if w && g.on(domain.MintW) {
			g.add(n, "W", n)
		}
		if g.on(domain.MintProof) {
			g.add(n, "S Proof", n)
		}
	}
}

// Clad quarters run from the first clad Washington quarter through every
// commemorative program.
var cladQuarters = &Series{
	Name:      "Clad Quarters",
	FaceValue: face("0.25"),
	Mints: []Toggle{
		mintP(""), byDefault(mintD), mintS, mintW,
		{Key: domain.MintSatin, Label: "Satin finish", Mark: "Satin"},
		{Key: domain.MintProof, Label: "S proofs", Mark: "S Proof"},
	},
	Checkboxes: []Toggle{
		check(domain.CheckWashington, "Include eagle reverse quarters", true),
		check(domain.CheckStates, "Include State quarters", true),
		check(domain.CheckTerritories, "Include DC and territories", true),
		check(domain.CheckParks, "Include National Park quarters", true),
		check(domain.CheckWomen, "Include American Women quarters", true),
	},
	Images: slices.Concat(
		named("quarter", "Eagle Reverse", "Crossing the Delaware"),
		stateImages(),
		named("park_quarter", parkNames...),
		named("women_quarter", womenNames...),
	),
	Obverse: "obv_washington_quarter",
	Reverse: "rev_washington_quarter",
	span:    [2]int{1965, StillInProduction},
	years: func(g *gen, y int) {
		const eagle = "Eagle Reverse"
		switch {
		case y <= 1998:
			if !g.on(domain.CheckWashington) || y == 1975 {
				return
			}
			id := bicentennialLabel(y)
			if g.on(domain.MintP) {
				if y >= 1980 {
					g.add(id, "P", eagle)
				} else {
					g.add(id, "", eagle)
				}
				if y <= 1967 {
					g.add(id, "SMS", eagle)
				}
			}
			if y <= 1967 {
				return
			}
			if g.on(domain.MintD) {
				g.add(id, "D", eagle)
			}
			if g.on(domain.MintProof) {
				g.add(id, "S Proof", eagle)
			}
		case y <= 2009:
			if !g.on(domain.CheckStates) {
				return
			}
			cladProgram(g, releasedIn(stateNames, 1999, y), y >= 2005, false, false)
			if y == 2009 && g.on(domain.CheckTerritories) {
				cladProgram(g, territoryNames, true, false, false)
			}
		case y <= 2021:
			if !g.on(domain.CheckParks) {
				return
			}
			cladProgram(g, releasedIn(parkNames, 2010, y), y == 2010, y >= 2012, y == 2019 || y == 2020)
			if y == 2021 {
				cladProgram(g, []string{"Crossing the Delaware"}, false, false, false)
			}
		default:
			if g.on(domain.CheckWomen) {
				cladProgram(g, releasedIn(womenNames, 2022, y), false, true, false)
			}
		}
	},
}

var twentyCents = &Series{
	Name:      "Twenty Cents",
	StartYear: 1875,
	StopYear:  1878,
	FaceValue: face("0.20"),
	Obverse:   "obv_twenty_cent",
	Reverse:   "rev_twenty_cent",
	segments: []segment{{
		start: 1875, stop: 1878,
		expand: func(y int, _ *Toggle) []slotName {
			switch y {
			case 1875:
				return []slotName{variety("", ""), variety("", "S"), variety("", "CC")}
			case 1876:
				return []slotName{variety("", ""), variety("", "CC")}
			}
			return []slotName{variety("", " Proof")}
		},
	}},
}
