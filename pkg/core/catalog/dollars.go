package catalog

import (
	"slices"
	"strconv"

	"github.com/wadjakorntonsri/coin-collection/pkg/core/domain"
)

var presidentNames = []string{
	"George Washington", "John Adams", "Thomas Jefferson", "James Madison",
	"James Monroe", "John Quincy Adams", "Andrew Jackson", "Martin Van Buren",
	"William Henry Harrison", "John Tyler", "James K. Polk", "Zachary Taylor",
	"Millard Fillmore", "Franklin Pierce", "James Buchanan", "Abraham Lincoln",
	"Andrew Johnson", "Ulysses S. Grant", "Rutherford B. Hayes", "James Garfield",
	"Chester Arthur", "Grover Cleveland First Term", "Benjamin Harrison", "Grover Cleveland Second Term",
	"William McKinley", "Theodore Roosevelt", "William Howard Taft", "Woodrow Wilson",
	"Warren G. Harding", "Calvin Coolidge", "Herbert Hoover", "Franklin D. Roosevelt",
	"Harry S. Truman", "Dwight D. Eisenhower", "John F. Kennedy", "Lyndon B. Johnson",
	"Richard M. Nixon", "Gerald R. Ford", "Ronald Reagan",
	"George H.W. Bush",
}

type yearGroup struct {
	year  int
	names []string
}

var firstSpouseGroups = []yearGroup{
	{2007, []string{"Martha Washington", "Abigail Adams", "Thomas Jefferson's Liberty", "Dolley Madison"}},
	{2008, []string{"Elizabeth Monroe", "Louisa Adams", "Andrew Jackson's Liberty", "Martin Van Buren's Liberty"}},
	{2009, []string{"Anna Harrison", "Letitia Tyler", "Julia Tyler", "Sarah Polk", "Margaret Taylor"}},
	{2010, []string{"Abigail Fillmore", "Jane Pierce", "James Buchanan's Liberty", "Mary Lincoln"}},
	{2011, []string{"Eliza Johnson", "Julia Grant", "Lucy Hayes", "Lucretia Garfield"}},
	{2012, []string{"Alice Paul", "Frances Cleveland First Term", "Caroline Harrison", "Frances Cleveland Second Term"}},
	{2013, []string{"Ida McKinley", "Edith Roosevelt", "Helen Taft", "Ellen Wilson", "Edith Wilson"}},
	{2014, []string{"Florence Harding", "Grace Coolidge", "Lou Hoover", "Eleanor Roosevelt"}},
	{2015, []string{"Bess Truman", "Mamie Eisenhower", "Jacqueline Kennedy", "Lady Bird Johnson"}},
	{2016, []string{"Pat Nixon", "Betty Ford", "Nancy Reagan"}},
	{2020, []string{"Barbara Bush"}},
}

var nativeAmericanDesigns = []string{
	"Three Sisters", "Great Tree of Peace", "Wampanoag Treaty", "Trade Routes",
	"Delaware Treaty", "Native Hospitality", "Mohawk Ironworkers", "Code Talkers",
	"Sequoyah", "Jim Thorpe", "American Indians in Space", "Elizabeth Peratrovich",
	"Military Service", "Ely S. Parker", "Maria Tallchief", "Indian Citizenship Act",
	"Mary Golda Ross",
}

func groupedIssues(groups []yearGroup, mint string) ([]issue, []string) {
	var issues []issue
	var names []string
	for _, g := range groups {
		for _, n := range g.names {
			issues = append(issues, issue{id: n, year: g.year, mint: mint, image: len(names)})
			names = append(names, n)
		}
	}
	return issues, names
}

func eisenhowerSegment() segment {
	return segment{
		start: 1971, stop: 1978, image: domain.NoImage,
		mints: map[domain.OptionKey]window{
			domain.MintP: nil,
			domain.MintD: nil,
			domain.MintS: nil,
		},
		skip:  bicentennialSkip,
		label: bicentennialLabel,
	}
}

var eisenhowerDollars = &Series{
	Name:      "Eisenhower Dollars",
	StartYear: 1971,
	StopYear:  1978,
	FaceValue: face("1"),
	Mints:     []Toggle{mintP(""), mintD},
	Obverse:   "obv_eisenhower_dollar",
	Reverse:   "rev_eisenhower_dollar",
	segments:  []segment{eisenhowerSegment()},
}

func sbaSegment() segment {
	return segment{
		start: 1979, stop: 1999, image: domain.NoImage,
		skip: skipYears(yearsBetween(1982, 1998)...),
		mints: map[domain.OptionKey]window{
			domain.MintP: nil,
			domain.MintD: nil,
			domain.MintS: except(1999),
		},
		expand: pMarkSince(1979),
	}
}

var susanBAnthonyDollars = &Series{
	Name:      "Susan B. Anthony Dollars",
	StartYear: 1979,
	StopYear:  1999,
	FaceValue: face("1"),
	Mints:     []Toggle{mintP("P"), mintD, mintS},
	Obverse:   "obv_sba_dollar",
	Reverse:   "rev_sba_dollar",
	segments:  []segment{sbaSegment()},
}

func nativeAmericanImages() []ImageEntry {
	return append(named("native_dollar", "Sacagawea"), named("native_dollar", nativeAmericanDesigns...)...)
}

func nativeAmericanSegment(base int) segment {
	return segment{
		start: 2000, stop: StillInProduction,
		mints: map[domain.OptionKey]window{
			domain.MintP: nil,
			domain.MintD: nil,
		},
		imageFor: func(y int) int {
			if y < 2009 {
				return base
			}
			return base + 1 + y - 2009
		},
		expand: pMarkSince(2000),
	}
}

var nativeAmericanDollars = &Series{
	Name:          "Native American Dollars",
	StartYear:     2000,
	StopYear:      StillInProduction,
	EditableDates: true,
	FaceValue:     face("1"),
	Mints:         []Toggle{mintP("P"), mintD},
	Images:        nativeAmericanImages(),
	Obverse:       "obv_sacagawea_dollar",
	Reverse:       "native_dollar_sacagawea",
	segments:      []segment{nativeAmericanSegment(0)},
}

// presidentYear returns the release year of the i-th presidential dollar.
func presidentYear(i int) int {
	if i == len(presidentNames)-1 {
		return 2020
	}
	return 2007 + i/4
}

var presidentialDollars = func() *Series {
	issues := make([]issue, len(presidentNames))
	for i, n := range presidentNames {
		issues[i] = issue{id: n, year: presidentYear(i), image: i}
	}
	return &Series{
		Name:      "Presidential Dollars",
		FaceValue: face("1"),
		Mints:     []Toggle{mintP("P"), mintD},
		Images:    named("presidential_dollar", presidentNames...),
		Obverse:   "obv_presidential_dollar",
		Reverse:   "rev_presidential_dollar",
		issues:    issues,
	}
}()

var firstSpouseGoldCoins = func() *Series {
	issues, names := groupedIssues(firstSpouseGroups, "W")
	return &Series{
		Name:      "First Spouse Gold Coins",
		FaceValue: face("10"),
		Images:    named("first_spouse", names...),
		Obverse:   "first_spouse_martha_washington",
		Reverse:   "rev_first_spouse",
		issues:    issues,
	}
}()

var innovationNames = append([]string{"Introductory Coin"}, stateNames[:28]...)

// innovationYear returns the release year of the i-th innovation dollar.
func innovationYear(i int) int {
	if i == 0 {
		return 2018
	}
	return 2019 + (i-1)/4
}

var americanInnovationDollars = func() *Series {
	names := innovationNames
	issues := make([]issue, len(names))
	for i, n := range names {
		issues[i] = issue{id: n, year: innovationYear(i), image: i}
	}
	return &Series{
		Name:      "American Innovation Dollars",
		FaceValue: face("1"),
		Mints: []Toggle{
			mintP("P"), mintD,
			{Key: domain.MintProof, Label: "S proofs", Mark: "S Proof"},
			{Key: domain.MintReverseProof, Label: "Reverse proofs", Mark: "S Reverse Proof"},
		},
		Images:    named("innovation_dollar", names...),
		Obverse:   "obv_innovation_dollar",
		Reverse:   "innovation_dollar_introductory_coin",
		issues:    issues,
	}
}()

func morganSegment() segment {
	return segment{
		start: 1878, stop: 1921, image: domain.NoImage,
		skip: skipYears(yearsBetween(1905, 1920)...),
		mints: map[domain.OptionKey]window{
			domain.MintP:  except(1895),
			domain.MintD:  only(1921),
			domain.MintO:  except(1878, 1921),
			domain.MintCC: all(until(1893), except(1886, 1887, 1888)),
			domain.MintS:  nil,
		},
		expand: func(y int, m *Toggle) []slotName {
			if y == 1878 && m != nil && m.Key == domain.MintP {
				return []slotName{variety("1878 8 Feathers", ""), variety("1878 7 Feathers", "")}
			}
			return nil
		},
	}
}

var morganDollars = &Series{
	Name:      "Morgan Dollars",
	StartYear: 1878,
	StopYear:  1921,
	FaceValue: face("1"),
	Mints:     []Toggle{mintP(""), mintD, mintO, mintCC, mintS},
	Obverse:   "obv_morgan_dollar",
	Reverse:   "rev_morgan_dollar",
	segments:  []segment{morganSegment()},
}

func peaceSegment() segment {
	return segment{
		start: 1921, stop: 1935, image: domain.NoImage,
		skip: skipYears(yearsBetween(1929, 1933)...),
		mints: map[domain.OptionKey]window{
			domain.MintP: nil,
			domain.MintD: only(1922, 1923, 1926, 1927, 1934),
			domain.MintS: except(1921),
		},
	}
}

var peaceDollars = &Series{
	Name:      "Peace Dollars",
	StartYear: 1921,
	StopYear:  1935,
	FaceValue: face("1"),
	Mints:     []Toggle{mintP(""), mintD, mintS},
	Obverse:   "obv_peace_dollar",
	Reverse:   "rev_peace_dollar",
	segments:  []segment{peaceSegment()},
}

func eagleProofMint(y int) string {
	switch {
	case y <= 1992:
		return "S"
	case y <= 2000:
		return "P"
	default:
		return "W"
	}
}

var americanEagles = &Series{
	Name:          "American Eagle Silver Dollars",
	StartYear:     1986,
	StopYear:      StillInProduction,
	EditableDates: true,
	FaceValue:     face("1"),
	Checkboxes: []Toggle{
		check(domain.CheckProofs, "Include proofs", false),
		check(domain.CheckBurnished, "Include burnished", false),
	},
	Images:  named("silver_eagle", "Heraldic Eagle", "Eagle Landing"),
	Obverse: "obv_silver_eagle",
	Reverse: "silver_eagle_heraldic_eagle",
	segments: []segment{{
		start: 1986, stop: StillInProduction,
		imageFor: func(y int) int {
			if y < 2021 {
				return 0
			}
			return 1
		},
		expand: func(y int, _ *Toggle) []slotName {
			if y == 2021 {
				return []slotName{varietyImg("2021 Type 1", "", 0), varietyImg("2021 Type 2", "", 1)}
			}
			return nil
		},
		extra: func(y int, p domain.SlotParameters) []slotName {
			var out []slotName
			if p.Enabled(domain.CheckProofs) && y != 2009 {
				out = append(out, variety("", " "+eagleProofMint(y)+" Proof"))
			}
			if p.Enabled(domain.CheckBurnished) && either(between(2006, 2008), between(2011, 2021))(y) {
				out = append(out, variety("", " W Burnished"))
			}
			return out
		},
	}},
}

// eisenhowerYear lists the Eisenhower dollars of a year. proof selects the
// toggle the silver and proof strikes are listed under.
func eisenhowerYear(g *gen, y int, proof domain.OptionKey) {
	const img = "Eisenhower"
	switch {
	case y <= 1974:
		if g.on(domain.MintP) {
			g.slot(y, "", img)
		}
		if g.on(domain.MintD) {
			g.slot(y, "D", img)
		}
		if g.on(proof) {
			g.slot(y, "S 40% Silver", img)
			g.slot(y, "S 40% Silver Proof", img)
			if y >= 1973 {
				g.slot(y, "S Proof", img)
			}
		}
	case y == 1976:
		const id = "1776-1976"
		if g.on(domain.MintP) {
			g.add(id, "Type 1", img)
			g.add(id, "Type 2", img)
		}
		if g.on(domain.MintD) {
			g.add(id, "D Type 1", img)
			g.add(id, "D Type 2", img)
		}
		if g.on(proof) {
			g.add(id, "S Proof Type 1", img)
			g.add(id, "S Proof Type 2", img)
			g.add(id, "S 40% Silver", img)
			g.add(id, "S 40% Silver Proof", img)
		}
	case y >= 1977:
		if g.on(domain.MintP) {
			g.slot(y, "", img)
		}
		if g.on(domain.MintD) {
			g.slot(y, "D", img)
		}
		if g.on(proof) {
			g.slot(y, "S Proof", img)
		}
	}
}

var smallDollars = &Series{
	Name:          "Small Dollars",
	StartYear:     1971,
	StopYear:      StillInProduction,
	EditableDates: true,
	FaceValue:     face("1"),
	Mints: []Toggle{
		mintP(""), byDefault(mintD), mintS,
		{Key: domain.MintProof, Label: "S proofs", Mark: "S Proof"},
		{Key: domain.MintReverseProof, Label: "Reverse proofs", Mark: "S Reverse Proof"},
	},
	Checkboxes: []Toggle{
		check(domain.CheckEisenhower, "Include Eisenhower dollars", true),
		check(domain.CheckSBA, "Include Susan B. Anthony dollars", true),
		check(domain.CheckSacagawea, "Include Sacagawea and Native American dollars", true),
		check(domain.CheckPresidential, "Include Presidential dollars", true),
		check(domain.CheckInnovation, "Include American Innovation dollars", true),
	},
	Images: slices.Concat(
		named("small_dollar", "Eisenhower", "Susan B. Anthony"),
		nativeAmericanImages(),
		named("presidential_dollar", presidentNames...),
		named("innovation_dollar", innovationNames...),
	),
	Obverse: "obv_sba_dollar",
	Reverse: "rev_sba_dollar",
	years: func(g *gen, y int) {
		if g.on(domain.CheckEisenhower) && between(1971, 1978)(y) && y != 1975 {
			eisenhowerYear(g, y, domain.MintProof)
		}
		if g.on(domain.CheckSBA) && (between(1979, 1981)(y) || y == 1999) {
			const img = "Susan B. Anthony"
			if g.on(domain.MintP) {
				g.slot(y, "P", img)
			}
			if g.on(domain.MintD) {
				g.slot(y, "D", img)
			}
			if g.on(domain.MintS) && y != 1999 {
				g.slot(y, "S", img)
			}
			if g.on(domain.MintProof) {
				g.slot(y, "S Proof", img)
			}
		}
		if g.on(domain.CheckSacagawea) && y >= 2000 {
			img := "Sacagawea"
			if y >= 2009 {
				img = nativeAmericanDesigns[y-2009]
			}
			if g.on(domain.MintP) {
				g.slot(y, "P", img)
			}
			if g.on(domain.MintD) {
				g.slot(y, "D", img)
			}
			if g.on(domain.MintProof) {
				g.slot(y, "S Proof", img)
			}
		}
		if g.on(domain.CheckPresidential) {
			for i, n := range presidentNames {
				if presidentYear(i) != y {
					continue
				}
				id := mk(strconv.Itoa(y), n)
				if g.on(domain.MintP) {
					g.add(id, "P", n)
				}
				if g.on(domain.MintD) {
					g.add(id, "D", n)
				}
				if g.on(domain.MintProof) && y != 2020 {
					g.add(id, "S Proof", n)
				}
			}
		}
		if g.on(domain.CheckInnovation) {
			for i, n := range innovationNames {
				if innovationYear(i) != y {
					continue
				}
				id := mk(strconv.Itoa(y), n)
				if g.on(domain.MintP) {
					g.add(id, "P", n)
				}
				if g.on(domain.MintD) {
					g.add(id, "D", n)
				}
				if g.on(domain.MintProof) {
					g.add(id, "S Proof", n)
				}
				if g.on(domain.MintReverseProof) {
					g.add(id, "S Reverse Proof", n)
				}
			}
		}
	},
}

var earlyDollars = &Series{
	Name:          "Early Dollars",
	StartYear:     1794,
	StopYear:      1885,
	EditableDates: true,
	FaceValue:     face("1"),
	Mints: []Toggle{
		mintP(""), byDefault(mintO), byDefault(mintS), byDefault(mintCC),
	},
	Checkboxes: []Toggle{
		check(domain.CheckBust, "Include bust dollars", false),
		check(domain.CheckSeated, "Include Gobrecht and Seated Liberty dollars", false),
		check(domain.CheckTrade, "Include Trade dollars", true),
	},
	Images:  named("dollar", "Flowing Hair", "Draped Bust", "Gobrecht", "Seated Liberty", "Trade"),
	Obverse: "obv_seated_dollar",
	Reverse: "rev_seated_dollar",
	years: func(g *gen, y int) {
		// The bust designs were struck at Philadelphia only.
		if g.on(domain.CheckBust) && g.on(domain.MintP) {
			if y == 1794 || y == 1795 {
				g.slot(y, "Flowing Hair", "Flowing Hair")
			}
			if between(1795, 1798)(y) {
				g.slot(y, "Draped Bust", "Draped Bust")
			}
			if between(1798, 1803)(y) {
				g.slot(y, "Draped Bust Heraldic Eagle", "Draped Bust")
			}
			if y == 1804 {
				g.slot(y, "Draped Bust Rare", "Draped Bust")
			}
		}
		if g.on(domain.CheckSeated) {
			const img = "Seated Liberty"
			if g.on(domain.MintP) {
				switch {
				case y == 1836:
					g.slot(y, "Gobrecht", "Gobrecht")
				case y == 1838 || y == 1839:
					g.slot(y, "Gobrecht Proof", "Gobrecht")
				case between(1840, 1865)(y) && y != 1858:
					g.slot(y, "", img)
				case between(1866, 1873)(y):
					g.slot(y, "Motto", img)
				}
			}
			if g.on(domain.MintO) && only(1846, 1850, 1851, 1859, 1860)(y) {
				g.slot(y, "O", img)
			}
			if g.on(domain.MintS) && only(1859, 1870, 1872, 1873)(y) {
				g.slot(y, "S", img)
			}
			if g.on(domain.MintCC) && between(1870, 1873)(y) {
				g.slot(y, "CC", img)
			}
		}
		if g.on(domain.CheckTrade) {
			const img = "Trade"
			if g.on(domain.MintP) {
				if between(1873, 1877)(y) {
					g.slot(y, "Trade", img)
				}
				if between(1879, 1885)(y) {
					g.slot(y, "Trade Proof", img)
				}
			}
			if g.on(domain.MintS) && between(1873, 1878)(y) {
				g.slot(y, "S Trade", img)
			}
			if g.on(domain.MintCC) && between(1873, 1878)(y) {
				g.slot(y, "CC Trade", img)
			}
		}
	},
}

var cartwheels = &Series{
	Name:          "Cartwheels",
	StartYear:     1878,
	StopYear:      StillInProduction,
	EditableDates: true,
	FaceValue:     face("1"),
	Mints: []Toggle{
		mintP(""), byDefault(mintD), byDefault(mintO), byDefault(mintCC), byDefault(mintS),
	},
	Checkboxes: []Toggle{
		check(domain.CheckOlderDesigns, "Show older designs", false),
		check(domain.CheckMorgan, "Include Morgan dollars", true),
		check(domain.CheckPeace, "Include Peace dollars", true),
		check(domain.CheckEisenhower, "Include Eisenhower dollars", true),
		check(domain.CheckSilverEagles, "Include American Silver Eagles", true),
	},
	Images: named("cartwheel", "Flowing Hair", "Draped Bust", "Seated Liberty", "Trade",
		"Morgan", "Peace", "Eisenhower", "Silver Eagle"),
	Obverse: "obv_morgan_dollar",
	Reverse: "rev_peace_dollar",
	prelude: func(g *gen) {
		if !g.on(domain.CheckOlderDesigns) {
			return
		}
		g.placeholders("Flowing Hair", "Draped Bust", "Seated Liberty", "Trade")
		for _, d := range []struct {
			key  domain.OptionKey
			name string
		}{
			{domain.CheckMorgan, "Morgan"},
			{domain.CheckPeace, "Peace"},
			{domain.CheckEisenhower, "Eisenhower"},
		} {
			if !g.on(d.key) {
				g.placeholders(d.name)
			}
		}
	},
	years: func(g *gen, y int) {
		if between(1905, 1920)(y) || between(1929, 1933)(y) {
			return
		}
		if g.on(domain.CheckMorgan) && between(1878, 1921)(y) {
			const img = "Morgan"
			if g.on(domain.MintP) {
				switch {
				case y == 1878:
					g.slot(y, "8 Feathers", img)
					g.slot(y, "7 Feathers", img)
				case y != 1895:
					g.slot(y, "", img)
				}
			}
			if g.on(domain.MintD) && y == 1921 {
				g.slot(y, "D", img)
			}
			if g.on(domain.MintO) && except(1878, 1921)(y) {
				g.slot(y, "O", img)
			}
			if g.on(domain.MintCC) && y <= 1893 && except(1886, 1887, 1888)(y) {
				g.slot(y, "CC", img)
			}
			if g.on(domain.MintS) {
				g.slot(y, "S", img)
			}
		}
		if g.on(domain.CheckPeace) && between(1921, 1935)(y) {
			// Morgan and Peace dollars were both struck in 1921.
			suffix := ""
			if y == 1921 {
				suffix = "Peace"
			}
			if g.on(domain.MintP) {
				g.slot(y, suffix, "Peace")
			}
			if g.on(domain.MintD) && except(1921, 1924, 1925, 1928, 1935)(y) {
				g.slot(y, "D", "Peace")
			}
			if g.on(domain.MintS) && y != 1921 {
				g.slot(y, "S", "Peace")
			}
		}
		if g.on(domain.CheckEisenhower) && between(1971, 1978)(y) && y != 1975 {
			eisenhowerYear(g, y, domain.MintS)
		}
		if g.on(domain.CheckSilverEagles) && y >= 1986 {
			g.slot(y, "", "Silver Eagle")
			if only(2006, 2007, 2008, 2011)(y) {
				g.slot(y, "W Burnished", "Silver Eagle")
			}
		}
	},
}
