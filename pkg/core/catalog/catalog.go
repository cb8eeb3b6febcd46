package catalog

import (
	"fmt"
	"strings"

	"github.com/wadjakorntonsri/coin-collection/pkg/core/domain"
)

// series is the catalog in index order. The index of a series is persisted in
// collection metadata and exported documents, so entries are only ever appended.
var series = []*Series{
	lincolnCents,              // 0
	jeffersonNickels,          // 1
	basicDimes,                // 2
	basicQuarters,             // 3
	stateQuarters,             // 4
	nationalParkQuarters,      // 5
	basicHalfDollars,          // 6
	eisenhowerDollars,         // 7
	susanBAnthonyDollars,      // 8
	nativeAmericanDollars,     // 9
	presidentialDollars,       // 10
	indianHeadCents,           // 11
	libertyHeadNickels,        // 12
	buffaloNickels,            // 13
	barberDimes,               // 14
	mercuryDimes,              // 15
	barberQuarters,            // 16
	standingLibertyQuarters,   // 17
	barberHalfDollars,         // 18
	walkingLibertyHalfDollars, // 19
	franklinHalfDollars,       // 20
	morganDollars,             // 21
	peaceDollars,              // 22
	americanEagles,            // 23
	firstSpouseGoldCoins,      // 24
	americanInnovationDollars, // 25
	americanWomenQuarters,     // 26
	smallCents,                // 27
	largeCents,                // 28
	allNickels,                // 29
	halfDimes,                 // 30
	silverDimes,               // 31
	earlyDimes,                // 32
	cladQuarters,              // 33
	silverQuarters,            // 34
	earlyQuarters,             // 35
	smallDollars,              // 36
	silverHalfDollars,         // 37
	threeCents,                // 38
	twentyCents,               // 39
	twoCents,                  // 40
	westPointCoins,            // 41
	earlyDollars,              // 42
	earlyHalfDollars,          // 43
	cartwheels,                // 44
	halfCents,                 // 45
	coinSets,                  // 46
	kennedyHalfDollars,        // 47
	rooseveltDimes,            // 48
	washingtonQuarters,        // 49
}

// Picker order within each display group.
var groups = map[DisplayGroup][]*Series{
	GroupBasic: {
		lincolnCents, jeffersonNickels, basicDimes, basicQuarters, americanWomenQuarters,
		nationalParkQuarters, stateQuarters, basicHalfDollars, americanInnovationDollars,
		firstSpouseGoldCoins, nativeAmericanDollars, presidentialDollars,
	},
	GroupAdvanced: {
		smallCents, largeCents, allNickels, halfDimes, rooseveltDimes, silverDimes, earlyDimes,
		cladQuarters, washingtonQuarters, silverQuarters, earlyQuarters, kennedyHalfDollars,
		silverHalfDollars, earlyHalfDollars, cartwheels, earlyDollars, smallDollars,
	},
	GroupMore: {
		americanEagles, barberDimes, barberHalfDollars, barberQuarters, buffaloNickels,
		coinSets, eisenhowerDollars, franklinHalfDollars, halfCents, indianHeadCents,
		libertyHeadNickels, mercuryDimes, morganDollars, peaceDollars, standingLibertyQuarters,
		susanBAnthonyDollars, threeCents, twentyCents, twoCents, walkingLibertyHalfDollars,
		westPointCoins,
	},
}

func init() {
	names := make(map[string]bool, len(series))
	for i, s := range series {
		s.Index = i
		key := strings.ToLower(s.Name)
		if names[key] {
			panic(fmt.Sprintf("catalog: duplicate series name %q", s.Name))
		}
		names[key] = true
		switch {
		case s.YearBased() && len(s.segments) == 0 && s.years == nil:
			panic(fmt.Sprintf("catalog: %s has a year range but no designs", s.Name))
		case !s.YearBased() && len(s.issues) == 0 && (s.years == nil || s.span[0] == 0):
			panic(fmt.Sprintf("catalog: %s must have either a year range or issues", s.Name))
		case len(s.segments) > 0 && (s.years != nil || len(s.issues) > 0):
			panic(fmt.Sprintf("catalog: %s mixes segments with other rules", s.Name))
		}
		if len(s.Images) == 0 {
			for j := range s.segments {
				s.segments[j].image = domain.NoImage
				s.segments[j].imageFor = nil
			}
			for j := range s.issues {
				s.issues[j].image = domain.NoImage
			}
		}
	}
	for g, members := range groups {
		for _, s := range members {
			s.Group = g
		}
	}
}

// All returns every series in index order.
func All() []*Series {
	out := make([]*Series, len(series))
	copy(out, series)
	return out
}

// Len is the number of series in the catalog.
func Len() int {
	return len(series)
}

// ByIndex looks up a series by its persisted catalog index.
func ByIndex(i int) (*Series, error) {
	if i < 0 || i >= len(series) {
		return nil, domain.NewUnknownSeries(i)
	}
	return series[i], nil
}

// ByName looks up a series by display name, ignoring case.
func ByName(name string) (*Series, error) {
	for _, s := range series {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSeries, name)
}

// Group returns the series of a display group in picker order.
func Group(g DisplayGroup) []*Series {
	out := make([]*Series, len(groups[g]))
	copy(out, groups[g])
	return out
}
