package catalog

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/wadjakorntonsri/coin-collection/pkg/core/domain"
)

const inheritImage = -2

// slotName is one variety emitted in place of the default slot for a year.
type slotName struct {
	id    string
	mint  string
	image int
}

func variety(id, mint string) slotName {
	return slotName{id: id, mint: mint, image: inheritImage}
}

func varietyImg(id, mint string, image int) slotName {
	return slotName{id: id, mint: mint, image: image}
}

// segment is one design of a year-based series.
type segment struct {
	name     string
	start    int
	stop     int
	requires domain.OptionKey
	image    int
	imageFor func(year int) int

	// mints lists the mints that struck this design; a missing key means never.
	mints  map[domain.OptionKey]window
	skip   func(year int, p domain.SlotParameters) bool
	label  func(year int) string
	expand func(year int, mint *Toggle) []slotName
	extra  func(year int, p domain.SlotParameters) []slotName
}

func (seg *segment) imageOf(year int) int {
	if seg.imageFor != nil {
		return seg.imageFor(year)
	}
	return seg.image
}

// issue is one entry of a series that is not year-based.
type issue struct {
	id       string
	year     int
	mint     string
	requires domain.OptionKey
	image    int
}

// NormalizeParameters clamps the year range to the series and validates it.
func (s *Series) NormalizeParameters(params domain.SlotParameters) (domain.SlotParameters, error) {
	p := params.Clone()
	if !s.YearBased() {
		p.StartYear, p.StopYear = 0, 0
		return p, nil
	}
	if p.StartYear == 0 || p.StartYear < s.StartYear {
		p.StartYear = s.StartYear
	}
	if p.StopYear == 0 || p.StopYear > s.StopYear {
		p.StopYear = s.StopYear
	}
	if p.StartYear > p.StopYear {
		return p, fmt.Errorf("%w: start year %d is after stop year %d", domain.ErrInvalidParameters, p.StartYear, p.StopYear)
	}
	return p, nil
}

// Populate expands parameters into the ordered slot list of a series.
// Slots come out in chronological order, then in the series' mint order.
func Populate(s *Series, params domain.SlotParameters) ([]domain.CoinSlot, error) {
	p, err := s.NormalizeParameters(params)
	if err != nil {
		return nil, err
	}
	from, to := p.StartYear, p.StopYear
	if !s.YearBased() {
		from, to = s.span[0], s.span[1]
	}
	return s.generate(p, from, to, true), nil
}

// PopulateYear generates the slots a collection gains when it is extended to
// year. Placeholders for designs outside the year range are not repeated.
func PopulateYear(s *Series, params domain.SlotParameters, year int) ([]domain.CoinSlot, error) {
	if !s.YearBased() || year < s.StartYear || year > s.StopYear {
		return nil, fmt.Errorf("%w: %s has no year %d", domain.ErrInvalidParameters, s.Name, year)
	}
	p := params.Clone()
	p.StartYear, p.StopYear = year, year
	p, err := s.NormalizeParameters(p)
	if err != nil {
		return nil, err
	}
	return s.generate(p, year, year, false), nil
}

func (s *Series) generate(p domain.SlotParameters, from, to int, prelude bool) []domain.CoinSlot {
	b := &builder{}
	switch {
	case s.years != nil:
		g := &gen{s: s, p: p, b: b}
		if prelude && s.prelude != nil {
			s.prelude(g)
		}
		for y := from; y <= to; y++ {
			s.years(g, y)
		}
	case s.YearBased():
		for y := from; y <= to; y++ {
			for i := range s.segments {
				s.populateSegment(b, &s.segments[i], p, y)
			}
		}
	default:
		s.populateIssues(b, p)
	}

	for _, slot := range b.slots {
		if slot.ImageID < domain.NoImage || slot.ImageID >= len(s.Images) {
			panic(fmt.Sprintf("catalog: %s generated %q with image id %d", s.Name, slot.DisplayName(), slot.ImageID))
		}
	}
	return b.slots
}

func (s *Series) populateSegment(b *builder, seg *segment, p domain.SlotParameters, y int) {
	if seg.requires != "" && !p.Enabled(seg.requires) {
		return
	}
	if y < seg.start || y > seg.stop || (seg.skip != nil && seg.skip(y, p)) {
		return
	}
	id := strconv.Itoa(y)
	if seg.label != nil {
		id = seg.label(y)
	}
	if seg.name != "" && s.shared(y) {
		id += " " + seg.name
	}
	img := seg.imageOf(y)

	if len(s.Mints) == 0 || !p.ShowMintMarks {
		b.emit(seg, y, id, nil, img)
	} else {
		for i := range s.Mints {
			m := &s.Mints[i]
			if !p.Enabled(m.Key) {
				continue
			}
			w, ok := seg.mints[m.Key]
			if !ok || (w != nil && !w(y)) {
				continue
			}
			b.emit(seg, y, id, m, img)
		}
	}
	if seg.extra != nil {
		for _, n := range seg.extra(y, p) {
			b.addName(n, id, img)
		}
	}
}

func (s *Series) populateIssues(b *builder, p domain.SlotParameters) {
	for _, is := range s.issues {
		if is.requires != "" && !p.Enabled(is.requires) {
			continue
		}
		if len(s.Mints) == 0 || !p.ShowMintMarks {
			b.add(is.id, is.mint, is.image)
			continue
		}
		for i := range s.Mints {
			m := &s.Mints[i]
			if !p.Enabled(m.Key) {
				continue
			}
			if w := s.issueMints[m.Key]; w != nil && !w(is.year) {
				continue
			}
			b.add(is.id, m.Mark, is.image)
		}
	}
}

// shared reports whether more than one design of the series was struck in a year.
func (s *Series) shared(year int) bool {
	n := 0
	for i := range s.segments {
		if year >= s.segments[i].start && year <= s.segments[i].stop {
			n++
		}
	}
	return n > 1
}

// yearRule writes the slots of one year for series whose varieties do not
// fit the segment tables.
type yearRule func(g *gen, year int)

type gen struct {
	s *Series
	p domain.SlotParameters
	b *builder
}

// on reports whether a toggle is switched on. While mint marks are hidden the
// mint toggles keep their defaults.
func (g *gen) on(key domain.OptionKey) bool {
	if !g.p.ShowMintMarks {
		for _, m := range g.s.Mints {
			if m.Key == key {
				return m.Default
			}
		}
	}
	return g.p.Enabled(key)
}

// add appends a slot showing the image with the given label. An empty label
// leaves the slot without an image.
func (g *gen) add(id, mint, image string) {
	img := domain.NoImage
	if image != "" && len(g.s.Images) > 0 {
		if img = g.s.ImgID(image); img == domain.NoImage {
			panic(fmt.Sprintf("catalog: %s has no image %q", g.s.Name, image))
		}
	}
	g.b.add(id, mint, img)
}

func (g *gen) slot(year int, mint, image string) {
	g.add(strconv.Itoa(year), mint, image)
}

// placeholders adds one slot per design name, standing in for designs the
// collection does not list by year.
func (g *gen) placeholders(names ...string) {
	for _, n := range names {
		g.add(n, "", n)
	}
}

// mk joins the non-empty parts of a slot label.
func mk(parts ...string) string {
	return strings.Join(slices.DeleteFunc(parts, func(s string) bool { return s == "" }), " ")
}

type builder struct {
	slots []domain.CoinSlot
}

func (b *builder) add(id, mint string, image int) {
	b.slots = append(b.slots, domain.NewCoinSlot(id, mint, len(b.slots), image))
}

func (b *builder) addName(n slotName, id string, image int) {
	if n.id != "" {
		id = n.id
	}
	if n.image != inheritImage {
		image = n.image
	}
	b.add(id, n.mint, image)
}

func (b *builder) emit(seg *segment, year int, id string, m *Toggle, image int) {
	if seg.expand != nil {
		if names := seg.expand(year, m); names != nil {
			for _, n := range names {
				b.addName(n, id, image)
			}
			return
		}
	}
	mark := ""
	if m != nil {
		mark = m.Mark
	}
	b.add(id, mark, image)
}

// Shared rules.

func skipYears(years ...int) func(int, domain.SlotParameters) bool {
	in := only(years...)
	return func(y int, _ domain.SlotParameters) bool { return in(y) }
}

func skipBoth(a, b func(int, domain.SlotParameters) bool) func(int, domain.SlotParameters) bool {
	return func(y int, p domain.SlotParameters) bool { return a(y, p) || b(y, p) }
}

// Bicentennial coins are dated 1776-1976 and were struck in 1975 and 1976.
// They occupy the 1975 position, or 1976 when the collection starts there.
func bicentennialLabel(y int) string {
	if y == 1975 || y == 1976 {
		return "1776-1976"
	}
	return strconv.Itoa(y)
}

func bicentennialSkip(y int, p domain.SlotParameters) bool {
	return y == 1976 && p.StartYear != 1976
}

// markedVariety writes a variety name after the mint mark: " Type 1", " D Type 1".
func markedVariety(m *Toggle, name string) string {
	if m == nil || m.Mark == "" {
		return " " + name
	}
	return " " + m.Mark + " " + name
}

// proofs adds a proof slot when proofs are enabled: unmarked in pYears, S in sYears.
func proofs(pYears, sYears window) func(int, domain.SlotParameters) []slotName {
	return func(y int, p domain.SlotParameters) []slotName {
		if !p.Enabled(domain.CheckProofs) {
			return nil
		}
		switch {
		case pYears != nil && pYears(y):
			return []slotName{variety("", " Proof")}
		case sYears != nil && sYears(y):
			return []slotName{variety("", " S Proof")}
		}
		return nil
	}
}

// pMarkSince marks Philadelphia slots with "P" from a given year on.
func pMarkSince(from int) func(int, *Toggle) []slotName {
	return func(y int, m *Toggle) []slotName {
		if m != nil && m.Key == domain.MintP && y >= from {
			return []slotName{variety("", "P")}
		}
		return nil
	}
}
