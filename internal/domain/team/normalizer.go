package team

import "strings"

// aliases maps legacy reference-site codes to the canonical provider codes.
// Salary workbooks scraped from basketball-reference carry the left column.
var aliases = map[string]string{
	"BRK": "BKN",
	"CHO": "CHA",
	"PHO": "PHX",
}

// Normalizer resolves between full team names and canonical three-letter
// abbreviations. Lookups never fail: unmapped keys resolve to Unknown so a
// single bad row cannot abort a pipeline run.
type Normalizer struct {
	byAbbr map[string]Franchise
	byName map[string]Franchise
}

func NewNormalizer() *Normalizer {
	n := &Normalizer{
		byAbbr: make(map[string]Franchise, len(Franchises)),
		byName: make(map[string]Franchise, len(Franchises)),
	}
	for _, f := range Franchises {
		n.byAbbr[f.Abbreviation] = f
		n.byName[strings.ToUpper(f.Name)] = f
	}
	return n
}

// Abbreviation returns the canonical code for a full team name, or Unknown.
func (n *Normalizer) Abbreviation(name string) string {
	if f, ok := n.byName[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return f.Abbreviation
	}
	return Unknown
}

// Name returns the full team name for an abbreviation, accepting legacy
// alias codes, or Unknown.
func (n *Normalizer) Name(abbr string) string {
	if f, ok := n.lookupAbbr(abbr); ok {
		return f.Name
	}
	return Unknown
}

// Canonical maps any accepted abbreviation, alias included, to the canonical
// provider code. Unmapped input resolves to Unknown.
func (n *Normalizer) Canonical(abbr string) string {
	if f, ok := n.lookupAbbr(abbr); ok {
		return f.Abbreviation
	}
	return Unknown
}

// Franchise resolves an abbreviation or alias to the full franchise record.
func (n *Normalizer) Franchise(abbr string) (Franchise, bool) {
	return n.lookupAbbr(abbr)
}

// IsFranchise reports whether abbr names one of the 30 league teams.
func (n *Normalizer) IsFranchise(abbr string) bool {
	_, ok := n.lookupAbbr(abbr)
	return ok
}

func (n *Normalizer) lookupAbbr(abbr string) (Franchise, bool) {
	key := strings.ToUpper(strings.TrimSpace(abbr))
	if canon, ok := aliases[key]; ok {
		key = canon
	}
	f, ok := n.byAbbr[key]
	return f, ok
}
