package engine

import (
	"fmt"

	"github.com/shesviral/viralkit/internal/catalog"
)

// Family selects which of the two parallel rule sets applies.
type Family int

const (
	Normal Family = iota
	Mistake
)

// FamilyOf returns the family of the selected style. No style means Normal.
func FamilyOf(style *catalog.Style) Family {
	if style != nil && style.IsMistake() {
		return Mistake
	}
	return Normal
}

// String returns the family name.
func (f Family) String() string {
	switch f {
	case Normal:
		return "normal"
	case Mistake:
		return "mistake"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// rules is the per-family parameter set of the eligibility table.
type rules struct {
	// pair holds the default type first and its complement second.
	pair   [2]catalog.ScriptType
	filler catalog.ScriptType
	viral  catalog.ScriptType

	// fillerReasons explains why a type cannot fill slots 2 and 4;
	// fillerFallback applies to every other non-filler type.
	fillerReasons  map[catalog.ScriptType]string
	fillerFallback string

	viralTitle string
}

var familyRules = map[Family]rules{
	Normal: {
		pair:   [2]catalog.ScriptType{catalog.TypeOther, catalog.TypeEngagement},
		filler: catalog.TypeOther,
		viral:  catalog.TypeViralPlug,
		fillerReasons: map[catalog.ScriptType]string{
			catalog.TypeEngagement: "Engagement Trigger already used",
		},
		viralTitle: "Viral Plug Required",
	},
	Mistake: {
		pair:           [2]catalog.ScriptType{catalog.TypeMistake, catalog.TypeMistakeEngagement},
		filler:         catalog.TypeMistake,
		viral:          catalog.TypeMistakeViral,
		fillerFallback: "Mistake style requires Mistake Scripts",
		viralTitle:     "Mistake Viral Plug (Mistake Style)",
	},
}

func rulesFor(f Family) rules {
	if r, ok := familyRules[f]; ok {
		return r
	}
	return familyRules[Normal]
}

// complement returns the other pair type, or "" when t is not a pair type.
func (r rules) complement(t catalog.ScriptType) catalog.ScriptType {
	switch t {
	case r.pair[0]:
		return r.pair[1]
	case r.pair[1]:
		return r.pair[0]
	default:
		return ""
	}
}

// PairTypes returns the two complementary types of a family, default first.
func PairTypes(f Family) [2]catalog.ScriptType {
	return rulesFor(f).pair
}

// FillerType returns the type required in slots 2 and 4.
func FillerType(f Family) catalog.ScriptType {
	return rulesFor(f).filler
}

// ViralType returns the type required in slot 3.
func ViralType(f Family) catalog.ScriptType {
	return rulesFor(f).viral
}
