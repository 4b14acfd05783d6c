package entities

// Kind is the engine-level classification of an entity
type Kind int

// Entity kinds
const (
	KindUnknown Kind = iota
	KindUnit
	KindSpell
	KindTitan
	KindSpellcaster
)

// String returns a readable kind name
func (k Kind) String() string {
	switch k {
	case KindUnit:
		return "unit"
	case KindSpell:
		return "spell"
	case KindTitan:
		return "titan"
	case KindSpellcaster:
		return "spellcaster"
	default:
		return "unknown"
	}
}

// Classify returns the single kind matching e. Malformed entities
// (nil, unknown category, a spellcaster without an ID) are KindUnknown.
func Classify(e Entity) Kind {
	if sc, ok := AsSpellcaster(e); ok && sc != nil {
		return KindSpellcaster
	}

	card, ok := AsCard(e)
	if !ok {
		return KindUnknown
	}

	switch card.Category {
	case CategoryCreature, CategoryBuilding:
		return KindUnit
	case CategorySpell:
		return KindSpell
	case CategoryTitan:
		return KindTitan
	default:
		return KindUnknown
	}
}

// IsUnit reports whether e is a creature or building card
func IsUnit(e Entity) bool {
	return Classify(e) == KindUnit
}

// IsSpell reports whether e is a spell card
func IsSpell(e Entity) bool {
	return Classify(e) == KindSpell
}

// IsTitan reports whether e is a titan card
func IsTitan(e Entity) bool {
	return Classify(e) == KindTitan
}

// IsSpellcaster reports whether e is a spellcaster
func IsSpellcaster(e Entity) bool {
	return Classify(e) == KindSpellcaster
}

// AsCard unwraps e into a non-nil card
func AsCard(e Entity) (*Card, bool) {
	card, ok := e.(*Card)
	if !ok || card == nil {
		return nil, false
	}
	return card, true
}

// AsSpellcaster unwraps e into a spellcaster carrying an ID
func AsSpellcaster(e Entity) (*Spellcaster, bool) {
	sc, ok := e.(*Spellcaster)
	if !ok || sc == nil || sc.GetID() == "" {
		return nil, false
	}
	return sc, true
}
