package value

import "fmt"

// Kind classifies a value for the structural engine.
type Kind int

const (
	PrimitiveKind Kind = iota
	TemporalKind
	PatternKind
	CallableKind
	RecordKind
	SequenceKind
	MappingKind
	CollectionKind
	CustomKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		PrimitiveKind:  "Primitive",
		TemporalKind:   "Temporal",
		PatternKind:    "Pattern",
		CallableKind:   "Callable",
		RecordKind:     "Record",
		SequenceKind:   "Sequence",
		MappingKind:    "Mapping",
		CollectionKind: "Collection",
		CustomKind:     "Custom",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Primitive":  PrimitiveKind,
		"Temporal":   TemporalKind,
		"Pattern":    PatternKind,
		"Callable":   CallableKind,
		"Record":     RecordKind,
		"Sequence":   SequenceKind,
		"Mapping":    MappingKind,
		"Collection": CollectionKind,
		"Custom":     CustomKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		PrimitiveKind,
		TemporalKind,
		PatternKind,
		CallableKind,
		RecordKind,
		SequenceKind,
		MappingKind,
		CollectionKind,
		CustomKind,
	}
}

// IsLeaf reports whether values of kind k are never recursed into.
func (k Kind) IsLeaf() bool {
	switch k {
	case PrimitiveKind, TemporalKind, PatternKind, CallableKind:
		return true
	default:
		return false
	}
}

