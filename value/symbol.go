package value

// Symbol is a unique primitive. Two symbols are equal only when they are the
// same pointer, whatever their descriptions.
type Symbol struct {
	desc string
}

func NewSymbol(desc string) *Symbol {
	return &Symbol{desc: desc}
}

func (s *Symbol) Description() string {
	if s == nil {
		return ""
	}
	return s.desc
}

func (s *Symbol) String() string {
	return "Symbol(" + s.Description() + ")"
}
