package toggle

import "fmt"

// Layout is an xkb layout code with an optional variant.
type Layout struct {
	Code    string
	variant *string
}

func Plain(code string) Layout {
	return Layout{Code: code}
}

func WithVariant(code, variant string) Layout {
	return Layout{Code: code, variant: &variant}
}

func (l Layout) Variant() (string, bool) {
	if l.variant == nil {
		return "", false
	}
	return *l.variant, true
}

func (l Layout) String() string {
	if v, ok := l.Variant(); ok {
		return fmt.Sprintf("%s(%s)", l.Code, v)
	}
	return l.Code
}

// Table is the ordered cycle of layouts. The persisted index points into it.
type Table []Layout

// Advance returns the index following current, always within [0, n).
func Advance(current, n int) int {
	return ((current+1)%n + n) % n
}
