package unit

import "fmt"

// Kind identifies the descriptor family.
type Kind uint8

const (
	KindSize Kind = iota
	KindPosition
	KindScale
)

var kindNames = []string{
	KindSize:     "size",
	KindPosition: "position",
	KindScale:    "scale",
}

func (k Kind) String() string { return enumString(kindNames, k, "kind") }

// ParseKind converts "size", "position" or "scale" to a Kind.
func ParseKind(s string) (Kind, error) {
	k, ok := parseEnum[Kind](kindNames, s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

func enumString[T ~uint8](names []string, v T, what string) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", what, v)
}

func parseEnum[T ~uint8](names []string, s string) (T, bool) {
	for i, name := range names {
		if name == s {
			return T(i), true
		}
	}
	return 0, false
}

func parseNamed[T ~uint8](names []string, s, what string) (T, error) {
	v, ok := parseEnum[T](names, s)
	if !ok {
		return 0, fmt.Errorf("%w: %s %q", ErrUnknownBehavior, what, s)
	}
	return v, nil
}
