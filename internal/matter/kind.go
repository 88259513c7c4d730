// Package matter defines the substances a sand grid can hold and the packed
// 32-bit cell encoding shared by the simulation and the renderer.
package matter

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies the substance stored in a cell. The zero value is Empty.
type Kind uint8

const (
	Empty Kind = iota
	Sand
	Wood

	// KindCount is the number of defined kinds. Ordinals at or above it are
	// never produced by Pack.
	KindCount
)

// ErrUnknownKind is returned by ParseKind for names that match no kind.
var ErrUnknownKind = errors.New("unknown matter kind")

var kindNames = [KindCount]string{
	Empty: "empty",
	Sand:  "sand",
	Wood:  "wood",
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool { return k < KindCount }

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Kinds lists every defined kind in ordinal order.
func Kinds() []Kind {
	out := make([]Kind, 0, KindCount)
	for k := Kind(0); k < KindCount; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind resolves a case-insensitive kind name.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return Empty, fmt.Errorf("parse %q: %w", name, ErrUnknownKind)
}
