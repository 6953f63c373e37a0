// Package align computes syllable-bound edit scripts between a canonical
// romaji syllable sequence and free text typed by a learner.
package align

import (
	"fmt"
	"strings"
)

// Kind is the type of a diff operation.
type Kind uint8

const (
	// OpSame: text is the same in source and input.
	OpSame Kind = iota
	// OpDelete: input text with no correspondence in the source.
	OpDelete
	// OpInsert: a source syllable missing from the input.
	OpInsert
	// OpChange: input text standing in for one source syllable.
	OpChange
)

var kindNames = [...]string{"same", "delete", "insert", "change"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("align: unknown kind %d", k)
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if name == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("align: unknown kind %q", b)
}

// Op is one element of a diff. Applied in order, the operations turn the
// input into the source.
//
// Same, Insert and Change correspond one to one to source syllables; Delete
// is extra input and has no source syllable.
type Op struct {
	Kind   Kind   `json:"kind"`
	Input  string `json:"input,omitempty"`  // consumed input text (Same, Delete, Change)
	Source string `json:"source,omitempty"` // source syllable (Same, Insert, Change)
}

// Same returns a Same operation.
func Same(text string) Op { return Op{Kind: OpSame, Input: text, Source: text} }

// Delete returns a Delete operation.
func Delete(text string) Op { return Op{Kind: OpDelete, Input: text} }

// Insert returns an Insert operation.
func Insert(text string) Op { return Op{Kind: OpInsert, Source: text} }

// Change returns a Change operation replacing input by the source syllable.
func Change(input, source string) Op { return Op{Kind: OpChange, Input: input, Source: source} }

func (o Op) String() string {
	switch o.Kind {
	case OpSame:
		return fmt.Sprintf("Same(%s)", o.Source)
	case OpDelete:
		return fmt.Sprintf("Delete(%s)", o.Input)
	case OpInsert:
		return fmt.Sprintf("Insert(%s)", o.Source)
	case OpChange:
		return fmt.Sprintf("Change(%s, %s)", o.Input, o.Source)
	}
	return o.Kind.String()
}

// cost returns the cost of a single operation: zero for Same, otherwise one
// plus the number of characters it touches.
func (o Op) cost() int {
	if o.Kind == OpSame {
		return 0
	}
	return 1 + runeLen(o.Input) + runeLen(o.Source)
}

// Cost returns the total cost of ops.
func Cost(ops []Op) int {
	total := 0
	for _, o := range ops {
		total += o.cost()
	}
	return total
}

// Replay applies ops, returning the input they consume and the source
// syllables they enumerate.
func Replay(ops []Op) (input string, source []string) {
	var sb strings.Builder
	for _, o := range ops {
		if o.Kind != OpInsert {
			sb.WriteString(o.Input)
		}
		if o.Kind != OpDelete {
			source = append(source, o.Source)
		}
	}
	return sb.String(), source
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
