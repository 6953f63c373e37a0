package wordset

import (
	"fmt"
	"strings"
)

// Character sets used as build targets.
const (
	Hiragana = "あいうえおかきくけこがぎぐげごさしすせそざじずぜぞたちつてとだづでどなにぬねのはひふへほばびぶべぼぱぴぷぽまみむめもやゆよらりるれろわん"
	Katakana = "アイウエオカキクケコガギグゲゴサシスセソザジズゼゾタチツテトダヂデドナニヌネノハヒフヘホバビブベボパピプペポマミムメモヤユヨラリルレロワヲン"
	All      = Hiragana + Katakana

	// AllRare adds characters that few common words contain.
	AllRare = All + rare
)

const rare = "ぺぢヌヅを"

// CharsetByName returns the character set called name: hiragana, katakana,
// all or rare.
func CharsetByName(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hiragana":
		return Hiragana, nil
	case "katakana":
		return Katakana, nil
	case "all", "":
		return All, nil
	case "rare":
		return AllRare, nil
	}
	return "", fmt.Errorf("unknown charset %q", name)
}
