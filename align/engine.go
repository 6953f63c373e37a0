package align

// step is the optimal operation recorded for one (syllable, offset) state.
type step struct {
	kind Kind
	n    int // input characters consumed by Delete or Change
	end  bool
}

// Diff returns the minimum-cost edit script turning input into source.
//
// Operations cost one plus the characters they touch (Same is free). Insert,
// Change and Same are bound to exactly one whole source syllable, so a
// syllable is never partially matched; Delete removes any run of input. When
// the remaining input starts with the current syllable it is taken as Same
// without considering alternatives. Equal costs prefer Change, then Delete,
// then Insert.
//
//	Source: A1 B2 C3 D4 E5 F6 G7 H8
//	Input:  A1xxB2yyD4F6G7zzH8
//
//	S(A1) D(xx) S(B2) C(yy,C3) S(D4) I(E5) S(F6) S(G7) D(zz) S(H8)
//
// Lengths are counted in runes. The cost table is allocated per call.
func Diff(source []string, input string) []Op {
	in := []rune(input)
	src := make([][]rune, len(source))
	for i, s := range source {
		src[i] = []rune(s)
	}

	N, M := len(src), len(in)
	W := M + 1
	cost := make([]int, (N+1)*W)
	steps := make([]step, (N+1)*W)

	// Fill bottom-up: state (a, b) depends only on (a+1, *) and (a, b+k).
	for a := N; a >= 0; a-- {
		for b := M; b >= 0; b-- {
			i := a*W + b
			switch {
			case a == N && b == M:
				steps[i] = step{end: true}

			case a == N:
				// Delete the rest of the input in one operation.
				steps[i] = step{kind: OpDelete, n: M - b}
				cost[i] = M - b + 1

			case b == M:
				// Insert remaining syllables one at a time.
				steps[i] = step{kind: OpInsert}
				cost[i] = 1 + len(src[a]) + cost[i+W]

			case hasPrefix(in[b:], src[a]):
				steps[i] = step{kind: OpSame}
				cost[i] = cost[i+W+len(src[a])]

			default:
				L := len(src[a])
				ins := 1 + L + cost[i+W]

				del, delK := 0, 0
				rep, repK := 0, 0
				for k := 1; k <= M-b; k++ {
					if c := k + cost[i+k]; delK == 0 || c < del {
						del, delK = c, k
					}
					if c := k + L + cost[i+W+k]; repK == 0 || c < rep {
						rep, repK = c, k
					}
				}
				del++
				rep++

				switch {
				case rep <= del && rep <= ins:
					steps[i] = step{kind: OpChange, n: repK}
					cost[i] = rep
				case del <= ins:
					steps[i] = step{kind: OpDelete, n: delK}
					cost[i] = del
				default:
					steps[i] = step{kind: OpInsert}
					cost[i] = ins
				}
			}
		}
	}

	var out []Op
	a, b := 0, 0
	for {
		st := steps[a*W+b]
		if st.end {
			return out
		}
		switch st.kind {
		case OpSame:
			out = append(out, Same(source[a]))
			b += len(src[a])
			a++
		case OpInsert:
			out = append(out, Insert(source[a]))
			a++
		case OpDelete:
			out = append(out, Delete(string(in[b:b+st.n])))
			b += st.n
		case OpChange:
			out = append(out, Change(string(in[b:b+st.n]), source[a]))
			b += st.n
			a++
		}
	}
}

func hasPrefix(s, prefix []rune) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i, r := range prefix {
		if s[i] != r {
			return false
		}
	}
	return true
}
