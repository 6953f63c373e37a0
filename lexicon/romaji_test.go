package lexicon

import (
	"strings"
	"testing"
)

func TestRomaji(t *testing.T) {
	tr := NewTransliterator(StandardTable())

	tests := []struct {
		kana string
		want string
	}{
		// 非かな
		{"", ""},
		{"abc", "abc"},
		{"[あ]", "[a]"},
		// ひらがな
		{"あいうえお", "aiueo"},
		{"かきくけこ", "kakikukeko"},
		{"さしすせそ", "sashisuseso"},
		{"たちつてと", "tachitsuteto"},
		{"だぢづでど", "dadjidzudedo"},
		{"はひふへほ", "hahifuheho"},
		{"わを", "wawo"},
		{"ん", "n"},
		// カタカナ
		{"アイウエオ", "aiueo"},
		{"ザジズゼゾ", "zajizuzezo"},
		{"パピプペポ", "papipupepo"},
		// 促音
		{"まって", "matte"},
		{"マッテ", "matte"},
		{"こっち", "kotchi"},
		{"あっさり", "assari"},
		{"アッイェ", "ayye"},
		{"あっ", "a~tsu"},
		{"っ", "~tsu"},
		{"っっコ", "~tsukko"},
		{"ッア", "~tsua"},
		{"ッッイョ", "~tsuyyo"},
		{"カッャ", "ka~tsuya"},
		{"ッー", "~tsū"},
		// 拗音
		{"きゃ ぎゃ しゃ じゃ ちゃ にゃ ひゃ", "kya gya sha ja cha nya hya"},
		{"キュ ギュ シュ ジュ チュ ニュ ヒュ", "kyu gyu shu ju chu nyu hyu"},
		{"びょ ぴょ みょ りょ", "byo pyo myo ryo"},
		{"ぢゃ", "dja"},
		{"ャ", "ya"},
		{"イョ", "yo"},
		{"ッチャ", "tcha"},
		// 外来語
		{"シャシシュシェショ", "shashishushesho"},
		{"ジャジジュジェジョ", "jajijujejo"},
		{"タティトゥテト", "tatituteto"},
		{"ファフィフフェフォ", "fafifufefo"},
		{"ワウィウウェウォ", "wawiuwewo"},
		{"ヴァヴィヴヴェヴォ", "vavivuvevo"},
		// 長音
		{"アーイーウーエーオー シー シャー ンー xー", "āīūēō shī shā n̄ x-"},
		{"ーアーイーウーエーオーンー", "-āīūēōn̄"},
		{"アーー ンーー ーー", "āa n̄n --"},
		// 単語
		{"パーティー", "pātī"},
		{"ディスク", "disuku"},
		{"ファッション", "fasshon"},
		{"ハロウィーン", "harowīn"},
		{"ソフトウェア", "sofutowea"},
		{"デュエット", "dyuetto"},
		{"ストップウォッチ", "sutoppuwotchi"},
		{"クォーツ", "kwōtsu"},
		{"モーツァルト", "mōtsaruto"},
		{"プレッツェル", "purettseru"},
		{"フューチャー", "fyūchā"},
		{"ベートーヴェン", "bētōven"},
		{"エスクァイア", "esukwaia"},
		{"グァンタナモ", "gwantanamo"},
		{"テューリンゲン", "tyūringen"},
	}

	for _, tt := range tests {
		t.Run(tt.kana, func(t *testing.T) {
			got := tr.Romaji(tt.kana)
			if got != tt.want {
				t.Errorf("Romaji(%q) = %q, want %q", tt.kana, got, tt.want)
			}
		})
	}
}

func TestRomajiGeminationDoublesConsonant(t *testing.T) {
	tr := NewTransliterator(StandardTable())
	got := tr.Romaji("きって")
	if got != "kitte" {
		t.Errorf("Romaji(きって) = %q, want kitte", got)
	}
	if len(got) != 5 {
		t.Errorf("len = %d, want 5", len(got))
	}
}

func TestRomajiDeterministic(t *testing.T) {
	tr := NewTransliterator(StandardTable())
	words := []string{"ッハッッイョ", "ジェスチャー", "ンー", "まっ"}
	first := make([]string, len(words))
	for i, w := range words {
		first[i] = tr.Romaji(w)
	}
	for i := len(words) - 1; i >= 0; i-- {
		if got := tr.Romaji(words[i]); got != first[i] {
			t.Errorf("Romaji(%q) = %q on second call, want %q", words[i], got, first[i])
		}
	}
}

func TestRomajiMatchesSplit(t *testing.T) {
	table := StandardTable()
	tr := NewTransliterator(table)
	s := NewSegmenter(table)

	// Split spells long vowels doubled and a leftover long bar as ー.
	check := func(w string) {
		t.Helper()
		want := strings.ReplaceAll(ExpandLong(tr.Romaji(w)), "-", "ー")
		if got := strings.Join(s.Split(w), ""); got != want {
			t.Errorf("Split(%q) joins to %q, Romaji = %q", w, got, tr.Romaji(w))
		}
	}

	words := []string{
		"きゃにゅびょ", "ストップウォッチ", "ファッション", "デュエット",
		"クィントゥス", "ツィンメルマン", "シェルタ", "まっちゃ",
		"パーティー", "コーヒー", "ンー", "ハロウィーン", "フューチャー",
		"クォーツ", "ジェスチャー", "ベートーヴェン", "ッハッッイッッッイョ",
	}
	for _, w := range words {
		check(w)
	}

	chars := make([]rune, 0, len(kanaEntries))
	for _, e := range kanaEntries {
		chars = append(chars, e.Char)
	}
	for _, a := range chars {
		check(string(a))
		for _, b := range chars {
			check(string([]rune{a, b}))
		}
	}
}

func TestEqualRomaji(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"āīūēō", "aaiiuueeoo", true},
		{"-āīūēōn̄", "-AAIIUUEEOONN", true},
		{"Tōkyō", "tookyoo", true},
		{"ĀĪ", "aaii", true},
		{"pātī", "paatii", true},
		{"pātī", "pati", false},
		{"kya", "kyo", false},
		{"", "", true},
	}
	for _, tt := range tests {
		if got := EqualRomaji(tt.a, tt.b); got != tt.want {
			t.Errorf("EqualRomaji(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestExpandLong(t *testing.T) {
	if got := ExpandLong("kwōtsu shīn̄"); got != "kwootsu shiinn" {
		t.Errorf("ExpandLong = %q", got)
	}
}
