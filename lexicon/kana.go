package lexicon

// c, d, g, tsu and bar are shorthands to build table entries.
func c(r rune, romaji string) Entry      { return Entry{r, Plain{romaji}} }
func d(r rune, romaji, alt string) Entry { return Entry{r, DigraphCapable{romaji, alt}} }
func g(r rune, suffix string) Entry      { return Entry{r, Glide{suffix}} }
func tsu(r rune) Entry                   { return Entry{r, Gemination{}} }
func bar(r rune) Entry                   { return Entry{r, LongMark{}} }

// kanaEntries is the standard hiragana and katakana table.
var kanaEntries = []Entry{
	// カタカナ
	tsu('ッ'),
	g('ャ', "ya"), g('ュ', "yu"), g('ョ', "yo"),
	g('ァ', "a"), g('ィ', "i"), g('ゥ', "u"), g('ェ', "e"), g('ォ', "o"),
	c('ヴ', "vu"),
	bar('ー'),
	// ア行
	c('ア', "a"), d('イ', "i", "ya"), d('ウ', "u", "wa"), c('エ', "e"), c('オ', "o"),
	// カ行
	c('カ', "ka"), c('キ', "ki"), d('ク', "ku", "kwa"), c('ケ', "ke"), c('コ', "ko"),
	// ガ行
	c('ガ', "ga"), c('ギ', "gi"), d('グ', "gu", "gwa"), c('ゲ', "ge"), c('ゴ', "go"),
	// サ行
	c('サ', "sa"), c('シ', "shi"), c('ス', "su"), c('セ', "se"), c('ソ', "so"),
	// ザ行
	c('ザ', "za"), c('ジ', "ji"), c('ズ', "zu"), c('ゼ', "ze"), c('ゾ', "zo"),
	// タ行
	c('タ', "ta"), c('チ', "chi"), c('ツ', "tsu"), c('テ', "te"), c('ト', "to"),
	// ダ行
	c('ダ', "da"), c('ヂ', "dji"), c('ヅ', "dzu"), c('デ', "de"), c('ド', "do"),
	// ナ行
	c('ナ', "na"), c('ニ', "ni"), c('ヌ', "nu"), c('ネ', "ne"), c('ノ', "no"),
	// ハ行
	c('ハ', "ha"), c('ヒ', "hi"), c('フ', "fu"), c('ヘ', "he"), c('ホ', "ho"),
	// バ行
	c('バ', "ba"), c('ビ', "bi"), c('ブ', "bu"), c('ベ', "be"), c('ボ', "bo"),
	// パ行
	c('パ', "pa"), c('ピ', "pi"), c('プ', "pu"), c('ペ', "pe"), c('ポ', "po"),
	// マ行
	c('マ', "ma"), c('ミ', "mi"), c('ム', "mu"), c('メ', "me"), c('モ', "mo"),
	// ヤ行
	c('ヤ', "ya"), c('ユ', "yu"), c('ヨ', "yo"),
	// ラ行
	c('ラ', "ra"), c('リ', "ri"), c('ル', "ru"), c('レ', "re"), c('ロ', "ro"),
	// ワ行
	c('ワ', "wa"), c('ヲ', "wo"), c('ン', "n"),

	// ひらがな
	tsu('っ'),
	g('ゃ', "ya"), g('ゅ', "yu"), g('ょ', "yo"),
	g('ぁ', "a"), g('ぃ', "i"), g('ぅ', "u"), g('ぇ', "e"), g('ぉ', "o"),
	// あ行
	c('あ', "a"), c('い', "i"), c('う', "u"), c('え', "e"), c('お', "o"),
	// か行
	c('か', "ka"), c('き', "ki"), c('く', "ku"), c('け', "ke"), c('こ', "ko"),
	// が行
	c('が', "ga"), c('ぎ', "gi"), c('ぐ', "gu"), c('げ', "ge"), c('ご', "go"),
	// さ行
	c('さ', "sa"), c('し', "shi"), c('す', "su"), c('せ', "se"), c('そ', "so"),
	// ざ行
	c('ざ', "za"), c('じ', "ji"), c('ず', "zu"), c('ぜ', "ze"), c('ぞ', "zo"),
	// た行
	c('た', "ta"), c('ち', "chi"), c('つ', "tsu"), c('て', "te"), c('と', "to"),
	// だ行
	c('だ', "da"), c('ぢ', "dji"), c('づ', "dzu"), c('で', "de"), c('ど', "do"),
	// な行
	c('な', "na"), c('に', "ni"), c('ぬ', "nu"), c('ね', "ne"), c('の', "no"),
	// は行
	c('は', "ha"), c('ひ', "hi"), c('ふ', "fu"), c('へ', "he"), c('ほ', "ho"),
	// ば行
	c('ば', "ba"), c('び', "bi"), c('ぶ', "bu"), c('べ', "be"), c('ぼ', "bo"),
	// ぱ行
	c('ぱ', "pa"), c('ぴ', "pi"), c('ぷ', "pu"), c('ぺ', "pe"), c('ぽ', "po"),
	// ま行
	c('ま', "ma"), c('み', "mi"), c('む', "mu"), c('め', "me"), c('も', "mo"),
	// や行
	c('や', "ya"), c('ゆ', "yu"), c('よ', "yo"),
	// ら行
	c('ら', "ra"), c('り', "ri"), c('る', "ru"), c('れ', "re"), c('ろ', "ro"),
	// わ行
	c('わ', "wa"), c('を', "wo"), c('ん', "n"),
}

// digraphRules are the foreign-sound digraphs (外来語拗音) that the glide
// rules alone cannot spell.
var digraphRules = []DigraphRule{
	{"ファ", "fa"}, {"フィ", "fi"}, {"フェ", "fe"}, {"フォ", "fo"}, {"フュ", "fyu"},
	{"ティ", "ti"}, {"ディ", "di"}, {"トゥ", "tu"}, {"ドゥ", "du"},
	{"テュ", "tyu"}, {"デュ", "dyu"},
	{"ウィ", "wi"}, {"ウェ", "we"}, {"ウォ", "wo"},
	{"ヴァ", "va"}, {"ヴィ", "vi"}, {"ヴェ", "ve"}, {"ヴォ", "vo"}, {"ヴュ", "vyu"},
	{"ツァ", "tsa"}, {"ツィ", "tsi"}, {"ツェ", "tse"}, {"ツォ", "tso"},
	{"シェ", "she"}, {"チェ", "che"}, {"ジェ", "je"}, {"イェ", "ye"},
	{"クァ", "kwa"}, {"クィ", "kwi"}, {"クェ", "kwe"}, {"クォ", "kwo"},
	{"グァ", "gwa"},
}
