package phoneme

// TableVersion identifies the revision of the mapping table. Bump it
// whenever entries change so that downstream dictionaries can be
// regenerated knowingly.
const TableVersion = 1

// kirshenbaum maps one IPA symbol onto its espeak-ng phoneme mnemonic.
// Keys may span several runes (long vowels, diphthongs, affricates
// with tie bars, symbols with combining diacritics); the tokenizer
// matches them longest first. Values use only characters accepted by
// the espeak-ng dictionary compiler.
var kirshenbaum = map[string]string{
	// plosives
	"p": "p", "b": "b", "t": "t", "d": "d", "k": "k",
	"g": "g", "ɡ": "g", "q": "k", "ʔ": "?",

	// nasals
	"m": "m", "n": "n", "ŋ": "N", "ɲ": "n^",

	// fricatives
	"f": "f", "v": "v", "s": "s", "z": "z",
	"ʃ": "S", "ʒ": "Z", "ç": "C", "x": "x", "χ": "x",
	"θ": "T", "ð": "D", "h": "h",

	// liquids and glides
	"l": "l", "ɫ": "l",
	"r": "r", "ʁ": "r", "ʀ": "r", "ɾ": "r", "ɹ": "r",
	"j": "j", "w": "w", "ʋ": "v",

	// affricates
	"t͡s": "ts", "t͡ʃ": "tS", "d͡ʒ": "dZ", "p͡f": "pf", "d͡z": "dz",
	"ʦ": "ts", "ʧ": "tS", "ʤ": "dZ", "ʣ": "dz",

	// short vowels
	"a": "a", "e": "e", "i": "i", "o": "o", "u": "u", "y": "y",
	"ɛ": "E", "ɪ": "I", "ɔ": "O", "ʊ": "U", "ʏ": "Y",
	"ø": "2", "œ": "9", "ə": "@", "ɐ": "3",
	"ɑ": "A", "ɒ": "A", "æ": "&", "ʌ": "V", "ɜ": "3",

	// long vowels
	"aː": "a:", "eː": "e:", "iː": "i:", "oː": "o:", "uː": "u:",
	"yː": "y:", "ɛː": "E:", "øː": "2:", "ɑː": "A:", "ɔː": "O:",
	"œː": "9:",

	// diphthongs
	"aɪ̯": "aI", "aɪ": "aI",
	"aʊ̯": "aU", "aʊ": "aU",
	"ɔɪ̯": "OY", "ɔɪ": "OY",
	"ɔʏ̯": "OY", "ɔʏ": "OY",

	// nasal vowels
	"ɑ̃": "A~", "ɛ̃": "E~", "ɔ̃": "O~", "œ̃": "9~",

	// non-syllabic off-glides
	"ɐ̯": "3", "i̯": "i", "ʊ̯": "U", "ɪ̯": "I", "o̯": "o", "u̯": "u",
	"y̯": "y", "e̯": "e",

	// syllabic consonants
	"n̩": "@n", "l̩": "@l", "m̩": "@m",

	// suprasegmentals and separators
	"ˈ": "'", "ˌ": ",", "ː": ":", "ˑ": ":",
	" ": "||", ".": "", "|": "", "‖": "",

	// marks carrying no phonemic content of their own
	"̯": "", "̩": "", "̥": "", "̬": "", "̃": "",
	"͡": "", "͜": "",
	"ʰ": "", "ʲ": "", "ʷ": "", "ˠ": "", "̚": "", "ʼ": "",
}
