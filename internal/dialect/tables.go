package dialect

import "strings"

// conversionTable maps a native token to its equivalent in each dialect.
// An empty value means the dialect has no equivalent and the token is
// dropped. Bytes without an entry are copied literally.
var conversionTable = map[Dialect]map[byte]string{
	ICU: {
		// day
		'j': "d",
		'd': "dd",
		'D': "eee",
		'l': "EEEE",
		'N': "cc",
		'w': "cc",
		'z': "D",
		// week
		'W': "ww",
		// month
		'F': "MMMM",
		'm': "MM",
		'M': "MMM",
		'n': "M",
		't': "",
		// year
		'o': "Y",
		'Y': "yyyy",
		'y': "yy",
		// time
		'a': "a",
		'A': "a",
		'B': "SSS",
		'g': "h",
		'G': "k",
		'h': "hh",
		'H': "HH",
		'i': "mm",
		's': "ss",
		'u': "SSSSSS",
		'v': "SSS",
		// timezone
		'e': "VV",
		'O': "ZZZ",
		'P': "xxx",
		'T': "zz",
	},
	Carbon: {
		'j': "D",
		'd': "DD",
		'D': "ddd",
		'l': "dddd",
		'N': "E",
		'w': "e",
		'z': "",
		'W': "w",
		'F': "MMMM",
		'm': "MM",
		'M': "MMM",
		'n': "M",
		't': "",
		'o': "Y",
		'Y': "YYYY",
		'y': "YY",
		'a': "a",
		'A': "A",
		'B': "SSS",
		'g': "h",
		'G': "H",
		'h': "hh",
		'H': "HH",
		'i': "mm",
		's': "ss",
		'u': "SSSSSS",
		'v': "SSS",
		'e': "zz",
		'O': "ZZ",
		'P': "Z",
		'T': "z",
	},
	CLib: {
		'j': "%e",
		'd': "%d",
		'D': "%a",
		'l': "%A",
		'N': "%u",
		'w': "%w",
		'z': "",
		'W': "%W",
		'F': "%B",
		'm': "%m",
		'M': "%b",
		'n': "%m",
		't': "",
		'o': "%G",
		'Y': "%Y",
		'y': "%y",
		'a': "%P",
		'A': "%p",
		'B': "",
		'g': "%I", // %l pads with a space
		'G': "%k",
		'h': "%I",
		'H': "%H",
		'i': "%M",
		's': "%S",
		'u': "%f",
		'v': "",
		'e': "%Z",
		'O': "%z",
		'P': "%z",
		'T': "%Z",
		'U': "%s",
	},
	Moment: {
		'j': "D",
		'd': "DD",
		'D': "ddd",
		'l': "dddd",
		'N': "E",
		'w': "d",
		'z': "DDD",
		'W': "w",
		'F': "MMMM",
		'm': "MM",
		'M': "MMM",
		'n': "M",
		't': "",
		'o': "Y",
		'Y': "YYYY",
		'y': "YY",
		'a': "a",
		'A': "A",
		'B': "SSS",
		'g': "h",
		'G': "H",
		'h': "hh",
		'H': "HH",
		'i': "mm",
		's': "ss",
		'u': "SSSSSS",
		'v': "SSS",
		'e': "zz",
		'O': "ZZ",
		'P': "Z",
		'T': "zz",
		'U': "X",
	},
	GoLayout: {
		'j': "2",
		'd': "02",
		'D': "Mon",
		'l': "Monday",
		'N': "",
		'w': "",
		'z': "",
		'W': "",
		'F': "January",
		'm': "01",
		'M': "Jan",
		'n': "1",
		't': "",
		'o': "",
		'Y': "2006",
		'y': "06",
		'a': "pm",
		'A': "PM",
		'B': "",
		'g': "3",
		'G': "15",
		'h': "03",
		'H': "15",
		'i': "04",
		's': "05",
		'u': "000000",
		'v': "000",
		'e': "MST",
		'O': "-0700",
		'P': "-07:00",
		'T': "MST",
	},
}

// Translate substitutes every native token of format with its equivalent in
// target, in a single pass. Native and unknown dialects return format
// unchanged. No alias resolution or dialect cleanup is applied.
func Translate(format string, target Dialect) string {
	table, ok := conversionTable[target.canonical()]
	if !ok {
		return format
	}

	var b strings.Builder
	b.Grow(len(format) * 2)
	for i := 0; i < len(format); i++ {
		if repl, ok := table[format[i]]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteByte(format[i])
	}
	return b.String()
}

// HasTable reports whether target has a conversion table.
func HasTable(target Dialect) bool {
	_, ok := conversionTable[target.canonical()]
	return ok
}
