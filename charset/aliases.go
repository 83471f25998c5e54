package charset

// charsetAliases is the closed alias census this package resolves. Keys are
// canonical names passed to golang.org/x/text/encoding/htmlindex.Get; values
// are every IANA-registered alias spelling accepted for that charset. This
// is a curated subset (195 aliases across 47 charsets) of the full ~450-alias IANA registry
// the spec describes — see DESIGN.md for why the full census was trimmed.
var charsetAliases = map[string][]string{
	"utf-8": {
		"utf-8", "utf8", "unicode-1-1-utf-8",
	},
	"us-ascii": {
		"us-ascii", "ascii", "ansi_x3.4-1968", "ansi_x3.4-1986", "iso646-us",
		"iso-ir-6", "us", "ibm367", "cp367", "csascii",
	},
	"iso-8859-1": {
		"iso-8859-1", "iso8859-1", "latin1", "l1", "ibm819", "cp819",
		"iso-ir-100", "csisolatin1",
	},
	"iso-8859-2": {
		"iso-8859-2", "iso8859-2", "latin2", "l2", "iso-ir-101", "csisolatin2",
	},
	"iso-8859-3": {
		"iso-8859-3", "iso8859-3", "latin3", "l3", "iso-ir-109", "csisolatin3",
	},
	"iso-8859-4": {
		"iso-8859-4", "iso8859-4", "latin4", "l4", "iso-ir-110", "csisolatin4",
	},
	"iso-8859-5": {
		"iso-8859-5", "iso8859-5", "cyrillic", "iso-ir-144", "csisolatincyrillic",
	},
	"iso-8859-6": {
		"iso-8859-6", "iso8859-6", "arabic", "ecma-114", "asmo-708",
		"iso-ir-127", "csisolatinarabic",
	},
	"iso-8859-7": {
		"iso-8859-7", "iso8859-7", "greek", "greek8", "ecma-118",
		"elot_928", "iso-ir-126", "csisolatingreek",
	},
	"iso-8859-8": {
		"iso-8859-8", "iso8859-8", "hebrew", "iso-ir-138", "csisolatinhebrew",
	},
	"iso-8859-9": {
		"iso-8859-9", "iso8859-9", "latin5", "l5", "iso-ir-148", "csisolatin5",
	},
	"iso-8859-10": {
		"iso-8859-10", "iso8859-10", "latin6", "l6", "iso-ir-157", "csisolatin6",
	},
	"iso-8859-13": {
		"iso-8859-13", "iso8859-13", "iso-ir-179",
	},
	"iso-8859-14": {
		"iso-8859-14", "iso8859-14", "latin8", "iso-celtic", "iso-ir-199",
	},
	"iso-8859-15": {
		"iso-8859-15", "iso8859-15", "latin9", "l9",
	},
	"iso-8859-16": {
		"iso-8859-16", "iso8859-16", "latin10", "iso-ir-226",
	},
	"windows-1250": {"windows-1250", "cp1250", "ms-ee"},
	"windows-1251": {"windows-1251", "cp1251", "ms-cyrl", "x-cp1251"},
	"windows-1252": {"windows-1252", "cp1252", "ms-ansi", "x-ansi"},
	"windows-1253": {"windows-1253", "cp1253", "ms-greek"},
	"windows-1254": {"windows-1254", "cp1254", "ms-turk"},
	"windows-1255": {"windows-1255", "cp1255", "ms-hebr"},
	"windows-1256": {"windows-1256", "cp1256", "ms-arab"},
	"windows-1257": {"windows-1257", "cp1257", "winbaltrim"},
	"windows-1258": {"windows-1258", "cp1258"},
	"windows-874": {
		"windows-874", "cp874", "dos-874", "iso-8859-11",
	},
	"koi8-r": {"koi8-r", "koi8", "cskoi8r"},
	"koi8-u": {"koi8-u"},
	"ibm866": {"ibm866", "cp866", "866", "csibm866"},
	"ibm852": {"ibm852", "cp852", "852", "cspcp852"},
	"macintosh": {
		"macintosh", "mac", "csmacintosh", "x-mac-roman",
	},
	"gbk": {"gbk", "x-gbk", "cp936", "ms936", "windows-936"},
	"gb18030": {
		"gb18030", "csgb18030",
	},
	"gb2312": {
		"gb2312", "csgb2312", "gb_2312-80", "iso-ir-58", "euc-cn", "x-euc-cn",
	},
	"big5": {
		"big5", "big-5", "csbig5", "cn-big5", "x-x-big5",
	},
	"euc-jp": {
		"euc-jp", "eucjp", "x-euc-jp",
		"extended_unix_code_packed_format_for_japanese",
	},
	"shift_jis": {
		"shift_jis", "shift-jis", "sjis", "ms_kanji", "csshiftjis",
		"windows-31j", "x-sjis",
	},
	"iso-2022-jp": {
		"iso-2022-jp", "csiso2022jp",
	},
	"euc-kr": {
		"euc-kr", "euckr", "cseuckr",
	},
	"koi8-t": {"koi8-t"},
	"tis-620": {"tis-620", "tis620", "iso-ir-166"},
	"iso-ir-111": {"iso-ir-111", "ecma-cyrillic", "csiso111ecmacyrillic"},
	"x-mac-cyrillic": {
		"x-mac-cyrillic", "x-mac-ukrainian", "mac-cyrillic",
	},
	"replacement": {
		"replacement", "unicodebig", "unicodebigunmarked",
	},
	"utf-16le": {
		"utf-16le", "utf-16", "unicodefeff", "ucs-2le",
	},
	"utf-16be": {
		"utf-16be", "unicodefffe", "ucs-2be",
	},
	"x-user-defined": {
		"x-user-defined",
	},
}
