package hostedpay

// latin1Entities holds the names of U+00A0 through U+00FF in code point order.
var latin1Entities = [...]string{
	"nbsp", "iexcl", "cent", "pound", "curren", "yen", "brvbar", "sect",
	"uml", "copy", "ordf", "laquo", "not", "shy", "reg", "macr",
	"deg", "plusmn", "sup2", "sup3", "acute", "micro", "para", "middot",
	"cedil", "sup1", "ordm", "raquo", "frac14", "frac12", "frac34", "iquest",
	"Agrave", "Aacute", "Acirc", "Atilde", "Auml", "Aring", "AElig", "Ccedil",
	"Egrave", "Eacute", "Ecirc", "Euml", "Igrave", "Iacute", "Icirc", "Iuml",
	"ETH", "Ntilde", "Ograve", "Oacute", "Ocirc", "Otilde", "Ouml", "times",
	"Oslash", "Ugrave", "Uacute", "Ucirc", "Uuml", "Yacute", "THORN", "szlig",
	"agrave", "aacute", "acirc", "atilde", "auml", "aring", "aelig", "ccedil",
	"egrave", "eacute", "ecirc", "euml", "igrave", "iacute", "icirc", "iuml",
	"eth", "ntilde", "ograve", "oacute", "ocirc", "otilde", "ouml", "divide",
	"oslash", "ugrave", "uacute", "ucirc", "uuml", "yacute", "thorn", "yuml",
}

// greekEntities holds the names of U+0391 through U+03C9. U+03A2 has none.
var greekEntities = [...]string{
	"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta",
	"Iota", "Kappa", "Lambda", "Mu", "Nu", "Xi", "Omicron", "Pi",
	"Rho", "", "Sigma", "Tau", "Upsilon", "Phi", "Chi", "Psi",
	"Omega", "", "", "", "", "", "", "",
	"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta",
	"iota", "kappa", "lambda", "mu", "nu", "xi", "omicron", "pi",
	"rho", "sigmaf", "sigma", "tau", "upsilon", "phi", "chi", "psi",
	"omega",
}

var entityNames = func() map[rune]string {
	names := map[rune]string{
		'&':  "amp",
		'<':  "lt",
		'>':  "gt",
		'"':  "quot",
		'\'': "apos",

		'Œ': "OElig",
		'œ': "oelig",
		'Š': "Scaron",
		'š': "scaron",
		'Ÿ': "Yuml",
		'ƒ': "fnof",
		'ˆ': "circ",
		'˜': "tilde",

		'\u2002': "ensp",
		'\u2003': "emsp",
		'\u2009': "thinsp",
		'\u200c': "zwnj",
		'\u200d': "zwj",
		'\u200e': "lrm",
		'\u200f': "rlm",

		'–': "ndash",
		'—': "mdash",
		'‘': "lsquo",
		'’': "rsquo",
		'‚': "sbquo",
		'“': "ldquo",
		'”': "rdquo",
		'„': "bdquo",
		'†': "dagger",
		'‡': "Dagger",
		'•': "bull",
		'…': "hellip",
		'‰': "permil",
		'′': "prime",
		'″': "Prime",
		'‹': "lsaquo",
		'›': "rsaquo",
		'‾': "oline",
		'⁄': "frasl",
		'€': "euro",
		'™': "trade",

		'ϑ': "thetasym",
		'ϒ': "upsih",
		'ϖ': "piv",

		'℘': "weierp",
		'ℑ': "image",
		'ℜ': "real",
		'ℵ': "alefsym",

		'←': "larr",
		'↑': "uarr",
		'→': "rarr",
		'↓': "darr",
		'↔': "harr",
		'↵': "crarr",
		'⇐': "lArr",
		'⇑': "uArr",
		'⇒': "rArr",
		'⇓': "dArr",
		'⇔': "hArr",

		'∀': "forall",
		'∂': "part",
		'∃': "exist",
		'∅': "empty",
		'∇': "nabla",
		'∈': "isin",
		'∉': "notin",
		'∋': "ni",
		'∏': "prod",
		'∑': "sum",
		'−': "minus",
		'∗': "lowast",
		'√': "radic",
		'∝': "prop",
		'∞': "infin",
		'∠': "ang",
		'∧': "and",
		'∨': "or",
		'∩': "cap",
		'∪': "cup",
		'∫': "int",
		'∴': "there4",
		'∼': "sim",
		'≅': "cong",
		'≈': "asymp",
		'≠': "ne",
		'≡': "equiv",
		'≤': "le",
		'≥': "ge",
		'⊂': "sub",
		'⊃': "sup",
		'⊄': "nsub",
		'⊆': "sube",
		'⊇': "supe",
		'⊕': "oplus",
		'⊗': "otimes",
		'⊥': "perp",
		'⋅': "sdot",

		'⌈': "lceil",
		'⌉': "rceil",
		'⌊': "lfloor",
		'⌋': "rfloor",
		'〈': "lang",
		'〉': "rang",

		'◊': "loz",
		'♠': "spades",
		'♣': "clubs",
		'♥': "hearts",
		'♦': "diams",
	}
	for i, name := range latin1Entities {
		names[rune(0xA0+i)] = name
	}
	for i, name := range greekEntities {
		if name != "" {
			names[rune(0x391+i)] = name
		}
	}
	return names
}()
