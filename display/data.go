// Copyright 2026 The Langtags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package display

// dictionary holds the display names one naming language knows.
// Language keys may carry a script subtag ("zh-Hans") when the named
// entity is narrower than a bare language.
type dictionary struct {
	languages map[string]string
	scripts   map[string]string
	regions   map[string]string
}

// dictionaries maps the tag of each naming language to its name tables.
// English is the most complete set; the others cover common entries so
// that naming-language selection has something to choose between.
var dictionaries = map[string]*dictionary{
	"en": {
		languages: map[string]string{
			"aa":      "Afar",
			"af":      "Afrikaans",
			"am":      "Amharic",
			"ar":      "Arabic",
			"arz":     "Egyptian Arabic",
			"ary":     "Moroccan Arabic",
			"az":      "Azerbaijani",
			"be":      "Belarusian",
			"bg":      "Bulgarian",
			"bn":      "Bangla",
			"bs":      "Bosnian",
			"ca":      "Catalan",
			"cs":      "Czech",
			"cy":      "Welsh",
			"da":      "Danish",
			"de":      "German",
			"el":      "Greek",
			"en":      "English",
			"eo":      "Esperanto",
			"es":      "Spanish",
			"et":      "Estonian",
			"eu":      "Basque",
			"fa":      "Persian",
			"fi":      "Finnish",
			"fil":     "Filipino",
			"fr":      "French",
			"ga":      "Irish",
			"gl":      "Galician",
			"gsw":     "Swiss German",
			"gu":      "Gujarati",
			"he":      "Hebrew",
			"hi":      "Hindi",
			"hr":      "Croatian",
			"ht":      "Haitian Creole",
			"hu":      "Hungarian",
			"hy":      "Armenian",
			"id":      "Indonesian",
			"is":      "Icelandic",
			"it":      "Italian",
			"ja":      "Japanese",
			"ka":      "Georgian",
			"kk":      "Kazakh",
			"km":      "Khmer",
			"kn":      "Kannada",
			"ko":      "Korean",
			"ky":      "Kyrgyz",
			"lo":      "Lao",
			"lt":      "Lithuanian",
			"lv":      "Latvian",
			"mk":      "Macedonian",
			"ml":      "Malayalam",
			"mn":      "Mongolian",
			"mr":      "Marathi",
			"ms":      "Malay",
			"mt":      "Maltese",
			"my":      "Burmese",
			"nb":      "Norwegian Bokmål",
			"ne":      "Nepali",
			"nl":      "Dutch",
			"nn":      "Norwegian Nynorsk",
			"no":      "Norwegian",
			"or":      "Odia",
			"pa":      "Punjabi",
			"pl":      "Polish",
			"ps":      "Pashto",
			"pt":      "Portuguese",
			"ro":      "Romanian",
			"ru":      "Russian",
			"si":      "Sinhala",
			"sk":      "Slovak",
			"sl":      "Slovenian",
			"sq":      "Albanian",
			"sr":      "Serbian",
			"sr-Latn": "Serbian (Latin)",
			"sv":      "Swedish",
			"sw":      "Swahili",
			"ta":      "Tamil",
			"te":      "Telugu",
			"th":      "Thai",
			"tr":      "Turkish",
			"uk":      "Ukrainian",
			"und":     "Unknown language",
			"ur":      "Urdu",
			"uz":      "Uzbek",
			"vi":      "Vietnamese",
			"yi":      "Yiddish",
			"yue":     "Cantonese",
			"zh":      "Chinese",
			"zh-Hans": "Simplified Chinese",
			"zh-Hant": "Traditional Chinese",
			"zu":      "Zulu",
		},
		scripts: map[string]string{
			"Arab": "Arabic",
			"Armn": "Armenian",
			"Beng": "Bangla",
			"Cyrl": "Cyrillic",
			"Deva": "Devanagari",
			"Ethi": "Ethiopic",
			"Geor": "Georgian",
			"Grek": "Greek",
			"Hans": "Simplified Han",
			"Hant": "Traditional Han",
			"Hebr": "Hebrew",
			"Jpan": "Japanese",
			"Kore": "Korean",
			"Latn": "Latin",
			"Shaw": "Shavian",
			"Taml": "Tamil",
			"Thai": "Thai",
			"Zzzz": "Unknown script",
		},
		regions: map[string]string{
			"001": "world",
			"419": "Latin America",
			"AR":  "Argentina",
			"AT":  "Austria",
			"AU":  "Australia",
			"BE":  "Belgium",
			"BR":  "Brazil",
			"CA":  "Canada",
			"CH":  "Switzerland",
			"CN":  "China",
			"CO":  "Colombia",
			"DE":  "Germany",
			"DK":  "Denmark",
			"EG":  "Egypt",
			"ES":  "Spain",
			"FR":  "France",
			"GB":  "United Kingdom",
			"HK":  "Hong Kong",
			"IE":  "Ireland",
			"IN":  "India",
			"IT":  "Italy",
			"JP":  "Japan",
			"KR":  "South Korea",
			"MA":  "Morocco",
			"MO":  "Macao",
			"MX":  "Mexico",
			"NL":  "Netherlands",
			"NO":  "Norway",
			"NZ":  "New Zealand",
			"PL":  "Poland",
			"PT":  "Portugal",
			"RS":  "Serbia",
			"RU":  "Russia",
			"SE":  "Sweden",
			"SG":  "Singapore",
			"TR":  "Turkey",
			"TW":  "Taiwan",
			"UA":  "Ukraine",
			"US":  "United States",
			"ZZ":  "Unknown region",
		},
	},

	"fr": {
		languages: map[string]string{
			"de":      "allemand",
			"en":      "anglais",
			"es":      "espagnol",
			"fr":      "français",
			"it":      "italien",
			"ja":      "japonais",
			"nl":      "néerlandais",
			"pt":      "portugais",
			"ru":      "russe",
			"zh":      "chinois",
			"zh-Hans": "chinois simplifié",
			"zh-Hant": "chinois traditionnel",
		},
		scripts: map[string]string{
			"Arab": "arabe",
			"Cyrl": "cyrillique",
			"Hans": "sinogrammes simplifiés",
			"Hant": "sinogrammes traditionnels",
			"Latn": "latin",
		},
		regions: map[string]string{
			"BE": "Belgique",
			"CA": "Canada",
			"CH": "Suisse",
			"DE": "Allemagne",
			"ES": "Espagne",
			"FR": "France",
			"GB": "Royaume-Uni",
			"US": "États-Unis",
		},
	},

	"es": {
		languages: map[string]string{
			"de":      "alemán",
			"en":      "inglés",
			"es":      "español",
			"fr":      "francés",
			"it":      "italiano",
			"ja":      "japonés",
			"pt":      "portugués",
			"ru":      "ruso",
			"zh":      "chino",
			"zh-Hans": "chino simplificado",
			"zh-Hant": "chino tradicional",
		},
		scripts: map[string]string{
			"Arab": "árabe",
			"Cyrl": "cirílico",
			"Latn": "latino",
		},
		regions: map[string]string{
			"419": "Latinoamérica",
			"AR":  "Argentina",
			"DE":  "Alemania",
			"ES":  "España",
			"FR":  "Francia",
			"GB":  "Reino Unido",
			"MX":  "México",
			"US":  "Estados Unidos",
		},
	},

	"de": {
		languages: map[string]string{
			"de":      "Deutsch",
			"en":      "Englisch",
			"es":      "Spanisch",
			"fr":      "Französisch",
			"gsw":     "Schweizerdeutsch",
			"it":      "Italienisch",
			"ja":      "Japanisch",
			"pt":      "Portugiesisch",
			"ru":      "Russisch",
			"zh":      "Chinesisch",
			"zh-Hans": "Chinesisch (vereinfacht)",
			"zh-Hant": "Chinesisch (traditionell)",
		},
		scripts: map[string]string{
			"Arab": "Arabisch",
			"Cyrl": "Kyrillisch",
			"Latn": "Lateinisch",
		},
		regions: map[string]string{
			"AT": "Österreich",
			"CH": "Schweiz",
			"DE": "Deutschland",
			"FR": "Frankreich",
			"GB": "Vereinigtes Königreich",
			"US": "Vereinigte Staaten",
		},
	},
}
