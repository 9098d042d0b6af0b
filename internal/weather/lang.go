// README: Hungarian condition texts and icon glyphs for both weather code
// vocabularies (wttr.in WWO codes and Open-Meteo WMO codes). Lookups always
// resolve; unknown codes fall back to "Ismeretlen" and a thermometer glyph.
package weather

const (
	unknownDescription = "Ismeretlen"
	defaultIcon        = "🌡️"
)

var wwoDescriptions = map[int]string{
	113: "Napos",
	116: "Részben felhős",
	119: "Felhős",
	122: "Borult",
	143: "Ködös",
	176: "Szitálás",
	179: "Havazás",
	182: "Havas eső",
	185: "Ónos szitálás",
	200: "Zivatar",
	227: "Hófúvás",
	230: "Hóvihar",
	248: "Köd",
	260: "Fagyos köd",
	263: "Szitálás",
	266: "Könnyű eső",
	281: "Ónos eső",
	284: "Ónos eső",
	293: "Könnyű eső",
	296: "Eső",
	299: "Zápor",
	302: "Erős eső",
	305: "Felhőszakadás",
	308: "Felhőszakadás",
	311: "Ónos eső",
	314: "Ónos eső",
	317: "Havas eső",
	320: "Havas eső",
	323: "Könnyű havazás",
	326: "Havazás",
	329: "Erős havazás",
	332: "Havazás",
	335: "Hóvihar",
	338: "Hóvihar",
	350: "Jégeső",
	353: "Zápor",
	356: "Zápor",
	359: "Felhőszakadás",
	362: "Havas eső",
	365: "Havas eső",
	368: "Hózápor",
	371: "Hózápor",
	374: "Jégeső",
	377: "Jégeső",
	386: "Zivatar",
	389: "Vihar",
	392: "Havas zivatar",
	395: "Hóvihar",
}

var wwoIcons = map[int]string{
	113: "☀️", 116: "⛅", 119: "☁️", 122: "☁️",
	143: "🌫️", 248: "🌫️", 260: "🌫️",
	176: "🌧️", 185: "🌧️", 263: "🌧️", 266: "🌧️", 281: "🌧️", 284: "🌧️",
	293: "🌧️", 296: "🌧️", 299: "🌧️", 302: "🌧️", 305: "🌧️", 308: "🌧️",
	311: "🌧️", 314: "🌧️", 353: "🌧️", 356: "🌧️", 359: "🌧️",
	179: "🌨️", 182: "🌨️", 227: "🌨️", 230: "🌨️", 317: "🌨️", 320: "🌨️",
	323: "🌨️", 326: "🌨️", 329: "🌨️", 332: "🌨️", 335: "🌨️", 338: "🌨️",
	350: "🌨️", 362: "🌨️", 365: "🌨️", 368: "🌨️", 371: "🌨️", 374: "🌨️",
	377: "🌨️", 395: "🌨️",
	200: "⛈️", 386: "⛈️", 389: "⛈️", 392: "⛈️",
}

var wmoDescriptions = map[int]string{
	0:  "Tiszta égbolt",
	1:  "Derült",
	2:  "Részben felhős",
	3:  "Borult",
	45: "Ködös",
	48: "Zúzmarás köd",
	51: "Szitálás",
	53: "Szitálás",
	55: "Erős szitálás",
	56: "Ónos szitálás",
	57: "Erős ónos szitálás",
	61: "Könnyű eső",
	63: "Eső",
	65: "Erős eső",
	66: "Ónos eső",
	67: "Erős ónos eső",
	71: "Könnyű havazás",
	73: "Havazás",
	75: "Erős havazás",
	77: "Hószem",
	80: "Zápor",
	81: "Zápor",
	82: "Felhőszakadás",
	85: "Hózápor",
	86: "Erős hózápor",
	95: "Zivatar",
	96: "Jégeső",
	99: "Erős jégeső",
}

var wmoIcons = map[int]string{
	0: "☀️", 1: "🌤️", 2: "⛅", 3: "☁️",
	45: "🌫️", 48: "🌫️",
	51: "🌧️", 53: "🌧️", 55: "🌧️", 56: "🌧️", 57: "🌧️",
	61: "🌧️", 63: "🌧️", 65: "🌧️", 66: "🌧️", 67: "🌧️",
	71: "🌨️", 73: "🌨️", 75: "🌨️", 77: "🌨️", 85: "🌨️", 86: "🌨️",
	80: "🌧️", 81: "🌧️", 82: "🌧️",
	95: "⛈️", 96: "⛈️", 99: "⛈️",
}

func describeWWO(code int) string {
	if d, ok := wwoDescriptions[code]; ok {
		return d
	}
	return unknownDescription
}

func iconWWO(code int) string {
	if icon, ok := wwoIcons[code]; ok {
		return icon
	}
	return defaultIcon
}

func describeWMO(code int) string {
	if d, ok := wmoDescriptions[code]; ok {
		return d
	}
	return unknownDescription
}

func iconWMO(code int) string {
	if icon, ok := wmoIcons[code]; ok {
		return icon
	}
	return defaultIcon
}
