// README: Maneuver translator. Pure lookup tables mapping a route step to a
// Hungarian instruction and an icon. Unknown combinations never fail; they
// fall back to a raw "type modifier" composite and a generic arrow.
package nav

import "cardash/internal/routing"

// maneuverTexts holds the per-type instruction. A type whose wording depends
// on the modifier maps in maneuverModifierTexts instead.
var maneuverTexts = map[routing.StepType]string{
	routing.StepDepart:         "Indulj el",
	routing.StepArrive:         "Megérkezés",
	routing.StepMerge:          "Sorolj be",
	routing.StepRampOn:         "Hajts fel",
	routing.StepRampOff:        "Hajts le",
	routing.StepContinue:       "Folytatás egyenesen",
	routing.StepRoundabout:     "Körforgalomnál",
	routing.StepRotary:         "Körforgalomnál",
	routing.StepRoundaboutTurn: "Körforgalomnál",
	routing.StepExitRoundabout: "Hagyd el a körforgalmat",
	routing.StepExitRotary:     "Hagyd el a körforgalmat",
	routing.StepNotification:   "Figyelem",
}

var maneuverModifierTexts = map[routing.StepType]map[routing.Modifier]string{
	routing.StepTurn: {
		routing.ModLeft:        "Fordulj balra",
		routing.ModRight:       "Fordulj jobbra",
		routing.ModSlightLeft:  "Enyhén balra",
		routing.ModSlightRight: "Enyhén jobbra",
		routing.ModSharpLeft:   "Élesen balra",
		routing.ModSharpRight:  "Élesen jobbra",
		routing.ModStraight:    "Egyenesen",
		routing.ModUturn:       "Fordulj vissza",
	},
	routing.StepFork: {
		routing.ModLeft:        "Tarts balra az elágazásnál",
		routing.ModRight:       "Tarts jobbra az elágazásnál",
		routing.ModSlightLeft:  "Tarts balra",
		routing.ModSlightRight: "Tarts jobbra",
	},
	routing.StepEndOfRoad: {
		routing.ModLeft:  "Az út végén fordulj balra",
		routing.ModRight: "Az út végén fordulj jobbra",
	},
}

// maneuverIcons is keyed "type-modifier" with a per-type fallback entry.
var maneuverIcons = map[string]string{
	"depart":            "🚗",
	"arrive":            "🏁",
	"turn-left":         "⬅️",
	"turn-right":        "➡️",
	"turn-slight left":  "↖️",
	"turn-slight right": "↗️",
	"turn-sharp left":   "⤴️",
	"turn-sharp right":  "⤵️",
	"turn-straight":     "⬆️",
	"turn-uturn":        "🔄",
	"merge":             "🔀",
	"fork-left":         "↙️",
	"fork-right":        "↘️",
	"roundabout":        "🔄",
	"rotary":            "🔄",
	"continue":          "⬆️",
}

const defaultManeuverIcon = "➡️"

// TranslateManeuver maps one step to its localized instruction and icon.
func TranslateManeuver(step routing.Step) (text, icon string) {
	return maneuverText(step), maneuverIcon(step)
}

func maneuverText(step routing.Step) string {
	if byMod, ok := maneuverModifierTexts[step.Type]; ok && step.Modifier != "" {
		if text, ok := byMod[step.Modifier]; ok {
			return text
		}
		return string(step.Type) + " " + string(step.Modifier)
	}
	if text, ok := maneuverTexts[step.Type]; ok {
		return text
	}
	if step.Modifier != "" {
		return string(step.Type) + " " + string(step.Modifier)
	}
	return string(step.Type)
}

func maneuverIcon(step routing.Step) string {
	if step.Modifier != "" {
		if icon, ok := maneuverIcons[string(step.Type)+"-"+string(step.Modifier)]; ok {
			return icon
		}
	}
	if icon, ok := maneuverIcons[string(step.Type)]; ok {
		return icon
	}
	return defaultManeuverIcon
}
