package translate

import (
	"golang.org/x/text/language"
)

// catalog holds the non en-US translations, keyed by the en-US text.
var catalog = map[language.Tag]map[string]string{
	language.German: {
		"stack overflow":                  "Stapelüberlauf",
		"stack underflow":                 "Stapelunterlauf",
		"out of memory":                   "Speicher erschöpft",
		"unknown opcode":                  "unbekannter Opcode",
		"device failure":                  "Gerätefehler",
		"opcode 0x%04x":                   "Opcode 0x%04x",
		"pc 0x%03x %v":                    "PC 0x%03x %v",
		"line %d pc 0x%03x %v":            "Zeile %d PC 0x%03x %v",
		"line %d '%v' %v":                 "Zeile %d '%v' %v",
		"label %v missing":                "Marke %v fehlt",
		"rom missing":                     "ROM nicht gefunden",
		"rom unreadable":                  "ROM nicht lesbar",
		"rom too large":                   "ROM zu groß",
		"instruction invalid":             "ungültiger Befehl",
		"operand invalid":                 "ungültiger Operand",
		"register invalid":                "ungültiges Register",
		"value out of range":              "Wert außerhalb des Bereichs",
		"label duplicated":                "Marke doppelt definiert",
		".equ syntax":                     ".equ Syntaxfehler",
		".equ duplicated":                 ".equ doppelt definiert",
		"'%v' is not a number":            "'%v' ist keine Zahl",
		"$(%v) is not a valid expression": "$(%v) ist kein gültiger Ausdruck",
		"video unavailable":               "Video nicht verfügbar",
	},
	language.French: {
		"stack overflow":                  "débordement de pile",
		"stack underflow":                 "pile vide",
		"out of memory":                   "mémoire épuisée",
		"unknown opcode":                  "opcode inconnu",
		"device failure":                  "défaillance du périphérique",
		"opcode 0x%04x":                   "opcode 0x%04x",
		"pc 0x%03x %v":                    "PC 0x%03x %v",
		"line %d pc 0x%03x %v":            "ligne %d PC 0x%03x %v",
		"line %d '%v' %v":                 "ligne %d '%v' %v",
		"label %v missing":                "étiquette %v manquante",
		"rom missing":                     "ROM introuvable",
		"rom unreadable":                  "ROM illisible",
		"rom too large":                   "ROM trop grande",
		"instruction invalid":             "instruction invalide",
		"operand invalid":                 "opérande invalide",
		"register invalid":                "registre invalide",
		"value out of range":              "valeur hors limites",
		"label duplicated":                "étiquette dupliquée",
		".equ syntax":                     "syntaxe .equ",
		".equ duplicated":                 ".equ dupliqué",
		"'%v' is not a number":            "'%v' n'est pas un nombre",
		"$(%v) is not a valid expression": "$(%v) n'est pas une expression valide",
		"video unavailable":               "vidéo indisponible",
	},
}
