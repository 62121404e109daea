// Package llmtext contiene utilidades para limpiar texto devuelto por modelos de lenguaje.
package llmtext

import (
	"strings"
	"unicode"
)

const fence = "```"

// fenceState estados del extractor de bloques de código markdown.
type fenceState int

const (
	stateStart  fenceState = iota // texto recortado, aún sin analizar
	stateOpened                   // se consumió la cerca de apertura
	stateBody                     // cuerpo del bloque, pendiente la cerca de cierre
)

// StripFence devuelve el contenido de un bloque ```…``` que envuelve toda la respuesta.
//
//	"```json\n{...}\n```" → "{...}"
//	"```\n{...}\n```"     → "{...}"
//	"```json {...}```"    → "{...}"
//	"{...}"               → "{...}"
//
// Si el texto no empieza con una cerca se devuelve recortado, sin más cambios.
// La cerca de cierre es opcional (respuestas truncadas).
func StripFence(text string) string {
	rest := strings.TrimSpace(text)
	state := stateStart

	for {
		switch state {
		case stateStart:
			if !strings.HasPrefix(rest, fence) {
				return rest
			}
			rest = rest[len(fence):]
			state = stateOpened

		case stateOpened:
			// Etiqueta opcional: una palabra sin espacios ni llaves hasta el salto de línea.
			nl := strings.IndexByte(rest, '\n')
			switch {
			case nl >= 0 && isLanguageTag(rest[:nl]):
				rest = rest[nl+1:]
			case nl < 0 && isLanguageTag(rest):
				// "```json" sin cuerpo
				return ""
			default:
				// "```json {...}```": etiqueta y cuerpo en la misma línea.
				rest = rest[inlineTagLen(rest):]
			}
			state = stateBody

		case stateBody:
			rest = strings.TrimSpace(rest)
			if strings.HasSuffix(rest, fence) {
				rest = strings.TrimSpace(rest[:len(rest)-len(fence)])
			}
			return rest
		}
	}
}

func isLanguageTag(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	if len(s) > 20 {
		return false
	}
	return !strings.ContainsAny(s, " \t{}[]\"")
}

// inlineTagLen largo de una etiqueta pegada al cuerpo, terminada en espacio, '{' o '['.
// Devuelve 0 si el texto no empieza con una etiqueta así.
func inlineTagLen(s string) int {
	for i, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("-_+.", r):
		case i > 0 && (unicode.IsSpace(r) || r == '{' || r == '['):
			return i
		default:
			return 0
		}
	}
	return 0
}
