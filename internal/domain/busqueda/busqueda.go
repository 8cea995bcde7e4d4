// Package busqueda implementa la coincidencia de texto usada por los
// filtros de cliente, placa y ciudad. Los nombres se digitan con
// acentuación inconsistente ("Jose" vs "José"), así que la comparación es
// por subcadena, sin distinguir mayúsculas ni diacríticos.
package busqueda

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// quitarDiacriticos descompone a NFD y elimina las marcas no espaciadas
// (categoría Mn), de modo que "é" compara igual que "e".
var quitarDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizar deja el texto en minúsculas, sin espacios extremos y sin
// diacríticos.
func Normalizar(s string) string {
	limpio, _, err := transform.String(quitarDiacriticos, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		// Entrada no normalizable: comparar tal cual en minúsculas.
		return strings.ToLower(strings.TrimSpace(s))
	}
	return limpio
}

// Coincide reporta si busqueda aparece como subcadena de texto, ignorando
// mayúsculas y acentos. Una búsqueda vacía coincide con todo.
func Coincide(texto, busqueda string) bool {
	if busqueda == "" {
		return true
	}
	return strings.Contains(Normalizar(texto), Normalizar(busqueda))
}
