// Package fecha implementa una fecha de calendario pura (año, mes, día)
// sin zona horaria. Evita la clase de bugs donde un parser genérico
// interpreta "YYYY-MM-DD" como UTC y el día mostrado se corre en zonas
// con offset negativo.
package fecha

import (
	"encoding/json"
	"fmt"
	"time"
)

// Fecha representa un día de calendario. El valor cero es la fecha inválida.
type Fecha struct {
	anio int
	mes  time.Month
	dia  int
}

// Nueva construye una fecha a partir de año, mes y día. No valida rangos:
// time.Date normaliza (ej. 32 de enero = 1 de febrero); para entrada de
// usuario usar Parse, que sí rechaza fechas inexistentes.
func Nueva(anio int, mes time.Month, dia int) Fecha {
	return Fecha{anio: anio, mes: mes, dia: dia}
}

// Parse interpreta "YYYY-MM-DD" como fecha de calendario local.
// Acepta el formato extendido "YYYY-MM-DDTHH:MM:SS..." descartando la hora.
// Fechas mal formadas o inexistentes (2023-02-30) retornan el valor cero y error.
func Parse(s string) (Fecha, error) {
	if s == "" {
		return Fecha{}, fmt.Errorf("fecha vacía")
	}
	if len(s) > 10 && s[10] == 'T' {
		s = s[:10]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Fecha{}, fmt.Errorf("fecha inválida %q: %w", s, err)
	}
	return Fecha{anio: t.Year(), mes: t.Month(), dia: t.Day()}, nil
}

// DesdeTime toma solo la parte de calendario de un time.Time, en la
// zona del propio valor (para columnas DATE de PostgreSQL viene en UTC
// pero sin componente horario, así que el día no se corre).
func DesdeTime(t time.Time) Fecha {
	if t.IsZero() {
		return Fecha{}
	}
	return Fecha{anio: t.Year(), mes: t.Month(), dia: t.Day()}
}

// Hoy devuelve la fecha de calendario actual en hora local.
func Hoy() Fecha {
	return DesdeTime(time.Now())
}

// EsCero indica si la fecha es el valor cero (inválida / ausente).
func (f Fecha) EsCero() bool { return f == Fecha{} }

// Anio, Mes y Dia exponen los componentes.
func (f Fecha) Anio() int       { return f.anio }
func (f Fecha) Mes() time.Month { return f.mes }
func (f Fecha) Dia() int        { return f.dia }

// Time devuelve la medianoche local del día. Es la representación que se
// persiste en columnas DATE.
func (f Fecha) Time() time.Time {
	return time.Date(f.anio, f.mes, f.dia, 0, 0, 0, 0, time.Local)
}

// String devuelve "YYYY-MM-DD" (formato de intercambio).
func (f Fecha) String() string {
	if f.EsCero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", f.anio, int(f.mes), f.dia)
}

// Format devuelve "DD/MM/YYYY" (formato corto de presentación).
func (f Fecha) Format() string {
	if f.EsCero() {
		return ""
	}
	return fmt.Sprintf("%02d/%02d/%04d", f.dia, int(f.mes), f.anio)
}

// AddAnios suma n años de calendario. Usa la normalización de time.Date:
// 29 de febrero + 1 año = 1 de marzo del año siguiente.
func (f Fecha) AddAnios(n int) Fecha {
	t := time.Date(f.anio+n, f.mes, f.dia, 0, 0, 0, 0, time.UTC)
	return Fecha{anio: t.Year(), mes: t.Month(), dia: t.Day()}
}

// InicioMes devuelve el primer día del mes de f.
func (f Fecha) InicioMes() Fecha {
	return Fecha{anio: f.anio, mes: f.mes, dia: 1}
}

// FinMes devuelve el último día del mes de f.
func (f Fecha) FinMes() Fecha {
	t := time.Date(f.anio, f.mes+1, 0, 0, 0, 0, 0, time.UTC)
	return Fecha{anio: t.Year(), mes: t.Month(), dia: t.Day()}
}

// AddMeses suma n meses de calendario, con la misma normalización de
// time.Date que AddAnios.
func (f Fecha) AddMeses(n int) Fecha {
	t := time.Date(f.anio, f.mes+time.Month(n), f.dia, 0, 0, 0, 0, time.UTC)
	return Fecha{anio: t.Year(), mes: t.Month(), dia: t.Day()}
}

// DiasHasta devuelve los días de calendario completos entre f y otra
// (positivo si otra es posterior). Ambas fechas se tratan como medianoche,
// por lo que el resultado nunca depende de la hora del día.
func (f Fecha) DiasHasta(otra Fecha) int {
	a := time.Date(f.anio, f.mes, f.dia, 0, 0, 0, 0, time.UTC)
	b := time.Date(otra.anio, otra.mes, otra.dia, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}

// Antes reporta si f es estrictamente anterior a otra.
func (f Fecha) Antes(otra Fecha) bool {
	if f.anio != otra.anio {
		return f.anio < otra.anio
	}
	if f.mes != otra.mes {
		return f.mes < otra.mes
	}
	return f.dia < otra.dia
}

// Despues reporta si f es estrictamente posterior a otra.
func (f Fecha) Despues(otra Fecha) bool { return otra.Antes(f) }

// EnRango reporta si f está dentro de [inicio, fin], ambos inclusive.
func (f Fecha) EnRango(inicio, fin Fecha) bool {
	return !f.Antes(inicio) && !f.Despues(fin)
}

// MarshalJSON serializa como "YYYY-MM-DD"; el valor cero como null.
func (f Fecha) MarshalJSON() ([]byte, error) {
	if f.EsCero() {
		return []byte("null"), nil
	}
	return json.Marshal(f.String())
}

// UnmarshalJSON acepta "YYYY-MM-DD" (o formato extendido con hora) y null.
func (f *Fecha) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil || *s == "" {
		*f = Fecha{}
		return nil
	}
	parsed, err := Parse(*s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
