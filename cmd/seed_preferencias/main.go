// seed_preferencias genera un script SQL para poblar las listas de
// preferencias del formulario (comercializadoras y colores de vehículo)
// a partir de un CSV exportado del sistema anterior.
//
// Uso: go run ./cmd/seed_preferencias [ruta/preferencias.csv]
// Por defecto busca preferencias.csv en el directorio actual.
// El CSV viene en ISO-8859-1 con columnas: lista,valor
// Escribe: migrations/002_seed_preferencias.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var listasConocidas = map[string]bool{
	"comercializadoras": true,
	"colores":           true,
}

func main() {
	csvPath := "preferencias.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// El export del sistema anterior sale en latin-1, no en UTF-8.
	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.FieldsPerRecord = 2
	registros, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	// Agrupar por lista preservando el orden del archivo; los duplicados
	// dentro de una lista se descartan.
	valores := make(map[string][]string)
	vistos := make(map[string]bool)
	for i, reg := range registros {
		lista := strings.TrimSpace(strings.ToLower(reg[0]))
		valor := strings.TrimSpace(reg[1])
		if i == 0 && lista == "lista" {
			continue // encabezado
		}
		if !listasConocidas[lista] {
			fmt.Fprintf(os.Stderr, "Fila %d: lista desconocida %q, se omite\n", i+1, reg[0])
			continue
		}
		if valor == "" || vistos[lista+"|"+valor] {
			continue
		}
		vistos[lista+"|"+valor] = true
		valores[lista] = append(valores[lista], valor)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "migrations", "002_seed_preferencias.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Listas de preferencias del formulario de facturas\n")
	out.WriteString("-- Generado desde preferencias.csv\n\n")

	total := 0
	for _, lista := range []string{"comercializadoras", "colores"} {
		vs := valores[lista]
		if len(vs) == 0 {
			continue
		}
		fmt.Fprintf(out, "DELETE FROM preferencias WHERE lista = '%s';\n", lista)
		out.WriteString("INSERT INTO preferencias (lista, valor, posicion) VALUES\n")
		for i, v := range vs {
			sep := ","
			if i == len(vs)-1 {
				sep = ";"
			}
			fmt.Fprintf(out, "  ('%s', '%s', %d)%s\n", lista, escapeSQL(v), i, sep)
		}
		out.WriteString("\n")
		total += len(vs)
	}

	fmt.Printf("Generado %s: %d valores\n", outPath, total)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
