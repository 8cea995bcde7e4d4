package repository

// Listas de preferencias soportadas (valores libres que el formulario
// ofrece como sugerencias).
const (
	ListaComercializadoras = "comercializadoras"
	ListaColores           = "colores"
)

// PreferenciaRepository persiste las listas de valores sugeridos
// (comercializadoras, colores de vehículo).
type PreferenciaRepository interface {
	List(lista string) ([]string, error)
	// Replace reemplaza el contenido completo de la lista.
	Replace(lista string, valores []string) error
}
