package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/repository"
)

var _ repository.PreferenciaRepository = (*PreferenciaRepo)(nil)

// PreferenciaRepo persiste las listas de valores sugeridos. Usa el pool
// directo porque Replace necesita abrir su propia transacción.
type PreferenciaRepo struct {
	pool *pgxpool.Pool
}

// NewPreferenciaRepository construye el adaptador de preferencias.
func NewPreferenciaRepository(pool *pgxpool.Pool) *PreferenciaRepo {
	return &PreferenciaRepo{pool: pool}
}

// List devuelve los valores de una lista en su orden de captura.
func (r *PreferenciaRepo) List(lista string) ([]string, error) {
	query := `SELECT valor FROM preferencias WHERE lista = $1 ORDER BY posicion`
	rows, err := r.pool.Query(context.Background(), query, lista)
	if err != nil {
		return nil, fmt.Errorf("list preferencias: %w", err)
	}
	defer rows.Close()

	valores := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan preferencia: %w", err)
		}
		valores = append(valores, v)
	}
	return valores, rows.Err()
}

// Replace reemplaza el contenido completo de la lista en una transacción:
// o queda la lista nueva entera o queda la anterior.
func (r *PreferenciaRepo) Replace(lista string, valores []string) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM preferencias WHERE lista = $1`, lista); err != nil {
		return fmt.Errorf("clear preferencias: %w", err)
	}
	for i, v := range valores {
		_, err := tx.Exec(ctx,
			`INSERT INTO preferencias (lista, valor, posicion) VALUES ($1, $2, $3)`,
			lista, v, i,
		)
		if err != nil {
			return fmt.Errorf("insert preferencia: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
