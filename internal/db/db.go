package db

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

type DB struct {
	*sqlx.DB
}

func Open(dsn string) (*DB, error) {
	xdb, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	xdb.SetMaxOpenConns(25)
	xdb.SetMaxIdleConns(25)
	xdb.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := xdb.PingContext(ctx); err != nil {
		_ = xdb.Close()
		return nil, err
	}
	return &DB{DB: xdb}, nil
}

func (d *DB) Close() error { return d.DB.Close() }

// Reservation is the single persisted entity: one booked event slot with
// customer and payment metadata. Field constraints are enforced at write
// time by the handlers, not by the schema.
type Reservation struct {
	ID                int64   `db:"id" json:"id"`
	Apellidos         string  `db:"apellidos" json:"apellidos"`
	Nombres           string  `db:"nombres" json:"nombres"`
	Email             string  `db:"email" json:"email"`
	Telefono          string  `db:"telefono" json:"telefono"`
	TipoEvento        string  `db:"tipo_evento" json:"tipo_evento"`
	PlanEvento        string  `db:"plan_evento" json:"plan_evento"`
	CantidadAnticipo  float64 `db:"cantidad_anticipo" json:"cantidad_anticipo"`
	ServicioAdicional string  `db:"servicio_adicional" json:"servicio_adicional"`
	HorasRenta        string  `db:"horas_renta" json:"horas_renta"`
	CompromisoPago    bool    `db:"compromiso_pago" json:"compromiso_pago"`
}

// EnsureSchema creates the reservas table if it does not exist yet.
func EnsureSchema(d *DB) error {
	return d.ensureSchema(context.Background())
}

// Dev-time schema (inline DDL)

func (d *DB) ensureSchema(ctx context.Context) error {
	const stmt = `CREATE TABLE IF NOT EXISTS reservas (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		apellidos VARCHAR(27) NOT NULL,
		nombres VARCHAR(20) NOT NULL,
		email VARCHAR(255) NOT NULL,
		telefono VARCHAR(10) NOT NULL,
		tipo_evento VARCHAR(10) NOT NULL,
		plan_evento VARCHAR(16) NOT NULL,
		cantidad_anticipo DECIMAL(10,2) NOT NULL,
		servicio_adicional TEXT NULL,
		horas_renta VARCHAR(2) NOT NULL,
		compromiso_pago TINYINT(1) NOT NULL DEFAULT 0
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`

	if _, err := d.DB.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}
