// seed crea el esquema y carga datos de demostración: usuario admin, tarifas
// base, un paciente con una consulta y sus transacciones cobrables.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que el API (env vars / .env).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Clinica-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Clinica-api/pkg/config"
)

// schema DDL completo del servicio. Idempotente: se puede correr varias veces.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	name          TEXT NOT NULL,
	role          TEXT NOT NULL,
	status        TEXT NOT NULL DEFAULT 'active',
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS patients (
	id         UUID PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name  TEXT NOT NULL,
	email      TEXT,
	phone      TEXT,
	gender     TEXT,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS consultations (
	id          UUID PRIMARY KEY,
	patient_id  UUID NOT NULL REFERENCES patients(id),
	doctor_name TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS service_prices (
	id         UUID PRIMARY KEY,
	kind       TEXT NOT NULL,
	name       TEXT NOT NULL UNIQUE,
	price      NUMERIC(14,2) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
	id                UUID PRIMARY KEY,
	consultation_id   UUID NOT NULL REFERENCES consultations(id),
	paying_for        TEXT NOT NULL,
	price_id          UUID REFERENCES service_prices(id),
	doctor_first_name TEXT,
	doctor_last_name  TEXT,
	scan_type         TEXT,
	test_name         TEXT,
	bed_name          TEXT,
	created_at        TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS lab_tests (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	parameters JSONB NOT NULL DEFAULT '[]',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS store_items (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	category   TEXT NOT NULL DEFAULT '',
	quantity   BIGINT NOT NULL DEFAULT 0,
	unit_cost  NUMERIC(14,2) NOT NULL DEFAULT 0,
	sale_price NUMERIC(14,2) NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS invoices (
	id                UUID PRIMARY KEY,
	consultation_id   UUID NOT NULL REFERENCES consultations(id),
	patient_id        UUID NOT NULL REFERENCES patients(id),
	status            TEXT NOT NULL,
	is_draft          BOOLEAN NOT NULL,
	issued_on         DATE,
	due_on            DATE,
	payment_datetime  TIMESTAMPTZ,
	recipient_email   TEXT,
	description       TEXT,
	additional_notes  TEXT,
	recurring_monthly BOOLEAN NOT NULL DEFAULT FALSE,
	payment_method    TEXT,
	paid_total_amount NUMERIC(14,2) NOT NULL DEFAULT 0,
	created_at        TIMESTAMPTZ NOT NULL,
	updated_at        TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS invoice_items (
	invoice_id UUID NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
	position   INT NOT NULL,
	kind       TEXT NOT NULL,
	external_ref TEXT,
	quantity   BIGINT NOT NULL,
	unit_price NUMERIC(14,2) NOT NULL,
	label      TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (invoice_id, position)
);

CREATE INDEX IF NOT EXISTS idx_invoices_consultation ON invoices(consultation_id);
CREATE INDEX IF NOT EXISTS idx_transactions_consultation ON transactions(consultation_id);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		fail("crear esquema: %v", err)
	}
	fmt.Println("esquema creado")

	now := time.Now()

	// Usuario admin de arranque (password: admin123456)
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123456"), bcrypt.DefaultCost)
	if err != nil {
		fail("hash de password: %v", err)
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, name, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'admin', 'active', $5, $5)
		ON CONFLICT (email) DO NOTHING`,
		uuid.New().String(), "admin@clinica.local", string(hash), "Administrador", now,
	)
	if err != nil {
		fail("seed usuario admin: %v", err)
	}

	// Tarifario base
	prices := []struct {
		kind, name string
		price      string
	}{
		{"consultation", "Consulta general", "50000"},
		{"consultation", "Consulta especializada", "120000"},
		{"lab", "Hemograma completo", "35000"},
		{"scan", "Radiografía de tórax", "80000"},
		{"bed", "Cama hospitalización general", "150000"},
	}
	priceIDs := make(map[string]string, len(prices))
	for _, p := range prices {
		id := uuid.New().String()
		_, err := pool.Exec(ctx, `
			INSERT INTO service_prices (id, kind, name, price, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)
			ON CONFLICT (name) DO NOTHING`,
			id, p.kind, p.name, p.price, now,
		)
		if err != nil {
			fail("seed tarifa %q: %v", p.name, err)
		}
		priceIDs[p.name] = id
	}

	// Paciente demo con una consulta y transacciones cobrables
	patientID := uuid.New().String()
	_, err = pool.Exec(ctx, `
		INSERT INTO patients (id, first_name, last_name, email, phone, gender, created_at)
		VALUES ($1, 'Ana', 'Gómez', 'ana.gomez@example.com', '3000000000', 'F', $2)`,
		patientID, now,
	)
	if err != nil {
		fail("seed paciente: %v", err)
	}

	consultationID := uuid.New().String()
	_, err = pool.Exec(ctx, `
		INSERT INTO consultations (id, patient_id, doctor_name, created_at)
		VALUES ($1, $2, 'Dr. Pérez', $3)`,
		consultationID, patientID, now,
	)
	if err != nil {
		fail("seed consulta: %v", err)
	}

	txs := []struct {
		payingFor, priceName string
		cols                 string
		args                 []interface{}
	}{
		{"consultation", "Consulta general", "doctor_first_name, doctor_last_name", []interface{}{"Carlos", "Pérez"}},
		{"scan", "Radiografía de tórax", "scan_type", []interface{}{"Radiografía de tórax"}},
		{"lab", "Hemograma completo", "test_name", []interface{}{"Hemograma completo"}},
	}
	for i, tx := range txs {
		query := fmt.Sprintf(`
			INSERT INTO transactions (id, consultation_id, paying_for, price_id, %s, created_at)
			VALUES ($1, $2, $3, $4, $5%s, $%d)`,
			tx.cols, extraPlaceholders(len(tx.args)), 5+len(tx.args),
		)
		args := append([]interface{}{
			uuid.New().String(), consultationID, tx.payingFor, priceIDs[tx.priceName],
		}, tx.args...)
		args = append(args, now.Add(time.Duration(i)*time.Minute))
		if _, err := pool.Exec(ctx, query, args...); err != nil {
			fail("seed transacción %d: %v", i, err)
		}
	}

	fmt.Println("datos de demostración cargados")
	fmt.Println("consulta demo:", consultationID)
}

// extraPlaceholders genera ", $6, $7..." para columnas variables a partir de $6.
func extraPlaceholders(n int) string {
	s := ""
	for i := 1; i < n; i++ {
		s += fmt.Sprintf(", $%d", 5+i)
	}
	return s
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
