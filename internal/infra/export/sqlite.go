package export

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/locarlabs/datajud/internal/core/domain"
)

// SQLiteSink writes the record set into an embedded SQLite database,
// replacing the processos table on every run.
type SQLiteSink struct {
	Path string
}

func (SQLiteSink) Name() string { return "sqlite" }

const sqliteSchema = `
DROP TABLE IF EXISTS processos;
CREATE TABLE processos (
	cnj               TEXT,
	tribunal          TEXT,
	grau              TEXT,
	classe            TEXT,
	assunto           TEXT,
	orgao             TEXT,
	status            TEXT,
	partes            TEXT,
	dt_distribuicao   TEXT,
	qtd_movimentos    INTEGER,
	prazos_relevantes TEXT,
	resumo_decisao    TEXT,
	fase_execucao     TEXT
);
`

const sqliteInsert = `
INSERT INTO processos (
	cnj, tribunal, grau, classe, assunto, orgao, status, partes,
	dt_distribuicao, qtd_movimentos, prazos_relevantes, resumo_decisao, fase_execucao
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

func (s SQLiteSink) Write(ctx context.Context, records []domain.CaseRecord) error {
	db, err := sqlx.ConnectContext(ctx, "sqlite3", s.Path)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, sqliteInsert)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		vals := rowValues(r)
		args := make([]any, len(vals))
		for i, v := range vals {
			args[i] = v
		}
		// qtd_movimentos stays numeric in the table.
		args[9] = r.MovementCount

		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert record %s: %w", r.CaseID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
