package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// Queries wraps the statements in query.sql.
type Queries struct {
	db DBTX
}

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type SettingsRow struct {
	Keyboard     string
	DefaultLayer int64
	Nkro         bool
	SwapAltGui   bool
	Audio        bool
}

const getSettings = `
select keyboard, default_layer, nkro, swap_alt_gui, audio
from settings
where keyboard = ?`

func (q *Queries) GetSettings(ctx context.Context, keyboard string) (SettingsRow, error) {
	row := q.db.QueryRowContext(ctx, getSettings, keyboard)
	var i SettingsRow
	err := row.Scan(&i.Keyboard, &i.DefaultLayer, &i.Nkro, &i.SwapAltGui, &i.Audio)
	return i, err
}

const upsertSettings = `
insert into settings (keyboard, default_layer, nkro, swap_alt_gui, audio)
values (?, ?, ?, ?, ?)
on conflict (keyboard) do update set
    default_layer = excluded.default_layer,
    nkro          = excluded.nkro,
    swap_alt_gui  = excluded.swap_alt_gui,
    audio         = excluded.audio`

type UpsertSettingsParams SettingsRow

func (q *Queries) UpsertSettings(ctx context.Context, arg UpsertSettingsParams) error {
	_, err := q.db.ExecContext(ctx, upsertSettings,
		arg.Keyboard,
		arg.DefaultLayer,
		arg.Nkro,
		arg.SwapAltGui,
		arg.Audio,
	)
	return err
}

const dumpTables = `select sql from sqlite_master where type = 'table' and sql is not null order by name`

func (q *Queries) DumpTables(ctx context.Context) ([]*string, error) {
	return q.dump(ctx, dumpTables)
}

const dumpRest = `select sql from sqlite_master where type != 'table' and sql is not null order by name`

func (q *Queries) DumpRest(ctx context.Context) ([]*string, error) {
	return q.dump(ctx, dumpRest)
}

func (q *Queries) dump(ctx context.Context, query string) ([]*string, error) {
	rows, err := q.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*string
	for rows.Next() {
		var statement sql.NullString
		if err := rows.Scan(&statement); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		if statement.Valid {
			items = append(items, &statement.String)
		} else {
			items = append(items, nil)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
