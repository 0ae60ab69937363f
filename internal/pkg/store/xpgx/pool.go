package xpgx

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the query surface the store works against: squirrel queries in,
// db-tagged structs out.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Execx(ctx context.Context, query squirrel.Sqlizer) (pgconn.CommandTag, error)
	Getx(ctx context.Context, dest interface{}, query squirrel.Sqlizer) error
	Selectx(ctx context.Context, dest interface{}, query squirrel.Sqlizer) error
	Close()
}

type pool struct {
	*pgxpool.Pool
}

func NewPool(ctx context.Context, dsn string) (Pool, error) {
	p, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	if err = p.Ping(ctx); err != nil {
		return nil, fmt.Errorf("pool.Ping: %w", err)
	}

	return &pool{p}, nil
}

func (p *pool) Execx(ctx context.Context, query squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("query.ToSql: %w", err)
	}

	return p.Exec(ctx, sql, args...)
}

// Getx scans a single row into dest, a pointer to a db-tagged struct.
// Returns pgx.ErrNoRows when the query matches nothing.
func (p *pool) Getx(ctx context.Context, dest interface{}, query squirrel.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("query.ToSql: %w", err)
	}

	rows, err := p.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		if rows.Err() != nil {
			return rows.Err()
		}
		return pgx.ErrNoRows
	}

	if err = scanRow(rows, reflect.ValueOf(dest).Elem()); err != nil {
		return err
	}

	return rows.Err()
}

// Selectx scans all rows into dest, a pointer to a slice of structs or
// struct pointers.
func (p *pool) Selectx(ctx context.Context, dest interface{}, query squirrel.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("query.ToSql: %w", err)
	}

	rows, err := p.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	sliceVal := reflect.ValueOf(dest).Elem()
	elemType := sliceVal.Type().Elem()
	isPtr := elemType.Kind() == reflect.Ptr
	if isPtr {
		elemType = elemType.Elem()
	}

	for rows.Next() {
		item := reflect.New(elemType)
		if err = scanRow(rows, item.Elem()); err != nil {
			return err
		}
		if isPtr {
			sliceVal.Set(reflect.Append(sliceVal, item))
		} else {
			sliceVal.Set(reflect.Append(sliceVal, item.Elem()))
		}
	}

	return rows.Err()
}

// scanRow maps result columns onto struct fields by `db` tag (or
// lowercased field name); columns without a matching field are discarded.
func scanRow(rows pgx.Rows, structVal reflect.Value) error {
	structType := structVal.Type()

	fieldByColumn := make(map[string]reflect.Value, structType.NumField())
	collectFields(structVal, fieldByColumn)

	descs := rows.FieldDescriptions()
	targets := make([]interface{}, len(descs))
	for i, desc := range descs {
		if field, ok := fieldByColumn[desc.Name]; ok {
			targets[i] = field.Addr().Interface()
		} else {
			targets[i] = new(interface{})
		}
	}

	return rows.Scan(targets...)
}

func collectFields(structVal reflect.Value, out map[string]reflect.Value) {
	structType := structVal.Type()
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			collectFields(structVal.Field(i), out)
			continue
		}

		tag := field.Tag.Get("db")
		if tag == "-" {
			continue
		}
		if tag == "" {
			tag = strings.ToLower(field.Name)
		}
		out[tag] = structVal.Field(i)
	}
}
