package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/tsolutions/site/internal/platform/errors"
	siteotel "github.com/tsolutions/site/internal/platform/otel"
	"github.com/tsolutions/site/internal/services/site/resource"
	"github.com/tsolutions/site/internal/services/site/storage"
)

// Store implements storage.Store for one resource kind.
type Store struct {
	db   *sqlx.DB
	kind *resource.Kind

	listSQL   string
	getSQL    string
	insertSQL string
	updateSQL string
	deleteSQL string
}

var _ storage.Store = (*Store)(nil)

func newStore(db *sqlx.DB, kind *resource.Kind) *Store {
	columns := kind.Columns()
	selectCols := "id, " + strings.Join(columns, ", ")
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	assignments := make([]string, 0, len(columns))
	for _, column := range columns {
		assignments = append(assignments, column+" = ?")
	}

	return &Store{
		db:        db,
		kind:      kind,
		listSQL:   db.Rebind(fmt.Sprintf("SELECT %s FROM %s ORDER BY id", selectCols, kind.Table)),
		getSQL:    db.Rebind(fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", selectCols, kind.Table)),
		insertSQL: db.Rebind(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id", kind.Table, strings.Join(columns, ", "), placeholders)),
		updateSQL: db.Rebind(fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", kind.Table, strings.Join(assignments, ", "))),
		deleteSQL: db.Rebind(fmt.Sprintf("DELETE FROM %s WHERE id = ?", kind.Table)),
	}
}

// List returns every record ordered by id.
func (s *Store) List(ctx context.Context) (records []storage.Record, err error) {
	ctx, span := s.startSpan(ctx, "list")
	defer func() { endSpan(span, err) }()

	rows, err := s.db.QueryxContext(ctx, s.listSQL)
	if err != nil {
		return nil, s.failure("list", err)
	}
	defer rows.Close()

	for rows.Next() {
		row := map[string]any{}
		if err := rows.MapScan(row); err != nil {
			return nil, s.failure("scan", err)
		}
		records = append(records, s.toRecord(row))
	}
	if err := rows.Err(); err != nil {
		return nil, s.failure("iterate", err)
	}
	span.SetAttributes(attribute.Int("site.records", len(records)))
	return records, nil
}

// Get returns the record with id or storage.ErrNotFound.
func (s *Store) Get(ctx context.Context, id int64) (record storage.Record, err error) {
	ctx, span := s.startSpan(ctx, "get", attribute.Int64("site.record_id", id))
	defer func() { endSpan(span, err) }()

	row := map[string]any{}
	if err := s.db.QueryRowxContext(ctx, s.getSQL, id).MapScan(row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Record{}, storage.ErrNotFound
		}
		return storage.Record{}, s.failure("get", err)
	}
	return s.toRecord(row), nil
}

// Create inserts values and returns the assigned id.
func (s *Store) Create(ctx context.Context, values storage.Values) (id int64, err error) {
	ctx, span := s.startSpan(ctx, "create")
	defer func() { endSpan(span, err) }()

	if err := s.db.QueryRowxContext(ctx, s.insertSQL, s.args(values)...).Scan(&id); err != nil {
		return 0, s.failure("create", err)
	}
	span.SetAttributes(attribute.Int64("site.record_id", id))
	return id, nil
}

// Update replaces every field of record id. A missing id is not an error.
func (s *Store) Update(ctx context.Context, id int64, values storage.Values) (err error) {
	ctx, span := s.startSpan(ctx, "update", attribute.Int64("site.record_id", id))
	defer func() { endSpan(span, err) }()

	args := append(s.args(values), id)
	if _, err := s.db.ExecContext(ctx, s.updateSQL, args...); err != nil {
		return s.failure("update", err)
	}
	return nil
}

// Delete removes record id. A missing id is not an error.
func (s *Store) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "delete", attribute.Int64("site.record_id", id))
	defer func() { endSpan(span, err) }()

	if _, err := s.db.ExecContext(ctx, s.deleteSQL, id); err != nil {
		return s.failure("delete", err)
	}
	return nil
}

func (s *Store) args(values storage.Values) []any {
	args := make([]any, 0, len(s.kind.Fields)+1)
	for _, field := range s.kind.Fields {
		raw := values.Get(field.Name)
		if field.Type == resource.FieldInteger {
			if n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil {
				args = append(args, n)
				continue
			}
		}
		args = append(args, raw)
	}
	return args
}

func (s *Store) toRecord(row map[string]any) storage.Record {
	record := storage.Record{Values: make(storage.Values, len(s.kind.Fields))}
	if id, ok := row["id"]; ok {
		record.ID, _ = strconv.ParseInt(columnString(id), 10, 64)
	}
	for _, field := range s.kind.Fields {
		record.Values[field.Name] = columnString(row[field.Name])
	}
	return record
}

// columnString renders a scanned column. NULL reads as "".
func columnString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func (s *Store) failure(op string, err error) error {
	return apperrors.Wrap(apperrors.CodeStoreFailure, op+" "+s.kind.Name, err)
}

func (s *Store) startSpan(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs,
		attribute.String("db.system", s.db.DriverName()),
		attribute.String("db.sql.table", s.kind.Table),
	)
	return siteotel.Tracer().Start(ctx, "sqlstore."+op, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
