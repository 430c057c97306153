package backup

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
	_ "github.com/jackc/pgx/v5/stdlib" // register the pgx database/sql driver
	_ "github.com/lib/pq"              // ensure postgres driver available
	_ "github.com/mattn/go-sqlite3"    // ensure sqlite driver available

	"github.com/eslsoft/vocdeck/internal/infrastructure/database/migrate"
)

const (
	defaultBatchSize = 512
	formatVersion    = 1
	metaType         = "meta"
)

var (
	errNoTablesSelected = errors.New("backup: no tables selected")
	// ErrSchemaMismatch reports a snapshot taken from a different deck store schema.
	ErrSchemaMismatch = errors.New("backup: snapshot schema does not match the deck store")
)

// ProgressReporter receives per-table progress callbacks during export.
type ProgressReporter interface {
	StartTable(table string, total int)
	Increment(table string, delta int)
	FinishTable(table string)
}

type noopProgress struct{}

func (noopProgress) StartTable(string, int) {}
func (noopProgress) Increment(string, int)  {}
func (noopProgress) FinishTable(string)     {}

// Service snapshots the deck store tables to NDJSON and replays such
// snapshots: one meta record, then one record per row.
type Service struct {
	driver     string
	dsn        string
	batchSize  int
	tables     []*schema.Table
	tableIndex map[string]*schema.Table
	schemaHash string
}

type Option func(*Service)

func WithBatchSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.batchSize = size
		}
	}
}

// NewService constructs a snapshot service bound to the provided database driver and DSN.
func NewService(driver, dsn string, opts ...Option) (*Service, error) {
	driver = strings.TrimSpace(strings.ToLower(driver))
	if driver == "" {
		return nil, errors.New("backup: driver is required")
	}
	if !isPostgres(driver) && !isSQLite(driver) {
		return nil, fmt.Errorf("backup: unsupported driver %q", driver)
	}
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, errors.New("backup: DSN is required")
	}

	tables, err := schema.CopyTables(migrate.Tables)
	if err != nil {
		return nil, fmt.Errorf("copy deck schema tables: %w", err)
	}
	slices.SortFunc(tables, func(a, b *schema.Table) int { return strings.Compare(a.Name, b.Name) })
	tableIndex := make(map[string]*schema.Table, len(tables))
	for _, tbl := range tables {
		tableIndex[tbl.Name] = tbl
	}

	svc := &Service{
		driver:     driver,
		dsn:        dsn,
		batchSize:  defaultBatchSize,
		tables:     tables,
		tableIndex: tableIndex,
		schemaHash: computeSchemaHash(tables),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

type ExportOption func(*exportConfig)

type exportConfig struct {
	tables   []string
	reporter ProgressReporter
}

// WithTables restricts export to the provided table names.
func WithTables(tables []string) ExportOption {
	return func(cfg *exportConfig) {
		if len(tables) == 0 {
			return
		}
		cfg.tables = append([]string{}, tables...)
	}
}

// WithProgressReporter registers a reporter that receives progress callbacks during export.
func WithProgressReporter(reporter ProgressReporter) ExportOption {
	return func(cfg *exportConfig) {
		cfg.reporter = reporter
	}
}

type ImportOption func(*importConfig)

type importConfig struct {
	tables      []string
	allowDrift  bool
	keepRecords bool
}

// WithImportTables restricts import to the provided table names.
func WithImportTables(tables []string) ImportOption {
	return func(cfg *importConfig) {
		if len(tables) == 0 {
			return
		}
		cfg.tables = append([]string{}, tables...)
	}
}

// WithSchemaDrift accepts snapshots whose schema hash differs from the store's.
func WithSchemaDrift() ImportOption {
	return func(cfg *importConfig) {
		cfg.allowDrift = true
	}
}

// WithMerge upserts snapshot rows into the existing tables instead of
// replacing their content.
func WithMerge() ImportOption {
	return func(cfg *importConfig) {
		cfg.keepRecords = true
	}
}

type record struct {
	Type          string         `json:"type"`
	Version       int            `json:"version,omitempty"`
	ExportedAt    *time.Time     `json:"exported_at,omitempty"`
	EntSchemaHash string         `json:"ent_schema_hash,omitempty"`
	Tables        []string       `json:"tables,omitempty"`
	RowCounts     map[string]int `json:"row_counts,omitempty"`
	Payload       any            `json:"payload,omitempty"`
}

type rawRecord struct {
	Type          string          `json:"type"`
	Version       int             `json:"version"`
	ExportedAt    *time.Time      `json:"exported_at"`
	EntSchemaHash string          `json:"ent_schema_hash"`
	Tables        []string        `json:"tables"`
	RowCounts     map[string]int  `json:"row_counts"`
	Payload       json.RawMessage `json:"payload"`
}

type sequenceKey struct {
	Table  string
	Column string
}

type sequenceStats map[sequenceKey]int64

// Export writes the meta record followed by every row of the selected tables.
func (s *Service) Export(ctx context.Context, w io.Writer, opts ...ExportOption) error {
	cfg := exportConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	tables, err := s.selectTables(cfg.tables)
	if err != nil {
		return err
	}
	reporter := cfg.reporter
	if reporter == nil {
		reporter = noopProgress{}
	}

	db, err := s.openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	counts := make(map[string]int, len(tables))
	for _, tbl := range tables {
		count, err := s.countTableRows(ctx, db, tbl.Name)
		if err != nil {
			return fmt.Errorf("count table %s: %w", tbl.Name, err)
		}
		counts[tbl.Name] = count
	}

	writer := bufio.NewWriter(w)
	defer writer.Flush()

	now := time.Now().UTC()
	meta := record{
		Type:          metaType,
		Version:       formatVersion,
		ExportedAt:    &now,
		EntSchemaHash: s.schemaHash,
		Tables:        tableNames(tables),
		RowCounts:     counts,
	}
	if err := writeRecord(writer, meta); err != nil {
		return err
	}

	for _, tbl := range tables {
		reporter.StartTable(tbl.Name, counts[tbl.Name])
		if err := s.exportTable(ctx, db, tbl, reporter, writer); err != nil {
			return err
		}
		reporter.FinishTable(tbl.Name)
	}
	return writer.Flush()
}

// Import validates the leading meta record and replays the rows in one
// transaction. Tables named by the snapshot are cleared first unless WithMerge is set.
func (s *Service) Import(ctx context.Context, r io.Reader, opts ...ImportOption) error {
	cfg := importConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	tables, err := s.selectTables(cfg.tables)
	if err != nil {
		return err
	}
	tableFilter := make(map[string]*schema.Table, len(tables))
	for _, tbl := range tables {
		tableFilter[tbl.Name] = tbl
	}

	db, err := s.openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	commit := false
	defer func() {
		if !commit {
			_ = tx.Rollback()
		}
	}()

	br := bufio.NewReader(r)
	var (
		metaSeen bool
		imported = make(map[string]int)
		stats    = make(sequenceStats)
	)

	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read backup: %w", err)
		}
		line = bytes.TrimSpace(line)
		if len(line) > 0 {
			var rec rawRecord
			if err := json.Unmarshal(line, &rec); err != nil {
				return fmt.Errorf("decode record on line %d: %w", lineNo, err)
			}

			switch {
			case rec.Type == metaType:
				if metaSeen {
					return fmt.Errorf("backup: duplicate meta record on line %d", lineNo)
				}
				if err := s.checkMeta(rec, cfg); err != nil {
					return err
				}
				metaSeen = true
				if !cfg.keepRecords {
					if err := s.clearTables(ctx, tx, rec.Tables, tableFilter); err != nil {
						return err
					}
				}
			case !metaSeen:
				return errors.New("backup: meta record must come first")
			default:
				tbl, ok := tableFilter[rec.Type]
				if !ok {
					// Skip records for tables not requested.
					break
				}
				if len(rec.Payload) == 0 {
					return fmt.Errorf("backup: missing payload for table %s", rec.Type)
				}
				if err := s.importRow(ctx, tx, tbl, rec.Payload, stats); err != nil {
					return err
				}
				imported[tbl.Name]++
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
	}

	if !metaSeen {
		return errors.New("backup: missing meta record")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	commit = true

	return s.syncSequences(ctx, db, stats)
}

func (s *Service) checkMeta(meta rawRecord, cfg importConfig) error {
	if meta.Version != formatVersion {
		return fmt.Errorf("backup: unsupported format version %d", meta.Version)
	}
	if meta.EntSchemaHash != s.schemaHash && !cfg.allowDrift {
		return ErrSchemaMismatch
	}
	for _, name := range meta.Tables {
		if _, ok := s.tableIndex[name]; !ok {
			return fmt.Errorf("backup: snapshot references unknown table %q", name)
		}
	}
	return nil
}

func (s *Service) clearTables(ctx context.Context, tx *sql.Tx, names []string, filter map[string]*schema.Table) error {
	for _, name := range names {
		if _, ok := filter[name]; !ok {
			continue
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+name); err != nil {
			return fmt.Errorf("clear %s: %w", name, err)
		}
	}
	return nil
}

func (s *Service) exportTable(ctx context.Context, db *sql.DB, table *schema.Table, reporter ProgressReporter, w io.Writer) error {
	columns := columnNames(table)
	if len(columns) == 0 {
		return nil
	}
	orderBy := buildOrderByClause(table)
	batch := s.batchSize
	if batch <= 0 {
		batch = defaultBatchSize
	}

	for offset := 0; ; offset += batch {
		query := fmt.Sprintf("SELECT %s FROM %s%s LIMIT %d OFFSET %d",
			strings.Join(columns, ", "),
			table.Name,
			orderBy,
			batch,
			offset,
		)
		rows, err := db.QueryContext(ctx, query)
		if err != nil {
			return fmt.Errorf("query %s: %w", table.Name, err)
		}

		rowCount := 0
		for rows.Next() {
			values := make([]any, len(columns))
			dest := make([]any, len(columns))
			for i := range dest {
				dest[i] = &values[i]
			}
			if err := rows.Scan(dest...); err != nil {
				rows.Close()
				return fmt.Errorf("scan %s: %w", table.Name, err)
			}
			rowMap, err := convertRow(table, values)
			if err != nil {
				rows.Close()
				return err
			}
			if err := writeRecord(w, record{Type: table.Name, Payload: rowMap}); err != nil {
				rows.Close()
				return err
			}
			reporter.Increment(table.Name, 1)
			rowCount++
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return fmt.Errorf("iterate %s: %w", table.Name, err)
		}
		rows.Close()
		if rowCount < batch {
			break
		}
	}
	return nil
}

func (s *Service) importRow(ctx context.Context, tx *sql.Tx, table *schema.Table, payload json.RawMessage, stats sequenceStats) error {
	values, err := decodePayload(table, payload)
	if err != nil {
		return fmt.Errorf("decode payload for %s: %w", table.Name, err)
	}
	if len(values) == 0 {
		return nil
	}

	cols := make([]string, 0, len(values))
	args := make([]any, 0, len(values))
	for _, col := range table.Columns {
		val, ok := values[col.Name]
		if !ok {
			continue
		}
		if val == nil && !col.Nullable {
			def, ok := zeroValue(col)
			if !ok {
				return fmt.Errorf("backup: missing required value for %s.%s", table.Name, col.Name)
			}
			val = def
		}
		cols = append(cols, col.Name)
		args = append(args, val)
		if col.Increment {
			if id, ok := val.(int64); ok && id > stats[sequenceKey{Table: table.Name, Column: col.Name}] {
				stats[sequenceKey{Table: table.Name, Column: col.Name}] = id
			}
		}
	}

	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)%s",
		table.Name,
		strings.Join(cols, ", "),
		strings.Join(buildPlaceholders(s.driver, len(cols)), ", "),
		buildUpsertClause(table, cols),
	)
	if _, err := tx.ExecContext(ctx, insert, args...); err != nil {
		return fmt.Errorf("insert into %s: %w", table.Name, err)
	}
	return nil
}

func (s *Service) selectTables(requested []string) ([]*schema.Table, error) {
	if len(requested) == 0 {
		return slices.Clone(s.tables), nil
	}
	set := make(map[string]struct{}, len(requested))
	for _, name := range requested {
		n := strings.TrimSpace(strings.ToLower(name))
		if n == "" {
			continue
		}
		if _, ok := s.tableIndex[n]; !ok {
			return nil, fmt.Errorf("backup: unsupported table %q", name)
		}
		set[n] = struct{}{}
	}
	if len(set) == 0 {
		return nil, errNoTablesSelected
	}
	tbls := make([]*schema.Table, 0, len(set))
	for _, tbl := range s.tables {
		if _, ok := set[tbl.Name]; ok {
			tbls = append(tbls, tbl)
		}
	}
	return tbls, nil
}

func (s *Service) openDB(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open(s.driver, s.dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if isSQLite(s.driver) {
		db.SetMaxOpenConns(1)
		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable sqlite foreign keys: %w", err)
		}
	}
	return db, nil
}

func (s *Service) countTableRows(ctx context.Context, db *sql.DB, table string) (int, error) {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Service) syncSequences(ctx context.Context, db *sql.DB, stats sequenceStats) error {
	if len(stats) == 0 || !isPostgres(s.driver) {
		return nil
	}
	for key, maxVal := range stats {
		if maxVal <= 0 {
			continue
		}
		query := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%s', '%s'), GREATEST(%d, (SELECT COALESCE(MAX(%s), 0) FROM %s)))",
			key.Table,
			key.Column,
			maxVal,
			key.Column,
			key.Table,
		)
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("sync sequence for %s.%s: %w", key.Table, key.Column, err)
		}
	}
	return nil
}

func isPostgres(driver string) bool {
	return driver == "postgres" || driver == "postgresql" || driver == "pgx"
}

func isSQLite(driver string) bool {
	return driver == "sqlite3" || driver == "sqlite"
}

func buildPlaceholders(driver string, count int) []string {
	holders := make([]string, count)
	for i := range holders {
		if isPostgres(driver) {
			holders[i] = "$" + strconv.Itoa(i+1)
		} else {
			holders[i] = "?"
		}
	}
	return holders
}

// buildUpsertClause uses the ON CONFLICT form shared by PostgreSQL and sqlite.
func buildUpsertClause(table *schema.Table, insertCols []string) string {
	conflictCols := conflictColumns(table)
	if len(conflictCols) == 0 {
		return ""
	}
	var assignments []string
	for _, col := range insertCols {
		if !slices.Contains(conflictCols, col) {
			assignments = append(assignments, fmt.Sprintf("%s = excluded.%s", col, col))
		}
	}
	if len(assignments) == 0 {
		return fmt.Sprintf(" ON CONFLICT (%s) DO NOTHING", strings.Join(conflictCols, ", "))
	}
	return fmt.Sprintf(" ON CONFLICT (%s) DO UPDATE SET %s",
		strings.Join(conflictCols, ", "),
		strings.Join(assignments, ", "),
	)
}

func conflictColumns(table *schema.Table) []string {
	cols := make([]string, len(table.PrimaryKey))
	for i, col := range table.PrimaryKey {
		cols[i] = col.Name
	}
	return cols
}

func buildOrderByClause(table *schema.Table) string {
	cols := conflictColumns(table)
	if len(cols) == 0 {
		cols = columnNames(table)
	}
	if len(cols) == 0 {
		return ""
	}
	return " ORDER BY " + strings.Join(cols, ", ")
}

func columnNames(table *schema.Table) []string {
	cols := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		cols[i] = col.Name
	}
	return cols
}

func tableNames(tables []*schema.Table) []string {
	names := make([]string, len(tables))
	for i, tbl := range tables {
		names[i] = tbl.Name
	}
	return names
}

func findColumn(table *schema.Table, name string) *schema.Column {
	for _, col := range table.Columns {
		if col.Name == name {
			return col
		}
	}
	return nil
}

func computeSchemaHash(tables []*schema.Table) string {
	builder := &strings.Builder{}
	for _, tbl := range tables {
		builder.WriteString(tbl.Name)
		builder.WriteString("|cols:")
		cols := slices.Clone(tbl.Columns)
		slices.SortFunc(cols, func(a, b *schema.Column) int { return strings.Compare(a.Name, b.Name) })
		for _, col := range cols {
			fmt.Fprintf(builder, "%s:%d:%t:%t:%t;", col.Name, col.Type, col.Nullable, col.Unique, col.Increment)
		}
		builder.WriteString("|pk:")
		for _, pk := range tbl.PrimaryKey {
			builder.WriteString(pk.Name)
			builder.WriteByte(',')
		}
		builder.WriteByte('\n')
	}
	sum := sha256.Sum256([]byte(builder.String()))
	return fmt.Sprintf("%x", sum[:])
}

func writeRecord(w io.Writer, rec record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return err
	}
	return nil
}

func convertRow(table *schema.Table, values []any) (map[string]any, error) {
	result := make(map[string]any, len(values))
	for idx, col := range table.Columns {
		val, err := convertDBValue(col, values[idx])
		if err != nil {
			return nil, fmt.Errorf("convert %s.%s: %w", table.Name, col.Name, err)
		}
		result[col.Name] = val
	}
	return result, nil
}

func convertDBValue(col *schema.Column, value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	// database/sql often returns []byte for text columns.
	if b, ok := value.([]byte); ok {
		value = string(b)
	}
	return convertValue(col, value)
}

func decodePayload(table *schema.Table, payload json.RawMessage) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	result := make(map[string]any, len(raw))
	for key, val := range raw {
		col := findColumn(table, key)
		if col == nil {
			return nil, fmt.Errorf("column %s not found in table %s", key, table.Name)
		}
		if val == nil {
			result[key] = nil
			continue
		}
		converted, err := convertValue(col, val)
		if err != nil {
			return nil, fmt.Errorf("convert %s.%s: %w", table.Name, key, err)
		}
		result[key] = converted
	}
	return result, nil
}

// convertValue normalizes a scanned or decoded value to the column's Go type.
func convertValue(col *schema.Column, value any) (any, error) {
	switch col.Type {
	case field.TypeInt8, field.TypeInt16, field.TypeInt32, field.TypeInt, field.TypeInt64:
		return toInt64(value)
	case field.TypeFloat32, field.TypeFloat64:
		return toFloat64(value)
	case field.TypeString:
		return toString(value), nil
	default:
		return value, nil
	}
}

func zeroValue(col *schema.Column) (any, bool) {
	switch col.Type {
	case field.TypeString:
		return "", true
	case field.TypeInt, field.TypeInt8, field.TypeInt16, field.TypeInt32, field.TypeInt64,
		field.TypeFloat32, field.TypeFloat64:
		return 0, true
	default:
		return nil, false
	}
}

func toInt64(value any) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case json.Number:
		return v.Int64()
	case float64:
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unsupported int type %T", value)
	}
}

func toFloat64(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case int64:
		return float64(v), nil
	case int:
		return float64(v), nil
	case string:
		return strconv.ParseFloat(v, 64)
	default:
		return 0, fmt.Errorf("unsupported float type %T", value)
	}
}

func toString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(value)
	}
}
