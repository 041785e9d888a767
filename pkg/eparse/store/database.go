package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/ukaji3/eparse-go/pkg/eparse/models"
	"github.com/ukaji3/eparse-go/pkg/eparse/parser"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// ErrUnknownColumn indicates a query on a column the excelparse table lacks.
var ErrUnknownColumn = errors.New("unknown column")

// Columns lists the excelparse columns that can be queried and filtered.
var Columns = []string{
	"id", "row", "column", "value", "type", "c_header", "r_header",
	"excel_RC", "name", "sheet", "f_name", "timestamp",
}

func isColumn(name string) bool {
	for _, c := range Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Database is an endpoint backed by the excelparse table of a SQL database.
// The connection is opened on first use.
type Database struct {
	uri       URI
	dialector func() gorm.Dialector
	memory    bool
	logger    *slog.Logger

	once sync.Once
	db   *gorm.DB
	err  error
}

func newSqlite(uri string, cfg config) (*Database, error) {
	u, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}
	if u.Name == "" {
		u.Name = filepath.Join(".files", uuid.NewString()+".db")
	}

	d := &Database{uri: u, logger: cfg.logger, memory: strings.Contains(u.Name, ":memory:")}
	d.dialector = func() gorm.Dialector { return sqlite.Open(u.Name) }
	return d, nil
}

func newPostgres(uri string, cfg config) (*Database, error) {
	u, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}
	port := u.Port
	if port == "" {
		port = "5432"
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		u.Host, u.User, u.Password, u.Name, port)

	d := &Database{uri: u, logger: cfg.logger}
	d.dialector = func() gorm.Dialector { return postgres.Open(dsn) }
	return d, nil
}

// Name returns the database name, the file path for sqlite.
func (d *Database) Name() string {
	return d.uri.Name
}

// DB returns the open connection.
func (d *Database) DB(ctx context.Context) (*gorm.DB, error) {
	d.once.Do(func() {
		if d.uri.Endpoint == "sqlite3" && !d.memory {
			if dir := filepath.Dir(d.uri.Name); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					d.err = err
					return
				}
			}
		}

		d.db, d.err = gorm.Open(d.dialector(), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if d.err != nil {
			return
		}
		if d.memory {
			// every connection to :memory: is a separate database
			sqlDB, err := d.db.DB()
			if err != nil {
				d.err = err
				return
			}
			sqlDB.SetMaxOpenConns(1)
		}
		d.logger.Debug("database opened", "endpoint", d.uri.Endpoint, "name", d.uri.Name)
	})
	if d.err != nil {
		return nil, d.err
	}
	return d.db.WithContext(ctx), nil
}

// Close closes the connection if it was opened.
func (d *Database) Close() error {
	if d.db == nil {
		return nil
	}
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Input runs method against the excelparse table. get_queryset returns the
// filtered rows; get_<column> or <column> returns one row per distinct value
// of the column with "Total Rows", "Data Types" and "Distinct Values" counts.
func (d *Database) Input(ctx context.Context, method string, filters Filters) ([]map[string]interface{}, error) {
	db, err := d.DB(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := filters.apply(db.Model(&models.ExcelParse{}))
	if err != nil {
		return nil, err
	}

	if method == "get_queryset" {
		var rows []models.ExcelParse
		if err := tx.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}}).Find(&rows).Error; err != nil {
			return nil, err
		}
		result := make([]map[string]interface{}, 0, len(rows))
		for _, r := range rows {
			result = append(result, recordRow(r))
		}
		return result, nil
	}

	column := strings.TrimPrefix(method, "get_")
	if !isColumn(column) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}
	col := clause.Column{Name: column}

	var result []map[string]interface{}
	err = tx.
		Select("?, COUNT(?) AS ?, COUNT(DISTINCT ?) AS ?, COUNT(DISTINCT ?) AS ?",
			col,
			clause.Column{Name: "id"}, clause.Column{Name: "Total Rows"},
			clause.Column{Name: "type"}, clause.Column{Name: "Data Types"},
			clause.Column{Name: "value"}, clause.Column{Name: "Distinct Values"}).
		Clauses(
			clause.GroupBy{Columns: []clause.Column{col}},
			clause.OrderBy{Columns: []clause.OrderByColumn{{Column: col}}},
		).
		Find(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Output creates the excelparse table if needed and inserts data in one
// transaction. Empty data is a no-op.
func (d *Database) Output(ctx context.Context, data interface{}) error {
	rows, err := toRows(data)
	if err != nil || len(rows) == 0 {
		return err
	}

	db, err := d.DB(ctx)
	if err != nil {
		return err
	}
	if err := db.AutoMigrate(&models.ExcelParse{}); err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(rows, 500).Error
	})
	if err != nil {
		return err
	}
	d.logger.Debug("records written", "name", d.uri.Name, "count", len(rows))
	return nil
}

// Migrate applies the named migration to the excelparse table.
func (d *Database) Migrate(ctx context.Context, name string) error {
	m, ok := migrations[name]
	if !ok {
		return fmt.Errorf("%w: there is no %s", ErrUnknownMigration, name)
	}

	db, err := d.DB(ctx)
	if err != nil {
		return err
	}
	return m(db)
}

func toRows(data interface{}) ([]models.ExcelParse, error) {
	switch v := data.(type) {
	case nil:
		return nil, nil
	case []models.ExcelParse:
		return v, nil
	case []models.SerializedCell:
		rows := make([]models.ExcelParse, 0, len(v))
		for _, rec := range v {
			rows = append(rows, models.NewExcelParse(rec))
		}
		return rows, nil
	case []map[string]interface{}:
		rows := make([]models.ExcelParse, 0, len(v))
		for _, rec := range v {
			rows = append(rows, models.NewExcelParse(parser.NormalizeRecord(rec)))
		}
		return rows, nil
	}
	return nil, ErrNotSerialized
}

func recordRow(e models.ExcelParse) map[string]interface{} {
	return map[string]interface{}{
		"id":        e.ID,
		"row":       e.Row,
		"column":    e.Column,
		"value":     e.Value,
		"type":      e.Type,
		"c_header":  e.CHeader,
		"r_header":  e.RHeader,
		"excel_RC":  e.ExcelRC,
		"name":      e.Name,
		"sheet":     e.Sheet,
		"f_name":    e.FName,
		"timestamp": e.Timestamp,
	}
}
