package store

import (
	"errors"
	"sort"

	"github.com/ukaji3/eparse-go/pkg/eparse/models"
	"gorm.io/gorm"
)

// ErrUnknownMigration indicates a migration name that is not registered.
var ErrUnknownMigration = errors.New("migration error")

type migration func(db *gorm.DB) error

var migrations = map[string]migration{
	"migration_000102_000200": migration000102000200,
}

// Migrations returns the registered migration names in order.
func Migrations() []string {
	names := make([]string, 0, len(migrations))
	for name := range migrations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// migration000102000200 upgrades a 0.1.2 excelparse table: it adds the
// timestamp column and the lookup indexes.
func migration000102000200(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		m := tx.Migrator()
		model := &models.ExcelParse{}

		if err := m.AddColumn(model, "Timestamp"); err != nil {
			return err
		}
		for _, idx := range []string{
			"idx_excelparse_c_header",
			"idx_excelparse_r_header",
			"idx_excelparse_excel_rc",
			"idx_excelparse_name",
			"idx_excelparse_sheet",
			"idx_excelparse_f_name",
			"excelparse_f_name_sheet_name",
		} {
			if err := m.CreateIndex(model, idx); err != nil {
				return err
			}
		}
		return nil
	})
}
