package store

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TreeRecord names a stored tree.
type TreeRecord struct {
	TreeName  string `gorm:"primaryKey"`
	NodeCount int
}

func (TreeRecord) TableName() string { return "trees" }

// NodeRecord stores one node of a tree, keyed by its index path.
type NodeRecord struct {
	TreeName string `gorm:"primaryKey;index"`
	NodePath string `gorm:"primaryKey"`
	Depth    int
	Name     string
	Options  string // JSON object
}

func (NodeRecord) TableName() string { return "tree_nodes" }

// getMigrations returns the list of migrations for the tree database.
func getMigrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "202610180001",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&TreeRecord{},
					&NodeRecord{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(
					&NodeRecord{},
					&TreeRecord{},
				)
			},
		},
	}
}

// Migrate performs database migrations using gormigrate.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, getMigrations())
	return m.Migrate()
}

// CheckMigration checks if the database schema is up to date.
func CheckMigration(db *gorm.DB) (bool, error) {
	// If the migrations table doesn't exist no migrations have run yet.
	// Use a silent logger to avoid spurious warnings on fresh databases.
	var lastMigration string
	err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Table(gormigrate.DefaultOptions.TableName).
		Select("id").
		Order("id DESC").
		Limit(1).
		Scan(&lastMigration).Error

	if err != nil {
		return false, nil
	}

	migrations := getMigrations()
	if len(migrations) == 0 {
		return true, nil
	}

	// The last migration in our list should match the last applied migration.
	expectedLastID := migrations[len(migrations)-1].ID
	return lastMigration == expectedLastID, nil
}
