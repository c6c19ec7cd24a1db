// Package store keeps named trees in a SQLite database, one row per node
// keyed by the node's index path.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/spicery/treepath/pkg/common"
	"github.com/spicery/treepath/pkg/treenode"
)

var (
	ErrTreeNotFound = errors.New("tree not found")
	ErrCorruptTree  = errors.New("stored tree is not contiguous")
)

// Store handles reading and writing trees.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the database at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &Store{db: db}, nil
}

// Migrate performs database migrations.
func (s *Store) Migrate() error {
	return Migrate(s.db)
}

// CheckMigration checks if the database schema is up to date.
func (s *Store) CheckMigration() (bool, error) {
	return CheckMigration(s.db)
}

// SaveTree stores root under name, replacing any tree already stored there.
// Paths are relative to root, even if root has a parent.
func (s *Store) SaveTree(name string, root *common.Node) error {
	var records []NodeRecord
	var encodeErr error
	root.Walk(func(path treenode.Path, node *common.Node) bool {
		options, err := json.Marshal(node.Options)
		if err != nil {
			encodeErr = fmt.Errorf("failed to encode options at %s: %w", path, err)
			return false
		}
		records = append(records, NodeRecord{
			TreeName: name,
			NodePath: path.String(),
			Depth:    len(path),
			Name:     node.Name,
			Options:  string(options),
		})
		return true
	})
	if encodeErr != nil {
		return encodeErr
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tree_name = ?", name).Delete(&NodeRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear tree %q: %w", name, err)
		}
		if err := tx.Save(&TreeRecord{TreeName: name, NodeCount: len(records)}).Error; err != nil {
			return fmt.Errorf("failed to save tree %q: %w", name, err)
		}
		if err := tx.CreateInBatches(records, 500).Error; err != nil {
			return fmt.Errorf("failed to save nodes of %q: %w", name, err)
		}
		return nil
	})
}

// LoadTree rebuilds the tree stored under name.
func (s *Store) LoadTree(name string) (*common.Node, error) {
	var tree TreeRecord
	err := s.db.Where("tree_name = ?", name).First(&tree).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%q: %w", name, ErrTreeNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load tree %q: %w", name, err)
	}

	var records []NodeRecord
	if err := s.db.Where("tree_name = ?", name).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load nodes of %q: %w", name, err)
	}

	type entry struct {
		path   treenode.Path
		record NodeRecord
	}
	entries := make([]entry, 0, len(records))
	for _, record := range records {
		path, err := treenode.ParsePath(record.NodePath)
		if err != nil {
			return nil, fmt.Errorf("tree %q: %w", name, err)
		}
		entries = append(entries, entry{path: path, record: record})
	}
	// Pre-order puts every parent before its children and siblings in order.
	slices.SortFunc(entries, func(a, b entry) int { return a.path.Compare(b.path) })

	if len(entries) == 0 || len(entries[0].path) != 0 {
		return nil, fmt.Errorf("tree %q has no root: %w", name, ErrCorruptTree)
	}
	var root *common.Node
	for _, e := range entries {
		node, err := decodeNode(e.record)
		if err != nil {
			return nil, fmt.Errorf("tree %q at %s: %w", name, e.path, err)
		}
		if root == nil {
			root = node
			continue
		}
		parent, err := root.NodeAt(e.path.Parent())
		if err != nil {
			return nil, fmt.Errorf("tree %q: node %s has no parent: %w", name, e.path, ErrCorruptTree)
		}
		if e.path.Last() != parent.Count() {
			return nil, fmt.Errorf("tree %q: node %s follows %d siblings: %w", name, e.path, parent.Count(), ErrCorruptTree)
		}
		parent.AddChild(node)
	}
	return root, nil
}

// LoadNode returns the subtree stored under name at path, detached from
// the rest of the tree.
func (s *Store) LoadNode(name string, path treenode.Path) (*common.Node, error) {
	root, err := s.LoadTree(name)
	if err != nil {
		return nil, err
	}
	node, err := root.NodeAt(path)
	if err != nil {
		return nil, fmt.Errorf("tree %q has no node at %s: %w", name, path, err)
	}
	return node.Clone(), nil
}

// ListTrees returns the stored tree names in order.
func (s *Store) ListTrees() ([]string, error) {
	var names []string
	if err := s.db.Model(&TreeRecord{}).Order("tree_name").Pluck("tree_name", &names).Error; err != nil {
		return nil, fmt.Errorf("failed to list trees: %w", err)
	}
	return names, nil
}

// DeleteTree removes the tree stored under name.
func (s *Store) DeleteTree(name string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("tree_name = ?", name).Delete(&TreeRecord{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete tree %q: %w", name, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%q: %w", name, ErrTreeNotFound)
		}
		if err := tx.Where("tree_name = ?", name).Delete(&NodeRecord{}).Error; err != nil {
			return fmt.Errorf("failed to delete nodes of %q: %w", name, err)
		}
		return nil
	})
}

// Close closes the database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func decodeNode(record NodeRecord) (*common.Node, error) {
	node := common.NewNode(record.Name)
	if record.Options != "" {
		if err := json.Unmarshal([]byte(record.Options), &node.Options); err != nil {
			return nil, fmt.Errorf("failed to decode options: %w", err)
		}
	}
	if node.Options == nil {
		node.Options = map[string]string{}
	}
	return node, nil
}
