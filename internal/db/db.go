package db

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/tabletop/internal/models"
)

// Store is the handle to the board game database.
// Open it once per process and Close it on the way out.
type Store struct {
	db   *gorm.DB
	log  *logrus.Logger
	path string
}

// Open connects to the SQLite file at path, creating it and its directory if needed.
// The schema is not touched; call Initialize for that.
func Open(path string, log *logrus.Logger) (*Store, error) {
	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, storageError("open", fmt.Errorf("failed to create database directory: %w", err))
	}
	return open(path, log)
}

// OpenExisting connects to an existing database file and fails with
// ErrStoreMissing when the file is absent.
func OpenExisting(path string, log *logrus.Logger) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, storageError("open", ErrStoreMissing)
		}
		return nil, storageError("open", err)
	}
	return open(path, log)
}

func open(path string, log *logrus.Logger) (*Store, error) {
	gormLogger := logger.Default.LogMode(logger.Silent) // Quiet by default
	if log.IsLevelEnabled(logrus.DebugLevel) {
		gormLogger = logger.New(log, logger.Config{LogLevel: logger.Info})
	}

	db, err := gorm.Open(sqlite.Open(dsn(path)), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, storageError("open", fmt.Errorf("failed to connect to database: %w", err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, storageError("open", err)
	}
	// One connection keeps writes serialized and the foreign_keys pragma in effect
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, storageError("open", fmt.Errorf("failed to reach database: %w", err))
	}

	log.WithField("path", path).Debug("database opened")

	return &Store{db: db, log: log, path: path}, nil
}

// dsn enables foreign key enforcement for the connection
func dsn(path string) string {
	return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Path returns the database file the store was opened on
func (s *Store) Path() string {
	return s.path
}

// Initialize creates the games, members and sessions tables.
// With resetExisting the tables are dropped first, wiping all data.
func (s *Store) Initialize(resetExisting bool) error {
	if resetExisting {
		// Sessions first: they reference the other two tables
		if err := s.db.Migrator().DropTable(&models.Session{}, &models.Member{}, &models.Game{}); err != nil {
			return storageError("reset schema", err)
		}
		s.log.Info("existing tables dropped")
	}

	if err := s.db.AutoMigrate(&models.Game{}, &models.Member{}, &models.Session{}); err != nil {
		return storageError("create schema", fmt.Errorf("failed to run migrations: %w", err))
	}

	s.log.WithField("reset", resetExisting).Debug("schema ready")
	return nil
}

// IsEmpty reports whether the store holds no games and no members
func (s *Store) IsEmpty() (bool, error) {
	var games, members int64
	if err := s.db.Model(&models.Game{}).Count(&games).Error; err != nil {
		return false, queryError("count games", err)
	}
	if err := s.db.Model(&models.Member{}).Count(&members).Error; err != nil {
		return false, queryError("count members", err)
	}
	return games == 0 && members == 0, nil
}

// Counts holds the number of rows in each table
type Counts struct {
	Games    int64 `json:"games"`
	Members  int64 `json:"members"`
	Sessions int64 `json:"sessions"`
}

// Counts returns the number of games, members and sessions
func (s *Store) Counts() (Counts, error) {
	var c Counts
	if err := s.db.Model(&models.Game{}).Count(&c.Games).Error; err != nil {
		return Counts{}, queryError("count games", err)
	}
	if err := s.db.Model(&models.Member{}).Count(&c.Members).Error; err != nil {
		return Counts{}, queryError("count members", err)
	}
	if err := s.db.Model(&models.Session{}).Count(&c.Sessions).Error; err != nil {
		return Counts{}, queryError("count sessions", err)
	}
	return c, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
