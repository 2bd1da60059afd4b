package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"satd/internal/domain"
	"satd/internal/logging"
	"satd/internal/ports"
)

// SQLiteSettingsStore implements ports.SettingsStore using GORM
type SQLiteSettingsStore struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.SettingsStore = (*SQLiteSettingsStore)(nil)

// slowQuery is the duration above which a settings query is logged as a warning
const slowQuery = 200 * time.Millisecond

// gormLogger routes GORM output to the satd logger, tagged with the store
type gormLogger struct {
	level logger.LogLevel
	log   *slog.Logger
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level, log: l.log}
}

func (l *gormLogger) Info(_ context.Context, msg string, data ...any) {
	l.printf(logger.Info, slog.LevelInfo, msg, data)
}

func (l *gormLogger) Warn(_ context.Context, msg string, data ...any) {
	l.printf(logger.Warn, slog.LevelWarn, msg, data)
}

func (l *gormLogger) Error(_ context.Context, msg string, data ...any) {
	l.printf(logger.Error, slog.LevelError, msg, data)
}

func (l *gormLogger) printf(threshold logger.LogLevel, level slog.Level, msg string, data []any) {
	if l.level >= threshold {
		l.log.Log(context.Background(), level, fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	attrs := []any{"duration", elapsed, "sql", sql, "rows", rows}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		l.log.ErrorContext(ctx, "Settings query failed", append(attrs, "error", err)...)
	case elapsed > slowQuery:
		l.log.WarnContext(ctx, "Slow settings query", attrs...)
	default:
		l.log.DebugContext(ctx, "Settings query", attrs...)
	}
}

// newGormLogger is verbose only when satd runs with debug logging
func newGormLogger() logger.Interface {
	l := &gormLogger{log: logging.Logger.With("component", "settings_store")}
	if os.Getenv("SATD_DEBUG") == "1" {
		return l.LogMode(logger.Info)
	}
	return l.LogMode(logger.Silent)
}

// NewSQLiteSettingsStore opens (and creates if needed) the settings database at dbPath
func NewSQLiteSettingsStore(dbPath string) (*SQLiteSettingsStore, error) {
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&SettingModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate settings schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteSettingsStore{db: db}, nil
}

// NewSQLiteSettingsStoreForPath opens the settings database inside a SATD_HOME directory
func NewSQLiteSettingsStoreForPath(satdHomePath string) (*SQLiteSettingsStore, error) {
	return NewSQLiteSettingsStore(filepath.Join(satdHomePath, "settings.db"))
}

// Close closes the database connection
func (s *SQLiteSettingsStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetSetting implements ports.SettingsStore.GetSetting
func (s *SQLiteSettingsStore) GetSetting(ctx context.Context, key string) (string, error) {
	var setting SettingModel

	err := withRetry(func() error {
		return s.db.WithContext(ctx).Where(`"key" = ?`, key).First(&setting).Error
	}, 3)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("%w: %s", domain.ErrSettingNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("failed to load setting %s: %w", key, err)
	}

	return setting.Value, nil
}

// SetSetting implements ports.SettingsStore.SetSetting
func (s *SQLiteSettingsStore) SetSetting(ctx context.Context, key, value string) error {
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&SettingModel{Key: key, Value: value}).Error
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}

	logging.Logger.Debug("Setting saved", "key", key, "value", value)
	return nil
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	var last error
	for i := 0; i < maxRetries; i++ {
		last = fn()
		if last == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(last, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return last
	}
	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, last)
}
