package storage

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"satd/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteSettingsStore {
	t.Helper()

	store, err := NewSQLiteSettingsStore(filepath.Join(t.TempDir(), "settings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteSettingsStore_GetMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetSetting(context.Background(), "language")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSettingNotFound)
}

func TestSQLiteSettingsStore_SetAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetSetting(ctx, "language", "fr_FR.UTF-8"))

	value, err := store.GetSetting(ctx, "language")
	require.NoError(t, err)
	assert.Equal(t, "fr_FR.UTF-8", value)
}

func TestSQLiteSettingsStore_Upsert(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetSetting(ctx, "language", "fr_FR.UTF-8"))
	require.NoError(t, store.SetSetting(ctx, "language", "de_DE.UTF-8"))

	value, err := store.GetSetting(ctx, "language")
	require.NoError(t, err)
	assert.Equal(t, "de_DE.UTF-8", value)

	var count int64
	require.NoError(t, store.db.Model(&SettingModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSQLiteSettingsStore_Reopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewSQLiteSettingsStoreForPath(dir)
	require.NoError(t, err)
	require.NoError(t, store.SetSetting(ctx, "language", "ja_JP.UTF-8"))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteSettingsStoreForPath(dir)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.GetSetting(ctx, "language")
	require.NoError(t, err)
	assert.Equal(t, "ja_JP.UTF-8", value)
}

func TestWithRetry_KeepsLastBusyError(t *testing.T) {
	calls := 0
	err := withRetry(func() error {
		calls++
		return sqlite3.Error{Code: sqlite3.ErrBusy}
	}, 2)

	require.Error(t, err)
	assert.Equal(t, 2, calls)

	var sqliteErr sqlite3.Error
	require.True(t, errors.As(err, &sqliteErr))
	assert.Equal(t, sqlite3.ErrBusy, sqliteErr.Code)
}

func TestWithRetry_StopsOnOtherErrors(t *testing.T) {
	boom := errors.New("constraint failed")
	calls := 0
	err := withRetry(func() error {
		calls++
		return boom
	}, 3)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestGormLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	l := (&gormLogger{log: slog.New(slog.NewJSONHandler(&buf, nil))}).LogMode(logger.Info)
	query := func() (string, int64) { return "SELECT 1", 1 }

	l.Trace(context.Background(), time.Now(), query, errors.New("disk I/O error"))
	assert.Contains(t, buf.String(), "Settings query failed")
	assert.Contains(t, buf.String(), "disk I/O error")

	buf.Reset()
	l.Trace(context.Background(), time.Now(), query, gorm.ErrRecordNotFound)
	assert.NotContains(t, buf.String(), "Settings query failed")

	buf.Reset()
	l.Trace(context.Background(), time.Now().Add(-time.Second), query, nil)
	assert.Contains(t, buf.String(), "Slow settings query")

	buf.Reset()
	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), query, errors.New("ignored"))
	assert.Empty(t, buf.String())
}
