package main

import (
	"bytes"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMigrationPart(t *testing.T) {
	content := `
-- +migrate Up
CREATE TABLE users (id int);
ALTER TABLE users ADD COLUMN name text;

-- +migrate Down
DROP TABLE users;
`
	t.Run("Extract Up", func(t *testing.T) {
		up := extractMigrationPart(content, "Up")
		assert.Contains(t, up, "CREATE TABLE users")
		assert.Contains(t, up, "ALTER TABLE users")
		assert.NotContains(t, up, "DROP TABLE users")
		assert.NotContains(t, up, "-- +migrate Up")
	})

	t.Run("Extract Down", func(t *testing.T) {
		down := extractMigrationPart(content, "Down")
		assert.Contains(t, down, "DROP TABLE users")
		assert.NotContains(t, down, "CREATE TABLE users")
	})

	t.Run("Missing Section", func(t *testing.T) {
		assert.Empty(t, extractMigrationPart("SELECT 1;", "Up"))
	})
}

func writeMigration(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunMigrationsUp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dir := t.TempDir()
	first := writeMigration(t, dir, "0001_init.sql", "-- +migrate Up\nCREATE TABLE test (id int);\n-- +migrate Down\nDROP TABLE test;")
	second := writeMigration(t, dir, "0002_seed.sql", "-- +migrate Up\nINSERT INTO test VALUES (1);")

	mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
		WithArgs("0001_init.sql").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
		WithArgs("0002_seed.sql").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO test VALUES").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs("0002_seed.sql").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	var out bytes.Buffer
	require.NoError(t, runMigrationsUp(&out, db, []string{first, second}))

	assert.Contains(t, out.String(), "Skipping already applied migration: 0001_init.sql")
	assert.Contains(t, out.String(), "Applying migration: 0002_seed.sql")
	assert.Contains(t, out.String(), "1 new migration(s) applied")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrationsUp_RollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	file := writeMigration(t, t.TempDir(), "0001_init.sql", "-- +migrate Up\nCREATE TABLE broken (;")

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("0001_init.sql").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE broken").WillReturnError(errors.New("syntax error"))
	mock.ExpectRollback()

	err = runMigrationsUp(&bytes.Buffer{}, db, []string{file})
	assert.ErrorContains(t, err, "migration failed (0001_init.sql)")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrationsDown(t *testing.T) {
	dir := t.TempDir()
	file := writeMigration(t, dir, "0001_init.sql", "-- +migrate Up\nCREATE TABLE test (id int);\n-- +migrate Down\nDROP TABLE test;")

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT version FROM schema_migrations ORDER BY applied_at DESC").
			WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("0001_init.sql"))
		mock.ExpectBegin()
		mock.ExpectExec("DROP TABLE test").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM schema_migrations").
			WithArgs("0001_init.sql").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		var out bytes.Buffer
		require.NoError(t, runMigrationsDown(&out, db, []string{file}))
		assert.Contains(t, out.String(), "Rollback successful")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Nothing Applied", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT version FROM schema_migrations").WillReturnError(sql.ErrNoRows)

		var out bytes.Buffer
		require.NoError(t, runMigrationsDown(&out, db, []string{file}))
		assert.Contains(t, out.String(), "No migrations to roll back")
	})

	t.Run("Unknown Version", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT version FROM schema_migrations").
			WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("0009_gone.sql"))

		err = runMigrationsDown(&bytes.Buffer{}, db, []string{file})
		assert.EqualError(t, err, "migration file not found for version: 0009_gone.sql")
	})
}

func TestRun_UnknownMode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))

	err = run(&bytes.Buffer{}, db, "sideways", t.TempDir())
	assert.ErrorContains(t, err, "unknown mode: sideways")
}

func TestStatusCommand(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "0002_seed.sql", "-- +migrate Up\nSELECT 1;")
	writeMigration(t, dir, "0001_init.sql", "-- +migrate Up\nSELECT 1;")

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	origOpen := openDB
	defer func() { openDB = origOpen }()
	openDB = func(dsn string) (*sql.DB, error) {
		assert.Equal(t, "postgres://localhost/test", dsn)
		return db, nil
	}
	t.Setenv("DB_URL", "postgres://localhost/test")

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version FROM schema_migrations ORDER BY version").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("0001_init.sql"))
	mock.ExpectClose()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"status", "--dir", dir})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "applied  0001_init.sql\npending  0002_seed.sql\n", out.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConnect_MissingURL(t *testing.T) {
	t.Setenv("DB_URL", "")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"up"})

	assert.EqualError(t, cmd.Execute(), "DB_URL not set in environment")
}
