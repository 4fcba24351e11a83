package session

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSaveAndLoad(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "tok-1", "alice"))

	sess, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "tok-1", sess.Token)
	assert.Equal(t, "alice", sess.Username)
}

func TestLoad_EmptyStoreIsAbsent(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)

	sess, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestSave_ReplacesPreviousPair(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "tok-1", "alice"))
	require.NoError(t, s.Save(ctx, "tok-2", "bob"))

	sess, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "tok-2", sess.Token)
	assert.Equal(t, "bob", sess.Username)
}

func TestClear_RemovesThePair(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "tok-1", "alice"))
	require.NoError(t, s.Clear(ctx))

	sess, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)

	// clearing an empty store is fine
	require.NoError(t, s.Clear(ctx))
}

func TestLoad_HalfPairIsAbsent(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO session(key, value) VALUES('token', 'tok-1')`)
	require.NoError(t, err)

	sess, err := NewSQLiteStore(db).Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess, "a token without its username must not restore")
}

func TestOpen_MigratesAndSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "storyline.db")

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteStore(db).Save(ctx, "tok-1", "alice"))
	require.NoError(t, db.Close())

	// a second open simulates a process restart
	db2, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db2.Close() })

	sess, err := NewSQLiteStore(db2).Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "tok-1", sess.Token)
	assert.Equal(t, "alice", sess.Username)
}
