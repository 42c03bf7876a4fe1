package store

import (
	"context"
	"testing"

	"github.com/nandraak/siakad/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.StoredRecord{}))

	t.Cleanup(func() {
		db.Exec("DELETE FROM stored_records")
	})
	return db
}

func TestGormStoreRoundTrip(t *testing.T) {
	s := NewGormStore(setupTestDB(t))
	ctx := context.Background()

	_, found, err := s.Read(ctx, KeySubmissions)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Write(ctx, KeySubmissions, []byte(`[{"a":1}]`)))

	data, found, err := s.Read(ctx, KeySubmissions)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `[{"a":1}]`, string(data))
}

func TestGormStoreWriteUpserts(t *testing.T) {
	s := NewGormStore(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, KeyAssignments, []byte(`["old"]`)))
	require.NoError(t, s.Write(ctx, KeyAssignments, []byte(`["new"]`)))

	data, found, err := s.Read(ctx, KeyAssignments)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `["new"]`, string(data))
}

func TestGormStoreKeysAreIndependent(t *testing.T) {
	s := NewGormStore(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, TranscriptKey("2301001"), []byte(`[1]`)))
	require.NoError(t, s.Write(ctx, TranscriptKey("2301002"), []byte(`[2]`)))

	data, _, err := s.Read(ctx, TranscriptKey("2301001"))
	require.NoError(t, err)
	assert.JSONEq(t, `[1]`, string(data))
}
