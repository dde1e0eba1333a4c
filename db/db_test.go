// Package db
package db

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"gotest.tools/assert"
)

// runClientContract exercises the behaviour every adapter must share.
func runClientContract(t *testing.T, client Client) {
	ctx := context.Background()

	_, err := client.Load(ctx, CBills)
	assert.Assert(t, errors.Is(err, ErrCollectionNotFound))

	first := []byte(`[{"id":1,"title":"Health Care Reform Act","status":"active"}]`)
	assert.NilError(t, client.Save(ctx, CBills, first))

	got, err := client.Load(ctx, CBills)
	assert.NilError(t, err)
	assert.Equal(t, string(first), string(got))

	second := []byte(`[]`)
	assert.NilError(t, client.Save(ctx, CBills, second))
	got, err = client.Load(ctx, CBills)
	assert.NilError(t, err)
	assert.Equal(t, string(second), string(got))

	_, err = client.Load(ctx, CVotes)
	assert.Assert(t, errors.Is(err, ErrCollectionNotFound))
}

func TestNewClient_InvalidAdapter(t *testing.T) {
	_, err := NewClient(Config{DbAdapter: "cassandra"})
	assert.ErrorContains(t, err, "invalid db config")
}

func TestMemoryDB(t *testing.T) {
	client, err := NewClient(Config{DbAdapter: Memory})
	assert.NilError(t, err)
	runClientContract(t, client)
}

func TestMemoryDB_CopiesData(t *testing.T) {
	ctx := context.Background()
	client := NewMemoryDB()
	data := []byte(`[1]`)
	assert.NilError(t, client.Save(ctx, CVotes, data))
	data[1] = '2'

	got, err := client.Load(ctx, CVotes)
	assert.NilError(t, err)
	assert.Equal(t, "[1]", string(got))
}

func TestFileDB(t *testing.T) {
	dir := t.TempDir()
	client, err := NewClient(Config{DbAdapter: File, Dir: dir, Logger: zap.NewNop()})
	assert.NilError(t, err)
	runClientContract(t, client)

	_, err = os.Stat(filepath.Join(dir, "bills.json"))
	assert.NilError(t, err)
	_, err = os.Stat(filepath.Join(dir, "bills.json.tmp"))
	assert.Assert(t, os.IsNotExist(err))
}

func TestFileDB_Flush(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	client, err := NewClient(Config{DbAdapter: File, Dir: dir})
	assert.NilError(t, err)
	assert.NilError(t, client.Save(ctx, CMembers, []byte(`[]`)))

	flushed, err := NewClient(Config{DbAdapter: File, Dir: dir, FlushDB: true})
	assert.NilError(t, err)
	_, err = flushed.Load(ctx, CMembers)
	assert.Assert(t, errors.Is(err, ErrCollectionNotFound))
}
