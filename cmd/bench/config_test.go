package main

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IvanBrykalov/linkedpq/policy"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Pattern)
	assert.Equal(t, "prev", cfg.Mode)
	assert.Equal(t, 10*time.Second, cfg.Duration)
}

// Values come from the YAML file; explicit flags override them.
func TestParseConfig_FileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	doc := []byte("pattern: random\nmode: first\nsize: 42\nworkers: 3\nduration: 2s\nmax_pool: 128\n")
	require.NoError(t, os.WriteFile(path, doc, 0o600))

	cfg, err := parseConfig([]string{"-config", path, "-workers", "7"})
	require.NoError(t, err)
	assert.Equal(t, "random", cfg.Pattern)
	assert.Equal(t, "first", cfg.Mode)
	assert.Equal(t, 42, cfg.Size)
	assert.Equal(t, 128, cfg.MaxPool)
	assert.Equal(t, 2*time.Second, cfg.Duration)
	assert.Equal(t, 7, cfg.Workers, "flag must win over file")
}

func TestParseConfig_Invalid(t *testing.T) {
	for _, args := range [][]string{
		{"-mode", "middle"},
		{"-pattern", "zigzag"},
		{"-dup", "merge"},
		{"-size", "0"},
		{"-pattern", "random", "-keys", "5", "-size", "10"},
	} {
		_, err := parseConfig(args)
		assert.Error(t, err, "args %v", args)
	}

	_, err := parseConfig([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func TestKeyGen(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	asc := keyGen("ascending", r, 10, 1)
	assert.Equal(t, []int{1, 2, 3}, []int{asc(), asc(), asc()})

	desc := keyGen("descending", r, 10, 1)
	assert.Equal(t, []int{-1, -2}, []int{desc(), desc()})

	local := keyGen("local", r, 100, 3)
	prev := 50
	for i := 0; i < 100; i++ {
		k := local()
		assert.LessOrEqual(t, k-prev, 3)
		assert.GreaterOrEqual(t, k-prev, -3)
		prev = k
	}

	rnd := keyGen("random", r, 10, 0)
	for i := 0; i < 100; i++ {
		k := rnd()
		assert.True(t, k >= 0 && k < 10)
	}
}

func TestDuplicatePolicy(t *testing.T) {
	assert.Nil(t, duplicatePolicy("ignore"))
	assert.Equal(t, policy.AllowDuplicate, duplicatePolicy("allow")(1, 1, 2))
	assert.Equal(t, policy.Override, duplicatePolicy("override")(1, 1, 2))
}
