package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestResolveEntriesNormal(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "a.txt", "hello")

	entries, named, cleanup, err := resolveEntries(Arguments{Command: CommandBytes, Source: file}, nil)
	require.NoError(t, err)
	assert.Nil(t, cleanup)
	assert.False(t, named)
	require.Len(t, entries, 1)
	assert.Equal(t, file, entries[0].Path)
	assert.Nil(t, entries[0].Content)
}

func TestResolveEntriesCsvList(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "alpha")
	b := writeFile(t, dir, "b.txt", "beta")
	csv := writeFile(t, dir, "list.csv", fmt.Sprintf("%s, %s", a, b))

	entries, named, _, err := resolveEntries(Arguments{Command: CommandBytes, Source: csv, FileMode: FileModeCsvList}, nil)
	require.NoError(t, err)
	assert.True(t, named)
	require.Len(t, entries, 2)
	assert.Equal(t, a, entries[0].Path)
	assert.Equal(t, b, entries[1].Path)
}

func TestResolveEntriesCsvMerged(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "Kai")
	b := writeFile(t, dir, "b.txt", "mū")
	csv := writeFile(t, dir, "list.csv", fmt.Sprintf("%s,%s", a, b))

	entries, named, _, err := resolveEntries(Arguments{Command: CommandCharacters, Source: csv, FileMode: FileModeCsvMerged}, nil)
	require.NoError(t, err)
	assert.False(t, named)
	require.Len(t, entries, 1)
	assert.Equal(t, []byte("Kaimū"), entries[0].Content)
}

func TestResolveEntriesCsvListMissingSource(t *testing.T) {
	_, _, _, err := resolveEntries(Arguments{Source: filepath.Join(t.TempDir(), "absent.csv"), FileMode: FileModeCsvList}, nil)
	assert.Error(t, err)
}

func TestCountEntriesPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	var entries []Entry
	for i := 0; i < 50; i++ {
		path := writeFile(t, dir, fmt.Sprintf("f%02d.txt", i), strings.Repeat("x", i))
		entries = append(entries, Entry{Path: path})
	}

	oldThreads := numThreads
	numThreads = 8
	defer func() { numThreads = oldThreads }()

	results := countEntries(CommandBytes, entries, nil)
	require.Len(t, results, 50)
	for i, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, entries[i].Path, r.Path)
		assert.Equal(t, uint64(i), r.Count)
	}
}

func TestCountEntriesPreloadedContent(t *testing.T) {
	results := countEntries(CommandBytes, []Entry{{Path: "merged", Content: []byte("Kaimū")}}, nil)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.Equal(t, uint64(6), results[0].Count)
	assert.Equal(t, int64(6), results[0].Bytes)
}

func TestRunCountStopsOnEntryError(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "alpha")
	csv := writeFile(t, dir, "list.csv", fmt.Sprintf("%s, %s", a, filepath.Join(dir, "missing.txt")))

	err := runCount(Arguments{Command: CommandBytes, Source: csv, FileMode: FileModeCsvList}, nil, nil)
	assert.Error(t, err)
}

func TestRunCountSingleFile(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "a.txt", "hello world\n")
	out := filepath.Join(dir, "out.txt")

	oldOutputFile := outputFile
	outputFile = out
	defer func() { outputFile = oldOutputFile }()

	require.NoError(t, runCount(Arguments{Command: CommandBytes, Source: file}, nil, nil))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "12\n", string(data))
}

func TestRunCountCsvListOutput(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "alpha")
	b := writeFile(t, dir, "b.txt", "Kaimū")
	csv := writeFile(t, dir, "list.csv", fmt.Sprintf("%s, %s", a, b))
	out := filepath.Join(dir, "out.txt")

	oldOutputFile := outputFile
	outputFile = out
	defer func() { outputFile = oldOutputFile }()

	require.NoError(t, runCount(Arguments{Command: CommandCharacters, Source: csv, FileMode: FileModeCsvList}, nil, nil))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, fmt.Sprintf("5 %s", a), lines[0])
	assert.Equal(t, fmt.Sprintf("5 %s", b), lines[1])
}

func TestRunCountCsvMergedMatchesConcatenation(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "héllo ")
	b := writeFile(t, dir, "b.txt", "wörld")
	csv := writeFile(t, dir, "list.csv", fmt.Sprintf("%s,%s", a, b))
	out := filepath.Join(dir, "out.txt")

	oldOutputFile := outputFile
	outputFile = out
	defer func() { outputFile = oldOutputFile }()

	require.NoError(t, runCount(Arguments{Command: CommandCharacters, Source: csv, FileMode: FileModeCsvMerged}, nil, nil))

	direct, err := countCharacters([]byte("héllo wörld"))
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%d\n", direct), string(data))
}

func TestRunCountDirectorySource(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "aa")
	writeFile(t, dir, "b.txt", "bbb")
	out := filepath.Join(t.TempDir(), "out.txt")

	oldOutputFile := outputFile
	outputFile = out
	defer func() { outputFile = oldOutputFile }()

	require.NoError(t, runCount(Arguments{Command: CommandBytes, Source: dir}, nil, nil))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "2 "))
	assert.True(t, strings.HasPrefix(lines[1], "3 "))
}
