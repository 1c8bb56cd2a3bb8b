package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCsvValues(t *testing.T) {
	assert.Equal(t, []string{"a.txt"}, csvValues("a.txt"))
	assert.Equal(t, []string{"a.txt", "b.txt"}, csvValues("a.txt,b.txt"))
	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, csvValues(" a.txt , b.txt ,\tc.txt\n"))
}

func TestCsvForEachValueOrder(t *testing.T) {
	var seen []string
	csvForEachValue("b.txt, a.txt, c.txt", func(value string) {
		seen = append(seen, value)
	})
	assert.Equal(t, []string{"b.txt", "a.txt", "c.txt"}, seen)
}

func TestCsvMergeFiles(t *testing.T) {
	contents := map[string][]byte{
		"a.txt": []byte("alpha"),
		"b.txt": []byte("beta"),
	}
	read := func(path string) ([]byte, error) {
		data, ok := contents[path]
		if !ok {
			return nil, fmt.Errorf("no such file: %s", path)
		}
		return data, nil
	}

	merged, err := csvMergeFiles("a.txt, b.txt", read)
	require.NoError(t, err)
	// The merged count equals the count over the direct concatenation.
	assert.Equal(t, []byte("alphabeta"), merged)
	assert.Equal(t, countBytes([]byte("alpha"))+countBytes([]byte("beta")), countBytes(merged))

	// Order-preserving: reversing the list reverses the concatenation.
	merged, err = csvMergeFiles("b.txt, a.txt", read)
	require.NoError(t, err)
	assert.Equal(t, []byte("betaalpha"), merged)
}

func TestCsvMergeFilesStopsOnError(t *testing.T) {
	calls := 0
	read := func(path string) ([]byte, error) {
		calls++
		if path == "missing.txt" {
			return nil, fmt.Errorf("no such file: %s", path)
		}
		return []byte("x"), nil
	}

	_, err := csvMergeFiles("ok.txt, missing.txt, never.txt", read)
	require.Error(t, err)
	assert.Equal(t, 2, calls)
}
