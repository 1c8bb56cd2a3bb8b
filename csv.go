package main

import "strings"

// The batch CSV format is a bare comma-separated list of file paths, with
// optional whitespace around each value. No quoting or escaping.

// csvValues splits a CSV list into its trimmed values, in list order.
func csvValues(csv string) []string {
	values := strings.Split(csv, ",")
	for i, v := range values {
		values[i] = strings.TrimSpace(v)
	}
	return values
}

// csvForEachValue invokes the callback once per trimmed value, in list order.
func csvForEachValue(csv string, callback func(value string)) {
	for _, v := range csvValues(csv) {
		callback(v)
	}
}

// csvMergeFiles reads every listed file through the supplied reader and
// concatenates their contents in list order. The merged result counts the
// same as the direct concatenation of the files.
func csvMergeFiles(csv string, read func(path string) ([]byte, error)) ([]byte, error) {
	var merged []byte
	for _, v := range csvValues(csv) {
		data, err := read(v)
		if err != nil {
			return nil, err
		}
		merged = append(merged, data...)
	}
	return merged, nil
}
