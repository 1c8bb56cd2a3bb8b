package main

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// countBytes returns the length of the contents in raw storage units.
func countBytes(data []byte) uint64 {
	return uint64(len(data))
}

// countCharacters returns the number of Unicode scalar values in the
// contents. The contents must be valid UTF-8; a byte count is always at
// least as large as a character count.
func countCharacters(data []byte) (uint64, error) {
	if !utf8.Valid(data) {
		return 0, fmt.Errorf("contents are not valid UTF-8 text")
	}
	return uint64(utf8.RuneCount(data)), nil
}

// countLines returns the number of lines: newline-terminated lines plus a
// trailing partial line, so "a\nb" counts as 2 and "a\nb\n" also counts as 2.
func countLines(data []byte) uint64 {
	if len(data) == 0 {
		return 0
	}
	n := uint64(bytes.Count(data, []byte{'\n'}))
	if data[len(data)-1] != '\n' {
		n++
	}
	return n
}

// countWords returns the number of whitespace-delimited words.
func countWords(data []byte) (uint64, error) {
	if !utf8.Valid(data) {
		return 0, fmt.Errorf("contents are not valid UTF-8 text")
	}
	return uint64(len(strings.Fields(string(data)))), nil
}

// doCalculation maps a command to its counting function and runs it over the
// contents. The tokenizer is only consulted for the tokens command and may be
// nil otherwise.
func doCalculation(command Command, data []byte, tk Tokenizer) (uint64, error) {
	switch command {
	case CommandBytes:
		return countBytes(data), nil
	case CommandCharacters:
		return countCharacters(data)
	case CommandLines:
		return countLines(data), nil
	case CommandWords:
		return countWords(data)
	case CommandTokens:
		if tk == nil {
			return 0, fmt.Errorf("no tokenizer initialized")
		}
		if !utf8.Valid(data) {
			return 0, fmt.Errorf("contents are not valid UTF-8 text")
		}
		return uint64(tk.CountTokens(string(data))), nil
	default:
		return 0, fmt.Errorf("unrecognized command: %v", command)
	}
}
