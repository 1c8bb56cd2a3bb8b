package main

// Command identifies which calculation (or meta action) an invocation runs.
type Command int

const (
	CommandVersion Command = iota
	CommandBytes
	CommandCharacters
	CommandLines
	CommandWords
	CommandTokens
)

// String returns the CLI spelling of the command.
func (c Command) String() string {
	switch c {
	case CommandVersion:
		return "version"
	case CommandBytes:
		return "bytes"
	case CommandCharacters:
		return "characters"
	case CommandLines:
		return "lines"
	case CommandWords:
		return "words"
	case CommandTokens:
		return "tokens"
	default:
		return "unknown"
	}
}

// FileMode selects how the source argument is expanded into countable entries.
type FileMode int

const (
	FileModeNormal FileMode = iota
	FileModeCsvList
	FileModeCsvMerged
	FileModeLinks
)

// Arguments is the fully validated outcome of CLI parsing: one command, an
// optional source, and the batch mode. Built once per invocation, consumed
// once by the batch runner.
type Arguments struct {
	Command  Command
	Source   string
	FileMode FileMode
}

// Entry is one countable unit of work. Content may be pre-loaded (merged CSV
// contents); otherwise the worker loads Path, which may be a local file or a
// web URL.
type Entry struct {
	Path    string
	Content []byte
}

// Result pairs a computed count with the entry it came from.
type Result struct {
	Path  string
	Bytes int64 // raw content size, for the batch summary
	Count uint64
	Err   error
}

// Summary holds aggregated information about a batch run.
type Summary struct {
	TotalSources int
	TotalBytes   int64
}
