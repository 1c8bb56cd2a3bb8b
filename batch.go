package main

import (
	"fmt"
	"os"
	"runtime"
	"sync"
)

// resolveEntries expands the validated arguments into the ordered list of
// countable entries. named reports whether results should be printed with
// their originating path (list-shaped modes). cleanup, when non-nil, removes
// temporary state (cloned repositories) and must run after counting.
func resolveEntries(args Arguments, langData *LoadedLanguageData) (entries []Entry, named bool, cleanup func(), err error) {
	switch args.FileMode {
	case FileModeCsvList:
		csv, err := readSource(args.Source)
		if err != nil {
			return nil, false, nil, err
		}
		csvForEachValue(string(csv), func(value string) {
			entries = append(entries, Entry{Path: value})
		})
		return entries, true, nil, nil

	case FileModeCsvMerged:
		csv, err := readSource(args.Source)
		if err != nil {
			return nil, false, nil, err
		}
		merged, err := csvMergeFiles(string(csv), readSource)
		if err != nil {
			return nil, false, nil, err
		}
		return []Entry{{Path: args.Source, Content: merged}}, false, nil, nil

	case FileModeLinks:
		links, err := extractLinks(args.Source)
		if err != nil {
			return nil, false, nil, err
		}
		if len(links) == 0 {
			return nil, false, nil, fmt.Errorf("no links found on %s", args.Source)
		}
		for _, link := range links {
			entries = append(entries, Entry{Path: link})
		}
		return entries, true, nil, nil
	}

	// Normal mode: the source decides its own shape.
	source := args.Source
	if isGitURL(source) {
		tempDir, err := cloneGitRepo(source)
		if err != nil {
			return nil, false, nil, err
		}
		cleanup = func() { _ = os.RemoveAll(tempDir) }
		paths, err := walkDirectory(tempDir, langData)
		if err != nil {
			return nil, false, cleanup, err
		}
		for _, p := range paths {
			entries = append(entries, Entry{Path: p})
		}
		return entries, true, cleanup, nil
	}
	if isDir(source) {
		paths, err := walkDirectory(source, langData)
		if err != nil {
			return nil, false, nil, err
		}
		for _, p := range paths {
			entries = append(entries, Entry{Path: p})
		}
		return entries, true, nil, nil
	}
	return []Entry{{Path: source}}, false, nil, nil
}

// countEntries computes the command's count for every entry on a bounded
// worker pool. Results come back indexed so output order always matches
// entry order regardless of worker scheduling.
func countEntries(command Command, entries []Entry, tk Tokenizer) []Result {
	results := make([]Result, len(entries))

	numWorkers := numThreads
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(entries) {
		numWorkers = len(entries)
	}

	jobs := make(chan int, len(entries))
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go countWorker(command, entries, results, tk, jobs, &wg)
	}
	for i := range entries {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

func countWorker(command Command, entries []Entry, results []Result, tk Tokenizer, jobs <-chan int, wg *sync.WaitGroup) {
	defer wg.Done()
	for i := range jobs {
		entry := entries[i]
		result := Result{Path: entry.Path}

		content := entry.Content
		if content == nil {
			var err error
			content, err = readSource(entry.Path)
			if err != nil {
				result.Err = err
				results[i] = result
				continue
			}
		}

		result.Bytes = int64(len(content))
		count, err := doCalculation(command, content, tk)
		if err != nil {
			result.Err = fmt.Errorf("%s: %w", entry.Path, err)
		}
		result.Count = count
		results[i] = result
	}
}

// runCount executes one full invocation: expand the source into entries,
// count each one, and emit the results. Any entry error aborts the run.
func runCount(args Arguments, tk Tokenizer, langData *LoadedLanguageData) error {
	entries, named, cleanup, err := resolveEntries(args, langData)
	if cleanup != nil {
		defer cleanup()
	}
	if err != nil {
		return err
	}

	results := countEntries(args.Command, entries, tk)
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}

	return emitResults(results, named)
}
