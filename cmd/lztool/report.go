package main

import (
	"log/slog"
	"strconv"

	"github.com/randalmurphal/lazyconf"
	"github.com/randalmurphal/lazyconf/lz"
)

type loadedFile struct {
	Path string
	List *lz.List
}

func loadFiles(paths []string, logger *slog.Logger) ([]loadedFile, error) {
	files := make([]loadedFile, 0, len(paths))
	for _, p := range paths {
		list, err := lazyconf.LoadList(nil, p)
		if err != nil {
			return nil, err
		}
		logger.Debug("file loaded", slog.String("path", p), slog.Int("records", list.Len()))
		files = append(files, loadedFile{Path: p, List: list})
	}
	return files, nil
}

type report struct {
	Entries int           `json:"entries" yaml:"entries"`
	Counted *int          `json:"counted,omitempty" yaml:"counted,omitempty"`
	Lookup  *lookupResult `json:"lookup,omitempty" yaml:"lookup,omitempty"`
	Records []recordRow   `json:"records,omitempty" yaml:"records,omitempty"`
}

type lookupResult struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	File  string `json:"file,omitempty" yaml:"file,omitempty"`
	Found bool   `json:"found" yaml:"found"`
}

type recordRow struct {
	Name       string            `json:"name" yaml:"name"`
	File       string            `json:"file" yaml:"file"`
	Attributes map[string]string `json:"attributes" yaml:"attributes"`
}

func buildReport(files []loadedFile, opts *cliOptions) report {
	var rep report
	for _, f := range files {
		rep.Entries += f.List.Len()
	}

	if opts.Count != "" {
		total := countTotal(files, opts.Count)
		rep.Counted = &total
	}

	if opts.Get != "" {
		rep.Lookup = lookup(files, opts.Get)
	}

	if opts.List {
		for _, f := range files {
			for _, rec := range f.List.Items {
				rep.Records = append(rep.Records, recordRow{Name: rec.Name, File: f.Path, Attributes: rec.Deets})
			}
		}
	}

	return rep
}

// countTotal sums key across every record. A record without the key, or with
// a value that is not an integer, counts as 1.
func countTotal(files []loadedFile, key string) int {
	total := 0
	for _, f := range files {
		for _, rec := range f.List.Items {
			n := 1
			if v, ok := rec.Get(key); ok {
				if parsed, err := strconv.Atoi(v); err == nil {
					n = parsed
				}
			}
			total += n
		}
	}
	return total
}

// lookup finds key in the first file that has it.
func lookup(files []loadedFile, key string) *lookupResult {
	for _, f := range files {
		if v, ok := f.List.Get(key); ok {
			return &lookupResult{Key: key, Value: v, File: f.Path, Found: true}
		}
	}
	return &lookupResult{Key: key}
}
