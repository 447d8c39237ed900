package model

import "time"

// Status is the outcome of converting one Source.
type Status string

const (
	// Converted means a fresh output was written.
	Converted Status = "converted"
	// Skipped means the cached output was up to date.
	Skipped Status = "skipped"
	// UpToDate means a check found the existing output identical.
	UpToDate Status = "up-to-date"
	// OutOfDate means a check found the existing output different or missing.
	OutOfDate Status = "out-of-date"
	// Failed means conversion aborted with an error.
	Failed Status = "failed"
)

// Stats counts what a single conversion produced.
type Stats struct {
	Classes    int
	Fields     int
	Methods    int
	External   int      // distinct object types not found in the class table
	Duplicates []string // class descriptors declared more than once
}

// Lines returns the number of lines in the translated output.
func (s Stats) Lines() int {
	return s.Classes + s.Fields + s.Methods
}

// Report is the result of processing one Source.
type Report struct {
	Source   Source
	Status   Status
	Stats    Stats
	Diff     string // populated in check mode when Status is OutOfDate
	Duration time.Duration
	Err      error
}

// Manifest records converted inputs so unchanged files can be skipped on
// the next run.
type Manifest struct {
	RunID     string          `yaml:"run_id"`
	UpdatedAt time.Time       `yaml:"updated_at"`
	Entries   []ManifestEntry `yaml:"entries"`
}

// ManifestEntry is one converted input.
type ManifestEntry struct {
	Origin  Path   `yaml:"origin"`
	Output  Path   `yaml:"output"`
	Hash    string `yaml:"hash"`
	Classes int    `yaml:"classes"`
	Fields  int    `yaml:"fields"`
	Methods int    `yaml:"methods"`
}

// Lookup returns the entry recorded for origin.
func (mf Manifest) Lookup(origin Path) (ManifestEntry, bool) {
	for _, entry := range mf.Entries {
		if entry.Origin == origin {
			return entry, true
		}
	}

	return ManifestEntry{}, false
}

// Upsert replaces the entry for entry.Origin or appends it.
func (mf *Manifest) Upsert(entry ManifestEntry) {
	for i := range mf.Entries {
		if mf.Entries[i].Origin == entry.Origin {
			mf.Entries[i] = entry
			return
		}
	}

	mf.Entries = append(mf.Entries, entry)
}
