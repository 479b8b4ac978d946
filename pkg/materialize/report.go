package materialize

import (
	"fmt"

	"github.com/docker/go-units"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/replicatedhq/treeship/pkg/errkind"
	"github.com/replicatedhq/treeship/pkg/nameset"
)

type EventKind string

const (
	FolderCreated EventKind = "folder"
	FileCopied    EventKind = "copied"
	FileMissing   EventKind = "missing"
	CopyFailed    EventKind = "failed"
)

// Event is one line of materializer output, in walk order
type Event struct {
	Kind  EventKind
	Name  string
	Dest  string
	Bytes int64
	Err   error
}

func (e Event) String() string {
	switch e.Kind {
	case FolderCreated:
		return fmt.Sprintf("Created folder: %s", e.Dest)
	case FileCopied:
		return fmt.Sprintf("Copied: %s -> %s (%s)", e.Name, e.Dest, units.HumanSize(float64(e.Bytes)))
	case FileMissing:
		return fmt.Sprintf("Missing: %s", e.Name)
	case CopyFailed:
		return fmt.Sprintf("Failed: %s -> %s: %v", e.Name, e.Dest, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Name)
	}
}

// UsedFileSet holds the source names copied into the target during one run
type UsedFileSet = nameset.Set

// Report is the outcome of a completed materialize run
type Report struct {
	TargetDir string
	Events    []Event
	Used      UsedFileSet
	// Unused source files, sorted
	Unused  []string
	Missing []errkind.MissingSourceFile
	Failed  []error
}

func newReport(targetDir string) *Report {
	return &Report{
		TargetDir: targetDir,
		Used:      nameset.New(),
		Unused:    []string{},
	}
}

func (r *Report) folder(dest string) {
	r.Events = append(r.Events, Event{Kind: FolderCreated, Dest: dest})
}

func (r *Report) copied(name, dest string, written int64) {
	r.Used.Add(name)
	r.Events = append(r.Events, Event{Kind: FileCopied, Name: name, Dest: dest, Bytes: written})
}

func (r *Report) missing(name, dest string) {
	r.Missing = append(r.Missing, errkind.MissingSourceFile{Name: name, Dest: dest})
	r.Events = append(r.Events, Event{Kind: FileMissing, Name: name, Dest: dest})
}

func (r *Report) failed(name, dest string, err error) {
	r.Failed = append(r.Failed, err)
	r.Events = append(r.Events, Event{Kind: CopyFailed, Name: name, Dest: dest, Err: err})
}

// Diagnostics joins every non-fatal problem of the run, nil when there were none
func (r *Report) Diagnostics() error {
	var multiErr *multierror.Error
	for _, missing := range r.Missing {
		multiErr = multierror.Append(multiErr, missing)
	}
	for _, failed := range r.Failed {
		multiErr = multierror.Append(multiErr, failed)
	}
	return multiErr.ErrorOrNil()
}

// Complete is true when every manifest file was placed and every source file was used
func (r *Report) Complete() bool {
	return len(r.Missing) == 0 && len(r.Failed) == 0 && len(r.Unused) == 0
}

func (r *Report) Count(kind EventKind) int {
	count := 0
	for _, event := range r.Events {
		if event.Kind == kind {
			count++
		}
	}
	return count
}
