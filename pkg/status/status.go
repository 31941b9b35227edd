// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

// 📊 FileStatus is the outcome of one matched source entry
type FileStatus int

const (
	StatusUnknown  FileStatus = iota
	StatusCopied              // Destination path was free, file copied
	StatusReplaced            // Existing file renamed with the tag, then copied
	StatusSkipped             // Existing file has the same size, nothing done
	StatusIgnored             // Entry is a directory and was not copied
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusCopied:
		return "copied"
	case StatusReplaced:
		return "replaced"
	case StatusSkipped:
		return "skipped"
	case StatusIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

// 📄 FileEntry records what happened to one source entry
type FileEntry struct {
	Name      string     // Base name of the entry
	Status    FileStatus // Outcome
	Size      int64      // Source size in bytes
	RenamedTo string     // Tagged name of the displaced destination file, if any
}

// 📈 Report collects the outcome of a copy run
type Report struct {
	SrcDir  string
	DstDir  string
	Matched int // Files matched by the pattern, directories excluded
	Entries []FileEntry
}

// 🏭 NewReport creates an empty report for a run between two directories
func NewReport(srcDir, dstDir string) *Report {
	return &Report{
		SrcDir: srcDir,
		DstDir: dstDir,
	}
}

// Track appends an entry to the report
func (r *Report) Track(entry FileEntry) {
	r.Entries = append(r.Entries, entry)
}

// Count returns the number of entries with the given status
func (r *Report) Count(s FileStatus) int {
	n := 0
	for _, e := range r.Entries {
		if e.Status == s {
			n++
		}
	}
	return n
}

// Lookup returns the entry for name
func (r *Report) Lookup(name string) (FileEntry, bool) {
	for _, e := range r.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return FileEntry{}, false
}
