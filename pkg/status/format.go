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

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"gitlab.com/tozd/go/errors"
)

// FormatCounts returns a one line tally of the report
func (r *Report) FormatCounts() string {
	return fmt.Sprintf("%d copied, %d replaced, %d skipped, %d ignored",
		r.Count(StatusCopied),
		r.Count(StatusReplaced),
		r.Count(StatusSkipped),
		r.Count(StatusIgnored))
}

// 🎨 Render writes the report as a table to w
func (r *Report) Render(w io.Writer) error {
	data := pterm.TableData{
		{"File", "Status", "Bytes", "Renamed To"},
	}
	for _, e := range r.Entries {
		renamed := e.RenamedTo
		if renamed == "" {
			renamed = "-"
		}
		data = append(data, []string{e.Name, e.Status.String(), fmt.Sprintf("%d", e.Size), renamed})
	}

	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(data).
		Srender()
	if err != nil {
		return errors.Errorf("rendering summary table: %w", err)
	}

	if _, err := fmt.Fprintf(w, "%s → %s\n%s\n%s\n", r.SrcDir, r.DstDir, table, r.FormatCounts()); err != nil {
		return errors.Errorf("writing summary: %w", err)
	}
	return nil
}
