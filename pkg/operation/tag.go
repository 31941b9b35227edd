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

package operation

import (
	"path/filepath"
	"strings"
)

// 🏷️ TagFileName inserts "-<tag>" before the extension of name.
// Only the last extension counts, and a leading dot does not start one:
//
//	report.txt     -> report-old.txt
//	archive.tar.gz -> archive.tar-old.gz
//	.env           -> .env-old
func TagFileName(name, tag string) string {
	ext := filepath.Ext(name)
	if ext == name {
		ext = ""
	}
	return strings.TrimSuffix(name, ext) + "-" + tag + ext
}
