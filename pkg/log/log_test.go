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

package log

import (
	"bytes"
	"context"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var timestampRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3} `)

func newTestLogger(level zerolog.Level) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return New(buf, Options{Level: level, NoColor: true}), buf
}

func lines(buf *bytes.Buffer) []string {
	out := strings.TrimSpace(buf.String())
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"INF info message",
				"WRN warning message",
				"ERR error message",
				"INF success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("info %s", "test")
				logger.Warningf("warning %s", "test")
				logger.Errorf("error %s", "test")
				logger.Successf("success %s", "test")
			},
			wantLogs: []string{
				"INF info test",
				"WRN warning test",
				"ERR error test",
				"INF success test",
			},
		},
		{
			name: "debug_filtered_at_info",
			op: func(t *testing.T, logger *Logger) {
				logger.Debugf("hidden %d", 1)
				logger.Info("shown")
			},
			wantLogs: []string{
				"INF shown",
			},
		},
		{
			name: "debug_after_set_level",
			op: func(t *testing.T, logger *Logger) {
				logger.SetLevel(zerolog.DebugLevel)
				logger.Debug("now visible")
			},
			wantLogs: []string{
				"DBG now visible",
			},
		},
		{
			name: "highlight_quotes_name",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("%s: copying started ...", logger.Highlight("a.txt"))
			},
			wantLogs: []string{
				"INF 'a.txt': copying started ...",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger(zerolog.InfoLevel)

			tt.op(t, logger)

			got := lines(buf)
			require.Equal(t, len(tt.wantLogs), len(got), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Regexp(t, timestampRe, got[i], "log line %d should start with a millisecond timestamp", i)
				assert.Equal(t, want, timestampRe.ReplaceAllString(got[i], ""), "log line %d should match", i)
			}
		})
	}
}

func TestLoggerCustomTimeFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, Options{Level: zerolog.InfoLevel, TimeFormat: "15:04:05.000", NoColor: true})

	logger.Info("hello")

	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}\.\d{3} INF hello`, strings.TrimSpace(buf.String()))
}

func TestLoggerColor(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, Options{Level: zerolog.InfoLevel})

	logger.Warning("careful")

	assert.Contains(t, buf.String(), "\x1b[", "colored output should contain escape codes")
	assert.Contains(t, buf.String(), "careful")
}

func TestLoggerContext(t *testing.T) {
	// Create logger
	logger := New(io.Discard, Options{Level: zerolog.InfoLevel})

	// Add to context
	ctx := context.Background()
	ctx = NewContext(ctx, logger)

	// Get from context
	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	// Check panic on missing logger
	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}

func TestFileOperationFormatting(t *testing.T) {
	tests := []struct {
		name string
		op   FileOperation
		want string
	}{
		{
			name: "new_file",
			op: FileOperation{
				Name:   "data.csv",
				Status: "copying completed.",
				Size:   100,
				IsNew:  true,
			},
			want: "INF ✓ 'data.csv': copying completed. bytes=100",
		},
		{
			name: "tagged_file",
			op: FileOperation{
				Name:     "data.csv",
				Status:   "copying completed.",
				Size:     100,
				IsNew:    true,
				IsTagged: true,
			},
			want: "INF ⟳ 'data.csv': copying completed. bytes=100",
		},
		{
			name: "skipped_file",
			op: FileOperation{
				Name:      "data.csv",
				Status:    "skipped",
				Size:      50,
				IsSkipped: true,
			},
			want: "WRN • 'data.csv': skipped bytes=50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger(zerolog.InfoLevel)

			logger.LogFileOperation(context.Background(), tt.op)

			got := lines(buf)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, timestampRe.ReplaceAllString(got[0], ""), "formatted output should match")
		})
	}
}
