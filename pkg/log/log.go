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
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// DefaultTimeFormat prints wall clock time with millisecond precision
const DefaultTimeFormat = "2006-01-02 15:04:05.000"

// ⚙️ Options configures a Logger
type Options struct {
	Level      zerolog.Level // Minimum level written
	TimeFormat string        // Layout for the timestamp column, DefaultTimeFormat when empty
	NoColor    bool          // Disable ANSI colors
}

// 🎯 FileOperation describes what happened to one file of a copy run
type FileOperation struct {
	Name      string // Base name of the file
	Status    string // Short status word shown to the user
	Size      int64  // Size of the copied file in bytes
	IsNew     bool   // Copied into a free destination path
	IsTagged  bool   // An existing destination file was renamed first
	IsSkipped bool   // Nothing was done
}

// 🎯 Logger writes timestamped, severity colored lines to a console
type Logger struct {
	zlog    zerolog.Logger
	mu      sync.Mutex
	noColor bool
}

// timestampHook stamps each event with a preformatted local time
type timestampHook struct {
	format string
	now    func() time.Time
}

func (h timestampHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Str(zerolog.TimestampFieldName, h.now().Format(h.format))
}

// 🏭 New creates a new logger writing to console
func New(console io.Writer, opts Options) *Logger {
	if opts.TimeFormat == "" {
		opts.TimeFormat = DefaultTimeFormat
	}

	writer := zerolog.ConsoleWriter{
		Out:     console,
		NoColor: opts.NoColor,
		FormatTimestamp: func(i interface{}) string {
			ts, _ := i.(string)
			if opts.NoColor {
				return ts
			}
			return color.New(color.Faint).Sprint(ts)
		},
	}

	zlog := zerolog.New(writer).
		Hook(timestampHook{format: opts.TimeFormat, now: time.Now}).
		Level(opts.Level)

	return &Logger{
		zlog:    zlog,
		noColor: opts.NoColor,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// SetLevel changes the minimum level written
func (l *Logger) SetLevel(level zerolog.Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zlog = l.zlog.Level(level)
}

func (l *Logger) paint(attr color.Attribute, s string) string {
	c := color.New(attr)
	if l.noColor {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c.Sprint(s)
}

// Highlight colors a file or directory name for embedding in a message
func (l *Logger) Highlight(name string) string {
	return l.paint(color.FgCyan, "'"+name+"'")
}

// 📝 formatFileOperation formats a file operation for display
func (l *Logger) formatFileOperation(op FileOperation) string {
	var symbol string
	var symbolColor color.Attribute
	switch {
	case op.IsSkipped:
		symbol = "•"
		symbolColor = color.FgYellow
	case op.IsTagged:
		symbol = "⟳"
		symbolColor = color.FgBlue
	case op.IsNew:
		symbol = "✓"
		symbolColor = color.FgGreen
	default:
		symbol = "-"
		symbolColor = color.FgWhite
	}

	return fmt.Sprintf("%s %s: %s", l.paint(symbolColor, symbol), l.Highlight(op.Name), op.Status)
}

// 📝 LogFileOperation logs the outcome of a single file
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ev := l.zlog.Info()
	if op.IsSkipped {
		ev = l.zlog.Warn()
	}
	ev.Int64("bytes", op.Size).Msg(l.formatFileOperation(op))
}

// 📝 Debug logs a debug message
func (l *Logger) Debug(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zlog.Debug().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zlog.Error().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zlog.Info().Msg(l.paint(color.FgGreen, msg))
}

// 📝 Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Debug(fmt.Sprintf(format, args...))
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
