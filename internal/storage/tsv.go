// Package storage maintains the append-only timestamp log: a tab-separated
// text file with one entry per line, oldest first.
package storage

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xolan/timestamps/internal/apperr"
	"github.com/xolan/timestamps/internal/entry"
	"github.com/xolan/timestamps/internal/osutil"
)

const (
	// DocumentsDir is the directory under the home directory holding the log.
	DocumentsDir = "Documents"
	// EntriesFile is the name of the tab-separated log file
	EntriesFile = "timestamps.tsv"
)

// ErrNoOpenEntry is returned by Log.LastOpen when the log has no open entry.
var ErrNoOpenEntry = errors.New("no open entry in log")

// GetStoragePath returns the default log path, <home>/Documents/timestamps.tsv.
// The Documents directory must already exist; it is never created.
func GetStoragePath() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	return requireDir(filepath.Join(home, DocumentsDir, EntriesFile))
}

// ResolvePath returns the log path to use. An empty override selects
// GetStoragePath; a leading "~/" expands to the home directory. The
// directory containing the resulting path must exist.
func ResolvePath(override string) (string, error) {
	switch {
	case override == "":
		return GetStoragePath()
	case strings.HasPrefix(override, "~/"):
		home, err := homeDir()
		if err != nil {
			return "", err
		}
		return requireDir(filepath.Join(home, override[2:]))
	default:
		return requireDir(override)
	}
}

func requireDir(path string) (string, error) {
	dir := filepath.Dir(path)
	if !osutil.IsDir(dir) {
		return "", apperr.WithPath(apperr.KindDirectoryMissing, "missing log directory", dir, nil)
	}
	return path, nil
}

func homeDir() (string, error) {
	home, err := osutil.Provider.UserHomeDir()
	if err != nil {
		return "", apperr.New(apperr.KindHomeDirectoryUnavailable, "unable to determine home directory", err)
	}
	if home == "" {
		return "", apperr.New(apperr.KindHomeDirectoryUnavailable, "unable to determine home directory", nil)
	}
	return home, nil
}

// Log is an open handle on the log file. It is opened read-write so a run
// can scan existing lines and then append to the same file.
// There is no locking: concurrent runs may interleave.
type Log struct {
	path string
	file *os.File
}

// Open opens the log at path for reading and appending, creating it with
// 0644 permissions if it doesn't exist.
func Open(path string) (*Log, error) {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, apperr.WithPath(apperr.KindIO, "open log", path, err)
	}
	return &Log{path: path, file: file}, nil
}

// ReadLines returns every line of the log in file order, without line
// terminators. A trailing "\r" is dropped. Lines may be of any length.
func (l *Log) ReadLines() ([]string, error) {
	if _, err := l.file.Seek(0, io.SeekStart); err != nil {
		return nil, apperr.WithPath(apperr.KindIO, "seek log", l.path, err)
	}

	lines := []string{}
	reader := bufio.NewReader(l.file)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperr.WithPath(apperr.KindIO, "read log", l.path, err)
		}
	}
	return lines, nil
}

// LastOpen reads the log and returns its most recent open entry.
// Returns ErrNoOpenEntry if there is none.
func (l *Log) LastOpen() (entry.Entry, error) {
	lines, err := l.ReadLines()
	if err != nil {
		return entry.Entry{}, err
	}
	return FindLastOpen(lines)
}

// Append writes e as a new line at the end of the log. Existing lines are
// never touched.
func (l *Log) Append(e entry.Entry) error {
	if _, err := l.file.Seek(0, io.SeekEnd); err != nil {
		return apperr.WithPath(apperr.KindIO, "seek log", l.path, err)
	}
	if _, err := l.file.WriteString(e.Line() + "\n"); err != nil {
		return apperr.WithPath(apperr.KindIO, "write log", l.path, err)
	}
	return nil
}

// Close closes the underlying file.
func (l *Log) Close() error {
	if err := l.file.Close(); err != nil {
		return apperr.WithPath(apperr.KindIO, "close log", l.path, err)
	}
	return nil
}

// AppendEntry appends a single entry to the log at path.
// Creates the file if it doesn't exist.
func AppendEntry(path string, e entry.Entry) (err error) {
	logFile, err := Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := logFile.Close(); err == nil {
			err = cerr
		}
	}()

	return logFile.Append(e)
}

// FindLastOpen scans lines from the most recent backwards and returns the
// first entry whose duration text is exactly entry.ZeroDuration. Lines
// without a tab are skipped. Only the nearest open entry is considered: if
// its timestamp is malformed the scan fails rather than looking further back.
// Returns ErrNoOpenEntry if no line is open.
func FindLastOpen(lines []string) (entry.Entry, error) {
	for i := len(lines) - 1; i >= 0; i-- {
		timestamp, duration, ok := entry.SplitLine(lines[i])
		if !ok || duration != entry.ZeroDuration {
			continue
		}

		ts, err := entry.ParseTimestamp(timestamp)
		if err != nil {
			return entry.Entry{}, apperr.New(apperr.KindParse, "parse start entry", err)
		}
		return entry.Entry{Timestamp: ts}, nil
	}
	return entry.Entry{}, ErrNoOpenEntry
}
