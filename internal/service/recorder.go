package service

import (
	"errors"
	"time"

	"github.com/xolan/timestamps/internal/entry"
	"github.com/xolan/timestamps/internal/storage"
)

// Clock supplies the current time. timeutil.Clock satisfies it.
type Clock interface {
	Current() (time.Time, error)
}

// StampResult describes an entry appended by RecorderService.Stamp.
type StampResult struct {
	// Entry is the line that was appended.
	Entry entry.Entry
	// Start is the open entry the duration was measured from, nil if the
	// log had none.
	Start *entry.Entry
}

// RecorderService appends entries to the timestamp log
type RecorderService struct {
	storagePath string
	clock       Clock
}

// NewRecorderService creates a new RecorderService
func NewRecorderService(storagePath string, clock Clock) *RecorderService {
	return &RecorderService{
		storagePath: storagePath,
		clock:       clock,
	}
}

// Start appends an open entry stamped now. Prior entries are not consulted.
func (s *RecorderService) Start() (entry.Entry, error) {
	now, err := s.clock.Current()
	if err != nil {
		return entry.Entry{}, err
	}

	e := entry.Entry{Timestamp: now}
	if err := storage.AppendEntry(s.storagePath, e); err != nil {
		return entry.Entry{}, err
	}
	return e, nil
}

// Stamp appends an entry stamped now whose duration is the time elapsed
// since the most recent open entry, or zero if there is none. The matched
// open entry is left as it is.
func (s *RecorderService) Stamp() (result StampResult, err error) {
	now, err := s.clock.Current()
	if err != nil {
		return StampResult{}, err
	}

	log, err := storage.Open(s.storagePath)
	if err != nil {
		return StampResult{}, err
	}
	defer func() {
		if cerr := log.Close(); err == nil {
			err = cerr
		}
	}()

	var duration time.Duration
	start, err := log.LastOpen()
	switch {
	case err == nil:
		duration = now.Sub(start.Timestamp)
		result.Start = &start
	case errors.Is(err, storage.ErrNoOpenEntry):
	default:
		return StampResult{}, err
	}

	result.Entry = entry.Entry{Timestamp: now, Duration: duration}
	if err := log.Append(result.Entry); err != nil {
		return StampResult{}, err
	}
	return result, nil
}
