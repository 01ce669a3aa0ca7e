package command

import "github.com/kalendu/kalendu/pkg/event"

// StubExporter records what was exported instead of touching the
// filesystem.
type StubExporter struct {
	LastEvents   []event.Event
	LastFilename string
	Path         string
	Err          error
}

func (s *StubExporter) Export(events []event.Event, filename string) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	s.LastEvents = events
	s.LastFilename = filename
	return s.Path, nil
}
