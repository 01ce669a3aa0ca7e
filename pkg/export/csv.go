package export

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/kalendu/kalendu/pkg/event"
	log "github.com/sirupsen/logrus"
)

const (
	csvDateLayout = "01/02/2006"
	csvTimeLayout = "15:04"
)

// csvHeader is the Google Calendar import header; consumers key on the
// exact column names.
var csvHeader = []string{
	"Subject", "Start Date", "Start Time", "End Date", "End Time",
	"All Day Event", "Description", "Location", "Private",
}

// CSVExporter writes calendars as Google-importable CSV files under Dir.
type CSVExporter struct {
	Dir string
}

func NewCSVExporter(dir string) *CSVExporter {
	return &CSVExporter{Dir: dir}
}

// Export writes one row per event to filename (resolved against Dir unless
// absolute) and returns the absolute output path. All-day rows carry blank
// times and a true all-day flag.
func (x *CSVExporter) Export(events []event.Event, filename string) (string, error) {
	path, err := resolvePath(x.Dir, filename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		log.Errorf("Error creating export file: %v", err)
		return "", err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(csvHeader); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}
	for _, e := range events {
		if err := writer.Write(csvRow(e)); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}
	return path, nil
}

func csvRow(e event.Event) []string {
	startTime := e.Start.Format(csvTimeLayout)
	endTime := e.End.Format(csvTimeLayout)
	allDay := "False"
	if e.IsAllDay() {
		allDay = "True"
		startTime = ""
		endTime = ""
	}
	private := "False"
	if !e.IsPublic {
		private = "True"
	}
	return []string{
		e.Name,
		e.Start.Format(csvDateLayout),
		startTime,
		e.End.Format(csvDateLayout),
		endTime,
		allDay,
		e.Description,
		e.Location,
		private,
	}
}

func resolvePath(dir, filename string) (string, error) {
	path := filename
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, filename)
	}
	return filepath.Abs(path)
}
