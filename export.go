package ogum

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// ExportConfig configures how a solved trajectory is written out.
type ExportConfig struct {
	Filename  string
	AsCSV     bool
	AsJSON    bool
	Timestamp bool
}

// IsUseless returns whether this configuration would not export anything.
func (c ExportConfig) IsUseless() bool {
	return !c.AsCSV && !c.AsJSON
}

func (c ExportConfig) path(extension string) string {
	if c.Timestamp {
		t := time.Now()
		return fmt.Sprintf("%s/run-%s-%d-%02d-%02dT%02d.%02d.%02d.%s", ogumConfig().outputDir, c.Filename, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), extension)
	}
	return fmt.Sprintf("%s/run-%s.%s", ogumConfig().outputDir, c.Filename, extension)
}

// StreamRecords streams the output of the channel to the configured files.
// The CSV file is written row by row as records arrive; the JSON file is
// written in full once the channel closes.
func StreamRecords(conf ExportConfig, recChan <-chan Record) {
	var fCSV *os.File
	var w *csv.Writer
	var all []Record

	if conf.AsCSV {
		f, err := os.Create(conf.path("csv"))
		if err != nil {
			panic(err)
		}
		fCSV = f
		w = csv.NewWriter(f)
		w.Write([]string{"time_s", "temperature_k", "density"})
	}

	for rec := range recChan {
		if conf.AsJSON {
			all = append(all, rec)
		}
		if w != nil {
			w.Write([]string{
				strconv.FormatFloat(rec.Time, 'g', -1, 64),
				strconv.FormatFloat(rec.Temperature, 'g', -1, 64),
				strconv.FormatFloat(rec.Density, 'g', -1, 64),
			})
		}
	}

	if w != nil {
		w.Flush()
		if err := w.Error(); err != nil {
			panic(err)
		}
		fCSV.Close()
	}
	if conf.AsJSON {
		f, err := os.Create(conf.path("json"))
		if err != nil {
			panic(err)
		}
		defer f.Close()
		marsh, err := json.Marshal(all)
		if err != nil {
			panic(err)
		}
		f.Write(marsh)
	}
}

// LoadScheduleCSV reads a time/temperature schedule from a CSV file whose
// first two columns are time in s and absolute temperature in K. A header
// row is skipped if its first field does not parse as a number.
func LoadScheduleCSV(path string) (t, T []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	line := 0
	for {
		record, rerr := r.Read()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, nil, rerr
		}
		line++
		if len(record) < 2 {
			return nil, nil, newValidationError("%s:%d: expected at least two columns, got %d", path, line, len(record))
		}
		tv, terr := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		if terr != nil {
			if line == 1 {
				continue // header row
			}
			return nil, nil, newValidationError("%s:%d: bad time value %q", path, line, record[0])
		}
		Tv, Terr := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if Terr != nil {
			return nil, nil, newValidationError("%s:%d: bad temperature value %q", path, line, record[1])
		}
		t = append(t, tv)
		T = append(T, Tv)
	}
	if len(t) == 0 {
		return nil, nil, newValidationError("%s: no schedule rows found", path)
	}
	return t, T, nil
}
