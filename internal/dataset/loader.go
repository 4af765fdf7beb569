// Package dataset loads conference session records from CSV or JSON
// files. It is the session-record provider for the planner: source-format
// parsing and date coercion happen here, scoring never sees raw rows.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/okian/confplan/internal/domain/clock"
	"github.com/okian/confplan/internal/domain/model"
	"github.com/okian/confplan/pkg/logger"
	"github.com/okian/confplan/pkg/metrics"
)

// dateLayouts are tried in order when coercing the Date column.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"01/02/2006",
	"January 2, 2006",
}

// Load reads session records from path, picking the codec by extension
// (.csv or .json). Duplicate rows (same date, start, location, title) are
// dropped, keeping the first occurrence. Rows without a natural key get
// their position as ID.
func Load(ctx context.Context, path string) ([]model.Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	var sessions []model.Session
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		sessions, err = decodeCSV(f)
	case ".json":
		sessions, err = decodeJSON(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	sessions = dedupe(ctx, sessions)
	recordTimeRepairs(sessions)
	metrics.UpdateDatasetSize(len(sessions))
	logger.Get().Info(ctx, "dataset loaded",
		logger.String("path", path),
		logger.Int("sessions", len(sessions)),
	)
	return sessions, nil
}

// record mirrors one JSON dataset row. Field names follow the source
// spreadsheet's column headers.
type record struct {
	Date               string `json:"Date"`
	Start              string `json:"Start"`
	End                string `json:"End"`
	Location           string `json:"Location"`
	Track              string `json:"Track"`
	Symposium          string `json:"Symposium"`
	Session            string `json:"Session"`
	Title              string `json:"Title"`
	Description        string `json:"Description"`
	Speaker            string `json:"Speaker"`
	SpeakerAffiliation string `json:"SpeakerAffiliation"`
	Type               string `json:"Type"`
	AllAuthors         string `json:"AllAuthors"`
}

func decodeJSON(r io.Reader) ([]model.Session, error) {
	var rows []record
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	sessions := make([]model.Session, 0, len(rows))
	for i, row := range rows {
		sessions = append(sessions, row.toSession(i))
	}
	return sessions, nil
}

func decodeCSV(r io.Reader) ([]model.Session, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingHeader, err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	var sessions []model.Session
	for i := 0; ; i++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset row %d: %w", i, err)
		}
		get := func(name string) string {
			idx, ok := col[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}
		rec := record{
			Date:               get("Date"),
			Start:              get("Start"),
			End:                get("End"),
			Location:           get("Location"),
			Track:              get("Track"),
			Symposium:          get("Symposium"),
			Session:            get("Session"),
			Title:              get("Title"),
			Description:        get("Description"),
			Speaker:            get("Speaker"),
			SpeakerAffiliation: get("SpeakerAffiliation"),
			Type:               get("Type"),
			AllAuthors:         get("AllAuthors"),
		}
		sessions = append(sessions, rec.toSession(i))
	}
	return sessions, nil
}

func (r record) toSession(pos int) model.Session {
	return model.Session{
		ID:                 strconv.Itoa(pos),
		Date:               parseDate(r.Date),
		Start:              r.Start,
		End:                r.End,
		Title:              r.Title,
		Description:        r.Description,
		Track:              r.Track,
		Symposium:          r.Symposium,
		SessionName:        r.Session,
		Type:               r.Type,
		Location:           r.Location,
		Speaker:            r.Speaker,
		SpeakerAffiliation: r.SpeakerAffiliation,
		AllAuthors:         r.AllAuthors,
	}
}

// parseDate coerces the Date column with a small layout list. Unparseable
// dates collapse to the zero time; those records still score and rank,
// they just group under one day.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// recordTimeRepairs counts the clock repairs the loaded dataset will need,
// so operators can see data quality without scanning rows.
func recordTimeRepairs(sessions []model.Session) {
	for _, s := range sessions {
		iv := clock.Normalize(s.Start, s.End)
		if iv.Malformed {
			metrics.RecordMalformedTime()
		}
		if iv.Corrected {
			metrics.RecordCorrectedTime()
		}
	}
}

// dedupe drops rows that repeat an earlier row's (date, start, location,
// title) key.
func dedupe(ctx context.Context, sessions []model.Session) []model.Session {
	seen := make(map[string]struct{}, len(sessions))
	out := sessions[:0]
	dropped := 0
	for _, s := range sessions {
		key := s.Date.Format("2006-01-02") + "|" + s.Start + "|" + s.Location + "|" + s.Title
		if _, dup := seen[key]; dup {
			dropped++
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	if dropped > 0 {
		logger.Get().Warn(ctx, "dropped duplicate dataset rows", logger.Int("dropped", dropped))
	}
	return out
}
