package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/okian/confplan/internal/domain/model"
)

// csvHeader is the fixed export column order.
var csvHeader = []string{
	"Date", "Start", "End", "Location", "Symposium", "Session", "Title",
	"Speaker", "SpeakerAffiliation", "Type", "relevance_score", "matched_areas",
}

// WriteCSV exports ranked sessions to w in the fixed column order, one row
// per session, matched categories comma-joined.
func WriteCSV(w io.Writer, scored []model.ScoredSession) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, s := range scored {
		row := []string{
			s.Session.Day().Format("2006-01-02"),
			s.Session.Start,
			s.Session.End,
			s.Session.Location,
			s.Session.Symposium,
			s.Session.SessionName,
			s.Session.Title,
			s.Session.Speaker,
			s.Session.SpeakerAffiliation,
			s.Session.Type,
			strconv.FormatFloat(s.Score, 'f', -1, 64),
			strings.Join(s.MatchedCategories(), ", "),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
