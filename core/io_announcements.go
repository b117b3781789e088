package core

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/routesim/gaorex/state"
)

// Announcement is a single parsed row from the announcements CSV: an
// origin AS pinning a prefix, optionally tagged ROV-invalid.
type Announcement struct {
	Origin     state.ASN
	Prefix     string
	ROVInvalid bool
}

// LoadAnnouncements opens path and parses it as an announcements CSV.
func LoadAnnouncements(path string, log *slog.Logger) ([]Announcement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening announcements file %q", path)
	}
	defer f.Close()
	return ParseAnnouncements(f, log)
}

// ParseAnnouncements reads origin_asn,prefix,rov_invalid rows from r. The
// header row is discarded. Rows that fail to parse, or that have fewer
// than three fields, are skipped and logged at Debug (if log is non-nil).
func ParseAnnouncements(r io.Reader, log *slog.Logger) ([]Announcement, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	if _, err := cr.Read(); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "reading announcements header")
	}

	var out []Announcement
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if log != nil {
				log.Debug("skipping malformed announcements row", "error", err)
			}
			continue
		}
		if len(record) < 3 {
			if log != nil {
				log.Debug("skipping malformed announcements row", "record", record)
			}
			continue
		}
		origin, convErr := strconv.Atoi(strings.TrimSpace(record[0]))
		if convErr != nil {
			if log != nil {
				log.Debug("skipping malformed announcements row", "record", record)
			}
			continue
		}
		out = append(out, Announcement{
			Origin:     state.ASN(origin),
			Prefix:     strings.TrimSpace(record[1]),
			ROVInvalid: isTruthy(record[2]),
		})
	}
	return out, nil
}

// isTruthy applies the substring-based truthy check the announcements
// format uses for rov_invalid: any of "True", "true", or "1" appearing
// anywhere in the field counts as true.
func isTruthy(s string) bool {
	return strings.Contains(s, "True") || strings.Contains(s, "true") || strings.Contains(s, "1")
}
