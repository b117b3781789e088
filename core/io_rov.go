package core

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/routesim/gaorex/state"
)

// LoadROVASNs opens path and parses it as a one-ASN-per-line ROV list.
func LoadROVASNs(path string, log *slog.Logger) (map[state.ASN]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening ROV ASN file %q", path)
	}
	defer f.Close()
	return ParseROVASNs(f, log)
}

// ParseROVASNs reads one ASN per line from r. Blank and '#'-prefixed
// lines are skipped; lines that don't parse as an integer are logged at
// Warn (if log is non-nil) and skipped.
func ParseROVASNs(r io.Reader, log *slog.Logger) (map[state.ASN]bool, error) {
	out := make(map[state.ASN]bool)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		asn, err := strconv.Atoi(line)
		if err != nil {
			if log != nil {
				log.Warn("skipping unparseable ROV ASN line", "line", line)
			}
			continue
		}
		out[state.ASN(asn)] = true
	}
	return out, errors.Wrap(scanner.Err(), "reading ROV ASNs")
}
