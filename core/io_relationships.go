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

// LoadRelationships opens path and parses it as a CAIDA-format AS
// relationships file.
func LoadRelationships(path string, log *slog.Logger) (*state.ASGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening relationships file %q", path)
	}
	defer f.Close()
	return ParseRelationships(f, log)
}

// ParseRelationships reads CAIDA-format lines (asn1|asn2|rel_code[|label])
// from r. Comment lines ('#'-prefixed) and blank lines are skipped
// silently; malformed lines and relationship codes other than -1
// (provider-customer) and 0 (peer-peer) are skipped and logged at Debug
// (if log is non-nil).
func ParseRelationships(r io.Reader, log *slog.Logger) (*state.ASGraph, error) {
	graph := state.NewASGraph()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "|")
		if len(fields) < 3 {
			if log != nil {
				log.Debug("skipping malformed relationships line", "line", line)
			}
			continue
		}
		asn1, err1 := strconv.Atoi(strings.TrimSpace(fields[0]))
		asn2, err2 := strconv.Atoi(strings.TrimSpace(fields[1]))
		code, err3 := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err1 != nil || err2 != nil || err3 != nil {
			if log != nil {
				log.Debug("skipping malformed relationships line", "line", line)
			}
			continue
		}

		var rel state.Relation
		switch code {
		case -1:
			rel = state.ProviderToCustomer
		case 0:
			rel = state.PeerToPeer
		default:
			if log != nil {
				log.Debug("skipping unknown relationship code", "asn1", asn1, "asn2", asn2, "code", code)
			}
			continue
		}
		graph.AddRelationship(state.ASN(asn1), state.ASN(asn2), rel)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading relationships")
	}
	return graph, nil
}
