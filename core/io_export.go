package core

import (
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"github.com/routesim/gaorex/state"
)

type ribRow struct {
	asn    state.ASN
	prefix string
	path   string
}

// ExportRIBCSV creates path and writes every AS's Local-RIB to it.
func ExportRIBCSV(path string, rs *state.RoutingState) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating RIB output file %q", path)
	}
	defer f.Close()
	return WriteRIBCSV(f, rs)
}

// WriteRIBCSV renders every (asn, prefix) RIB entry to w as
// asn,prefix,as_path, sorted by that same triple. The as_path field is a
// Python-style tuple literal, including the one-element trailing-comma
// form; split from ExportRIBCSV so tests can assert on the exact bytes
// without touching the filesystem.
func WriteRIBCSV(w io.Writer, rs *state.RoutingState) error {
	var rows []ribRow
	for asn, rib := range rs.RIBs {
		for _, route := range rib {
			rows = append(rows, ribRow{asn: asn, prefix: route.Prefix, path: route.RenderPath()})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].asn != rows[j].asn {
			return rows[i].asn < rows[j].asn
		}
		if rows[i].prefix != rows[j].prefix {
			return rows[i].prefix < rows[j].prefix
		}
		return rows[i].path < rows[j].path
	})

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"asn", "prefix", "as_path"}); err != nil {
		return errors.Wrap(err, "writing RIB header")
	}
	for _, row := range rows {
		if err := cw.Write([]string{strconv.Itoa(int(row.asn)), row.prefix, row.path}); err != nil {
			return errors.Wrap(err, "writing RIB row")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing RIB output")
}
