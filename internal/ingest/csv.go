package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/noaa-owp/reach-decomp/internal/network"
)

// LoadCSV reads a segment table from r with the header
// "ID,ToID[,WaterbodyID]" and returns the connection rows plus, if a
// WaterbodyID column is present, the waterbody rows — both in the file's
// row order, ready for ExtractConnections / ExtractWaterbodies.
//
// This performs no schema validation beyond parsing integral ids; row
// schema validation is the ingestion collaborator's caller's concern, out
// of scope for the engine itself (§1). A row that fails to parse as an
// integer is a MalformedInput error (§7), returned immediately and never
// swallowed.
func LoadCSV(r io.Reader) (connections []Row, waterbodies []Row, err error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("ingest: reading CSV header: %w", err)
	}

	wbCol := -1
	for i, name := range header {
		if name == "WaterbodyID" {
			wbCol = i
		}
	}

	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("ingest: reading CSV row %d: %w", line, err)
		}
		line++

		if len(record) < 2 {
			return nil, nil, &ErrMalformedRow{Line: line, Err: fmt.Errorf("expected at least 2 columns, got %d", len(record))}
		}

		src, err := strconv.ParseInt(record[0], 10, 64)
		if err != nil {
			return nil, nil, &ErrMalformedRow{Line: line, Err: err}
		}
		dst, err := strconv.ParseInt(record[1], 10, 64)
		if err != nil {
			return nil, nil, &ErrMalformedRow{Line: line, Err: err}
		}
		connections = append(connections, Row{Source: network.NodeID(src), Target: network.NodeID(dst)})

		if wbCol >= 0 && wbCol < len(record) {
			wb, err := strconv.ParseInt(record[wbCol], 10, 64)
			if err != nil {
				return nil, nil, &ErrMalformedRow{Line: line, Err: err}
			}
			waterbodies = append(waterbodies, Row{Source: network.NodeID(src), Target: network.NodeID(wb)})
		}
	}

	return connections, waterbodies, nil
}
