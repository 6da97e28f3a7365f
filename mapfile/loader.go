// This file implements the loader: Load consumes any io.Reader, LoadFile
// opens a file by path. Both return a ready-to-query core.Network.
package mapfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/wayfind/core"
)

// Sentinel errors returned by the loader.
var (
	// ErrBadRecord indicates a record line with the wrong number of
	// comma-separated fields (exactly three are required).
	ErrBadRecord = errors.New("mapfile: malformed record")

	// ErrBadCost indicates a record whose cost field does not parse as a
	// floating point number.
	ErrBadCost = errors.New("mapfile: cost is not a number")
)

// recordFields is the number of comma-separated fields per record line.
const recordFields = 3

// Load reads a map-file description from r and builds the road network.
//
// Behavior per line (after stripping surrounding whitespace): blank lines
// and '#' comments are skipped; everything else must be FROM,TO,COST.
// The cost field tolerates surrounding whitespace ("A,B, 5" is valid);
// labels are taken verbatim, so "A, B,5" names the location " B".
//
// Load is all-or-nothing: the first malformed record aborts with an error
// naming the 1-based line number, and no partial network is returned.
//
// Complexity: O(L) over the number of input lines.
func Load(r io.Reader) (*core.Network, error) {
	net := core.NewNetwork()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		// Skip blanks and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != recordFields {
			return nil, fmt.Errorf("%w: line %d: want %d fields, got %d",
				ErrBadRecord, lineNo, recordFields, len(fields))
		}

		cost, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadCost, lineNo, fields[2])
		}

		if err = net.AddConnection(fields[0], fields[1], cost); err != nil {
			return nil, fmt.Errorf("mapfile: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("mapfile: read: %w", err)
	}

	return net, nil
}

// LoadFile opens the named map file and loads it via Load.
func LoadFile(path string) (*core.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapfile: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}
