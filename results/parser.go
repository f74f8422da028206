package results

import (
	"bufio"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
)

const (
	// HeaderMarker starts a section header line such as
	// "# HasK3 n=10 trials=100".
	HeaderMarker = '#'

	// ColumnHeader is the literal line the simulator writes below every
	// section header.
	ColumnHeader = "p,probability"

	maxLineBytes = 1024 * 1024

	// Written by some editors at the start of the file.
	byteOrderMark = "\uFEFF"
)

// ParseStats tallies how each input line was classified.
type ParseStats struct {
	Lines         int
	Blank         int
	Headers       int
	ColumnHeaders int
	Samples       int

	// Orphans are well-formed data lines seen while no property and graph
	// size were in effect.
	Orphans int

	// Malformed counts data lines that were not two finite numbers, header
	// lines that named no property, and lines over maxLineBytes.
	Malformed int
}

// Dropped is the number of non-blank lines that contributed nothing.
func (s ParseStats) Dropped() int {
	return s.Orphans + s.Malformed
}

// scanState is the current section. A zero value means "undefined".
type scanState struct {
	property string
	n        int
}

func (s scanState) defined() bool {
	return s.property != "" && s.n > 0
}

// Parse reads the simulator's sectioned output into a fresh RecordModel in a
// single pass. Individual lines that cannot be used, including lines longer
// than maxLineBytes, are skipped and counted in the returned ParseStats; only
// a failure of r itself yields an error, in which case the model holds
// everything read before the failure.
func Parse(r io.Reader) (RecordModel, ParseStats, error) {
	model := make(RecordModel)
	stats := ParseStats{}
	state := scanState{}

	reader := bufio.NewReaderSize(r, 64*1024)

	for {
		line, tooLong, err := readLine(reader)
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return model, stats, pfx.Err(err)
		}

		stats.Lines++
		if tooLong {
			stats.Malformed++
			continue
		}

		text := string(line)
		if stats.Lines == 1 {
			text = strings.TrimPrefix(text, byteOrderMark)
		}

		state = parseLine(text, state, model, &stats)
	}

	return model, stats, nil
}

// readLine returns the next line without its terminator. A line over
// maxLineBytes is still consumed to its end, but comes back empty with tooLong
// set. A final line without a newline is returned normally; io.EOF is only
// reported once nothing is left.
func readLine(r *bufio.Reader) (line []byte, tooLong bool, err error) {
	started := false

	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if started && errors.Is(err, io.EOF) {
				return line, tooLong, nil
			}
			return nil, false, err
		}
		started = true

		if !tooLong {
			if len(line)+len(chunk) > maxLineBytes {
				line, tooLong = nil, true
			} else {
				line = append(line, chunk...)
			}
		}

		if !isPrefix {
			return line, tooLong, nil
		}
	}
}

func parseLine(raw string, state scanState, model RecordModel, stats *ParseStats) scanState {
	line := strings.TrimSpace(raw)

	switch {
	case line == "":
		stats.Blank++
		return state
	case line[0] == HeaderMarker:
		next, ok := parseHeader(line, state)
		if !ok {
			stats.Malformed++
			return state
		}
		stats.Headers++
		return next
	case line == ColumnHeader:
		stats.ColumnHeaders++
		return state
	}

	sample, ok := parseSample(line)
	if !ok {
		stats.Malformed++
		return state
	}

	if !state.defined() {
		stats.Orphans++
		return state
	}

	key := SeriesKey{Property: state.property, N: state.n}
	model[key] = append(model[key], sample)
	stats.Samples++

	return state
}

// parseHeader reads "# <Property> n=<int> [other tokens]". The first token is
// the property; any n= token sets the graph size, and an n= token that is not
// a positive integer leaves the size undefined. Without an n= token the
// previous size carries over.
func parseHeader(line string, prev scanState) (scanState, bool) {
	tokens := strings.Fields(line[1:])
	if len(tokens) == 0 {
		return prev, false
	}

	next := scanState{property: tokens[0], n: prev.n}
	for _, token := range tokens[1:] {
		if !strings.HasPrefix(token, "n=") {
			continue
		}

		n, err := strconv.Atoi(strings.TrimPrefix(token, "n="))
		if err != nil || n <= 0 {
			next.n = 0
			continue
		}
		next.n = n
	}

	return next, true
}

func parseSample(line string) (Sample, bool) {
	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return Sample{}, false
	}

	p, ok := parseFinite(fields[0])
	if !ok {
		return Sample{}, false
	}

	prob, ok := parseFinite(fields[1])
	if !ok {
		return Sample{}, false
	}

	return Sample{P: p, Probability: prob}, true
}

func parseFinite(field string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}
