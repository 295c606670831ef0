// Package loader reads the tabular address input into records. The format
// is line oriented with the fixed schema
//
//	LON,LAT,NUMBER,STREET,UNIT,CITY,DISTRICT,REGION,POSTCODE,ID,HASH
//
// where the first line is a header. Field splitting honours a single
// double-quote toggle so a comma inside a quoted run is literal. Rows that
// fail validation are counted and skipped; loading only fails when the file
// cannot be opened.
package loader

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/atlasmesh/geocoder/internal/address"
)

// field positions in the input schema.
const (
	colLon = iota
	colLat
	colNumber
	colStreet
	colUnit
	colCity
	colDistrict
	colRegion
	colPostcode
	colID
	colHash
	minFields = 11
)

// Result carries the accepted records and the row accounting for one parse.
type Result struct {
	Records  []address.Record
	Accepted int
	Rejected int
}

// ParseFile reads and parses the file at path.
func ParseFile(path string, log *zap.Logger) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	return parse(bufio.NewScanner(f), log), nil
}

func parse(scanner *bufio.Scanner, log *zap.Logger) Result {
	var res Result
	header := true
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if header {
			header = false
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		rec, err := parseRow(line)
		if err != nil {
			res.Rejected++
			log.Warn("skipping malformed row", zap.Int("line", lineNo), zap.Error(err))
			continue
		}
		res.Records = append(res.Records, rec)
		res.Accepted++
	}
	if err := scanner.Err(); err != nil {
		log.Warn("stopped reading input early", zap.Error(err))
	}
	return res
}

func parseRow(line string) (address.Record, error) {
	fields := splitLine(line)
	if len(fields) < minFields {
		return address.Record{}, fmt.Errorf("expected at least %d fields, got %d", minFields, len(fields))
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(fields[colLon]), 64)
	if err != nil {
		return address.Record{}, fmt.Errorf("parse longitude %q: %w", fields[colLon], err)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(fields[colLat]), 64)
	if err != nil {
		return address.Record{}, fmt.Errorf("parse latitude %q: %w", fields[colLat], err)
	}
	if !address.ValidateCoordinates(lon, lat) {
		return address.Record{}, fmt.Errorf("coordinates out of range: lon=%v lat=%v", lon, lat)
	}

	hashField := strings.TrimSpace(fields[colHash])
	hash, err := strconv.ParseUint(hashField, 16, 64)
	if err != nil {
		return address.Record{}, fmt.Errorf("parse hash %q: %w", hashField, err)
	}

	street := fields[colStreet]
	unit := fields[colUnit]
	city := fields[colCity]

	return address.Record{
		Longitude: lon,
		Latitude:  lat,
		Number:    fields[colNumber],
		Street:    street,
		Unit:      unit,
		City:      city,
		Postcode:  fields[colPostcode],
		Hash:      hash,

		OriginalStreet: street,
		OriginalUnit:   unit,
		OriginalCity:   city,
	}, nil
}

// splitLine splits on commas, treating a double quote as a toggle: commas
// inside a quoted run are literal. Quote characters themselves are dropped.
func splitLine(line string) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteByte(c)
		}
	}
	fields = append(fields, field.String())
	return fields
}
