package rzd

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// StationCode is the numeric designation the upstream assigns to a
// physical station (eg. 2000000 for Moscow).
type StationCode int

// NewStationCode validates that the code is positive. Upstream codes
// are always positive integers.
func NewStationCode(code int) (StationCode, error) {
	if code <= 0 {
		return 0, &ValidationError{Field: "station code", Reason: fmt.Sprintf("must be positive, got %d", code)}
	}

	return StationCode(code), nil
}

// ParseStationCode parses a station code from its decimal form.
func ParseStationCode(value string) (StationCode, error) {
	code, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &ValidationError{Field: "station code", Reason: fmt.Sprintf("not a number: %q", value)}
	}

	return NewStationCode(code)
}

func (c StationCode) Int() int {
	return int(c)
}

func (c StationCode) String() string {
	return strconv.Itoa(int(c))
}

// TrainDateFormat is the only date layout the upstream understands,
// both in request parameters and in response payloads.
const TrainDateFormat = "02.01.2006"

// TrainDate is a calendar date of departure or arrival.
type TrainDate struct {
	year  int
	month time.Month
	day   int
}

// NewTrainDate validates the triple against the Gregorian calendar and
// fails on impossible dates (month outside 1-12, day past the end of
// the month, 29th of February outside leap years).
func NewTrainDate(year int, month int, day int) (TrainDate, error) {
	normalised := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if normalised.Year() != year || normalised.Month() != time.Month(month) || normalised.Day() != day {
		return TrainDate{}, &ValidationError{Field: "date", Reason: fmt.Sprintf("%04d-%02d-%02d is not a calendar date", year, month, day)}
	}

	return TrainDate{year: year, month: time.Month(month), day: day}, nil
}

// ParseTrainDate parses a date in the upstream DD.MM.YYYY layout.
func ParseTrainDate(value string) (TrainDate, error) {
	parsed, err := time.Parse(TrainDateFormat, strings.TrimSpace(value))
	if err != nil {
		return TrainDate{}, &ValidationError{Field: "date", Reason: fmt.Sprintf("cannot parse %q", value)}
	}

	return TrainDate{year: parsed.Year(), month: parsed.Month(), day: parsed.Day()}, nil
}

// TrainDateOf converts a time.Time to its calendar date.
func TrainDateOf(t time.Time) TrainDate {
	return TrainDate{year: t.Year(), month: t.Month(), day: t.Day()}
}

func (d TrainDate) Year() int {
	return d.year
}

func (d TrainDate) Month() time.Month {
	return d.month
}

func (d TrainDate) Day() int {
	return d.day
}

func (d TrainDate) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d TrainDate) String() string {
	return d.Time().Format(TrainDateFormat)
}

// TrainTime is an upstream wall-clock value (departure, arrival or
// journey duration) with minute precision.
type TrainTime struct {
	hour   int
	minute int
}

func NewTrainTime(hour int, minute int) (TrainTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TrainTime{}, &ValidationError{Field: "time", Reason: fmt.Sprintf("%02d:%02d is not a wall-clock time", hour, minute)}
	}

	return TrainTime{hour: hour, minute: minute}, nil
}

// ParseTrainTime parses HH:MM, tolerating a trailing seconds component
// which some upstream replies include.
func ParseTrainTime(value string) (TrainTime, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return TrainTime{}, &ValidationError{Field: "time", Reason: fmt.Sprintf("cannot parse %q", value)}
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TrainTime{}, &ValidationError{Field: "time", Reason: fmt.Sprintf("cannot parse %q", value)}
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TrainTime{}, &ValidationError{Field: "time", Reason: fmt.Sprintf("cannot parse %q", value)}
	}

	return NewTrainTime(hour, minute)
}

func (t TrainTime) Hour() int {
	return t.hour
}

func (t TrainTime) Minute() int {
	return t.minute
}

func (t TrainTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// TrainType filters a schedule search. The numeric codes are an
// upstream contract.
type TrainType int

const (
	// TrainTypeLongDistance covers long-distance trains only.
	TrainTypeLongDistance TrainType = 1
	// TrainTypeSuburban covers suburban electric trains only.
	TrainTypeSuburban TrainType = 2
	// TrainTypeAll covers every kind of train.
	TrainTypeAll TrainType = 3
)

// Code renders the train type as the upstream request parameter value.
func (t TrainType) Code() string {
	return strconv.Itoa(int(t))
}

func (t TrainType) String() string {
	switch t {
	case TrainTypeLongDistance:
		return "long-distance"
	case TrainTypeSuburban:
		return "suburban"
	case TrainTypeAll:
		return "all"
	default:
		return fmt.Sprintf("unknown (%d)", int(t))
	}
}

// RequestID identifies a prepared answer on the upstream side. Some
// endpoints return one in response to the first request; the actual
// data is fetched by a follow-up request quoting it.
type RequestID uint64

func (id RequestID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}
