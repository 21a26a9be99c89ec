package bench

import (
	"fmt"
	"strconv"
	"strings"
)

// CSVHeader is the exact header line preceding all summary rows in the
// results file: the seven axis fields followed by the four derived
// statistics.
const CSVHeader = "threads,userCount,maxFriendsPercentage,channelType,averageWork,benchmarkMode,dispatcherType,avgSentMessages,stdSentMessages,avgReceivedMessages,stdReceivedMessages"

// NumRecordFields is the width of a flat record (the axis fields only).
const NumRecordFields = 7

// NumSummaryFields is the width of a summary row.
const NumSummaryFields = 11

// RecordHeader returns the header for the flat-record form: the first seven
// CSVHeader fields.
func RecordHeader() string {
	return strings.Join(strings.SplitN(CSVHeader, ",", NumRecordFields+1)[:NumRecordFields], ",")
}

// String renders a diagnostic view of the entity: every axis value plus the
// full accumulator contents. It is for logs only and is never parsed back.
func (c *Configuration) String() string {
	return fmt.Sprintf(
		"threads=%d users=%d maxFriends=%s channel=%s work=%d mode=%s dispatcher=%s sent=%v received=%v",
		c.Threads, c.Users, formatFraction(c.MaxFriendsPercentage), c.Channel,
		c.AverageWork, c.Mode, c.Dispatcher, c.sentMessages, c.receivedMessages,
	)
}

// FlatRecord returns the canonical 7-token encoding of the axis values, in
// CSVHeader order. This is the round-trip form: ParseRecord reconstructs an
// identical axis tuple from it.
func (c *Configuration) FlatRecord() []string {
	return []string{
		strconv.Itoa(c.Threads),
		strconv.Itoa(c.Users),
		formatFraction(c.MaxFriendsPercentage),
		c.Channel.String(),
		strconv.Itoa(c.AverageWork),
		c.Mode.String(),
		c.Dispatcher.String(),
	}
}

// SummaryRow returns the 11-field comma-separated output row: the flat
// record followed by mean and sample standard deviation of the sent and
// received accumulators, each to two decimal places. With fewer than two
// samples the standard-deviation fields render as NaN; with none, the means
// do too. The row is write-only output and is never parsed back.
func (c *Configuration) SummaryRow() string {
	fields := append(c.FlatRecord(),
		fmt.Sprintf("%.2f", Mean(c.sentMessages)),
		fmt.Sprintf("%.2f", StdDev(c.sentMessages)),
		fmt.Sprintf("%.2f", Mean(c.receivedMessages)),
		fmt.Sprintf("%.2f", StdDev(c.receivedMessages)),
	)
	return strings.Join(fields, ",")
}

// ParseRecord reconstructs a Configuration from a 7-token flat record.
// Fields are positional. Numeric fields fail with a *ParseError on
// non-numeric text; variant fields fail unless the text exactly matches a
// declared variant name. There is no partial reconstruction: any bad field
// fails the whole record. A successful parse yields an entity with empty
// accumulators.
func ParseRecord(fields []string) (*Configuration, error) {
	if len(fields) != NumRecordFields {
		return nil, &ParseError{
			Field:  "record",
			Value:  strings.Join(fields, ","),
			Reason: fmt.Sprintf("expected %d fields, got %d", NumRecordFields, len(fields)),
		}
	}

	threads, err := parseInt("threads", fields[0])
	if err != nil {
		return nil, err
	}
	users, err := parseInt("userCount", fields[1])
	if err != nil {
		return nil, err
	}
	friends, err := parseFraction("maxFriendsPercentage", fields[2])
	if err != nil {
		return nil, err
	}
	channel, err := ParseChannelKind(fields[3])
	if err != nil {
		return nil, err
	}
	work, err := parseInt("averageWork", fields[4])
	if err != nil {
		return nil, err
	}
	mode, err := ParseBenchmarkMode(fields[5])
	if err != nil {
		return nil, err
	}
	dispatcher, err := ParseDispatcherKind(fields[6])
	if err != nil {
		return nil, err
	}

	return &Configuration{
		Threads:              threads,
		Users:                users,
		MaxFriendsPercentage: friends,
		Channel:              channel,
		AverageWork:          work,
		Mode:                 mode,
		Dispatcher:           dispatcher,
	}, nil
}

func parseInt(field, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Field: field, Value: s, Reason: "not a decimal integer"}
	}
	return v, nil
}

func parseFraction(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParseError{Field: field, Value: s, Reason: "not a decimal real"}
	}
	return v, nil
}

// formatFraction renders a fraction with the shortest decimal text that
// parses back to the identical float64, keeping the round-trip lossless.
func formatFraction(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
