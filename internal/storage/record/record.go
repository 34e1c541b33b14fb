// Package record implements the flat five-line profile record format:
//
//	<name> <password> <score> <totalGames> <totalWins>
//	<flag1:0|1> <flag2:0|1> <flag3:0|1>
//	<friend1> <friend2> ...
//	<history1>|<history2>|...
//	<message1>|<message2>|...
//
// Lists are written with a trailing separator after every element.
package record

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mcoot/rockpaperscissors/internal/model"
)

// LinesPerRecord is the number of lines each profile occupies
const LinesPerRecord = 5

const (
	fieldSeparator = " "
	listSeparator  = "|"
)

// Encode writes every profile as a five-line record
func Encode(w io.Writer, profiles []*model.Profile) error {
	bw := bufio.NewWriter(w)
	for _, p := range profiles {
		if err := writeProfile(bw, p); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// EncodeProfile returns the five-line record of a single profile
func EncodeProfile(p *model.Profile) string {
	var sb strings.Builder
	bw := bufio.NewWriter(&sb)
	_ = writeProfile(bw, p)
	_ = bw.Flush()
	return sb.String()
}

func writeProfile(w *bufio.Writer, p *model.Profile) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s %s %d %d %d\n", p.Name, p.Password, p.Score, p.TotalGames, p.TotalWins)

	for _, id := range model.Achievements {
		if p.Achievements.Unlocked(id) {
			sb.WriteString("1" + fieldSeparator)
		} else {
			sb.WriteString("0" + fieldSeparator)
		}
	}
	sb.WriteString("\n")

	for _, f := range p.Friends {
		sb.WriteString(f + fieldSeparator)
	}
	sb.WriteString("\n")

	for _, h := range p.GameHistory {
		sb.WriteString(h + listSeparator)
	}
	sb.WriteString("\n")

	for _, m := range p.Messages {
		sb.WriteString(m + listSeparator)
	}
	sb.WriteString("\n")

	_, err := w.WriteString(sb.String())
	return err
}

// Decode parses consecutive five-line records.
// Blank lines where a record would start are ignored. A record that cannot be parsed,
// or that is cut short by the end of input, is skipped; its error is joined into the
// returned error and the profiles decoded so far are still returned. Lines have no
// length limit. A failure of the reader itself stops decoding; that error does not
// wrap ErrCorruptRecord.
func Decode(r io.Reader) ([]*model.Profile, error) {
	br := bufio.NewReader(r)

	var (
		profiles []*model.Profile
		errs     []error
		lineNo   int
		done     bool
		readErr  error
	)

	next := func() (string, bool) {
		if done {
			return "", false
		}
		line, err := br.ReadString('\n')
		if err != nil {
			done = true
			if !errors.Is(err, io.EOF) {
				readErr = err
				return "", false
			}
			if line == "" {
				return "", false
			}
		}
		lineNo++
		line = strings.TrimSuffix(line, "\n")
		return strings.TrimSuffix(line, "\r"), true
	}

	for {
		header, ok := next()
		if !ok {
			break
		}
		if strings.TrimSpace(header) == "" {
			continue
		}
		start := lineNo

		lines := []string{header}
		for len(lines) < LinesPerRecord {
			line, ok := next()
			if !ok {
				break
			}
			lines = append(lines, line)
		}
		if len(lines) < LinesPerRecord {
			if readErr == nil {
				errs = append(errs, fmt.Errorf("%w: line %d: truncated record (%d of %d lines)",
					model.ErrCorruptRecord, start, len(lines), LinesPerRecord))
			}
			break
		}

		p, err := DecodeProfile(lines)
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", start, err))
			continue
		}
		profiles = append(profiles, p)
	}

	if readErr != nil {
		errs = append(errs, fmt.Errorf("read records after line %d: %w", lineNo, readErr))
	}

	return profiles, errors.Join(errs...)
}

// DecodeProfile parses exactly one record from its five lines
func DecodeProfile(lines []string) (*model.Profile, error) {
	if len(lines) != LinesPerRecord {
		return nil, fmt.Errorf("%w: expected %d lines, got %d", model.ErrCorruptRecord, LinesPerRecord, len(lines))
	}

	header := strings.Fields(lines[0])
	if len(header) != 5 {
		return nil, fmt.Errorf("%w: header has %d fields, want 5", model.ErrCorruptRecord, len(header))
	}

	p := model.NewProfile(header[0], header[1])

	counters := []*int{&p.Score, &p.TotalGames, &p.TotalWins}
	for i, dst := range counters {
		n, err := strconv.Atoi(header[2+i])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: bad counter %q", model.ErrCorruptRecord, p.Name, header[2+i])
		}
		*dst = n
	}
	if p.TotalGames < 0 || p.TotalWins < 0 || p.TotalWins > p.TotalGames {
		return nil, fmt.Errorf("%w: %s: inconsistent totals (games=%d wins=%d)",
			model.ErrCorruptRecord, p.Name, p.TotalGames, p.TotalWins)
	}

	// Missing trailing flags are treated as locked
	flags := strings.Fields(lines[1])
	for i, id := range model.Achievements {
		if i >= len(flags) {
			break
		}
		switch flags[i] {
		case "1":
			p.Achievements.Unlock(id)
		case "0":
		default:
			return nil, fmt.Errorf("%w: %s: bad achievement flag %q", model.ErrCorruptRecord, p.Name, flags[i])
		}
	}

	if friends := strings.Fields(lines[2]); len(friends) > 0 {
		p.Friends = friends
	}
	p.GameHistory = splitList(lines[3])
	p.Messages = splitList(lines[4])

	return p, nil
}

func splitList(line string) []string {
	if line == "" {
		return nil
	}
	parts := strings.Split(line, listSeparator)
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 0 {
		return nil
	}
	return parts
}

// ValidToken reports whether s can be stored as a name, password or friend entry.
// Tokens are space-separated in the record, so they must be non-empty and free of
// whitespace and list separators.
func ValidToken(s string) bool {
	if s == "" {
		return false
	}
	return !strings.ContainsFunc(s, func(r rune) bool {
		return r == '|' || r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
	})
}

var textReplacer = strings.NewReplacer(listSeparator, "/", "\r\n", " ", "\n", " ", "\r", " ")

// CleanText makes free text safe to store as a list element
func CleanText(s string) string {
	return textReplacer.Replace(s)
}
