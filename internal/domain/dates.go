package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var datePhraseRe = regexp.MustCompile(
	`(?i)\b(` +
		`\d{4}-\d{2}-\d{2}` + // YYYY-MM-DD
		`|` +
		`(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\s+\d{1,2},?\s+\d{4}` +
		`|` +
		`today|tonight|tomorrow` +
		`|` +
		`this\s+(?:weekend|saturday|sunday)` +
		`|` +
		`next\s+(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday|week|weekend)` +
		`)`,
)

// ExtractEventDate tries to extract the date of the occasion mentioned in
// the query text. Shoppers phrase urgency as relative dates ("party
// tonight", "wedding this saturday"), so relative tokens resolve against
// the reference time before falling back to the general parser.
func ExtractEventDate(
	text string,
	ref time.Time,
	loc *time.Location,
) (time.Time, bool) {

	m := datePhraseRe.FindStringSubmatch(text)
	if len(m) < 2 {
		return time.Time{}, false
	}

	token := strings.ToLower(strings.Join(strings.Fields(m[1]), " "))

	if iso, ok := resolveRelative(token, ref, loc); ok {
		return iso, true
	}

	t, err := dateparse.ParseIn(token, loc)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

func resolveRelative(token string, ref time.Time, loc *time.Location) (time.Time, bool) {
	ref = ref.In(loc)
	ref = dateOnly(ref)

	switch token {
	case "today", "tonight":
		return ref, true
	case "tomorrow":
		return ref.AddDate(0, 0, 1), true
	case "this weekend":
		return upcomingWeekday(ref, time.Saturday), true
	case "next week":
		return ref.AddDate(0, 0, 7), true
	case "next weekend":
		return nextWeekday(ref, time.Saturday).AddDate(0, 0, 7), true
	}

	if after, ok := strings.CutPrefix(token, "this "); ok {
		wd, ok := parseWeekday(after)
		if !ok {
			return time.Time{}, false
		}
		return upcomingWeekday(ref, wd), true
	}

	if after, ok := strings.CutPrefix(token, "next "); ok {
		wd, ok := parseWeekday(after)
		if !ok {
			return time.Time{}, false
		}
		return nextWeekday(ref, wd), true
	}

	return time.Time{}, false
}

func parseWeekday(s string) (time.Weekday, bool) {
	switch strings.ToLower(s) {
	case "sunday":
		return time.Sunday, true
	case "monday":
		return time.Monday, true
	case "tuesday":
		return time.Tuesday, true
	case "wednesday":
		return time.Wednesday, true
	case "thursday":
		return time.Thursday, true
	case "friday":
		return time.Friday, true
	case "saturday":
		return time.Saturday, true
	default:
		return 0, false
	}
}

// upcomingWeekday returns the next occurrence of target, counting ref
// itself when it already falls on target.
func upcomingWeekday(ref time.Time, target time.Weekday) time.Time {
	delta := (int(target) - int(ref.Weekday()) + 7) % 7
	return ref.AddDate(0, 0, delta)
}

func nextWeekday(ref time.Time, target time.Weekday) time.Time {
	cur := ref.Weekday()
	delta := (int(target) - int(cur) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return ref.AddDate(0, 0, delta)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
