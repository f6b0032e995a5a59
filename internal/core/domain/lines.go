package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Textarea fields hold one nested record per line. Blank lines are skipped.

func splitLines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

func splitPipes(line string) []string {
	parts := strings.Split(line, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// ParseSections reads operating hours written as `Monday 09:00-17:00`.
func ParseSections(s string) ([]Section, error) {
	var out []Section
	for _, l := range splitLines(s) {
		fields := strings.Fields(l)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: %q, expected \"Day HH:MM-HH:MM\"", ErrInvalidLine, l)
		}
		start, end, ok := strings.Cut(fields[1], "-")
		if !ok || !isClock(start) || !isClock(end) || end <= start {
			return nil, fmt.Errorf("%w: %q, expected \"Day HH:MM-HH:MM\"", ErrInvalidLine, l)
		}
		out = append(out, Section{Day: fields[0], Start: start, End: end})
	}
	return out, nil
}

// FormatSections is the inverse of ParseSections.
func FormatSections(sections []Section) string {
	lines := make([]string, 0, len(sections))
	for _, s := range sections {
		lines = append(lines, fmt.Sprintf("%s %s-%s", s.Day, s.Start, s.End))
	}
	return strings.Join(lines, "\n")
}

// ParseExperiences reads `Place | Title | Period` lines; the period is optional.
func ParseExperiences(s string) ([]WorkExperience, error) {
	var out []WorkExperience
	for _, l := range splitLines(s) {
		p := splitPipes(l)
		if len(p) < 2 || len(p) > 3 || p[0] == "" || p[1] == "" {
			return nil, fmt.Errorf("%w: %q, expected \"Place | Title | Period\"", ErrInvalidLine, l)
		}
		e := WorkExperience{Place: p[0], Title: p[1]}
		if len(p) == 3 {
			e.Period = p[2]
		}
		out = append(out, e)
	}
	return out, nil
}

// ParseEducation reads the same layout as ParseExperiences.
func ParseEducation(s string) ([]Education, error) {
	exp, err := ParseExperiences(s)
	if err != nil {
		return nil, err
	}
	out := make([]Education, 0, len(exp))
	for _, e := range exp {
		out = append(out, Education(e))
	}
	return out, nil
}

func FormatExperiences(items []WorkExperience) string {
	lines := make([]string, 0, len(items))
	for _, e := range items {
		lines = append(lines, formatEntry(e.Place, e.Title, e.Period))
	}
	return strings.Join(lines, "\n")
}

func FormatEducation(items []Education) string {
	lines := make([]string, 0, len(items))
	for _, e := range items {
		lines = append(lines, formatEntry(e.Place, e.Title, e.Period))
	}
	return strings.Join(lines, "\n")
}

func formatEntry(place, title, period string) string {
	if period == "" {
		return place + " | " + title
	}
	return place + " | " + title + " | " + period
}

// ParseAddOns reads `Name | Price | Description` lines; the description is optional.
func ParseAddOns(s string) ([]AddOn, error) {
	var out []AddOn
	for _, l := range splitLines(s) {
		p := splitPipes(l)
		if len(p) < 2 || len(p) > 3 || p[0] == "" {
			return nil, fmt.Errorf("%w: %q, expected \"Name | Price | Description\"", ErrInvalidLine, l)
		}
		price, err := strconv.ParseFloat(p[1], 64)
		if err != nil || price < 0 {
			return nil, fmt.Errorf("%w: %q, price must be a positive number", ErrInvalidLine, l)
		}
		a := AddOn{Name: p[0], Price: price}
		if len(p) == 3 {
			a.Description = p[2]
		}
		out = append(out, a)
	}
	return out, nil
}

func FormatAddOns(items []AddOn) string {
	lines := make([]string, 0, len(items))
	for _, a := range items {
		price := strconv.FormatFloat(a.Price, 'f', -1, 64)
		if a.Description == "" {
			lines = append(lines, a.Name+" | "+price)
			continue
		}
		lines = append(lines, a.Name+" | "+price+" | "+a.Description)
	}
	return strings.Join(lines, "\n")
}

func isClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}
