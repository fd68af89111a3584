package events

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

// Format identifies a dataset encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (format Format, err error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		format = FormatJSON
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		err = errors.Errorf("unsupported dataset extension: %s (use .json, .yaml or .yml)", path)
	}
	return format, err
}

// Load reads and normalizes a dataset from a JSON or YAML file.
func Load(path string) (data Dataset, err error) {
	var format Format
	format, err = FormatFromPath(path)
	if err != nil {
		return data, err
	}

	var fileData []byte
	fileData, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read dataset file: %s", path)
		return data, err
	}

	data, err = Parse(fileData, format)
	if err != nil {
		err = errors.Wrapf(err, "failed to load dataset: %s", path)
		return data, err
	}

	return data, err
}

// Parse decodes raw dataset bytes and normalizes the result. Only a document
// whose top level cannot be decoded is an error; malformed records are kept
// with their bad fields zero-filled and reported by Validate.
func Parse(raw []byte, format Format) (data Dataset, err error) {
	data, err = parseRecords(raw, format)
	if err != nil {
		return data, err
	}

	data.Normalize()

	return data, err
}

// Normalize cleans records in place. Malformed records are zero-filled rather
// than rejected: tags are trimmed, NFC-normalized and deduplicated, negative
// scores are clamped to zero and unnamed events get a positional name.
func (d *Dataset) Normalize() {
	for i := range d.Events {
		ev := &d.Events[i]

		ev.Name = strings.TrimSpace(ev.Name)
		if ev.Name == "" {
			ev.Name = fmt.Sprintf("event #%d", i+1)
		}
		ev.Description = strings.TrimSpace(ev.Description)
		ev.SoftSkills = cleanTags(ev.SoftSkills)
		ev.HardSkills = cleanTags(ev.HardSkills)

		if len(ev.Scores) == 0 {
			ev.Scores = nil
			continue
		}

		scores := make(map[string]int, len(ev.Scores))
		for skill, score := range ev.Scores {
			skill = cleanSkill(skill)
			if skill == "" {
				continue
			}
			if score < 0 {
				score = 0
			}
			scores[skill] += score
		}
		ev.Scores = scores
	}
}

// Validate reports suspicious records. Nothing it finds prevents aggregation.
func (d Dataset) Validate() (warnings []string) {
	warnings = make([]string, 0, len(d.decodeWarnings))
	warnings = append(warnings, d.decodeWarnings...)

	for i, ev := range d.Events {
		if len(ev.SoftSkills) == 0 && len(ev.HardSkills) == 0 {
			warnings = append(warnings, fmt.Sprintf("event %d (%s) has no skill tags", i, ev.Name))
		}

		skills := make([]string, 0, len(ev.Scores))
		for skill := range ev.Scores {
			skills = append(skills, skill)
		}
		sort.Strings(skills)

		for _, skill := range skills {
			if !slices.Contains(ev.SoftSkills, skill) && !slices.Contains(ev.HardSkills, skill) {
				warnings = append(warnings, fmt.Sprintf("event %d (%s) scores untagged skill %q", i, ev.Name, skill))
			}
		}
	}

	return warnings
}

func cleanSkill(skill string) (cleaned string) {
	cleaned = norm.NFC.String(strings.TrimSpace(skill))
	return cleaned
}

func cleanTags(tags []string) (cleaned []string) {
	if len(tags) == 0 {
		return cleaned
	}

	seen := make(map[string]struct{}, len(tags))
	cleaned = make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = cleanSkill(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		cleaned = append(cleaned, tag)
	}

	return cleaned
}
