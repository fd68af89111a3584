package events

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// recordField decodes one raw value into target.
type recordField func(target any) (err error)

// rawRecord is a single undecoded event in either encoding.
type rawRecord struct {
	whole  recordField
	fields func() (fields map[string]recordField, err error)
}

func splitJSON(raw []byte) (records []rawRecord, err error) {
	var doc struct {
		Events []json.RawMessage `json:"events"`
	}
	err = json.Unmarshal(raw, &doc)
	if err != nil {
		return records, err
	}

	records = make([]rawRecord, 0, len(doc.Events))
	for _, msg := range doc.Events {
		msg := msg
		records = append(records, rawRecord{
			whole: func(target any) error { return json.Unmarshal(msg, target) },
			fields: func() (fields map[string]recordField, err error) {
				var parts map[string]json.RawMessage
				err = json.Unmarshal(msg, &parts)
				if err != nil {
					return fields, err
				}
				fields = make(map[string]recordField, len(parts))
				for key, part := range parts {
					part := part
					fields[key] = func(target any) error { return json.Unmarshal(part, target) }
				}
				return fields, err
			},
		})
	}

	return records, err
}

func splitYAML(raw []byte) (records []rawRecord, err error) {
	var doc struct {
		Events []yaml.Node `yaml:"events"`
	}
	err = yaml.Unmarshal(raw, &doc)
	if err != nil {
		return records, err
	}

	records = make([]rawRecord, 0, len(doc.Events))
	for _, node := range doc.Events {
		node := node
		records = append(records, rawRecord{
			whole: node.Decode,
			fields: func() (fields map[string]recordField, err error) {
				var parts map[string]yaml.Node
				err = node.Decode(&parts)
				if err != nil {
					return fields, err
				}
				fields = make(map[string]recordField, len(parts))
				for key, part := range parts {
					part := part
					fields[key] = part.Decode
				}
				return fields, err
			},
		})
	}

	return records, err
}

// decodeRecords decodes each record independently. A record that does not
// decode as a whole is rebuilt field by field; fields of the wrong type are
// dropped and reported instead of failing the dataset.
func decodeRecords(records []rawRecord) (evs []Event, warnings []string) {
	evs = make([]Event, 0, len(records))

	for i, rec := range records {
		var ev Event
		err := rec.whole(&ev)
		if err == nil {
			evs = append(evs, ev)
			continue
		}

		var recWarnings []string
		ev, recWarnings = decodeFields(i, rec)
		warnings = append(warnings, recWarnings...)
		evs = append(evs, ev)
	}

	return evs, warnings
}

func decodeFields(i int, rec rawRecord) (ev Event, warnings []string) {
	fields, err := rec.fields()
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("event %d is not an object, zero-filled: %v", i, err))
		return ev, warnings
	}

	drop := func(key string, err error) {
		warnings = append(warnings, fmt.Sprintf("event %d field %s dropped: %v", i, key, err))
	}

	if field, ok := fields["event_name"]; ok {
		if err = field(&ev.Name); err != nil {
			drop("event_name", err)
		}
	}
	if field, ok := fields["event_description"]; ok {
		if err = field(&ev.Description); err != nil {
			drop("event_description", err)
		}
	}
	if field, ok := fields["softskills"]; ok {
		ev.SoftSkills = decodeTags(i, "softskills", field, &warnings)
	}
	if field, ok := fields["hardskills"]; ok {
		ev.HardSkills = decodeTags(i, "hardskills", field, &warnings)
	}
	if field, ok := fields["skill_improvement_scores"]; ok {
		ev.Scores = decodeScores(i, field, &warnings)
	}

	return ev, warnings
}

func decodeTags(i int, key string, field recordField, warnings *[]string) (tags []string) {
	var raw []any
	err := field(&raw)
	if err != nil {
		*warnings = append(*warnings, fmt.Sprintf("event %d field %s dropped: %v", i, key, err))
		return tags
	}

	for _, value := range raw {
		tag, ok := value.(string)
		if !ok {
			*warnings = append(*warnings, fmt.Sprintf("event %d %s entry %v dropped: not a string", i, key, value))
			continue
		}
		tags = append(tags, tag)
	}

	return tags
}

func decodeScores(i int, field recordField, warnings *[]string) (scores map[string]int) {
	var raw map[string]any
	err := field(&raw)
	if err != nil {
		*warnings = append(*warnings, fmt.Sprintf("event %d field skill_improvement_scores dropped: %v", i, err))
		return scores
	}

	skills := make([]string, 0, len(raw))
	for skill := range raw {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	scores = make(map[string]int, len(raw))
	for _, skill := range skills {
		score, ok := integral(raw[skill])
		if !ok {
			*warnings = append(*warnings, fmt.Sprintf("event %d score %q dropped: %v is not an integer", i, skill, raw[skill]))
			continue
		}
		scores[skill] = score
	}

	return scores
}

// integral accepts the whole-number representations JSON and YAML decoders produce.
func integral(value any) (n int, ok bool) {
	switch v := value.(type) {
	case int:
		n, ok = v, true
	case int64:
		n, ok = int(v), true
	case uint64:
		if v <= math.MaxInt {
			n, ok = int(v), true
		}
	case float64:
		if v == math.Trunc(v) && math.Abs(v) <= math.MaxInt32 {
			n, ok = int(v), true
		}
	}
	return n, ok
}

func parseRecords(raw []byte, format Format) (data Dataset, err error) {
	var records []rawRecord
	switch format {
	case FormatJSON:
		records, err = splitJSON(raw)
	case FormatYAML:
		records, err = splitYAML(raw)
	default:
		err = errors.Errorf("unknown dataset format: %q", format)
		return data, err
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to parse %s dataset", format)
		return data, err
	}

	data.Events, data.decodeWarnings = decodeRecords(records)

	return data, err
}
