package sanitize

import (
	"encoding/json"

	"github.com/skillscan/scanworker/internal/career"
)

// asText reduces any JSON value to a plain string. Strings pass through;
// objects carrying their text under a conventional key ("text" or
// "description") are unwrapped; anything else falls back to its literal
// JSON serialization so no field value is ever an unrendered object.
func asText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case map[string]any:
		if inner, ok := t["text"]; ok {
			return asText(inner)
		}
		if inner, ok := t["description"]; ok {
			return asText(inner)
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// asInt reads a numeric field, defaulting to 0 when missing or non-numeric.
func asInt(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		var n float64
		if err := json.Unmarshal([]byte(t), &n); err == nil {
			return int(n)
		}
	}
	return 0
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// asList coerces a value to a JSON array, empty when it is anything else.
func asList(v any) []any {
	if list, ok := v.([]any); ok {
		return list
	}
	return nil
}

// asObj coerces a value to a JSON object, empty when it is anything else.
func asObj(v any) map[string]any {
	if obj, ok := v.(map[string]any); ok {
		return obj
	}
	return map[string]any{}
}

func asStrings(v any) []string {
	list := asList(v)
	out := make([]string, 0, len(list))
	for _, e := range list {
		if s := asText(e); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func asCareerPaths(v any) []career.CareerPath {
	list := asList(v)
	out := make([]career.CareerPath, 0, len(list))
	for _, e := range list {
		obj := asObj(e)
		out = append(out, career.CareerPath{
			Title:          asText(obj["title"]),
			Description:    asText(obj["description"]),
			Relevance:      asText(obj["relevance"]),
			RequiredSkills: asStrings(obj["requiredSkills"]),
			JobRoles:       asStrings(obj["jobRoles"]),
		})
	}
	return out
}

func asSalaryInsights(v any) []career.SalaryInsight {
	list := asList(v)
	out := make([]career.SalaryInsight, 0, len(list))
	for _, e := range list {
		obj := asObj(e)
		foreign := asList(obj["foreignSalaries"])
		fs := make([]career.ForeignSalary, 0, len(foreign))
		for _, f := range foreign {
			fo := asObj(f)
			fs = append(fs, career.ForeignSalary{
				Country: asText(fo["country"]),
				Salary:  asText(fo["salary"]),
			})
		}
		out = append(out, career.SalaryInsight{
			Role:                 asText(obj["role"]),
			IndiaSalary:          asText(obj["indiaSalary"]),
			ForeignSalaries:      fs,
			HighestPayingCountry: asText(obj["highestPayingCountry"]),
		})
	}
	return out
}

func asLinks(v any) []career.ResourceLink {
	list := asList(v)
	out := make([]career.ResourceLink, 0, len(list))
	for _, e := range list {
		obj := asObj(e)
		out = append(out, career.ResourceLink{
			Name: asText(obj["name"]),
			URL:  asText(obj["url"]),
		})
	}
	return out
}

func asRoadmap(v any) []career.RoadmapStep {
	list := asList(v)
	out := make([]career.RoadmapStep, 0, len(list))
	for _, e := range list {
		obj := asObj(e)
		out = append(out, career.RoadmapStep{
			Month:     asText(obj["month"]),
			Focus:     asText(obj["focus"]),
			Tasks:     asStrings(obj["tasks"]),
			Resources: asLinks(obj["resources"]),
		})
	}
	return out
}

func asBadges(v any) []career.Badge {
	list := asList(v)
	out := make([]career.Badge, 0, len(list))
	for _, e := range list {
		obj := asObj(e)
		out = append(out, career.Badge{
			Name:        asText(obj["name"]),
			Description: asText(obj["description"]),
		})
	}
	return out
}

func asDayPlans(v any) []career.DayPlan {
	list := asList(v)
	out := make([]career.DayPlan, 0, len(list))
	for _, e := range list {
		obj := asObj(e)
		out = append(out, career.DayPlan{
			Day:   asText(obj["day"]),
			Focus: asText(obj["focus"]),
			Tasks: asStrings(obj["tasks"]),
		})
	}
	return out
}

func asTimetable(v any) []career.TimetableSlot {
	list := asList(v)
	out := make([]career.TimetableSlot, 0, len(list))
	for _, e := range list {
		obj := asObj(e)
		out = append(out, career.TimetableSlot{
			Part:     asText(obj["part"]),
			Activity: asText(obj["activity"]),
		})
	}
	return out
}
