package plan

import (
	"fmt"

	"vmtemplate-generator/internal/match"
	"vmtemplate-generator/internal/schema"
)

// CandidateElements returns the elements a field is matched against: the
// parentless elements, or every element when none is parentless.
func CandidateElements(xsd *schema.ParsedXsdSchema) []schema.XmlElement {
	if top := xsd.TopLevel(); len(top) > 0 {
		return top
	}

	return xsd.Elements
}

// Rank returns every candidate element for field, best first.
func Rank(field schema.JsonField, xsd *schema.ParsedXsdSchema) match.CandidateList {
	return match.RankCandidates(field, CandidateElements(xsd))
}

// AutoMap maps every JSON field onto its best XML element.
func AutoMap(form *schema.ParsedJsonSchema, xsd *schema.ParsedXsdSchema, cfg Config) *Result {
	result := &Result{
		Mappings:     []schema.MappingSuggestion{},
		UnmappedJSON: []string{},
		UnmappedXML:  []string{},
	}

	elements := CandidateElements(xsd)
	selected := make(map[string]bool)

	for _, field := range form.Fields {
		candidates := match.RankCandidates(field, elements)
		best := candidates.Best()

		if best == nil || best.Score.Total < cfg.MinConfidence {
			reason := unmappedReason(candidates, cfg)

			result.UnmappedJSON = append(result.UnmappedJSON, field.ID)
			result.Unmapped = append(result.Unmapped, UnmappedField{
				FieldID:    field.ID,
				Candidates: candidates.Top(cfg.MaxCandidates),
				Reason:     reason,
			})
			result.Diagnostics.AddWarning(CodeUnmappedField,
				fmt.Sprintf("json field %q: %s", field.ID, reason), 0)

			continue
		}

		m := schema.MappingSuggestion{
			JsonFieldID:     field.ID,
			JsonFieldPath:   field.Path,
			JsonFieldLabel:  field.Label,
			XmlElementName:  best.Element.Name,
			XmlElementPath:  best.Element.Path,
			VariableName:    VariableName(field.ID),
			ConfidenceScore: match.RoundConfidence(best.Score.Total),
			IsAutoMapped:    true,
			DataType:        field.Type,
		}

		result.Mappings = append(result.Mappings, m)
		selected[m.XmlElementName] = true

		if m.ConfidenceScore < cfg.AutoMapThreshold {
			result.Diagnostics.AddWarning(CodeLowConfidence,
				fmt.Sprintf("json field %q -> %q: confidence %.2f below %.2f, review the mapping",
					field.ID, m.XmlElementName, m.ConfidenceScore, cfg.AutoMapThreshold), 0)
		}

		if candidates.IsAmbiguous(cfg.AmbiguityThreshold) {
			result.Diagnostics.AddWarning(CodeAmbiguous,
				fmt.Sprintf("json field %q -> %q: %s, review the mapping",
					field.ID, m.XmlElementName, ambiguity(candidates)), 0)
		}

		if best.TypeCompat.Compatibility == match.TypeIncompatible {
			result.Diagnostics.AddWarning(CodeTypeMismatch,
				fmt.Sprintf("json field %q (%s) -> %q (%s): %s",
					field.ID, field.Type, m.XmlElementName, best.Element.Type, best.TypeCompat.Reason), 0)
		}
	}

	for _, e := range xsd.Elements {
		if e.IsTopLevel() && !selected[e.Name] {
			result.UnmappedXML = append(result.UnmappedXML, e.Name)
		}
	}

	return result
}

func unmappedReason(candidates match.CandidateList, cfg Config) string {
	best := candidates.Best()
	if best == nil {
		return "no xml elements to match against"
	}

	return fmt.Sprintf("best match %q (%.2f) below threshold %.2f",
		best.Element.Name, best.Score.Total, cfg.MinConfidence)
}

func ambiguity(candidates match.CandidateList) string {
	best, second := candidates.Best(), candidates.RunnerUp()

	return fmt.Sprintf("top candidates %q (%.2f) and %q (%.2f) are too close",
		best.Element.Name, best.Score.Total, second.Element.Name, second.Score.Total)
}
