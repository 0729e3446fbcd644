package form

import "github.com/dmitrymomot/formcheck/pkg/validator"

// Field is one named input of a submitted form. Checked is only meaningful
// for checkboxes.
type Field struct {
	Name    string `json:"name" yaml:"name"`
	Value   string `json:"value" yaml:"value"`
	Checked bool   `json:"checked" yaml:"checked"`
}

// Finding is one failed check on a field. A card number can produce two.
type Finding struct {
	Index    int      `json:"index"`
	Field    string   `json:"field"`
	Category Category `json:"category"`
	Key      string   `json:"key"`
	Message  string   `json:"message"`
}

// Result is the outcome of one Check call. Findings are in field order.
type Result struct {
	PassID   string    `json:"pass_id"`
	Findings []Finding `json:"findings"`
}

// OK reports whether no field failed.
func (r Result) OK() bool {
	return len(r.Findings) == 0
}

// Count returns the number of findings.
func (r Result) Count() int {
	return len(r.Findings)
}

// Messages returns the finding messages in order.
func (r Result) Messages() []string {
	out := make([]string, len(r.Findings))
	for i, f := range r.Findings {
		out[i] = f.Message
	}
	return out
}

// ForField returns the findings for fields named name.
func (r Result) ForField(name string) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Field == name {
			out = append(out, f)
		}
	}
	return out
}

// Err returns nil for a clean result, or the findings as
// validator.ValidationErrors.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}

	errs := make(validator.ValidationErrors, 0, len(r.Findings))
	for _, f := range r.Findings {
		errs.Add(validator.ValidationError{
			Field:          f.Field,
			Message:        f.Message,
			TranslationKey: f.Key,
			TranslationValues: map[string]any{
				"field":    f.Field,
				"category": string(f.Category),
			},
		})
	}
	return errs
}
