package match

import "strings"

type semanticRule struct {
	keyword  string
	variants []string
}

// semanticRules maps Russian form-label keywords onto the English words
// departmental element names are usually built from.
var semanticRules = []semanticRule{
	{"фамилия", []string{"lastname", "family", "surname"}},
	{"имя", []string{"firstname", "given", "name"}},
	{"отчество", []string{"middlename", "patronymic", "middle"}},

	{"дата рождения", []string{"birthdate", "birth", "dateofbirth"}},
	{"дата выдачи", []string{"issuedate", "issue", "date"}},

	{"паспорт", []string{"passport", "document", "doc"}},
	{"серия", []string{"series", "serial"}},
	{"номер", []string{"number", "num"}},
	{"снилс", []string{"snils", "insurance"}},

	{"телефон", []string{"phone", "mobile", "tel"}},
	{"email", []string{"email", "mail", "e-mail"}},
	{"адрес", []string{"address", "addr"}},

	{"пол", []string{"gender", "sex"}},
	{"возраст", []string{"age"}},
}

// SemanticScore returns 1 when the label contains a known keyword and the
// element name or description contains one of its variants, and 0 otherwise.
// Matching is by substring, so "имя" also matches inside "Имя ребенка".
func SemanticScore(label, elementName, elementDescription string) float64 {
	if label == "" {
		return 0
	}

	l := strings.ToLower(label)
	name := strings.ToLower(elementName)
	desc := strings.ToLower(elementDescription)

	for _, rule := range semanticRules {
		if !strings.Contains(l, rule.keyword) {
			continue
		}

		for _, v := range rule.variants {
			if strings.Contains(name, v) || strings.Contains(desc, v) {
				return 1
			}
		}
	}

	return 0
}
