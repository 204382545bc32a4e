package wizard

import (
	"reflect"
	"strings"

	"github.com/blackcobradev90/waterLillyDemo/internal/feature/intake/transport/http/dto"
)

// Step groups a disjoint subset of the questionnaire fields. Fields are
// struct field names of dto.CreateUserFormReq so they can feed
// validator.StructPartial directly.
type Step struct {
	Title  string
	Fields []string
}

// Steps is the wizard's fixed step sequence over the intake schema.
var Steps = []Step{
	{Title: "Personal Information", Fields: []string{"FirstName", "LastName", "Email"}},
	{Title: "Contact Details", Fields: []string{"Address", "Phone", "PostCode"}},
	{Title: "Demographics", Fields: []string{"Gender", "Birthday", "ExpectedIncome"}},
	{Title: "Health & Coverage", Fields: []string{"PregnantOrAdopting", "Coverage", "TobaccoUser", "MajorMedicalCondition"}},
}

// FieldSchema describes one questionnaire field for clients rendering the
// wizard. It is read off the binding tags of dto.CreateUserFormReq, so the
// published schema and the enforced schema are the same definition.
type FieldSchema struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Required  bool     `json:"required"`
	Format    string   `json:"format,omitempty"`
	Enum      []string `json:"enum,omitempty"`
	MinLength int      `json:"minLength,omitempty"`
}

// StepSchema describes one wizard step.
type StepSchema struct {
	Title  string        `json:"title"`
	Fields []FieldSchema `json:"fields"`
}

// Schema returns the step and field definitions derived from the shared
// request struct.
func Schema() []StepSchema {
	reqType := reflect.TypeOf(dto.CreateUserFormReq{})
	out := make([]StepSchema, 0, len(Steps))
	for _, step := range Steps {
		fields := make([]FieldSchema, 0, len(step.Fields))
		for _, name := range step.Fields {
			sf, ok := reqType.FieldByName(name)
			if !ok {
				continue
			}
			fields = append(fields, describeField(sf))
		}
		out = append(out, StepSchema{Title: step.Title, Fields: fields})
	}
	return out
}

func describeField(sf reflect.StructField) FieldSchema {
	fs := FieldSchema{
		Name: strings.Split(sf.Tag.Get("json"), ",")[0],
		Type: fieldType(sf.Type),
	}
	for _, rule := range strings.Split(sf.Tag.Get("binding"), ",") {
		tag, param, _ := strings.Cut(rule, "=")
		switch tag {
		case "required":
			fs.Required = true
		case "email":
			fs.Format = "email"
		case "datetime":
			fs.Format = "date-time"
		case "oneof":
			fs.Enum = strings.Fields(param)
		case "min":
			fs.MinLength = atoi(param)
		}
	}
	return fs
}

func fieldType(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int64:
		return "integer"
	default:
		return "string"
	}
}

// atoi parses the small non-negative constraint parameters used in the tags.
func atoi(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
