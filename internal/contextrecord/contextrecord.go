// Package contextrecord validates questionnaire data submitted with a scan and
// renders it into the text block handed to stage two.
package contextrecord

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/kurochkinivan/scan_analyzer/internal/domain"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaName = "context_record.json"

// NoContext is rendered when no questionnaire data was provided.
const NoContext = "No patient questionnaire data available."

//go:embed schema.json
var schemaJSON []byte

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaName, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}

	schema, err := compiler.Compile(schemaName)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return schema, nil
})

// Parse validates data against the questionnaire schema and decodes it.
func Parse(data []byte) (*domain.ContextRecord, error) {
	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidContext, err)
	}
	if err := schema.Validate(v); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidContext, err)
	}

	var record domain.ContextRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidContext, err)
	}

	return &record, nil
}

// Format renders the record as the labelled text block stage two expects.
func Format(record *domain.ContextRecord) string {
	if record == nil {
		return NoContext
	}

	p := record.PersonalInformation
	h := record.MedicalHistory

	var b strings.Builder

	b.WriteString("PATIENT QUESTIONNAIRE DATA:\n\n")

	b.WriteString("PERSONAL INFORMATION:\n")
	bullet(&b, "Name", strings.TrimSpace(p.FirstName+" "+p.LastName))
	bullet(&b, "Date of Birth", p.DateOfBirth)
	bullet(&b, "Gender", p.Gender)
	bullet(&b, "Weight", p.Weight)
	bullet(&b, "Height", p.Height)
	bullet(&b, "Ethnicity", p.Ethnicity)

	b.WriteString("\nMEDICAL HISTORY:\n")
	bullet(&b, "Current Medications", join(h.CurrentMedications))
	bullet(&b, "Known Allergies", join(h.KnownAllergies))
	bullet(&b, "Family History of Chronic Diseases", h.FamilyHistory.HasChronicDiseases)
	if len(h.FamilyHistory.Conditions) > 0 {
		bullet(&b, "Family Disease History", join(h.FamilyHistory.Conditions))
	}

	b.WriteString("\nCURRENT SYMPTOMS:\n")
	bullet(&b, "Reported Symptoms", join(record.CurrentSymptoms))

	b.WriteString("\nSUMMARY:\n")
	b.WriteString(summary(record))

	return b.String()
}

func summary(record *domain.ContextRecord) string {
	var parts []string

	gender := record.PersonalInformation.Gender
	if gender == "" {
		gender = "patient"
	}

	if symptoms := join(record.CurrentSymptoms); symptoms != "" {
		parts = append(parts, fmt.Sprintf("Patient is a %s presenting with %s.", gender, strings.ToLower(symptoms)))
	} else {
		parts = append(parts, fmt.Sprintf("Patient is a %s with no reported symptoms.", gender))
	}

	family := record.MedicalHistory.FamilyHistory
	if family.HasChronicDiseases == "yes" && len(family.Conditions) > 0 {
		parts = append(parts, fmt.Sprintf("Family history includes %s.", strings.ToLower(join(family.Conditions))))
	} else {
		parts = append(parts, "No significant family history reported.")
	}

	if meds := join(record.MedicalHistory.CurrentMedications); meds != "" {
		parts = append(parts, fmt.Sprintf("Currently taking %s.", strings.ToLower(meds)))
	}

	return strings.Join(parts, " ")
}

func bullet(b *strings.Builder, label, value string) {
	b.WriteString("• ")
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteByte('\n')
}

func join(items []string) string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return strings.Join(out, ", ")
}
