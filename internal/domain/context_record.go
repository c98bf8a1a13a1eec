package domain

type ContextRecord struct {
	PersonalInformation PersonalInformation `json:"personalInformation"`
	MedicalHistory      MedicalHistory      `json:"medicalHistory"`
	CurrentSymptoms     []string            `json:"currentSymptoms"`
}

type PersonalInformation struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	Weight      string `json:"weight"`
	Height      string `json:"height"`
	Ethnicity   string `json:"ethnicity"`
}

type MedicalHistory struct {
	CurrentMedications []string      `json:"currentMedications"`
	KnownAllergies     []string      `json:"knownAllergies"`
	FamilyHistory      FamilyHistory `json:"familyHistory"`
}

type FamilyHistory struct {
	HasChronicDiseases string   `json:"hasChronicDiseases"`
	Conditions         []string `json:"conditions"`
}
