package responses

type LocaleBundle struct {
	Language    string            `json:"language"`
	Scope       string            `json:"scope"`
	Strings     map[string]string `json:"strings"`
	AboutClinic string            `json:"about_clinic,omitempty"`
}
