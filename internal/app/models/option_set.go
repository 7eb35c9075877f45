package models

import "intake-report-service/internal/pkg/dto/responses"

type Option struct {
	Code  string `json:"code" bson:"code"`
	Label string `json:"label" bson:"label"`
}

type OptionSet struct {
	ID       string   `json:"-" bson:"_id,omitempty"`
	Kind     string   `json:"kind" bson:"kind"`
	Language string   `json:"language" bson:"language"`
	Options  []Option `json:"options" bson:"options"`
}

func (s OptionSet) ConvertIntoResponse() responses.OptionSet {
	options := make([]responses.Option, len(s.Options))
	for i, option := range s.Options {
		options[i] = responses.Option{Code: option.Code, Label: option.Label}
	}
	return responses.OptionSet{
		Kind:     s.Kind,
		Language: s.Language,
		Options:  options,
	}
}

// MapLabel resolves a coded value to its display label. An unknown code comes
// back unchanged so the document never loses information the form sent.
func MapLabel(options []Option, code string) string {
	if code == "" {
		return ""
	}
	for _, option := range options {
		if option.Code == code {
			return option.Label
		}
	}
	return code
}
