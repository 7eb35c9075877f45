package models

import "intake-report-service/internal/pkg/dto/responses"

type LocaleBundle struct {
	ID          string            `json:"-" bson:"_id,omitempty"`
	Language    string            `json:"language" bson:"language"`
	Scope       string            `json:"scope" bson:"scope"`
	Strings     map[string]string `json:"strings" bson:"strings"`
	AboutClinic string            `json:"aboutClinic,omitempty" bson:"aboutClinic,omitempty"`
}

func (b LocaleBundle) ConvertIntoResponse() responses.LocaleBundle {
	return responses.LocaleBundle{
		Language:    b.Language,
		Scope:       b.Scope,
		Strings:     b.Strings,
		AboutClinic: b.AboutClinic,
	}
}
