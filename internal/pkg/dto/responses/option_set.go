package responses

type Option struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

type OptionSet struct {
	Kind     string   `json:"kind"`
	Language string   `json:"language"`
	Options  []Option `json:"options"`
}
