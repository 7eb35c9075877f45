package responses

// GeneratedReport carries the outcome of one report build. When the artifact
// could be staged on object storage, URL holds a short-lived viewing link and
// Content stays empty. When staging was unavailable, Content holds the raw PDF
// bytes for a direct download response.
type GeneratedReport struct {
	URL       string `json:"url,omitempty"`
	FileName  string `json:"file_name"`
	ExpiresIn int    `json:"expires_in_seconds,omitempty"`
	Content   []byte `json:"-"`
}

func (r *GeneratedReport) Downloadable() bool {
	return r.URL == "" && len(r.Content) > 0
}
