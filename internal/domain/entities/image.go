package entities

// Image describes one result returned by the external image provider.
// Images are never persisted; the wire names match what the web client
// renders.
type Image struct {
	ID           string `json:"id"`
	ThumbnailURL string `json:"thumb"`
	AltText      string `json:"alt"`
}
