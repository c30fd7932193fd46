package ytmusic

// Result types the ranking policy cares about. The catalog emits more
// (album, artist, playlist); anything else is ignored during selection.
const (
	ResultTypeSong  = "song"
	ResultTypeVideo = "video"
)

// PlaceholderThumbnail is rendered when a candidate carries no artwork.
const PlaceholderThumbnail = "https://via.placeholder.com/150"

type Artist struct {
	Name string `json:"name"`
	ID   string `json:"id,omitempty"`
}

type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Candidate is one row of a catalog search response, pre-ranked by the
// catalog. Zero DurationSeconds means the duration is unknown, not that
// the track is instant; the views label keeps the catalog's own
// formatting ("1.2M", "850K", sometimes empty).
type Candidate struct {
	ResultType      string      `json:"resultType"`
	VideoID         string      `json:"videoId"`
	Title           string      `json:"title"`
	Artists         []Artist    `json:"artists"`
	Thumbnails      []Thumbnail `json:"thumbnails"`
	DurationSeconds int         `json:"duration_seconds"`
	Views           string      `json:"views"`
}

// ArtistName returns the first credited artist, or "Unknown".
func (c Candidate) ArtistName() string {
	if len(c.Artists) == 0 || c.Artists[0].Name == "" {
		return "Unknown"
	}
	return c.Artists[0].Name
}

// ThumbnailURL returns the highest-resolution artwork. The catalog lists
// thumbnails in ascending size, so ties and unsized entries fall back to
// the last one.
func (c Candidate) ThumbnailURL() string {
	if len(c.Thumbnails) == 0 {
		return PlaceholderThumbnail
	}
	best := c.Thumbnails[len(c.Thumbnails)-1]
	for _, t := range c.Thumbnails {
		if t.Width*t.Height > best.Width*best.Height {
			best = t
		}
	}
	if best.URL == "" {
		return PlaceholderThumbnail
	}
	return best.URL
}
