package entity

// PlaceholderImage is served in place of an empty staff photo reference.
const PlaceholderImage = "/placeholder.svg"

// LocationRecord is the immutable content bundle for one Region.
type LocationRecord struct {
	Region       Region `validate:"required"`
	Label        string `validate:"required"`
	Flag         string
	City         string        `validate:"required"`
	Doctor       string        `validate:"required"`
	Address      string        `validate:"required"`
	Phone        string        `validate:"required"`
	WhatsApp     string        `validate:"omitempty,url"`
	Instagram    string        `validate:"required"`
	Currency     string        `validate:"required,len=3"`
	VideoURL     string        `validate:"required"`
	MapEmbedURL  string        `validate:"omitempty,url"`
	Staff        []Staff       `validate:"required,min=1,dive"`
	Services     []Service     `validate:"required,min=1,dive"`
	Testimonials []Testimonial `validate:"required,min=1,dive"`
}

// InstagramURL builds the profile URL from the handle.
func (l *LocationRecord) InstagramURL() string {
	return "https://www.instagram.com/" + l.Instagram
}

type Staff struct {
	Name        string   `validate:"required"`
	Title       string   `validate:"required"`
	Specialties []string `validate:"dive,required"`
	Experience  string
	Description string
	Image       string
}

// Photo returns the image reference, or the placeholder when none is set.
func (s Staff) Photo() string {
	if s.Image == "" {
		return PlaceholderImage
	}
	return s.Image
}

type Service struct {
	Name        string `validate:"required"`
	Description string
}

// Testimonial is a patient quote. Rating only controls how many stars are
// drawn and is not range checked.
type Testimonial struct {
	Author    string `validate:"required"`
	Rating    int
	Comment   string `validate:"required"`
	Treatment string
}
