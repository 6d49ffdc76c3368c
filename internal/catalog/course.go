package catalog

// Course is the static marketplace record. The catalog is seeded at startup
// and never mutated at runtime; ids and slugs are unique across the set.
type Course struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`

	ShortDescription string `json:"short_description"`
	FullDescription  string `json:"full_description"`

	Category string `json:"category"`
	Level    string `json:"level"`
	Language string `json:"language"`

	Instructor Instructor `json:"instructor"`
	Schedule   Schedule   `json:"schedule"`
	Pricing    Pricing    `json:"pricing"`
	Meta       Meta       `json:"meta"`

	Topics []Topic  `json:"topics,omitempty"`
	Tags   []string `json:"tags,omitempty"`
	Badges []string `json:"badges,omitempty"`
}

type Instructor struct {
	Name  string `json:"name"`
	Title string `json:"title,omitempty"`
}

type Schedule struct {
	Duration string   `json:"duration"`
	Days     []string `json:"days"`
	Time     string   `json:"time"`
}

type Pricing struct {
	OldPrice int64  `json:"old_price,omitempty"`
	NewPrice int64  `json:"new_price"`
	Currency string `json:"currency"`
}

type Meta struct {
	LessonsCount int     `json:"lessons_count"`
	TotalHours   float64 `json:"total_hours,omitempty"`
	Students     int     `json:"students,omitempty"`
	Rating       float64 `json:"rating,omitempty"`
}

type Topic struct {
	Title       string `json:"title"`
	DurationMin int    `json:"duration_min,omitempty"`
}
