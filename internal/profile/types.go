package profile

// ProfileData mirrors what the account page shows. All fields beyond name
// and email are optional extras.
type ProfileData struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Avatar        string `json:"avatar,omitempty"`
	Phone         string `json:"phone,omitempty"`
	PhoneVerified bool   `json:"phone_verified"`
	Bio           string `json:"bio,omitempty"`
	Country       string `json:"country,omitempty"`
	Website       string `json:"website,omitempty"`
	LinkedIn      string `json:"linkedin,omitempty"`
	GitHub        string `json:"github,omitempty"`
}

type Settings struct {
	AutoplayNext        bool   `json:"autoplay_next"`
	ShowProgressOnCards bool   `json:"show_progress_on_cards"`
	PreferredLevel      string `json:"preferred_level"`
	PublicProfile       bool   `json:"public_profile"`
	RememberDevice      bool   `json:"remember_device"`
	EmailAnnouncements  bool   `json:"email_announcements"`
	CourseReminders     bool   `json:"course_reminders"`
}

// DefaultSettings is what a user sees before their first save.
func DefaultSettings() Settings {
	return Settings{
		AutoplayNext:        true,
		ShowProgressOnCards: true,
		PreferredLevel:      "beginner",
		PublicProfile:       false,
		RememberDevice:      true,
		EmailAnnouncements:  true,
		CourseReminders:     true,
	}
}

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

func ValidTheme(t string) bool {
	return t == ThemeLight || t == ThemeDark
}

func ValidLevel(l string) bool {
	switch l {
	case "beginner", "intermediate", "advanced":
		return true
	}
	return false
}
