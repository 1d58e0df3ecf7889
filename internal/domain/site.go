package domain

import "time"

type ServiceIcon string

// Closed icon set for service cards. Anything outside the set renders as
// IconDefault.
const (
	IconPlane    ServiceIcon = "plane"
	IconClock    ServiceIcon = "clock"
	IconShield   ServiceIcon = "shield"
	IconStar     ServiceIcon = "star"
	IconMap      ServiceIcon = "map"
	IconBusiness ServiceIcon = "business"
	IconDefault  ServiceIcon = "default"
)

func ValidServiceIcons() []ServiceIcon {
	return []ServiceIcon{IconPlane, IconClock, IconShield, IconStar, IconMap, IconBusiness}
}

// ResolveServiceIcon maps an icon key to the closed set, falling back to
// IconDefault for unknown keys.
func ResolveServiceIcon(key string) ServiceIcon {
	for _, icon := range ValidServiceIcons() {
		if ServiceIcon(key) == icon {
			return icon
		}
	}
	return IconDefault
}

// SiteService is a service card on the landing page.
type SiteService struct {
	ID            int64     `json:"id"`
	Icon          string    `json:"icon"`
	TitleEs       string    `json:"title_es" validate:"required"`
	TitleEn       string    `json:"title_en" validate:"required"`
	DescriptionEs string    `json:"description_es,omitempty" gorm:"type:text"`
	DescriptionEn string    `json:"description_en,omitempty" gorm:"type:text"`
	IsActive      bool      `json:"is_active"`
	DisplayOrder  int       `json:"display_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (SiteService) TableName() string { return "services" }

// SiteImage is one curated image row keyed by page section.
type SiteImage struct {
	ID           int64     `json:"id"`
	Section      string    `json:"section" validate:"required"`
	URL          string    `json:"url" validate:"required"`
	AltEs        string    `json:"alt_es,omitempty"`
	AltEn        string    `json:"alt_en,omitempty"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ContactInfo is the single row with the business contact details.
type ContactInfo struct {
	ID         int64     `json:"id"`
	Phone      string    `json:"phone,omitempty"`
	WhatsApp   string    `json:"whatsapp,omitempty"`
	Email      string    `json:"email,omitempty"`
	Address    string    `json:"address,omitempty"`
	ScheduleEs string    `json:"schedule_es,omitempty"`
	ScheduleEn string    `json:"schedule_en,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (ContactInfo) TableName() string { return "contact_info" }

// Setting is a key/value pair for site-wide switches and copy.
type Setting struct {
	ID        int64     `json:"id"`
	Key       string    `json:"key" gorm:"uniqueIndex" validate:"required"`
	Value     string    `json:"value" gorm:"type:text"`
	UpdatedAt time.Time `json:"updated_at"`
}
