package model

// Singleton content sections. Each of these is backed by a table that holds
// at most one row (or one row per page key for PageMeta); the store
// materializes a default row on first access.

// AboutSection is the site-about blurb shown on the landing and about pages.
type AboutSection struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Subtitle    string `json:"subtitle" db:"subtitle"`
	Description string `json:"description" db:"description"`
	HeroImage   string `json:"hero_image" db:"hero_image"`
}

// AboutSectionPatch carries a partial update for AboutSection. Nil fields
// are left untouched.
type AboutSectionPatch struct {
	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Description *string `json:"description"`
	HeroImage   *string `json:"hero_image"`
}

// ContactInfo holds the business contact details and map coordinates.
// Latitude and longitude are never null in storage; absent values default
// to zero so the frontend map widget never receives NaN.
type ContactInfo struct {
	ID        int64   `json:"id" db:"id"`
	Address   string  `json:"address" db:"address"`
	Phone     string  `json:"phone" db:"phone"`
	Email     string  `json:"email" db:"email"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// ContactInfoPatch carries a partial update for ContactInfo.
type ContactInfoPatch struct {
	Address   *string  `json:"address"`
	Phone     *string  `json:"phone"`
	Email     *string  `json:"email"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// FooterSettings holds the site footer branding and social links.
type FooterSettings struct {
	ID        int64  `json:"id" db:"id"`
	SiteTitle string `json:"site_title" db:"site_title"`
	LogoURL   string `json:"logo_url" db:"logo_url"`
	Slogan    string `json:"slogan" db:"slogan"`
	SubSlogan string `json:"sub_slogan" db:"sub_slogan"`
	Facebook  string `json:"facebook" db:"facebook"`
	Twitter   string `json:"twitter" db:"twitter"`
	Instagram string `json:"instagram" db:"instagram"`
	YouTube   string `json:"youtube" db:"youtube"`
}

// FooterSettingsPatch carries a partial update for FooterSettings.
type FooterSettingsPatch struct {
	SiteTitle *string `json:"site_title"`
	LogoURL   *string `json:"logo_url"`
	Slogan    *string `json:"slogan"`
	SubSlogan *string `json:"sub_slogan"`
	Facebook  *string `json:"facebook"`
	Twitter   *string `json:"twitter"`
	Instagram *string `json:"instagram"`
	YouTube   *string `json:"youtube"`
}

// PageMeta is the keyed singleton holding the universal header and title
// block for a public page. PageKey (e.g. "about", "vehicles") is the
// primary key.
type PageMeta struct {
	PageKey           string `json:"page_key" db:"page_key"`
	HeaderImage       string `json:"header_image" db:"header_image"`
	HeaderTitle       string `json:"header_title" db:"header_title"`
	HeaderDescription string `json:"header_description" db:"header_description"`
	PageTitle         string `json:"page_title" db:"page_title"`
	PageSubtitle      string `json:"page_subtitle" db:"page_subtitle"`
}

// PageMetaPatch carries a partial update for PageMeta.
type PageMetaPatch struct {
	HeaderImage       *string `json:"header_image"`
	HeaderTitle       *string `json:"header_title"`
	HeaderDescription *string `json:"header_description"`
	PageTitle         *string `json:"page_title"`
	PageSubtitle      *string `json:"page_subtitle"`
}
