package model

// Multi-row content types managed through the admin API. These are plain
// list/create/update/delete resources; image fields hold URLs supplied by
// the caller.

// Vehicle is a rentable vehicle listed on the site, addressed by its
// unique slug.
type Vehicle struct {
	ID          int64  `json:"id" db:"id"`
	Slug        string `json:"slug" db:"slug"`
	Name        string `json:"name" db:"name"`
	Price       string `json:"price" db:"price"`
	Image       string `json:"image" db:"image"`
	CC          string `json:"cc" db:"cc"`
	Fuel        string `json:"fuel" db:"fuel"`
	TopSpeed    string `json:"top_speed" db:"top_speed"`
	Description string `json:"description" db:"description"`
}

// GalleryItem is a single image in the site gallery.
type GalleryItem struct {
	ID          int64  `json:"id" db:"id"`
	Image       string `json:"image" db:"image"`
	Description string `json:"description" db:"description"`
}

// HeroSlide is one slide of the landing-page hero carousel. Position
// controls display order, lowest first.
type HeroSlide struct {
	ID       int64  `json:"id" db:"id"`
	ImageURL string `json:"image_url" db:"image_url"`
	Title    string `json:"title" db:"title"`
	Subtitle string `json:"subtitle" db:"subtitle"`
	Position int    `json:"position" db:"position"`
}

// ChatOption is a canned question button offered by the site chat widget.
type ChatOption struct {
	ID        int64  `json:"id" db:"id"`
	Label     string `json:"label" db:"label"`
	IconName  string `json:"icon_name" db:"icon_name"`
	ReplyText string `json:"reply_text" db:"reply_text"`
}

// Feature is an entry in the "what's included" feature grid.
type Feature struct {
	ID       int64  `json:"id" db:"id"`
	IconName string `json:"icon_name" db:"icon_name"`
	Title    string `json:"title" db:"title"`
	Subtitle string `json:"subtitle" db:"subtitle"`
}

// Policy is a rental policy card. Points holds the bullet list as a
// newline-separated string.
type Policy struct {
	ID        int64  `json:"id" db:"id"`
	Title     string `json:"title" db:"title"`
	Points    string `json:"points" db:"points"`
	ColorType string `json:"color_type" db:"color_type"`
}

// ContactField describes one input of the public contact form.
type ContactField struct {
	ID         int64  `json:"id" db:"id"`
	Label      string `json:"label" db:"label"`
	FieldType  string `json:"field_type" db:"field_type"`
	IsRequired bool   `json:"is_required" db:"is_required"`
}

// DashboardStats is the row-count summary shown on the admin dashboard.
type DashboardStats struct {
	TotalVehicles int64 `json:"total_vehicles"`
	GalleryImages int64 `json:"gallery_images"`
	HeroSlides    int64 `json:"hero_slides"`
	TotalAdmins   int64 `json:"total_admins"`
}
