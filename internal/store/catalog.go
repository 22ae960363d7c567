package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/arpmotors/siteadmin/internal/model"
)

// isUniqueViolation reports whether err is a SQLite uniqueness constraint
// failure. modernc.org/sqlite surfaces these as plain errors, so we match
// on the message the same way the HTTP layer classifies database errors.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint")
}

// ---------------------------------------------------------------------------
// Vehicles
// ---------------------------------------------------------------------------

// ListVehicles returns all vehicles ordered by name.
func (s *Store) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	if err := s.db.SelectContext(ctx, &vehicles, "SELECT * FROM vehicles ORDER BY name"); err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return vehicles, nil
}

// GetVehicleBySlug returns the vehicle with the given slug.
func (s *Store) GetVehicleBySlug(ctx context.Context, slug string) (*model.Vehicle, error) {
	var v model.Vehicle
	if err := s.db.GetContext(ctx, &v, "SELECT * FROM vehicles WHERE slug = ?", slug); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get vehicle by slug: %w", err)
	}
	return &v, nil
}

// CreateVehicle inserts a new vehicle. Returns ErrConflict when the slug is
// already taken.
func (s *Store) CreateVehicle(ctx context.Context, v *model.Vehicle) error {
	const q = `INSERT INTO vehicles (slug, name, price, image, cc, fuel, top_speed, description)
		VALUES (:slug, :name, :price, :image, :cc, :fuel, :top_speed, :description)`

	result, err := s.db.NamedExecContext(ctx, q, v)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("insert vehicle: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get vehicle id: %w", err)
	}
	v.ID = id
	return nil
}

// UpdateVehicle replaces the stored fields of the vehicle addressed by slug.
func (s *Store) UpdateVehicle(ctx context.Context, slug string, v *model.Vehicle) error {
	const q = `UPDATE vehicles SET
		name = :name, price = :price, image = :image, cc = :cc,
		fuel = :fuel, top_speed = :top_speed, description = :description
		WHERE slug = :slug`

	v.Slug = slug
	result, err := s.db.NamedExecContext(ctx, q, v)
	if err != nil {
		return fmt.Errorf("update vehicle: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update vehicle rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteVehicle removes the vehicle with the given slug.
func (s *Store) DeleteVehicle(ctx context.Context, slug string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM vehicles WHERE slug = ?", slug)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete vehicle rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// Gallery
// ---------------------------------------------------------------------------

// ListGallery returns all gallery items in insertion order.
func (s *Store) ListGallery(ctx context.Context) ([]model.GalleryItem, error) {
	var items []model.GalleryItem
	if err := s.db.SelectContext(ctx, &items, "SELECT * FROM gallery ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}
	return items, nil
}

// CreateGalleryItem inserts a new gallery item.
func (s *Store) CreateGalleryItem(ctx context.Context, item *model.GalleryItem) error {
	result, err := s.db.NamedExecContext(ctx,
		"INSERT INTO gallery (image, description) VALUES (:image, :description)", item)
	if err != nil {
		return fmt.Errorf("insert gallery item: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get gallery item id: %w", err)
	}
	item.ID = id
	return nil
}

// DeleteGalleryItem removes a gallery item by ID.
func (s *Store) DeleteGalleryItem(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM gallery WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete gallery item: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete gallery item rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// Hero slides
// ---------------------------------------------------------------------------

// ListHeroSlides returns all slides ordered by position, lowest first.
func (s *Store) ListHeroSlides(ctx context.Context) ([]model.HeroSlide, error) {
	var slides []model.HeroSlide
	if err := s.db.SelectContext(ctx, &slides, "SELECT * FROM hero_slides ORDER BY position, id"); err != nil {
		return nil, fmt.Errorf("list hero slides: %w", err)
	}
	return slides, nil
}

// CreateHeroSlide inserts a new hero slide.
func (s *Store) CreateHeroSlide(ctx context.Context, slide *model.HeroSlide) error {
	const q = `INSERT INTO hero_slides (image_url, title, subtitle, position)
		VALUES (:image_url, :title, :subtitle, :position)`

	result, err := s.db.NamedExecContext(ctx, q, slide)
	if err != nil {
		return fmt.Errorf("insert hero slide: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get hero slide id: %w", err)
	}
	slide.ID = id
	return nil
}

// UpdateHeroSlide replaces the stored fields of a slide by ID.
func (s *Store) UpdateHeroSlide(ctx context.Context, id int64, slide *model.HeroSlide) error {
	const q = `UPDATE hero_slides SET
		image_url = :image_url, title = :title, subtitle = :subtitle, position = :position
		WHERE id = :id`

	slide.ID = id
	result, err := s.db.NamedExecContext(ctx, q, slide)
	if err != nil {
		return fmt.Errorf("update hero slide: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update hero slide rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteHeroSlide removes a slide by ID.
func (s *Store) DeleteHeroSlide(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM hero_slides WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete hero slide: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete hero slide rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// Chat options
// ---------------------------------------------------------------------------

// ListChatOptions returns the chat widget options, materializing a single
// default option when the table is empty. The default insert pins id 1 with
// ON CONFLICT DO NOTHING, so concurrent first readers cannot seed the table
// twice.
func (s *Store) ListChatOptions(ctx context.Context) ([]model.ChatOption, error) {
	var options []model.ChatOption
	if err := s.db.SelectContext(ctx, &options, "SELECT * FROM chat_options ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list chat options: %w", err)
	}
	if len(options) > 0 {
		return options, nil
	}

	const q = `INSERT INTO chat_options (id, label, icon_name, reply_text)
		VALUES (1, ?, ?, ?) ON CONFLICT(id) DO NOTHING`
	if _, err := s.db.ExecContext(ctx, q,
		"Pricing", "PoundSterling",
		"Our rentals start from £40 per day. Long-term deals available!"); err != nil {
		return nil, fmt.Errorf("insert default chat option: %w", err)
	}

	if err := s.db.SelectContext(ctx, &options, "SELECT * FROM chat_options ORDER BY id"); err != nil {
		return nil, fmt.Errorf("reread chat options: %w", err)
	}
	return options, nil
}

// ReplaceChatOptions atomically swaps the full option set: the existing rows
// are deleted and the supplied ones inserted within one transaction.
func (s *Store) ReplaceChatOptions(ctx context.Context, options []model.ChatOption) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM chat_options"); err != nil {
		return fmt.Errorf("clear chat options: %w", err)
	}

	const insertQ = `INSERT INTO chat_options (label, icon_name, reply_text)
		VALUES (:label, :icon_name, :reply_text)`
	for i := range options {
		if _, err := tx.NamedExecContext(ctx, insertQ, &options[i]); err != nil {
			return fmt.Errorf("insert chat option: %w", err)
		}
	}

	return tx.Commit()
}

// ---------------------------------------------------------------------------
// Included features and policies
// ---------------------------------------------------------------------------

// ListFeatures returns all feature-grid entries.
func (s *Store) ListFeatures(ctx context.Context) ([]model.Feature, error) {
	var features []model.Feature
	if err := s.db.SelectContext(ctx, &features, "SELECT * FROM features ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list features: %w", err)
	}
	return features, nil
}

// CreateFeature inserts a new feature-grid entry.
func (s *Store) CreateFeature(ctx context.Context, f *model.Feature) error {
	result, err := s.db.NamedExecContext(ctx,
		"INSERT INTO features (icon_name, title, subtitle) VALUES (:icon_name, :title, :subtitle)", f)
	if err != nil {
		return fmt.Errorf("insert feature: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get feature id: %w", err)
	}
	f.ID = id
	return nil
}

// DeleteFeature removes a feature by ID.
func (s *Store) DeleteFeature(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM features WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete feature: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete feature rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListPolicies returns all policy cards.
func (s *Store) ListPolicies(ctx context.Context) ([]model.Policy, error) {
	var policies []model.Policy
	if err := s.db.SelectContext(ctx, &policies, "SELECT * FROM policies ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list policies: %w", err)
	}
	return policies, nil
}

// CreatePolicy inserts a new policy card.
func (s *Store) CreatePolicy(ctx context.Context, p *model.Policy) error {
	result, err := s.db.NamedExecContext(ctx,
		"INSERT INTO policies (title, points, color_type) VALUES (:title, :points, :color_type)", p)
	if err != nil {
		return fmt.Errorf("insert policy: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get policy id: %w", err)
	}
	p.ID = id
	return nil
}

// DeletePolicy removes a policy by ID.
func (s *Store) DeletePolicy(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM policies WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete policy: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete policy rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// Contact form fields
// ---------------------------------------------------------------------------

// ListContactFields returns the contact form fields in id order so the form
// renders the same way every time.
func (s *Store) ListContactFields(ctx context.Context) ([]model.ContactField, error) {
	var fields []model.ContactField
	if err := s.db.SelectContext(ctx, &fields, "SELECT * FROM contact_form_fields ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list contact fields: %w", err)
	}
	return fields, nil
}

// CreateContactField inserts a new contact form field.
func (s *Store) CreateContactField(ctx context.Context, f *model.ContactField) error {
	result, err := s.db.NamedExecContext(ctx,
		"INSERT INTO contact_form_fields (label, field_type, is_required) VALUES (:label, :field_type, :is_required)", f)
	if err != nil {
		return fmt.Errorf("insert contact field: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get contact field id: %w", err)
	}
	f.ID = id
	return nil
}

// DeleteContactField removes a contact form field by ID.
func (s *Store) DeleteContactField(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM contact_form_fields WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete contact field: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete contact field rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// Dashboard stats
// ---------------------------------------------------------------------------

// GetDashboardStats returns row counts for the admin dashboard.
func (s *Store) GetDashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	counts := []struct {
		query string
		dest  *int64
	}{
		{"SELECT COUNT(*) FROM vehicles", &stats.TotalVehicles},
		{"SELECT COUNT(*) FROM gallery", &stats.GalleryImages},
		{"SELECT COUNT(*) FROM hero_slides", &stats.HeroSlides},
		{"SELECT COUNT(*) FROM admins", &stats.TotalAdmins},
	}
	for _, c := range counts {
		if err := s.db.GetContext(ctx, c.dest, c.query); err != nil {
			return nil, fmt.Errorf("dashboard stats: %w", err)
		}
	}
	return &stats, nil
}
