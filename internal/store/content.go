package store

import (
	"context"
	"unicode"

	"github.com/arpmotors/siteadmin/internal/model"
)

// ---------------------------------------------------------------------------
// About section
// ---------------------------------------------------------------------------

const (
	aboutSelect = `SELECT * FROM about_section WHERE id = ?`
	aboutInsert = `INSERT INTO about_section (id, title, subtitle, description, hero_image)
		VALUES (?, ?, ?, ?, ?) ON CONFLICT(id) DO NOTHING`
)

func defaultAboutArgs() []any {
	return []any{
		singletonID,
		"About ARP Motors",
		"Rental Service With A Wide Range Of Vehicles",
		"For every destination you have in mind, we have the ride to match.",
		"/hero-bg.jpg",
	}
}

// GetAboutSection returns the about blurb, materializing the default row on
// first access.
func (s *Store) GetAboutSection(ctx context.Context) (*model.AboutSection, error) {
	var about model.AboutSection
	if err := getOrCreate(ctx, s.db, &about, aboutSelect, []any{singletonID}, aboutInsert, defaultAboutArgs()); err != nil {
		return nil, err
	}
	return &about, nil
}

// UpdateAboutSection applies a partial update, creating the default row
// first if none exists. Nil patch fields keep their stored values.
func (s *Store) UpdateAboutSection(ctx context.Context, patch *model.AboutSectionPatch) (*model.AboutSection, error) {
	var fields []patchField
	if patch.Title != nil {
		fields = append(fields, patchField{"title", *patch.Title})
	}
	if patch.Subtitle != nil {
		fields = append(fields, patchField{"subtitle", *patch.Subtitle})
	}
	if patch.Description != nil {
		fields = append(fields, patchField{"description", *patch.Description})
	}
	if patch.HeroImage != nil {
		fields = append(fields, patchField{"hero_image", *patch.HeroImage})
	}

	var about model.AboutSection
	err := updateSingleton(ctx, s.db, &about, aboutSelect, []any{singletonID}, aboutInsert, defaultAboutArgs(),
		"about_section", "id = ?", []any{singletonID}, fields)
	if err != nil {
		return nil, err
	}
	return &about, nil
}

// ---------------------------------------------------------------------------
// Contact info
// ---------------------------------------------------------------------------

const (
	contactInfoSelect = `SELECT * FROM contact_info WHERE id = ?`
	contactInfoInsert = `INSERT INTO contact_info (id, address, phone, email, latitude, longitude)
		VALUES (?, ?, ?, ?, ?, ?) ON CONFLICT(id) DO NOTHING`
)

func defaultContactInfoArgs() []any {
	// Coordinates default to real zeros, not nulls, so the frontend map
	// widget never receives NaN.
	return []any{singletonID, "Enter Address", "000-000-0000", "admin@example.com", 0.0, 0.0}
}

// GetContactInfo returns the contact details, materializing the default row
// on first access.
func (s *Store) GetContactInfo(ctx context.Context) (*model.ContactInfo, error) {
	var info model.ContactInfo
	if err := getOrCreate(ctx, s.db, &info, contactInfoSelect, []any{singletonID}, contactInfoInsert, defaultContactInfoArgs()); err != nil {
		return nil, err
	}
	return &info, nil
}

// UpdateContactInfo applies a partial update to the contact details.
// Omitted coordinates keep their stored (never-null) values.
func (s *Store) UpdateContactInfo(ctx context.Context, patch *model.ContactInfoPatch) (*model.ContactInfo, error) {
	var fields []patchField
	if patch.Address != nil {
		fields = append(fields, patchField{"address", *patch.Address})
	}
	if patch.Phone != nil {
		fields = append(fields, patchField{"phone", *patch.Phone})
	}
	if patch.Email != nil {
		fields = append(fields, patchField{"email", *patch.Email})
	}
	if patch.Latitude != nil {
		fields = append(fields, patchField{"latitude", *patch.Latitude})
	}
	if patch.Longitude != nil {
		fields = append(fields, patchField{"longitude", *patch.Longitude})
	}

	var info model.ContactInfo
	err := updateSingleton(ctx, s.db, &info, contactInfoSelect, []any{singletonID}, contactInfoInsert, defaultContactInfoArgs(),
		"contact_info", "id = ?", []any{singletonID}, fields)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// ---------------------------------------------------------------------------
// Footer settings
// ---------------------------------------------------------------------------

const (
	footerSelect = `SELECT * FROM footer_settings WHERE id = ?`
	footerInsert = `INSERT INTO footer_settings (id, site_title)
		VALUES (?, ?) ON CONFLICT(id) DO NOTHING`
)

func defaultFooterArgs() []any {
	return []any{singletonID, "ARP MOTORS"}
}

// GetFooterSettings returns the footer settings, materializing the default
// row on first access.
func (s *Store) GetFooterSettings(ctx context.Context) (*model.FooterSettings, error) {
	var settings model.FooterSettings
	if err := getOrCreate(ctx, s.db, &settings, footerSelect, []any{singletonID}, footerInsert, defaultFooterArgs()); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateFooterSettings applies a partial update to the footer settings.
func (s *Store) UpdateFooterSettings(ctx context.Context, patch *model.FooterSettingsPatch) (*model.FooterSettings, error) {
	var fields []patchField
	if patch.SiteTitle != nil {
		fields = append(fields, patchField{"site_title", *patch.SiteTitle})
	}
	if patch.LogoURL != nil {
		fields = append(fields, patchField{"logo_url", *patch.LogoURL})
	}
	if patch.Slogan != nil {
		fields = append(fields, patchField{"slogan", *patch.Slogan})
	}
	if patch.SubSlogan != nil {
		fields = append(fields, patchField{"sub_slogan", *patch.SubSlogan})
	}
	if patch.Facebook != nil {
		fields = append(fields, patchField{"facebook", *patch.Facebook})
	}
	if patch.Twitter != nil {
		fields = append(fields, patchField{"twitter", *patch.Twitter})
	}
	if patch.Instagram != nil {
		fields = append(fields, patchField{"instagram", *patch.Instagram})
	}
	if patch.YouTube != nil {
		fields = append(fields, patchField{"youtube", *patch.YouTube})
	}

	var settings model.FooterSettings
	err := updateSingleton(ctx, s.db, &settings, footerSelect, []any{singletonID}, footerInsert, defaultFooterArgs(),
		"footer_settings", "id = ?", []any{singletonID}, fields)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// ---------------------------------------------------------------------------
// Page meta (keyed singleton)
// ---------------------------------------------------------------------------

const (
	pageMetaSelect = `SELECT * FROM page_meta WHERE page_key = ?`
	pageMetaInsert = `INSERT INTO page_meta (page_key, header_title)
		VALUES (?, ?) ON CONFLICT(page_key) DO NOTHING`
)

// GetPageMeta returns the header/title block for the given page key,
// materializing a default row on first access. The default header title is
// derived from the key, e.g. "about" becomes "About Title".
func (s *Store) GetPageMeta(ctx context.Context, pageKey string) (*model.PageMeta, error) {
	var meta model.PageMeta
	insertArgs := []any{pageKey, capitalize(pageKey) + " Title"}
	if err := getOrCreate(ctx, s.db, &meta, pageMetaSelect, []any{pageKey}, pageMetaInsert, insertArgs); err != nil {
		return nil, err
	}
	return &meta, nil
}

// UpdatePageMeta applies a partial update to the page-meta row for pageKey,
// creating it first if absent.
func (s *Store) UpdatePageMeta(ctx context.Context, pageKey string, patch *model.PageMetaPatch) (*model.PageMeta, error) {
	var fields []patchField
	if patch.HeaderImage != nil {
		fields = append(fields, patchField{"header_image", *patch.HeaderImage})
	}
	if patch.HeaderTitle != nil {
		fields = append(fields, patchField{"header_title", *patch.HeaderTitle})
	}
	if patch.HeaderDescription != nil {
		fields = append(fields, patchField{"header_description", *patch.HeaderDescription})
	}
	if patch.PageTitle != nil {
		fields = append(fields, patchField{"page_title", *patch.PageTitle})
	}
	if patch.PageSubtitle != nil {
		fields = append(fields, patchField{"page_subtitle", *patch.PageSubtitle})
	}

	var meta model.PageMeta
	insertArgs := []any{pageKey, capitalize(pageKey) + " Title"}
	err := updateSingleton(ctx, s.db, &meta, pageMetaSelect, []any{pageKey}, pageMetaInsert, insertArgs,
		"page_meta", "page_key = ?", []any{pageKey}, fields)
	if err != nil {
		return nil, err
	}
	return &meta, nil
}

// capitalize upper-cases the first rune of s.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
