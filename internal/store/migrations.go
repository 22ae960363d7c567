package store

import (
	"fmt"
	"strings"
)

func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS admins (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT UNIQUE NOT NULL,
			email TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			is_superuser INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		// Singleton sections. The CHECK(id = 1) constraint pins each table to
		// a single row; concurrent first readers racing to materialize the
		// default resolve through INSERT ... ON CONFLICT DO NOTHING.
		`CREATE TABLE IF NOT EXISTS about_section (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			title TEXT NOT NULL DEFAULT '',
			subtitle TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			hero_image TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS contact_info (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			address TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			latitude REAL NOT NULL DEFAULT 0,
			longitude REAL NOT NULL DEFAULT 0
		)`,

		`CREATE TABLE IF NOT EXISTS footer_settings (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			site_title TEXT NOT NULL DEFAULT '',
			logo_url TEXT NOT NULL DEFAULT '',
			slogan TEXT NOT NULL DEFAULT '',
			sub_slogan TEXT NOT NULL DEFAULT '',
			facebook TEXT NOT NULL DEFAULT '',
			twitter TEXT NOT NULL DEFAULT '',
			instagram TEXT NOT NULL DEFAULT '',
			youtube TEXT NOT NULL DEFAULT ''
		)`,

		// Keyed singleton: at most one row per page key.
		`CREATE TABLE IF NOT EXISTS page_meta (
			page_key TEXT PRIMARY KEY,
			header_image TEXT NOT NULL DEFAULT '',
			header_title TEXT NOT NULL DEFAULT '',
			header_description TEXT NOT NULL DEFAULT '',
			page_title TEXT NOT NULL DEFAULT '',
			page_subtitle TEXT NOT NULL DEFAULT ''
		)`,

		// Catalog tables.
		`CREATE TABLE IF NOT EXISTS vehicles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			slug TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			price TEXT NOT NULL DEFAULT '',
			image TEXT NOT NULL DEFAULT '',
			cc TEXT NOT NULL DEFAULT '',
			fuel TEXT NOT NULL DEFAULT '',
			top_speed TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS gallery (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			image TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS hero_slides (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			image_url TEXT NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			subtitle TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL DEFAULT 0
		)`,

		`CREATE TABLE IF NOT EXISTS chat_options (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			label TEXT NOT NULL DEFAULT '',
			icon_name TEXT NOT NULL DEFAULT '',
			reply_text TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS features (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			icon_name TEXT NOT NULL DEFAULT '',
			title TEXT NOT NULL DEFAULT '',
			subtitle TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS policies (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL DEFAULT '',
			points TEXT NOT NULL DEFAULT '',
			color_type TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS contact_form_fields (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			label TEXT NOT NULL DEFAULT '',
			field_type TEXT NOT NULL DEFAULT 'text',
			is_required INTEGER NOT NULL DEFAULT 1
		)`,

		`CREATE INDEX IF NOT EXISTS idx_vehicles_slug ON vehicles(slug)`,
		`CREATE INDEX IF NOT EXISTS idx_hero_slides_position ON hero_slides(position)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			// SQLite ALTER TABLE ADD COLUMN fails if column already exists;
			// treat "duplicate column" as a no-op for idempotent migrations.
			if strings.Contains(err.Error(), "duplicate column") {
				continue
			}
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}
