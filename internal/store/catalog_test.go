package store

import (
	"context"
	"errors"
	"testing"

	"github.com/arpmotors/siteadmin/internal/model"
)

func TestVehicleLifecycle(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	v := &model.Vehicle{
		Slug:  "honda-cbr",
		Name:  "Honda CBR",
		Price: "£55/day",
		Fuel:  "Petrol",
	}
	if err := st.CreateVehicle(ctx, v); err != nil {
		t.Fatalf("CreateVehicle: %v", err)
	}
	if v.ID == 0 {
		t.Error("expected ID to be populated after insert")
	}

	got, err := st.GetVehicleBySlug(ctx, "honda-cbr")
	if err != nil {
		t.Fatalf("GetVehicleBySlug: %v", err)
	}
	if got.Name != "Honda CBR" {
		t.Errorf("name: got %q, want %q", got.Name, "Honda CBR")
	}

	got.Price = "£60/day"
	if err := st.UpdateVehicle(ctx, "honda-cbr", got); err != nil {
		t.Fatalf("UpdateVehicle: %v", err)
	}
	got, err = st.GetVehicleBySlug(ctx, "honda-cbr")
	if err != nil {
		t.Fatalf("reread: %v", err)
	}
	if got.Price != "£60/day" {
		t.Errorf("price: got %q, want %q", got.Price, "£60/day")
	}

	if err := st.DeleteVehicle(ctx, "honda-cbr"); err != nil {
		t.Fatalf("DeleteVehicle: %v", err)
	}
	if _, err := st.GetVehicleBySlug(ctx, "honda-cbr"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestCreateVehicleDuplicateSlug(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	if err := st.CreateVehicle(ctx, &model.Vehicle{Slug: "ducati"}); err != nil {
		t.Fatalf("first CreateVehicle: %v", err)
	}
	if err := st.CreateVehicle(ctx, &model.Vehicle{Slug: "ducati"}); !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestUpdateVehicleUnknownSlug(t *testing.T) {
	st := newTestStore(t)
	err := st.UpdateVehicle(context.Background(), "ghost", &model.Vehicle{Name: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestHeroSlidesOrderedByPosition(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for _, s := range []model.HeroSlide{
		{ImageURL: "/c.jpg", Title: "third", Position: 30},
		{ImageURL: "/a.jpg", Title: "first", Position: 10},
		{ImageURL: "/b.jpg", Title: "second", Position: 20},
	} {
		s := s
		if err := st.CreateHeroSlide(ctx, &s); err != nil {
			t.Fatalf("CreateHeroSlide: %v", err)
		}
	}

	slides, err := st.ListHeroSlides(ctx)
	if err != nil {
		t.Fatalf("ListHeroSlides: %v", err)
	}
	want := []string{"first", "second", "third"}
	if len(slides) != len(want) {
		t.Fatalf("count: got %d, want %d", len(slides), len(want))
	}
	for i, w := range want {
		if slides[i].Title != w {
			t.Errorf("slides[%d]: got %q, want %q", i, slides[i].Title, w)
		}
	}
}

func TestChatOptionsSeedDefault(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	options, err := st.ListChatOptions(ctx)
	if err != nil {
		t.Fatalf("ListChatOptions: %v", err)
	}
	if len(options) != 1 {
		t.Fatalf("count: got %d, want 1", len(options))
	}
	if options[0].Label != "Pricing" {
		t.Errorf("label: got %q, want %q", options[0].Label, "Pricing")
	}

	// Repeated reads don't seed again.
	again, err := st.ListChatOptions(ctx)
	if err != nil {
		t.Fatalf("second ListChatOptions: %v", err)
	}
	if len(again) != 1 {
		t.Errorf("count after reread: got %d, want 1", len(again))
	}
}

func TestReplaceChatOptions(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	if _, err := st.ListChatOptions(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	err := st.ReplaceChatOptions(ctx, []model.ChatOption{
		{Label: "Hours", IconName: "Clock", ReplyText: "Open 9-6 Mon-Sat."},
		{Label: "Location", IconName: "MapPin", ReplyText: "Find us on the high street."},
	})
	if err != nil {
		t.Fatalf("ReplaceChatOptions: %v", err)
	}

	options, err := st.ListChatOptions(ctx)
	if err != nil {
		t.Fatalf("ListChatOptions: %v", err)
	}
	if len(options) != 2 {
		t.Fatalf("count: got %d, want 2", len(options))
	}
	if options[0].Label != "Hours" || options[1].Label != "Location" {
		t.Errorf("labels: got %q, %q", options[0].Label, options[1].Label)
	}
}

func TestGalleryLifecycle(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	item := &model.GalleryItem{Image: "/gallery/1.jpg", Description: "showroom"}
	if err := st.CreateGalleryItem(ctx, item); err != nil {
		t.Fatalf("CreateGalleryItem: %v", err)
	}

	items, err := st.ListGallery(ctx)
	if err != nil {
		t.Fatalf("ListGallery: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("count: got %d, want 1", len(items))
	}

	if err := st.DeleteGalleryItem(ctx, item.ID); err != nil {
		t.Fatalf("DeleteGalleryItem: %v", err)
	}
	if err := st.DeleteGalleryItem(ctx, item.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestDashboardStats(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	if err := st.CreateVehicle(ctx, &model.Vehicle{Slug: "v1"}); err != nil {
		t.Fatalf("CreateVehicle: %v", err)
	}
	if err := st.CreateVehicle(ctx, &model.Vehicle{Slug: "v2"}); err != nil {
		t.Fatalf("CreateVehicle: %v", err)
	}
	if err := st.CreateGalleryItem(ctx, &model.GalleryItem{Image: "/g.jpg"}); err != nil {
		t.Fatalf("CreateGalleryItem: %v", err)
	}
	if err := st.CreateAdmin(ctx, &model.Admin{Username: "admin", PasswordHash: "h"}); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}

	stats, err := st.GetDashboardStats(ctx)
	if err != nil {
		t.Fatalf("GetDashboardStats: %v", err)
	}
	if stats.TotalVehicles != 2 {
		t.Errorf("vehicles: got %d, want 2", stats.TotalVehicles)
	}
	if stats.GalleryImages != 1 {
		t.Errorf("gallery: got %d, want 1", stats.GalleryImages)
	}
	if stats.HeroSlides != 0 {
		t.Errorf("hero slides: got %d, want 0", stats.HeroSlides)
	}
	if stats.TotalAdmins != 1 {
		t.Errorf("admins: got %d, want 1", stats.TotalAdmins)
	}
}
