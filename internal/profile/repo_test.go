package profile

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return gdb
}

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	repo := NewRepo(openTestDB(t))
	if err := repo.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repo
}

func TestRepo_UpsertAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.UpsertSection(ctx, "about", []byte(`{"about":"v1"}`)); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	// Second upsert replaces, not duplicates.
	if err := repo.UpsertSection(ctx, "about", []byte(`{"about":"v2"}`)); err != nil {
		t.Fatalf("upsert again: %v", err)
	}

	s, err := repo.GetSection(ctx, "about")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(s.Data) != `{"about":"v2"}` {
		t.Fatalf("unexpected data: %s", s.Data)
	}

	rows, err := repo.ListSections(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
}

func TestDBProvider_LoadAssemblesSnapshot(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	seed := map[string]string{
		"about":  `{"about":"the bio"}`,
		"skills": `{"skills":[{"title":"Languages","items":[{"title":"Go"}]}]}`,
		"social": `{"social":[{"network":"github","href":"https://github.com/x"}]}`,
	}
	for name, doc := range seed {
		if err := repo.UpsertSection(ctx, name, []byte(doc)); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}
	// A malformed row degrades to an absent field, not an error.
	if err := repo.UpsertSection(ctx, "projects", []byte(`{not json`)); err != nil {
		t.Fatalf("seed projects: %v", err)
	}

	snap, err := NewDBProvider(repo).Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if snap.About == nil || snap.About.About != "the bio" {
		t.Fatalf("about not loaded: %+v", snap.About)
	}
	if snap.Skills == nil || snap.Skills.Skills[0].Items[0].Title != "Go" {
		t.Fatalf("skills not loaded: %+v", snap.Skills)
	}
	if snap.Social == nil || snap.Social.Social[0].Network != "github" {
		t.Fatalf("social not loaded: %+v", snap.Social)
	}
	if snap.Projects != nil {
		t.Fatalf("malformed projects row should stay absent")
	}
	if snap.Education != nil || snap.Experiences != nil {
		t.Fatalf("unseeded sections should stay absent")
	}
}
