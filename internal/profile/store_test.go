package profile

import (
	"context"
	"errors"
	"testing"
)

type scriptedProvider struct {
	snaps []Snapshot
	errs  []error
	calls int
}

func (p *scriptedProvider) Load(context.Context) (Snapshot, error) {
	i := p.calls
	p.calls++
	if i < len(p.errs) && p.errs[i] != nil {
		return Snapshot{}, p.errs[i]
	}
	return p.snaps[i], nil
}

func TestStore_RefreshPreservesPreviousSections(t *testing.T) {
	first := Snapshot{
		About:  &About{About: "the bio"},
		Skills: &Skills{Skills: []SkillCategory{{Title: "Languages"}}},
	}
	// Second load drops skills and gains social.
	second := Snapshot{
		About:  &About{About: "revised bio"},
		Social: &Social{Social: []SocialLink{{Network: "github", Href: "https://github.com/x"}}},
	}
	store := NewStore(&scriptedProvider{snaps: []Snapshot{first, second}})

	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("first refresh: %v", err)
	}
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("second refresh: %v", err)
	}

	snap := store.Snapshot()
	if snap.About == nil || snap.About.About != "revised bio" {
		t.Fatalf("about should be replaced: %+v", snap.About)
	}
	if snap.Skills == nil || snap.Skills.Skills[0].Title != "Languages" {
		t.Fatalf("skills should survive the failed fetch: %+v", snap.Skills)
	}
	if snap.Social == nil {
		t.Fatal("social should be added")
	}
}

func TestStore_RefreshErrorKeepsSnapshot(t *testing.T) {
	first := Snapshot{About: &About{About: "the bio"}}
	boom := errors.New("source down")
	store := NewStore(&scriptedProvider{
		snaps: []Snapshot{first, {}},
		errs:  []error{nil, boom},
	})

	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("first refresh: %v", err)
	}
	if err := store.Refresh(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected load error, got %v", err)
	}
	if snap := store.Snapshot(); snap.About == nil || snap.About.About != "the bio" {
		t.Fatalf("snapshot should be untouched after a failed refresh: %+v", snap.About)
	}
}
