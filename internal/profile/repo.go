package profile

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Section is one stored profile document. The payload is kept as the
// raw JSON the site serves, so storage never lags the data format.
type Section struct {
	Name      string `gorm:"primaryKey;type:varchar(32)"`
	Data      []byte `gorm:"type:text;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli"`
}

func (Section) TableName() string { return "profile_sections" }

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Migrate() error {
	return r.db.AutoMigrate(&Section{})
}

// UpsertSection replaces the stored document for one section.
func (r *Repo) UpsertSection(ctx context.Context, name string, raw []byte) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&Section{Name: name, Data: raw}).Error
}

func (r *Repo) GetSection(ctx context.Context, name string) (*Section, error) {
	var s Section
	if err := r.db.WithContext(ctx).First(&s, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repo) ListSections(ctx context.Context) ([]Section, error) {
	var out []Section
	if err := r.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// DBProvider assembles a snapshot from stored section rows.
type DBProvider struct {
	repo *Repo
}

func NewDBProvider(repo *Repo) *DBProvider {
	return &DBProvider{repo: repo}
}

func (p *DBProvider) Load(ctx context.Context) (Snapshot, error) {
	rows, err := p.repo.ListSections(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	var snap Snapshot
	for _, row := range rows {
		// A malformed row degrades to an absent section.
		_ = DecodeSection(&snap, row.Name, row.Data)
	}
	return snap, nil
}
