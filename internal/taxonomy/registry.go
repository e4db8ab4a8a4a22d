package taxonomy

import (
	"sort"
	"strings"
	"sync"

	"github.com/naebak/banner-backend/internal/domain"
	"github.com/naebak/banner-backend/internal/repository"
)

// Registry is an in-memory snapshot of the reference data used on every
// validation and display request. Loaded once at startup and on demand via
// Reload; reads take no locks beyond an RWMutex.
type Registry struct {
	repo repository.TaxonomyRepository

	mu           sync.RWMutex
	types        map[string]domain.BannerType
	positions    map[string]domain.BannerPosition
	governorates map[string]domain.Governorate
	categories   map[string]struct{}
	fileTypes    map[string]domain.FileType
}

// NewRegistry builds a registry and performs the initial load
func NewRegistry(repo repository.TaxonomyRepository) (*Registry, error) {
	r := &Registry{
		repo:       repo,
		categories: make(map[string]struct{}, len(Categories)),
		fileTypes:  make(map[string]domain.FileType, len(FileTypes)),
	}
	for _, c := range Categories {
		r.categories[c] = struct{}{}
	}
	for _, ft := range FileTypes {
		r.fileTypes[ft.Extension] = ft
	}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload replaces the snapshot from the database
func (r *Registry) Reload() error {
	types, err := r.repo.ListTypes(true)
	if err != nil {
		return err
	}
	positions, err := r.repo.ListPositions(true)
	if err != nil {
		return err
	}
	govs, err := r.repo.ListGovernorates()
	if err != nil {
		return err
	}

	typeMap := make(map[string]domain.BannerType, len(types))
	for _, t := range types {
		typeMap[t.Name] = t
	}
	posMap := make(map[string]domain.BannerPosition, len(positions))
	for _, p := range positions {
		posMap[p.Name] = p
	}
	govMap := make(map[string]domain.Governorate, len(govs))
	for _, g := range govs {
		govMap[g.Code] = g
	}

	r.mu.Lock()
	r.types = typeMap
	r.positions = posMap
	r.governorates = govMap
	r.mu.Unlock()
	return nil
}

// Type resolves an active banner type by name
func (r *Registry) Type(name string) (domain.BannerType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[name]
	return t, ok
}

// Position resolves an active position by name
func (r *Registry) Position(name string) (domain.BannerPosition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.positions[name]
	return p, ok
}

// PositionByID resolves an active position by primary key
func (r *Registry) PositionByID(id int64) (domain.BannerPosition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.positions {
		if p.ID == id {
			return p, true
		}
	}
	return domain.BannerPosition{}, false
}

// ValidType reports whether the name denotes an active banner type
func (r *Registry) ValidType(name string) bool {
	_, ok := r.Type(name)
	return ok
}

// ValidPosition reports whether the name denotes an active position
func (r *Registry) ValidPosition(name string) bool {
	_, ok := r.Position(name)
	return ok
}

// ValidCategory reports whether the name is in the category vocabulary
func (r *Registry) ValidCategory(name string) bool {
	_, ok := r.categories[name]
	return ok
}

// ValidGovernorate reports whether the code denotes a known governorate
func (r *Registry) ValidGovernorate(code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.governorates[strings.ToUpper(code)]
	return ok
}

// FileTypeFor resolves an upload extension (with or without leading dot)
func (r *Registry) FileTypeFor(ext string) (domain.FileType, bool) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	ft, ok := r.fileTypes[ext]
	return ft, ok
}

// Snapshot bundles the full reference data for the taxonomy endpoint
func (r *Registry) Snapshot() domain.TaxonomyResponse {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]domain.BannerType, 0, len(r.types))
	for _, t := range r.types {
		types = append(types, t)
	}
	positions := make([]domain.BannerPosition, 0, len(r.positions))
	for _, p := range r.positions {
		positions = append(positions, p)
	}
	govs := make([]domain.Governorate, 0, len(r.governorates))
	for _, g := range r.governorates {
		govs = append(govs, g)
	}

	sort.Slice(types, func(i, j int) bool { return types[i].Priority < types[j].Priority })
	sort.Slice(positions, func(i, j int) bool { return positions[i].DisplayOrder < positions[j].DisplayOrder })
	sort.Slice(govs, func(i, j int) bool { return govs[i].Code < govs[j].Code })

	return domain.TaxonomyResponse{
		Types:        types,
		Positions:    positions,
		Categories:   append([]string(nil), Categories...),
		Governorates: govs,
		FileTypes:    append([]domain.FileType(nil), FileTypes...),
	}
}
