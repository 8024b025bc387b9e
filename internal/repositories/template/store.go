package template

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"sync"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/taxonomy"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

//go:embed templates/*.xml
var embedded embed.FS

const embeddedDir = "templates"

type templateKey struct {
	typ  taxonomy.Type
	name string
}

// Store is an in-memory Repository loaded from template files.
type Store struct {
	traits       []*entities.Trait
	index        map[templateKey]*entities.Trait
	derangements []*entities.Derangement
	general      SpeciesInfo
	species      map[taxonomy.Species]SpeciesInfo
}

var _ Repository = (*Store)(nil)

var (
	defaultOnce  sync.Once
	defaultStore *Store
	defaultErr   error
)

// Default returns the store built from the templates shipped with the
// binary. It is loaded once.
func Default(ctx context.Context) (*Store, error) {
	defaultOnce.Do(func() {
		defaultStore, defaultErr = Load(ctx, embedded, embeddedDir)
	})
	return defaultStore, defaultErr
}

// Load reads every *.xml file in dir of fsys, in file name order.
// Templates named in more than one file are merged: their species are
// joined and their specialties combined.
func Load(ctx context.Context, fsys fs.FS, dir string) (*Store, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.xml"))
	if err != nil {
		return nil, errors.DirectoryProblem(dir).WithCause(err)
	}
	if len(files) == 0 {
		return nil, errors.FileNotOpened(path.Join(dir, "*.xml"), fs.ErrNotExist)
	}
	slices.Sort(files)

	s := &Store{
		index:   make(map[templateKey]*entities.Trait),
		species: make(map[taxonomy.Species]SpeciesInfo),
	}
	for _, name := range files {
		doc, err := readFile(ctx, fsys, name)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to load template file",
				"file", name,
				"error", err.Error())
			return nil, err
		}
		s.add(doc)
	}

	slog.DebugContext(ctx, "Loaded templates",
		"files", len(files),
		"traits", len(s.traits),
		"derangements", len(s.derangements))
	return s, nil
}

func readFile(ctx context.Context, fsys fs.FS, name string) (*document, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, errors.FileNotOpened(name, err)
	}
	defer f.Close()
	return decodeDocument(ctx, f, name)
}

func (s *Store) add(doc *document) {
	if doc.general {
		s.general = mergeInfo(s.general, doc.info)
	} else {
		s.species[doc.species] = mergeInfo(s.species[doc.species], doc.info)
	}

	for _, t := range doc.traits {
		key := templateKey{typ: t.Type, name: t.Name}
		if existing, ok := s.index[key]; ok {
			existing.Species = existing.Species.Union(t.Species)
			for _, detail := range t.Details {
				if !slices.Contains(existing.Details, detail) {
					existing.Details = append(existing.Details, detail)
				}
			}
			continue
		}
		s.index[key] = t
		s.traits = append(s.traits, t)
	}

	for _, d := range doc.derangements {
		i := slices.IndexFunc(s.derangements, func(e *entities.Derangement) bool {
			return e.Name == d.Name
		})
		if i >= 0 {
			s.derangements[i].Species = s.derangements[i].Species.Union(d.Species)
			continue
		}
		s.derangements = append(s.derangements, d)
	}
}

// mergeInfo fills the empty fields of base from next.
func mergeInfo(base, next SpeciesInfo) SpeciesInfo {
	if base.Species == taxonomy.SpeciesNone {
		base.Species = next.Species
	}
	for _, f := range []struct {
		dst *string
		src string
	}{
		{&base.Morale, next.Morale},
		{&base.Powerstat, next.Powerstat},
		{&base.Fuel, next.Fuel},
		{&base.PowerName, next.PowerName},
		{&base.BreedTitle, next.BreedTitle},
		{&base.FactionTitle, next.FactionTitle},
	} {
		if *f.dst == "" {
			*f.dst = f.src
		}
	}
	base.Breeds = append(base.Breeds, next.Breeds...)
	base.Factions = append(base.Factions, next.Factions...)
	return base
}

func validType(typ taxonomy.Type) error {
	if typ == taxonomy.TypeNone || !slices.Contains(taxonomy.AllTypes(), typ) {
		return errors.InvalidTraitType(int(typ))
	}
	return nil
}

func (s *Store) ListTraits(ctx context.Context, input ListTraitsInput) (*ListTraitsOutput, error) {
	if err := validType(input.Type); err != nil {
		return nil, err
	}

	out := make([]*entities.Trait, 0)
	for _, t := range s.traits {
		if t.Type != input.Type {
			continue
		}
		if len(input.Categories) > 0 && !slices.Contains(input.Categories, t.Category) {
			continue
		}
		if input.Species != taxonomy.SpeciesNone && !t.Species.Has(input.Species) {
			continue
		}
		out = append(out, t.Clone())
	}

	slog.DebugContext(ctx, "Listed templates",
		"type", input.Type.String(),
		"count", len(out))
	return &ListTraitsOutput{Traits: out}, nil
}

func (s *Store) GetTrait(_ context.Context, input GetTraitInput) (*GetTraitOutput, error) {
	if err := validType(input.Type); err != nil {
		return nil, err
	}
	t, ok := s.index[templateKey{typ: input.Type, name: input.Name}]
	if !ok {
		return nil, errors.TraitNotFound(input.Name).WithMeta("type", input.Type.String())
	}
	return &GetTraitOutput{Trait: t.Clone()}, nil
}

func (s *Store) ListDerangements(_ context.Context, input ListDerangementsInput) (*ListDerangementsOutput, error) {
	out := make([]*entities.Derangement, 0, len(s.derangements))
	for _, d := range s.derangements {
		if input.Species != taxonomy.SpeciesNone && !d.Species.Has(input.Species) {
			continue
		}
		out = append(out, d.Clone())
	}
	return &ListDerangementsOutput{Derangements: out}, nil
}

// GetSpecies falls back to the general template for anything the species'
// own template leaves out.
func (s *Store) GetSpecies(_ context.Context, input GetSpeciesInput) (*GetSpeciesOutput, error) {
	if !input.Species.IsSingle() || !input.Species.Valid() {
		return nil, errors.SpeciesNotFound(input.Species.String())
	}

	info := mergeInfo(SpeciesInfo{}, s.species[input.Species])
	info = mergeInfo(info, s.general)
	info.Species = input.Species
	info.Breeds = slices.Clone(s.species[input.Species].Breeds)
	info.Factions = slices.Clone(s.species[input.Species].Factions)
	return &GetSpeciesOutput{Species: &info}, nil
}
