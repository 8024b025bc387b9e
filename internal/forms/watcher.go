package forms

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/taxonomy"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Update is one recomputed per-form display.
type Update struct {
	CharacterID string
	Attribute   Attribute
	Base        int
	Values      []int
	Display     string
}

// WatcherConfig contains the dependencies of a Watcher
type WatcherConfig struct {
	EventBus    events.EventBus
	Calculators *Set
	// OnUpdate, when set, runs synchronously after each recomputation.
	OnUpdate func(Update)
}

// Validate checks that all required dependencies are provided
func (c *WatcherConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.Calculators == nil {
		vb.RequiredField("Calculators")
	}
	return vb.Build()
}

// Watcher recomputes per-form displays whenever a form-dependent attribute
// changes on the bus.
type Watcher struct {
	bus         events.EventBus
	calculators *Set
	onUpdate    func(Update)

	mu       sync.RWMutex
	subID    string
	displays map[string]map[Attribute]Update
}

// NewWatcher creates a watcher. Call Start to subscribe.
func NewWatcher(cfg *WatcherConfig) (*Watcher, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Watcher{
		bus:         cfg.EventBus,
		calculators: cfg.Calculators,
		onUpdate:    cfg.OnUpdate,
		displays:    make(map[string]map[Attribute]Update),
	}, nil
}

// Start subscribes to trait value changes. Starting twice is a no-op.
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.subID != "" {
		return
	}
	w.subID = w.bus.SubscribeFunc(entities.EventTraitValueChanged, 0, w.handle)
}

// Stop unsubscribes from the bus.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	id := w.subID
	w.subID = ""
	w.mu.Unlock()
	if id == "" {
		return nil
	}
	return w.bus.Unsubscribe(id)
}

// Display returns the last computed display of attr for a character.
func (w *Watcher) Display(characterID string, attr Attribute) (Update, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	u, ok := w.displays[characterID][attr]
	return u, ok
}

// Forget drops the cached displays of a character.
func (w *Watcher) Forget(characterID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.displays, characterID)
}

// Recompute derives displays for every form-dependent attribute of char.
// It is used when a character is loaded or changes species.
func (w *Watcher) Recompute(ctx context.Context, char *entities.Character) {
	w.Forget(char.ID)
	for _, attr := range Attributes() {
		t, ok := char.Trait(taxonomy.TypeAttribute, attr.TraitName())
		if !ok {
			continue
		}
		w.recompute(ctx, char.ID, char.Species, attr, t.Value)
	}
}

func (w *Watcher) handle(ctx context.Context, e events.Event) error {
	te, ok := e.Source().(*entities.TraitEntity)
	if !ok || te.Type != taxonomy.TypeAttribute {
		return nil
	}
	attr, ok := AttributeForTrait(te.Name)
	if !ok {
		return nil
	}
	w.recompute(ctx, te.CharacterID, te.CharacterSpecies, attr, te.Value)
	return nil
}

func (w *Watcher) recompute(ctx context.Context, characterID string, species taxonomy.Species, attr Attribute, base int) {
	calc, ok := w.calculators.Lookup(species)
	if !ok {
		return
	}

	u := Update{
		CharacterID: characterID,
		Attribute:   attr,
		Base:        base,
		Values:      calc.Derived(attr, base),
		Display:     calc.Display(attr, base),
	}

	w.mu.Lock()
	if w.displays[characterID] == nil {
		w.displays[characterID] = make(map[Attribute]Update)
	}
	w.displays[characterID][attr] = u
	w.mu.Unlock()

	slog.DebugContext(ctx, "Recomputed form display",
		"character_id", characterID,
		"attribute", string(attr),
		"base", base,
		"display", u.Display)

	if w.onUpdate != nil {
		w.onUpdate(u)
	}
}
