package wizard

import (
	"context"

	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-wizard/internal/errors"
	"github.com/KirkDiggler/rpg-character-wizard/internal/pkg/textsearch"
	sessionrepo "github.com/KirkDiggler/rpg-character-wizard/internal/repositories/session"
	"github.com/KirkDiggler/rpg-character-wizard/internal/rules"
	"github.com/KirkDiggler/rpg-character-wizard/internal/selectors"
	"github.com/KirkDiggler/rpg-character-wizard/internal/services/wizard"
)

// requireCatalogs returns the session's catalogs, or a retryable error while
// none have loaded
func requireCatalogs(sess *sessionrepo.Session) (sessionrepo.CatalogState, error) {
	state := sess.Catalogs()
	if state.Catalogs != nil {
		return state, nil
	}
	if state.Status == sessionrepo.CatalogStatusError {
		return state, errors.WrapWithCode(state.Err, errors.CodeUnavailable, "reference data failed to load").AsRetryable()
	}
	return state, errors.Unavailable("reference data is still loading").AsRetryable()
}

func catalogsOf(state sessionrepo.CatalogState) *dnd5e.Catalogs {
	if state.Catalogs == nil {
		return &dnd5e.Catalogs{}
	}
	return state.Catalogs
}

func loading(state sessionrepo.CatalogState) bool {
	return state.Status == sessionrepo.CatalogStatusLoading
}

func raceSelector(state sessionrepo.CatalogState, draft *dnd5e.CharacterDraft, onSelect func(*dnd5e.Race)) *selectors.Selector[*dnd5e.Race] {
	return selectors.NewRaceSelector(selectors.Options[*dnd5e.Race]{
		Candidates: catalogsOf(state).Races,
		Selected:   draft.Race,
		OnSelect:   onSelect,
		Loading:    loading(state),
	})
}

func classSelector(state sessionrepo.CatalogState, draft *dnd5e.CharacterDraft, onSelect func(*dnd5e.Class)) *selectors.Selector[*dnd5e.Class] {
	return selectors.NewClassSelector(selectors.Options[*dnd5e.Class]{
		Candidates: catalogsOf(state).Classes,
		Selected:   draft.Class,
		OnSelect:   onSelect,
		Loading:    loading(state),
	})
}

func backgroundSelector(state sessionrepo.CatalogState, draft *dnd5e.CharacterDraft, onSelect func(*dnd5e.Background)) *selectors.Selector[*dnd5e.Background] {
	return selectors.NewBackgroundSelector(selectors.Options[*dnd5e.Background]{
		Candidates: catalogsOf(state).Backgrounds,
		Selected:   draft.Background,
		OnSelect:   onSelect,
		Loading:    loading(state),
	})
}

func (o *Orchestrator) subclassSelector(candidates []*dnd5e.Subclass, draft *dnd5e.CharacterDraft, onSelect func(*dnd5e.Subclass)) *selectors.Selector[*dnd5e.Subclass] {
	return selectors.NewSubclassSelector(selectors.Options[*dnd5e.Subclass]{
		Candidates: candidates,
		Selected:   draft.Subclass,
		OnSelect:   onSelect,
	})
}

func (o *Orchestrator) featSelector(draft *dnd5e.CharacterDraft, onSelect func(*dnd5e.Feat)) *selectors.Selector[*dnd5e.Feat] {
	return selectors.NewFeatSelector(selectors.Options[*dnd5e.Feat]{
		Candidates: o.rules.Feats(),
		Selected:   draft.Feat,
		OnSelect:   onSelect,
	}, draft)
}

// allSubclasses lists the subclasses of every loaded class, falling back to
// the rule tables' classes while the catalogs load
func (o *Orchestrator) allSubclasses(state sessionrepo.CatalogState) []*dnd5e.Subclass {
	var classIDs []string
	for _, c := range catalogsOf(state).Classes {
		if c != nil {
			classIDs = append(classIDs, c.ID)
		}
	}
	if len(classIDs) == 0 {
		classIDs = o.rules.ClassIDs()
	}

	var out []*dnd5e.Subclass
	for _, id := range classIDs {
		out = append(out, o.rules.Subclasses(id)...)
	}
	return out
}

// narrow applies a search and filter to sel and returns its view
func narrow[T selectors.Record](sel *selectors.Selector[T], input *wizard.ListOptionsInput) (selectors.View[T], error) {
	sel.SetSearch(input.Search)
	if err := sel.SetFilter(input.Filter, input.FilterValue); err != nil {
		return selectors.View[T]{}, err
	}
	return sel.View(), nil
}

// ListOptions returns a selector view over one catalog for the session
func (o *Orchestrator) ListOptions(ctx context.Context, input *wizard.ListOptionsInput) (*wizard.ListOptionsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, _, err := o.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	state := sess.Catalogs()
	draft := sess.Controller.Snapshot().Draft

	var view any
	switch input.Catalog {
	case selectors.CatalogRaces:
		view, err = narrow(raceSelector(state, draft, nil), input)
	case selectors.CatalogClasses:
		view, err = narrow(classSelector(state, draft, nil), input)
	case selectors.CatalogSubclasses:
		view, err = narrow(o.subclassSelector(o.allSubclasses(state), draft, nil), input)
	case selectors.CatalogBackgrounds:
		view, err = narrow(backgroundSelector(state, draft, nil), input)
	case selectors.CatalogFeats:
		view, err = narrow(o.featSelector(draft, nil), input)
	default:
		return nil, errors.InvalidArgumentf("unknown catalog %q", input.Catalog)
	}
	if err != nil {
		return nil, err
	}

	return &wizard.ListOptionsOutput{
		Catalog:       input.Catalog,
		View:          view,
		CatalogStatus: catalogStatus(state),
	}, nil
}

// SearchFeats queries the feat table by text and category
func (o *Orchestrator) SearchFeats(_ context.Context, input *wizard.SearchFeatsInput) (*wizard.SearchFeatsOutput, error) {
	if input == nil {
		input = &wizard.SearchFeatsInput{}
	}

	categories := o.rules.FeatCategories()
	if input.Category != "" && !containsFold(categories, input.Category) {
		return nil, errors.InvalidArgumentf("unknown feat category %q", input.Category).
			WithMeta("categories", categories)
	}

	inCategory := make(map[string]bool)
	for _, f := range o.rules.FeatsByCategory(input.Category) {
		inCategory[f.ID] = true
	}

	feats := []*dnd5e.Feat{}
	for _, f := range o.rules.SearchFeats(input.Query) {
		if inCategory[f.ID] {
			feats = append(feats, f)
		}
	}

	return &wizard.SearchFeatsOutput{
		Feats:      feats,
		Categories: categories,
	}, nil
}

// ListClassFeatures returns a class's features up to a level, with its subclasses
func (o *Orchestrator) ListClassFeatures(_ context.Context, input *wizard.ListClassFeaturesInput) (*wizard.ListClassFeaturesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("classID", input.ClassID, vb)
	if input.Level < 0 || input.Level > dnd5e.MaxLevel {
		vb.Fieldf("level", "must be between 0 and %d", dnd5e.MaxLevel)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, ok := o.rules.ClassProfile(input.ClassID); !ok {
		return nil, errors.NotFoundf("class %s not found", input.ClassID)
	}

	features := o.rules.ClassFeatures(input.ClassID, input.Level)
	if input.Query != "" {
		features = nil
		for _, cf := range o.rules.SearchClassFeatures(input.ClassID, input.Query) {
			if input.Level == 0 || cf.Level <= input.Level {
				features = append(features, cf)
			}
		}
	}
	if features == nil {
		features = []*dnd5e.ClassFeature{}
	}

	return &wizard.ListClassFeaturesOutput{
		Features:      features,
		Subclasses:    o.rules.Subclasses(input.ClassID),
		SubclassLevel: o.rules.SubclassUnlockLevel(input.ClassID),
	}, nil
}

func containsFold(values []string, v string) bool {
	for _, candidate := range values {
		if textsearch.Equal(candidate, v) {
			return true
		}
	}
	return false
}

func unmetPrerequisites(feat *dnd5e.Feat, draft *dnd5e.CharacterDraft) []string {
	return rules.UnmetPrerequisites(feat, draft)
}
