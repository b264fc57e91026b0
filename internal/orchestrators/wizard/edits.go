package wizard

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-wizard/internal/errors"
	"github.com/KirkDiggler/rpg-character-wizard/internal/orchestrators/dice"
	sessionrepo "github.com/KirkDiggler/rpg-character-wizard/internal/repositories/session"
	"github.com/KirkDiggler/rpg-character-wizard/internal/selectors"
	"github.com/KirkDiggler/rpg-character-wizard/internal/services/wizard"
	wizardcore "github.com/KirkDiggler/rpg-character-wizard/internal/wizard"
)

func validateName(name string) error {
	if utf8.RuneCountInString(name) > MaxNameLength {
		return errors.InvalidArgumentf("name cannot exceed %d characters", MaxNameLength)
	}
	return nil
}

// apply loads a session, reduces events against its controller and
// returns the new view
func (o *Orchestrator) apply(ctx context.Context, sessionID string, events ...wizardcore.Event) (*wizard.UpdateOutput, error) {
	sess, expiresAt, err := o.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	snap := sess.Controller.Apply(events...)
	return &wizard.UpdateOutput{Session: o.view(sess, snap, expiresAt)}, nil
}

// UpdateName changes the character name. Clearing it sends the wizard back
// to the name step.
func (o *Orchestrator) UpdateName(ctx context.Context, input *wizard.UpdateNameInput) (*wizard.UpdateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	return o.apply(ctx, input.SessionID, wizardcore.NameChanged{Name: input.Name})
}

// ContinueName confirms the name step
func (o *Orchestrator) ContinueName(ctx context.Context, input *wizard.ContinueNameInput) (*wizard.UpdateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, expiresAt, err := o.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	snap := sess.Controller.Apply(wizardcore.NameConfirmed{})
	if !snap.NameConfirmed {
		return nil, errors.FailedPrecondition("a name is required before continuing")
	}

	return &wizard.UpdateOutput{Session: o.view(sess, snap, expiresAt)}, nil
}

// SelectOption picks a race, class, subclass, background or feat through
// the catalog's selector
func (o *Orchestrator) SelectOption(ctx context.Context, input *wizard.SelectOptionInput) (*wizard.UpdateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, expiresAt, err := o.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	snap, err := sess.Controller.Update(func(cur wizardcore.Snapshot) (wizardcore.Event, error) {
		return o.selection(sess, cur, input.Catalog, input.OptionID)
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("Selected option",
		"session_id", sess.ID,
		"catalog", input.Catalog,
		"option_id", input.OptionID,
		"step", snap.Step)

	return &wizard.UpdateOutput{Session: o.view(sess, snap, expiresAt)}, nil
}

// UpdateAlignment sets the alignment; an empty value clears it
func (o *Orchestrator) UpdateAlignment(ctx context.Context, input *wizard.UpdateAlignmentInput) (*wizard.UpdateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var alignment dnd5e.Alignment
	if strings.TrimSpace(input.Alignment) != "" {
		parsed, ok := dnd5e.ParseAlignment(input.Alignment)
		if !ok {
			return nil, errors.InvalidArgumentf("unknown alignment %q", input.Alignment)
		}
		alignment = parsed
	}

	sess, expiresAt, err := o.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	snap, err := sess.Controller.Update(func(cur wizardcore.Snapshot) (wizardcore.Event, error) {
		if alignment != "" {
			if err := requireReachable(cur, wizardcore.StepAlignment); err != nil {
				return nil, err
			}
		}
		return wizardcore.AlignmentSelected{Alignment: alignment}, nil
	})
	if err != nil {
		return nil, err
	}

	return &wizard.UpdateOutput{Session: o.view(sess, snap, expiresAt)}, nil
}

// UpdateLevel sets the character level. A subclass chosen above the new
// level is dropped.
func (o *Orchestrator) UpdateLevel(ctx context.Context, input *wizard.UpdateLevelInput) (*wizard.UpdateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Level < dnd5e.MinLevel || input.Level > dnd5e.MaxLevel {
		return nil, errors.OutOfRangef("level must be between %d and %d", dnd5e.MinLevel, dnd5e.MaxLevel)
	}

	return o.apply(ctx, input.SessionID, wizardcore.LevelChanged{Level: input.Level})
}

// UpdateAbilityScores replaces the base scores; nil clears them
func (o *Orchestrator) UpdateAbilityScores(ctx context.Context, input *wizard.UpdateAbilityScoresInput) (*wizard.UpdateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.AbilityScores != nil {
		if err := validateBaseScores(input.AbilityScores); err != nil {
			return nil, err
		}
	}

	return o.apply(ctx, input.SessionID, wizardcore.AbilityScoresChanged{Scores: input.AbilityScores})
}

// validateBaseScores keeps base scores in the range 1..20 a final score
// is clamped to
func validateBaseScores(scores *dnd5e.AbilityScores) error {
	vb := errors.NewValidationBuilder()
	for _, a := range dnd5e.Abilities {
		if v := scores.Get(a); v < 1 || v > 20 {
			vb.Fieldf(string(a), "must be between 1 and 20, got %d", v)
		}
	}
	return vb.Build()
}

// RollAbilityScores generates base scores, assigning the best results to the
// selected class's primary abilities
func (o *Orchestrator) RollAbilityScores(ctx context.Context, input *wizard.RollAbilityScoresInput) (*wizard.RollAbilityScoresOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, expiresAt, err := o.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	var primary []string
	if class := sess.Controller.Snapshot().Draft.Class; class != nil {
		primary = class.PrimaryAbilities
	}

	rolled, err := o.diceService.RollAbilityScores(ctx, &dice.RollAbilityScoresInput{
		Method:           input.Method,
		PrimaryAbilities: primary,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll ability scores")
	}

	scores := rolled.Scores
	snap := sess.Controller.Apply(wizardcore.AbilityScoresChanged{Scores: &scores})

	return &wizard.RollAbilityScoresOutput{
		Session: o.view(sess, snap, expiresAt),
		Method:  rolled.Method,
		Rolls:   rolled.Rolls,
	}, nil
}

// catalogSteps maps each selectable catalog to the wizard step it fills
var catalogSteps = map[string]wizardcore.Step{
	selectors.CatalogRaces:       wizardcore.StepRace,
	selectors.CatalogClasses:     wizardcore.StepClass,
	selectors.CatalogSubclasses:  wizardcore.StepSubclass,
	selectors.CatalogBackgrounds: wizardcore.StepBackground,
	selectors.CatalogFeats:       wizardcore.StepFeat,
}

// requireReachable refuses a step the wizard has not opened yet
func requireReachable(snap wizardcore.Snapshot, step wizardcore.Step) error {
	if snap.Reachable(step) {
		return nil
	}
	return errors.FailedPreconditionf("%s is not available until %s is complete", step.Title(), snap.Step.Title()).
		WithMeta("step", snap.Step.String())
}

// selection resolves a catalog pick against snap into the event that
// applies it. Clearing a selection is always allowed; picking one needs
// its step to be reachable.
func (o *Orchestrator) selection(sess *sessionrepo.Session, snap wizardcore.Snapshot, catalogName, id string) (wizardcore.Event, error) {
	step, ok := catalogSteps[catalogName]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown catalog %q", catalogName)
	}

	draft := snap.Draft
	clearing := strings.TrimSpace(id) == ""
	if !clearing {
		if err := checkStep(snap, step); err != nil {
			return nil, err
		}
	}

	var event wizardcore.Event
	onSelect := func(e wizardcore.Event) { event = e }

	switch catalogName {
	case selectors.CatalogRaces:
		if clearing {
			return wizardcore.RaceSelected{}, nil
		}
		state, err := requireCatalogs(sess)
		if err != nil {
			return nil, err
		}
		sel := raceSelector(state, draft, func(r *dnd5e.Race) { onSelect(wizardcore.RaceSelected{Race: r}) })
		if _, err := sel.Select(id); err != nil {
			return nil, err
		}

	case selectors.CatalogClasses:
		if clearing {
			return wizardcore.ClassSelected{}, nil
		}
		state, err := requireCatalogs(sess)
		if err != nil {
			return nil, err
		}
		sel := classSelector(state, draft, func(c *dnd5e.Class) { onSelect(wizardcore.ClassSelected{Class: c}) })
		if _, err := sel.Select(id); err != nil {
			return nil, err
		}

	case selectors.CatalogSubclasses:
		if clearing {
			return wizardcore.SubclassSelected{}, nil
		}
		sel := o.subclassSelector(o.rules.Subclasses(draft.Class.ID), draft, func(sc *dnd5e.Subclass) {
			onSelect(wizardcore.SubclassSelected{Subclass: sc})
		})
		if _, err := sel.Select(id); err != nil {
			return nil, err
		}

	case selectors.CatalogBackgrounds:
		if clearing {
			return wizardcore.BackgroundSelected{}, nil
		}
		state, err := requireCatalogs(sess)
		if err != nil {
			return nil, err
		}
		sel := backgroundSelector(state, draft, func(b *dnd5e.Background) {
			onSelect(wizardcore.BackgroundSelected{Background: b})
		})
		if _, err := sel.Select(id); err != nil {
			return nil, err
		}

	case selectors.CatalogFeats:
		if clearing {
			return wizardcore.FeatSelected{}, nil
		}
		var chosen *dnd5e.Feat
		sel := o.featSelector(draft, func(f *dnd5e.Feat) { chosen = f })
		if _, err := sel.Select(id); err != nil {
			return nil, err
		}
		if unmet := unmetPrerequisites(chosen, draft); len(unmet) > 0 {
			return nil, errors.FailedPreconditionf("%s prerequisites not met: %s", chosen.Name, strings.Join(unmet, "; ")).
				WithMeta("unmet", unmet)
		}
		onSelect(wizardcore.FeatSelected{Feat: chosen})
	}

	return event, nil
}

// checkStep explains why step can't be filled yet, if it can't
func checkStep(snap wizardcore.Snapshot, step wizardcore.Step) error {
	draft := snap.Draft
	switch step {
	case wizardcore.StepSubclass:
		if draft.Class == nil {
			return errors.FailedPrecondition("choose a class before a subclass")
		}
		if !draft.SubclassRequired() {
			return errors.FailedPreconditionf("%s has no subclass choice at level %d", draft.Class.Name, draft.EffectiveLevel())
		}
	case wizardcore.StepFeat:
		if !draft.FeatRequired() {
			return errors.FailedPrecondition("the selected background does not grant a feat")
		}
	}
	return requireReachable(snap, step)
}
