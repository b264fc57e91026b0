package wizard

import (
	"context"

	"github.com/KirkDiggler/rpg-character-wizard/internal/calculators"
	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-wizard/internal/errors"
	"github.com/KirkDiggler/rpg-character-wizard/internal/services/wizard"
	wizardcore "github.com/KirkDiggler/rpg-character-wizard/internal/wizard"
)

// GetPreview renders the character sheet for a session's current draft.
// Nothing is stored; every call recomputes from the draft.
func (o *Orchestrator) GetPreview(ctx context.Context, input *wizard.GetPreviewInput) (*wizard.GetPreviewOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, _, err := o.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &wizard.GetPreviewOutput{
		Preview: o.preview(sess.Controller.Snapshot().Draft),
	}, nil
}

func (o *Orchestrator) preview(draft *dnd5e.CharacterDraft) *wizard.Preview {
	base := dnd5e.DefaultAbilityScores()
	if draft.BaseAbilityScores != nil {
		base = *draft.BaseAbilityScores
	}

	p := &wizard.Preview{
		Name:          draft.Name,
		Level:         draft.EffectiveLevel(),
		BaseScores:    base,
		Stats:         calculators.Derive(draft, draft.BaseAbilityScores),
		MissingFields: wizardcore.MissingFields(draft),
	}
	if draft.Alignment.IsValid() {
		p.Alignment = draft.Alignment.DisplayName()
	}
	if draft.Feat != nil {
		p.Feat = draft.Feat.Name
	}
	if draft.Subclass != nil {
		p.Subclass = draft.Subclass.Name
	}

	if r := draft.Race; r != nil {
		p.Race = r.Name
		p.Languages = appendUnique(p.Languages, r.Languages...)
	}
	if b := draft.Background; b != nil {
		p.Background = b.Name
		p.Skills = appendUnique(p.Skills, b.SkillProficiencies...)
		p.Languages = appendUnique(p.Languages, b.Languages...)
	}
	if c := draft.Class; c != nil {
		p.Class = c.Name
		p.SavingThrows = append([]string(nil), c.SavingThrows...)
		p.Features = o.featureNames(draft)
	}

	return p
}

// featureNames lists class and subclass features up to the draft's level,
// falling back to the class record's own level-1 list
func (o *Orchestrator) featureNames(draft *dnd5e.CharacterDraft) []string {
	var names []string
	for _, f := range o.rules.ClassFeatures(draft.Class.ID, draft.EffectiveLevel()) {
		names = append(names, f.Name)
	}
	if len(names) == 0 {
		names = append(names, draft.Class.Features...)
	}
	if draft.Subclass != nil {
		names = appendUnique(names, draft.Subclass.Features...)
	}
	return names
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		if v == "" || containsFold(dst, v) {
			continue
		}
		dst = append(dst, v)
	}
	return dst
}
