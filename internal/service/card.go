package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BuzzLyutic/taskboard-api/internal/model"
	"github.com/BuzzLyutic/taskboard-api/internal/order"
	"github.com/BuzzLyutic/taskboard-api/internal/repo"
)

var ErrValidation = errors.New("validation error")

// KeyAllocator mints a project-scoped key code for a newly linked card.
type KeyAllocator interface {
	AllocateKey(ctx context.Context, projectID string) (string, error)
}

// CardService is the mutation engine for cards: it owns order maintenance
// within a column's active set and the activity records every transition
// leaves behind. Each persistence call commits on its own; steps run in
// program order and renormalization is idempotent, so a failure partway
// never loses cards, it only leaves an ordering a later pass can repair.
type CardService struct {
	cards   repo.CardRepository
	columns repo.ColumnRepository
	keys    KeyAllocator
	log     *ActivityLogger
}

func NewCardService(cards repo.CardRepository, columns repo.ColumnRepository, keys KeyAllocator, log *ActivityLogger) *CardService {
	return &CardService{cards: cards, columns: columns, keys: keys, log: log}
}

type CreateCardInput struct {
	ColumnID    string         `json:"columnId"`
	ProjectID   *string        `json:"projectId"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Tags        []string       `json:"tags"`
	Priority    model.Priority `json:"priority"`
	DueDate     *string        `json:"dueDate"`
}

func (s *CardService) Create(ctx context.Context, in CreateCardInput, actor string) (model.Card, error) {
	if in.ColumnID == "" {
		return model.Card{}, fmt.Errorf("%w: columnId is required", ErrValidation)
	}
	if strings.TrimSpace(in.Title) == "" {
		return model.Card{}, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.Priority == "" {
		in.Priority = model.PriorityMedium
	}
	if !in.Priority.Valid() {
		return model.Card{}, fmt.Errorf("%w: unknown priority %q", ErrValidation, in.Priority)
	}
	dueDate, err := parseDueDate(in.DueDate)
	if err != nil {
		return model.Card{}, err
	}
	if in.Tags == nil {
		in.Tags = []string{}
	}

	if _, err := s.columns.Get(ctx, in.ColumnID); err != nil {
		return model.Card{}, err
	}

	card := model.Card{
		ColumnID:    in.ColumnID,
		Title:       in.Title,
		Description: in.Description,
		Tags:        in.Tags,
		Priority:    in.Priority,
		DueDate:     dueDate,
	}

	// Key codes are assigned once, at creation, and never touched again.
	if in.ProjectID != nil {
		keyCode, err := s.keys.AllocateKey(ctx, *in.ProjectID)
		if err != nil {
			return model.Card{}, err
		}
		card.ProjectID = in.ProjectID
		card.KeyCode = &keyCode
	}

	max, err := s.cards.MaxOrder(ctx, in.ColumnID)
	if err != nil {
		return model.Card{}, err
	}
	card.Order = max + 1

	created, err := s.cards.Create(ctx, card)
	if err != nil {
		return created, err
	}

	if err := s.log.Record(ctx, created.ID, model.ActivityCreated, actor, nil, model.CardSnapshot{
		Title:       created.Title,
		Description: created.Description,
		Tags:        created.Tags,
		Priority:    created.Priority,
		DueDate:     isoPtr(created.DueDate),
		ColumnID:    created.ColumnID,
		Order:       created.Order,
		Archived:    created.Archived,
	}); err != nil {
		return created, err
	}
	return created, nil
}

type UpdateCardInput struct {
	ID          string
	Title       *string
	Description *string
	Tags        []string // nil leaves tags untouched
	Priority    *model.Priority
	DueDate     *string // only applied when DueDateSet; nil then clears
	DueDateSet  bool
}

// Update applies only the fields present in the input and records the
// field-level diff. EDITED records carry the diff in the `before` slot and
// leave `after` null.
func (s *CardService) Update(ctx context.Context, in UpdateCardInput, actor string) (model.Card, error) {
	if in.ID == "" {
		return model.Card{}, fmt.Errorf("%w: id is required", ErrValidation)
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return model.Card{}, fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}
	if in.Priority != nil && !in.Priority.Valid() {
		return model.Card{}, fmt.Errorf("%w: unknown priority %q", ErrValidation, *in.Priority)
	}
	dueDate, err := parseDueDate(in.DueDate)
	if err != nil {
		return model.Card{}, err
	}

	before, err := s.cards.Get(ctx, in.ID)
	if err != nil {
		return model.Card{}, err
	}

	next := before
	if in.Title != nil {
		next.Title = *in.Title
	}
	if in.Description != nil {
		next.Description = *in.Description
	}
	if in.Tags != nil {
		next.Tags = in.Tags
	}
	if in.Priority != nil {
		next.Priority = *in.Priority
	}
	if in.DueDateSet {
		next.DueDate = dueDate
	}

	updated, err := s.cards.Update(ctx, next)
	if err != nil {
		return updated, err
	}

	if err := s.log.Record(ctx, updated.ID, model.ActivityEdited, actor, cardDiff(before, updated), nil); err != nil {
		return updated, err
	}
	return updated, nil
}

type MoveCardInput struct {
	CardID                     string
	FromColumnID               string
	ToColumnID                 string
	OrderedCardIDsInToColumn   []string
	OrderedCardIDsInFromColumn []string // nil just closes the gap left behind
}

// Move relocates a card and renormalizes both columns. Steps run in this
// order: relocate, reorder target, reorder source. Same-column reordering is
// the degenerate case where from == to and only the target step runs. The
// caller-supplied orderings are never trusted to be complete or valid.
func (s *CardService) Move(ctx context.Context, in MoveCardInput, actor string) error {
	if in.CardID == "" || in.FromColumnID == "" || in.ToColumnID == "" {
		return fmt.Errorf("%w: cardId, fromColumnId and toColumnId are required", ErrValidation)
	}

	before, err := s.cards.Get(ctx, in.CardID)
	if err != nil {
		return err
	}

	if err := s.cards.SetColumn(ctx, in.CardID, in.ToColumnID); err != nil {
		return err
	}

	if err := s.applyOrdering(ctx, in.ToColumnID, in.OrderedCardIDsInToColumn, ""); err != nil {
		return err
	}

	if in.FromColumnID != in.ToColumnID {
		if err := s.applyOrdering(ctx, in.FromColumnID, in.OrderedCardIDsInFromColumn, in.CardID); err != nil {
			return err
		}
	}

	after, err := s.cards.Get(ctx, in.CardID)
	if err != nil {
		return err
	}

	return s.log.Record(ctx, in.CardID, model.ActivityMoved, actor,
		model.CardPosition{ColumnID: before.ColumnID, Order: before.Order},
		model.CardPosition{ColumnID: after.ColumnID, Order: after.Order},
	)
}

type ArchiveCardInput struct {
	CardID   string
	Archived bool
}

// SetArchived flips the archived flag. Archiving closes the gap the card
// leaves in its column's active ordering; unarchiving appends at the end
// (max+1) rather than reclaiming the old slot, which may be taken by now.
func (s *CardService) SetArchived(ctx context.Context, in ArchiveCardInput, actor string) (model.Card, error) {
	if in.CardID == "" {
		return model.Card{}, fmt.Errorf("%w: cardId is required", ErrValidation)
	}

	before, err := s.cards.Get(ctx, in.CardID)
	if err != nil {
		return model.Card{}, err
	}

	var updated model.Card
	if in.Archived {
		updated, err = s.cards.Archive(ctx, in.CardID)
		if err != nil {
			return updated, err
		}
		if err := s.applyOrdering(ctx, before.ColumnID, nil, ""); err != nil {
			return updated, err
		}
	} else {
		max, err := s.cards.MaxOrder(ctx, before.ColumnID)
		if err != nil {
			return model.Card{}, err
		}
		updated, err = s.cards.Unarchive(ctx, in.CardID, max+1)
		if err != nil {
			return updated, err
		}
	}

	typ := model.ActivityUnarchived
	if in.Archived {
		typ = model.ActivityArchived
	}
	if err := s.log.Record(ctx, updated.ID, typ, actor,
		model.ArchiveState{Archived: before.Archived, Order: before.Order, ColumnID: before.ColumnID},
		model.ArchiveState{Archived: updated.Archived, Order: updated.Order, ColumnID: updated.ColumnID},
	); err != nil {
		return updated, err
	}
	return updated, nil
}

// applyOrdering loads the column's active cards, reconciles the desired
// ordering against them and writes order = index, skipping rows already in
// place. Safe to re-run; with a nil desired list it just closes gaps.
func (s *CardService) applyOrdering(ctx context.Context, columnID string, desired []string, exclude string) error {
	actives, err := s.cards.ListActive(ctx, columnID)
	if err != nil {
		return err
	}

	actual := make([]string, 0, len(actives))
	current := make(map[string]int, len(actives))
	for _, c := range actives {
		if c.ID == exclude {
			continue
		}
		actual = append(actual, c.ID)
		current[c.ID] = c.Order
	}

	for i, id := range order.Normalize(desired, actual) {
		if current[id] == i {
			continue
		}
		if err := s.cards.SetOrder(ctx, id, i); err != nil {
			return err
		}
	}
	return nil
}

func parseDueDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid dueDate %q", ErrValidation, *raw)
	}
	return &t, nil
}

func isoPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
