package service

import (
	"context"
	"encoding/json"

	"github.com/BuzzLyutic/taskboard-api/internal/model"
	"github.com/BuzzLyutic/taskboard-api/internal/repo"
)

// ActivityLogger appends immutable audit records. It is agnostic to payload
// shape: whatever structured value it is handed gets serialized as-is.
type ActivityLogger struct {
	activity repo.ActivityRepository
}

func NewActivityLogger(activity repo.ActivityRepository) *ActivityLogger {
	return &ActivityLogger{activity: activity}
}

func (l *ActivityLogger) Record(ctx context.Context, cardID string, typ model.ActivityType, actor string, before, after any) error {
	b, err := marshalPayload(before)
	if err != nil {
		return err
	}
	a, err := marshalPayload(after)
	if err != nil {
		return err
	}

	_, err = l.activity.Append(ctx, model.CardActivity{
		CardID: cardID,
		Type:   typ,
		Actor:  actor,
		Before: b,
		After:  a,
	})
	return err
}

func marshalPayload(v any) (json.RawMessage, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

// ActivityService is the read path: a filtered, sorted listing, no mutation.
type ActivityService struct {
	activity repo.ActivityRepository
}

func NewActivityService(activity repo.ActivityRepository) *ActivityService {
	return &ActivityService{activity: activity}
}

func (s *ActivityService) ListByCard(ctx context.Context, cardID string, desc bool) ([]model.CardActivity, error) {
	return s.activity.ListByCard(ctx, cardID, desc)
}
