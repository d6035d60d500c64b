package services

import (
	"context"
	"errors"
	"testing"
)

type fakeViewStore struct {
	calls []string
	err   error
}

func (s *fakeViewStore) IncrementViewOnce(ctx context.Context, id int64, viewerKey string) error {
	s.calls = append(s.calls, viewerKey)
	return s.err
}

func TestRecordViewWithoutRedisHitsStore(t *testing.T) {
	store := &fakeViewStore{}
	s := &ViewService{ListingRepo: store}

	s.RecordView(context.Background(), 1, "203.0.113.9")
	if len(store.calls) != 1 || store.calls[0] != "203.0.113.9" {
		t.Fatalf("expected one increment for the viewer key, got %v", store.calls)
	}
}

func TestRecordViewIgnoresEmptyViewerKey(t *testing.T) {
	store := &fakeViewStore{}
	s := &ViewService{ListingRepo: store}

	s.RecordView(context.Background(), 1, "")
	if len(store.calls) != 0 {
		t.Fatalf("empty viewer key must not be counted")
	}
}

func TestRecordViewSwallowsStoreError(t *testing.T) {
	store := &fakeViewStore{err: errors.New("db gone")}
	s := &ViewService{ListingRepo: store}

	// Must not panic or surface the error; views are best-effort.
	s.RecordView(context.Background(), 1, "203.0.113.9")
	if len(store.calls) != 1 {
		t.Fatalf("expected the increment to be attempted")
	}
}
