// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/idea-board/models"
	"github.com/danielhkuo/idea-board/testutil"
)

func TestRegisterSubmitter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx := context.Background()

	tests := []struct {
		name      string
		subName   string
		role      models.Role
		wantField string // empty means success
	}{
		{"valid citizen", "Sam", models.RoleCitizen, ""},
		{"valid expert", "Amal", models.RoleExpert, ""},
		{"empty name", "", models.RoleCitizen, "name"},
		{"whitespace name", "   ", models.RoleSergeant, "name"},
		{"unknown role", "Zed", models.Role("mayor"), "role"},
		{"empty role", "Zed", models.Role(""), "role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := s.RegisterSubmitter(ctx, tt.subName, tt.role)

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if id == "" {
					t.Error("Expected non-empty submitter id")
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Expected field %q, got %q", tt.wantField, verr.Field)
			}
			if !errors.Is(err, ErrValidation) {
				t.Error("Expected errors.Is(err, ErrValidation)")
			}
		})
	}

	// Only the two valid rows were written
	if n := testutil.CountRows(t, db, "submitter"); n != 2 {
		t.Errorf("Expected 2 submitters, got %d", n)
	}
}

func TestRegisterThenList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx := context.Background()

	seen := map[string]bool{}
	inputs := []struct {
		name string
		role models.Role
	}{
		{"Amal", models.RoleExpert},
		{"Sam", models.RoleCitizen},
		{"Rita", models.RoleActivist},
		{"Sam", models.RoleSergeant}, // names are not unique
	}

	var ids []string
	for _, in := range inputs {
		id, err := s.RegisterSubmitter(ctx, in.name, in.role)
		if err != nil {
			t.Fatalf("RegisterSubmitter(%s): %v", in.name, err)
		}
		if seen[id] {
			t.Fatalf("Duplicate id %s", id)
		}
		seen[id] = true
		ids = append(ids, id)
	}

	subs, err := s.ListSubmitters(ctx)
	if err != nil {
		t.Fatalf("ListSubmitters: %v", err)
	}
	if len(subs) != len(inputs) {
		t.Fatalf("Expected %d submitters, got %d", len(inputs), len(subs))
	}

	// Insertion order
	for i, sub := range subs {
		if sub.ID != ids[i] {
			t.Errorf("Position %d: expected id %s, got %s", i, ids[i], sub.ID)
		}
		if sub.Name != inputs[i].name || sub.Role != inputs[i].role {
			t.Errorf("Position %d: expected %s/%s, got %s/%s", i, inputs[i].name, inputs[i].role, sub.Name, sub.Role)
		}
		if sub.CreatedAt.IsZero() {
			t.Errorf("Position %d: created_at not set", i)
		}
	}
}

func TestListSubmitters_Empty(t *testing.T) {
	s := New(testutil.SetupTestDB(t))

	subs, err := s.ListSubmitters(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if subs == nil || len(subs) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", subs)
	}
}

func TestGetSubmitter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx := context.Background()

	id := testutil.CreateTestSubmitter(t, db, "Amal", models.RoleExpert)

	sub, err := s.GetSubmitter(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if sub.Name != "Amal" || sub.Role != models.RoleExpert {
		t.Errorf("Unexpected submitter: %+v", sub)
	}

	_, err = s.GetSubmitter(ctx, "missing")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
	if nf.Kind != "submitter" || nf.ID != "missing" {
		t.Errorf("Unexpected NotFoundError: %+v", nf)
	}
}

func TestSubmitIdea(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx := context.Background()

	fixed := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	authorID := testutil.CreateTestSubmitter(t, db, "Amal", models.RoleExpert)

	t.Run("valid idea", func(t *testing.T) {
		id, err := s.SubmitIdea(ctx, "Water", "Clean water for all", authorID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		idea, err := s.GetIdea(ctx, id)
		if err != nil {
			t.Fatal(err)
		}
		if idea.Title != "Water" || idea.Description != "Clean water for all" {
			t.Errorf("Unexpected idea: %+v", idea)
		}
		if idea.VoteCount != 0 {
			t.Errorf("Expected vote_count 0, got %d", idea.VoteCount)
		}
		if !idea.CreatedAt.Equal(fixed) {
			t.Errorf("Expected created_at %v, got %v", fixed, idea.CreatedAt)
		}
		if idea.AuthorName != "Amal" || idea.AuthorRole != models.RoleExpert {
			t.Errorf("Unexpected author: %s/%s", idea.AuthorName, idea.AuthorRole)
		}
	})

	validation := []struct {
		name        string
		title, desc string
		author      string
		field       string
	}{
		{"missing title", "", "desc", authorID, "title"},
		{"missing description", "Title", "", authorID, "description"},
		{"blank title", "  ", "desc", authorID, "title"},
		{"missing author", "Title", "desc", "", "author_id"},
	}
	for _, tt := range validation {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.SubmitIdea(ctx, tt.title, tt.desc, tt.author)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Expected field %q, got %q", tt.field, verr.Field)
			}
		})
	}

	if n := testutil.CountRows(t, db, "idea"); n != 1 {
		t.Errorf("Expected 1 idea after validation failures, got %d", n)
	}
}

func TestSubmitIdea_UnknownAuthor(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)

	for i := 0; i < 3; i++ {
		_, err := s.SubmitIdea(context.Background(), "Roads", "Fix them", "no-such-submitter")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("Expected ErrNotFound, got %v", err)
		}
	}

	// Never a partial row
	if n := testutil.CountRows(t, db, "idea"); n != 0 {
		t.Errorf("Expected no ideas, got %d", n)
	}
}

func TestListIdeasJoined(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx := context.Background()

	amal := testutil.CreateTestSubmitter(t, db, "Amal", models.RoleExpert)
	sam := testutil.CreateTestSubmitter(t, db, "Sam", models.RoleCitizen)

	water, err := s.SubmitIdea(ctx, "Water", "desc", amal)
	if err != nil {
		t.Fatal(err)
	}
	roads, err := s.SubmitIdea(ctx, "Roads", "desc", sam)
	if err != nil {
		t.Fatal(err)
	}

	ideas, err := s.ListIdeasJoined(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(ideas) != 2 {
		t.Fatalf("Expected 2 ideas, got %d", len(ideas))
	}
	if ideas[0].ID != water || ideas[1].ID != roads {
		t.Errorf("Expected insertion order [Water, Roads], got [%s, %s]", ideas[0].Title, ideas[1].Title)
	}
	if ideas[1].AuthorName != "Sam" || ideas[1].AuthorRole != models.RoleCitizen {
		t.Errorf("Unexpected join for Roads: %s/%s", ideas[1].AuthorName, ideas[1].AuthorRole)
	}

	// Repeated reads without writes are identical
	again, err := s.ListIdeasJoined(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !sameIdeas(ideas, again) {
		t.Error("Expected identical results on repeated ListIdeasJoined")
	}
}

func sameIdeas(a, b []models.IdeaWithAuthor) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		x, y := a[i], b[i]
		if !x.CreatedAt.Equal(y.CreatedAt) {
			return false
		}
		x.CreatedAt, y.CreatedAt = time.Time{}, time.Time{}
		if !reflect.DeepEqual(x, y) {
			return false
		}
	}
	return true
}

func TestIncrementVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx := context.Background()

	author := testutil.CreateTestSubmitter(t, db, "Amal", models.RoleExpert)
	ideaID := testutil.CreateTestIdea(t, db, author, "Water", 5)

	for i := 0; i < 3; i++ {
		if err := s.IncrementVotes(ctx, ideaID); err != nil {
			t.Fatal(err)
		}
	}
	if got := testutil.VoteCount(t, db, ideaID); got != 8 {
		t.Errorf("Expected 8 votes, got %d", got)
	}

	err := s.IncrementVotes(ctx, "missing")
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Kind != "idea" {
		t.Errorf("Expected idea NotFoundError, got %v", err)
	}
}

func TestIncrementVotes_Concurrent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx := context.Background()

	author := testutil.CreateTestSubmitter(t, db, "Sam", models.RoleCitizen)
	ideaID := testutil.CreateTestIdea(t, db, author, "Roads", 0)

	const workers, perWorker = 8, 25
	var wg sync.WaitGroup
	errs := make(chan error, workers*perWorker)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if err := s.IncrementVotes(ctx, ideaID); err != nil {
					errs <- err
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("IncrementVotes failed: %v", err)
	}

	if got := testutil.VoteCount(t, db, ideaID); got != workers*perWorker {
		t.Errorf("Expected %d votes (no lost updates), got %d", workers*perWorker, got)
	}
}
