package services

import (
	"context"
	"testing"

	"matrimony_server/models"
)

func seedDirectory(t *testing.T, svc *SearchService) {
	t.Helper()
	seedUser(t, svc.DB, models.User{Name: "alice", Email: "a@x.com", Age: 25, Gender: "Female", Religion: "Hindu", Profession: "Engineer", Location: "Pune"})
	seedUser(t, svc.DB, models.User{Name: "bob", Email: "b@x.com", Age: 28, Gender: "Male", Religion: "Christian", Profession: "Doctor", Location: "Mumbai"})
	seedUser(t, svc.DB, models.User{Name: "carol", Email: "c@x.com", Age: 25, Gender: "Female", Religion: "Hindu", Profession: "Teacher", Location: "Mumbai"})
}

func TestSearchEmptyFiltersReturnsFullDirectory(t *testing.T) {
	conn := setupTestDB(t)
	svc := &SearchService{DB: conn}
	seedDirectory(t, svc)

	results, err := svc.Search(context.Background(), models.SearchFilters{})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected full directory, got %d rows", len(results))
	}
}

func TestSearchConjunctiveFilters(t *testing.T) {
	conn := setupTestDB(t)
	svc := &SearchService{DB: conn}
	seedDirectory(t, svc)

	results, err := svc.Search(context.Background(), models.SearchFilters{Gender: "Female", Location: "Pune"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].Name != "alice" {
		t.Fatalf("expected only alice, got %+v", results)
	}
}

func TestSearchSubstringMatch(t *testing.T) {
	conn := setupTestDB(t)
	svc := &SearchService{DB: conn}
	seedDirectory(t, svc)

	// Substring semantics for religion/profession/location.
	results, err := svc.Search(context.Background(), models.SearchFilters{Profession: "Engine"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].Name != "alice" {
		t.Fatalf("expected alice by profession substring, got %+v", results)
	}
}

func TestSearchNoMatchesIsEmptyNotError(t *testing.T) {
	conn := setupTestDB(t)
	svc := &SearchService{DB: conn}
	seedDirectory(t, svc)

	results, err := svc.Search(context.Background(), models.SearchFilters{Gender: "Female", Location: "Delhi"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if results == nil || len(results) != 0 {
		t.Fatalf("expected empty result set, got %+v", results)
	}
}

func TestSearchExactAge(t *testing.T) {
	conn := setupTestDB(t)
	svc := &SearchService{DB: conn}
	seedDirectory(t, svc)

	results, err := svc.Search(context.Background(), models.SearchFilters{Age: 25})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 users aged 25, got %d", len(results))
	}
}
