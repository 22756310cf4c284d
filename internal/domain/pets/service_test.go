package pets

import (
	"context"
	"testing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID   map[int64]Pet
	lastID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) (Pet, error) {
	r.lastID++
	p.ID = r.lastID
	r.byID[p.ID] = p
	return p, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) GetAll(ctx context.Context) ([]Pet, error) {
	out := make([]Pet, 0, len(r.byID))
	for id := int64(1); id <= r.lastID; id++ {
		if p, ok := r.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) (Pet, error) {
	if _, ok := r.byID[p.ID]; !ok {
		return Pet{}, ErrNotFound
	}
	r.byID[p.ID] = p
	return p, nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	delete(r.byID, id)
	return p, nil
}

func (r *testRepo) DeleteAll(ctx context.Context) error {
	r.byID = map[int64]Pet{}
	return nil
}

// -------------------------
// Tests
// -------------------------

func validInput() CreateInput {
	return CreateInput{Name: "Milo", Type: "dog", Age: 3, OwnerName: "Ana"}
}

func TestService_Create_AssignsID(t *testing.T) {
	svc := NewService(newTestRepo())

	p, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if p.ID <= 0 {
		t.Fatalf("expected assigned id, got %d", p.ID)
	}

	p2, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create #2 returned error: %v", err)
	}
	if p2.ID == p.ID {
		t.Fatalf("expected unique ids, got %d twice", p.ID)
	}
}

func TestService_Create_RejectsInvalidInput(t *testing.T) {
	svc := NewService(newTestRepo())

	cases := map[string]CreateInput{
		"empty name":   {Name: "", Type: "dog", Age: 3, OwnerName: "Ana"},
		"bad type":     {Name: "Milo", Type: "fish", Age: 3, OwnerName: "Ana"},
		"zero age":     {Name: "Milo", Type: "dog", Age: 0, OwnerName: "Ana"},
		"negative age": {Name: "Milo", Type: "dog", Age: -2, OwnerName: "Ana"},
		"empty owner":  {Name: "Milo", Type: "dog", Age: 3, OwnerName: "  "},
	}

	for name, in := range cases {
		if _, err := svc.Create(context.Background(), in); err != ErrInvalidInput {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestService_RoundTrip(t *testing.T) {
	svc := NewService(newTestRepo())

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got != created {
		t.Fatalf("round-trip mismatch: %#v vs %#v", got, created)
	}
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.GetByID(context.Background(), 99); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Update_FullReplace(t *testing.T) {
	svc := NewService(newTestRepo())

	created, _ := svc.Create(context.Background(), validInput())

	updated, err := svc.Update(context.Background(), created.ID, CreateInput{
		Name: "Luna", Type: "cat", Age: 5, OwnerName: "Pedro",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("expected id %d preserved, got %d", created.ID, updated.ID)
	}
	if updated.Name != "Luna" || updated.Type != TypeCat || updated.Age != 5 || updated.OwnerName != "Pedro" {
		t.Fatalf("expected full replace, got %#v", updated)
	}
}

func TestService_Update_NotFound(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Update(context.Background(), 42, validInput()); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Delete_ReturnsRemoved(t *testing.T) {
	svc := NewService(newTestRepo())

	created, _ := svc.Create(context.Background(), validInput())

	removed, err := svc.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if removed != created {
		t.Fatalf("expected removed record %#v, got %#v", created, removed)
	}

	if _, err := svc.GetByID(context.Background(), created.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if _, err := svc.Delete(context.Background(), created.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}
