package memory

import (
	"context"
	"testing"

	"pets-users-service/internal/domain/pets"
	"pets-users-service/internal/domain/users"
)

func TestPetRepo_IDsAreMonotonic_NoReuseAfterDelete(t *testing.T) {
	repo := NewPetRepo()
	ctx := context.Background()

	p1, _ := repo.Create(ctx, pets.Pet{Name: "Milo", Type: pets.TypeDog, Age: 3, OwnerName: "Ana"})
	p2, _ := repo.Create(ctx, pets.Pet{Name: "Luna", Type: pets.TypeCat, Age: 2, OwnerName: "Ana"})

	if p1.ID != 1 || p2.ID != 2 {
		t.Fatalf("expected sequential ids 1,2, got %d,%d", p1.ID, p2.ID)
	}

	// Borrar el último y crear de nuevo NO reutiliza el id.
	if _, err := repo.Delete(ctx, p2.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	p3, _ := repo.Create(ctx, pets.Pet{Name: "Rocky", Type: pets.TypeDog, Age: 5, OwnerName: "Pedro"})
	if p3.ID != 3 {
		t.Fatalf("expected id 3 after delete (no reuse), got %d", p3.ID)
	}

	if _, err := repo.GetByID(ctx, p2.ID); err != pets.ErrNotFound {
		t.Fatalf("expected ErrNotFound for deleted id, got %v", err)
	}
}

func TestPetRepo_GetAll_InsertionOrder(t *testing.T) {
	repo := NewPetRepo()
	ctx := context.Background()

	names := []string{"Milo", "Luna", "Rocky"}
	for _, n := range names {
		_, _ = repo.Create(ctx, pets.Pet{Name: n, Type: pets.TypeDog, Age: 1, OwnerName: "Ana"})
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(all) != len(names) {
		t.Fatalf("expected %d pets, got %d", len(names), len(all))
	}
	for i, p := range all {
		if p.Name != names[i] {
			t.Fatalf("expected insertion order %v, got %s at %d", names, p.Name, i)
		}
	}
}

func TestPetRepo_Update_NotFound(t *testing.T) {
	repo := NewPetRepo()

	_, err := repo.Update(context.Background(), pets.Pet{ID: 7, Name: "X", Type: pets.TypeDog, Age: 1, OwnerName: "A"})
	if err != pets.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPetRepo_DeleteAll(t *testing.T) {
	repo := NewPetRepo()
	ctx := context.Background()

	_, _ = repo.Create(ctx, pets.Pet{Name: "Milo", Type: pets.TypeDog, Age: 3, OwnerName: "Ana"})
	_, _ = repo.Create(ctx, pets.Pet{Name: "Luna", Type: pets.TypeCat, Age: 2, OwnerName: "Ana"})

	if err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("DeleteAll returned error: %v", err)
	}

	all, _ := repo.GetAll(ctx)
	if len(all) != 0 {
		t.Fatalf("expected empty after DeleteAll, got %d", len(all))
	}

	// el contador no se resetea: los ids siguen creciendo
	p, _ := repo.Create(ctx, pets.Pet{Name: "Rocky", Type: pets.TypeDog, Age: 5, OwnerName: "Pedro"})
	if p.ID != 3 {
		t.Fatalf("expected id 3 after clear, got %d", p.ID)
	}
}

func TestUserRepo_Create_UniquenessUnderSameLock(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	base := users.User{
		Username: "a", Password: "digest", Email: "a@x.com",
		DNI: "1", FullName: "Ana", PhoneNumber: "555", Status: users.StatusPorVerificar,
	}

	if _, err := repo.Create(ctx, base); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	dupUsername := base
	dupUsername.Email = "otro@x.com"
	if _, err := repo.Create(ctx, dupUsername); err != users.ErrAlreadyExists {
		t.Fatalf("duplicate username: expected ErrAlreadyExists, got %v", err)
	}

	dupEmail := base
	dupEmail.Username = "b"
	if _, err := repo.Create(ctx, dupEmail); err != users.ErrAlreadyExists {
		t.Fatalf("duplicate email: expected ErrAlreadyExists, got %v", err)
	}

	all, _ := repo.GetAll(ctx)
	if len(all) != 1 {
		t.Fatalf("expected 1 stored user after rejected creates, got %d", len(all))
	}
}

func TestUserRepo_Delete_ReturnsRemoved(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	created, _ := repo.Create(ctx, users.User{
		Username: "a", Password: "digest", Email: "a@x.com",
		DNI: "1", FullName: "Ana", PhoneNumber: "555", Status: users.StatusPorVerificar,
	})

	removed, err := repo.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if removed != created {
		t.Fatalf("expected removed record %#v, got %#v", created, removed)
	}

	if _, err := repo.Delete(ctx, created.ID); err != users.ErrNotFound {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestUserRepo_UniquenessFreedAfterDelete(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	u := users.User{
		Username: "a", Password: "digest", Email: "a@x.com",
		DNI: "1", FullName: "Ana", PhoneNumber: "555", Status: users.StatusPorVerificar,
	}

	created, _ := repo.Create(ctx, u)
	_, _ = repo.Delete(ctx, created.ID)

	// borrado el registro, username/email quedan libres; el id nuevo es otro
	again, err := repo.Create(ctx, u)
	if err != nil {
		t.Fatalf("Create after delete returned error: %v", err)
	}
	if again.ID == created.ID {
		t.Fatalf("expected a fresh id, got reused %d", again.ID)
	}
}
