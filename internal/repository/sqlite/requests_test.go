package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	migrations "github.com/pauloatx/page-teste02/db"
	"github.com/pauloatx/page-teste02/internal/db"
	sqlite "github.com/pauloatx/page-teste02/internal/repository/sqlite"
	"github.com/pauloatx/page-teste02/pkg/models"
	"github.com/pauloatx/page-teste02/pkg/repository"
)

func setupRepo(t *testing.T, uniqueEmail bool) *sqlite.SQLiteRepo {
	t.Helper()
	ctx := context.Background()

	d, err := db.New(ctx, "file:"+t.Name()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("db.New: %v", err)
	}
	t.Cleanup(func() { d.Close() })

	if err := db.Migrate(ctx, d, migrations.Migrations, uniqueEmail); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return sqlite.New(d, nil)
}

func TestCreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t, false)

	phone := "11 98888-0000"
	first := &models.ServiceRequest{
		Name:               "Jo Silva",
		Email:              "jo@example.com",
		Phone:              &phone,
		ServiceDescription: "instalação de chuveiro",
		ServiceDate:        "2025-06-30",
	}
	id1, err := repo.Create(ctx, first)
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	if id1 <= 0 {
		t.Fatalf("expected positive id, got %d", id1)
	}

	second := &models.ServiceRequest{
		Name:               "Maria Souza",
		Email:              "maria@example.com",
		ServiceDescription: "revisão elétrica",
	}
	id2, err := repo.Create(ctx, second)
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if id2 <= id1 {
		t.Fatalf("expected ids to increase, got %d then %d", id1, id2)
	}

	out, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}
	if out[0].ID != id1 || out[1].ID != id2 {
		t.Fatalf("expected id-ordered listing, got %d then %d", out[0].ID, out[1].ID)
	}
	if out[0].Phone == nil || *out[0].Phone != phone {
		t.Fatalf("unexpected phone %v", out[0].Phone)
	}
	if out[0].ServiceDate != "2025-06-30" {
		t.Fatalf("expected stored date kept, got %q", out[0].ServiceDate)
	}
	if out[1].Phone != nil {
		t.Fatalf("expected nil phone for second record, got %q", *out[1].Phone)
	}
	// second record omitted the date, the store must have defaulted it
	if out[1].ServiceDate != time.Now().UTC().Format("2006-01-02") {
		t.Fatalf("expected defaulted date, got %q", out[1].ServiceDate)
	}
}

func TestListEmptyStore(t *testing.T) {
	repo := setupRepo(t, false)

	out, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t, true)

	sr := &models.ServiceRequest{
		Name:               "Jo Silva",
		Email:              "jo@example.com",
		ServiceDescription: "conserto de telhado",
	}
	if _, err := repo.Create(ctx, sr); err != nil {
		t.Fatalf("first create: %v", err)
	}

	dup := &models.ServiceRequest{
		Name:               "Outro Jo",
		Email:              "jo@example.com",
		ServiceDescription: "conserto de telhado",
	}
	_, err := repo.Create(ctx, dup)
	if !errors.Is(err, repository.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	out, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected only the first row to persist, got %d", len(out))
	}
}

func TestCreateNil(t *testing.T) {
	repo := setupRepo(t, false)
	if _, err := repo.Create(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil request")
	}
}
