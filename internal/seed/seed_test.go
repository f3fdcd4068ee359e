package seed

import (
	"context"
	"testing"

	"github.com/Leganyst/homeservice-platform/internal/auth"
	"github.com/Leganyst/homeservice-platform/internal/db"
	"github.com/Leganyst/homeservice-platform/internal/logging"
	"github.com/Leganyst/homeservice-platform/internal/model"
	"github.com/Leganyst/homeservice-platform/internal/repository"
)

func newStore(t *testing.T) *repository.Store {
	t.Helper()
	gdb, err := db.OpenSQLiteMemory()
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	if err := model.AutoMigrate(gdb); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return repository.NewStore(gdb)
}

func TestRun_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	first, err := Run(ctx, store, logging.Discard())
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	want := Result{Areas: len(areas), Categories: len(categories), Customers: len(customers), Providers: len(providers)}
	if first != want {
		t.Fatalf("first run = %+v, want %+v", first, want)
	}

	second, err := Run(ctx, store, logging.Discard())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second != (Result{}) {
		t.Fatalf("second run created %+v, want nothing", second)
	}

	got, err := store.Areas.List(ctx)
	if err != nil {
		t.Fatalf("list areas: %v", err)
	}
	if len(got) != len(areas) {
		t.Fatalf("areas = %d, want %d", len(got), len(areas))
	}
}

func TestRun_DemoAccountsCanLogIn(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	if _, err := Run(ctx, store, logging.Discard()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	c, err := store.Customers.GetByEmail(ctx, "ali@customer.com")
	if err != nil {
		t.Fatalf("get customer: %v", err)
	}
	if ok, err := auth.CheckPassword(c.PasswordHash, CustomerPassword); err != nil || !ok {
		t.Fatalf("customer password check = %v, %v", ok, err)
	}

	p, err := store.Providers.GetByEmail(ctx, "rami@provider.com")
	if err != nil {
		t.Fatalf("get provider: %v", err)
	}
	if ok, err := auth.CheckPassword(p.PasswordHash, ProviderPassword); err != nil || !ok {
		t.Fatalf("provider password check = %v, %v", ok, err)
	}
	ids, err := store.Providers.CategoryIDs(ctx, p.ID)
	if err != nil {
		t.Fatalf("category ids: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("provider categories = %v, want one", ids)
	}
}

func TestRun_KeepsExistingRows(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	// район и категория уже заведены вручную
	a := model.ServiceArea{City: "Beirut", District: "Hamra", PostalCode: "1103"}
	if err := store.Areas.Create(ctx, &a); err != nil {
		t.Fatalf("create area: %v", err)
	}
	c := model.ServiceCategory{Name: "Plumber"}
	if err := store.Categories.Create(ctx, &c); err != nil {
		t.Fatalf("create category: %v", err)
	}

	res, err := Run(ctx, store, logging.Discard())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if res.Areas != len(areas)-1 || res.Categories != len(categories)-1 {
		t.Fatalf("created %+v, existing rows should be skipped", res)
	}

	sara, err := store.Customers.GetByEmail(ctx, "sara@customer.com")
	if err != nil {
		t.Fatalf("get customer: %v", err)
	}
	if sara.AreaID == nil || *sara.AreaID != a.ID {
		t.Fatalf("sara area = %v, want existing area %d", sara.AreaID, a.ID)
	}
}
