package repo

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	return conn
}

func TestBaseDB_BindsContext(t *testing.T) {
	db := newTestDB(t)
	base := NewBase(db)

	ctx := context.WithValue(context.Background(), struct{}{}, "value")
	withCtx := base.DB(ctx)
	if withCtx.Statement == nil || withCtx.Statement.Context != ctx {
		t.Fatalf("expected context to flow through")
	}

	if base.DB(nil) != db {
		t.Fatalf("expected nil context to return raw connection")
	}
}

func TestBaseWithTx(t *testing.T) {
	db := newTestDB(t)
	base := NewBase(db)

	tx := db.Begin()
	defer tx.Rollback()

	if got := base.WithTx(tx); got.db != tx {
		t.Fatalf("expected base to bind the transaction")
	}
	if got := base.WithTx(nil); got.db != db {
		t.Fatalf("nil transaction should keep the original connection")
	}
}

func TestBaseTakeAppliesPredicates(t *testing.T) {
	db := newTestDB(t)
	if err := db.AutoMigrate(&row{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Create([]row{{TenantID: 1, Name: "a"}, {TenantID: 2, Name: "b"}}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	base := NewBase(db)

	var got row
	if err := base.Take(context.Background(), &got, Eq("name", "b"), nil); err != nil {
		t.Fatalf("take: %v", err)
	}
	if got.TenantID != 2 {
		t.Fatalf("expected tenant 2, got %d", got.TenantID)
	}

	err := base.Take(context.Background(), &row{}, Eq("name", "b"), Eq("tenant_id", 1))
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}
