package service

import (
	"errors"
	"testing"

	"github.com/storefront-api/internal/repository"

	"gorm.io/gorm"
)

func newCategoryService(t *testing.T) (*CategoryService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	return NewCategoryService(repository.NewCategoryRepository(db)), db
}

func TestCategoryCreate_ParentMustExist(t *testing.T) {
	svc, _ := newCategoryService(t)

	if _, err := svc.Create(CreateCategoryInput{Name: "  "}); !errors.Is(err, ErrInvalidCategoryName) {
		t.Fatalf("expected ErrInvalidCategoryName, got %v", err)
	}

	missing := uint(9999)
	if _, err := svc.Create(CreateCategoryInput{Name: "orphan", ParentID: &missing}); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}

	root, err := svc.Create(CreateCategoryInput{Name: "electronics"})
	if err != nil {
		t.Fatalf("create root failed: %v", err)
	}
	child, err := svc.Create(CreateCategoryInput{Name: "phones", ParentID: &root.ID})
	if err != nil {
		t.Fatalf("create child failed: %v", err)
	}
	if child.ParentID == nil || *child.ParentID != root.ID {
		t.Fatalf("expected child parent %d, got %+v", root.ID, child.ParentID)
	}
}

func TestCategoryUpdate_RejectsCycles(t *testing.T) {
	svc, _ := newCategoryService(t)

	root, err := svc.Create(CreateCategoryInput{Name: "electronics"})
	if err != nil {
		t.Fatalf("create root failed: %v", err)
	}
	mid, err := svc.Create(CreateCategoryInput{Name: "phones", ParentID: &root.ID})
	if err != nil {
		t.Fatalf("create mid failed: %v", err)
	}
	leaf, err := svc.Create(CreateCategoryInput{Name: "android", ParentID: &mid.ID})
	if err != nil {
		t.Fatalf("create leaf failed: %v", err)
	}

	// 自引用
	if _, err := svc.Update(root.ID, UpdateCategoryInput{ParentID: &root.ID}); !errors.Is(err, ErrCategoryCycle) {
		t.Fatalf("expected ErrCategoryCycle for self parent, got %v", err)
	}
	// 挂到自己的后代下面
	if _, err := svc.Update(root.ID, UpdateCategoryInput{ParentID: &leaf.ID}); !errors.Is(err, ErrCategoryCycle) {
		t.Fatalf("expected ErrCategoryCycle for descendant parent, got %v", err)
	}

	// 合法的换父和提升为根
	if _, err := svc.Update(leaf.ID, UpdateCategoryInput{ParentID: &root.ID}); err != nil {
		t.Fatalf("reparent to grandparent failed: %v", err)
	}
	promoted, err := svc.Update(mid.ID, UpdateCategoryInput{ClearParent: true})
	if err != nil {
		t.Fatalf("promote to root failed: %v", err)
	}
	if promoted.ParentID != nil {
		t.Fatalf("expected nil parent after promotion, got %d", *promoted.ParentID)
	}
}

func TestCategoryDelete_RefusedWhileReferenced(t *testing.T) {
	svc, db := newCategoryService(t)

	root, err := svc.Create(CreateCategoryInput{Name: "electronics"})
	if err != nil {
		t.Fatalf("create root failed: %v", err)
	}
	child, err := svc.Create(CreateCategoryInput{Name: "phones", ParentID: &root.ID})
	if err != nil {
		t.Fatalf("create child failed: %v", err)
	}
	seedProduct(t, db, child.ID, "handset", "99.00", 1)

	if err := svc.Delete(root.ID); !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("expected ErrCategoryInUse for category with children, got %v", err)
	}
	if err := svc.Delete(child.ID); !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("expected ErrCategoryInUse for category with products, got %v", err)
	}
	if err := svc.Delete(9999); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}

	empty, err := svc.Create(CreateCategoryInput{Name: "cables"})
	if err != nil {
		t.Fatalf("create empty failed: %v", err)
	}
	if err := svc.Delete(empty.ID); err != nil {
		t.Fatalf("delete empty category failed: %v", err)
	}

	remaining, err := svc.List(repository.CategoryListFilter{})
	if err != nil {
		t.Fatalf("list categories failed: %v", err)
	}
	if len(remaining) != 2 {
		t.Fatalf("expected 2 categories left, got %d", len(remaining))
	}
}
