package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shaiso/Delega/internal/domain"
	"github.com/shaiso/Delega/internal/repo"
)

type fakeCatalogueRepo struct {
	tasks  map[domain.CatalogueTaskID]domain.CatalogueTask
	getErr error
}

func newFakeCatalogueRepo() *fakeCatalogueRepo {
	return &fakeCatalogueRepo{tasks: make(map[domain.CatalogueTaskID]domain.CatalogueTask)}
}

func (f *fakeCatalogueRepo) Save(_ context.Context, task *domain.CatalogueTask) error {
	f.tasks[task.ID] = *task
	return nil
}

func (f *fakeCatalogueRepo) GetByID(_ context.Context, id domain.CatalogueTaskID) (*domain.CatalogueTask, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	task, ok := f.tasks[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &task, nil
}

func (f *fakeCatalogueRepo) DeleteByID(_ context.Context, id domain.CatalogueTaskID) error {
	delete(f.tasks, id)
	return nil
}

func TestCatalogue_CreateAndGet(t *testing.T) {
	catRepo := newFakeCatalogueRepo()
	c := NewCatalogue(catRepo, nil)

	id, err := c.CreateTask(context.Background(), CreateCatalogueTaskCommand{
		Organization: domain.NewOrganizationID(),
		CreatedBy:    domain.NewAccountID(),
		Title:        "weekly report",
		Description:  "compile and send the weekly report",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	task, err := c.GetTask(context.Background(), id)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if task.Title != "weekly report" {
		t.Errorf("title = %q", task.Title)
	}
}

func TestCatalogue_TaskExists(t *testing.T) {
	catRepo := newFakeCatalogueRepo()
	c := NewCatalogue(catRepo, nil)

	id, err := c.CreateTask(context.Background(), CreateCatalogueTaskCommand{Title: "t"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if ok, err := c.TaskExists(context.Background(), id); err != nil || !ok {
		t.Errorf("TaskExists(existing) = %v, %v; want true, nil", ok, err)
	}
	if ok, err := c.TaskExists(context.Background(), domain.NewCatalogueTaskID()); err != nil || ok {
		t.Errorf("TaskExists(missing) = %v, %v; want false, nil", ok, err)
	}

	// Infrastructure failures must not read as "does not exist".
	catRepo.getErr = errors.New("db down")
	if _, err := c.TaskExists(context.Background(), id); err == nil {
		t.Error("infrastructure error should propagate")
	}
}

func TestCatalogue_DeleteTask(t *testing.T) {
	catRepo := newFakeCatalogueRepo()
	c := NewCatalogue(catRepo, nil)

	id, err := c.CreateTask(context.Background(), CreateCatalogueTaskCommand{Title: "t"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := c.DeleteTask(context.Background(), id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := c.GetTask(context.Background(), id); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
