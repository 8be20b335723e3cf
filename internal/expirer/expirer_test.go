package expirer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shaiso/Delega/internal/domain"
)

type fakeExpirer struct {
	expired []domain.TaskID
	failOn  domain.TaskID
}

func (f *fakeExpirer) ExpireTask(_ context.Context, id domain.TaskID) error {
	if id == f.failOn {
		return errors.New("boom")
	}
	f.expired = append(f.expired, id)
	return nil
}

type fakeTaskRepo struct {
	due      []domain.TaskInstance
	queryErr error
}

func (f *fakeTaskRepo) FindByID(_ context.Context, _ domain.TaskID) (domain.TaskInstance, error) {
	return domain.TaskInstance{}, errors.New("not implemented")
}

func (f *fakeTaskRepo) Handle(_ context.Context, _ domain.TaskID, _ domain.TaskEvent) error {
	return nil
}

func (f *fakeTaskRepo) HandleMany(_ context.Context, _ []domain.TaskEvent) error { return nil }

func (f *fakeTaskRepo) Publish(_ context.Context, _ domain.TaskID, _ domain.TaskEvent) {}

func (f *fakeTaskRepo) QueryExpired(_ context.Context) ([]domain.TaskInstance, error) {
	return f.due, f.queryErr
}

type fakeOrgRepo struct {
	repeats  []domain.Organization
	queryErr error
	queried  int
}

func (f *fakeOrgRepo) FindByID(_ context.Context, _ domain.OrganizationID) (domain.Organization, error) {
	return domain.Organization{}, errors.New("not implemented")
}

func (f *fakeOrgRepo) Handle(_ context.Context, _ domain.OrganizationID, _ domain.OrganizationEvent) error {
	return nil
}

func (f *fakeOrgRepo) HandleMany(_ context.Context, _ domain.OrganizationID, _ []domain.OrganizationEvent) error {
	return nil
}

func (f *fakeOrgRepo) Publish(_ context.Context, _ domain.OrganizationID, _ domain.OrganizationEvent) {
}

func (f *fakeOrgRepo) QueryPendingRepeats(_ context.Context, _ time.Time) ([]domain.Organization, error) {
	f.queried++
	return f.repeats, f.queryErr
}

func dueTask() domain.TaskInstance {
	expires := time.Now().Add(-time.Minute)
	return domain.NewTaskInstance(
		domain.NewTaskID(), domain.NewOrganizationID(),
		domain.NewAccountID(), domain.NewAccountID(),
		&expires, domain.NewCatalogueTaskID(), domain.TaskStatusPending,
	)
}

func TestTick_ExpiresDueTasks(t *testing.T) {
	due := []domain.TaskInstance{dueTask(), dueTask(), dueTask()}
	management := &fakeExpirer{}
	exp := New(Config{Management: management, TaskRepo: &fakeTaskRepo{due: due}})

	expired, err := exp.Tick(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expired != 3 {
		t.Errorf("expired = %d, want 3", expired)
	}
	if len(management.expired) != 3 {
		t.Errorf("ExpireTask called %d times, want 3", len(management.expired))
	}
}

func TestTick_NothingDue(t *testing.T) {
	management := &fakeExpirer{}
	exp := New(Config{Management: management, TaskRepo: &fakeTaskRepo{}})

	expired, err := exp.Tick(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expired != 0 {
		t.Errorf("expired = %d, want 0", expired)
	}
}

func TestTick_OneFailureDoesNotBlockTheRest(t *testing.T) {
	due := []domain.TaskInstance{dueTask(), dueTask(), dueTask()}
	management := &fakeExpirer{failOn: due[1].ID()}
	exp := New(Config{Management: management, TaskRepo: &fakeTaskRepo{due: due}})

	expired, err := exp.Tick(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expired != 2 {
		t.Errorf("expired = %d, want 2", expired)
	}
	for _, id := range management.expired {
		if id == due[1].ID() {
			t.Error("failed task should not be counted as expired")
		}
	}
}

func TestTick_QueryError(t *testing.T) {
	queryErr := errors.New("db down")
	exp := New(Config{Management: &fakeExpirer{}, TaskRepo: &fakeTaskRepo{queryErr: queryErr}})

	_, err := exp.Tick(context.Background())
	if !errors.Is(err, queryErr) {
		t.Fatalf("err = %v, want wrapped query error", err)
	}
}

func TestReportDueRepeats_QueriesRepository(t *testing.T) {
	orgRepo := &fakeOrgRepo{}
	exp := New(Config{Management: &fakeExpirer{}, TaskRepo: &fakeTaskRepo{}, OrgRepo: orgRepo})

	exp.ReportDueRepeats(context.Background(), time.Now())
	if orgRepo.queried != 1 {
		t.Errorf("QueryPendingRepeats called %d times, want 1", orgRepo.queried)
	}

	// A query failure must not panic, only log.
	orgRepo.queryErr = errors.New("db down")
	exp.ReportDueRepeats(context.Background(), time.Now())
}
