package domain

import (
	"errors"
	"testing"
)

// testOrg builds an organization snapshot with an owner, an admin,
// and a plain worker account.
func testOrg(owner, admin, worker AccountID, tags ...Tag) Organization {
	return NewOrganization(NewOrganizationID(), "acme", tags, []AccountLink{
		NewAccountLink(owner, AccountTypeOwner, nil),
		NewAccountLink(admin, AccountTypeAdmin, nil),
		NewAccountLink(worker, AccountTypeWorker, nil),
	})
}

// --- Creation Tests ---

func TestCreateOrganization(t *testing.T) {
	owner := NewAccountID()
	org := CreateOrganization("acme", owner)

	if org.ID().IsZero() {
		t.Error("organization should get a fresh id")
	}
	if org.Name() != "acme" {
		t.Errorf("name = %q, want acme", org.Name())
	}

	links := org.LinkedAccounts()
	if len(links) != 1 {
		t.Fatalf("links = %d, want 1", len(links))
	}
	if links[0].Account() != owner {
		t.Error("creator should be linked")
	}
	if links[0].AccountType() != AccountTypeOwner {
		t.Errorf("creator role = %s, want OWNER", links[0].AccountType())
	}
}

func TestIntoCreateEvents(t *testing.T) {
	owner := NewAccountID()
	org := CreateOrganization("acme", owner)

	events, err := org.IntoCreateEvents()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}

	created, ok := events[0].(OrganizationCreated)
	if !ok {
		t.Fatalf("first event = %T, want OrganizationCreated", events[0])
	}
	if created.ID != org.ID() || created.Name != "acme" {
		t.Error("created event should carry org id and name")
	}

	linked, ok := events[1].(AccountLinked)
	if !ok {
		t.Fatalf("second event = %T, want AccountLinked", events[1])
	}
	if linked.Account != owner || linked.AccountType != AccountTypeOwner {
		t.Error("linked event should carry the owner")
	}
}

func TestIntoCreateEvents_NoAccounts(t *testing.T) {
	org := NewOrganization(NewOrganizationID(), "acme", nil, nil)

	_, err := org.IntoCreateEvents()
	if !errors.Is(err, ErrCannotCreate) {
		t.Fatalf("err = %v, want ErrCannotCreate", err)
	}
}

// --- Tag Tests ---

func TestAddTag(t *testing.T) {
	owner, admin, worker := NewAccountID(), NewAccountID(), NewAccountID()
	org := testOrg(owner, admin, worker)

	events, err := org.AddTag("backend", admin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}

	added, ok := events[0].(TagAdded)
	if !ok {
		t.Fatalf("first event = %T, want TagAdded", events[0])
	}
	if added.Name != "backend" || added.OrganizationID != org.ID() {
		t.Error("tag added event should carry name and org id")
	}

	editor, ok := events[1].(EditorAddedToTag)
	if !ok {
		t.Fatalf("second event = %T, want EditorAddedToTag", events[1])
	}
	if editor.TagID != added.TagID {
		t.Error("editor event should reference the new tag")
	}
	if editor.Account != admin {
		t.Error("requester should become the first editor")
	}
}

func TestAddTag_NotLinked(t *testing.T) {
	org := testOrg(NewAccountID(), NewAccountID(), NewAccountID())

	_, err := org.AddTag("backend", NewAccountID())
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("err = %v, want ErrNotAuthorized", err)
	}
}

func TestAddTag_DuplicateName(t *testing.T) {
	owner, admin, worker := NewAccountID(), NewAccountID(), NewAccountID()
	tag := NewTag(NewTagID(), "backend", []AccountID{admin}, nil)
	org := testOrg(owner, admin, worker, tag)

	_, err := org.AddTag("backend", admin)
	if !errors.Is(err, ErrTagAlreadyExists) {
		t.Fatalf("err = %v, want ErrTagAlreadyExists", err)
	}
}

func TestAddWorkerToTag(t *testing.T) {
	owner, admin, worker := NewAccountID(), NewAccountID(), NewAccountID()
	tag := NewTag(NewTagID(), "backend", []AccountID{admin}, nil)
	org := testOrg(owner, admin, worker, tag)

	event, err := org.AddWorkerToTag(tag.ID(), admin, worker)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	added, ok := event.(WorkerAddedToTag)
	if !ok {
		t.Fatalf("event = %T, want WorkerAddedToTag", event)
	}
	if added.TagID != tag.ID() || added.Account != worker {
		t.Error("event should carry tag and worker")
	}
}

func TestAddWorkerToTag_UnknownTag(t *testing.T) {
	owner, admin, worker := NewAccountID(), NewAccountID(), NewAccountID()
	org := testOrg(owner, admin, worker)

	_, err := org.AddWorkerToTag(NewTagID(), admin, worker)
	if !errors.Is(err, ErrTagDoesNotExist) {
		t.Fatalf("err = %v, want ErrTagDoesNotExist", err)
	}
}

func TestAddWorkerToTag_NotEditor(t *testing.T) {
	owner, admin, worker := NewAccountID(), NewAccountID(), NewAccountID()
	tag := NewTag(NewTagID(), "backend", []AccountID{admin}, nil)
	org := testOrg(owner, admin, worker, tag)

	// The owner is linked but is not an editor of this tag.
	_, err := org.AddWorkerToTag(tag.ID(), owner, worker)
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("err = %v, want ErrNotAuthorized", err)
	}
}

func TestAddEditorToTag_NotEditor(t *testing.T) {
	owner, admin, worker := NewAccountID(), NewAccountID(), NewAccountID()
	tag := NewTag(NewTagID(), "backend", []AccountID{admin}, nil)
	org := testOrg(owner, admin, worker, tag)

	_, err := org.AddEditorToTag(tag.ID(), worker, NewAccountID())
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("err = %v, want ErrNotAuthorized", err)
	}
}

// --- Membership Tests ---

func TestLinkAccount(t *testing.T) {
	owner, admin, worker := NewAccountID(), NewAccountID(), NewAccountID()
	org := testOrg(owner, admin, worker)
	newcomer := NewAccountID()

	event, err := org.LinkAccount(admin, newcomer, AccountTypeWorker)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	linked, ok := event.(AccountLinked)
	if !ok {
		t.Fatalf("event = %T, want AccountLinked", event)
	}
	if linked.Account != newcomer || linked.AccountType != AccountTypeWorker {
		t.Error("event should carry the new account and role")
	}
}

func TestLinkAccount_Rules(t *testing.T) {
	owner, admin, worker := NewAccountID(), NewAccountID(), NewAccountID()
	org := testOrg(owner, admin, worker)

	tests := []struct {
		name        string
		requester   AccountID
		accountType AccountType
	}{
		{"requester not linked", NewAccountID(), AccountTypeWorker},
		{"worker cannot link", worker, AccountTypeWorker},
		{"owner role cannot be granted", owner, AccountTypeOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := org.LinkAccount(tt.requester, NewAccountID(), tt.accountType)
			if !errors.Is(err, ErrNotAuthorized) {
				t.Fatalf("err = %v, want ErrNotAuthorized", err)
			}
		})
	}
}

func TestTransferOwnership_NotSupported(t *testing.T) {
	owner, admin, worker := NewAccountID(), NewAccountID(), NewAccountID()
	org := testOrg(owner, admin, worker)

	_, err := org.TransferOwnership(owner, admin)
	if !errors.Is(err, ErrNotSupported) {
		t.Fatalf("err = %v, want ErrNotSupported", err)
	}
}

// --- Direct Assignment Tests ---

func TestAssignTasksToAccount(t *testing.T) {
	owner, admin, worker := NewAccountID(), NewAccountID(), NewAccountID()
	org := testOrg(owner, admin, worker)
	tasks := []CatalogueTaskID{NewCatalogueTaskID(), NewCatalogueTaskID()}

	instances, err := org.AssignTasksToAccount(admin, worker, tasks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(instances) != len(tasks) {
		t.Fatalf("instances = %d, want %d", len(instances), len(tasks))
	}

	for i, inst := range instances {
		if inst.AssignedTo() != worker {
			t.Error("task should go to the worker")
		}
		if inst.AssignedBy() != admin {
			t.Error("task should record the requester")
		}
		if inst.Organization() != org.ID() {
			t.Error("task should belong to the organization")
		}
		if inst.CatalogueID() != tasks[i] {
			t.Error("task should reference the catalogue entry")
		}
		if inst.Status() != TaskStatusPending {
			t.Errorf("status = %s, want PENDING", inst.Status())
		}
	}
}

func TestAssignTasksToAccount_SelfAssign(t *testing.T) {
	owner, admin, worker := NewAccountID(), NewAccountID(), NewAccountID()
	org := testOrg(owner, admin, worker)

	// A worker may take tasks for themselves.
	instances, err := org.AssignTasksToAccount(worker, worker, []CatalogueTaskID{NewCatalogueTaskID()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(instances) != 1 {
		t.Fatalf("instances = %d, want 1", len(instances))
	}
}

func TestAssignTasksToAccount_WorkerCannotDelegate(t *testing.T) {
	owner, admin, worker := NewAccountID(), NewAccountID(), NewAccountID()
	org := testOrg(owner, admin, worker)

	_, err := org.AssignTasksToAccount(worker, admin, []CatalogueTaskID{NewCatalogueTaskID()})
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("err = %v, want ErrNotAuthorized", err)
	}
}

func TestAssignTasksToAccount_NotInOrg(t *testing.T) {
	org := testOrg(NewAccountID(), NewAccountID(), NewAccountID())

	_, err := org.AssignTasksToAccount(NewAccountID(), NewAccountID(), []CatalogueTaskID{NewCatalogueTaskID()})
	if !errors.Is(err, ErrNotInOrg) {
		t.Fatalf("err = %v, want ErrNotInOrg", err)
	}
}

// --- Replay Tests ---

func TestReplayOrganization(t *testing.T) {
	owner := NewAccountID()
	worker := NewAccountID()
	org := CreateOrganization("acme", owner)

	events, err := org.IntoCreateEvents()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tagID := NewTagID()
	events = append(events,
		TagAdded{OrganizationID: org.ID(), TagID: tagID, Name: "backend"},
		EditorAddedToTag{TagID: tagID, Account: owner},
		AccountLinked{Account: worker, AccountType: AccountTypeWorker},
		WorkerAddedToTag{TagID: tagID, Account: worker},
	)

	replayed := ReplayOrganization(events)

	if replayed.ID() != org.ID() || replayed.Name() != "acme" {
		t.Error("replayed org should keep id and name")
	}
	if len(replayed.LinkedAccounts()) != 2 {
		t.Fatalf("links = %d, want 2", len(replayed.LinkedAccounts()))
	}

	tags := replayed.Tags()
	if len(tags) != 1 {
		t.Fatalf("tags = %d, want 1", len(tags))
	}
	if !tags[0].IsEditor(owner) {
		t.Error("owner should be an editor after replay")
	}
	if !tags[0].IsWorker(worker) {
		t.Error("worker should be a tag worker after replay")
	}
}

func TestApply_TagRemoved(t *testing.T) {
	tagID := NewTagID()
	org := ReplayOrganization([]OrganizationEvent{
		OrganizationCreated{ID: NewOrganizationID(), Name: "acme"},
		TagAdded{TagID: tagID, Name: "backend"},
		TagRemoved{TagID: tagID},
	})

	if len(org.Tags()) != 0 {
		t.Fatalf("tags = %d, want 0", len(org.Tags()))
	}
}

func TestApply_DoesNotShareState(t *testing.T) {
	tagID := NewTagID()
	account := NewAccountID()
	base := ReplayOrganization([]OrganizationEvent{
		OrganizationCreated{ID: NewOrganizationID(), Name: "acme"},
		TagAdded{TagID: tagID, Name: "backend"},
	})

	updated := base.Apply(WorkerAddedToTag{TagID: tagID, Account: account})

	if base.Tags()[0].IsWorker(account) {
		t.Error("applying an event must not mutate the previous snapshot")
	}
	if !updated.Tags()[0].IsWorker(account) {
		t.Error("new snapshot should see the worker")
	}
}

// --- Tag Assignment Tests ---

// tagSet is a shorthand for building the requested tag id set.
func tagSet(tags ...Tag) map[TagID]struct{} {
	out := make(map[TagID]struct{}, len(tags))
	for _, tag := range tags {
		out[tag.ID()] = struct{}{}
	}
	return out
}

func TestAssignTasksToTags_NotInOrg(t *testing.T) {
	owner, admin, worker := NewAccountID(), NewAccountID(), NewAccountID()
	tag := NewTag(NewTagID(), "backend", []AccountID{admin}, []AccountID{worker})
	org := testOrg(owner, admin, worker, tag)

	_, err := org.AssignTasksToTags(NewAccountID(), tagSet(tag),
		[]CatalogueTaskID{NewCatalogueTaskID()}, AssignmentType{Kind: AssignmentRandom})
	if !errors.Is(err, ErrNotInOrg) {
		t.Fatalf("err = %v, want ErrNotInOrg", err)
	}
}

func TestAssignTasksToTags_RequiresEditor(t *testing.T) {
	owner, admin, worker := NewAccountID(), NewAccountID(), NewAccountID()
	edited := NewTag(NewTagID(), "backend", []AccountID{admin}, []AccountID{worker})
	foreign := NewTag(NewTagID(), "frontend", nil, []AccountID{worker})
	org := testOrg(owner, admin, worker, edited, foreign)

	// The admin edits one of the two requested tags only.
	_, err := org.AssignTasksToTags(admin, tagSet(edited, foreign),
		[]CatalogueTaskID{NewCatalogueTaskID()}, AssignmentType{Kind: AssignmentRandom})
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("err = %v, want ErrNotAuthorized", err)
	}
}

func TestAssignTasksToTags_OwnerBypassesEditorCheck(t *testing.T) {
	owner, admin, worker := NewAccountID(), NewAccountID(), NewAccountID()
	tag := NewTag(NewTagID(), "backend", []AccountID{admin}, []AccountID{worker})
	org := testOrg(owner, admin, worker, tag)

	instances, err := org.AssignTasksToTags(owner, tagSet(tag),
		[]CatalogueTaskID{NewCatalogueTaskID()}, AssignmentType{Kind: AssignmentRandom})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(instances) != 1 {
		t.Fatalf("instances = %d, want 1", len(instances))
	}
}

func TestAssignTasksToTags_UnknownTagsIgnored(t *testing.T) {
	owner, admin, worker := NewAccountID(), NewAccountID(), NewAccountID()
	tag := NewTag(NewTagID(), "backend", []AccountID{admin}, []AccountID{worker})
	org := testOrg(owner, admin, worker, tag)

	// A tag id from another organization resolves to nothing and is
	// dropped; assignment proceeds over the known tag alone.
	requested := tagSet(tag)
	requested[NewTagID()] = struct{}{}

	instances, err := org.AssignTasksToTags(admin, requested,
		[]CatalogueTaskID{NewCatalogueTaskID()}, AssignmentType{Kind: AssignmentRandom})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(instances) != 1 {
		t.Fatalf("instances = %d, want 1", len(instances))
	}
	if instances[0].AssignedTo() != worker {
		t.Error("task should go to the known tag's worker")
	}
}

func TestAssignTasksToTags_EmptyIntersection(t *testing.T) {
	owner, admin := NewAccountID(), NewAccountID()
	w1, w2 := NewAccountID(), NewAccountID()
	t1 := NewTag(NewTagID(), "backend", []AccountID{admin}, []AccountID{w1})
	t2 := NewTag(NewTagID(), "frontend", []AccountID{admin}, []AccountID{w2})
	org := testOrg(owner, admin, w1, t1, t2)

	_, err := org.AssignTasksToTags(admin, tagSet(t1, t2),
		[]CatalogueTaskID{NewCatalogueTaskID()}, AssignmentType{Kind: AssignmentRandom})
	if !errors.Is(err, ErrNoWorkers) {
		t.Fatalf("err = %v, want ErrNoWorkers", err)
	}
}

func TestAssignTasksToTags_IntersectionAcrossTags(t *testing.T) {
	owner, admin := NewAccountID(), NewAccountID()
	a, b, c := NewAccountID(), NewAccountID(), NewAccountID()
	t1 := NewTag(NewTagID(), "backend", []AccountID{admin}, []AccountID{a, b})
	t2 := NewTag(NewTagID(), "frontend", []AccountID{admin}, []AccountID{b, c})
	org := testOrg(owner, admin, a, t1, t2)

	tasks := []CatalogueTaskID{NewCatalogueTaskID(), NewCatalogueTaskID(), NewCatalogueTaskID()}
	instances, err := org.AssignTasksToTags(admin, tagSet(t1, t2), tasks,
		AssignmentType{Kind: AssignmentRandom})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(instances) != 3 {
		t.Fatalf("instances = %d, want 3", len(instances))
	}

	// Only b belongs to both tags, so every task lands on b.
	for _, inst := range instances {
		if inst.AssignedTo() != b {
			t.Errorf("task assigned to %s, want the only shared worker", inst.AssignedTo())
		}
	}
}

func TestAssignTasksToTags_Copy(t *testing.T) {
	owner, admin := NewAccountID(), NewAccountID()
	w1, w2 := NewAccountID(), NewAccountID()
	tag := NewTag(NewTagID(), "backend", []AccountID{admin}, []AccountID{w1, w2})
	org := testOrg(owner, admin, w1, tag)

	tasks := []CatalogueTaskID{NewCatalogueTaskID(), NewCatalogueTaskID()}
	instances, err := org.AssignTasksToTags(admin, tagSet(tag), tasks,
		AssignmentType{Kind: AssignmentCopy})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(instances) != 4 {
		t.Fatalf("instances = %d, want tasks*workers = 4", len(instances))
	}

	// Each (task, worker) pair appears exactly once.
	seen := make(map[CatalogueTaskID]map[AccountID]int)
	for _, inst := range instances {
		if seen[inst.CatalogueID()] == nil {
			seen[inst.CatalogueID()] = make(map[AccountID]int)
		}
		seen[inst.CatalogueID()][inst.AssignedTo()]++
	}
	for _, task := range tasks {
		for _, worker := range []AccountID{w1, w2} {
			if seen[task][worker] != 1 {
				t.Errorf("pair (task, worker) seen %d times, want 1", seen[task][worker])
			}
		}
	}
}

func TestAssignTasksToTags_LowestTasksBalances(t *testing.T) {
	owner, admin := NewAccountID(), NewAccountID()
	w1, w2, w3 := NewAccountID(), NewAccountID(), NewAccountID()
	tag := NewTag(NewTagID(), "backend", []AccountID{admin}, []AccountID{w1, w2, w3})
	org := NewOrganization(NewOrganizationID(), "acme", []Tag{tag}, []AccountLink{
		NewAccountLink(owner, AccountTypeOwner, nil),
		NewAccountLink(admin, AccountTypeAdmin, nil),
		NewAccountLink(w1, AccountTypeWorker, nil),
		NewAccountLink(w2, AccountTypeWorker, nil),
		NewAccountLink(w3, AccountTypeWorker, nil),
	})

	tasks := make([]CatalogueTaskID, 7)
	for i := range tasks {
		tasks[i] = NewCatalogueTaskID()
	}

	instances, err := org.AssignTasksToTags(admin, tagSet(tag), tasks,
		AssignmentType{Kind: AssignmentLowestTasks})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	counts := make(map[AccountID]int)
	for _, inst := range instances {
		counts[inst.AssignedTo()]++
	}

	// Starting from equal load, greedy lowest-first keeps the spread
	// within one task.
	min, max := len(tasks), 0
	for _, worker := range []AccountID{w1, w2, w3} {
		n := counts[worker]
		if n < min {
			min = n
		}
		if n > max {
			max = n
		}
	}
	if max-min > 1 {
		t.Errorf("load spread = %d, want at most 1 (counts: %v)", max-min, counts)
	}
}

func TestAssignTasksToTags_LowestTasksSeededFromLinks(t *testing.T) {
	owner, admin := NewAccountID(), NewAccountID()
	busy, idle := NewAccountID(), NewAccountID()
	tag := NewTag(NewTagID(), "backend", []AccountID{admin}, []AccountID{busy, idle})
	org := NewOrganization(NewOrganizationID(), "acme", []Tag{tag}, []AccountLink{
		NewAccountLink(owner, AccountTypeOwner, nil),
		NewAccountLink(admin, AccountTypeAdmin, nil),
		NewAccountLink(busy, AccountTypeWorker, []TaskID{NewTaskID(), NewTaskID(), NewTaskID()}),
		NewAccountLink(idle, AccountTypeWorker, nil),
	})

	instances, err := org.AssignTasksToTags(admin, tagSet(tag),
		[]CatalogueTaskID{NewCatalogueTaskID(), NewCatalogueTaskID()},
		AssignmentType{Kind: AssignmentLowestTasks})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, inst := range instances {
		if inst.AssignedTo() != idle {
			t.Error("lowest-tasks should prefer the idle worker")
		}
	}
}

func TestAssignTasksToTags_HighestTasks(t *testing.T) {
	owner, admin := NewAccountID(), NewAccountID()
	busy, idle := NewAccountID(), NewAccountID()
	tag := NewTag(NewTagID(), "backend", []AccountID{admin}, []AccountID{busy, idle})
	org := NewOrganization(NewOrganizationID(), "acme", []Tag{tag}, []AccountLink{
		NewAccountLink(owner, AccountTypeOwner, nil),
		NewAccountLink(admin, AccountTypeAdmin, nil),
		NewAccountLink(busy, AccountTypeWorker, []TaskID{NewTaskID(), NewTaskID()}),
		NewAccountLink(idle, AccountTypeWorker, nil),
	})

	instances, err := org.AssignTasksToTags(admin, tagSet(tag),
		[]CatalogueTaskID{NewCatalogueTaskID(), NewCatalogueTaskID()},
		AssignmentType{Kind: AssignmentHighestTasks})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The busy worker stays ahead after each pick, so it takes all.
	for _, inst := range instances {
		if inst.AssignedTo() != busy {
			t.Error("highest-tasks should pile onto the busiest worker")
		}
	}
}

func TestAssignTasksToTags_ToAccount(t *testing.T) {
	owner, admin := NewAccountID(), NewAccountID()
	w1, w2 := NewAccountID(), NewAccountID()
	tag := NewTag(NewTagID(), "backend", []AccountID{admin}, []AccountID{w1, w2})
	org := testOrg(owner, admin, w1, tag)

	tasks := []CatalogueTaskID{NewCatalogueTaskID(), NewCatalogueTaskID()}
	instances, err := org.AssignTasksToTags(admin, tagSet(tag), tasks,
		AssignmentType{Kind: AssignmentToAccount, Account: w2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, inst := range instances {
		if inst.AssignedTo() != w2 {
			t.Error("all tasks should go to the target account")
		}
	}
}

func TestAssignTasksToTags_ToAccountOutsideWorkers(t *testing.T) {
	owner, admin, worker := NewAccountID(), NewAccountID(), NewAccountID()
	tag := NewTag(NewTagID(), "backend", []AccountID{admin}, []AccountID{worker})
	org := testOrg(owner, admin, worker, tag)

	_, err := org.AssignTasksToTags(admin, tagSet(tag),
		[]CatalogueTaskID{NewCatalogueTaskID()},
		AssignmentType{Kind: AssignmentToAccount, Account: admin})
	if !errors.Is(err, ErrNoWorkers) {
		t.Fatalf("err = %v, want ErrNoWorkers", err)
	}
}

func TestParseAssignmentKind(t *testing.T) {
	for _, valid := range []string{"RANDOM", "COPY", "LOWEST_TASKS", "HIGHEST_TASKS", "TO_ACCOUNT"} {
		if _, err := ParseAssignmentKind(valid); err != nil {
			t.Errorf("ParseAssignmentKind(%q) = %v, want nil", valid, err)
		}
	}
	if _, err := ParseAssignmentKind("ROUND_ROBIN"); err == nil {
		t.Error("unknown kind should fail")
	}
}
