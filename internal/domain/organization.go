package domain

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// AccountType — роль привязанного аккаунта в организации.
type AccountType string

const (
	// AccountTypeWorker — исполнитель: получает задачи, не раздаёт чужим.
	AccountTypeWorker AccountType = "WORKER"

	// AccountTypeAdmin — администратор: привязывает аккаунты, раздаёт задачи.
	AccountTypeAdmin AccountType = "ADMIN"

	// AccountTypeOwner — владелец: полные права, ровно один на организацию.
	AccountTypeOwner AccountType = "OWNER"
)

// ParseAccountType парсит строку в AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case AccountTypeWorker, AccountTypeAdmin, AccountTypeOwner:
		return AccountType(s), nil
	default:
		return "", fmt.Errorf("unknown account type %q", s)
	}
}

// AccountLink — привязка аккаунта к организации.
// Одна на пару (организация, аккаунт). Список tasks фиксирует
// экземпляры задач, когда-либо направленные аккаунту, и служит
// основой балансировки при назначении.
type AccountLink struct {
	account     AccountID
	accountType AccountType
	tasks       []TaskID
}

// NewAccountLink создаёт привязку аккаунта.
func NewAccountLink(account AccountID, accountType AccountType, tasks []TaskID) AccountLink {
	return AccountLink{account: account, accountType: accountType, tasks: tasks}
}

// Account возвращает привязанный аккаунт.
func (l AccountLink) Account() AccountID { return l.account }

// AccountType возвращает роль аккаунта.
func (l AccountLink) AccountType() AccountType { return l.accountType }

// Tasks возвращает задачи, направленные аккаунту.
func (l AccountLink) Tasks() []TaskID { return slices.Clone(l.tasks) }

// Tag — группировка исполнителей внутри организации.
// Редакторы управляют составом тега и назначают задачи его исполнителям.
type Tag struct {
	id      TagID
	name    string
	editors map[AccountID]struct{}
	workers map[AccountID]struct{}
}

// NewTag создаёт тег с заданным составом.
func NewTag(id TagID, name string, editors, workers []AccountID) Tag {
	t := Tag{
		id:      id,
		name:    name,
		editors: make(map[AccountID]struct{}, len(editors)),
		workers: make(map[AccountID]struct{}, len(workers)),
	}
	for _, e := range editors {
		t.editors[e] = struct{}{}
	}
	for _, w := range workers {
		t.workers[w] = struct{}{}
	}
	return t
}

// ID возвращает идентификатор тега.
func (t Tag) ID() TagID { return t.id }

// Name возвращает имя тега.
func (t Tag) Name() string { return t.name }

// IsEditor проверяет, является ли аккаунт редактором тега.
func (t Tag) IsEditor(account AccountID) bool {
	_, ok := t.editors[account]
	return ok
}

// IsWorker проверяет, является ли аккаунт исполнителем тега.
func (t Tag) IsWorker(account AccountID) bool {
	_, ok := t.workers[account]
	return ok
}

// Editors возвращает редакторов тега, отсортированных по id.
func (t Tag) Editors() []AccountID { return sortedAccounts(t.editors) }

// Workers возвращает исполнителей тега, отсортированных по id.
func (t Tag) Workers() []AccountID { return sortedAccounts(t.workers) }

func sortedAccounts(set map[AccountID]struct{}) []AccountID {
	out := make([]AccountID, 0, len(set))
	for a := range set {
		out = append(out, a)
	}
	slices.SortFunc(out, AccountID.Compare)
	return out
}

// clone возвращает глубокую копию тега.
// Снимки агрегата не должны делить карты состава между собой.
func (t Tag) clone() Tag {
	c := NewTag(t.id, t.name, nil, nil)
	for e := range t.editors {
		c.editors[e] = struct{}{}
	}
	for w := range t.workers {
		c.workers[w] = struct{}{}
	}
	return c
}

// Organization — агрегат организации: членство, теги и политика
// назначения задач.
//
// Команды принимают восстановленный снимок и возвращают события либо
// типизированную ошибку; состояние меняет только Apply. Инвариант:
// у только что созданной организации ровно одна привязка типа OWNER.
type Organization struct {
	id             OrganizationID
	name           string
	tags           []Tag
	linkedAccounts []AccountLink
}

// NewOrganization собирает организацию из готовых частей.
// Используется репозиториями и тестами.
func NewOrganization(id OrganizationID, name string, tags []Tag, linkedAccounts []AccountLink) Organization {
	return Organization{id: id, name: name, tags: tags, linkedAccounts: linkedAccounts}
}

// CreateOrganization создаёт организацию: свежий id, пустые теги,
// единственная привязка OWNER для создателя.
func CreateOrganization(name string, account AccountID) Organization {
	return Organization{
		id:   NewOrganizationID(),
		name: name,
		linkedAccounts: []AccountLink{
			NewAccountLink(account, AccountTypeOwner, nil),
		},
	}
}

// ID возвращает идентификатор организации.
func (o Organization) ID() OrganizationID { return o.id }

// Name возвращает имя организации.
func (o Organization) Name() string { return o.name }

// Tags возвращает теги организации.
func (o Organization) Tags() []Tag { return slices.Clone(o.tags) }

// LinkedAccounts возвращает привязанные аккаунты.
func (o Organization) LinkedAccounts() []AccountLink { return slices.Clone(o.linkedAccounts) }

// findLink ищет привязку аккаунта.
func (o Organization) findLink(account AccountID) (AccountLink, bool) {
	for _, link := range o.linkedAccounts {
		if link.account == account {
			return link, true
		}
	}
	return AccountLink{}, false
}

// findTag ищет тег по id.
func (o Organization) findTag(id TagID) (Tag, bool) {
	for _, tag := range o.tags {
		if tag.id == id {
			return tag, true
		}
	}
	return Tag{}, false
}

// IntoCreateEvents возвращает события создания организации:
// Created плюс AccountLinked на каждую привязку.
// Организация без привязанных аккаунтов невалидна и не может быть
// создана — проверка недостижима через CreateOrganization, но
// срабатывает для снимков, собранных напрямую.
func (o Organization) IntoCreateEvents() ([]OrganizationEvent, error) {
	if len(o.linkedAccounts) == 0 {
		return nil, ErrCannotCreate
	}
	events := make([]OrganizationEvent, 0, len(o.linkedAccounts)+1)
	events = append(events, OrganizationCreated{ID: o.id, Name: o.name})
	for _, link := range o.linkedAccounts {
		events = append(events, AccountLinked{
			Account:     link.account,
			AccountType: link.accountType,
		})
	}
	return events, nil
}

// AddTag добавляет тег. Запрашивающий аккаунт должен быть привязан
// к организации; имя тега должно быть свободно. Запрашивающий
// становится первым редактором нового тега.
func (o Organization) AddTag(name string, requestingAccount AccountID) ([]OrganizationEvent, error) {
	if _, ok := o.findLink(requestingAccount); !ok {
		return nil, ErrNotAuthorized
	}
	for _, tag := range o.tags {
		if tag.name == name {
			return nil, ErrTagAlreadyExists
		}
	}

	id := NewTagID()
	return []OrganizationEvent{
		TagAdded{OrganizationID: o.id, TagID: id, Name: name},
		EditorAddedToTag{TagID: id, Account: requestingAccount},
	}, nil
}

// AddWorkerToTag добавляет исполнителя в тег. Запрашивающий должен
// быть редактором этого тега.
func (o Organization) AddWorkerToTag(tagID TagID, requestingAccount, worker AccountID) (OrganizationEvent, error) {
	tag, ok := o.findTag(tagID)
	if !ok {
		return nil, ErrTagDoesNotExist
	}
	if !tag.IsEditor(requestingAccount) {
		return nil, ErrNotAuthorized
	}
	return WorkerAddedToTag{TagID: tagID, Account: worker}, nil
}

// AddEditorToTag добавляет редактора в тег. Правила те же,
// что у AddWorkerToTag.
func (o Organization) AddEditorToTag(tagID TagID, requestingAccount, editor AccountID) (OrganizationEvent, error) {
	tag, ok := o.findTag(tagID)
	if !ok {
		return nil, ErrTagDoesNotExist
	}
	if !tag.IsEditor(requestingAccount) {
		return nil, ErrNotAuthorized
	}
	return EditorAddedToTag{TagID: tagID, Account: editor}, nil
}

// LinkAccount привязывает аккаунт к организации. Запрашивающий должен
// быть привязан с ролью выше WORKER. Роль OWNER выдать нельзя:
// передача владения — отдельная операция.
func (o Organization) LinkAccount(requestingAccount, account AccountID, accountType AccountType) (OrganizationEvent, error) {
	link, ok := o.findLink(requestingAccount)
	if !ok || link.accountType == AccountTypeWorker {
		return nil, ErrNotAuthorized
	}
	if accountType == AccountTypeOwner {
		return nil, ErrNotAuthorized
	}
	return AccountLinked{Account: account, AccountType: accountType}, nil
}

// TransferOwnership передаёт владение организацией.
// Семантика операции не определена, поведение не реализовано.
func (o Organization) TransferOwnership(requestingAccount, newOwner AccountID) (OrganizationEvent, error) {
	return nil, fmt.Errorf("transfer ownership: %w", ErrNotSupported)
}

// AssignTasksToAccount назначает задачи напрямую аккаунту.
// Запрашивающий должен быть привязан; самоназначение разрешено всем,
// назначение третьему лицу — всем, кроме WORKER.
func (o Organization) AssignTasksToAccount(requestingAccount, worker AccountID, tasks []CatalogueTaskID) ([]TaskInstance, error) {
	link, ok := o.findLink(requestingAccount)
	if !ok {
		return nil, ErrNotInOrg
	}
	if worker != requestingAccount && link.accountType == AccountTypeWorker {
		return nil, ErrNotAuthorized
	}

	out := make([]TaskInstance, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, NewTaskInstance(
			NewTaskID(), o.id, worker, requestingAccount, nil, task, TaskStatusPending,
		))
	}
	return out, nil
}

// AttachTasks подменяет списки задач привязанных аккаунтов.
// Вызывается репозиторием после свёртки истории: назначения живут
// в событиях задач, а не организации, и доносятся отдельно.
func (o Organization) AttachTasks(byAccount map[AccountID][]TaskID) Organization {
	links := make([]AccountLink, len(o.linkedAccounts))
	for i, link := range o.linkedAccounts {
		link.tasks = slices.Clone(byAccount[link.account])
		links[i] = link
	}
	o.linkedAccounts = links
	return o
}

// Apply сворачивает событие организации в новый снимок.
func (o Organization) Apply(event OrganizationEvent) Organization {
	switch e := event.(type) {
	case OrganizationCreated:
		o.id = e.ID
		o.name = e.Name
	case TagAdded:
		o.tags = append(slices.Clone(o.tags), NewTag(e.TagID, e.Name, nil, nil))
	case TagRemoved:
		tags := slices.Clone(o.tags)
		o.tags = slices.DeleteFunc(tags, func(t Tag) bool { return t.id == e.TagID })
	case EditorAddedToTag:
		o.tags = o.withTag(e.TagID, func(t Tag) Tag {
			t.editors[e.Account] = struct{}{}
			return t
		})
	case WorkerAddedToTag:
		o.tags = o.withTag(e.TagID, func(t Tag) Tag {
			t.workers[e.Account] = struct{}{}
			return t
		})
	case AccountLinked:
		links := slices.Clone(o.linkedAccounts)
		o.linkedAccounts = append(links, NewAccountLink(e.Account, e.AccountType, nil))
	}
	return o
}

// withTag возвращает копию списка тегов с обновлённым тегом id.
// События для несуществующего тега игнорируются: история могла
// содержать тег, удалённый позднее.
func (o Organization) withTag(id TagID, update func(Tag) Tag) []Tag {
	tags := make([]Tag, len(o.tags))
	for i, tag := range o.tags {
		if tag.id == id {
			tags[i] = update(tag.clone())
		} else {
			tags[i] = tag
		}
	}
	return tags
}

// ReplayOrganization восстанавливает организацию, сворачивая историю
// событий от старейшего к новейшему поверх пустого снимка.
func ReplayOrganization(events []OrganizationEvent) Organization {
	var o Organization
	for _, e := range events {
		o = o.Apply(e)
	}
	return o
}

// AssignmentKind — стратегия распределения задач по исполнителям.
type AssignmentKind string

const (
	// AssignmentRandom — каждой задаче случайный исполнитель.
	AssignmentRandom AssignmentKind = "RANDOM"

	// AssignmentCopy — каждая задача каждому исполнителю.
	AssignmentCopy AssignmentKind = "COPY"

	// AssignmentLowestTasks — задача наименее загруженному исполнителю.
	AssignmentLowestTasks AssignmentKind = "LOWEST_TASKS"

	// AssignmentHighestTasks — задача наиболее загруженному исполнителю.
	AssignmentHighestTasks AssignmentKind = "HIGHEST_TASKS"

	// AssignmentToAccount — все задачи указанному аккаунту.
	AssignmentToAccount AssignmentKind = "TO_ACCOUNT"
)

// ParseAssignmentKind парсит строку в AssignmentKind.
func ParseAssignmentKind(s string) (AssignmentKind, error) {
	switch AssignmentKind(s) {
	case AssignmentRandom, AssignmentCopy, AssignmentLowestTasks,
		AssignmentHighestTasks, AssignmentToAccount:
		return AssignmentKind(s), nil
	default:
		return "", fmt.Errorf("unknown assignment kind %q", s)
	}
}

// AssignmentType — стратегия распределения плюс целевой аккаунт
// для AssignmentToAccount.
type AssignmentType struct {
	Kind    AssignmentKind `json:"kind"`
	Account AccountID      `json:"account,omitempty"`
}

// AssignTasksToTags распределяет каталожные задачи по исполнителям
// запрошенных тегов.
//
// Теги, не принадлежащие организации, молча отбрасываются. OWNER
// авторизован безусловно; WORKER и ADMIN должны быть редакторами
// каждого запрошенного тега. Кандидаты — пересечение множеств
// исполнителей всех запрошенных тегов; пустое пересечение — ErrNoWorkers.
func (o Organization) AssignTasksToTags(
	requestingAccount AccountID,
	tagIDs map[TagID]struct{},
	tasks []CatalogueTaskID,
	assignmentType AssignmentType,
) ([]TaskInstance, error) {
	var resolved []Tag
	for _, tag := range o.tags {
		if _, ok := tagIDs[tag.id]; ok {
			resolved = append(resolved, tag)
		}
	}

	link, ok := o.findLink(requestingAccount)
	if !ok {
		return nil, ErrNotInOrg
	}
	if link.accountType != AccountTypeOwner {
		for _, tag := range resolved {
			if !tag.IsEditor(requestingAccount) {
				return nil, ErrNotAuthorized
			}
		}
	}

	workers := eligibleWorkers(resolved)
	if len(workers) == 0 {
		return nil, ErrNoWorkers
	}

	switch assignmentType.Kind {
	case AssignmentRandom:
		out := make([]TaskInstance, 0, len(tasks))
		for _, task := range tasks {
			worker := workers[rand.IntN(len(workers))]
			out = append(out, o.newPendingTask(worker, requestingAccount, task))
		}
		return out, nil

	case AssignmentCopy:
		out := make([]TaskInstance, 0, len(tasks)*len(workers))
		for _, task := range tasks {
			for _, worker := range workers {
				out = append(out, o.newPendingTask(worker, requestingAccount, task))
			}
		}
		return out, nil

	case AssignmentLowestTasks:
		return o.assignByLoad(workers, requestingAccount, tasks, pickLowest)

	case AssignmentHighestTasks:
		return o.assignByLoad(workers, requestingAccount, tasks, pickHighest)

	case AssignmentToAccount:
		if !slices.Contains(workers, assignmentType.Account) {
			return nil, ErrNoWorkers
		}
		out := make([]TaskInstance, 0, len(tasks))
		for _, task := range tasks {
			out = append(out, o.newPendingTask(assignmentType.Account, requestingAccount, task))
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unknown assignment kind %q", assignmentType.Kind)
	}
}

// newPendingTask создаёт свежий PENDING экземпляр без срока.
func (o Organization) newPendingTask(worker, requestingAccount AccountID, task CatalogueTaskID) TaskInstance {
	return NewTaskInstance(NewTaskID(), o.id, worker, requestingAccount, nil, task, TaskStatusPending)
}

// eligibleWorkers возвращает пересечение множеств исполнителей всех
// тегов, отсортированное по id для детерминированного обхода.
// Пустой список тегов даёт пустое пересечение.
func eligibleWorkers(tags []Tag) []AccountID {
	if len(tags) == 0 {
		return nil
	}
	acc := make(map[AccountID]struct{}, len(tags[0].workers))
	for w := range tags[0].workers {
		acc[w] = struct{}{}
	}
	for _, tag := range tags[1:] {
		for w := range acc {
			if !tag.IsWorker(w) {
				delete(acc, w)
			}
		}
	}
	return sortedAccounts(acc)
}

// workerLoad — текущая нагрузка исполнителя при жадном распределении.
type workerLoad struct {
	account AccountID
	count   int
}

// pickLowest выбирает наименее загруженного исполнителя.
// Ничья разрешается в пользу первого встреченного.
func pickLowest(loads []workerLoad) int {
	best := -1
	for i, l := range loads {
		if best < 0 || l.count < loads[best].count {
			best = i
		}
	}
	return best
}

// pickHighest выбирает наиболее загруженного исполнителя.
func pickHighest(loads []workerLoad) int {
	best := -1
	for i, l := range loads {
		if best < 0 || l.count > loads[best].count {
			best = i
		}
	}
	return best
}

// assignByLoad — жадное распределение по нагрузке: таблица
// (исполнитель, счётчик) заполняется текущим числом задач из привязок,
// после каждого назначения счётчик выбранного исполнителя растёт.
func (o Organization) assignByLoad(
	workers []AccountID,
	requestingAccount AccountID,
	tasks []CatalogueTaskID,
	pick func([]workerLoad) int,
) ([]TaskInstance, error) {
	loads := make([]workerLoad, len(workers))
	for i, worker := range workers {
		count := 0
		if link, ok := o.findLink(worker); ok {
			count = len(link.tasks)
		}
		loads[i] = workerLoad{account: worker, count: count}
	}

	out := make([]TaskInstance, 0, len(tasks))
	for _, task := range tasks {
		i := pick(loads)
		if i < 0 {
			return nil, ErrNoWorkers
		}
		out = append(out, o.newPendingTask(loads[i].account, requestingAccount, task))
		loads[i].count++
	}
	return out, nil
}
