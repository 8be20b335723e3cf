package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// --- Response types (дублируются из api/dto.go, CLI не импортирует internal/api) ---

// TagResponse — тег организации из API.
type TagResponse struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Editors []string `json:"editors"`
	Workers []string `json:"workers"`
}

// AccountLinkResponse — привязка аккаунта из API.
type AccountLinkResponse struct {
	Account string   `json:"account"`
	Type    string   `json:"type"`
	Tasks   []string `json:"tasks,omitempty"`
}

// OrgResponse — организация из API.
type OrgResponse struct {
	ID       string                `json:"id"`
	Name     string                `json:"name"`
	Tags     []TagResponse         `json:"tags"`
	Accounts []AccountLinkResponse `json:"accounts"`
}

// TaskInstanceResponse — экземпляр задачи из API.
type TaskInstanceResponse struct {
	ID           string `json:"id"`
	Organization string `json:"organization"`
	CatalogueID  string `json:"catalogue_id"`
	AssignedTo   string `json:"assigned_to"`
	AssignedBy   string `json:"assigned_by"`
	Expires      string `json:"expires,omitempty"`
	Status       string `json:"status"`
}

// CatalogueTaskResponse — шаблон задачи из API.
type CatalogueTaskResponse struct {
	ID           string `json:"id"`
	Organization string `json:"organization"`
	CreatedBy    string `json:"created_by"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
}

// AssignedResponse — результат назначения.
type AssignedResponse struct {
	TaskIDs []string `json:"task_ids"`
}

// CreatedResponse — ответ с id созданного ресурса.
type CreatedResponse struct {
	ID string `json:"id"`
}

// --- Request types ---

// AssignmentRequest — стратегия распределения.
type AssignmentRequest struct {
	Kind    string `json:"kind"`
	Account string `json:"account,omitempty"`
}

// AssignTasksRequest — распределение задач по тегам.
type AssignTasksRequest struct {
	RequestingAccount string            `json:"requesting_account"`
	Tasks             []string          `json:"tasks"`
	Tags              []string          `json:"tags"`
	Assignment        AssignmentRequest `json:"assignment"`
}

// DirectAssignRequest — прямое назначение задач аккаунту.
type DirectAssignRequest struct {
	RequestingAccount string   `json:"requesting_account"`
	Worker            string   `json:"worker"`
	Tasks             []string `json:"tasks"`
}

// --- API response wrappers ---

type dataResponse struct {
	Data json.RawMessage `json:"data"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// --- Client ---

// Client — HTTP-клиент для Delega API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт клиент для API.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// --- Organizations ---

// CreateOrg создаёт новую организацию.
func (c *Client) CreateOrg(name, account string) (*CreatedResponse, error) {
	body := map[string]string{"name": name, "requesting_account": account}
	var created CreatedResponse
	err := c.post("/api/v1/orgs", body, &created)
	return &created, err
}

// GetOrg возвращает организацию по ID.
func (c *Client) GetOrg(id string) (*OrgResponse, error) {
	var org OrgResponse
	err := c.get("/api/v1/orgs/"+id, &org)
	return &org, err
}

// AddTag добавляет тег в организацию.
func (c *Client) AddTag(orgID, name, account string) (*CreatedResponse, error) {
	body := map[string]string{"name": name, "requesting_account": account}
	var created CreatedResponse
	err := c.post("/api/v1/orgs/"+orgID+"/tags", body, &created)
	return &created, err
}

// AddWorkerToTag добавляет исполнителя в тег.
func (c *Client) AddWorkerToTag(orgID, tagID, requester, worker string) error {
	body := map[string]string{"requesting_account": requester, "account": worker}
	return c.post("/api/v1/orgs/"+orgID+"/tags/"+tagID+"/workers", body, nil)
}

// AddEditorToTag добавляет редактора в тег.
func (c *Client) AddEditorToTag(orgID, tagID, requester, editor string) error {
	body := map[string]string{"requesting_account": requester, "account": editor}
	return c.post("/api/v1/orgs/"+orgID+"/tags/"+tagID+"/editors", body, nil)
}

// LinkAccount привязывает аккаунт к организации.
func (c *Client) LinkAccount(orgID, requester, account, accountType string) error {
	body := map[string]string{
		"requesting_account": requester,
		"account":            account,
		"account_type":       accountType,
	}
	return c.post("/api/v1/orgs/"+orgID+"/accounts", body, nil)
}

// --- Assignments ---

// AssignTasks распределяет задачи по тегам.
func (c *Client) AssignTasks(orgID string, req AssignTasksRequest) (*AssignedResponse, error) {
	var assigned AssignedResponse
	err := c.post("/api/v1/orgs/"+orgID+"/assignments", req, &assigned)
	return &assigned, err
}

// AssignTasksToAccount назначает задачи напрямую аккаунту.
func (c *Client) AssignTasksToAccount(orgID string, req DirectAssignRequest) (*AssignedResponse, error) {
	var assigned AssignedResponse
	err := c.post("/api/v1/orgs/"+orgID+"/assignments/direct", req, &assigned)
	return &assigned, err
}

// --- Task instances ---

// GetTask возвращает экземпляр задачи по ID.
func (c *Client) GetTask(id string) (*TaskInstanceResponse, error) {
	var task TaskInstanceResponse
	err := c.get("/api/v1/tasks/"+id, &task)
	return &task, err
}

// FinishTask завершает задачу.
func (c *Client) FinishTask(id, account string) error {
	body := map[string]string{"requesting_account": account}
	return c.post("/api/v1/tasks/"+id+"/finish", body, nil)
}

// RejectTask отклоняет задачу.
func (c *Client) RejectTask(id, account string) error {
	body := map[string]string{"requesting_account": account}
	return c.post("/api/v1/tasks/"+id+"/reject", body, nil)
}

// AddTime продлевает срок задачи.
func (c *Client) AddTime(id, account string, seconds int64) error {
	body := map[string]any{"requesting_account": account, "duration_sec": seconds}
	return c.post("/api/v1/tasks/"+id+"/time", body, nil)
}

// --- Catalogue ---

// CreateCatalogueTask создаёт шаблон задачи.
func (c *Client) CreateCatalogueTask(orgID, createdBy, title, description string) (*CreatedResponse, error) {
	body := map[string]string{
		"created_by":  createdBy,
		"title":       title,
		"description": description,
	}
	var created CreatedResponse
	err := c.post("/api/v1/orgs/"+orgID+"/catalogue", body, &created)
	return &created, err
}

// GetCatalogueTask возвращает шаблон задачи по ID.
func (c *Client) GetCatalogueTask(id string) (*CatalogueTaskResponse, error) {
	var task CatalogueTaskResponse
	err := c.get("/api/v1/catalogue/"+id, &task)
	return &task, err
}

// DeleteCatalogueTask удаляет шаблон задачи.
func (c *Client) DeleteCatalogueTask(id string) error {
	return c.delete("/api/v1/catalogue/" + id)
}

// --- HTTP helpers ---

func (c *Client) get(path string, result any) error {
	return c.doData(http.MethodGet, path, nil, result)
}

func (c *Client) post(path string, body any, result any) error {
	return c.doData(http.MethodPost, path, body, result)
}

func (c *Client) delete(path string) error {
	resp, err := c.do(http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return c.checkError(resp)
}

func (c *Client) doData(method, path string, body any, result any) error {
	resp, err := c.do(method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkError(resp); err != nil {
		return err
	}

	// 204 No Content
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var dr dataResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if result != nil {
		return json.Unmarshal(dr.Data, result)
	}
	return nil
}

func (c *Client) do(method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.httpClient.Do(req)
}

func (c *Client) checkError(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}

	var er errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return fmt.Errorf("API error: HTTP %d", resp.StatusCode)
	}

	return fmt.Errorf("%s: %s", er.Error.Code, er.Error.Message)
}
