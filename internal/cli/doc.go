// Package cli реализует инструмент командной строки Delega.
//
// # Обзор
//
// CLI — клиентская утилита для взаимодействия с Delega API.
// Работает через HTTP, не импортирует внутренние пакеты системы.
// CLI используется для управления организациями, задачами и каталогом.
//
// # Ключевые компоненты
//
// ## Client
//
// HTTP-клиент для Delega API. Инкапсулирует все HTTP-запросы,
// парсинг ответов (DataResponse, ErrorResponse) и обработку ошибок.
//
//	client := cli.NewClient("http://localhost:8080")
//	org, err := client.GetOrg(id)
//
// ## Output
//
// Форматирование вывода. Поддерживает два режима:
//   - Таблицы (text/tabwriter) — по умолчанию
//   - JSON (json.MarshalIndent) — с флагом --json
//
// Данные выводятся в stdout, сообщения (Success/Error) — в stderr.
// Это позволяет использовать pipe: delega org show ID --json | jq .
//
// ## Commands
//
// Cobra-команды организованы по ресурсам:
//   - org: create, show, add-tag, add-worker, add-editor, link
//   - task: show, assign, assign-direct, finish, reject, add-time
//   - catalogue: create, show, delete
//
// Каждая группа создаётся через фабричную функцию (NewOrgCmd и т.д.),
// принимающую clientFn и outputFn — замыкания для ленивого создания
// Client и Output после парсинга PersistentFlags.
package cli
