// Package service содержит оркестрацию доменных команд.
//
// Сервисы без состояния координируют один вызов команды:
//   - загрузить снимок агрегата через порт репозитория
//   - вызвать чистую доменную команду
//   - персистировать и опубликовать полученные события
//
// Блокировок поверх этой последовательности нет: сериализацию
// конкурентных команд по одному агрегату обязана обеспечивать
// реализация репозитория (optimistic check по номеру события).
// Доменные ошибки не переводятся и не гасятся — они уходят вызывающему
// как есть.
package service
