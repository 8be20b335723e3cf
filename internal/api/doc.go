// Package api — HTTP API сервиса Delega.
//
// REST поверх стандартного net/http с маршрутизацией через
// http.ServeMux (Go 1.22+ паттерны методов и путей). Обработчики
// переводят HTTP в команды сервисного слоя и доменные ошибки —
// в коды ответов.
package api
