package schedule

import "errors"

var (
	// ErrBlockedRangeNotFound возвращается, когда период блокировки не найден у инструктора
	ErrBlockedRangeNotFound = errors.New("schedule.repository: blocked range not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
