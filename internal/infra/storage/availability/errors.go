package availability

import "errors"

var (
	// ErrRecordNotFound возвращается, когда запись доступности на дату отсутствует
	ErrRecordNotFound = errors.New("availability.repository: record not found")

	// ErrInvalidSlot возвращается для неизвестного слота
	ErrInvalidSlot = errors.New("availability.repository: invalid slot")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
