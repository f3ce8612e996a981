package promo

import "errors"

var (
	// ErrPromoNotFound возвращается, когда промокод не найден
	ErrPromoNotFound = errors.New("promo.repository: promo code not found")

	// ErrPromoAlreadyExists возвращается при создании промокода с существующим кодом
	ErrPromoAlreadyExists = errors.New("promo.repository: promo code already exists")

	// ErrLimitReached возвращается, когда лимит использований промокода исчерпан
	ErrLimitReached = errors.New("promo.repository: usage limit reached")

	// ErrUsageBelowCount возвращается при попытке выставить max_uses меньше used_count
	ErrUsageBelowCount = errors.New("promo.repository: max uses below used count")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("promo.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("promo.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("promo.repository: failed to scan row")
)
