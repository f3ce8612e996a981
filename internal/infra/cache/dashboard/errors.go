package dashboard

import "errors"

var (
	// ErrCacheMiss возвращается, когда сводки нет в кеше
	ErrCacheMiss = errors.New("dashboard.cache: miss")

	// ErrCache возвращается при ошибках Redis или сериализации
	ErrCache = errors.New("dashboard.cache: redis error")
)
