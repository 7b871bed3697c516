package profile

import "errors"

var (
	// ErrNotAuthenticated сессии нет или токен неверной формы; запрос не отправлялся
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrSessionExpired сервер отверг токен (401/403); сессия очищена
	ErrSessionExpired = errors.New("session expired")
	// ErrFetchFailed сетевая или серверная ошибка при загрузке профиля; сессия сохранена
	ErrFetchFailed = errors.New("profile fetch failed")
	// ErrSessionChanged сессия сменилась, пока загружался профиль; результат отброшен
	ErrSessionChanged = errors.New("session changed during profile fetch")
)
