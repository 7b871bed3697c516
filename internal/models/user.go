package models

// User представляет авторизованного пользователя, как его возвращает сервер
type User struct {
	Username string `json:"username"`         // уникальный username
	Email    string `json:"email,omitempty"`  // email (сервер отдает не всегда)
	Avatar   string `json:"avatar,omitempty"` // emoji или URL аватара
	Bio      string `json:"bio,omitempty"`    // короткое описание профиля
	ID       int64  `json:"id"`               // числовой ID пользователя на сервере
}

// Session представляет текущую аутентифицированную сессию клиента.
// Пустая строка означает отсутствие токена.
// Инвариант: User != nil тогда и только тогда, когда AccessToken != "".
type Session struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// IsZero сообщает, что сессия пустая (пользователь не залогинен)
func (s Session) IsZero() bool {
	return s.AccessToken == "" && s.User == nil
}

// Clone возвращает копию сессии, не разделяющую User с исходной
func (s Session) Clone() Session {
	out := s
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	return out
}
