package events

import "github.com/iudanet/fitkeeper/internal/models"

// Level важность уведомления
type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Notice короткое сообщение для пользователя
type Notice struct {
	Level   Level
	Message string
}

// SessionExpired публикуется, когда сервер отверг токен
type SessionExpired struct {
	Reason string
}

// StateChange переход SessionGuard из одного состояния в другое
type StateChange struct {
	From string
	To   string
}

var (
	ProfileUpdate  = Topic[models.ProfileDelta]{Name: "profile:update"}
	NoticeTopic    = Topic[Notice]{Name: "notice"}
	SessionExpiry  = Topic[SessionExpired]{Name: "session:expired"}
	SessionChanged = Topic[models.Session]{Name: "session:changed"}
	GuardState     = Topic[StateChange]{Name: "guard:state"}
	CartUpdate     = Topic[models.CartState]{Name: "cart:update"}
)
