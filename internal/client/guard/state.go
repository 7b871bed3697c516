package guard

// State состояние SessionGuard
type State int

const (
	Unauthenticated State = iota
	Authenticating
	Authenticated
	Rejected
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Action решение для запрошенного экрана
type Action int

const (
	Render Action = iota
	Redirect
	ForceLogout
)

func (a Action) String() string {
	switch a {
	case Render:
		return "render"
	case Redirect:
		return "redirect"
	case ForceLogout:
		return "force_logout"
	default:
		return "unknown"
	}
}

// Decision результат Check. Location задан для Redirect и ForceLogout.
type Decision struct {
	Location string
	Action   Action
}

// Экраны приложения
const (
	ViewHome      = "/"
	ViewLogin     = "/auth/login"
	ViewSignup    = "/auth/signup"
	ViewDashboard = "/dashboard"
	ViewWorkouts  = "/workouts"
	ViewNutrition = "/nutrition"
	ViewProducts  = "/products"
	ViewCommunity = "/community"
	ViewProfile   = "/profile"
)

// DefaultPublicViews экраны, доступные без входа
var DefaultPublicViews = []string{ViewHome, ViewLogin, ViewSignup}
