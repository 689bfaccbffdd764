package contextkeys

type contextKey string

// Ключи значений, которые middleware кладут в контекст запроса.
const (
	Login     contextKey = "login"
	ID        contextKey = "id"
	Settings  contextKey = "settings"
	RunAs     contextKey = "runAs"
	RequestID contextKey = "requestID"
)
