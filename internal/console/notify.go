package console

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warn"
	SeverityError   Severity = "error"
)

// Notification is a transient, auto-dismissing user message. Errors never
// propagate past the action handlers; they all end up here.
type Notification struct {
	Severity Severity
	Summary  string
	Detail   string
}

type Notifier interface {
	Notify(Notification)
}

type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }
