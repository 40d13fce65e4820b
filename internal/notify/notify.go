package notify

import "log"

// Notifier delivers an out-of-band message to a recipient. Delivery
// transport is outside the core; implementations report failure through the
// returned error and must not be retried by callers.
type Notifier interface {
	Notify(recipient, body string) error
}

// LogNotifier writes notifications to the process log. It stands in for a
// real mail transport in development and single-user deployments.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(recipient, body string) error {
	log.Printf("notify %s: %s", recipient, body)
	return nil
}
