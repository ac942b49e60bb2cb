package notificationinfra

import (
	"context"

	"github.com/Abraxas-365/talentpool/pkg/logx"
	"github.com/Abraxas-365/talentpool/talentpool/notification"
)

// LogNotifier writes events to the application log. Stands in for the real
// delivery channel (email, Slack) in local and test environments.
type LogNotifier struct{}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify logs the event.
func (n *LogNotifier) Notify(ctx context.Context, event notification.Event) error {
	logx.Infof("notification: type=%s request=%s candidate=%s company=%s",
		event.Type, event.IntroRequestID, event.CandidateID, event.CompanyID)
	return nil
}
