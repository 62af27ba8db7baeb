package notifier

import (
	"context"

	"github.com/Astemirdum/librarypro/library/internal/model"
	"go.uber.org/zap"
)

type logNotifier struct {
	log *zap.Logger
}

// NewLogNotifier writes notifications to the log only.
func NewLogNotifier(log *zap.Logger) *logNotifier {
	return &logNotifier{log: log.Named("notifier")}
}

func (n *logNotifier) Notify(_ context.Context, msg model.Notification) error {
	n.log.Info("notification",
		zap.String("member", msg.MemberID),
		zap.String("book", msg.BookID),
		zap.String("outcome", string(msg.Outcome)),
		zap.String("message", msg.Message),
		zap.Time("at", msg.At),
	)
	return nil
}
