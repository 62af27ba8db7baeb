package notifier

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Astemirdum/librarypro/library/internal/model"
	cb "github.com/Astemirdum/librarypro/pkg/circuit_breaker"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	cbRecordLength     = 10
	cbTimeout          = 10 * time.Second
	cbPercentile       = 0.5
	cbRecoveryRequests = 3
)

type kafkaNotifier struct {
	producer sarama.SyncProducer
	topic    string
	cb       cb.CircuitBreaker
	log      *zap.Logger
}

// NewKafkaNotifier publishes notifications keyed by member so one member's
// events stay ordered within a partition.
func NewKafkaNotifier(producer sarama.SyncProducer, topic string, log *zap.Logger) *kafkaNotifier {
	return &kafkaNotifier{
		producer: producer,
		topic:    topic,
		cb:       cb.New(cbRecordLength, cbTimeout, cbPercentile, cbRecoveryRequests),
		log:      log.Named("notifier"),
	}
}

func (n *kafkaNotifier) Notify(ctx context.Context, msg model.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	pm := &sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(msg.MemberID),
		Value: sarama.ByteEncoder(data),
	}
	return n.cb.Call(func() error {
		partition, offset, err := n.producer.SendMessage(pm)
		if err != nil {
			return errors.Wrap(err, "producer.SendMessage")
		}
		n.log.Debug("notification sent",
			zap.String("topic", n.topic),
			zap.Int32("partition", partition),
			zap.Int64("offset", offset),
			zap.String("outcome", string(msg.Outcome)))
		return nil
	})
}

func (n *kafkaNotifier) Close() error {
	return n.producer.Close()
}
