package kafka

import (
	"github.com/IBM/sarama"
)

const NotificationTopic = "library-notifications"

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
	Topic string   `envconfig:"KAFKA_TOPIC"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func (c Config) TopicOrDefault() string {
	if c.Topic == "" {
		return NotificationTopic
	}
	return c.Topic
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
