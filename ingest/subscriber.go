package ingest

import (
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog"

	"github.com/ylk14/SmartPlant-sub001/config"
	"github.com/ylk14/SmartPlant-sub001/logger"
)

// Subscriber consumes telemetry from the broker and feeds the pipeline. Paho
// delivers messages to the handler in arrival order, so readings for a device
// are persisted in the order they were published. On reconnect the OnConnect
// handler resubscribes, since non-durable sessions lose subscriptions.
type Subscriber struct {
	client   mqtt.Client
	topic    string
	pipeline *Pipeline
	log      zerolog.Logger
}

func NewSubscriber(cfg *config.Config, pipeline *Pipeline) *Subscriber {
	s := &Subscriber{
		topic:    cfg.MQTTTopic,
		pipeline: pipeline,
		log:      logger.WithComponent("mqtt"),
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.MQTTBroker)
	opts.SetClientID(cfg.MQTTClientID)
	opts.SetAutoReconnect(true)
	opts.SetOnConnectHandler(func(c mqtt.Client) {
		s.log.Info().Str("broker", cfg.MQTTBroker).Msg("connected")
		s.subscribe(c)
	})
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		s.log.Warn().Err(err).Msg("connection lost, reconnecting")
	})
	s.client = mqtt.NewClient(opts)
	return s
}

// Start connects to the broker; the subscription itself happens in the
// OnConnect handler so it survives reconnects.
func (s *Subscriber) Start() error {
	if token := s.client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("connect to broker: %w", token.Error())
	}
	return nil
}

func (s *Subscriber) Stop() {
	s.client.Disconnect(250)
}

func (s *Subscriber) subscribe(c mqtt.Client) {
	token := c.Subscribe(s.topic, 1, func(_ mqtt.Client, msg mqtt.Message) {
		s.pipeline.HandleMessage(msg.Payload())
	})
	if token.Wait() && token.Error() != nil {
		s.log.Error().Err(token.Error()).Str("topic", s.topic).Msg("subscribe failed")
		return
	}
	s.log.Info().Str("topic", s.topic).Msg("subscribed")
}
