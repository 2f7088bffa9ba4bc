// Package mqttled mirrors the LED register to an MQTT topic, so a remote
// panel can show the same value as the local LEDs.
package mqttled

import (
	"fmt"
	"log"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

// Publisher is the part of mqtt.Client the mirror uses.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Register publishes each new value, retained, as two hex digits. Writes
// that repeat the last value are not published again.
type Register struct {
	pub   Publisher
	topic string

	mu        sync.Mutex
	value     uint8
	published bool
}

func New(pub Publisher, topic string) *Register {
	return &Register{pub: pub, topic: topic}
}

// Dial connects to broker and returns a mirror publishing on topic along
// with a function that disconnects.
func Dial(broker, topic string) (*Register, func(), error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID("keypad-display-" + uuid.New().String()).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, nil, fmt.Errorf("connect to %s: %w", broker, token.Error())
	}
	return New(client, topic), func() { client.Disconnect(250) }, nil
}

func (r *Register) Read() uint8 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value
}

func (r *Register) Write(v uint8) {
	r.mu.Lock()
	if r.published && r.value == v {
		r.mu.Unlock()
		return
	}
	r.value, r.published = v, true
	r.mu.Unlock()

	token := r.pub.Publish(r.topic, 1, true, fmt.Sprintf("%02X", v))
	go func() {
		if token.Wait() && token.Error() != nil {
			log.Printf("mqtt: publish %02X to %s: %v", v, r.topic, token.Error())
		}
	}()
}
