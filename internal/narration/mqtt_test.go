package narration

import (
	"bytes"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doneToken struct {
	err  error
	done chan struct{}
}

func newDoneToken(err error) *doneToken {
	t := &doneToken{err: err, done: make(chan struct{})}
	close(t.done)
	return t
}

func (t *doneToken) Wait() bool                     { return true }
func (t *doneToken) WaitTimeout(time.Duration) bool { return true }
func (t *doneToken) Done() <-chan struct{}          { return t.done }
func (t *doneToken) Error() error                   { return t.err }

type published struct {
	topic   string
	qos     byte
	payload []byte
}

// fakeClient реализует только методы, которые вызывает MQTTAudio
type fakeClient struct {
	mqtt.Client

	mu         sync.Mutex
	connected  bool
	publishErr error
	messages   []published
}

func (c *fakeClient) IsConnected() bool { return c.connected }

func (c *fakeClient) Publish(topic string, qos byte, _ bool, payload interface{}) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, published{topic: topic, qos: qos, payload: payload.([]byte)})
	return newDoneToken(c.publishErr)
}

func (c *fakeClient) sent() []published {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]published(nil), c.messages...)
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func TestMQTTAudio_Commands(t *testing.T) {
	client := &fakeClient{connected: true}
	audio := NewMQTTAudio(client, "phone-1", 1, true, quietLogger())

	require.True(t, audio.Supported())
	require.NoError(t, audio.Play("Museo del Oro", Voice{Lang: "es-CO", Rate: 1.2, Pitch: 0.9}))
	require.NoError(t, audio.Pause())
	require.NoError(t, audio.Resume())
	require.NoError(t, audio.Stop())

	msgs := client.sent()
	require.Len(t, msgs, 4)

	var play command
	require.NoError(t, json.Unmarshal(msgs[0].payload, &play))
	assert.Equal(t, "devices/phone-1/narration", msgs[0].topic)
	assert.Equal(t, byte(1), msgs[0].qos)
	assert.Equal(t, "play", play.Command)
	assert.Equal(t, "Museo del Oro", play.Text)
	assert.Equal(t, "es-CO", play.Lang)
	assert.Equal(t, 1.2, play.Rate)
	assert.False(t, play.SentAt.IsZero())

	var commands []string
	for _, m := range msgs {
		var cmd command
		require.NoError(t, json.Unmarshal(m.payload, &cmd))
		commands = append(commands, cmd.Command)
	}
	assert.Equal(t, []string{"play", "pause", "resume", "stop"}, commands)
}

func TestMQTTAudio_Disconnected(t *testing.T) {
	client := &fakeClient{connected: false}
	audio := NewMQTTAudio(client, "phone-1", 0, true, quietLogger())

	assert.Error(t, audio.Play("hola", DefaultVoice()))
	assert.Empty(t, client.sent())
}

func TestMQTTAudio_BrokerErrorIsNotReturned(t *testing.T) {
	client := &fakeClient{connected: true, publishErr: errors.New("broker refused")}
	audio := NewMQTTAudio(client, "phone-1", 0, true, quietLogger())

	assert.NoError(t, audio.Stop())
	assert.Len(t, client.sent(), 1)
}

func TestMQTTAudio_Unsupported(t *testing.T) {
	audio := NewMQTTAudio(&fakeClient{connected: true}, "phone-1", 0, false, quietLogger())

	assert.False(t, audio.Supported())
}
