package notify

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cemeheeb/zifretta-raffle-engine/internal/logger"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/runtime"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// Connect dials the NATS server, reconnecting forever.
func Connect(url, name string) (*nats.Conn, error) {
	return nats.Connect(
		url,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
}

type publisher interface {
	Publish(subject string, data []byte) error
}

// Publisher broadcasts runtime events as JSON on <prefix>.<module>.<type>.
type Publisher struct {
	conn   publisher
	prefix string
}

var _ runtime.EventSink = (*Publisher)(nil)

func NewPublisher(conn publisher, prefix string) *Publisher {
	return &Publisher{conn: conn, prefix: prefix}
}

func (p *Publisher) Subject(event runtime.Event) string {
	return fmt.Sprintf("%s.%s.%s", p.prefix, event.Module, event.Type)
}

// Emit publishes the event. Delivery is best effort: a failed publish is
// logged and the event is dropped.
func (p *Publisher) Emit(event runtime.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error("notify: cannot marshal event", zap.String("type", event.Type), zap.Error(err))
		return
	}

	subject := p.Subject(event)
	if err := p.conn.Publish(subject, payload); err != nil {
		logger.Warn("notify: publish failed", zap.String("subject", subject), zap.Error(err))
		return
	}
	logger.Debug("notify: event published", zap.String("subject", subject))
}
