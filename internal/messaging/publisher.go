package messaging

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/farmhand/go-automate/internal/display"
	"github.com/farmhand/go-automate/internal/engine"
)

const (
	// SubjectTransfers carries one JSON TransferEvent per finished push.
	SubjectTransfers = "automate.transfers"
	// SubjectNotices carries terse user-facing notice text.
	SubjectNotices = "automate.notices"
)

type publishConn interface {
	Publish(subject string, data []byte) error
}

// Publisher broadcasts automation events over the embedded NATS server.
// It satisfies engine.EventSink. Delivery is best-effort: publish failures
// are logged, never propagated into the tick pass.
type Publisher struct {
	conn publishConn
}

func NewPublisher(server *NatsServer) *Publisher {
	return &Publisher{conn: server}
}

// Transfer publishes the event twice: the JSON record on the transfers
// subject, and a rendered announcement on the notices subject.
func (p *Publisher) Transfer(ctx context.Context, ev engine.TransferEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		slog.WarnContext(ctx, "marshalling transfer event", "error", err)
		return
	}

	if err := p.conn.Publish(SubjectTransfers, data); err != nil {
		slog.WarnContext(ctx, "publishing transfer event", "error", err)
	}

	p.Notice(ctx, display.Transfer(ev.Location, ev.Machine, ev.Item, ev.Qty))
}

func (p *Publisher) Notice(ctx context.Context, text string) {
	if err := p.conn.Publish(SubjectNotices, []byte(text)); err != nil {
		slog.WarnContext(ctx, "publishing notice", "error", err)
	}
}
