// Package events rezervasyon olaylarını RabbitMQ üzerinden yayınlar ve tüketir.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sefazor/shootbook-backend/internal/models"
	"go.uber.org/zap"
)

const (
	Exchange          = "shootbook.bookings"
	NotificationQueue = "shootbook.notifications"
)

// Publisher tek bir bağlantı ve kanal üzerinden yayın yapar. Bağlantı koparsa
// bir sonraki yayında yeniden kurulur.
type Publisher struct {
	url    string
	logger *zap.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewPublisher(url string, logger *zap.Logger) *Publisher {
	return &Publisher{
		url:    url,
		logger: logger.Named("publisher"),
	}
}

func (p *Publisher) Publish(ctx context.Context, event models.BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for attempt := 0; attempt < 2; attempt++ {
		if err = p.ensureChannel(); err != nil {
			continue
		}
		err = p.ch.PublishWithContext(ctx,
			Exchange,
			event.Type,
			false,
			false,
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				Timestamp:    time.Now().UTC(),
				Type:         event.Type,
				Body:         body,
			})
		if err == nil {
			return nil
		}
		p.reset()
	}

	p.logger.Warn("publish failed", zap.String("type", event.Type), zap.Uint("booking_id", event.BookingID), zap.Error(err))
	return err
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
	return nil
}

func (p *Publisher) ensureChannel() error {
	if p.ch != nil && !p.ch.IsClosed() {
		return nil
	}
	p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("dial broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}
	if err := declareExchange(ch); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}
	p.conn, p.ch = conn, ch
	return nil
}

func (p *Publisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

func declareExchange(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(Exchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("exchange declare: %w", err)
	}
	return nil
}

// Handler bir rezervasyon olayını işler
type Handler func(ctx context.Context, event models.BookingEvent) error

// InProcessPublisher broker yapılandırılmadığında olayları doğrudan handler'a verir
type InProcessPublisher struct {
	handler Handler
	logger  *zap.Logger
}

func NewInProcessPublisher(handler Handler, logger *zap.Logger) *InProcessPublisher {
	return &InProcessPublisher{handler: handler, logger: logger.Named("publisher")}
}

func (p *InProcessPublisher) Publish(ctx context.Context, event models.BookingEvent) error {
	if err := p.handler(ctx, event); err != nil {
		p.logger.Warn("in-process handler failed", zap.String("type", event.Type), zap.Error(err))
		return err
	}
	return nil
}
