package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/sparklewash/billing/internal/entity"
)

type Producer struct {
	l           *slog.Logger
	w           *kafka.Writer
	eventsTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Compression:            0,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:           l,
		w:           w,
		eventsTopic: topic,
	}
}

type RecordCreatedEvent struct {
	Type          string          `json:"type"`
	RecordID      uuid.UUID       `json:"record_id"`
	StaffMemberID uuid.UUID       `json:"staff_member_id"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

func (p *Producer) SendRecordCreated(ctx context.Context, rec entity.BillingRecord) {
	event := RecordCreatedEvent{
		Type:          "billing.record_created",
		RecordID:      rec.ID,
		StaffMemberID: rec.StaffMemberID,
		TotalAmount:   rec.TotalAmount,
	}

	p.send(ctx, rec.ID, event)
}

type AmountChangedEvent struct {
	Type     string          `json:"type"`
	RecordID uuid.UUID       `json:"record_id"`
	Amount   decimal.Decimal `json:"amount"`
}

func (p *Producer) SendAmountChanged(ctx context.Context, recordID uuid.UUID, amount decimal.Decimal) {
	event := AmountChangedEvent{
		Type:     "billing.amount_changed",
		RecordID: recordID,
		Amount:   amount,
	}

	p.send(ctx, recordID, event)
}

func (p *Producer) send(ctx context.Context, key uuid.UUID, event any) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key.String()),
		Value: b,
		Topic: p.eventsTopic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, args ...any) {
	l.l.Info(fmt.Sprintf(format, args...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, args ...any) {
	l.l.Error(fmt.Sprintf(format, args...))
}
