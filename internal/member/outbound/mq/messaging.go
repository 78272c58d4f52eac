package mq

import (
	"context"
	"encoding/json"

	"github.com/shandysiswandi/roster/internal/member/usecase"
	"github.com/shandysiswandi/roster/internal/pkg/instrument"
	"github.com/shandysiswandi/roster/internal/pkg/messaging"
	"github.com/shandysiswandi/roster/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client messaging.Publisher
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Publisher, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishMemberRegistered(ctx context.Context, msg usecase.MemberRegisteredEvent) error {
	ctx, span := m.ins.Tracer("member.outbound.mq").Start(ctx, "PublishMemberRegistered")
	defer span.End()

	body, err := json.Marshal(event.MemberRegisteredMessage{
		MemberID: msg.MemberID,
		Name:     msg.Name,
		Email:    msg.Email,
		Phone:    msg.Phone,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, event.MemberRegisteredDestination, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
