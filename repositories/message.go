package repositories

import (
	"fmt"
	"strconv"

	"chat-registry/domain"

	"google.golang.org/protobuf/types/known/structpb"
)

// fromMessages keeps timestamps as decimal strings, structpb numbers are
// float64 and would lose precision past 2^53.
func fromMessages(messages []domain.Message) *structpb.Value {
	values := make([]*structpb.Value, 0, len(messages))
	for _, item := range messages {
		values = append(values, structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
			"sender":    bytesValue(item.Sender),
			"content":   bytesValue(item.Content),
			"timestamp": structpb.NewStringValue(strconv.FormatInt(item.Timestamp, 10)),
		}}))
	}
	return structpb.NewListValue(&structpb.ListValue{Values: values})
}

func toMessages(list *structpb.ListValue) ([]domain.Message, error) {
	messages := make([]domain.Message, 0, len(list.GetValues()))
	for i, value := range list.GetValues() {
		fields := value.GetStructValue().GetFields()
		timestamp, err := strconv.ParseInt(fields["timestamp"].GetStringValue(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("message %d timestamp: %w", i, err)
		}
		sender, err := fromBytesValue(fields, "sender")
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
		content, err := fromBytesValue(fields, "content")
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
		messages = append(messages, domain.Message{
			Sender:    sender,
			Content:   content,
			Timestamp: timestamp,
		})
	}
	return messages, nil
}
