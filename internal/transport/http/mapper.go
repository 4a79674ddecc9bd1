package http

import (
	"encoding/json"

	"github.com/avezhnin/pairtalk-server/internal/core"
	"github.com/avezhnin/pairtalk-server/internal/proto"
)

// dispatch maps one inbound envelope onto a hub operation. Protocol
// errors go back to the originating connection as error events through
// its own outbound queue; the write loop stays the only socket writer.
func (h *WSHandler) dispatch(client *core.Client, inbound proto.Inbound) {
	switch inbound.Type {
	case proto.InboundTypeSetUserID:
		userID, ok := stringPayload(inbound.Data, "userId")
		if !ok {
			client.Reject(core.NewError(core.ErrCodeBadRequest, "userId is required"))
			return
		}
		h.hub.SetUserID(client, userID)
	case proto.InboundTypeCreateRoom:
		h.hub.CreateRoom(client)
	case proto.InboundTypeJoinRoom:
		code, ok := stringPayload(inbound.Data, "roomCode")
		if !ok {
			client.Reject(core.NewError(core.ErrCodeBadRequest, "roomCode is required"))
			return
		}
		h.hub.JoinRoom(client, code)
	case proto.InboundTypeSendMessage:
		var msg proto.SendMessageData
		if len(inbound.Data) == 0 || json.Unmarshal(inbound.Data, &msg) != nil {
			client.Reject(core.NewError(core.ErrCodeBadRequest, "malformed send-message payload"))
			return
		}
		h.hub.SendMessage(client, msg.Message)
	default:
		client.Reject(core.NewError(core.ErrCodeBadRequest, "unknown event type"))
	}
}

// stringPayload accepts either a bare JSON string or an object with the
// named field. Client builds differ on which form they emit.
func stringPayload(raw json.RawMessage, field string) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", false
	}
	inner, ok := obj[field]
	if !ok {
		return "", false
	}
	if err := json.Unmarshal(inner, &s); err != nil {
		return "", false
	}
	return s, true
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventRoomCreated:
		return proto.Outbound{
			Type: proto.OutboundTypeRoomCreated,
			Data: proto.RoomCreatedData{Code: event.Code},
		}
	case core.EventRoomJoined:
		messages := make([]proto.WireMessage, 0, len(event.Messages))
		for _, msg := range event.Messages {
			messages = append(messages, wireMessage(msg))
		}
		return proto.Outbound{
			Type: proto.OutboundTypeJoinedRoom,
			Data: proto.JoinedRoomData{RoomCode: event.Code, Messages: messages},
		}
	case core.EventNewMessage:
		return proto.Outbound{
			Type: proto.OutboundTypeNewMessage,
			Data: wireMessage(event.Message),
		}
	case core.EventUserJoined:
		return proto.Outbound{
			Type: proto.OutboundTypeUserJoined,
			Data: proto.PresenceData{UserCount: event.Count},
		}
	case core.EventUserLeft:
		return proto.Outbound{
			Type: proto.OutboundTypeUserLeft,
			Data: proto.PresenceData{UserCount: event.Count},
		}
	case core.EventError:
		return proto.Outbound{
			Type: proto.OutboundTypeError,
			Data: proto.ErrorData{Message: event.Err.Message},
		}
	default:
		return proto.Outbound{
			Type: proto.OutboundTypeError,
			Data: proto.ErrorData{Message: "internal error"},
		}
	}
}

func wireMessage(msg core.Message) proto.WireMessage {
	return proto.WireMessage{
		ID:        msg.ID,
		Content:   msg.Content,
		SenderID:  msg.SenderID,
		Timestamp: msg.Timestamp,
	}
}
