// Command ws_smoke drives one full room session against a running
// server: create a room on one connection, join it from a second,
// exchange a message, and print everything received.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/avezhnin/pairtalk-server/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_smoke: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:8080/ws", "WebSocket address")
	user := flag.String("user", "smoke-tester", "user id to bind")
	text := flag.String("text", "hello from smoke test", "message text to send")
	timeout := flag.Duration("timeout", 5*time.Second, "total timeout for the run")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	creator, err := dial(ctx, *addr, *user+"-a")
	if err != nil {
		return err
	}
	defer creator.Close(websocket.StatusNormalClosure, "bye")

	if err := send(ctx, creator, proto.InboundTypeCreateRoom, nil); err != nil {
		return err
	}

	var created proto.RoomCreatedData
	if err := expect(ctx, creator, proto.OutboundTypeRoomCreated, &created); err != nil {
		return err
	}
	fmt.Printf("room created: %s\n", created.Code)

	joiner, err := dial(ctx, *addr, *user+"-b")
	if err != nil {
		return err
	}
	defer joiner.Close(websocket.StatusNormalClosure, "bye")

	if err := send(ctx, joiner, proto.InboundTypeJoinRoom, proto.JoinRoomData{RoomCode: created.Code}); err != nil {
		return err
	}

	var joined proto.JoinedRoomData
	if err := expect(ctx, joiner, proto.OutboundTypeJoinedRoom, &joined); err != nil {
		return err
	}
	fmt.Printf("joined %s with %d prior messages\n", joined.RoomCode, len(joined.Messages))

	if err := send(ctx, creator, proto.InboundTypeSendMessage, proto.SendMessageData{Message: *text}); err != nil {
		return err
	}

	var msg proto.WireMessage
	if err := expect(ctx, joiner, proto.OutboundTypeNewMessage, &msg); err != nil {
		return err
	}
	fmt.Printf("received from %s: %s\n", msg.SenderID, msg.Content)
	return nil
}

func dial(ctx context.Context, addr, user string) (*websocket.Conn, error) {
	conn, _, err := websocket.Dial(ctx, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}
	if err := send(ctx, conn, proto.InboundTypeSetUserID, proto.SetUserIDData{UserID: user}); err != nil {
		conn.Close(websocket.StatusInternalError, "set-user-id failed")
		return nil, err
	}
	return conn, nil
}

func send(ctx context.Context, conn *websocket.Conn, kind string, data any) error {
	inbound := proto.Inbound{Type: kind}
	if data != nil {
		payload, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", kind, err)
		}
		inbound.Data = payload
	}
	if err := wsjson.Write(ctx, conn, inbound); err != nil {
		return fmt.Errorf("send %s: %w", kind, err)
	}
	return nil
}

// expect reads envelopes until one matches the wanted type, decoding
// its payload into out. Presence events in between are printed.
func expect(ctx context.Context, conn *websocket.Conn, wanted string, out any) error {
	for {
		var envelope struct {
			Type string          `json:"type"`
			Data json.RawMessage `json:"data"`
		}
		if err := wsjson.Read(ctx, conn, &envelope); err != nil {
			return fmt.Errorf("read: %w", err)
		}
		if envelope.Type == proto.OutboundTypeError {
			var e proto.ErrorData
			_ = json.Unmarshal(envelope.Data, &e)
			return fmt.Errorf("server error: %s", e.Message)
		}
		if envelope.Type != wanted {
			fmt.Printf("event: %s %s\n", envelope.Type, envelope.Data)
			continue
		}
		return json.Unmarshal(envelope.Data, out)
	}
}
