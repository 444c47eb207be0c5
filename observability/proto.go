package observability

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ProtoObserver writes each event to w as one line of protojson, encoded
// from a google.protobuf.Struct. Write failures do not reach the emitter;
// the first one is kept and reported by Err.
type ProtoObserver struct {
	mu   sync.Mutex
	w    io.Writer
	opts protojson.MarshalOptions
	err  error
}

// NewProtoObserver returns a ProtoObserver writing to w.
func NewProtoObserver(w io.Writer) *ProtoObserver {
	return &ProtoObserver{
		w:    w,
		opts: protojson.MarshalOptions{Multiline: false},
	}
}

func (o *ProtoObserver) OnEvent(ctx context.Context, event Event) {
	line, err := o.opts.Marshal(EncodeEvent(event))

	o.mu.Lock()
	defer o.mu.Unlock()

	if err == nil {
		line = append(line, '\n')
		_, err = o.w.Write(line)
	}
	if err != nil && o.err == nil {
		o.err = fmt.Errorf("write event %s: %w", event.Type, err)
	}
}

// Err returns the first encode or write error, if any.
func (o *ProtoObserver) Err() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.err
}

// EncodeEvent converts an event to a Struct. Data values structpb cannot
// represent are stored as their fmt.Sprint text.
func EncodeEvent(event Event) *structpb.Struct {
	data := &structpb.Struct{Fields: make(map[string]*structpb.Value, len(event.Data))}
	for k, v := range event.Data {
		val, err := structpb.NewValue(v)
		if err != nil {
			val = structpb.NewStringValue(fmt.Sprint(v))
		}
		data.Fields[k] = val
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"type":      structpb.NewStringValue(string(event.Type)),
		"level":     structpb.NewStringValue(event.Level.String()),
		"severity":  structpb.NewNumberValue(float64(event.Level)),
		"timestamp": structpb.NewStringValue(event.Timestamp.UTC().Format(time.RFC3339Nano)),
		"source":    structpb.NewStringValue(event.Source),
		"data":      structpb.NewStructValue(data),
	}}
}
