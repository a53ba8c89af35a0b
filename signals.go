package framer

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for framer events.
var (
	SignalFramerCreated  = capitan.NewSignal("framer.created", "Framer instantiated")
	SignalEncodeStart    = capitan.NewSignal("framer.encode.start", "Encode operation beginning")
	SignalEncodeComplete = capitan.NewSignal("framer.encode.complete", "Encode operation finished")
	SignalDecodeStart    = capitan.NewSignal("framer.decode.start", "Decode operation beginning")
	SignalDecodeComplete = capitan.NewSignal("framer.decode.complete", "Decode operation finished")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeyChecksum    = capitan.NewStringKey("checksum")
	KeyCapacity    = capitan.NewIntKey("capacity")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
	KeyErrorKind   = capitan.NewStringKey("error_kind")
)

// emitFramerCreated emits an event when a framer is created.
func emitFramerCreated(ctx context.Context, contentType, typeName string, checksum ChecksumAlgo, capacity int) {
	capitan.Emit(ctx, SignalFramerCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyChecksum.Field(string(checksum)),
		KeyCapacity.Field(capacity),
	)
}

// emitEncodeStart emits an event when encode begins.
func emitEncodeStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalEncodeStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitEncodeComplete emits an event when encode finishes.
// size is the frame length including the terminator.
func emitEncodeComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := completeFields(contentType, typeName, size, duration, err)
	if err != nil {
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

// emitDecodeStart emits an event when decode begins.
func emitDecodeStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalDecodeStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitDecodeComplete emits an event when decode finishes.
// size is the unstuffed length, zero if unstuffing failed.
func emitDecodeComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := completeFields(contentType, typeName, size, duration, err)
	if err != nil {
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}

func completeFields(contentType, typeName string, size int, duration time.Duration, err error) []capitan.Field {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields,
			KeyError.Field(err),
			KeyErrorKind.Field(KindOf(err).String()),
		)
	}
	return fields
}
