package engine

import "context"

// TransferEvent announces a finished output landing in connected storage.
type TransferEvent struct {
	Location    string `json:"location"`
	Machine     string `json:"machine"`
	MachineKind string `json:"machine_kind"`
	Item        string `json:"item"`
	Qty         int    `json:"qty"`
}

// EventSink receives automation events. Delivery is best-effort: the engine
// never fails a tick over a sink error, so implementations own their own
// error reporting.
type EventSink interface {
	Transfer(ctx context.Context, ev TransferEvent)
	Notice(ctx context.Context, text string)
}
