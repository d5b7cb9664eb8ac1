package http

// SpinRequest is the JSON body of POST /v1/spin. A nil Pointers means one
// pointer; an explicit zero is rejected.
type SpinRequest struct {
	Labels   []string `json:"labels"`
	Text     string   `json:"text"`
	Preset   string   `json:"preset"`
	Pointers *int     `json:"pointers"`
	// Frames asks for the whole animation in the response.
	Frames bool `json:"frames"`
}

// SpinResponse is the JSON shape returned by POST /v1/spin and the final
// "result" event of the stream.
type SpinResponse struct {
	ID             string           `json:"id"`
	Labels         []string         `json:"labels"`
	SliceAngle     float64          `json:"slice_angle"`
	PrimaryIndex   int              `json:"primary_index"`
	Winners        []WinnerResponse `json:"winners"`
	PointerOffsets []float64        `json:"pointer_offsets"`
	TargetAngle    float64          `json:"target_angle"`
	FinalAngle     float64          `json:"final_angle"`
	Degenerate     bool             `json:"degenerate,omitempty"`
	Frames         []FrameResponse  `json:"frames,omitempty"`
	Meta           MetaResp         `json:"meta"`
}

type WinnerResponse struct {
	Rank    int    `json:"rank"`
	Ordinal string `json:"ordinal"`
	Index   int    `json:"index"`
	Label   string `json:"label"`
}

type FrameResponse struct {
	Index     int     `json:"index"`
	T         float64 `json:"t"`
	ElapsedMS int64   `json:"elapsed_ms"`
	Angle     float64 `json:"angle"`
	Final     bool    `json:"final,omitempty"`
}

type PresetResponse struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Labels []string `json:"labels"`
}

type MetaResp struct {
	RequestID  string `json:"request_id"`
	FrameCount int    `json:"frame_count"`
	IntervalMS int64  `json:"interval_ms"`
	DurationMS int64  `json:"duration_ms"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
