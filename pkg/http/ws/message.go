package ws

import "encoding/json"

// MessageType constants for the WebSocket play protocol.
const (
	// Client -> Server
	TypeQuizStart     = "quiz_start"
	TypeQuizAnswer    = "quiz_answer"
	TypeQuizNext      = "quiz_next"
	TypeQuizReset     = "quiz_reset"
	TypeBingoInit     = "bingo_init"
	TypeBingoToggle   = "bingo_toggle"
	TypeBingoValidate = "bingo_validate"
	TypeBingoWildcard = "bingo_wildcard"
	TypeBingoReset    = "bingo_reset"
	TypeGridInit      = "grid_init"
	TypeGridAssign    = "grid_assign"
	TypeGridSkip      = "grid_skip"
	TypeGridReset     = "grid_reset"

	// Server -> Client
	TypeQuizState     = "quiz_state"
	TypeQuizQuestion  = "quiz_question"
	TypeQuizResult    = "quiz_result"
	TypeBingoState    = "bingo_state"
	TypeGridState     = "grid_state"
	TypeProfileUpdate = "profile_update"
	TypeError         = "error"
	TypePing          = "ping"
	TypePong          = "pong"
)

// Message wraps all WebSocket payloads with type and optional request ID.
type Message struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	RequestID string          `json:"request_id,omitempty"`
}

// NewMessage marshals a payload into a Message envelope.
func NewMessage(msgType string, payload interface{}) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: msgType, Payload: data}, nil
}

// Client messages (incoming)

type QuizStartPayload struct {
	Category string `json:"category,omitempty"`
	Count    int    `json:"count,omitempty"`
	// Daily selects the shared deterministic daily quiz.
	Daily bool `json:"daily,omitempty"`
}

type QuizAnswerPayload struct {
	Answer string `json:"answer"`
}

type BingoInitPayload struct {
	SubjectID string `json:"subject_id,omitempty"`
	Mode      string `json:"mode,omitempty"`
}

type BingoTogglePayload struct {
	TileID string `json:"tile_id"`
}

type GridAssignPayload struct {
	TileID string `json:"tile_id"`
}

// Server messages (outgoing)

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
